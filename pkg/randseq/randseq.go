// 31 July 2020
// Reworked 22 Mar 2024 for the structure predictor. The predictor
// takes one plain text sequence, not a fasta alignment, so this now
// writes a single random protein with optional line wrapping and an
// optional header line. Mainly used to make test input.

package randseq

import (
	"fmt"
	"io"
	"math/rand"

	. "github.com/greasyfinger/choufasman/pkg/seq/common"
)

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed   int64     // random number seed
	Wrtr    io.Writer // where we write to
	Cmmt    string    // if not empty, written as a "> ..." header line
	Len     int       // number of residues
	LineLen int       // wrap after this many residues, 0 for one line
	Lower   bool      // write lower case residues
}

// getseq returns a byte slice with a random sequence in it
func getseq(seqlen int, lower bool, rnd *rand.Rand) []byte {
	letters := []byte(CanonRes)
	ret := make([]byte, seqlen)
	l := int32(len(letters))
	for i := 0; i < seqlen; i++ {
		c := letters[rnd.Int31n(l)]
		if lower {
			c += 'a' - 'A'
		}
		ret[i] = c
	}
	return ret
}

// RandSeqMain writes one random sequence to an io.Writer.
func RandSeqMain(args *RandSeqArgs) error {
	rnd := rand.New(rand.NewSource(args.Iseed))
	if args.Cmmt != "" {
		if _, err := fmt.Fprintf(args.Wrtr, "> %s\n", args.Cmmt); err != nil {
			return err
		}
	}
	s := getseq(args.Len, args.Lower, rnd)
	if args.LineLen > 0 {
		for ; len(s) > args.LineLen; s = s[args.LineLen:] {
			if _, err := fmt.Fprintln(args.Wrtr, string(s[:args.LineLen])); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(args.Wrtr, string(s))
	return err
}
