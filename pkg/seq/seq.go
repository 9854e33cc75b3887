// 18 Mar 2024

// Package seq reads a single protein sequence from a plain text file.
// The file may start with one header line ("> name" or "# name") which
// is thrown away. Everything else should be residues in one letter
// code. White space and newlines are stripped and the sequence is
// uppercased, so "mkv\nlit" and "MKVLIT" are the same sequence.
// We used to build this on a fancy buffered reader. The files are
// small and local, so now we just map the whole file and copy the
// bytes out. That is also the fastest way we found when counting
// sequences in big fasta files.
package seq

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/greasyfinger/choufasman/pkg/proptab"
	. "github.com/greasyfinger/choufasman/pkg/seq/common"
)

// Seq is a protein sequence, cleaned up and validated. It does not
// change after Readfile returns it.
type Seq struct {
	fname string
	res   []byte
}

// InvalidSequenceError is what you get if a sequence has a symbol we
// cannot use. Pos counts residues from zero, after white space has
// been removed. Sym is zero if the complaint is not about one symbol.
type InvalidSequenceError struct {
	File string
	Desc string
	Pos  int
	Sym  byte
}

func (e *InvalidSequenceError) Error() string {
	if e.Sym == 0 {
		return fmt.Sprintf("sequence file %s: %s", e.File, e.Desc)
	}
	return fmt.Sprintf("sequence file %s: symbol %q at residue %d %s",
		e.File, e.Sym, e.Pos, e.Desc)
}

// Res returns the residues. Callers should not write to the slice.
func (s *Seq) Res() []byte { return s.res }

// Len is the number of residues.
func (s *Seq) Len() int { return len(s.res) }

// Fname returns the name of the file the sequence came from.
func (s *Seq) Fname() string { return s.fname }

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// canon marks the residue codes we accept, upper case only since we
// uppercase before checking.
var canon [128]bool

func init() {
	for _, c := range []byte(CanonRes) {
		canon[c] = true
	}
}

// clean takes raw file contents and turns them into a validated
// residue string. It works in place on buf.
func clean(buf []byte, fname string) ([]byte, error) {
	if len(buf) > 0 && (buf[0] == '>' || buf[0] == '#') {
		i := 0 //           Jump over the header line
		for i < len(buf) && buf[i] != '\n' {
			i++
		}
		buf = buf[i:]
	}

	n := 0
	for _, c := range buf {
		if c >= 128 {
			e := &InvalidSequenceError{File: fname, Sym: c, Pos: n,
				Desc: "is not ascii"}
			return nil, e
		}
		if asciiSpace[c] {
			continue
		}
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		if !canon[c] {
			e := &InvalidSequenceError{File: fname, Sym: c, Pos: n,
				Desc: "is not a canonical residue"}
			return nil, e
		}
		buf[n] = c
		n++
	}
	if n == 0 {
		return nil, &InvalidSequenceError{File: fname, Desc: "no residues found"}
	}
	return buf[:n], nil
}

// Readfile reads the sequence from a file.
func Readfile(fname string) (*Seq, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	if fi, err := fp.Stat(); err != nil {
		return nil, err
	} else if fi.Size() == 0 { // zero length files refuse to map
		return nil, &InvalidSequenceError{File: fname, Desc: "no residues found"}
	}

	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	buf := make([]byte, len(mm))
	copy(buf, mm)
	if err = mm.Unmap(); err != nil {
		return nil, fmt.Errorf("unmapping %s: %w", fname, err)
	}

	res, err := clean(buf, fname)
	if err != nil {
		return nil, err
	}
	return &Seq{fname: fname, res: res}, nil
}

// Str2Seq turns a string into a Seq, with the same cleaning and
// checking as Readfile. Mostly used in testing.
func Str2Seq(s string) (*Seq, error) {
	res, err := clean([]byte(s), "string")
	if err != nil {
		return nil, err
	}
	return &Seq{fname: "string", res: res}, nil
}

// CheckTable makes sure every residue in the sequence has an entry in
// the propensity table. A missing entry is an error, not a default.
func (s *Seq) CheckTable(tab *proptab.Table) error {
	for i, c := range s.res {
		if !tab.Knows(c) {
			return &InvalidSequenceError{File: s.fname, Sym: c, Pos: i,
				Desc: "has no propensity table entry"}
		}
	}
	return nil
}
