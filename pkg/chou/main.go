// 21 Mar 2024
// Glue and printing for the predictor. The calculation lives in
// chou.go. This file reads the two inputs, runs the scan and writes
// the annotated blocks.

package chou

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/greasyfinger/choufasman/pkg/proptab"
	"github.com/greasyfinger/choufasman/pkg/seq"
)

// How the output is chunked. Each block is resPerLine residues with a
// "beg:end" gutter in front, padded to gutterWdth columns.
const (
	resPerLine = 50
	gutterWdth = 20
)

// CmdFlag is the set of options passed in from the command line.
type CmdFlag struct {
	Outfile string // write here instead of standard output
	Time    bool   // do we want to print out run time ?
}

// warnExists checks if a filename exists and prints a warning
// if we will trash a file. It does not return an error.
func warnExists(fname string) {
	if _, err := os.Stat(fname); err == nil {
		fmt.Fprintln(os.Stderr, "Warning, trashing old version of", fname)
	}
}

// FormatBlocks writes the sequence and its labels in blocks of fifty
// residues. Each block is a residue index range, the residues, then
// the label codes lined up underneath. The format is what the old
// tool printed, so downstream scripts keep working.
func FormatBlocks(fp io.Writer, res, lab []byte) error {
	for i := 0; i < len(res); i += resPerLine {
		end := i + resPerLine
		if end > len(res) {
			end = len(res)
		}
		hdr := fmt.Sprintf("%d:%d", i, end)
		_, err := fmt.Fprintf(fp, "\n%-*s%s\n%*s%s\n",
			gutterWdth, hdr, res[i:end], gutterWdth, "", lab[i:end])
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(fp)
	return err
}

// Mymain is the main function for predicting secondary structure and
// writing the annotated sequence out.
func Mymain(flags *CmdFlag, tableFile, seqFile string) error {
	if flags.Time {
		startTime := time.Now()
		end := func() { // Wrapping in a closure is helpful. Gives the right time.
			fmt.Println("finished after", time.Since(startTime).Milliseconds(), "ms")
		}
		defer end()
	}

	tab, err := proptab.Read(tableFile)
	if err != nil {
		return fmt.Errorf("fail reading propensity table: %w", err)
	}
	s, err := seq.Readfile(seqFile)
	if err != nil {
		return fmt.Errorf("fail reading sequence: %w", err)
	}
	if err := s.CheckTable(tab); err != nil {
		return err
	}

	lab := Predict(tab, s.Res(), DfltParams())

	var fp io.WriteCloser
	if flags.Outfile != "" && flags.Outfile != "-" {
		warnExists(flags.Outfile)
		if fp, err = os.Create(flags.Outfile); err != nil {
			return fmt.Errorf("output file %v: %w", flags.Outfile, err)
		}
		defer fp.Close()
	} else {
		fp = os.Stdout
	}
	return FormatBlocks(fp, s.Res(), lab)
}
