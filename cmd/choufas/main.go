// 25 Mar 2024
// Read a propensity table and a protein sequence and print the
// Chou-Fasman secondary structure prediction.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/greasyfinger/choufasman/pkg/chou"
	. "github.com/greasyfinger/choufasman/pkg/seq/common"
)

// The file names the old tool used. Override with the environment
// variables or the positional arguments.
const (
	dfltTable = "ChouFas.csv"
	dfltSeq   = "Protein_seq.txt"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] [table [sequence]]")
	long := `Given no arguments, read "` + dfltTable + `" and "` + dfltSeq + `"
from the current directory. The environment variables CHOUFAS_TABLE and
CHOUFAS_SEQ change those defaults. Arguments on the command line beat both.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var flags chou.CmdFlag

	tableFile, seqFile := dfltTable, dfltSeq
	if s, ok := os.LookupEnv("CHOUFAS_TABLE"); ok {
		tableFile = s
	}
	if s, ok := os.LookupEnv("CHOUFAS_SEQ"); ok {
		seqFile = s
	}

	flag.StringVar(&flags.Outfile, "o", "", "write output here instead of stdout")
	flag.BoolVar(&flags.Time, "t", false, "print out timing information")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 2 {
		usage()
		os.Exit(ExitUsageError)
	}
	if flag.NArg() > 0 {
		tableFile = flag.Arg(0)
		if flag.NArg() > 1 {
			seqFile = flag.Arg(1)
		}
	}

	if err := chou.Mymain(&flags, tableFile, seqFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
