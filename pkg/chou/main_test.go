// 25 Mar 2024

package chou_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/greasyfinger/choufasman/pkg/chou"
	"github.com/greasyfinger/choufasman/pkg/proptab"
	"github.com/greasyfinger/choufasman/pkg/seq/common"
)

func TestFormatBlocks(t *testing.T) {
	var b bytes.Buffer
	res := bytes.Repeat([]byte("A"), 120)
	lab := bytes.Repeat([]byte("_"), 120)
	if err := chou.FormatBlocks(&b, res, lab); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, hdr := range []string{"\n0:50 ", "\n50:100 ", "\n100:120 "} {
		if !strings.Contains(out, hdr) {
			t.Fatalf("output missing block header %q:\n%s", hdr, out)
		}
	}
	// Residues and labels must line up, so every non-empty line is
	// gutter plus block width.
	for _, l := range strings.Split(out, "\n") {
		if l == "" {
			continue
		}
		if n := len(l); n != 70 && n != 40 {
			t.Fatalf("line length %d breaks the alignment: %q", n, l)
		}
	}
}

// tmpName gives a name for an output file that does not exist yet.
func tmpName(t *testing.T) string {
	t.Helper()
	fp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		t.Fatal("tempfile fail")
	}
	name := fp.Name()
	fp.Close()
	os.Remove(name)
	t.Cleanup(func() { os.Remove(name) })
	return name
}

func wrtTemp(t *testing.T, s string) string {
	t.Helper()
	fname, err := common.WrtTemp(s)
	if err != nil {
		t.Fatal("fail writing test file")
	}
	t.Cleanup(func() { os.Remove(fname) })
	return fname
}

// The whole pipeline on the synthetic helix example, checking the
// exact bytes that come out.
func TestMymain(t *testing.T) {
	tabFile := wrtTemp(t, "code,pa,pb,pt\nA,1.5,0.1,0.1\nG,0.0,0.1,0.1\n")
	seqFile := wrtTemp(t, "> test protein\nggAAAA\naaGG\n")
	outFile := tmpName(t)

	flags := &chou.CmdFlag{Outfile: outFile}
	if err := chou.Mymain(flags, tabFile, seqFile); err != nil {
		t.Fatal("Mymain on good input:", err)
	}
	got, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	want := fmt.Sprintf("\n%-20s%s\n%20s%s\n\n", "0:10", "GGAAAAAAGG", "", "_HHHHHHHH_")
	if string(got) != want {
		t.Fatalf("output mismatch\ngot:\n%q\nwant:\n%q", got, want)
	}
}

// A broken table must abort before any output is produced.
func TestMymainBadTable(t *testing.T) {
	tabFile := wrtTemp(t, "code,pa,pb\nA,1.5,0.1\n") // no turn column
	seqFile := wrtTemp(t, "GGAAAAAAGG\n")
	outFile := tmpName(t)

	err := chou.Mymain(&chou.CmdFlag{Outfile: outFile}, tabFile, seqFile)
	var mte *proptab.MalformedTableError
	if !errors.As(err, &mte) {
		t.Fatal("expected MalformedTableError, got", err)
	}
	if _, err := os.Stat(outFile); err == nil {
		t.Fatal("output file was created despite the broken table")
	}
}

// A residue missing from the table is fatal before scoring.
func TestMymainMissingRes(t *testing.T) {
	tabFile := wrtTemp(t, "code,pa,pb,pt\nA,1.5,0.1,0.1\n")
	seqFile := wrtTemp(t, "AAAGAAA\n")
	outFile := tmpName(t)

	err := chou.Mymain(&chou.CmdFlag{Outfile: outFile}, tabFile, seqFile)
	if err == nil {
		t.Fatal("G has no table entry, expected an error")
	}
	if !strings.Contains(err.Error(), "G") {
		t.Fatal("diagnostic should name the offending symbol:", err)
	}
	if _, err := os.Stat(outFile); err == nil {
		t.Fatal("output file was created despite the missing residue")
	}
}

func TestMymainNoFiles(t *testing.T) {
	if err := chou.Mymain(&chou.CmdFlag{}, "no/such/table", "no/such/seq"); err == nil {
		t.Fatal("expected error for missing table file")
	}
	tabFile := wrtTemp(t, "code,pa,pb,pt\nA,1.5,0.1,0.1\n")
	if err := chou.Mymain(&chou.CmdFlag{}, tabFile, "no/such/seq"); err == nil {
		t.Fatal("expected error for missing sequence file")
	}
}
