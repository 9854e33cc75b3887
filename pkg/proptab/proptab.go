// 14 Mar 2024
// Read a table of Chou-Fasman propensities.
// The file is csv with a header line. We do not insist on any column
// order. The header names are matched against a few spellings people
// use, so "Pa", "helix" or "alpha" all find the helix column.
// Next step done compared to the old substitution matrix reader: there
// is an inner version that reads from an io.Reader, so we can read
// from files and strings.

package proptab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/andrew-torda/matrix"
)

// The propensity channels, in the order they sit in a table row.
// The chou package uses its Class values as the channel argument.
const (
	ChnHelix = iota
	ChnSheet
	ChnTurn
	NChannel
)

const notset int8 = -1

// Table is the propensity lookup. cmap maps a residue letter to a row
// of mat. A row holds the helix, sheet and turn propensities. Upper
// and lower case letters map to the same row.
type Table struct {
	mat  *matrix.FMatrix2d
	cmap [128]int8
	nres int
}

// MalformedTableError says what was wrong with a table file and where.
// Line counts from 1 and includes the header. Zero means the problem
// was not tied to one line.
type MalformedTableError struct {
	File   string
	Line   int
	Reason string
}

func (e *MalformedTableError) Error() string {
	if e.Line == 0 {
		return "propensity table " + e.File + ": " + e.Reason
	}
	return fmt.Sprintf("propensity table %s line %d: %s", e.File, e.Line, e.Reason)
}

// Header spellings we accept for each of the four wanted columns.
var colNames = [4][]string{
	{"code", "residue", "res", "aa", "symbol"},
	{"pa", "helix", "alpha", "p(a)"},
	{"pb", "sheet", "beta", "p(b)"},
	{"pt", "turn", "p(t)", "pturn"},
}

const ndxSym = 0 // index into colNames and into the resolved columns

// findCols takes the header fields and says where our four columns
// are. Unknown columns are not an error. They are just ignored.
func findCols(hdr []string, name string) (cols [4]int, err error) {
	for i := range cols {
		cols[i] = -1
	}
	for i, field := range hdr {
		f := strings.ToLower(strings.TrimSpace(field))
		for w, names := range colNames {
			for _, s := range names {
				if f == s && cols[w] == -1 {
					cols[w] = i
				}
			}
		}
	}
	for w, c := range cols {
		if c == -1 {
			reason := "no column for " + colNames[w][0] +
				" (accepted names: " + strings.Join(colNames[w], ", ") + ")"
			return cols, &MalformedTableError{File: name, Line: 1, Reason: reason}
		}
	}
	return cols, nil
}

type tabrow struct {
	p   [NChannel]float32
	sym byte
}

// ReadFrom reads a propensity table from an io.Reader. name is only
// used for error messages.
func ReadFrom(rdr io.Reader, name string) (*Table, error) {
	r := csv.NewReader(rdr)
	r.TrimLeadingSpace = true

	hdr, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &MalformedTableError{File: name, Reason: "empty file"}
		}
		return nil, &MalformedTableError{File: name, Line: 1, Reason: err.Error()}
	}
	cols, err := findCols(hdr, name)
	if err != nil {
		return nil, err
	}

	var rows []tabrow
	var seen [128]bool
	ln := 1
	for {
		ln++
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil { // wrong field count ends up here, via the csv reader
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				ln = perr.Line
			}
			return nil, &MalformedTableError{File: name, Line: ln, Reason: err.Error()}
		}
		var row tabrow
		s := strings.TrimSpace(rec[cols[ndxSym]])
		if len(s) != 1 || !isLetter(s[0]) {
			reason := fmt.Sprintf("residue code %q is not a single letter", s)
			return nil, &MalformedTableError{File: name, Line: ln, Reason: reason}
		}
		row.sym = upper(s[0])
		if seen[row.sym] {
			reason := fmt.Sprintf("residue %c appears twice", row.sym)
			return nil, &MalformedTableError{File: name, Line: ln, Reason: reason}
		}
		seen[row.sym] = true
		for w := ChnHelix; w < NChannel; w++ {
			s := strings.TrimSpace(rec[cols[w+1]])
			f, err := strconv.ParseFloat(s, 32)
			if err != nil {
				reason := fmt.Sprintf("bad number %q for residue %c", s, row.sym)
				return nil, &MalformedTableError{File: name, Line: ln, Reason: reason}
			}
			row.p[w] = float32(f)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, &MalformedTableError{File: name, Reason: "no propensity rows found"}
	}

	tab := new(Table)
	for i := range tab.cmap {
		tab.cmap[i] = notset
	}
	tab.nres = len(rows)
	tab.mat = matrix.NewFMatrix2d(len(rows), NChannel)
	for i, row := range rows {
		copy(tab.mat.Mat[i], row.p[:])
		tab.cmap[row.sym] = int8(i)
		tab.cmap[lower(row.sym)] = int8(i)
	}
	return tab, nil
}

// Read reads a propensity table from a file.
func Read(fname string) (*Table, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadFrom(fp, fname)
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Knows says whether a residue has an entry in the table.
func (tab *Table) Knows(c byte) bool {
	return c < 128 && tab.cmap[c] != notset
}

// Prop returns the propensity of residue c on one of the channels.
// The caller must have checked the residue with Knows. We do not
// check again on every lookup.
func (tab *Table) Prop(c byte, channel int) float32 {
	return tab.mat.Mat[tab.cmap[c]][channel]
}

// NRes returns the number of residue types in the table.
func (tab *Table) NRes() int { return tab.nres }

// String prints out a propensity table. Useful during debugging.
func (tab *Table) String() (s string) {
	s = fmt.Sprintf("%4s%8s%8s%8s\n", " ", "helix", "sheet", "turn")
	for c := byte('A'); c <= 'Z'; c++ {
		if !tab.Knows(c) {
			continue
		}
		s += fmt.Sprintf("%4c", c)
		for w := ChnHelix; w < NChannel; w++ {
			s += fmt.Sprintf("%8.3f", tab.Prop(c, w))
		}
		s += "\n"
	}
	return s
}
