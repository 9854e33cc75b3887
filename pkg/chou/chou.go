// 20 Mar 2024
// The Chou-Fasman scan itself. Slide a window along the sequence for
// each structure class, look for windows whose score gets over the
// nucleation threshold, grow those outwards while a local four
// residue mean holds up, then let the classes fight over each residue.
// Everything here is a pure function of the table, the sequence and
// the parameters. No state survives a call to Predict.

package chou

import (
	"sort"

	"github.com/andrew-torda/matrix"

	"github.com/greasyfinger/choufasman/pkg/proptab"
)

// A Class picks one of the structure classes. The values double as
// column indices into the propensity table, so keep them in the same
// order as the proptab channel constants.
type Class int

const (
	Helix Class = iota
	Sheet
	Turn
	NClass
)

// Label codes in the printed output. Turns have no code of their own.
// In the three state picture a turn is a break between regions, so it
// comes out as coil.
const (
	LabHelix = 'H'
	LabSheet = 'S'
	LabCoil  = '_'
)

// Params holds the window sizes and thresholds. The defaults are the
// conventional Chou-Fasman values, but they depend on how a dataset
// was normalised, so they are parameters and not constants.
// Nucleation is strict. A window sitting exactly on the threshold
// does not nucleate. Extension is not. A boundary mean exactly at
// ExtMin keeps a region growing.
type Params struct {
	HelixWin, SheetWin, TurnWin int
	HelixNuc, SheetNuc, TurnNuc float32
	ExtMin                      float32
}

// DfltParams returns the conventional parameter values.
func DfltParams() *Params {
	return &Params{
		HelixWin: 6, SheetWin: 5, TurnWin: 4,
		HelixNuc: 1.0, SheetNuc: 1.0, TurnNuc: 1.0,
		ExtMin: 1.0,
	}
}

func (p *Params) winSize(c Class) int {
	switch c {
	case Helix:
		return p.HelixWin
	case Sheet:
		return p.SheetWin
	}
	return p.TurnWin
}

func (p *Params) nucThresh(c Class) float32 {
	switch c {
	case Helix:
		return p.HelixNuc
	case Sheet:
		return p.SheetNuc
	}
	return p.TurnNuc
}

// Region is a run of residues claimed by one class. End is one past
// the last residue. Scr is the mean propensity over the whole run.
type Region struct {
	Scr      float32
	Beg, End int
}

// extWin is the length of the running window used while extending a
// nucleated region.
const extWin = 4

// meanProp is the mean propensity on channel c over [beg, end).
func meanProp(tab *proptab.Table, res []byte, c Class, beg, end int) float32 {
	var sum float32
	for k := beg; k < end; k++ {
		sum += tab.Prop(res[k], int(c))
	}
	return sum / float32(end-beg)
}

// extMean is the mean over a four residue window at a region
// boundary. The window is clamped at the sequence ends, so odd Params
// with windows shorter than extWin cannot make us run off the
// sequence.
func extMean(tab *proptab.Table, res []byte, c Class, lo, hi int) float32 {
	if lo < 0 {
		lo = 0
	}
	if hi > len(res) {
		hi = len(res)
	}
	var sum float32
	for k := lo; k < hi; k++ {
		sum += tab.Prop(res[k], int(c))
	}
	return sum / float32(hi-lo)
}

// winScores fills row with the score of the length w window starting
// at each position and says how many windows there are. Helix and
// sheet windows score the mean propensity. Turn windows score the
// product of the positional values, one factor per residue in the
// window.
func winScores(tab *proptab.Table, res []byte, c Class, w int, row []float32) int {
	n := len(res) - w + 1
	if n < 1 { // sequence shorter than the window, no candidates
		return 0
	}
	for i := 0; i < n; i++ {
		if c == Turn {
			scr := float32(1)
			for j := i; j < i+w; j++ {
				scr *= tab.Prop(res[j], int(c))
			}
			row[i] = scr
		} else {
			var sum float32
			for j := i; j < i+w; j++ {
				sum += tab.Prop(res[j], int(c))
			}
			row[i] = sum / float32(w)
		}
	}
	return n
}

// grow extends a nucleated window [beg, end) one residue at a time.
// A residue joins on the right if the mean over the four residues
// ending at it stays at or above ExtMin, and on the left if the mean
// over the four residues starting at it does. Growth stops at the
// sequence ends. The turn rule is the bare window, no extension.
func grow(tab *proptab.Table, res []byte, c Class, p *Params, beg, end int) Region {
	if c != Turn {
		for end < len(res) &&
			extMean(tab, res, c, end-extWin+1, end+1) >= p.ExtMin {
			end++
		}
		for beg > 0 &&
			extMean(tab, res, c, beg-1, beg-1+extWin) >= p.ExtMin {
			beg--
		}
	}
	return Region{Beg: beg, End: end, Scr: meanProp(tab, res, c, beg, end)}
}

// mergeRegions unions regions of one class that touch or overlap, so
// no residue is claimed twice by the same class. Scores are
// recomputed over the merged runs.
func mergeRegions(regs []Region, tab *proptab.Table, res []byte, c Class) []Region {
	if len(regs) == 0 {
		return regs
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i].Beg < regs[j].Beg })
	out := regs[:1]
	for _, r := range regs[1:] {
		last := &out[len(out)-1]
		if r.Beg <= last.End {
			if r.End > last.End {
				last.End = r.End
			}
		} else {
			out = append(out, r)
		}
	}
	for i := range out {
		out[i].Scr = meanProp(tab, res, c, out[i].Beg, out[i].End)
	}
	return out
}

// resolve hands each residue to the covering class with the strictly
// highest region score. Classes are visited helix first, so on an
// exact score tie the earlier class keeps the residue. That is the
// fixed precedence helix, then sheet, then turn.
func resolve(n int, regs *[NClass][]Region) []byte {
	cls := make([]Class, n)
	best := make([]float32, n)
	for i := range cls {
		cls[i] = NClass // NClass marks a residue nobody wants
	}
	for c := Helix; c < NClass; c++ {
		for _, r := range regs[c] {
			for i := r.Beg; i < r.End; i++ {
				if cls[i] == NClass || r.Scr > best[i] {
					cls[i], best[i] = c, r.Scr
				}
			}
		}
	}

	lab := make([]byte, n)
	for i := range lab {
		switch cls[i] {
		case Helix:
			lab[i] = LabHelix
		case Sheet:
			lab[i] = LabSheet
		default:
			lab[i] = LabCoil
		}
	}
	return lab
}

// Predict runs the whole scan and returns one label per residue,
// LabHelix, LabSheet or LabCoil. Every residue must be in the table.
// Check with seq.CheckTable before calling. Identical inputs always
// give identical labels.
func Predict(tab *proptab.Table, res []byte, p *Params) []byte {
	n := len(res)
	scr := matrix.NewFMatrix2d(int(NClass), n)
	var regs [NClass][]Region
	for c := Helix; c < NClass; c++ {
		w := p.winSize(c)
		nwin := winScores(tab, res, c, w, scr.Mat[c])
		thr := p.nucThresh(c)
		for i := 0; i < nwin; i++ {
			if scr.Mat[c][i] > thr { // strictly greater, equal is not enough
				regs[c] = append(regs[c], grow(tab, res, c, p, i, i+w))
			}
		}
		regs[c] = mergeRegions(regs[c], tab, res, c)
	}
	return resolve(n, &regs)
}
