package probe

import (
	"strings"
)

// Mask flags sequence positions an external specificity check ruled out.
// Masks come from collaborators that run before the design: a repeat
// masker, a pseudogene alignment, a genome alignment. The engine only sees
// the boolean outcome
type Mask struct {
	// Name of the mask source, ex "repeat"
	Name string

	// Code is the single character shown at masked positions in the
	// sequence visualization file: R, P or B
	Code byte

	// Excluded is aligned to the sequence string; true marks a position
	// no probe window may overlap
	Excluded []bool
}

// Count returns how many positions the mask excludes
func (m Mask) Count() (count int) {
	for _, e := range m.Excluded {
		if e {
			count++
		}
	}
	return
}

// Overlay returns the sequence with every masked position replaced by the
// mask's code character, for the sequence visualization file
func (m Mask) Overlay(seq string) string {
	overlay := []byte(seq)
	for i := range overlay {
		if i < len(m.Excluded) && m.Excluded[i] {
			overlay[i] = m.Code
		}
	}
	return string(overlay)
}

// CombineMasks ORs the masks into one per-position exclusion array of
// seqLen positions. An empty mask list excludes nothing
func CombineMasks(seqLen int, masks []Mask) []bool {
	combined := make([]bool, seqLen)
	for _, m := range masks {
		for i, excluded := range m.Excluded {
			if i >= seqLen {
				break
			}
			if excluded {
				combined[i] = true
			}
		}
	}
	return combined
}

// windowMasked reports whether any position of [start, start+length) is excluded
func windowMasked(combined []bool, start, length int) bool {
	for i := start; i < start+length && i < len(combined); i++ {
		if combined[i] {
			return true
		}
	}
	return false
}

// applyMask marks every window that overlaps an excluded position
// infeasible. Masking wins over finite thermodynamic badness
func applyMask(table []Badness, combined []bool, length int) {
	for start := range table {
		if windowMasked(combined, start, length) {
			table[start] = infeasible
		}
	}
}

// applyMaskGrid is applyMask for a mixed-length badness grid
func applyMaskGrid(grid [][]Badness, combined []bool, minLen int) {
	for start, row := range grid {
		for li := range row {
			if windowMasked(combined, start, minLen+li) {
				row[li] = infeasible
			}
		}
	}
}

// feasibilityString marks where thermodynamics alone rule out a probe,
// before any mask is merged: F where the fixed-length window starting at
// that position is infeasible or no window fits
func feasibilityString(seq string, table []Badness) string {
	var b strings.Builder
	b.Grow(len(seq))

	for i := 0; i < len(seq); i++ {
		if i < len(table) && table[i].OK {
			b.WriteByte(seq[i])
		} else {
			b.WriteByte('F')
		}
	}

	return b.String()
}

// feasibilityStringGrid is feasibilityString for a mixed-length grid: a
// position stays visible when any probe length starting there is feasible
func feasibilityStringGrid(seq string, grid [][]Badness) string {
	var b strings.Builder
	b.Grow(len(seq))

	for i := 0; i < len(seq); i++ {
		anyOK := false
		if i < len(grid) {
			for _, bd := range grid[i] {
				if bd.OK {
					anyOK = true
					break
				}
			}
		}

		if anyOK {
			b.WriteByte(seq[i])
		} else {
			b.WriteByte('F')
		}
	}

	return b.String()
}
