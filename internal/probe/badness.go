package probe

import (
	"github.com/JYLeeSci/fishprobes/config"
)

// Badness is the cost of putting a probe at one candidate window: the
// squared distance of the window's Gibbs free energy from the target. A
// window that can never hold a probe is infeasible: OK is false and Cost
// is meaningless. The zero value is infeasible
type Badness struct {
	Cost float64
	OK   bool
}

// infeasible is the sentinel for windows no probe can occupy
var infeasible = Badness{}

func feasible(cost float64) Badness {
	return Badness{Cost: cost, OK: true}
}

// less reports whether b is strictly better than other. Infeasible never
// beats anything; every feasible value beats infeasible
func (b Badness) less(other Badness) bool {
	if !b.OK {
		return false
	}
	if !other.OK {
		return true
	}
	return b.Cost < other.Cost
}

// windowBadness scores a single template window. Windows holding masked
// characters, unknown bases or junctions are infeasible, as are windows
// whose free energy falls outside the allowable band
func windowBadness(window string, c *config.Config) Badness {
	if hasInvalidChars(window) {
		return infeasible
	}

	gibbs, ok := Gibbs(window)
	if !ok {
		return infeasible
	}

	if gibbs < c.Thermo.MinGibbs || gibbs > c.Thermo.MaxGibbs {
		return infeasible
	}

	diff := gibbs - c.Thermo.TargetGibbs
	return feasible(diff * diff)
}

// badnessTable scores every window of a fixed probe length. The table has
// len(seq)-length+1 entries, one per candidate start position
func badnessTable(seq string, length int, c *config.Config) []Badness {
	goodlen := len(seq) - length + 1
	if goodlen < 1 {
		return nil
	}

	table := make([]Badness, goodlen)
	for i := range table {
		table[i] = windowBadness(seq[i:i+length], c)
	}

	return table
}

// badnessGrid scores every (start, length) pair of a mixed-length design.
// grid[start][L-minLen] is the badness of the window of length L at start.
// Windows that would run past the end of the sequence are infeasible
func badnessGrid(seq string, minLen, maxLen int, c *config.Config) [][]Badness {
	goodlen := len(seq) - minLen + 1
	if goodlen < 1 {
		return nil
	}

	nLengths := maxLen - minLen + 1
	grid := make([][]Badness, goodlen)
	for i := range grid {
		row := make([]Badness, nLengths)
		for li := range row {
			length := minLen + li
			if i+length > len(seq) {
				row[li] = infeasible
				continue
			}
			row[li] = windowBadness(seq[i:i+length], c)
		}
		grid[i] = row
	}

	return grid
}
