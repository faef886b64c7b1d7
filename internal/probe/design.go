package probe

import (
	"fmt"

	"github.com/JYLeeSci/fishprobes/config"
)

// Request is everything a single design run needs. The sequence and masks
// are read-only borrows; every table the run builds is owned by the run
type Request struct {
	// Seq is the cleaned, junction-marked target sequence
	Seq string

	// Name of the template, used to name the probes
	Name string

	// Masks from external specificity checks, possibly none
	Masks []Mask
}

// Solution is the chosen probe set. A zero Count with Found false means no
// probe set scored under the rejection threshold, which is reported, not
// an error
type Solution struct {
	// Probes in template order
	Probes []Probe `json:"probes"`

	// Score is the mean badness across the probes
	Score float64 `json:"score"`

	// Count of probes placed
	Count int `json:"count"`

	// Found is false when no probe set qualified
	Found bool `json:"found"`
}

// Result carries the solution plus the per-run artifacts the output files
// are built from
type Result struct {
	// Solution is the richest qualifying probe set
	Solution Solution

	// Seq the design ran against
	Seq string

	// Name of the template
	Name string

	// MaskStrings are the sequence overlays of each supplied mask, then
	// the pre-mask F feasibility string, for the visualization file
	MaskStrings []string
}

// placement is one selected probe window
type placement struct {
	start  int
	length int
}

// candidate is one backtracked solution: its mean badness and its windows
type candidate struct {
	score      float64
	placements []placement
}

// Design runs one probe design: score windows, merge masks, place probes,
// materialize the richest qualifying set. Only configuration-level
// violations come back as errors; infeasible windows and a probe count
// below max-probes do not
func Design(req Request, c *config.Config) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}
	if len(req.Seq) == 0 {
		return Result{}, fmt.Errorf("no target sequence to design against")
	}
	for _, m := range req.Masks {
		if len(m.Excluded) != len(req.Seq) {
			return Result{}, fmt.Errorf("mask %q is %d positions long, the sequence is %d", m.Name, len(m.Excluded), len(req.Seq))
		}
	}

	minLen, maxLen, mixed := c.LengthRange()
	combined := CombineMasks(len(req.Seq), req.Masks)

	maskStrings := make([]string, 0, len(req.Masks)+1)
	for _, m := range req.Masks {
		maskStrings = append(maskStrings, m.Overlay(req.Seq))
	}

	// the F string reflects thermodynamics alone and must come before the
	// mask merge
	var candidates []candidate
	if mixed {
		grid := badnessGrid(req.Seq, minLen, maxLen, c)
		maskStrings = append(maskStrings, feasibilityStringGrid(req.Seq, grid))
		applyMaskGrid(grid, combined, minLen)
		candidates = findBestProbesMixed(grid, len(req.Seq), minLen, c.Probes.Spacer, c.Probes.MaxCount)
	} else {
		table := badnessTable(req.Seq, minLen, c)
		maskStrings = append(maskStrings, feasibilityString(req.Seq, table))
		applyMask(table, combined, minLen)
		candidates = findBestProbes(table, minLen, c.Probes.Spacer, c.Probes.MaxCount)
	}

	result := Result{
		Seq:         req.Seq,
		Name:        req.Name,
		MaskStrings: maskStrings,
	}

	best, found := pickRichest(candidates)
	if !found {
		return result, nil
	}

	result.Solution = Solution{
		Probes: materialize(req.Seq, req.Name, best.placements, c),
		Score:  best.score,
		Count:  len(best.placements),
		Found:  true,
	}

	return result, nil
}

// findBestProbes places 1..maxProbes fixed-length probes over the badness
// table, minimizing mean badness under the spacing constraint.
//
// scores[x][k] is the best mean badness of k+1 probes whose last probe
// starts at or before table position x; starts[x][k] is where that last
// probe starts (-1 = no solution yet). Filling is left to right: inherit
// the column to the left, then try putting probe k+1 at exactly x, which
// needs a k-probe solution ending far enough back to honor the spacer
func findBestProbes(table []Badness, length, spacer, maxProbes int) []candidate {
	goodlen := len(table)
	if goodlen == 0 || maxProbes < 1 {
		return nil
	}
	stride := length + spacer

	scores := make([][]Badness, goodlen)
	starts := make([][]int, goodlen)
	for x := range scores {
		scores[x] = make([]Badness, maxProbes)
		starts[x] = make([]int, maxProbes)
		for k := range starts[x] {
			starts[x][k] = -1
		}
	}

	scores[0][0] = table[0]
	starts[0][0] = 0

	for x := 1; x < goodlen; x++ {
		copy(scores[x], scores[x-1])
		copy(starts[x], starts[x-1])

		for k := 0; k < maxProbes; k++ {
			potential := infeasible
			if k == 0 {
				potential = table[x]
			} else if prev := x - stride; prev >= 0 && starts[prev][k-1] >= 0 {
				potential = extendScore(scores[prev][k-1], k, table[x])
			}

			if potential.less(scores[x][k]) {
				scores[x][k] = potential
				starts[x][k] = x
			}
		}
	}

	// backtrack each probe count, stepping back one stride per probe
	var candidates []candidate
	for k := 0; k < maxProbes; k++ {
		x := goodlen - 1
		if starts[x][k] < 0 {
			continue
		}
		score := scores[x][k]
		if !score.OK || score.Cost >= config.RejectionThreshold {
			continue
		}

		placements := make([]placement, k+1)
		for kk := k; kk >= 0; kk-- {
			start := starts[x][kk]
			placements[kk] = placement{start: start, length: length}
			x = start - stride
		}

		candidates = append(candidates, candidate{score: score.Cost, placements: placements})
	}

	return candidates
}

// extendScore is the running mean update: a k-probe solution with mean old
// gains one more probe of badness b
func extendScore(old Badness, k int, b Badness) Badness {
	if !old.OK || !b.OK {
		return infeasible
	}
	return feasible((old.Cost*float64(k) + b.Cost) / float64(k+1))
}

// pickRichest selects among the per-count solutions. The policy is to
// maximize probe count among solutions under the rejection threshold, not
// to minimize mean badness outright: a fuller probe set lights up better
// than a marginally better-scoring sparse one
func pickRichest(candidates []candidate) (candidate, bool) {
	if len(candidates) == 0 {
		return candidate{}, false
	}

	best := candidates[0]
	for _, cand := range candidates[1:] {
		if len(cand.placements) >= len(best.placements) {
			best = cand
		}
	}

	return best, true
}
