package probe

import (
	"github.com/JYLeeSci/fishprobes/config"
)

// cell is an immutable parent pointer of the mixed-length optimizer: the
// last probe of the best solution in a dp cell. ok false = no solution
type cell struct {
	placement
	ok bool
}

// findBestProbesMixed generalizes findBestProbes to a range of probe
// lengths. Indexing moves from start positions to end positions so that
// windows of different lengths ending on the same base compete in one
// cell: a locally attractive length can block a more valuable neighbor, so
// lengths and positions have to be chosen jointly.
//
// dp[e][k] is the best mean badness of k+1 probes whose last probe ends at
// or before e; track[e][k] records that last probe's (start, length)
func findBestProbesMixed(grid [][]Badness, seqLen, minLen, spacer, maxProbes int) []candidate {
	goodlen := len(grid)
	if goodlen == 0 || seqLen == 0 || maxProbes < 1 {
		return nil
	}
	nLengths := len(grid[0])

	dp := make([][]Badness, seqLen)
	track := make([][]cell, seqLen)
	for e := range dp {
		dp[e] = make([]Badness, maxProbes)
		track[e] = make([]cell, maxProbes)
	}

	for e := 0; e < seqLen; e++ {
		// carry solutions ending earlier forward first
		if e > 0 {
			for k := 0; k < maxProbes; k++ {
				if dp[e-1][k].less(dp[e][k]) {
					dp[e][k] = dp[e-1][k]
					track[e][k] = track[e-1][k]
				}
			}
		}

		// then try every probe length ending at exactly e
		for li := 0; li < nLengths; li++ {
			length := minLen + li
			start := e - length + 1
			if start < 0 || start >= goodlen {
				continue
			}
			b := grid[start][li]
			if !b.OK {
				continue
			}

			for k := 0; k < maxProbes; k++ {
				var score Badness
				if k == 0 {
					score = b
				} else {
					prevEnd := start - spacer - 1
					if prevEnd < 0 || !track[prevEnd][k-1].ok {
						continue
					}
					score = extendScore(dp[prevEnd][k-1], k, b)
				}

				if score.less(dp[e][k]) {
					dp[e][k] = score
					track[e][k] = cell{placement{start: start, length: length}, true}
				}
			}
		}
	}

	// backtrack each probe count, stepping back over the last probe and
	// its spacer each time
	var candidates []candidate
	for k := 0; k < maxProbes; k++ {
		e := seqLen - 1
		if !track[e][k].ok {
			continue
		}
		score := dp[e][k]
		if !score.OK || score.Cost >= config.RejectionThreshold {
			continue
		}

		placements := make([]placement, k+1)
		broken := false
		for kk := k; kk >= 0; kk-- {
			last := track[e][kk]
			if !last.ok {
				broken = true
				break
			}
			placements[kk] = last.placement
			e = last.start - spacer - 1
			if kk > 0 && e < 0 {
				broken = true
				break
			}
		}
		if broken {
			continue
		}

		candidates = append(candidates, candidate{score: score.Cost, placements: placements})
	}

	return candidates
}
