package probe

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/JYLeeSci/fishprobes/config"
)

// Probe is one designed oligo: a window on the template plus the physical
// probe, which is the window's reverse complement
type Probe struct {
	// Index is the probe's 1-based ordinal in template order
	Index int `json:"index"`

	// Start is the 0-based position of the window in the sequence string
	Start int `json:"start"`

	// Length of the probe in bp
	Length int `json:"length"`

	// Seq of the probe itself, reverse complement of the template window
	Seq string `json:"seq"`

	// GC percentage of the probe, 0-100
	GC float64 `json:"gcPercent"`

	// Tm is the probe-target melting temperature (C)
	Tm float64 `json:"tm"`

	// Gibbs is the probe-target free energy (kcal/mol)
	Gibbs float64 `json:"gibbs"`

	// Name of the probe, "<template>_<index>"
	Name string `json:"name"`
}

// materialize turns the chosen windows into probes. Everything arriving
// here was already accepted; there is no filtering left to do. Junction
// markers are stepped over when reading the template, though no accepted
// window contains one
func materialize(seq, name string, placements []placement, c *config.Config) []Probe {
	probes := make([]Probe, 0, len(placements))

	for i, p := range placements {
		window := windowAt(seq, p.start, p.length)
		probeSeq := ReverseComplement(window)

		gibbs, _ := Gibbs(window)
		tm, _ := Tm(window, c.Thermo.ProbeConc, c.Thermo.SodiumConc)

		probes = append(probes, Probe{
			Index:  i + 1,
			Start:  p.start,
			Length: len(probeSeq),
			Seq:    probeSeq,
			GC:     math.Round(GCContent(probeSeq) * 100),
			Tm:     round1(tm),
			Gibbs:  round1(gibbs),
			Name:   fmt.Sprintf("%s_%d", name, i+1),
		})
	}

	return probes
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Summary aggregates a probe set for reporting
type Summary struct {
	// Count of probes placed
	Count int

	// Score is the solution's mean badness
	Score float64

	// MeanGC across the probes, 0-100
	MeanGC float64

	// MeanTm across the probes (C)
	MeanTm float64

	// MeanGibbs across the probes (kcal/mol)
	MeanGibbs float64
}

// Summarize reduces the solution to the numbers worth printing at the end
// of a run
func (s Solution) Summarize() Summary {
	if len(s.Probes) == 0 {
		return Summary{}
	}

	gc := make([]float64, len(s.Probes))
	tm := make([]float64, len(s.Probes))
	gibbs := make([]float64, len(s.Probes))
	for i, p := range s.Probes {
		gc[i] = p.GC
		tm[i] = p.Tm
		gibbs[i] = p.Gibbs
	}

	return Summary{
		Count:     len(s.Probes),
		Score:     s.Score,
		MeanGC:    stat.Mean(gc, nil),
		MeanTm:    stat.Mean(tm, nil),
		MeanGibbs: stat.Mean(gibbs, nil),
	}
}
