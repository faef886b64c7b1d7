package probe

import (
	"math"
)

// Thermodynamics of the probe-target duplex. The probe is DNA and the
// target is RNA, so the nearest-neighbor set is the RNA/DNA hybrid table of
// Sugimoto et al (1995) rather than the DNA/DNA unified set. Parameters are
// keyed by the template dinucleotide read 5'->3' (t stands in for the RNA's
// u). dH is kcal/mol, dS is cal/(K*mol).

const (
	// gas constant in cal/(K*mol)
	rCal = 1.9872

	// gibbsTemp is the absolute temperature dG is reported at (37 C)
	gibbsTemp = 310.15
)

type nnParams struct {
	dH float64
	dS float64
}

// RNA/DNA hybrid propagation parameters at 1 M NaCl
var hybridParams = map[string]nnParams{
	"aa": {-7.8, -21.9},
	"ac": {-5.9, -12.3},
	"ag": {-9.1, -23.5},
	"at": {-8.3, -23.9},
	"ca": {-9.0, -26.1},
	"cc": {-9.3, -23.2},
	"cg": {-16.3, -47.1},
	"ct": {-7.0, -19.7},
	"ga": {-5.5, -13.5},
	"gc": {-8.0, -17.1},
	"gg": {-12.8, -31.9},
	"gt": {-7.8, -21.6},
	"ta": {-7.8, -23.2},
	"tc": {-8.6, -22.9},
	"tg": {-10.4, -28.4},
	"tt": {-11.5, -36.4},
}

// hybridInit is the duplex initiation term
var hybridInit = nnParams{1.9, -3.9}

// duplexParams sums dH/dS over the window's overlapping dinucleotides plus
// initiation. ok is false when any dinucleotide has no table entry: n,
// ambiguity codes, mask characters or a junction marker
func duplexParams(window string) (dH, dS float64, ok bool) {
	if len(window) < 2 {
		return 0, 0, false
	}

	dH, dS = hybridInit.dH, hybridInit.dS
	for i := 0; i+1 < len(window); i++ {
		prm, found := hybridParams[window[i:i+2]]
		if !found {
			return 0, 0, false
		}
		dH += prm.dH
		dS += prm.dS
	}

	return dH, dS, true
}

// Gibbs returns the free energy (kcal/mol) of the probe-target duplex at
// 37 C. ok is false for windows the nearest-neighbor table cannot score
func Gibbs(window string) (gibbs float64, ok bool) {
	dH, dS, ok := duplexParams(window)
	if !ok {
		return 0, false
	}

	return dH - gibbsTemp*dS/1000.0, true
}

// Tm returns the melting temperature (C) of the probe-target duplex via the
// van't Hoff relation, adjusted for the total strand concentration conc
// (mol/L) and monovalent cation concentration na (mol/L)
func Tm(window string, conc, na float64) (tm float64, ok bool) {
	dH, dS, ok := duplexParams(window)
	if !ok || conc <= 0 || na <= 0 {
		return 0, false
	}

	tmK := dH * 1000.0 / (dS + rCal*math.Log(conc/4.0))

	return tmK - 273.15 + 16.6*math.Log10(na), true
}
