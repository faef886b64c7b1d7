package probe

import (
	"reflect"
	"strings"
	"testing"
)

// collapsing the length range to one value must reproduce the fixed-length
// optimizer exactly: same scores, same windows, for every probe count
func Test_findBestProbesMixed_collapsedRange(t *testing.T) {
	cases := []struct {
		name string
		seq  string
		wide bool
		mask []bool
	}{
		{
			"uniform target",
			strings.Repeat("gcatgcatta", 6),
			false,
			nil,
		},
		{
			"junction in the middle",
			strings.Repeat("a", 30) + ">" + strings.Repeat("c", 30),
			true,
			nil,
		},
		{
			"masked stretch",
			strings.Repeat("gcatgcatta", 6),
			false,
			boolMask(60, 25, 26, 27, 28, 29, 30),
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			c := testConfig()
			if tt.wide {
				c = wideConfig()
			}
			c.Probes.MaxCount = 4

			table := badnessTable(tt.seq, 20, c)
			grid := badnessGrid(tt.seq, 20, 20, c)
			if tt.mask != nil {
				applyMask(table, tt.mask, 20)
				applyMaskGrid(grid, tt.mask, 20)
			}

			fixed := findBestProbes(table, 20, c.Probes.Spacer, c.Probes.MaxCount)
			mixed := findBestProbesMixed(grid, len(tt.seq), 20, c.Probes.Spacer, c.Probes.MaxCount)

			if !reflect.DeepEqual(fixed, mixed) {
				t.Errorf("mixed = %+v, fixed = %+v", mixed, fixed)
			}
		})
	}
}

// the same equivalence holds end to end thru Design
func Test_Design_collapsedRangeEquivalence(t *testing.T) {
	seq := strings.Repeat("gcatgcatta", 20)

	fixedConf := testConfig()
	fixedConf.Probes.MaxCount = 8

	mixedConf := testConfig()
	mixedConf.Probes.MaxCount = 8
	mixedConf.Probes.MinLength = 20
	mixedConf.Probes.MaxLength = 20

	fixed, err := Design(Request{Seq: seq, Name: "t"}, fixedConf)
	if err != nil {
		t.Fatalf("Design() fixed error = %v", err)
	}
	mixed, err := Design(Request{Seq: seq, Name: "t"}, mixedConf)
	if err != nil {
		t.Fatalf("Design() mixed error = %v", err)
	}

	if !reflect.DeepEqual(fixed.Solution, mixed.Solution) {
		t.Errorf("mixed solution = %+v, fixed solution = %+v", mixed.Solution, fixed.Solution)
	}
}

// freeing the length never costs probes: the mixed optimizer can always
// fall back on the fixed length it contains
func Test_Design_mixedPlacesAtLeastAsMany(t *testing.T) {
	// alternating strongly AT and strongly GC 30 nt blocks
	var b strings.Builder
	for i := 0; i < 6; i++ {
		if i%2 == 0 {
			b.WriteString(strings.Repeat("at", 15))
		} else {
			b.WriteString(strings.Repeat("gc", 15))
		}
	}
	seq := b.String()

	fixedConf := testConfig()
	fixed, err := Design(Request{Seq: seq, Name: "t"}, fixedConf)
	if err != nil {
		t.Fatalf("Design() fixed error = %v", err)
	}

	mixedConf := testConfig()
	mixedConf.Probes.MinLength = 18
	mixedConf.Probes.MaxLength = 22
	mixed, err := Design(Request{Seq: seq, Name: "t"}, mixedConf)
	if err != nil {
		t.Fatalf("Design() mixed error = %v", err)
	}

	if mixed.Solution.Count < fixed.Solution.Count {
		t.Errorf("mixed design placed %d probes, fixed placed %d", mixed.Solution.Count, fixed.Solution.Count)
	}
}

// mixed-length probes still honor the spacing invariant
func Test_Design_mixedSpacing(t *testing.T) {
	c := testConfig()
	c.Probes.MinLength = 18
	c.Probes.MaxLength = 22
	c.Probes.MaxCount = 8

	seq := strings.Repeat("gcatgcatta", 20)
	result, err := Design(Request{Seq: seq, Name: "t"}, c)
	if err != nil {
		t.Fatalf("Design() error = %v", err)
	}
	if !result.Solution.Found {
		t.Fatal("Design() found no mixed-length solution")
	}

	probes := result.Solution.Probes
	for i := 1; i < len(probes); i++ {
		gap := probes[i].Start - probes[i-1].Start
		if gap < probes[i-1].Length+c.Probes.Spacer {
			t.Errorf("probes %d and %d are %d apart, want at least %d",
				i-1, i, gap, probes[i-1].Length+c.Probes.Spacer)
		}
	}

	for _, p := range probes {
		if p.Length < c.Probes.MinLength || p.Length > c.Probes.MaxLength {
			t.Errorf("probe %d is %d bp, outside %d-%d", p.Index, p.Length, c.Probes.MinLength, c.Probes.MaxLength)
		}
	}
}
