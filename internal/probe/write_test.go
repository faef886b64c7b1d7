package probe

import (
	"testing"
)

func Test_formatOligos(t *testing.T) {
	result := Result{
		Seq: "aa>aaaaaaa",
		Solution: Solution{
			Probes: []Probe{
				{Index: 1, Start: 4, Length: 4, Seq: "tttt", GC: 0, Tm: 55.5, Gibbs: -22.3, Name: "gene_1"},
			},
			Found: true,
			Count: 1,
		},
	}

	// start 4 in the string is nucleotide 4: the junction does not count
	want := "1\t4\t0\t55.5\t-22.3\ttttt\tgene_1\n"
	if got := formatOligos(result); got != want {
		t.Errorf("formatOligos() = %q, want %q", got, want)
	}

	// no probes, no lines
	if got := formatOligos(Result{Seq: "acgt"}); got != "" {
		t.Errorf("formatOligos() = %q for an empty solution, want empty", got)
	}
}

func Test_FormatHitsTable(t *testing.T) {
	type args struct {
		seq  string
		hits map[string][]int
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			"single series",
			args{"aaaa", map[string][]int{"16mer": {5, 3, 9, 1}}},
			"position\thits_16mer\n" +
				"1\t5\n" +
				"2\t3\n" +
				"3\t9\n" +
				"4\t1\n",
		},
		{
			// the junction gets no row and does not count toward numbering
			"junction skipped",
			args{"aa>aa", map[string][]int{"16mer": {5, 3, 9, 1, 2}}},
			"position\thits_16mer\n" +
				"1\t5\n" +
				"2\t3\n" +
				"3\t1\n" +
				"4\t2\n",
		},
		{
			// a shorter series reads as 0 past its end; columns sort by name
			"short series pads with zeros",
			args{"aaaa", map[string][]int{"16mer": {7, 8}, "12mer": {1, 2, 3, 4}}},
			"position\thits_12mer\thits_16mer\n" +
				"1\t1\t7\n" +
				"2\t2\t8\n" +
				"3\t3\t0\n" +
				"4\t4\t0\n",
		},
		{
			"no series",
			args{"aaaa", nil},
			"position\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatHitsTable(tt.args.seq, tt.args.hits); got != tt.want {
				t.Errorf("FormatHitsTable() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_formatSeqView(t *testing.T) {
	result := Result{
		Seq:         "aaaatttt",
		MaskStrings: []string{"aaFFtttt"},
		Solution: Solution{
			Probes: []Probe{
				{Index: 1, Start: 2, Length: 4, Seq: "ttaa", GC: 0, Tm: 40, Gibbs: -21, Name: "gene_1"},
			},
			Found: true,
			Count: 1,
		},
	}

	// sequence, the mask overlay, the probe's complement under its window,
	// then as much of the label as fits
	want := "aaaatttt\n" +
		"aaFFtttt\n" +
		"  ttaa  \n" +
		"  Prb# 1\n" +
		"\n"
	if got := formatSeqView(result, 110); got != want {
		t.Errorf("formatSeqView() = %q, want %q", got, want)
	}
}

// wrapping splits every layer at the same width
func Test_formatSeqView_wraps(t *testing.T) {
	result := Result{
		Seq:         "aaaatttt",
		MaskStrings: []string{"aaaatttt"},
	}

	want := "aaaa\n" +
		"aaaa\n" +
		"    \n" +
		"    \n" +
		"\n" +
		"tttt\n" +
		"tttt\n" +
		"    \n" +
		"    \n" +
		"\n"
	if got := formatSeqView(result, 4); got != want {
		t.Errorf("formatSeqView() = %q, want %q", got, want)
	}
}
