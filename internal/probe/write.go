package probe

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// seqViewWidth is how many characters of sequence go on each line of the
// visualization file
const seqViewWidth = 110

// formatOligos renders the probe list as TSV:
// index, 1-based nucleotide start, GC%, Tm, dG, probe sequence, name
func formatOligos(result Result) string {
	var b strings.Builder

	for _, p := range result.Solution.Probes {
		start := NucleotidePosition(result.Seq, p.Start)
		fmt.Fprintf(&b, "%d\t%d\t%.0f\t%.1f\t%.1f\t%s\t%s\n",
			p.Index, start, p.GC, p.Tm, p.Gibbs, p.Seq, p.Name)
	}

	return b.String()
}

// writeOligos writes the probe TSV to the fs at path
func writeOligos(path string, result Result) error {
	if err := os.WriteFile(path, []byte(formatOligos(result)), 0666); err != nil {
		return fmt.Errorf("failed to write the oligos file: %v", err)
	}
	return nil
}

// FormatHitsTable renders per-position alignment hit counts as TSV, one
// column per supplied series (sorted by name) and one row per nucleotide.
// Junction markers get no row and do not advance the 1-based position
// numbering. A series shorter than the longest one reads as 0 past its end
func FormatHitsTable(seq string, hits map[string][]int) string {
	names := make([]string, 0, len(hits))
	maxLen := 0
	for name, counts := range hits {
		names = append(names, name)
		if len(counts) > maxLen {
			maxLen = len(counts)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("position")
	for _, name := range names {
		b.WriteString("\thits_")
		b.WriteString(name)
	}
	b.WriteByte('\n')

	pos := 0
	for i := 0; i < maxLen; i++ {
		if i < len(seq) && seq[i] == '>' {
			continue
		}
		pos++

		fmt.Fprintf(&b, "%d", pos)
		for _, name := range names {
			counts := hits[name]
			value := 0
			if i < len(counts) {
				value = counts[i]
			}
			fmt.Fprintf(&b, "\t%d", value)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// WriteHitsTable writes the hit-count TSV to the fs at path
func WriteHitsTable(path, seq string, hits map[string][]int) error {
	if err := os.WriteFile(path, []byte(FormatHitsTable(seq, hits)), 0666); err != nil {
		return fmt.Errorf("failed to write the hits file: %v", err)
	}
	return nil
}

// formatSeqView renders the alignment visualization: wrapped blocks of the
// template sequence, one overlay line per mask plus the F feasibility
// string, the probes' complementary bases under their windows, and a label
// line per probe
func formatSeqView(result Result, width int) string {
	seq := result.Seq

	align := blankLine(len(seq))
	labels := blankLine(len(seq))

	for _, p := range result.Solution.Probes {
		window := windowAt(seq, p.Start, p.Length)
		comp := Complement(window)

		// lay the complement under the window, stepping over junctions
		ci := 0
		for i := p.Start; i < len(seq) && ci < len(comp); i++ {
			if seq[i] == '>' {
				continue
			}
			align[i] = comp[ci]
			ci++
		}

		label := fmt.Sprintf("Prb# %d,Pos %d,FE %.1f,GC %.0f",
			p.Index, NucleotidePosition(seq, p.Start), p.Gibbs, p.GC)
		for i := 0; i < len(label) && p.Start+i < len(labels); i++ {
			labels[p.Start+i] = label[i]
		}
	}

	var b strings.Builder
	for start := 0; start < len(seq); start += width {
		end := start + width
		if end > len(seq) {
			end = len(seq)
		}

		b.WriteString(seq[start:end])
		b.WriteByte('\n')
		for _, mask := range result.MaskStrings {
			b.WriteString(mask[start:end])
			b.WriteByte('\n')
		}
		b.Write(align[start:end])
		b.WriteByte('\n')
		b.Write(labels[start:end])
		b.WriteString("\n\n")
	}

	return b.String()
}

// writeSeqView writes the visualization to the fs at path
func writeSeqView(path string, result Result) error {
	if err := os.WriteFile(path, []byte(formatSeqView(result, seqViewWidth)), 0666); err != nil {
		return fmt.Errorf("failed to write the seq file: %v", err)
	}
	return nil
}

func blankLine(n int) []byte {
	line := make([]byte, n)
	for i := range line {
		line[i] = ' '
	}
	return line
}
