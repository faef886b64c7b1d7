// Package probe designs smFISH probe sets against a target RNA sequence
package probe

import (
	"strings"
)

// alphabet is every character allowed in a cleaned target sequence. Beyond
// acgt these are n (unknown or repeat-masked), x/m/h/p/b (flagged by an
// upstream specificity check) and '>' (a junction between concatenated
// FASTA records)
const alphabet = "acgtnxmhpb>"

// invalidChars are the characters no probe window may contain
const invalidChars = "nxmhpb>"

// Clean lowercases seq and drops every character outside the alphabet,
// whitespace and digits included
func Clean(seq string) string {
	var b strings.Builder
	b.Grow(len(seq))

	for _, c := range strings.ToLower(seq) {
		if strings.ContainsRune(alphabet, c) {
			b.WriteRune(c)
		}
	}

	return b.String()
}

// hasInvalidChars reports whether any character in the window rules out a
// probe: masked characters, unknown bases, or a record junction
func hasInvalidChars(window string) bool {
	return strings.ContainsAny(window, invalidChars)
}

// Complement returns the complementary DNA sequence. Characters without a
// complement become n
func Complement(seq string) string {
	comp := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		comp[i] = complementBase(seq[i])
	}

	return string(comp)
}

// ReverseComplement returns the reverse complement DNA sequence: the
// physical probe for a template window
func ReverseComplement(seq string) string {
	rc := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		rc[len(seq)-1-i] = complementBase(seq[i])
	}

	return string(rc)
}

func complementBase(c byte) byte {
	switch c {
	case 'a':
		return 't'
	case 'c':
		return 'g'
	case 'g':
		return 'c'
	case 't':
		return 'a'
	}
	return 'n'
}

// GCContent returns the fraction of seq that is g or c
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}

	gc := 0
	for i := 0; i < len(seq); i++ {
		if seq[i] == 'g' || seq[i] == 'c' {
			gc++
		}
	}

	return float64(gc) / float64(len(seq))
}

// NucleotidePosition converts a 0-based position in a junction-marked
// sequence string to a 1-based nucleotide position. Junction markers before
// pos are not nucleotides and do not count
func NucleotidePosition(seq string, pos int) int {
	return pos - strings.Count(seq[:pos], ">") + 1
}

// windowAt reads count real bases forward of start, stepping over junction
// markers. Fewer bases come back when the sequence ends first
func windowAt(seq string, start, count int) string {
	var b strings.Builder
	b.Grow(count)

	for i := start; i < len(seq) && b.Len() < count; i++ {
		if seq[i] != '>' {
			b.WriteByte(seq[i])
		}
	}

	return b.String()
}
