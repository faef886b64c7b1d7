package probe

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is a single FASTA record
type Record struct {
	Header string
	Seq    string
}

// ReadFasta parses FASTA records from r. Lines beginning with '>' start a
// record; sequence lines are concatenated as-is
func ReadFasta(r io.Reader) ([]Record, error) {
	var records []Record
	var current Record
	open := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ">") {
			if open {
				records = append(records, current)
			}
			current = Record{Header: strings.TrimSpace(line[1:])}
			open = true
			continue
		}

		if !open {
			return nil, fmt.Errorf("sequence data before any FASTA header")
		}
		current.Seq += line
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if open {
		records = append(records, current)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no FASTA records found")
	}

	return records, nil
}

// ReadFastaFile reads every record of the FASTA file at path
func ReadFastaFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the FASTA file: %v", err)
	}
	defer f.Close()

	records, err := ReadFasta(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v", path, err)
	}
	return records, nil
}

// Concatenate joins the record sequences into one template string with '>'
// junction markers between records, so no probe window can span two
// records
func Concatenate(records []Record) string {
	seqs := make([]string, len(records))
	for i, r := range records {
		seqs[i] = r.Seq
	}
	return strings.Join(seqs, ">")
}

// RepeatMask builds the repeat exclusion mask from the n positions of a
// repeat-masked copy of the template, or of the template itself when the
// input arrived pre-masked
func RepeatMask(maskedSeq string) Mask {
	excluded := make([]bool, len(maskedSeq))
	for i := 0; i < len(maskedSeq); i++ {
		excluded[i] = maskedSeq[i] == 'n'
	}

	return Mask{Name: "repeat", Code: 'R', Excluded: excluded}
}
