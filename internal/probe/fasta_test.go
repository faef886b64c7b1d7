package probe

import (
	"reflect"
	"strings"
	"testing"
)

func Test_ReadFasta(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Record
		wantErr bool
	}{
		{
			"single record",
			">gene1\nacgt\nACGT\n",
			[]Record{{Header: "gene1", Seq: "acgtACGT"}},
			false,
		},
		{
			"multiple records with blank lines",
			">exon1\naaaa\n\n>exon2\ncccc\n",
			[]Record{{Header: "exon1", Seq: "aaaa"}, {Header: "exon2", Seq: "cccc"}},
			false,
		},
		{
			"sequence before any header",
			"acgt\n>gene1\nacgt\n",
			nil,
			true,
		},
		{
			"empty input",
			"",
			nil,
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadFasta(strings.NewReader(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFasta() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadFasta() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func Test_Concatenate(t *testing.T) {
	records := []Record{
		{Header: "exon1", Seq: "aaaa"},
		{Header: "exon2", Seq: "cccc"},
	}

	if got := Concatenate(records); got != "aaaa>cccc" {
		t.Errorf("Concatenate() = %q, want %q", got, "aaaa>cccc")
	}

	// a single record needs no junction
	if got := Concatenate(records[:1]); got != "aaaa" {
		t.Errorf("Concatenate() = %q, want %q", got, "aaaa")
	}
}

func Test_RepeatMask(t *testing.T) {
	m := RepeatMask("acgnnacg")

	if m.Name != "repeat" || m.Code != 'R' {
		t.Errorf("RepeatMask() name/code = %q/%q, want repeat/R", m.Name, string(m.Code))
	}
	want := []bool{false, false, false, true, true, false, false, false}
	if !reflect.DeepEqual(m.Excluded, want) {
		t.Errorf("RepeatMask() excluded = %v, want %v", m.Excluded, want)
	}
	if m.Count() != 2 {
		t.Errorf("RepeatMask() count = %d, want 2", m.Count())
	}
}
