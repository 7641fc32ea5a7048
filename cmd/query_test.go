package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/etnz/footprint"
)

func TestWriteJSONL(t *testing.T) {
	fp := &footprint.Footprint{
		Pressures: []string{"msa_ghg"},
		Entities: []footprint.EntityFootprint{
			{Entity: "BANK_1", Exposures: 2, Direct: []float64{1}, Totals: []float64{1.5}, GrandTotal: 1.5},
			{Entity: "BANK_2", Exposures: 1, Direct: []float64{2}, Totals: []float64{2.5}, GrandTotal: 2.5},
		},
	}
	encode := func(w io.Writer) error { return footprint.EncodeFootprint(w, fp) }

	testCases := []struct {
		query string
		want  string
	}{
		{query: "$[*].entity", want: "\"BANK_1\"\n\"BANK_2\"\n"},
		{query: "$[1].total", want: "2.5\n"},
		{query: "$[?(@.total > 2)].entity", want: "\"BANK_2\"\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeJSONL(&buf, tc.query, encode); err != nil {
				t.Fatalf("writeJSONL() failed: %v", err)
			}
			if got := buf.String(); got != tc.want {
				t.Errorf("writeJSONL(%q) = %q, want %q", tc.query, got, tc.want)
			}
		})
	}

	var raw bytes.Buffer
	if err := writeJSONL(&raw, "", encode); err != nil {
		t.Fatalf("writeJSONL() without query failed: %v", err)
	}
	if bytes.Count(raw.Bytes(), []byte("\n")) != 2 {
		t.Errorf("writeJSONL() without query = %q, want the two encoded lines", raw.String())
	}

	if err := writeJSONL(io.Discard, "$[", encode); err == nil {
		t.Error("writeJSONL() with an invalid query expected an error")
	}
}
