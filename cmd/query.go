package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
)

// printJSONL prints the JSONL output of encode on stdout, filtered by query.
func printJSONL(query string, encode func(io.Writer) error) error {
	return writeJSONL(os.Stdout, query, encode)
}

// writeJSONL writes the JSONL output of encode to w.
//
// If query is set, it is a JSONPath expression evaluated against the array of
// all the lines, every result is printed on its own line.
func writeJSONL(w io.Writer, query string, encode func(io.Writer) error) error {
	if query == "" {
		return encode(w)
	}
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		return err
	}
	lines := []any{}
	dec := json.NewDecoder(&buf)
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		lines = append(lines, v)
	}

	res, err := jsonpath.Get(query, lines)
	if err != nil {
		return fmt.Errorf("invalid query %q: %w", query, err)
	}
	// jsonpath returns either a single value or a list of matches.
	list, ok := res.([]any)
	if !ok {
		list = []any{res}
	}
	enc := json.NewEncoder(w)
	for _, v := range list {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}
