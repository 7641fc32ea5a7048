package footprint

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"
)

// This file contains the JSONL codec of the engine inputs and outputs.
//
// Every table is a JSONL stream: one JSON object per line, empty lines are
// ignored. Objects are written with a stable field order so that outputs are
// diff friendly.

const (
	attrCountry      = "country"
	attrSector       = "sector"
	attrRow          = "row"
	attrFirm         = "firm"
	attrEntity       = "entity"
	attrCounterparty = "counterparty"
)

// field is a JSON object member, in document order.
type field struct {
	name  string
	value json.RawMessage
}

// decodeFields parses a JSON object preserving the members order.
func decodeFields(line []byte) ([]field, error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("not a json object")
	}
	var fields []field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("invalid member name %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("invalid value for %q: %w", name, err)
		}
		fields = append(fields, field{name, value})
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return fields, nil
}

// scanLines calls f for every non empty line of r, with its 1-based number.
func scanLines(r io.Reader, f func(i int, line []byte) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024) // leontief rows are long
	i := 0
	for scanner.Scan() {
		i++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if err := f(i, line); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
	}
	return scanner.Err()
}

// decodeKey reads the country and sector members of a row.
func decodeKey(fields []field) (k SectorKey, rest []field, err error) {
	for _, f := range fields {
		switch f.name {
		case attrCountry:
			err = json.Unmarshal(f.value, &k.Country)
		case attrSector:
			err = json.Unmarshal(f.value, &k.Sector)
		default:
			rest = append(rest, f)
		}
		if err != nil {
			return k, nil, fmt.Errorf("property %q must be of type 'string': %w", f.name, err)
		}
	}
	if k.Country == "" || k.Sector == "" {
		return k, nil, fmt.Errorf("missing the properties %q and %q", attrCountry, attrSector)
	}
	return k, rest, nil
}

// decodeNumber decodes a json number, null is decoded as NaN when nullable.
func decodeNumber(name string, raw json.RawMessage, nullable bool) (float64, error) {
	if nullable && bytes.Equal(raw, []byte("null")) {
		return math.NaN(), nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, fmt.Errorf("property %q must be of type 'number': %w", name, err)
	}
	return v, nil
}

// columnSet decodes the numeric members of a row into the order given by
// columns. If columns is empty, it is initialized from the row.
func columnSet(columns *[]string, fields []field, nullable bool) ([]float64, error) {
	if len(*columns) == 0 {
		for _, f := range fields {
			*columns = append(*columns, f.name)
		}
	}
	if len(fields) != len(*columns) {
		return nil, fmt.Errorf("got %d columns, want %d %v", len(fields), len(*columns), *columns)
	}
	values := make([]float64, len(*columns))
	set := make([]bool, len(*columns))
	for _, f := range fields {
		j := slices.Index(*columns, f.name)
		if j < 0 {
			return nil, fmt.Errorf("unexpected column %q", f.name)
		}
		if set[j] {
			return nil, fmt.Errorf("column %q: %w", f.name, ErrDuplicateKey)
		}
		v, err := decodeNumber(f.name, f.value, nullable)
		if err != nil {
			return nil, err
		}
		values[j], set[j] = v, true
	}
	return values, nil
}

// DecodeTable reads an intensity or dependency table.
//
// Each line is an object with "country", "sector" and one number per column.
// Columns are in the order of the first line.
//
//	{"country":"DE","sector":"A","msa_ghg":1e-6,"msa_lu":3e-6}
func DecodeTable(r io.Reader) (*Table, error) {
	var columns []string
	var rows []Row
	err := scanLines(r, func(_ int, line []byte) error {
		fields, err := decodeFields(line)
		if err != nil {
			return fmt.Errorf("not a correct json: %w", err)
		}
		key, rest, err := decodeKey(fields)
		if err != nil {
			return err
		}
		values, err := columnSet(&columns, rest, false)
		if err != nil {
			return fmt.Errorf("sector %s: %w", key, err)
		}
		rows = append(rows, Row{Key: key, Values: values})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return NewTable(columns, rows)
}

// EncodeTable writes a table in the format read by DecodeTable.
func EncodeTable(w io.Writer, t *Table) error {
	for _, r := range t.Rows() {
		var o jsonObjectWriter
		o.Append(attrCountry, r.Key.Country)
		o.Append(attrSector, r.Key.Sector)
		o.Columns(t.columns, "", r.Values)
		if err := writeLine(w, &o); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLeontief reads a Leontief inverse, one matrix row per line.
//
// The "row" member maps column keys, as formatted by SectorKey.String, to
// entries. Columns are in the order of the first line.
//
//	{"country":"DE","sector":"A","row":{"DE/A":1.2,"FR/B":0.3}}
func DecodeLeontief(r io.Reader) (*Leontief, error) {
	var rows []SectorKey
	var colNames []string
	var entries [][]float64
	err := scanLines(r, func(_ int, line []byte) error {
		fields, err := decodeFields(line)
		if err != nil {
			return fmt.Errorf("not a correct json: %w", err)
		}
		key, rest, err := decodeKey(fields)
		if err != nil {
			return err
		}
		if len(rest) != 1 || rest[0].name != attrRow {
			return fmt.Errorf("sector %s: want a single %q property besides the key", key, attrRow)
		}
		cells, err := decodeFields(rest[0].value)
		if err != nil {
			return fmt.Errorf("sector %s: property %q must be an object: %w", key, attrRow, err)
		}
		values, err := columnSet(&colNames, cells, false)
		if err != nil {
			return fmt.Errorf("sector %s: %w: %w", key, err, ErrShapeMismatch)
		}
		rows = append(rows, key)
		entries = append(entries, values)
		return nil
	})
	if err != nil {
		return nil, err
	}
	cols := make([]SectorKey, len(colNames))
	for i, name := range colNames {
		if cols[i], err = ParseSectorKey(name); err != nil {
			return nil, err
		}
	}
	return NewLeontief(rows, cols, entries)
}

// EncodeLeontief writes a Leontief inverse in the format read by DecodeLeontief.
func EncodeLeontief(w io.Writer, l *Leontief) error {
	n := l.Len()
	for i := 0; i < n; i++ {
		var cells jsonObjectWriter
		for j := 0; j < n; j++ {
			cells.Append(l.universe.Key(j).String(), l.At(i, j))
		}
		var o jsonObjectWriter
		o.Append(attrCountry, l.universe.Key(i).Country)
		o.Append(attrSector, l.universe.Key(i).Sector)
		o.Append(attrRow, &cells)
		if err := writeLine(w, &o); err != nil {
			return err
		}
	}
	return nil
}

// jexposure is the JSON form of an exposure.
type jexposure struct {
	Entity       string      `json:"entity"`
	Counterparty string      `json:"counterparty"`
	Amount       json.Number `json:"amount"`
	Currency     string      `json:"currency,omitempty"`
}

// DecodeExposures reads a loan book.
//
//	{"entity":"BANK_1","counterparty":"FIRM_1","amount":1000000,"currency":"EUR"}
func DecodeExposures(r io.Reader) ([]Exposure, error) {
	var exposures []Exposure
	err := scanLines(r, func(_ int, line []byte) error {
		var je jexposure
		if err := json.Unmarshal(line, &je); err != nil {
			return fmt.Errorf("not a correct json: %w", err)
		}
		if je.Entity == "" || je.Counterparty == "" {
			return fmt.Errorf("missing the properties %q and %q", attrEntity, attrCounterparty)
		}
		amount, err := ParseMoney(je.Amount.String(), je.Currency)
		if err != nil {
			return err
		}
		exposures = append(exposures, Exposure{Entity: je.Entity, Counterparty: je.Counterparty, Amount: amount})
		return nil
	})
	return exposures, err
}

// EncodeExposures writes exposures in the format read by DecodeExposures.
func EncodeExposures(w io.Writer, exposures []Exposure) error {
	for _, e := range exposures {
		var o jsonObjectWriter
		o.Append(attrEntity, e.Entity)
		o.Append(attrCounterparty, e.Counterparty)
		e.Amount.appendJSON(&o)
		if err := writeLine(w, &o); err != nil {
			return err
		}
	}
	return nil
}

// DecodeCounterparties reads counterparty attributes.
//
//	{"counterparty":"FIRM_1","country":"DE","sector":"A"}
func DecodeCounterparties(r io.Reader) (Counterparties, error) {
	cps := make(Counterparties)
	err := scanLines(r, func(_ int, line []byte) error {
		var jc struct {
			Counterparty string `json:"counterparty"`
			Country      string `json:"country"`
			Sector       string `json:"sector"`
		}
		if err := json.Unmarshal(line, &jc); err != nil {
			return fmt.Errorf("not a correct json: %w", err)
		}
		if jc.Counterparty == "" || jc.Country == "" || jc.Sector == "" {
			return fmt.Errorf("missing one of the properties %q, %q or %q", attrCounterparty, attrCountry, attrSector)
		}
		if _, exists := cps[jc.Counterparty]; exists {
			return fmt.Errorf("counterparty %q: %w", jc.Counterparty, ErrDuplicateKey)
		}
		cps[jc.Counterparty] = K(jc.Country, jc.Sector)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cps, nil
}

// EncodeCounterparties writes counterparties sorted by id.
func EncodeCounterparties(w io.Writer, cps Counterparties) error {
	ids := make([]string, 0, len(cps))
	for id := range cps {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		var o jsonObjectWriter
		o.Append(attrCounterparty, id)
		o.Append(attrCountry, cps[id].Country)
		o.Append(attrSector, cps[id].Sector)
		if err := writeLine(w, &o); err != nil {
			return err
		}
	}
	return nil
}

// DecodeScoreSheet reads firm level scores. A null score is read as NaN.
//
//	{"firm":"F1","floods":0.6,"heat_stress":null}
func DecodeScoreSheet(r io.Reader) (*ScoreSheet, error) {
	sheet := &ScoreSheet{Scores: make(map[string][]float64)}
	err := scanLines(r, func(_ int, line []byte) error {
		fields, err := decodeFields(line)
		if err != nil {
			return fmt.Errorf("not a correct json: %w", err)
		}
		var firm string
		var rest []field
		for _, f := range fields {
			if f.name != attrFirm {
				rest = append(rest, f)
				continue
			}
			if err := json.Unmarshal(f.value, &firm); err != nil {
				return fmt.Errorf("property %q must be of type 'string': %w", attrFirm, err)
			}
		}
		if firm == "" {
			return fmt.Errorf("missing the property %q", attrFirm)
		}
		if _, exists := sheet.Scores[firm]; exists {
			return fmt.Errorf("firm %q: %w", firm, ErrDuplicateKey)
		}
		values, err := columnSet(&sheet.Columns, rest, true)
		if err != nil {
			return fmt.Errorf("firm %q: %w", firm, err)
		}
		sheet.Scores[firm] = values
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sheet, nil
}

// EncodeFootprint writes one line per entity.
//
//	{"entity":"BANK_1","exposures":2,"msa_ghg":1,"msa_lu":2,"total":3}
func EncodeFootprint(w io.Writer, fp *Footprint) error {
	for _, ef := range fp.Entities {
		var o jsonObjectWriter
		o.Append(attrEntity, ef.Entity)
		o.Append("exposures", ef.Exposures)
		o.Optional("unmodeled", ef.Unmodeled)
		o.Columns(fp.Pressures, "", ef.Totals)
		o.Columns(fp.Pressures, "_direct", ef.Direct)
		o.Append("total", ef.GrandTotal)
		if err := writeLine(w, &o); err != nil {
			return err
		}
	}
	return nil
}

// EncodeDependencies writes one line per sector, with three members per
// service.
//
//	{"country":"DE","sector":"A","pollination_direct":0.5,"pollination_indirect":0.2,"pollination_total":0.6}
func EncodeDependencies(w io.Writer, ds *DependencyScores) error {
	for _, d := range ds.Rows {
		var o jsonObjectWriter
		o.Append(attrCountry, d.Key.Country)
		o.Append(attrSector, d.Key.Sector)
		appendScores(&o, ds.Services, d)
		if err := writeLine(w, &o); err != nil {
			return err
		}
	}
	return nil
}

// appendScores appends the three scores of every service, grouped by service.
func appendScores(o *jsonObjectWriter, services []string, d Dependency) {
	for s, service := range services {
		o.Append(service+"_direct", d.Direct[s])
		o.Append(service+"_indirect", d.Indirect[s])
		o.Append(service+"_total", d.Total[s])
	}
}

// EncodeNetwork writes one line per edge.
//
//	{"a":"floods","b":"flood_protection","weight":0.35}
func EncodeNetwork(w io.Writer, n *Network) error {
	for _, e := range n.Edges {
		var o jsonObjectWriter
		o.Append("a", e.A)
		o.Append("b", e.B)
		o.Append("weight", e.Weight)
		if err := writeLine(w, &o); err != nil {
			return err
		}
	}
	return nil
}

// writeLine writes a single JSONL line.
func writeLine(w io.Writer, o *jsonObjectWriter) error {
	b, err := o.MarshalJSON()
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// EncodeFirmDependencies writes one line per firm, with the scores of its
// sector.
//
//	{"firm":"FIRM_1","country":"DE","sector":"A","pollination_direct":0.5,...}
func EncodeFirmDependencies(w io.Writer, services []string, firms []FirmDependency) error {
	for _, fd := range firms {
		var o jsonObjectWriter
		o.Append(attrFirm, fd.Firm)
		o.Append(attrCountry, fd.Key.Country)
		o.Append(attrSector, fd.Key.Sector)
		appendScores(&o, services, fd.Dependency)
		if err := writeLine(w, &o); err != nil {
			return err
		}
	}
	return nil
}

// EncodeScoreSheet writes firm scores sorted by firm id. NaN scores are
// written as null.
func EncodeScoreSheet(w io.Writer, sheet *ScoreSheet) error {
	firms := make([]string, 0, len(sheet.Scores))
	for firm := range sheet.Scores {
		firms = append(firms, firm)
	}
	slices.Sort(firms)
	for _, firm := range firms {
		var o jsonObjectWriter
		o.Append(attrFirm, firm)
		for i, c := range sheet.Columns {
			var v any = sheet.Scores[firm][i]
			if math.IsNaN(sheet.Scores[firm][i]) {
				v = nil
			}
			o.Append(c, v)
		}
		if err := writeLine(w, &o); err != nil {
			return err
		}
	}
	return nil
}
