package footprint

import (
	"errors"
	"math"
	"testing"
)

// newTestTable is a helper creating a table that must be valid.
func newTestTable(t *testing.T, columns []string, rows ...Row) *Table {
	t.Helper()
	table, err := NewTable(columns, rows)
	if err != nil {
		t.Fatalf("NewTable() failed: %v", err)
	}
	return table
}

func TestNewTable_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		columns []string
		rows    []Row
		wantErr error
	}{
		{
			name:    "duplicate key",
			columns: []string{"ghg"},
			rows:    []Row{{K("DE", "A"), []float64{1}}, {K("DE", "A"), []float64{2}}},
			wantErr: ErrDuplicateKey,
		},
		{
			name:    "duplicate column",
			columns: []string{"ghg", "ghg"},
			wantErr: ErrDuplicateKey,
		},
		{
			name:    "wrong arity",
			columns: []string{"ghg", "lu"},
			rows:    []Row{{K("DE", "A"), []float64{1}}},
			wantErr: ErrShapeMismatch,
		},
		{
			name:    "negative value",
			columns: []string{"ghg"},
			rows:    []Row{{K("DE", "A"), []float64{-1}}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "NaN value",
			columns: []string{"ghg"},
			rows:    []Row{{K("DE", "A"), []float64{math.NaN()}}},
			wantErr: ErrInvalidValue,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTable(tc.columns, tc.rows)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("NewTable() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestTable_Lookups(t *testing.T) {
	table := newTestTable(t, []string{"ghg", "lu"},
		Row{K("DE", "A"), []float64{1, 2}},
		Row{K("FR", "B"), []float64{3, 4}},
	)

	row, ok := table.Row(K("FR", "B"))
	if !ok || row[0] != 3 || row[1] != 4 {
		t.Errorf("Row(FR/B) = %v, %v, want [3 4], true", row, ok)
	}
	row[0] = 100
	if again, _ := table.Row(K("FR", "B")); again[0] != 3 {
		t.Error("Row() returned the internal storage, the table was mutated")
	}

	if _, err := table.Lookup(K("IT", "C")); !errors.Is(err, ErrKeyMismatch) {
		t.Errorf("Lookup(IT/C) error = %v, want ErrKeyMismatch", err)
	}
	if zero := table.RowOrZero(K("IT", "C")); len(zero) != 2 || zero[0] != 0 || zero[1] != 0 {
		t.Errorf("RowOrZero(IT/C) = %v, want [0 0]", zero)
	}

	lu, err := table.Column("lu")
	if err != nil || lu[0] != 2 || lu[1] != 4 {
		t.Errorf("Column(lu) = %v, %v, want [2 4]", lu, err)
	}
	if _, err := table.Column("water"); !errors.Is(err, ErrKeyMismatch) {
		t.Errorf("Column(water) error = %v, want ErrKeyMismatch", err)
	}
}

func TestTable_Scale(t *testing.T) {
	table := newTestTable(t, []string{"ghg"}, Row{K("DE", "A"), []float64{1.5}})
	scaled, err := table.Scale(2)
	if err != nil {
		t.Fatalf("Scale() failed: %v", err)
	}
	if got, _ := scaled.Row(K("DE", "A")); got[0] != 3 {
		t.Errorf("Scale(2) = %v, want [3]", got)
	}
	if got, _ := table.Row(K("DE", "A")); got[0] != 1.5 {
		t.Errorf("Scale() mutated the original table: %v", got)
	}
	if _, err := table.Scale(-1); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Scale(-1) error = %v, want ErrInvalidValue", err)
	}
}
