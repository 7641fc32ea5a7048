package footprint

import (
	"errors"
	"math"
	"testing"
)

func TestNewLeontief_Errors(t *testing.T) {
	a, b, c := K("DE", "A"), K("FR", "B"), K("IT", "C")
	testCases := []struct {
		name    string
		rows    []SectorKey
		cols    []SectorKey
		entries [][]float64
		wantErr error
	}{
		{
			name:    "not square",
			rows:    []SectorKey{a, b},
			cols:    []SectorKey{a},
			entries: [][]float64{{1}, {0}},
			wantErr: ErrShapeMismatch,
		},
		{
			name:    "rows and columns differ",
			rows:    []SectorKey{a, b},
			cols:    []SectorKey{a, c},
			entries: [][]float64{{1, 0}, {0, 1}},
			wantErr: ErrShapeMismatch,
		},
		{
			name:    "short row",
			rows:    []SectorKey{a, b},
			cols:    []SectorKey{a, b},
			entries: [][]float64{{1, 0}, {1}},
			wantErr: ErrShapeMismatch,
		},
		{
			name:    "missing row",
			rows:    []SectorKey{a, b},
			cols:    []SectorKey{a, b},
			entries: [][]float64{{1, 0}},
			wantErr: ErrShapeMismatch,
		},
		{
			name:    "NaN entry",
			rows:    []SectorKey{a},
			cols:    []SectorKey{a},
			entries: [][]float64{{math.NaN()}},
			wantErr: ErrInvalidValue,
		},
		{
			name:    "duplicate row",
			rows:    []SectorKey{a, a},
			cols:    []SectorKey{a, b},
			entries: [][]float64{{1, 0}, {0, 1}},
			wantErr: ErrDuplicateKey,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLeontief(tc.rows, tc.cols, tc.entries)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("NewLeontief() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewLeontief_ColumnOrder(t *testing.T) {
	a, b := K("DE", "A"), K("FR", "B")
	// columns are labelled in the reverse order of rows.
	l, err := NewLeontief([]SectorKey{a, b}, []SectorKey{b, a}, [][]float64{
		{0.5, 1.0}, // L[a][b], L[a][a]
		{1.2, 0.2}, // L[b][b], L[b][a]
	})
	if err != nil {
		t.Fatalf("NewLeontief() failed: %v", err)
	}
	want := [2][2]float64{{1.0, 0.5}, {0.2, 1.2}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := l.At(i, j); got != want[i][j] {
				t.Errorf("At(%d, %d) = %v, want %v", i, j, got, want[i][j])
			}
		}
	}
	row, ok := l.Row(b)
	if !ok || row[0] != 0.2 || row[1] != 1.2 {
		t.Errorf("Row(FR/B) = %v, %v, want [0.2 1.2], true", row, ok)
	}
	if _, ok := l.Row(K("IT", "C")); ok {
		t.Error("Row(IT/C) found a key that is not in the matrix")
	}
}

func TestIdentity(t *testing.T) {
	l, err := Identity(K("DE", "A"), K("FR", "B"), K("IT", "C"))
	if err != nil {
		t.Fatalf("Identity() failed: %v", err)
	}
	for i := 0; i < l.Len(); i++ {
		for j := 0; j < l.Len(); j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if got := l.At(i, j); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", i, j, got, want)
			}
		}
	}
}
