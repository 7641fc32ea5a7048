package footprint

import (
	"fmt"
	"strings"
)

// SectorKey identifies an economic segment: a sector in a country.
//
// It is a comparable value, so it can be used directly as a map key.
type SectorKey struct {
	Country string
	Sector  string
}

// K is a short factory for a SectorKey.
func K(country, sector string) SectorKey { return SectorKey{Country: country, Sector: sector} }

// String returns the "COUNTRY/SECTOR" representation of the key.
func (k SectorKey) String() string { return k.Country + "/" + k.Sector }

// ParseSectorKey parses the representation returned by String.
//
// Country codes never contain a '/', so the key is split at the first one, the
// sector part may contain more.
func ParseSectorKey(s string) (SectorKey, error) {
	country, sector, ok := strings.Cut(s, "/")
	if !ok || country == "" || sector == "" {
		return SectorKey{}, fmt.Errorf("invalid sector key %q: want COUNTRY/SECTOR", s)
	}
	return K(country, sector), nil
}

// Universe is an ordered set of sector keys.
//
// The order is the one used for every summation so that results are
// reproducible bit for bit.
type Universe struct {
	keys []SectorKey
	pos  map[SectorKey]int
}

// NewUniverse creates a universe with keys in the given order.
func NewUniverse(keys ...SectorKey) (*Universe, error) {
	u := &Universe{
		keys: make([]SectorKey, 0, len(keys)),
		pos:  make(map[SectorKey]int, len(keys)),
	}
	for _, k := range keys {
		if _, exists := u.pos[k]; exists {
			return nil, fmt.Errorf("sector %s: %w", k, ErrDuplicateKey)
		}
		u.pos[k] = len(u.keys)
		u.keys = append(u.keys, k)
	}
	return u, nil
}

// Len returns the number of keys.
func (u *Universe) Len() int { return len(u.keys) }

// Key returns the i-th key.
func (u *Universe) Key(i int) SectorKey { return u.keys[i] }

// Keys returns a copy of the keys in universe order.
func (u *Universe) Keys() []SectorKey {
	keys := make([]SectorKey, len(u.keys))
	copy(keys, u.keys)
	return keys
}

// Index returns the position of k, and false if k is not in the universe.
func (u *Universe) Index(k SectorKey) (int, bool) {
	i, ok := u.pos[k]
	return i, ok
}

// Has reports whether k is in the universe.
func (u *Universe) Has(k SectorKey) bool {
	_, ok := u.pos[k]
	return ok
}

// Diff returns the keys of u missing in v, and the keys of v not in u.
// Both lists are in their own universe order.
func (u *Universe) Diff(v *Universe) (missing, extra []SectorKey) {
	for _, k := range u.keys {
		if !v.Has(k) {
			missing = append(missing, k)
		}
	}
	for _, k := range v.keys {
		if !u.Has(k) {
			extra = append(extra, k)
		}
	}
	return missing, extra
}

// SameSet reports whether u and v hold exactly the same keys, in any order.
func (u *Universe) SameSet(v *Universe) bool {
	if u.Len() != v.Len() {
		return false
	}
	missing, _ := u.Diff(v)
	return len(missing) == 0
}

// mismatch formats the difference between two universes for error messages.
func mismatch(u, v *Universe) string {
	const limit = 5
	missing, extra := u.Diff(v)
	list := func(keys []SectorKey) string {
		s := make([]string, 0, limit+1)
		for i, k := range keys {
			if i == limit {
				s = append(s, fmt.Sprintf("... (%d more)", len(keys)-limit))
				break
			}
			s = append(s, k.String())
		}
		return strings.Join(s, ", ")
	}
	var b strings.Builder
	if len(missing) > 0 {
		fmt.Fprintf(&b, "missing [%s]", list(missing))
	}
	if len(extra) > 0 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "extra [%s]", list(extra))
	}
	return b.String()
}
