package location

import "strings"

// Field names with special meaning during repair, sanitizing and indexing.
const (
	FieldLongitude      = "longitude"
	FieldLatitude       = "latitude"
	FieldRestaurantName = "restaurant_name"
	FieldAddress        = "address"
	FieldCity           = "city"
	FieldPostalCode     = "postal_code"
)

// Record is one location as exported upstream: an open set of fields whose
// values are strings, float64 numbers, bools, nested maps or slices, or nil.
type Record map[string]interface{}

// Kind classifies a record for the repair pass.
type Kind int

const (
	// KindContinuation is a record with neither a name-bearing field nor the
	// shape of a fragment.
	KindContinuation Kind = iota
	// KindFragment is a record whose only field is longitude or latitude.
	KindFragment
	// KindNamed is a record carrying a non-empty restaurant_name or address.
	KindNamed
)

func (k Kind) String() string {
	switch k {
	case KindFragment:
		return "fragment"
	case KindNamed:
		return "named"
	default:
		return "continuation"
	}
}

// Classify reports the repair kind of r.
func Classify(r Record) Kind {
	if len(r) == 1 {
		if _, ok := r[FieldLongitude]; ok {
			return KindFragment
		}
		if _, ok := r[FieldLatitude]; ok {
			return KindFragment
		}
	}
	if r.HasValue(FieldRestaurantName) || r.HasValue(FieldAddress) {
		return KindNamed
	}
	return KindContinuation
}

// HasValue reports whether field is present with a usable value: not nil and,
// for strings, not blank.
func (r Record) HasValue(field string) bool {
	v, ok := r[field]
	if !ok || v == nil {
		return false
	}
	if s, isString := v.(string); isString {
		return strings.TrimSpace(s) != ""
	}
	return true
}

// String returns field as a string when it holds one.
func (r Record) String(field string) (string, bool) {
	s, ok := r[field].(string)
	return s, ok
}

// Clone returns a shallow copy of r. Nested maps and slices are shared.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
