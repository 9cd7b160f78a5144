package location

import "strings"

// Sanitize returns a normalized copy of r.
//
// longitude and latitude are always present in the result and hold either a
// finite float64 or nil. When longitude is missing or unusable and latitude
// is a valid number, longitude takes the latitude value, recovering from
// swapped export columns; latitude itself is left as parsed. A longitude that
// is still missing falls back to a numeric postal_code. A string
// restaurant_name loses every double quote and surrounding whitespace.
// Other fields are copied unchanged. Sanitize never rejects a record.
func Sanitize(r Record) Record {
	out := r.Clone()
	if out == nil {
		out = Record{}
	}

	lon, lonOK := ParseCoordinate(r[FieldLongitude])
	lat, latOK := ParseCoordinate(r[FieldLatitude])

	if !lonOK && latOK {
		lon, lonOK = lat, true
	}
	if !lonOK {
		if postal, ok := r[FieldPostalCode].(string); ok && IsDecimal(postal) {
			lon, lonOK = ParseCoordinate(postal)
		}
	}

	out[FieldLongitude] = coordinateOrNil(lon, lonOK)
	out[FieldLatitude] = coordinateOrNil(lat, latOK)

	if name, ok := r[FieldRestaurantName].(string); ok {
		out[FieldRestaurantName] = CleanText(name)
	}
	return out
}

// SanitizeAll applies Sanitize to every record, preserving order.
func SanitizeAll(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = Sanitize(r)
	}
	return out
}

// CleanText removes every double quote from s and trims surrounding whitespace.
func CleanText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, `"`, ""))
}

func coordinateOrNil(v float64, ok bool) interface{} {
	if !ok {
		return nil
	}
	return v
}
