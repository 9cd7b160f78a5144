package geoindex

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/Aleph-Alpha/geoloc/v1/location"
)

// Attribute record fields added on import.
const (
	FieldID          = "id"
	FieldDisplayName = "display_name"
	FieldDistanceKm  = "distance_km"
)

// AttributeKey returns the hash key holding the attributes of member id.
func AttributeKey(indexKey, id string) string {
	return indexKey + ":" + id
}

// MemberID returns the member id of the n-th imported record.
func MemberID(n int) string {
	return "loc:" + strconv.Itoa(n)
}

// BuildAttributes returns the attribute record stored for rec: every
// non-empty field as text, plus id and display_name.
func BuildAttributes(rec location.Record, id string) map[string]string {
	attrs := make(map[string]string, len(rec)+2)
	for k, v := range rec {
		if s, ok := Stringify(v); ok {
			attrs[k] = s
		}
	}
	attrs[FieldID] = id
	attrs[FieldDisplayName] = DisplayName(rec, id)
	return attrs
}

// Stringify renders a field value as stored in an attribute record. Numbers
// use the shortest decimal form, nested maps and slices become JSON. The
// second result is false for nil, empty strings and empty collections.
func Stringify(v interface{}) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, val != ""
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case bool:
		return strconv.FormatBool(val), true
	case json.Number:
		return val.String(), val != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		if rv.Len() == 0 {
			return "", false
		}
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v), true
		}
		return string(b), true
	}
	return fmt.Sprint(v), true
}

// DisplayName resolves the human readable name of a record: the trimmed
// restaurant_name, else the address with quotes removed and ", {city}"
// appended when city is a plain string, else id.
func DisplayName(rec location.Record, id string) string {
	if name, ok := rec.String(location.FieldRestaurantName); ok {
		if name = strings.TrimSpace(name); name != "" {
			return name
		}
	}

	if address, ok := rec.String(location.FieldAddress); ok {
		if address = location.CleanText(address); address != "" {
			if city, ok := rec.String(location.FieldCity); ok && !strings.Contains(city, `"`) {
				if city = strings.TrimSpace(city); city != "" {
					return address + ", " + city
				}
			}
			return address
		}
	}

	return id
}
