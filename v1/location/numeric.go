package location

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var decimalPattern = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)$`)

// IsDecimal reports whether s, after trimming, is a plain signed decimal
// number such as "40.1", "-73", "+.5". Exponents, hex and "NaN" are rejected.
func IsDecimal(s string) bool {
	return decimalPattern.MatchString(strings.TrimSpace(s))
}

// ParseCoordinate converts a coordinate value to a finite float64.
// Decimal strings and finite numbers are accepted; everything else,
// including bools, NaN and infinities, is not.
func ParseCoordinate(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case string:
		if !IsDecimal(val) {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	case float64:
		return finite(val)
	case float32:
		return finite(float64(val))
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	case json.Number:
		return ParseCoordinate(val.String())
	default:
		return 0, false
	}
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
