package location

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		in      Record
		wantLon interface{}
		wantLat interface{}
	}{
		{"numeric strings", Record{"longitude": "-73.9857", "latitude": " 40.7484 "}, -73.9857, 40.7484},
		{"numbers pass", Record{"longitude": -73.9857, "latitude": 40.7484}, -73.9857, 40.7484},
		{"leading dot and sign", Record{"longitude": "+.5", "latitude": "-3."}, 0.5, -3.0},
		{"column swap recovery", Record{"longitude": "abc", "latitude": "40.1"}, 40.1, 40.1},
		{"absent longitude recovers from latitude", Record{"latitude": "40.1"}, 40.1, 40.1},
		{"null longitude recovers from latitude", Record{"longitude": nil, "latitude": "40.1"}, 40.1, 40.1},
		{"both invalid", Record{"longitude": "x", "latitude": "y"}, nil, nil},
		{"exponent rejected", Record{"longitude": "1e3", "latitude": "2"}, 2.0, 2.0},
		{"NaN rejected", Record{"longitude": math.NaN(), "latitude": "NaN"}, nil, nil},
		{"infinity rejected", Record{"longitude": math.Inf(1), "latitude": 1.0}, 1.0, 1.0},
		{"bool rejected", Record{"longitude": true, "latitude": false}, nil, nil},
		{"map rejected", Record{"longitude": map[string]interface{}{"v": 1}}, nil, nil},
		{"missing both", Record{"restaurant_name": "A"}, nil, nil},
		{"postal fallback", Record{"longitude": nil, "latitude": nil, "postal_code": "10001"}, 10001.0, nil},
		{"swap wins over postal", Record{"longitude": "?", "latitude": "5", "postal_code": "10001"}, 5.0, 5.0},
		{"non numeric postal", Record{"postal_code": "SW1A 1AA"}, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Sanitize(tt.in)
			assert.Contains(t, out, "longitude")
			assert.Contains(t, out, "latitude")
			assert.Equal(t, tt.wantLon, out["longitude"])
			assert.Equal(t, tt.wantLat, out["latitude"])
		})
	}
}

func TestSanitizeStripsQuotesFromName(t *testing.T) {
	out := Sanitize(Record{"restaurant_name": `  "Joe's"  `})
	assert.Equal(t, "Joe's", out["restaurant_name"])
	assert.NotContains(t, out["restaurant_name"], `"`)
}

func TestSanitizePassesOtherFieldsThrough(t *testing.T) {
	nested := map[string]interface{}{"mon": "9-5"}
	in := Record{
		"address":         ` "1 Main St" `,
		"hours":           nested,
		"restaurant_name": 42.0,
		"longitude":       "1",
		"latitude":        "2",
	}

	out := Sanitize(in)

	assert.Equal(t, ` "1 Main St" `, out["address"])
	assert.Equal(t, nested, out["hours"])
	assert.Equal(t, 42.0, out["restaurant_name"])
	assert.Equal(t, "1", in["longitude"], "input must not be modified")
}

func TestSanitizeAllKeepsEveryRecord(t *testing.T) {
	in := []Record{{"restaurant_name": "A"}, {"longitude": "bad"}, nil}
	out := SanitizeAll(in)
	assert.Len(t, out, 3)
	assert.Nil(t, out[2]["longitude"])
}

func TestParseCoordinate(t *testing.T) {
	f, ok := ParseCoordinate("12")
	assert.True(t, ok)
	assert.Equal(t, 12.0, f)

	f, ok = ParseCoordinate(7)
	assert.True(t, ok)
	assert.Equal(t, 7.0, f)

	_, ok = ParseCoordinate("0x10")
	assert.False(t, ok)

	_, ok = ParseCoordinate(nil)
	assert.False(t, ok)
}
