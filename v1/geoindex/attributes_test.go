package geoindex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Aleph-Alpha/geoloc/v1/location"
)

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
		ok   bool
	}{
		{"nil", nil, "", false},
		{"empty string", "", "", false},
		{"string", "NYC", "NYC", true},
		{"whole float", 10001.0, "10001", true},
		{"fraction", -73.9857, "-73.9857", true},
		{"int", 42, "42", true},
		{"bool", false, "false", true},
		{"map", map[string]interface{}{"b": 1.0, "a": "x"}, `{"a":"x","b":1}`, true},
		{"slice", []interface{}{"pizza", "pasta"}, `["pizza","pasta"]`, true},
		{"empty slice", []interface{}{}, "", false},
		{"empty map", map[string]interface{}{}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Stringify(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		rec  location.Record
		want string
	}{
		{"restaurant name", location.Record{"restaurant_name": "  Joe's  ", "address": "1 Main St"}, "Joe's"},
		{"address with city", location.Record{"address": ` "1 Main St" `, "city": " NYC "}, "1 Main St, NYC"},
		{"quoted city ignored", location.Record{"address": "1 Main St", "city": `"NYC"`}, "1 Main St"},
		{"non string city ignored", location.Record{"address": "1 Main St", "city": 7.0}, "1 Main St"},
		{"blank name falls back", location.Record{"restaurant_name": " ", "address": "2 Elm"}, "2 Elm"},
		{"no name", location.Record{"city": "NYC"}, "loc:3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.rec, "loc:3"))
		})
	}
}

func TestBuildAttributesOverridesDerivedFields(t *testing.T) {
	attrs := BuildAttributes(location.Record{"id": "upstream-9", "restaurant_name": "A"}, "loc:1")
	assert.Equal(t, "loc:1", attrs[FieldID])
	assert.Equal(t, "A", attrs[FieldDisplayName])
	assert.Equal(t, "idx:loc:1", AttributeKey("idx", MemberID(1)))
}
