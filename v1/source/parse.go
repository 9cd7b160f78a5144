package source

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Aleph-Alpha/geoloc/v1/location"
)

// ParseJSON decodes a JSON array of objects. Numbers become float64.
func ParseJSON(data []byte) ([]location.Record, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, ErrNotArray
		}
		return nil, fmt.Errorf("failed to decode JSON input: %w", err)
	}
	if items == nil {
		// literal null
		return nil, ErrNotArray
	}

	records := make([]location.Record, 0, len(items))
	for i, raw := range items {
		var rec map[string]interface{}
		if err := json.Unmarshal(raw, &rec); err != nil || rec == nil {
			return nil, fmt.Errorf("%w: element %d is not an object", ErrNotArray, i)
		}
		records = append(records, location.Record(rec))
	}
	return records, nil
}

// ParseCSV reads a header row followed by data rows. Every cell is kept as a
// string; empty cells are omitted so that a row holding only a longitude is
// seen as a coordinate fragment.
func ParseCSV(r io.Reader) ([]location.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return []location.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	var records []location.Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}

		rec := make(location.Record, len(header))
		for i, cell := range row {
			if i >= len(header) || header[i] == "" || strings.TrimSpace(cell) == "" {
				continue
			}
			rec[header[i]] = cell
		}
		if len(rec) == 0 {
			continue
		}
		records = append(records, rec)
	}
	if records == nil {
		records = []location.Record{}
	}
	return records, nil
}

func parse(format string, data []byte) ([]location.Record, error) {
	switch format {
	case ".json":
		return ParseJSON(data)
	case ".csv":
		return ParseCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
