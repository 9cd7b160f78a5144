// Package location holds the location record model and the two pure passes
// that prepare exported records for geo indexing.
//
// Repair stitches coordinate fragments, records that carry only a longitude
// or only a latitude, back into the nearest name-bearing record. Sanitize then
// normalizes each record on its own: coordinates become finite float64 values
// or nil, swapped or misplaced coordinate columns are recovered where
// possible, and the restaurant name is cleaned of quote characters.
//
//	repaired, stats := location.Repair(raw)
//	clean := location.SanitizeAll(repaired)
package location
