// Package geoindex loads location records into a Redis GEO set and answers
// proximity queries against it.
//
// # Layout in Redis
//
// An index key K holds a GEO set whose members are ids loc:1, loc:2, ...
// assigned in import order. Each member has an attribute hash at K:<id>
// with every non-empty field of the source record as text, plus id and
// display_name.
//
// # Importing
//
// Import is a full reindex: K and every K:* hash are deleted first, then the
// records are written in batches (100 by default). Records without two
// usable coordinates are skipped and logged. By default a coordinate of
// exactly 0 counts as unusable; Config.AllowZeroCoordinates lifts that.
// In transactional mode a batch's hashes and its GEOADD go out in one
// MULTI/EXEC. In sequential mode hashes are written as records are read and
// the GEOADD follows, so a failed batch can leave hashes without members
// until the next import. Either way a failed batch is logged and skipped.
//
//	importer := geoindex.NewImporter(client, log, metrics, geoindex.Config{})
//	result, err := importer.Import(ctx, "all_locations", records)
//
// # Searching
//
// Search runs GEOSEARCH ... WITHDIST ASC and joins each member with its
// attribute hash. It is best effort: any store error is logged and an empty
// slice is returned.
//
//	results := searcher.Search(ctx, "all_locations", geoindex.Query{
//		Longitude: -73.9857,
//		Latitude:  40.7484,
//		RadiusKm:  1,
//	})
//
// # Pipeline
//
// Pipeline.Run chains source loading, location.Repair, location.SanitizeAll
// and Import.
package geoindex
