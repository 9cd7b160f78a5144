// Package source loads raw location records from a local file or from an
// object in MinIO/S3 addressed as s3://bucket/key.
//
// The format is chosen by extension. A .json input must be an array of
// objects; a .csv input uses its header row as field names and leaves empty
// cells out of the record. Any read or parse failure is returned to the
// caller, since a partially loaded input would make a full reindex drop data.
package source
