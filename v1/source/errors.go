package source

import "errors"

var (
	// ErrNotArray is returned when a JSON input is not an array of objects.
	ErrNotArray = errors.New("input is not a JSON array of objects")

	// ErrUnsupportedFormat is returned for inputs that are neither .json nor .csv.
	ErrUnsupportedFormat = errors.New("unsupported input format")

	// ErrNoObjectStore is returned for s3:// inputs when no object store is configured.
	ErrNoObjectStore = errors.New("no object store configured for s3:// input")
)
