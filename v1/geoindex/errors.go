package geoindex

import "errors"

var (
	// ErrInvalidArgs is returned when a batch's flat GEOADD argument list is
	// not made of (longitude, latitude, member) triples.
	ErrInvalidArgs = errors.New("geo arguments are not longitude, latitude, member triples")

	// ErrInvalidWriteMode is returned by ParseWriteMode for unknown modes.
	ErrInvalidWriteMode = errors.New("invalid write mode")
)
