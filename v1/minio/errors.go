package minio

import (
	"errors"

	"github.com/minio/minio-go/v7"
)

var (
	// ErrEmptyEndpoint is returned by NewClient when no endpoint is configured.
	ErrEmptyEndpoint = errors.New("minio endpoint cannot be empty")

	// ErrObjectNotFound is returned when the requested bucket or object does not exist.
	ErrObjectNotFound = errors.New("object not found")
)

// translateError maps missing bucket and missing key responses to ErrObjectNotFound.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return errors.Join(ErrObjectNotFound, err)
	}
	return err
}
