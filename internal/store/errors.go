package store

import (
	"errors"

	"github.com/MKhiriev/go-pi-config/models"
)

// Sentinel errors returned by layers. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrUnknownTarget is returned when a layer name does not resolve to a
	// layer of the stack.
	ErrUnknownTarget = models.ErrUnknownTarget

	// ErrUnsupportedOperation is returned by read-only layers for Set, Unset
	// and Persist.
	ErrUnsupportedOperation = errors.New("operation not supported by config layer")

	// ErrStorageIO is returned when reading or writing a backing store fails
	// for a reason other than the file not existing.
	ErrStorageIO = errors.New("config storage i/o error")

	// ErrInvalidValue is returned by Set for a value that has no JSON
	// encoding (channels, functions, cyclic structures, NaN).
	ErrInvalidValue = errors.New("config value cannot be encoded as json")

	// ErrMalformedDocument is returned when a backing file holds invalid JSON
	// or a top-level value that is not an object.
	ErrMalformedDocument = errors.New("malformed config document")
)
