// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configsvc

import (
	"errors"

	"github.com/MKhiriev/go-pi-config/internal/merge"
	"github.com/MKhiriev/go-pi-config/internal/store"
)

// Error kinds returned by the service. Match them with [errors.Is].
var (
	// ErrUnknownTarget is returned by Set, Unset and Save for a layer name
	// outside the stack.
	ErrUnknownTarget = store.ErrUnknownTarget

	// ErrUnsupportedOperation is returned when the target layer cannot be
	// mutated or persisted (the environment layer).
	ErrUnsupportedOperation = store.ErrUnsupportedOperation

	// ErrStorageIO is returned when a backing file cannot be read or
	// written for a reason other than not existing.
	ErrStorageIO = store.ErrStorageIO

	// ErrMalformedDocument is returned when a backing file is not a JSON
	// object.
	ErrMalformedDocument = store.ErrMalformedDocument

	// ErrInvalidKey is returned by Set and Unset for an empty key or one with
	// empty segments.
	ErrInvalidKey = merge.ErrInvalidKey

	// ErrInvalidValue is returned by Set for a value with no JSON encoding.
	ErrInvalidValue = store.ErrInvalidValue

	// ErrInvalidAppName is returned by New for an empty application name or
	// one containing path separators.
	ErrInvalidAppName = errors.New("invalid application name")
)

// ValidationError carries the error returned by the validator. Its message
// is the validator's message, unchanged, and [errors.Is]/[errors.As] see
// through it to the validator's error.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
