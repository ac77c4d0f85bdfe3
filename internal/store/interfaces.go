// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-pi-config/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/layer_mock.go -package=mock

// Layer is one ranked configuration source backed by a store (a file or
// the process environment).
//
// A layer keeps an in-memory snapshot of its backing store. Reading the
// backing store ([Layer.Load]) and replacing the snapshot ([Layer.Apply])
// are separate steps so that a caller can stage the documents of several
// layers and commit them only once they have all been read and validated.
//
// Implementations are not safe for concurrent use; the config service
// serializes access.
type Layer interface {
	// Name returns the layer name used to target mutations.
	Name() models.LayerName

	// Path returns the backing-store descriptor: the file path for file
	// layers, the variable name prefix for the environment layer.
	Path() string

	// Get returns a deep copy of the in-memory snapshot. It never returns nil.
	Get() models.Document

	// Load reads the backing store and returns its document without
	// touching the in-memory snapshot. A missing backing store yields an
	// empty document.
	Load(ctx context.Context) (models.Document, error)

	// Apply replaces the in-memory snapshot with a copy of doc.
	Apply(doc models.Document)

	// Set stores value at the dotted key in the in-memory snapshot.
	Set(key string, value any) error

	// Unset removes the dotted key from the in-memory snapshot.
	Unset(key string) error

	// Persist writes the in-memory snapshot to the backing store.
	Persist(ctx context.Context) error
}
