// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the validation hook of the config service: a
// single operation turning the untyped merged view into the application's
// typed config, or failing.
//
// Strategies:
//   - [Func] adapts a plain parse function.
//   - [Passthrough] decodes without checking rules; used when no hook is set.
//   - [Struct] decodes into a struct and enforces its `validate` tags.
package validators

import (
	"context"

	"github.com/MKhiriev/go-pi-config/models"
)

// Validator converts the merged view into a typed config. Implementations
// must not retain or mutate doc.
type Validator[T any] interface {
	Validate(ctx context.Context, doc models.Document) (T, error)
}

// Func adapts an ordinary function to the [Validator] interface.
type Func[T any] func(ctx context.Context, doc models.Document) (T, error)

// Validate calls f.
func (f Func[T]) Validate(ctx context.Context, doc models.Document) (T, error) {
	return f(ctx, doc)
}
