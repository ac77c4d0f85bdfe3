// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-pi-config/models"
	"github.com/go-playground/validator/v10"
)

// StructValidator decodes the merged view into T and checks the
// `validate:"..."` tags of T with go-playground/validator. T must be a
// struct type.
type StructValidator[T any] struct {
	validate *validator.Validate
}

// Struct creates a [StructValidator] for T.
func Struct[T any]() *StructValidator[T] {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get(TagName), ",")
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		default:
			return name
		}
	})

	return &StructValidator[T]{validate: v}
}

// Engine exposes the underlying validator so callers can register custom
// rules before the first use.
func (s *StructValidator[T]) Engine() *validator.Validate {
	return s.validate
}

func (s *StructValidator[T]) Validate(ctx context.Context, doc models.Document) (T, error) {
	var out T
	if err := Decode(doc, &out); err != nil {
		return out, err
	}

	err := s.validate.StructCtx(ctx, out)
	if err == nil {
		return out, nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return out, fmt.Errorf("error validating config: %w", err)
	}

	fieldErrs := make(FieldErrors, 0, len(violations))
	for _, v := range violations {
		fieldErrs = append(fieldErrs, FieldError{
			Field: trimRootNamespace(v.Namespace()),
			Rule:  v.Tag(),
			Param: v.Param(),
		})
	}

	return out, fieldErrs
}

// trimRootNamespace drops the struct type name that prefixes every
// namespace reported by the validator.
func trimRootNamespace(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
