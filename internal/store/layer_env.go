// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/MKhiriev/go-pi-config/internal/merge"
	"github.com/MKhiriev/go-pi-config/models"
	"github.com/caarlos0/env/v11"
)

// EnvSeparator splits the part of a variable name after the prefix into
// nested keys: MYAPP_DB__HOST addresses key "HOST" inside object "DB".
const EnvSeparator = "__"

// EnvLayer is the read-only layer built from environment variables whose
// name starts with the application prefix.
type EnvLayer struct {
	prefix   string
	environ  func() []string
	snapshot models.Document
}

// NewEnvLayer creates the environment layer for appName. environ supplies
// the "KEY=value" pairs to scan; nil means [os.Environ].
func NewEnvLayer(appName string, environ func() []string) *EnvLayer {
	if environ == nil {
		environ = os.Environ
	}

	return &EnvLayer{
		prefix:   EnvPrefix(appName),
		environ:  environ,
		snapshot: make(models.Document),
	}
}

// EnvPrefix returns the variable name prefix of appName: upper-cased,
// dashes replaced by underscores, followed by an underscore.
func EnvPrefix(appName string) string {
	return strings.ToUpper(strings.ReplaceAll(appName, "-", "_")) + "_"
}

func (l *EnvLayer) Name() models.LayerName {
	return models.LayerEnvironment
}

func (l *EnvLayer) Path() string {
	return l.prefix
}

func (l *EnvLayer) Get() models.Document {
	return merge.Clone(l.snapshot)
}

// Load scans the environment. Variable names are visited in sorted order,
// so when both MYAPP_A and MYAPP_A__B are set the nested object wins.
func (l *EnvLayer) Load(ctx context.Context) (models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	vars := env.ToMap(l.environ())
	names := make([]string, 0, len(vars))
	for name := range vars {
		if strings.HasPrefix(name, l.prefix) && len(name) > len(l.prefix) {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	doc := make(models.Document)
	for _, name := range names {
		segments := strings.Split(strings.TrimPrefix(name, l.prefix), EnvSeparator)
		if slices.Contains(segments, "") {
			continue
		}
		if err := merge.SetPath(doc, strings.Join(segments, merge.KeySeparator), vars[name]); err != nil {
			return nil, fmt.Errorf("error reading environment variable %s: %w", name, err)
		}
	}

	return doc, nil
}

func (l *EnvLayer) Apply(doc models.Document) {
	l.snapshot = merge.Clone(doc)
}

func (l *EnvLayer) Set(string, any) error {
	return fmt.Errorf("%w: %s layer is read-only", ErrUnsupportedOperation, models.LayerEnvironment)
}

func (l *EnvLayer) Unset(string) error {
	return fmt.Errorf("%w: %s layer is read-only", ErrUnsupportedOperation, models.LayerEnvironment)
}

func (l *EnvLayer) Persist(context.Context) error {
	return fmt.Errorf("%w: %s layer cannot be persisted", ErrUnsupportedOperation, models.LayerEnvironment)
}
