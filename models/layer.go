// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// LayerName identifies one configuration source. It is the target of
// mutation and persist operations.
type LayerName string

const (
	// LayerEnvironment is the read-only layer built from prefixed
	// environment variables. It always has the highest precedence.
	LayerEnvironment LayerName = "environment"

	// LayerProject is the per-project file layer stored under
	// <projectRoot>/.pi/<app>.config.json.
	LayerProject LayerName = "project"

	// LayerHome is the per-user file layer stored under
	// <home>/.pi/agent/<app>.config.json.
	LayerHome LayerName = "home"
)

// ErrUnknownTarget is returned for layer names outside the
// closed set of layers.
var ErrUnknownTarget = errors.New("unknown config target")

// LayerNames lists every layer in ascending precedence order.
var LayerNames = []LayerName{LayerHome, LayerProject, LayerEnvironment}

// ParseLayerName converts s into a [LayerName].
func ParseLayerName(s string) (LayerName, error) {
	name := LayerName(s)
	if !name.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTarget, s)
	}

	return name, nil
}

// Valid reports whether n is one of the known layers.
func (n LayerName) Valid() bool {
	switch n {
	case LayerEnvironment, LayerProject, LayerHome:
		return true
	default:
		return false
	}
}

func (n LayerName) String() string {
	return string(n)
}
