// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package discovery locates the project root that anchors the project
// config layer.
package discovery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

//go:generate mockgen -source=discovery.go -destination=../mock/discoverer_mock.go -package=mock

// ErrNoRoot is returned when discovery finishes without a usable root.
var ErrNoRoot = errors.New("project root not found")

// Discoverer returns the absolute path of the project root.
type Discoverer interface {
	Discover(ctx context.Context) (string, error)
}

// GitDiscoverer resolves the project root as the top-level directory of the
// git work tree containing Dir.
type GitDiscoverer struct {
	// Dir is the directory git runs in. Empty means the process working
	// directory.
	Dir string
	// Binary is the git executable. Empty means "git" from PATH.
	Binary string
}

// NewGitDiscoverer creates a discoverer that runs git in dir.
func NewGitDiscoverer(dir string) *GitDiscoverer {
	return &GitDiscoverer{Dir: dir}
}

// Discover runs `git rev-parse --show-toplevel`.
func (g *GitDiscoverer) Discover(ctx context.Context) (string, error) {
	binary := g.Binary
	if binary == "" {
		binary = "git"
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, "rev-parse", "--show-toplevel")
	cmd.Dir = g.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("error running git rev-parse: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	root := strings.TrimSpace(stdout.String())
	if root == "" {
		return "", ErrNoRoot
	}

	return root, nil
}

// Static is a Discoverer that always returns the same root.
type Static string

// Discover returns s, or ErrNoRoot when s is empty.
func (s Static) Discover(context.Context) (string, error) {
	if s == "" {
		return "", ErrNoRoot
	}
	return string(s), nil
}

// RootOrFallback runs d and returns its root. Any failure, or an empty
// root, yields fallback instead; the discovery error is returned alongside
// for the caller to log.
func RootOrFallback(ctx context.Context, d Discoverer, fallback string) (string, error) {
	if d == nil {
		return fallback, ErrNoRoot
	}

	root, err := d.Discover(ctx)
	if err != nil {
		return fallback, err
	}
	if root == "" {
		return fallback, ErrNoRoot
	}

	return root, nil
}
