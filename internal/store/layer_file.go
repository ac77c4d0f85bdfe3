// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pi-config/internal/merge"
	"github.com/MKhiriev/go-pi-config/models"
	"github.com/google/uuid"
	"github.com/tidwall/jsonc"
)

const (
	configDirName   = ".pi"
	homeAgentDir    = "agent"
	configFileExt   = ".config.json"
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// writeConfigFile is replaced in tests to simulate a failing disk.
var writeConfigFile = os.WriteFile

// FileLayer is a writable layer backed by a JSON document on disk.
//
// The file may contain comments and trailing commas; they are stripped
// before decoding. Persisted files are always written as plain indented
// JSON.
type FileLayer struct {
	name     models.LayerName
	path     string
	snapshot models.Document
}

// NewFileLayer creates a file layer for the file at path. The snapshot is
// empty until the first [FileLayer.Apply].
func NewFileLayer(name models.LayerName, path string) *FileLayer {
	return &FileLayer{
		name:     name,
		path:     path,
		snapshot: make(models.Document),
	}
}

// ProjectFilePath returns <projectRoot>/.pi/<appName>.config.json.
func ProjectFilePath(projectRoot, appName string) string {
	return filepath.Join(projectRoot, configDirName, appName+configFileExt)
}

// HomeFilePath returns <home>/.pi/agent/<appName>.config.json.
func HomeFilePath(home, appName string) string {
	return filepath.Join(home, configDirName, homeAgentDir, appName+configFileExt)
}

func (l *FileLayer) Name() models.LayerName {
	return l.name
}

func (l *FileLayer) Path() string {
	return l.path
}

func (l *FileLayer) Get() models.Document {
	return merge.Clone(l.snapshot)
}

// Load reads and decodes the file. A missing or blank file is an empty
// document.
func (l *FileLayer) Load(ctx context.Context) (models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(models.Document), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: error reading %s config file %s: %w", ErrStorageIO, l.name, l.path, err)
	}

	return decodeDocument(l.name, l.path, data)
}

func (l *FileLayer) Apply(doc models.Document) {
	l.snapshot = merge.Clone(doc)
}

// Set stores the JSON form of value, so the snapshot never shares memory
// with the caller and holds the same types a reload would produce.
func (l *FileLayer) Set(key string, value any) error {
	plain, err := toPlainValue(value)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidValue, key, err)
	}
	return merge.SetPath(l.snapshot, key, plain)
}

func (l *FileLayer) Unset(key string) error {
	_, err := merge.DeletePath(l.snapshot, key)
	return err
}

// Persist writes the snapshot through a temporary file next to the target,
// then renames it over the target. A symlinked config file is written
// through the link, and an existing file keeps its permission bits. Parent
// directories are created as needed.
func (l *FileLayer) Persist(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(l.snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding %s config: %w", l.name, err)
	}
	data = append(data, '\n')

	target, perm := l.writeTarget()

	dir := filepath.Dir(target)
	if err = os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("%w: error creating config dir %s: %w", ErrStorageIO, dir, err)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(target)+"."+uuid.NewString()+".tmp")
	if err = writeConfigFile(tmp, data, perm); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: error writing %s config file %s: %w", ErrStorageIO, l.name, tmp, err)
	}
	// WriteFile permissions are filtered by the umask.
	if err = os.Chmod(tmp, perm); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: error setting mode of %s config file %s: %w", ErrStorageIO, l.name, tmp, err)
	}

	if err = os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: error replacing %s config file %s: %w", ErrStorageIO, l.name, target, err)
	}

	return nil
}

// writeTarget returns the file Persist replaces and the mode it gets: the
// resolved symlink target and its mode when the file exists, the layer path
// and filePermissions otherwise.
func (l *FileLayer) writeTarget() (string, os.FileMode) {
	resolved, err := filepath.EvalSymlinks(l.path)
	if err != nil {
		return l.path, filePermissions
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return resolved, filePermissions
	}

	return resolved, info.Mode().Perm()
}

// toPlainValue converts value into the types encoding/json decodes into.
func toPlainValue(value any) (any, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	var plain any
	if err = json.Unmarshal(data, &plain); err != nil {
		return nil, err
	}
	return plain, nil
}

func decodeDocument(name models.LayerName, path string, data []byte) (models.Document, error) {
	plain := jsonc.ToJSON(data)
	if len(bytes.TrimSpace(plain)) == 0 {
		return make(models.Document), nil
	}

	var raw any
	if err := json.Unmarshal(plain, &raw); err != nil {
		return nil, fmt.Errorf("%w: error decoding %s config file %s: %w", ErrMalformedDocument, name, path, err)
	}

	doc, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s config file %s: top-level value must be an object", ErrMalformedDocument, name, path)
	}

	return doc, nil
}
