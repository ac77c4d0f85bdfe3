package merge

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pi-config/models"
)

// KeySeparator separates the segments of a nested key.
const KeySeparator = "."

// SplitKey splits a dotted key into its segments.
func SplitKey(key string) ([]string, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	parts := strings.Split(key, KeySeparator)
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: %q has an empty segment", ErrInvalidKey, key)
		}
	}

	return parts, nil
}

// SetPath stores value at the dotted key inside doc, creating intermediate
// objects as needed. A non-object intermediate value is replaced by an
// object.
func SetPath(doc models.Document, key string, value any) error {
	parts, err := SplitKey(key)
	if err != nil {
		return err
	}

	current := doc
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value

	return nil
}

// DeletePath removes the value at the dotted key. It reports whether a
// value was removed.
func DeletePath(doc models.Document, key string) (bool, error) {
	parts, err := SplitKey(key)
	if err != nil {
		return false, err
	}

	current := doc
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			return false, nil
		}
		current = next
	}

	leaf := parts[len(parts)-1]
	if _, ok := current[leaf]; !ok {
		return false, nil
	}
	delete(current, leaf)

	return true, nil
}

// GetPath returns the value at the dotted key.
func GetPath(doc models.Document, key string) (any, bool) {
	parts, err := SplitKey(key)
	if err != nil {
		return nil, false
	}

	var current any = doc
	for _, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}

	return current, true
}
