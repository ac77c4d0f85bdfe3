package merge

import "errors"

// ErrInvalidKey is returned by the path helpers for an empty key or a key
// with an empty segment (for example "a..b").
var ErrInvalidKey = errors.New("invalid config key")
