package models

// Document is an untyped structured configuration value as decoded from
// JSON: values are string, float64, bool, nil, []any or map[string]any.
type Document = map[string]any

// OriginDefaults names the defaults supplied at construction when reporting
// which source provided a key.
const OriginDefaults = "defaults"
