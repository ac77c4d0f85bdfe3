package merge

import "github.com/MKhiriev/go-pi-config/models"

// Clone returns a deep copy of doc. A nil doc yields an empty document.
func Clone(doc models.Document) models.Document {
	dst := make(models.Document, len(doc))
	for key, val := range doc {
		dst[key] = CloneValue(val)
	}
	return dst
}

// CloneValue deep-copies maps and slices; other values are returned as is.
func CloneValue(val any) any {
	switch v := val.(type) {
	case map[string]any:
		return Clone(v)
	case []any:
		dst := make([]any, len(v))
		for i, item := range v {
			dst[i] = CloneValue(item)
		}
		return dst
	default:
		return val
	}
}
