package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pi-config/models"
	"github.com/go-viper/mapstructure/v2"
)

// TagName is the struct tag used to map document keys onto fields.
const TagName = "json"

type passthrough[T any] struct{}

// Passthrough returns a validator that performs no rule checks. When T is
// the document type itself (or any) the document is returned unchanged;
// otherwise it is decoded into T, converting strings from the environment
// layer into numbers, booleans and durations where the field type asks for
// it.
func Passthrough[T any]() Validator[T] {
	return passthrough[T]{}
}

func (passthrough[T]) Validate(_ context.Context, doc models.Document) (T, error) {
	if v, ok := any(doc).(T); ok {
		return v, nil
	}

	var out T
	if err := Decode(doc, &out); err != nil {
		return out, err
	}

	return out, nil
}

// Decode decodes doc into out, which must be a non-nil pointer. Field names
// come from `json` tags.
func Decode(doc models.Document, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("error creating config decoder: %w", err)
	}

	if err = dec.Decode(doc); err != nil {
		return fmt.Errorf("error decoding config: %w", err)
	}

	return nil
}
