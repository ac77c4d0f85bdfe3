// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pi-config/models"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serverConfig struct {
	Port    int           `json:"port" validate:"required,gt=0,lt=65536"`
	Timeout time.Duration `json:"timeout"`
}

type appConfig struct {
	RetryCount int          `json:"retryCount" validate:"gte=0"`
	LogLevel   string       `json:"logLevel" validate:"required,oneof=debug info"`
	Tags       []string     `json:"tags,omitempty"`
	Server     serverConfig `json:"server"`
}

// ── Func ──────────────────────────────────────────────────────────────────────

func TestFunc_DelegatesAndPropagatesErrors(t *testing.T) {
	boom := errors.New(`Invalid config: "retryCount" must be a number.`)
	f := Func[int](func(_ context.Context, doc models.Document) (int, error) {
		if _, ok := doc["retryCount"].(float64); !ok {
			return 0, boom
		}
		return int(doc["retryCount"].(float64)), nil
	})

	got, err := f.Validate(context.Background(), models.Document{"retryCount": float64(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = f.Validate(context.Background(), models.Document{"retryCount": "three"})
	assert.Same(t, boom, err)
}

// ── Passthrough ───────────────────────────────────────────────────────────────

func TestPassthrough_DocumentIsReturnedAsIs(t *testing.T) {
	doc := models.Document{"featureEnabled": true}

	got, err := Passthrough[models.Document]().Validate(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	anyGot, err := Passthrough[any]().Validate(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, doc, anyGot)
}

func TestPassthrough_DecodesIntoStructWithoutRules(t *testing.T) {
	type typedConfig struct {
		FeatureEnabled bool   `json:"featureEnabled"`
		LogLevel       string `json:"logLevel" validate:"required"`
	}

	got, err := Passthrough[typedConfig]().Validate(context.Background(), models.Document{"featureEnabled": true})
	require.NoError(t, err)
	assert.Equal(t, typedConfig{FeatureEnabled: true}, got)
}

func TestPassthrough_WeaklyTypedEnvironmentStrings(t *testing.T) {
	got, err := Passthrough[appConfig]().Validate(context.Background(), models.Document{
		"retryCount": "5",
		"tags":       "a,b",
		"server":     map[string]any{"port": "8080", "timeout": "30s"},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, got.RetryCount)
	assert.Equal(t, []string{"a", "b"}, got.Tags)
	assert.Equal(t, 8080, got.Server.Port)
	assert.Equal(t, 30*time.Second, got.Server.Timeout)
}

func TestPassthrough_DecodeError(t *testing.T) {
	_, err := Passthrough[appConfig]().Validate(context.Background(), models.Document{
		"retryCount": map[string]any{"not": "a number"},
	})
	assert.Error(t, err)
}

// ── Struct ────────────────────────────────────────────────────────────────────

func TestStruct_Valid(t *testing.T) {
	got, err := Struct[appConfig]().Validate(context.Background(), models.Document{
		"retryCount": float64(3),
		"logLevel":   "info",
		"server":     map[string]any{"port": float64(443)},
	})
	require.NoError(t, err)
	assert.Equal(t, appConfig{RetryCount: 3, LogLevel: "info", Server: serverConfig{Port: 443}}, got)
}

func TestStruct_ReportsFieldViolations(t *testing.T) {
	_, err := Struct[appConfig]().Validate(context.Background(), models.Document{
		"logLevel": "trace",
		"server":   map[string]any{"port": float64(70000)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.ElementsMatch(t, FieldErrors{
		{Field: "logLevel", Rule: "oneof", Param: "debug info"},
		{Field: "server.port", Rule: "lt", Param: "65536"},
	}, fieldErrs)
	assert.Contains(t, err.Error(), "logLevel: oneof=debug info")
}

func TestStruct_MissingRequired(t *testing.T) {
	_, err := Struct[appConfig]().Validate(context.Background(), models.Document{
		"server": map[string]any{"port": float64(1)},
	})

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, FieldErrors{{Field: "logLevel", Rule: "required"}}, fieldErrs)
	assert.Equal(t, "invalid config: logLevel: required", err.Error())
}

func TestStruct_CustomRule(t *testing.T) {
	type named struct {
		Name string `json:"name" validate:"pi_name"`
	}
	v := Struct[named]()
	require.NoError(t, v.Engine().RegisterValidation("pi_name", func(fl validator.FieldLevel) bool {
		return fl.Field().String() == "pi"
	}))

	_, err := v.Validate(context.Background(), models.Document{"name": "pi"})
	assert.NoError(t, err)

	_, err = v.Validate(context.Background(), models.Document{"name": "other"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestStruct_NonStructType(t *testing.T) {
	_, err := Struct[models.Document]().Validate(context.Background(), models.Document{"a": "b"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}
