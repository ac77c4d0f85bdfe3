package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_RoleField verifies that every log entry contains the
// expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "test-role", zerolog.DebugLevel)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

// TestNewLogger_LevelFilters verifies that entries below the configured
// level are dropped.
func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "level", zerolog.WarnLevel)

	l.Debug().Msg("dropped")
	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.NotEmpty(t, buf.String())
}

func TestNewLogger_CallerFieldName(t *testing.T) {
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewConsoleLogger_WritesHumanReadable(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, "cli", zerolog.InfoLevel)
	require.NotNil(t, log)

	log.Debug().Msg("hidden")
	log.Warn().Str("layer", "home").Msg("shadowed")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shadowed")
	assert.Contains(t, out, "layer=home")
	assert.NotContains(t, out, "{")
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, lvl)

	lvl, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

// TestWithStr_DoesNotLeakToParent verifies that a derived logger keeps the
// parent's fields and its extra field does not leak back to the parent.
func TestWithStr_DoesNotLeakToParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(&buf, "parent", zerolog.DebugLevel)
	child := parent.WithStr("app", "my-app")

	child.Info().Msg("child")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parent", entry["role"])
	assert.Equal(t, "my-app", entry["app"])

	buf.Reset()
	parent.Info().Msg("parent")
	entry = nil
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "app")
}

// TestFromContext_RoundTrip verifies that a logger stored with WithContext
// is returned by FromContext.
func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, "ctx", zerolog.DebugLevel)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from ctx")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx", entry["role"])
}

func TestFromContext_WithoutLoggerIsDisabled(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestNew_SelectsFormat(t *testing.T) {
	var jsonBuf, consoleBuf bytes.Buffer

	New(&jsonBuf, FormatJSON, "picfg", zerolog.InfoLevel).Info().Msg("json")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &entry))
	assert.Equal(t, "json", entry["message"])

	New(&consoleBuf, FormatConsole, "picfg", zerolog.InfoLevel).Info().Msg("console")
	assert.Contains(t, consoleBuf.String(), "console")
	assert.False(t, json.Valid(bytes.TrimSpace(consoleBuf.Bytes())))
}
