package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runPicfg(t *testing.T, environ []string, args ...string) (int, string, string) {
	t.Helper()
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := run(context.Background(), args, environ, stdout, stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Version(t *testing.T) {
	code, out, _ := runPicfg(t, nil, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Build version: N/A")
	assert.Contains(t, out, "Build commit: N/A")
}

func TestRun_BadUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no app", args: []string{"show"}},
		{name: "no command", args: []string{"--app", "pi"}},
		{name: "unknown flag", args: []string{"--app", "pi", "--bogus", "show"}},
		{name: "help", args: []string{"--help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runPicfg(t, nil, tt.args...)
			assert.Equal(t, 2, code)
			assert.Empty(t, out)
			assert.Contains(t, errOut, "usage: picfg")
		})
	}
}

func TestRun_SetGetUnset(t *testing.T) {
	home, project := t.TempDir(), t.TempDir()
	environ := []string{
		"PICFG_APP=pi",
		"PICFG_HOME=" + home,
		"PICFG_PROJECT_ROOT=" + project,
	}

	code, _, errOut := runPicfg(t, environ, "set", "provider.retries", "3")
	require.Equal(t, 0, code, errOut)

	data, err := os.ReadFile(filepath.Join(project, ".pi", "pi.config.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"provider":{"retries":3}}`, string(data))

	code, out, _ := runPicfg(t, environ, "get", "provider.retries")
	assert.Equal(t, 0, code)
	assert.Equal(t, "3\n", out)

	code, _, _ = runPicfg(t, environ, "--target", "project", "unset", "provider")
	assert.Equal(t, 0, code)

	code, out, _ = runPicfg(t, environ, "show")
	assert.Equal(t, 0, code)
	assert.JSONEq(t, `{}`, out)
}

func TestRun_EnvironmentOverridesFiles(t *testing.T) {
	home, project := t.TempDir(), t.TempDir()
	environ := []string{
		"PI_model=from-env",
		"PICFG_HOME=" + home,
		"PICFG_PROJECT_ROOT=" + project,
	}

	code, _, errOut := runPicfg(t, environ, "-a", "pi", "-t", "home", "set", "model", "from-home")
	require.Equal(t, 0, code, errOut)

	code, out, _ := runPicfg(t, environ, "-a", "pi", "get", "model")
	assert.Equal(t, 0, code)
	assert.Equal(t, "from-env\n", out)
}

func TestRun_CommandFailure(t *testing.T) {
	environ := []string{
		"PICFG_HOME=" + t.TempDir(),
		"PICFG_PROJECT_ROOT=" + t.TempDir(),
	}

	code, out, errOut := runPicfg(t, environ, "--app", "pi", "get", "missing")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "key not found")
}

func TestRun_JSONLogFormat(t *testing.T) {
	environ := []string{
		"PICFG_HOME=" + t.TempDir(),
		"PICFG_PROJECT_ROOT=" + t.TempDir(),
		"PICFG_LOG_FORMAT=json",
	}

	code, _, errOut := runPicfg(t, environ, "--app", "pi", "get", "missing")
	assert.Equal(t, 1, code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(errOut), &entry))
	assert.Equal(t, "command failed", entry["message"])
	assert.Equal(t, "picfg", entry["role"])
	assert.Contains(t, entry["error"], "key not found")
}

func TestRun_MalformedFileFailsLoad(t *testing.T) {
	project := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(project, ".pi"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(project, ".pi", "pi.config.json"), []byte("{oops"), 0o644))

	environ := []string{
		"PICFG_HOME=" + t.TempDir(),
		"PICFG_PROJECT_ROOT=" + project,
	}

	code, _, errOut := runPicfg(t, environ, "--app", "pi", "show")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "error loading config")
}
