// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-pi-config/internal/logger"

// EnvPrefix is prepended to every environment variable name of [Settings].
const EnvPrefix = "PICFG_"

// CommandVersion is the only command that runs without an application name.
const CommandVersion = "version"

// Settings controls one picfg invocation.
//
// Struct tags:
//   - env: environment variable name without [EnvPrefix] (caarlos0/env).
type Settings struct {
	// App is the application whose configuration is inspected.
	// Env: PICFG_APP. Flag: --app / -a.
	App string `env:"APP"`

	// Target is the layer that set and unset write to. Empty means the
	// command default (project).
	// Env: PICFG_TARGET. Flag: --target / -t.
	Target string `env:"TARGET"`

	// ProjectRoot overrides git-based project root discovery.
	// Env: PICFG_PROJECT_ROOT. Flag: --project-root.
	ProjectRoot string `env:"PROJECT_ROOT"`

	// Home overrides the user home directory.
	// Env: PICFG_HOME. Flag: --home.
	Home string `env:"HOME"`

	// LogLevel is the zerolog level name for diagnostics on stderr.
	// Env: PICFG_LOG_LEVEL. Flag: --log-level.
	LogLevel string `env:"LOG_LEVEL"`

	// LogFormat selects the diagnostics format: console or json.
	// Env: PICFG_LOG_FORMAT. Flag: --log-format.
	LogFormat string `env:"LOG_FORMAT"`

	// Explain makes `show` print the layer that supplied every key.
	// Flag: --explain.
	Explain bool

	// Args holds the command and its positional arguments.
	Args []string
}

// defaultSettings is the lowest-priority source.
func defaultSettings() *Settings {
	return &Settings{
		LogLevel:  "warn",
		LogFormat: logger.FormatConsole,
	}
}

// GetSettings loads, merges and validates the settings of one invocation
// from environ ("KEY=value" pairs) and the command-line args (without the
// program name).
func GetSettings(args, environ []string) (*Settings, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv(environ).
		withFlags(args).
		build()
}
