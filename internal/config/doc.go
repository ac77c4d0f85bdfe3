// Package config assembles the settings of the picfg command itself.
//
// Settings are merged from the following sources, later sources overriding
// earlier non-zero fields:
//  1. Built-in defaults
//  2. Environment variables prefixed with PICFG_
//  3. Command-line flags
//
// The entry point is [GetSettings].
package config
