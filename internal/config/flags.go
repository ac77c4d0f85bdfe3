package config

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// FlagUsage returns the flag help text printed by picfg.
func FlagUsage() string {
	return newFlagSet(&Settings{}).FlagUsages()
}

func newFlagSet(cfg *Settings) *pflag.FlagSet {
	fs := pflag.NewFlagSet("picfg", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SetInterspersed(true)

	fs.StringVarP(&cfg.App, "app", "a", "", "application name")
	fs.StringVarP(&cfg.Target, "target", "t", "", "layer written by set/unset: project or home")
	fs.StringVar(&cfg.ProjectRoot, "project-root", "", "project root (default: git top-level, then working directory)")
	fs.StringVar(&cfg.Home, "home", "", "home directory (default: current user's home)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "diagnostics level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "diagnostics format: console or json")
	fs.BoolVar(&cfg.Explain, "explain", false, "show: print the layer that supplied each key")

	return fs
}

// parseFlags parses the command line. Positional arguments end up in
// Settings.Args.
func parseFlags(args []string) (*Settings, error) {
	cfg := &Settings{}
	fs := newFlagSet(cfg)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Args = fs.Args()

	return cfg, nil
}
