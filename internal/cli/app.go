// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pi-config/internal/logger"
	"github.com/MKhiriev/go-pi-config/models"
)

// Command names.
const (
	CommandShow  = "show"
	CommandGet   = "get"
	CommandSet   = "set"
	CommandUnset = "unset"
	CommandPath  = "path"
)

// App runs picfg commands against one config service and writes their
// output to out. Diagnostics go to the logger carried by the context given
// to [App.Run].
type App struct {
	svc ConfigService
	out io.Writer
}

// NewApp returns an App over svc.
func NewApp(svc ConfigService, out io.Writer) *App {
	return &App{
		svc: svc,
		out: out,
	}
}

// Request is one parsed command line.
type Request struct {
	// Args holds the command name followed by its arguments.
	Args []string
	// Target is the layer written by set and unset. Empty means project.
	Target models.LayerName
	// Explain makes show print the origin of every key.
	Explain bool
}

// Run executes the command in req.
func (a *App) Run(ctx context.Context, req Request) error {
	if len(req.Args) == 0 {
		return fmt.Errorf("%w: no command", ErrUsage)
	}

	target := req.Target
	if target == "" {
		target = models.LayerProject
	}

	log := logger.FromContext(ctx).WithStr("app", a.svc.AppName())

	cmd, args := req.Args[0], req.Args[1:]
	log.Debug().Str("command", cmd).Strs("args", args).Msg("running command")

	switch cmd {
	case CommandShow:
		if err := expectArgs(cmd, args, 0); err != nil {
			return err
		}
		return a.show(req.Explain)
	case CommandGet:
		if err := expectArgs(cmd, args, 1); err != nil {
			return err
		}
		return a.get(args[0])
	case CommandSet:
		if err := expectArgs(cmd, args, 2); err != nil {
			return err
		}
		return a.set(ctx, log, args[0], args[1], target)
	case CommandUnset:
		if err := expectArgs(cmd, args, 1); err != nil {
			return err
		}
		return a.unset(ctx, log, args[0], target)
	case CommandPath:
		if err := expectArgs(cmd, args, 0); err != nil {
			return err
		}
		return a.paths()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func expectArgs(cmd string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrUsage, cmd, n, len(args))
	}
	return nil
}
