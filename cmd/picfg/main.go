package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-pi-config/configsvc"
	"github.com/MKhiriev/go-pi-config/internal/cli"
	"github.com/MKhiriev/go-pi-config/internal/config"
	"github.com/MKhiriev/go-pi-config/internal/discovery"
	"github.com/MKhiriev/go-pi-config/internal/logger"
	"github.com/MKhiriev/go-pi-config/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: picfg [flags] <command> [args]

commands:
  show [--explain]   print the merged config
  get <key>          print one value (keys are dot-separated)
  set <key> <value>  store a value in the target layer and save it
  unset <key>        remove a key from the target layer and save it
  path               print the backing store of every layer
  version            print build information

flags:
`

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

// run executes one picfg invocation and returns the process exit code:
// 0 on success, 1 when the command fails and 2 on bad usage.
func run(ctx context.Context, args, environ []string, stdout, stderr io.Writer) int {
	settings, err := config.GetSettings(args, environ)
	if err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(stderr, "picfg: %v\n\n", err)
		}
		fmt.Fprint(stderr, usage, config.FlagUsage())
		return 2
	}

	if settings.Args[0] == config.CommandVersion {
		fmt.Fprint(stdout, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String())
		return 0
	}

	level, _ := logger.ParseLevel(settings.LogLevel)
	log := logger.New(stderr, settings.LogFormat, "picfg", level)
	ctx = log.WithContext(ctx)

	opts := []configsvc.Option[models.Document]{
		configsvc.WithLogger[models.Document](log),
		configsvc.WithEnviron[models.Document](func() []string { return environ }),
	}
	if settings.Home != "" {
		opts = append(opts, configsvc.WithHomeDir[models.Document](settings.Home))
	}
	if settings.ProjectRoot != "" {
		opts = append(opts, configsvc.WithDiscoverer[models.Document](discovery.Static(settings.ProjectRoot)))
	}

	svc, err := configsvc.New[models.Document](ctx, settings.App, opts...)
	if err != nil {
		log.Error().Err(err).Msg("error loading config")
		return 1
	}

	app := cli.NewApp(svc, stdout)
	err = app.Run(ctx, cli.Request{
		Args:    settings.Args,
		Target:  models.LayerName(settings.Target),
		Explain: settings.Explain,
	})
	switch {
	case err == nil:
		return 0
	case errors.Is(err, cli.ErrUsage), errors.Is(err, cli.ErrUnknownCommand):
		fmt.Fprintf(stderr, "picfg: %v\n\n", err)
		fmt.Fprint(stderr, usage, config.FlagUsage())
		return 2
	default:
		log.Error().Err(err).Msg("command failed")
		return 1
	}
}
