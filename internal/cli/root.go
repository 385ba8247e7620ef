// Package cli implements schedulectl, a command line client for the Searoutes
// itinerary API built on the same resolvers and mapping as the HTTP service.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/schedule-lookup/schedule-lookup-service/internal/bootstrap"
	"github.com/schedule-lookup/schedule-lookup-service/internal/config"
	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
	"github.com/schedule-lookup/schedule-lookup-service/internal/infrastructure/logger"
	"github.com/schedule-lookup/schedule-lookup-service/internal/usecase"
)

// Env is what the commands run against.
type Env struct {
	Schedules usecase.ScheduleUseCase
	Ports     domain.PortResolver
	Carriers  domain.CarrierResolver
}

// Options are the persistent flags shared by every command.
type Options struct {
	BaseURL string
	Debug   bool
}

// EnvFactory builds the Env once flags are parsed.
type EnvFactory func(opts Options, stderr io.Writer) (*Env, error)

// NewRootCmd returns the schedulectl command tree.
func NewRootCmd(factory EnvFactory) *cobra.Command {
	var opts Options

	root := &cobra.Command{
		Use:           "schedulectl",
		Short:         "Search container shipping schedules on Searoutes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.BaseURL, "base-url", "", "Searoutes base URL (overrides SEAROUTES_BASE_URL)")
	root.PersistentFlags().BoolVarP(&opts.Debug, "debug", "v", false, "Enable debug logs")

	env := func(cmd *cobra.Command) (*Env, error) {
		return factory(opts, cmd.ErrOrStderr())
	}

	root.AddCommand(newItinerariesCmd(env))
	root.AddCommand(newResolveCmd(env))
	return root
}

// DefaultEnv loads the service configuration and talks to Searoutes directly,
// whatever PROVIDER says.
func DefaultEnv(opts Options, stderr io.Writer) (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.BaseURL != "" {
		cfg.Searoutes.BaseURL = opts.BaseURL
	}

	logCfg := cfg.Logging
	logCfg.Format = "console"
	logCfg.Level = "warn"
	if opts.Debug {
		logCfg.Level = "debug"
	}
	log := logger.NewWithOutput(logCfg, stderr)

	sr := bootstrap.NewSearoutes(cfg, log)
	return &Env{
		Schedules: usecase.NewScheduleUseCase(sr.Provider, &usecase.Config{ProviderTimeout: cfg.Timeouts.Provider}, log),
		Ports:     sr.Ports,
		Carriers:  sr.Carriers,
	}, nil
}

// Execute runs schedulectl with the default environment.
func Execute() {
	if err := NewRootCmd(DefaultEnv).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
