package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yildizm/swdex/internal/config"
	"github.com/yildizm/swdex/internal/logger"
	"github.com/yildizm/swdex/internal/people"
	"github.com/yildizm/swdex/internal/session"
	"github.com/yildizm/swdex/internal/swapi"
)

// loadConfig loads layered configuration and folds in flags the user set
// explicitly. Flags win over files and environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if !cmd.Flags().Changed("output") && cfg.Output.DefaultFormat != "" {
		outputFmt = cfg.Output.DefaultFormat
	}
	if cfg.Output.Verbose {
		verbose = true
	}
	if cfg.Output.ColorMode == "never" {
		noColor = true
	}
	if cmd.Flags().Changed("theme") {
		cfg.Output.Theme = themeName
	}

	return cfg, nil
}

// configureLogging points the shared sink at the configured file. The
// browser owns the terminal, so with tui set nothing goes to stderr.
func configureLogging(cfg *config.Config, tui bool) (func() error, error) {
	level := cfg.Logging.Level
	if isVerbose() {
		level = "debug"
	}

	closer, err := logger.Configure(logger.Options{
		Level:   level,
		File:    cfg.Logging.File,
		Console: !tui,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	return closer, nil
}

func newLogger(component string) *logger.Logger {
	return logger.NewWithCallback(component, isVerbose)
}

// newHolder builds the people client from configuration and wraps it in an
// idle holder
func newHolder(cfg *config.Config) (*session.Holder, error) {
	client, err := swapi.New(&swapi.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, newLogger("swapi"))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return session.New(client, newLogger("session")), nil
}

// fetchPeople runs one fetch to completion and returns the records in
// fetch order
func fetchPeople(ctx context.Context, cfg *config.Config) ([]people.Record, error) {
	holder, err := newHolder(cfg)
	if err != nil {
		return nil, err
	}
	holder.Load(ctx)

	status, err := holder.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch did not finish: %w", err)
	}
	if failed, ok := status.(session.Failed); ok {
		return nil, fmt.Errorf("failed to load people: %s", failed.Message)
	}
	return session.RecordsOf(status), nil
}
