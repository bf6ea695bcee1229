package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/useragents/pkg/category"
	"github.com/dmitrymomot/useragents/pkg/config"
	"github.com/dmitrymomot/useragents/pkg/logger"
	"github.com/dmitrymomot/useragents/pkg/random"
	"github.com/dmitrymomot/useragents/pkg/useragents"
)

var version = "0.1.0"

type commandKey struct{}

// app carries what every subcommand needs once the root command has run.
type app struct {
	cfg      config.Config
	log      *slog.Logger
	registry *useragents.Registry
	provider *category.CSVProvider
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "useragents",
		Short: "Generate realistic User-Agent strings",
		Long: `useragents builds Chrome, Firefox and Googlebot User-Agent strings from
templates and samples real-world ones from bundled corpora.

Settings are read from the environment (or a .env file):
  USERAGENTS_LOG_LEVEL, USERAGENTS_LOG_FORMAT, USERAGENTS_ENV,
  USERAGENTS_SEED, USERAGENTS_DATA_DIR`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.init(cmd.ErrOrStderr()); err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), commandKey{}, cmd.Name()))
			return nil
		},
	}

	rootCmd.AddCommand(randomCmd(a))
	rootCmd.AddCommand(chromeCmd(a))
	rootCmd.AddCommand(firefoxCmd(a))
	rootCmd.AddCommand(googlebotCmd(a))
	rootCmd.AddCommand(categoryCmd(a))
	rootCmd.AddCommand(categoriesCmd(a))
	rootCmd.AddCommand(importCmd(a))

	return rootCmd
}

func (a *app) init(stderr io.Writer) error {
	cfg, err := config.Get()
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.New(
		logger.WithOutput(stderr),
		logger.WithLevel(level),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithEnvironment(cfg.Env),
		logger.WithContextValue("command", commandKey{}),
	)

	if cfg.Seed != 0 {
		random.Seed(cfg.Seed)
		a.log.Debug("random source seeded", slog.Int64("seed", cfg.Seed))
	}

	a.provider = category.DefaultProvider()
	if cfg.DataDir != "" {
		a.provider = category.NewCSVProvider(os.DirFS(cfg.DataDir))
		a.log.Debug("using corpus directory", logger.Path(cfg.DataDir))
	}

	a.registry = useragents.New(
		useragents.WithLogger(a.log),
		useragents.WithProvider(a.provider),
	)
	return nil
}

func checkCount(count int) error {
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}
	return nil
}

// repeat calls gen count times and prints every non-empty result on its own line.
func repeat(w io.Writer, count int, gen func() (string, error)) error {
	if err := checkCount(count); err != nil {
		return err
	}
	for range count {
		s, err := gen()
		if err != nil {
			return err
		}
		if s == "" {
			continue
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
