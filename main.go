package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/knucklebones/internal"
	"github.com/rocketscienceinc/knucklebones/internal/config"
)

// main - is the entry point of the application. It parses flags, loads the configuration, initializes the logger and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		logLevel   string
		scoring    string
		seed       int64
		noColor    bool
	)

	cmd := &cobra.Command{
		Use:          "knucklebones",
		Short:        "Play Knucklebones in the terminal",
		Long:         "Two players take turns rolling a die and placing it in their own 3x3 grid. Highest grid score wins.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Load(configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("log-level") {
				conf.LogLevel = logLevel
			}
			if flags.Changed("scoring") {
				conf.Scoring = scoring
			}
			if flags.Changed("seed") {
				conf.Seed = seed
			}
			if flags.Changed("no-color") {
				conf.NoColor = noColor
			}

			if err = conf.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			if err = app.RunApp(initLogger(conf), conf); err != nil {
				return fmt.Errorf("app run failed: %w", err)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", defaultConfigPath(), "path to the YAML config file")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&scoring, "scoring", "multiplicity", "column scoring: multiplicity or product")
	flags.Int64Var(&seed, "seed", 0, "dice seed, 0 seeds from the clock")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

func defaultConfigPath() string {
	baseDir, err := os.Getwd()
	if err != nil {
		return "config.yml"
	}

	return filepath.Join(baseDir, "config.yml")
}

// initialize logger. The terminal owns stdout, so logs go to stderr.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
