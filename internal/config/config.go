package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/knucklebones/internal/entity"
)

var (
	ErrUnknownLogLevel  = errors.New("unknown log level")
	ErrNotEnoughPlayers = errors.New("at least two player names are required")
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"KB_LOG_LEVEL" env-default:"info"`
	Scoring  string   `yaml:"scoring" env:"KB_SCORING" env-default:"multiplicity"`
	Seed     int64    `yaml:"seed" env:"KB_SEED" env-default:"0"`
	NoColor  bool     `yaml:"no-color" env:"KB_NO_COLOR"`
	Players  []string `yaml:"players" env:"KB_PLAYERS" env-separator:"," env-default:"Player 1,Player 2"`
}

// Load - reads the YAML file at path when it exists, otherwise only the environment.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err = cleanenv.ReadConfig(path, config); err != nil {
				return nil, fmt.Errorf("unable to load config file: %w", err)
			}

			return config, nil
		}
	}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to load config from environment: %w", err)
	}

	return config, nil
}

// MustLoad - same as Load but panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	if _, err := that.ScoringPolicy(); err != nil {
		return err
	}

	if len(that.Players) < 2 {
		return fmt.Errorf("%w: got %d", ErrNotEnoughPlayers, len(that.Players))
	}

	return nil
}

func (that *Config) ScoringPolicy() (entity.ScoringPolicy, error) {
	policy, err := entity.ParseScoringPolicy(that.Scoring)
	if err != nil {
		return "", fmt.Errorf("invalid scoring: %w", err)
	}

	return policy, nil
}
