package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env-default:"info" validate:"oneof=debug info warn error"`
	LogFormat string    `yaml:"log-format" env-default:"json" validate:"oneof=json text"`
	Telemetry Telemetry `yaml:"telemetry"`
	View      View      `yaml:"view"`
}

type Telemetry struct {
	Enabled     bool   `yaml:"enabled" env-default:"false"`
	ServiceName string `yaml:"service-name" env-default:"tictactoe" validate:"required"`
}

type View struct {
	EmptyCell   string `yaml:"empty-cell" env-default:"." validate:"len=1"`
	HideHistory bool   `yaml:"hide-history" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// Load - reads the file at path, or only the defaults when the file does not exist, and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read config defaults: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	if err = validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
