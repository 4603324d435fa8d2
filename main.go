package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-history/internal"
	"github.com/rocketscienceinc/tictactoe-history/internal/config"
	"github.com/rocketscienceinc/tictactoe-history/internal/logger"
	"github.com/rocketscienceinc/tictactoe-history/internal/telemetry"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs a game session.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	log := initLogger(conf)

	streams := app.Streams{
		In:        os.Stdin,
		Out:       os.Stdout,
		Telemetry: os.Stderr,
	}

	if err := app.RunApp(log, conf, streams); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

// initialize logger. Frames go to stdout, so logs go to stderr.
func initLogger(conf *config.Config) *slog.Logger {
	return logger.New(os.Stderr, conf.LogLevel, conf.LogFormat, telemetry.InstrumentationName)
}
