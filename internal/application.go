package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-history/internal/config"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/telemetry"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-history/internal/transport/terminal"
	"go.opentelemetry.io/otel"
)

// Streams - where a session reads commands, draws frames and exports telemetry.
type Streams struct {
	In        io.Reader
	Out       io.Writer
	Telemetry io.Writer
}

// RunApp - runs one game session until the user quits, the input ends or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, streams Streams) error {
	sessionID := uuid.NewString()
	log := logger.With("component", "app", "session", sessionID)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Init(ctx, conf.Telemetry.Enabled, conf.Telemetry.ServiceName, streams.Telemetry)
	if err != nil {
		return fmt.Errorf("could not init telemetry: %w", err)
	}

	defer func() {
		// ctx may be cancelled by a signal; shutdown still needs to flush
		if shutdownErr := shutdown(context.Background()); shutdownErr != nil {
			log.Error("could not shutdown telemetry", "error", shutdownErr)
		}
	}()

	view := terminal.NewView(streams.Out, conf.View.EmptyCell, conf.View.HideHistory)

	gameController, err := tictactoe.NewGameController(
		logger.With("session", sessionID),
		entity.NewGame(),
		view,
		otel.Tracer(telemetry.InstrumentationName),
		otel.Meter(telemetry.InstrumentationName),
	)
	if err != nil {
		return fmt.Errorf("could not create game controller: %w", err)
	}

	server := terminal.NewServer(logger.With("session", sessionID), gameController, streams.In, streams.Out)

	log.Info("Starting session")

	if err = server.Run(ctx); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	log.Info("Session finished")

	return nil
}
