package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// GameController is the boundary between a view and the single game it owns.
// Every event mutates the game through ApplyMove or JumpTo and re-renders the view.
type GameController struct {
	logger *slog.Logger
	game   *entity.Game
	view   View
	tracer trace.Tracer

	moveCounter metric.Int64Counter
	jumpCounter metric.Int64Counter
}

func NewGameController(logger *slog.Logger, game *entity.Game, view View, tracer trace.Tracer, meter metric.Meter) (*GameController, error) {
	moveCounter, err := meter.Int64Counter("tictactoe.moves",
		metric.WithDescription("Cell clicks by outcome"),
		metric.WithUnit("{move}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create move counter: %w", err)
	}

	jumpCounter, err := meter.Int64Counter("tictactoe.jumps",
		metric.WithDescription("History jumps by result"),
		metric.WithUnit("{jump}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create jump counter: %w", err)
	}

	return &GameController{
		logger: logger.With("component", "game_controller"),
		game:   game,
		view:   view,
		tracer: tracer,

		moveCounter: moveCounter,
		jumpCounter: jumpCounter,
	}, nil
}

// OnCellClick - applies a move on cell. Ignored moves leave the game as is and are not rendered.
func (that *GameController) OnCellClick(ctx context.Context, cell int) (entity.MoveOutcome, error) {
	ctx, span := that.tracer.Start(ctx, "tictactoe.OnCellClick", trace.WithAttributes(
		attribute.Int("game.cell", cell),
		attribute.Int("game.step", that.game.StepNumber()),
	))
	defer span.End()

	log := that.logger.With("method", "OnCellClick", "cell", cell)

	outcome, err := that.game.ApplyMove(cell)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid move")
		that.moveCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "invalid")))

		return outcome, fmt.Errorf("failed to apply move: %w", err)
	}

	that.moveCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome.String())))
	span.SetAttributes(attribute.String("game.move_outcome", outcome.String()))

	if outcome != entity.MoveApplied {
		log.DebugContext(ctx, "move ignored", "outcome", outcome.String())
		return outcome, nil
	}

	board := that.game.CurrentBoard()
	status := that.game.Status()
	span.SetAttributes(attribute.String("game.status", status.Kind.String()))

	switch {
	case status.IsDecided():
		log.InfoContext(ctx, "game decided", "winner", string(status.Mark), "step", that.game.StepNumber())
	case board.IsFull():
		log.InfoContext(ctx, "board is full without a winner", "step", that.game.StepNumber())
	default:
		log.DebugContext(ctx, "move applied", "step", that.game.StepNumber(), "next", string(status.Mark))
	}

	if err = that.render(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")

		return outcome, err
	}

	return outcome, nil
}

// OnHistoryButtonClick - shows the snapshot at step.
func (that *GameController) OnHistoryButtonClick(ctx context.Context, step int) error {
	ctx, span := that.tracer.Start(ctx, "tictactoe.OnHistoryButtonClick", trace.WithAttributes(
		attribute.Int("game.step", step),
		attribute.Int("game.history_length", that.game.HistoryLen()),
	))
	defer span.End()

	log := that.logger.With("method", "OnHistoryButtonClick", "step", step)

	if err := that.game.JumpTo(step); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid step")
		that.jumpCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "rejected")))
		log.WarnContext(ctx, "jump rejected", "error", err)

		return fmt.Errorf("failed to jump: %w", err)
	}

	that.jumpCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "ok")))
	log.DebugContext(ctx, "jumped", "history_length", that.game.HistoryLen())

	if err := that.render(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render failed")

		return err
	}

	return nil
}

// Render - renders the current snapshot, used for the first frame of a session.
func (that *GameController) Render(ctx context.Context) error {
	return that.render(ctx)
}

func (that *GameController) render(ctx context.Context) error {
	if err := that.view.Render(NewSnapshot(that.game)); err != nil {
		that.logger.ErrorContext(ctx, "failed to render", "error", err)
		return fmt.Errorf("failed to render: %w", err)
	}

	return nil
}
