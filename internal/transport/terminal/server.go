package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

const helpText = "commands: click N (cell 0-8), jump N (history step), quit\n"

type gameController interface {
	OnCellClick(ctx context.Context, cell int) (entity.MoveOutcome, error)
	OnHistoryButtonClick(ctx context.Context, step int) error
	Render(ctx context.Context) error
}

// Server is the event-dispatch loop of a terminal session: one command per input line,
// each handled to completion before the next is read.
type Server struct {
	logger     *slog.Logger
	controller gameController
	in         io.Reader
	out        io.Writer
}

func NewServer(logger *slog.Logger, controller gameController, in io.Reader, out io.Writer) *Server {
	return &Server{
		logger:     logger.With("component", "terminal"),
		controller: controller,
		in:         in,
		out:        out,
	}
}

// Run - serves the session until quit, end of input or ctx is done.
func (that *Server) Run(ctx context.Context) error {
	that.notify(helpText)

	if err := that.controller.Render(ctx); err != nil {
		return fmt.Errorf("failed to render first frame: %w", err)
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go that.readLines(ctx, lines, scanErr)

	for {
		select {
		case <-ctx.Done():
			that.logger.Info("session interrupted")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				that.logger.Info("input closed")
				return nil
			}

			quit, err := that.dispatch(ctx, line)
			if err != nil {
				return err
			}

			if quit {
				that.logger.Info("session finished by user")
				return nil
			}
		}
	}
}

func (that *Server) readLines(ctx context.Context, lines chan<- string, scanErr chan<- error) {
	defer close(lines)

	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			scanErr <- nil
			return
		}
	}

	scanErr <- scanner.Err()
}

func (that *Server) dispatch(ctx context.Context, line string) (bool, error) {
	if strings.TrimSpace(line) == "" {
		return false, nil
	}

	log := that.logger.With("method", "dispatch")

	command, err := ParseCommand(line)
	if err != nil {
		if errors.Is(err, apperror.ErrUnknownCommand) {
			that.notify(helpText)
		}

		log.Debug("bad command", "line", line, "error", err)
		that.notify(err.Error() + "\n")

		return false, nil
	}

	switch command.Kind {
	case CommandQuit:
		return true, nil
	case CommandClick:
		return false, that.click(ctx, command.Arg)
	case CommandJump:
		return false, that.jump(ctx, command.Arg)
	default:
		return false, nil
	}
}

func (that *Server) click(ctx context.Context, cell int) error {
	outcome, err := that.controller.OnCellClick(ctx, cell)
	switch {
	case errors.Is(err, apperror.ErrInvalidCell):
		that.notify(fmt.Sprintf("no such cell: %d\n", cell))
		return nil
	case err != nil:
		return fmt.Errorf("failed to handle click: %w", err)
	}

	switch outcome {
	case entity.MoveIgnoredCellOccupied:
		that.notify(fmt.Sprintf("cell %d is already taken\n", cell))
	case entity.MoveIgnoredGameDecided:
		that.notify("the game is already decided, jump back to play on\n")
	}

	return nil
}

func (that *Server) jump(ctx context.Context, step int) error {
	err := that.controller.OnHistoryButtonClick(ctx, step)
	switch {
	case errors.Is(err, apperror.ErrStepOutOfRange):
		that.notify(fmt.Sprintf("no such step: %d\n", step))
		return nil
	case err != nil:
		return fmt.Errorf("failed to handle jump: %w", err)
	}

	return nil
}

func (that *Server) notify(message string) {
	if _, err := io.WriteString(that.out, message); err != nil {
		that.logger.Error("failed to write notice", "error", err)
	}
}
