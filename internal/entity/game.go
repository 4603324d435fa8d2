package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
)

// Move is the mark placed on a cell to produce a history step.
type Move struct {
	Cell int  `json:"cell"`
	Mark Mark `json:"mark"`
}

// Game owns the history of board snapshots and the step currently displayed.
//
// history[0] is always the empty board, and every later entry differs from
// its predecessor in exactly one cell. The mark to move is derived from the
// parity of stepNumber.
type Game struct {
	history    []Board
	stepNumber int
}

// NewGame - creates a game at the start: one empty board, step 0.
func NewGame() *Game {
	return &Game{
		history:    []Board{{}},
		stepNumber: 0,
	}
}

// ApplyMove - places the mark to move on cell.
// A move on a decided board or an occupied cell is a no-op reported through the outcome.
// A move made after jumping back discards every step after the current one.
func (that *Game) ApplyMove(cell int) (MoveOutcome, error) {
	if !isValidCell(cell) {
		return MoveApplied, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	current := that.CurrentBoard()

	if _, decided := current.Winner(); decided {
		return MoveIgnoredGameDecided, nil
	}

	if current[cell] != Empty {
		return MoveIgnoredCellOccupied, nil
	}

	next := current
	next[cell] = that.NextMark()

	that.history = append(that.history[:that.stepNumber+1], next)
	that.stepNumber = len(that.history) - 1

	return MoveApplied, nil
}

// JumpTo - moves the displayed step without touching history.
func (that *Game) JumpTo(step int) error {
	if step < 0 || step >= len(that.history) {
		return fmt.Errorf("%w: step %d, history length %d", apperror.ErrStepOutOfRange, step, len(that.history))
	}

	that.stepNumber = step

	return nil
}

func (that *Game) CurrentBoard() Board {
	return that.history[that.stepNumber]
}

func (that *Game) Status() Status {
	if winner, decided := that.CurrentBoard().Winner(); decided {
		return Winner(winner)
	}

	return NextTurn(that.NextMark())
}

// NextMark - X moves on even steps, O on odd ones.
func (that *Game) NextMark() Mark {
	if that.stepNumber%2 == 0 {
		return MarkX
	}

	return MarkO
}

func (that *Game) StepNumber() int {
	return that.stepNumber
}

func (that *Game) HistoryLen() int {
	return len(that.history)
}

// History - returns a copy of every snapshot, oldest first.
func (that *Game) History() []Board {
	return append([]Board(nil), that.history...)
}

// MoveAt - returns the move that produced step. Step 0 has no move.
func (that *Game) MoveAt(step int) (Move, bool) {
	if step <= 0 || step >= len(that.history) {
		return Move{}, false
	}

	previous, current := that.history[step-1], that.history[step]
	for cell := range current {
		if previous[cell] != current[cell] {
			return Move{Cell: cell, Mark: current[cell]}, true
		}
	}

	return Move{}, false
}
