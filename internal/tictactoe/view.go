package tictactoe

//go:generate mockgen -source=view.go -destination=mocks/view_mock.go -package=mocks

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
)

const startLabel = "Go to game start"

// View renders game snapshots. It never holds game state of its own.
type View interface {
	Render(snapshot Snapshot) error
}

// HistoryButton is one navigation control per history entry.
type HistoryButton struct {
	Step    int
	Label   string
	Move    entity.Move
	HasMove bool
	Current bool
}

// Snapshot is the read-only state handed to a View.
type Snapshot struct {
	Board   entity.Board
	Status  entity.Status
	Step    int
	Buttons []HistoryButton
}

// NewSnapshot - captures what a view needs from game.
func NewSnapshot(game *entity.Game) Snapshot {
	buttons := make([]HistoryButton, game.HistoryLen())
	for step := range buttons {
		move, hasMove := game.MoveAt(step)
		buttons[step] = HistoryButton{
			Step:    step,
			Label:   StepLabel(step),
			Move:    move,
			HasMove: hasMove,
			Current: step == game.StepNumber(),
		}
	}

	return Snapshot{
		Board:   game.CurrentBoard(),
		Status:  game.Status(),
		Step:    game.StepNumber(),
		Buttons: buttons,
	}
}

func StepLabel(step int) string {
	if step == 0 {
		return startLabel
	}

	return fmt.Sprintf("Go to move #%d", step)
}
