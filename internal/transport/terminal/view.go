package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

const rowSeparator = "---+---+---\n"

// View renders snapshots as plain text.
type View struct {
	out         io.Writer
	emptyCell   string
	hideHistory bool
}

func NewView(out io.Writer, emptyCell string, hideHistory bool) *View {
	return &View{
		out:         out,
		emptyCell:   emptyCell,
		hideHistory: hideHistory,
	}
}

func (that *View) Render(snapshot tictactoe.Snapshot) error {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString(rowSeparator)
		}

		cells := make([]string, 3)
		for col := range cells {
			cells[col] = that.cell(snapshot.Board[row*3+col])
		}

		sb.WriteString(" " + strings.Join(cells, " | ") + "\n")
	}

	sb.WriteString(StatusText(snapshot.Status) + "\n")

	if !that.hideHistory {
		for _, button := range snapshot.Buttons {
			sb.WriteString(buttonText(button) + "\n")
		}
	}

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}

	return nil
}

func (that *View) cell(mark entity.Mark) string {
	if mark == entity.Empty {
		return that.emptyCell
	}

	return string(mark)
}

// StatusText - "Winner: X" or "Next player: O".
func StatusText(status entity.Status) string {
	if status.IsDecided() {
		return "Winner: " + string(status.Mark)
	}

	return "Next player: " + string(status.Mark)
}

func buttonText(button tictactoe.HistoryButton) string {
	cursor := " "
	if button.Current {
		cursor = ">"
	}

	text := fmt.Sprintf("%s %d. %s", cursor, button.Step, button.Label)
	if button.HasMove {
		text += fmt.Sprintf(" (%s at %d)", button.Move.Mark, button.Move.Cell)
	}

	return text
}
