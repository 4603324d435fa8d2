package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playMoves - applies moves in order and fails the test unless each one is applied.
func playMoves(t *testing.T, game *Game, cells ...int) {
	t.Helper()

	for _, cell := range cells {
		outcome, err := game.ApplyMove(cell)
		require.NoError(t, err)
		require.Equal(t, MoveApplied, outcome, "cell %d", cell)
	}
}

func TestNewGame(t *testing.T) {
	// Given: a fresh game
	game := NewGame()

	// Then: the board is empty and X moves first
	assert.Equal(t, Board{}, game.CurrentBoard())
	assert.Equal(t, NextTurn(MarkX), game.Status())
	assert.Equal(t, 1, game.HistoryLen())
	assert.Equal(t, 0, game.StepNumber())
}

func TestGame_ApplyMove(t *testing.T) {
	t.Run("Places the mark to move and advances the step", func(t *testing.T) {
		// Given: a fresh game
		game := NewGame()

		// When: X plays the center
		outcome, err := game.ApplyMove(4)

		// Then: the center holds X and O is next
		require.NoError(t, err)
		assert.Equal(t, MoveApplied, outcome)
		assert.Equal(t, Board{4: MarkX}, game.CurrentBoard())
		assert.Equal(t, NextTurn(MarkO), game.Status())
		assert.Equal(t, 2, game.HistoryLen())
		assert.Equal(t, 1, game.StepNumber())
	})

	t.Run("Alternates marks starting with X", func(t *testing.T) {
		// Given: a fresh game
		game := NewGame()
		cells := []int{0, 1, 2, 4, 3, 5, 7, 6, 8}

		// When: a full non-winning game is played
		playMoves(t, game, cells...)

		// Then: move i placed X on even i and O on odd i
		board := game.CurrentBoard()
		for i, cell := range cells {
			expected := MarkX
			if i%2 == 1 {
				expected = MarkO
			}
			assert.Equal(t, expected, board[cell], "move %d on cell %d", i, cell)
		}
		_, decided := board.Winner()
		assert.False(t, decided)
		assert.True(t, board.IsFull())
	})

	t.Run("Ignores a move on an occupied cell", func(t *testing.T) {
		// Given: X holds cell 0
		game := NewGame()
		playMoves(t, game, 0)
		history := game.History()

		// When: O tries the same cell
		outcome, err := game.ApplyMove(0)

		// Then: nothing changes
		require.NoError(t, err)
		assert.Equal(t, MoveIgnoredCellOccupied, outcome)
		assert.Equal(t, history, game.History())
		assert.Equal(t, 1, game.StepNumber())
		assert.Equal(t, NextTurn(MarkO), game.Status())
	})

	t.Run("Ignores a move after the game is decided", func(t *testing.T) {
		// Given: X completed the top row
		game := NewGame()
		playMoves(t, game, 0, 3, 1, 4, 2)
		history := game.History()

		// When: O tries to keep playing
		outcome, err := game.ApplyMove(5)

		// Then: nothing changes and X stays the winner
		require.NoError(t, err)
		assert.Equal(t, MoveIgnoredGameDecided, outcome)
		assert.Equal(t, history, game.History())
		assert.Equal(t, Winner(MarkX), game.Status())
	})

	t.Run("Rejects a cell outside the board", func(t *testing.T) {
		for _, cell := range []int{-1, BoardSize, 42} {
			// Given: a fresh game
			game := NewGame()

			// When: a move targets a cell that does not exist
			_, err := game.ApplyMove(cell)

			// Then: ErrInvalidCell is returned and history is untouched
			require.ErrorIs(t, err, apperror.ErrInvalidCell)
			assert.Equal(t, 1, game.HistoryLen())
		}
	})

	t.Run("Discards the old future when moving after a jump", func(t *testing.T) {
		// Given: four moves and a jump back to step 1
		game := NewGame()
		playMoves(t, game, 0, 4, 8, 2)
		require.NoError(t, game.JumpTo(1))

		// When: O plays a different cell
		playMoves(t, game, 6)

		// Then: history holds steps 0..2 only and the new step is current
		assert.Equal(t, 3, game.HistoryLen())
		assert.Equal(t, 2, game.StepNumber())
		assert.Equal(t, Board{0: MarkX, 6: MarkO}, game.CurrentBoard())
	})

	t.Run("Keeps earlier snapshots intact", func(t *testing.T) {
		// Given: a snapshot taken before a move
		game := NewGame()
		playMoves(t, game, 0)
		before := game.History()

		// When: another move is made
		playMoves(t, game, 1)

		// Then: the old snapshots still hold their original marks
		after := game.History()
		assert.Equal(t, before, after[:2])
		assert.Equal(t, Board{}, after[0])
	})
}

func TestGame_BranchDiscard(t *testing.T) {
	for k := 0; k < 4; k++ {
		// Given: a five-step history and a jump to step k
		game := NewGame()
		playMoves(t, game, 0, 3, 1, 4)
		require.NoError(t, game.JumpTo(k))

		// When: a move is made on a cell empty at every step
		playMoves(t, game, 8)

		// Then: history length is k+2
		assert.Equal(t, k+2, game.HistoryLen(), "jump to %d", k)
		assert.Equal(t, k+1, game.StepNumber(), "jump to %d", k)
	}
}

func TestGame_JumpTo(t *testing.T) {
	t.Run("Shows an earlier board without truncating", func(t *testing.T) {
		// Given: two moves
		game := NewGame()
		playMoves(t, game, 0, 4)

		// When: jumping back to step 1
		err := game.JumpTo(1)

		// Then: the board after X's move is shown and O is next
		require.NoError(t, err)
		assert.Equal(t, Board{0: MarkX}, game.CurrentBoard())
		assert.Equal(t, NextTurn(MarkO), game.Status())
		assert.Equal(t, 3, game.HistoryLen())
	})

	t.Run("Re-enters an in-progress state from a won game", func(t *testing.T) {
		// Given: X won
		game := NewGame()
		playMoves(t, game, 0, 3, 1, 4, 2)
		require.Equal(t, Winner(MarkX), game.Status())

		// When: jumping back to before the winning move
		require.NoError(t, game.JumpTo(4))

		// Then: X is to move again and may play elsewhere
		assert.Equal(t, NextTurn(MarkX), game.Status())
		playMoves(t, game, 8)
		assert.Equal(t, NextTurn(MarkO), game.Status())
		assert.Equal(t, 6, game.HistoryLen())
	})

	t.Run("Jumps forward again to a kept step", func(t *testing.T) {
		// Given: a won game viewed at the start
		game := NewGame()
		playMoves(t, game, 0, 3, 1, 4, 2)
		require.NoError(t, game.JumpTo(0))

		// When: jumping to the last step
		err := game.JumpTo(5)

		// Then: the win is shown again
		require.NoError(t, err)
		assert.Equal(t, Winner(MarkX), game.Status())
	})

	t.Run("Rejects a step outside history", func(t *testing.T) {
		for _, step := range []int{-1, 2, 10} {
			// Given: one move
			game := NewGame()
			playMoves(t, game, 0)

			// When: jumping outside history
			err := game.JumpTo(step)

			// Then: ErrStepOutOfRange is returned and the step is unchanged
			require.ErrorIs(t, err, apperror.ErrStepOutOfRange)
			assert.Equal(t, 1, game.StepNumber())
			assert.Equal(t, 2, game.HistoryLen())
		}
	})
}

func TestGame_MoveAt(t *testing.T) {
	// Given: X at 4 then O at 0
	game := NewGame()
	playMoves(t, game, 4, 0)

	t.Run("Step 0 has no move", func(t *testing.T) {
		_, ok := game.MoveAt(0)
		assert.False(t, ok)
	})

	t.Run("Returns the cell and mark of each step", func(t *testing.T) {
		move, ok := game.MoveAt(1)
		require.True(t, ok)
		assert.Equal(t, Move{Cell: 4, Mark: MarkX}, move)

		move, ok = game.MoveAt(2)
		require.True(t, ok)
		assert.Equal(t, Move{Cell: 0, Mark: MarkO}, move)
	})

	t.Run("Steps outside history have no move", func(t *testing.T) {
		_, ok := game.MoveAt(3)
		assert.False(t, ok)
	})
}

func TestGame_Scenarios(t *testing.T) {
	t.Run("Top row wins for X and blocks further moves", func(t *testing.T) {
		// Given: a fresh game
		game := NewGame()

		// When: X takes 0, 1, 2 while O takes 3, 4
		playMoves(t, game, 0, 3, 1, 4, 2)

		// Then: X wins and a sixth move is a no-op
		assert.Equal(t, Winner(MarkX), game.Status())
		outcome, err := game.ApplyMove(8)
		require.NoError(t, err)
		assert.Equal(t, MoveIgnoredGameDecided, outcome)
		assert.Equal(t, 6, game.HistoryLen())
	})

	t.Run("Moves 0, 4, 1, 2, 8 leave the game open", func(t *testing.T) {
		// Given: a fresh game
		game := NewGame()

		// When: X takes 0, 1, 8 while O takes 4, 2
		playMoves(t, game, 0, 4, 1, 2, 8)

		// Then: no line is complete and O is next
		assert.Equal(t, Board{
			MarkX, MarkX, MarkO,
			Empty, MarkO, Empty,
			Empty, Empty, MarkX,
		}, game.CurrentBoard())
		assert.Equal(t, NextTurn(MarkO), game.Status())
	})

	t.Run("Jump to start then move places O", func(t *testing.T) {
		// Given: X played cell 0
		game := NewGame()
		playMoves(t, game, 0)

		// When: jumping to the start
		require.NoError(t, game.JumpTo(0))

		// Then: the empty board is shown with X to move
		assert.Equal(t, Board{}, game.CurrentBoard())
		assert.Equal(t, NextTurn(MarkX), game.Status())

		// When: cell 1 is played from the start
		playMoves(t, game, 1)

		// Then: the parity of step 0 decides the mark and the old move is gone
		assert.Equal(t, Board{1: MarkX}, game.CurrentBoard())
		assert.Equal(t, 2, game.HistoryLen())
	})
}
