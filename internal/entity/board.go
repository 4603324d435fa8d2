package entity

// Mark is the content of a single board cell.
type Mark string

const (
	Empty Mark = ""
	MarkX Mark = "X"
	MarkO Mark = "O"
)

// BoardSize - number of cells on the board.
const BoardSize = 9

// WinCombos - rows, columns and diagonals, in the order they are scanned.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a row-major snapshot of the grid: rows are [0,1,2], [3,4,5], [6,7,8].
type Board [BoardSize]Mark

// Winner - returns the mark of the first complete line in WinCombos order.
func (that Board) Winner() (Mark, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != Empty && a == b && b == c {
			return a, true
		}
	}

	return Empty, false
}

// IsFull - reports whether every cell carries a mark.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

func isValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}
