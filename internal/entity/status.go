package entity

// StatusKind tells whether a status carries the winner or the mark to move.
type StatusKind int

const (
	StatusNextTurn StatusKind = iota
	StatusWinner
)

func (that StatusKind) String() string {
	switch that {
	case StatusWinner:
		return "winner"
	case StatusNextTurn:
		return "next_turn"
	default:
		return "unknown"
	}
}

// Status is the outcome shown for the current step.
type Status struct {
	Kind StatusKind `json:"kind"`
	Mark Mark       `json:"mark"`
}

func Winner(mark Mark) Status {
	return Status{Kind: StatusWinner, Mark: mark}
}

func NextTurn(mark Mark) Status {
	return Status{Kind: StatusNextTurn, Mark: mark}
}

func (that Status) IsDecided() bool {
	return that.Kind == StatusWinner
}

// MoveOutcome - result of ApplyMove. Only MoveApplied changes the game.
type MoveOutcome int

const (
	MoveApplied MoveOutcome = iota
	MoveIgnoredGameDecided
	MoveIgnoredCellOccupied
)

func (that MoveOutcome) String() string {
	switch that {
	case MoveApplied:
		return "applied"
	case MoveIgnoredGameDecided:
		return "ignored_game_decided"
	case MoveIgnoredCellOccupied:
		return "ignored_cell_occupied"
	default:
		return "unknown"
	}
}
