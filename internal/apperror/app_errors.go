package apperror

import "errors"

var (
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrStepOutOfRange = errors.New("step is out of history range")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidCommand = errors.New("invalid command")
)
