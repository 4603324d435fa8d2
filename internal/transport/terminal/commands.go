package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rocketscienceinc/tictactoe-history/internal/apperror"
)

type CommandKind string

const (
	CommandClick CommandKind = "click"
	CommandJump  CommandKind = "jump"
	CommandQuit  CommandKind = "quit"
)

var (
	validate = validator.New(validator.WithRequiredStructEnabled())

	commandAliases = map[string]CommandKind{
		"click": CommandClick,
		"c":     CommandClick,
		"jump":  CommandJump,
		"j":     CommandJump,
		"quit":  CommandQuit,
		"q":     CommandQuit,
	}
)

// Command is one user event read from a line of input.
type Command struct {
	Kind CommandKind `validate:"required,oneof=click jump quit"`
	Arg  int         `validate:"gte=0"`
}

// ParseCommand - parses "click N", "jump N" or "quit", short forms included.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", apperror.ErrUnknownCommand)
	}

	kind, ok := commandAliases[fields[0]]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, fields[0])
	}

	command := Command{Kind: kind}

	switch kind {
	case CommandQuit:
		if len(fields) != 1 {
			return Command{}, fmt.Errorf("%w: %s takes no argument", apperror.ErrInvalidCommand, kind)
		}
	case CommandClick, CommandJump:
		if len(fields) != 2 {
			return Command{}, fmt.Errorf("%w: %s takes exactly one number", apperror.ErrInvalidCommand, kind)
		}

		arg, err := strconv.Atoi(fields[1])
		if err != nil {
			return Command{}, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidCommand, fields[1])
		}

		command.Arg = arg
	}

	if err := validate.Struct(command); err != nil {
		return Command{}, fmt.Errorf("%w: %s", apperror.ErrInvalidCommand, err.Error())
	}

	return command, nil
}
