package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lk16/flippy/minimax/internal/othello"
	"github.com/lk16/flippy/minimax/internal/search"
)

// ErrInvalidInput is returned when a line cannot be parsed into a command.
var ErrInvalidInput = errors.New("invalid input")

// CommandKind identifies what a player asked for.
type CommandKind int

const (
	CommandMove CommandKind = iota
	CommandAI
	CommandDepth
	CommandPruning
	CommandDebug
	CommandUndo
	CommandHelp
	CommandExit
)

// Command is a parsed line of player input.
type Command struct {
	Kind CommandKind

	// Move is set for CommandMove.
	Move othello.Move

	// Depth is set for CommandDepth.
	Depth int

	// Enabled is set for CommandPruning and CommandDebug.
	Enabled bool
}

// ParseCommand parses a line of player input.
// Moves are entered as column then row ("3 2") or in field notation ("d3").
func ParseCommand(line string) (Command, error) {
	words := strings.Fields(strings.ToLower(line))
	if len(words) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrInvalidInput)
	}

	switch words[0] {
	case "ai":
		return Command{Kind: CommandAI}, nil
	case "depth":
		return parseDepth(words)
	case "pruning":
		enabled, err := parseToggle(words)
		return Command{Kind: CommandPruning, Enabled: enabled}, err
	case "debug":
		enabled, err := parseToggle(words)
		return Command{Kind: CommandDebug, Enabled: enabled}, err
	case "undo":
		return Command{Kind: CommandUndo}, nil
	case "help", "?":
		return Command{Kind: CommandHelp}, nil
	case "exit", "quit":
		return Command{Kind: CommandExit}, nil
	}

	move, err := parseMove(words)
	if err != nil {
		return Command{}, err
	}

	return Command{Kind: CommandMove, Move: move}, nil
}

func parseDepth(words []string) (Command, error) {
	rangeErr := fmt.Errorf(
		"%w: for depth, enter an integer in the range [%d-%d]",
		ErrInvalidInput,
		search.MinDepth,
		search.MaxDepth,
	)

	if len(words) != 2 {
		return Command{}, rangeErr
	}

	depth, err := strconv.Atoi(words[1])
	if err != nil || depth < search.MinDepth || depth > search.MaxDepth {
		return Command{}, rangeErr
	}

	return Command{Kind: CommandDepth, Depth: depth}, nil
}

func parseToggle(words []string) (bool, error) {
	if len(words) != 2 {
		return false, fmt.Errorf("%w: expected on or off", ErrInvalidInput)
	}

	switch words[1] {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: expected on or off, got %s", ErrInvalidInput, words[1])
	}
}

func parseMove(words []string) (othello.Move, error) {
	switch len(words) {
	case 1:
		move, err := othello.FieldToMove(words[0])
		if err != nil {
			return othello.Move{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return move, nil
	case 2:
		col, colErr := parseDigit(words[0])
		row, rowErr := parseDigit(words[1])
		if colErr != nil || rowErr != nil {
			return othello.Move{}, fmt.Errorf("%w: expected column and row digits, got %q", ErrInvalidInput, strings.Join(words, " "))
		}
		return othello.Move{Row: row, Col: col}, nil
	default:
		return othello.Move{}, fmt.Errorf("%w: unknown command %q", ErrInvalidInput, strings.Join(words, " "))
	}
}

func parseDigit(word string) (int, error) {
	if len(word) != 1 || word[0] < '0' || word[0] > '9' {
		return 0, fmt.Errorf("not a digit: %s", word)
	}
	return int(word[0] - '0'), nil
}
