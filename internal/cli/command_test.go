package cli

import (
	"errors"
	"testing"

	"github.com/lk16/flippy/minimax/internal/othello"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Command
		wantErr bool
	}{
		{"column then row", "3 2", Command{Kind: CommandMove, Move: othello.Move{Row: 2, Col: 3}}, false},
		{"surrounding whitespace", "  4   5 ", Command{Kind: CommandMove, Move: othello.Move{Row: 5, Col: 4}}, false},
		{"field", "D3", Command{Kind: CommandMove, Move: othello.Move{Row: 2, Col: 3}}, false},
		{"digits off the board", "9 9", Command{Kind: CommandMove, Move: othello.Move{Row: 9, Col: 9}}, false},
		{"ai", "AI", Command{Kind: CommandAI}, false},
		{"depth", "depth 4", Command{Kind: CommandDepth, Depth: 4}, false},
		{"pruning off", "pruning off", Command{Kind: CommandPruning, Enabled: false}, false},
		{"debug on", "debug on", Command{Kind: CommandDebug, Enabled: true}, false},
		{"undo", "undo", Command{Kind: CommandUndo}, false},
		{"help", "?", Command{Kind: CommandHelp}, false},
		{"exit", "exit", Command{Kind: CommandExit}, false},
		{"quit", "quit", Command{Kind: CommandExit}, false},
		{"empty", "   ", Command{}, true},
		{"depth missing", "depth", Command{}, true},
		{"depth too deep", "depth 10", Command{}, true},
		{"depth zero", "depth 0", Command{}, true},
		{"depth not a number", "depth x", Command{}, true},
		{"pruning missing", "pruning", Command{}, true},
		{"pruning garbage", "pruning maybe", Command{}, true},
		{"single digit", "3", Command{}, true},
		{"two digit numbers", "10 2", Command{}, true},
		{"letters", "a b", Command{}, true},
		{"too many words", "1 2 3", Command{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.line)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrInvalidInput))
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, cmd)
		})
	}
}
