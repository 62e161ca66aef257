package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/lk16/flippy/minimax/internal/othello"
	"github.com/lk16/flippy/minimax/internal/search"
	"github.com/stretchr/testify/require"
)

// scriptedReader feeds prepared lines to a session and records prompts.
type scriptedReader struct {
	lines   []string
	prompts []string
	err     error
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		if r.err != nil {
			return "", r.err
		}
		return "", io.EOF
	}

	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptedReader) SetPrompt(prompt string) {
	r.prompts = append(r.prompts, prompt)
}

func runSession(t *testing.T, game *othello.Game, cfg search.Config, lines ...string) (*Session, *scriptedReader, string) {
	t.Helper()

	reader := &scriptedReader{lines: lines}
	var out bytes.Buffer

	session := NewSession(game, cfg, reader, &out, false)
	require.NoError(t, session.Run())

	return session, reader, out.String()
}

func TestSession_HumanMove(t *testing.T) {
	session, reader, out := runSession(t, othello.NewGame(), search.DefaultConfig(), "3 2", "exit")

	board := session.Game().Board()
	require.Equal(t, 4, board.Score(othello.Player1))
	require.Equal(t, 1, board.Score(othello.Player2))

	require.Equal(t, []string{"Player 1 Input: ", "Player 2 Input: "}, reader.prompts)
	require.Contains(t, out, "Player 1 Score: 4\nPlayer 2 Score: 1\n\nWinner: Player 1")
}

func TestSession_InvalidInput(t *testing.T) {
	session, reader, out := runSession(t, othello.NewGame(), search.DefaultConfig(), "hello", "0 0", "depth 12")

	require.Contains(t, out, "invalid input")
	require.Contains(t, out, "Invalid move.")
	require.Contains(t, out, "for depth, enter an integer in the range [1-9]")
	require.Equal(t, othello.NewBoardStart(), session.Game().Board())
	require.Len(t, reader.prompts, 4)
}

func TestSession_AIMove(t *testing.T) {
	session, _, out := runSession(t, othello.NewGame(), search.Config{Depth: 1, Pruning: true}, "ai", "exit")

	require.Contains(t, out, "AI went: 3 2 (d3)")
	require.Contains(t, out, "Number of moves considered: 4")
	require.Equal(t, []othello.LogEntry{
		{Player: othello.Player1, Move: othello.Move{Row: 2, Col: 3}},
	}, session.Game().Log())
}

func TestSession_Settings(t *testing.T) {
	session, _, out := runSession(
		t,
		othello.NewGame(),
		search.DefaultConfig(),
		"depth 3", "pruning off", "debug on", "help",
	)

	require.Equal(t, search.Config{Depth: 3, Pruning: false, Debug: true}, session.SearchConfig())
	require.Contains(t, out, "Depth is now: 3")
	require.Contains(t, out, "Pruning is now off")
	require.Contains(t, out, "Debug is now on")
	require.Equal(t, 2, strings.Count(out, helpText))
}

func TestSession_Undo(t *testing.T) {
	session, _, _ := runSession(t, othello.NewGame(), search.DefaultConfig(), "d3", "c3", "undo")

	require.Len(t, session.Game().Log(), 1)
	require.Equal(t, othello.Player2, session.Game().Turn())
}

func TestSession_ForcedPass(t *testing.T) {
	board := othello.NewBoardFromStringMust(`
		21......
		........
		........
		........
		........
		........
		........
		........`)

	game := othello.NewGameWithStart(board, othello.Player1)
	session, reader, out := runSession(t, game, search.DefaultConfig(), "2 0")

	// Player1 is skipped without touching the board, Player2 plays c1 and ends the game.
	require.Equal(t, []string{"Player 2 Input: "}, reader.prompts)
	require.True(t, session.Game().IsOver())
	require.Contains(t, out, "Winner: Player 2")
}

func TestSession_ComputerPlaysFullGame(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = "ai"
	}

	session, reader, out := runSession(t, othello.NewGame(), search.Config{Depth: 2, Pruning: true}, lines...)

	game := session.Game()
	require.True(t, game.IsOver())
	require.LessOrEqual(t, len(game.Log()), 60)
	require.Len(t, reader.prompts, len(game.Log()))
	require.Equal(t, len(game.Log())+4, game.Board().CountDiscs())
	require.Contains(t, out, game.FinalStatement())
}

func TestSession_ReadError(t *testing.T) {
	reader := &scriptedReader{err: errors.New("broken terminal")}
	session := NewSession(othello.NewGame(), search.DefaultConfig(), reader, io.Discard, false)

	err := session.Run()
	require.EqualError(t, err, "failed to read input: broken terminal")
}

func TestRenderBoard(t *testing.T) {
	want := "0 - - - - - - - - \n" +
		"1 - - - - - - - - \n" +
		"2 - - - * - - - - \n" +
		"3 - - * 2 1 - - - \n" +
		"4 - - - 1 2 * - - \n" +
		"5 - - - - * - - - \n" +
		"6 - - - - - - - - \n" +
		"7 - - - - - - - - \n" +
		"  0 1 2 3 4 5 6 7\n"

	require.Equal(t, want, RenderBoard(othello.NewBoardStart(), othello.Player1, false))

	colored := RenderBoard(othello.NewBoardStart(), othello.Player1, true)
	require.Contains(t, colored, Blue+"1"+Reset)
	require.Contains(t, colored, Green+"2"+Reset)
	require.Contains(t, colored, Red+"*"+Reset)
}
