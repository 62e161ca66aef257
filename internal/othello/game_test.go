package othello //nolint:testpackage

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	game := NewGame()

	require.NotEqual(t, uuid.Nil, game.ID())
	require.Equal(t, NewBoardStart(), game.Board())
	require.Equal(t, Player1, game.Turn())
	require.Empty(t, game.Log())
	require.False(t, game.IsOver())
}

func TestGame_PushMove(t *testing.T) {
	game := NewGame()

	require.NoError(t, game.PushMove(Move{2, 3}))
	require.Equal(t, Player2, game.Turn())
	require.Equal(t, 4, game.Board().Score(Player1))
	require.Equal(t, 1, game.Board().Score(Player2))
	require.Equal(t, []LogEntry{{Player: Player1, Move: Move{2, 3}}}, game.Log())

	require.NoError(t, game.PushMove(Move{2, 2}))
	require.Equal(t, Player1, game.Turn())
	require.Len(t, game.Log(), 2)
}

func TestGame_PushMove_Invalid(t *testing.T) {
	game := NewGame()

	err := game.PushMove(Move{0, 0})
	require.True(t, errors.Is(err, ErrInvalidMove))
	require.Equal(t, NewBoardStart(), game.Board())
	require.Equal(t, Player1, game.Turn())
	require.Empty(t, game.Log())
}

func TestGame_Log_ReturnsCopy(t *testing.T) {
	game := NewGame()
	require.NoError(t, game.PushMove(Move{2, 3}))

	log := game.Log()
	log[0].Player = Player2

	require.Equal(t, Player1, game.Log()[0].Player)
}

func TestGame_AutomaticPass(t *testing.T) {
	// Player1 moves first but has no moves.
	board := NewBoardFromStringMust(`
		21......
		........
		........
		........
		........
		........
		........
		........`)

	game := NewGameWithStart(board, Player1)
	require.Equal(t, Player2, game.Turn())
	require.Equal(t, board, game.Board())

	require.NoError(t, game.PushMove(Move{0, 2}))
	require.True(t, game.IsOver())
}

func TestGame_PassAfterMove(t *testing.T) {
	// After Player1 plays a1, Player2 cannot move but Player1 can still play c8.
	board := NewBoardFromStringMust(`
		.21.....
		........
		........
		........
		........
		........
		........
		12......`)

	game := NewGameWithStart(board, Player1)
	require.Equal(t, Player1, game.Turn())

	require.NoError(t, game.PushMove(Move{0, 0}))
	require.Equal(t, Player1, game.Turn())

	require.NoError(t, game.PushMove(Move{7, 2}))
	require.True(t, game.IsOver())
	require.Equal(t, []LogEntry{
		{Player: Player1, Move: Move{0, 0}},
		{Player: Player1, Move: Move{7, 2}},
	}, game.Log())
}

func TestGame_PopMove(t *testing.T) {
	game := NewGame()

	game.PopMove()
	require.Equal(t, NewBoardStart(), game.Board())

	require.NoError(t, game.PushMove(Move{2, 3}))
	afterFirst := game.Board()

	require.NoError(t, game.PushMove(Move{2, 2}))
	game.PopMove()

	require.Equal(t, afterFirst, game.Board())
	require.Equal(t, Player2, game.Turn())
	require.Len(t, game.Log(), 1)

	game.PopMove()
	require.Equal(t, NewBoardStart(), game.Board())
	require.Equal(t, Player1, game.Turn())
}

func TestGame_Winner(t *testing.T) {
	tests := []struct {
		name       string
		board      string
		wantWinner Player
		wantOK     bool
		wantText   string
	}{
		{
			name:       "player 1",
			board:      "111.............................................................",
			wantWinner: Player1,
			wantOK:     true,
			wantText:   "\nPlayer 1 Score: 3\nPlayer 2 Score: 0\n\nWinner: Player 1",
		},
		{
			name:       "player 2",
			board:      "122.............................................................",
			wantWinner: Player2,
			wantOK:     true,
			wantText:   "\nPlayer 1 Score: 1\nPlayer 2 Score: 2\n\nWinner: Player 2",
		},
		{
			name:     "tie",
			board:    "12..............................................................",
			wantOK:   false,
			wantText: "\nPlayer 1 Score: 1\nPlayer 2 Score: 1\n\nWinner: Nobody (tie)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := NewGameWithStart(NewBoardFromStringMust(tt.board), Player1)

			winner, ok := game.Winner()
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.Equal(t, tt.wantWinner, winner)
			}
			require.Equal(t, tt.wantText, game.FinalStatement())
		})
	}
}
