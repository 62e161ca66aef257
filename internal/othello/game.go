package othello

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// LogEntry is a move that was played in a game.
type LogEntry struct {
	Player Player `json:"player"`
	Move   Move   `json:"move"`
}

// Game represents an Othello game, either complete or in progress.
type Game struct {
	id uuid.UUID

	// start and startTurn allow custom start positions, which is mostly useful in tests.
	start     Board
	startTurn Player

	board Board
	turn  Player

	// log contains played moves only. Passes are applied automatically and not logged.
	log []LogEntry
}

// NewGameWithStart creates a new game with a custom start board and player to move.
func NewGameWithStart(start Board, turn Player) *Game {
	g := &Game{
		id:        uuid.New(),
		start:     start,
		startTurn: turn,
		log:       make([]LogEntry, 0),
	}
	g.reset()
	return g
}

// NewGame creates a new game from the starting position.
func NewGame() *Game {
	return NewGameWithStart(NewBoardStart(), Player1)
}

func (g *Game) reset() {
	g.board = g.start
	g.turn = g.startTurn
	g.passIfNeeded()
}

// passIfNeeded hands the turn to the opponent if the player to move is stuck but the opponent is not.
func (g *Game) passIfNeeded() {
	if g.board.HasMoves(g.turn) || !g.board.HasMoves(g.turn.Opponent()) {
		return
	}

	slog.Debug("Player has no moves, passing", "game_id", g.id, "player", int(g.turn))
	g.turn = g.turn.Opponent()
}

// ID returns the unique ID of the game.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Board returns the current board.
func (g *Game) Board() Board {
	return g.board
}

// Turn returns the player to move.
func (g *Game) Turn() Player {
	return g.turn
}

// Log returns a copy of the played moves.
func (g *Game) Log() []LogEntry {
	log := make([]LogEntry, len(g.log))
	copy(log, g.log)
	return log
}

// IsOver returns whether neither player can move anymore.
func (g *Game) IsOver() bool {
	return g.board.IsTerminal()
}

// PushMove plays a move for the player to move.
func (g *Game) PushMove(move Move) error {
	board, err := g.board.DoMove(g.turn, move)
	if err != nil {
		return err
	}

	g.log = append(g.log, LogEntry{Player: g.turn, Move: move})
	g.board = board
	g.turn = g.turn.Opponent()
	g.passIfNeeded()

	return nil
}

// PopMove undoes the last move. It does nothing if no moves were played.
func (g *Game) PopMove() {
	if len(g.log) == 0 {
		return
	}

	g.log = g.log[:len(g.log)-1]
	g.reset()

	for _, entry := range g.log {
		// Replaying moves that were valid before cannot fail.
		g.board = g.board.DoMoveMust(entry.Player, entry.Move)
		g.turn = entry.Player.Opponent()
		g.passIfNeeded()
	}
}

// Winner returns the player with the most discs, or false on a tie.
func (g *Game) Winner() (Player, bool) {
	switch score := g.board.Evaluation(Player1); {
	case score > 0:
		return Player1, true
	case score < 0:
		return Player2, true
	default:
		return 0, false
	}
}

// FinalStatement returns the score summary that is shown and logged when a game ends.
func (g *Game) FinalStatement() string {
	winner := "Nobody (tie)"
	if player, ok := g.Winner(); ok {
		winner = player.String()
	}

	return fmt.Sprintf(
		"\nPlayer 1 Score: %d\nPlayer 2 Score: %d\n\nWinner: %s",
		g.board.Score(Player1),
		g.board.Score(Player2),
		winner,
	)
}
