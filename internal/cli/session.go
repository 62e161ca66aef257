package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/chzyer/readline"
	"github.com/lk16/flippy/minimax/internal/othello"
	"github.com/lk16/flippy/minimax/internal/search"
)

// LineReader reads player input. *readline.Instance implements it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Session runs a game in the terminal. Both players type their moves or let the computer move.
type Session struct {
	game   *othello.Game
	search search.Config
	in     LineReader
	out    io.Writer
	color  bool
}

// NewSession creates a new terminal session for game.
func NewSession(game *othello.Game, cfg search.Config, in LineReader, out io.Writer, color bool) *Session {
	return &Session{
		game:   game,
		search: cfg,
		in:     in,
		out:    out,
		color:  color,
	}
}

// Game returns the game played in this session.
func (s *Session) Game() *othello.Game {
	return s.game
}

// SearchConfig returns the current search configuration.
func (s *Session) SearchConfig() search.Config {
	return s.search
}

// Run reads commands until the game is over, the player exits or the input ends.
// Players without moves are skipped by the game.
func (s *Session) Run() error {
	s.printf("%s\n\n", helpText)

	for !s.game.IsOver() {
		player := s.game.Turn()

		s.printf("%s", RenderBoard(s.game.Board(), player, s.color))
		s.in.SetPrompt(fmt.Sprintf("Player %d Input: ", int(player)))

		line, err := s.in.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			s.printf("%s\n\n", err)
			continue
		}

		if cmd.Kind == CommandExit {
			break
		}

		s.execute(cmd)
	}

	s.printf("%s\n", s.game.FinalStatement())
	return nil
}

func (s *Session) execute(cmd Command) {
	switch cmd.Kind {
	case CommandMove:
		s.playMove(cmd.Move)
	case CommandAI:
		s.playAI()
	case CommandDepth:
		s.search.Depth = cmd.Depth
		s.printf("Depth is now: %d\n", s.search.Depth)
	case CommandPruning:
		s.search.Pruning = cmd.Enabled
		s.printf("Pruning is now %s\n", onOff(cmd.Enabled))
	case CommandDebug:
		s.search.Debug = cmd.Enabled
		s.printf("Debug is now %s\n", onOff(cmd.Enabled))
	case CommandUndo:
		s.game.PopMove()
		s.printf("Undid last move\n")
	case CommandHelp, CommandExit:
		s.printf("%s\n", helpText)
	}
}

func (s *Session) playMove(move othello.Move) {
	player := s.game.Turn()

	if err := s.game.PushMove(move); err != nil {
		s.printf("Invalid move.\n")
		return
	}

	slog.Debug("Move played", "game_id", s.game.ID(), "player", int(player), "move", move.String())
}

func (s *Session) playAI() {
	player := s.game.Turn()

	result, ok := search.New(s.search).BestMove(s.game.Board(), player)
	if !ok {
		s.printf("%s has no moves.\n", player)
		return
	}

	if err := s.game.PushMove(result.Move); err != nil {
		// The searcher only returns valid moves.
		slog.Error("Computer move rejected", "game_id", s.game.ID(), "move", result.Move.String(), "error", err)
		return
	}

	s.printf("AI went: %d %d (%s)\n", result.Move.Col, result.Move.Row, result.Move)
	s.printf("Number of moves considered: %d\n", result.Nodes)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}
