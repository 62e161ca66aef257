package search

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/lk16/flippy/minimax/internal/othello"
)

const (
	MinDepth     = 1
	MaxDepth     = 9
	DefaultDepth = 8
)

// Config holds the search parameters. It may change between searches but never during one.
type Config struct {
	Depth   int
	Pruning bool
	Debug   bool
}

// DefaultConfig returns the configuration used when nothing else is specified.
func DefaultConfig() Config {
	return Config{
		Depth:   DefaultDepth,
		Pruning: true,
		Debug:   false,
	}
}

// Validate checks that the depth is in the supported range.
func (c Config) Validate() error {
	if c.Depth < MinDepth || c.Depth > MaxDepth {
		return fmt.Errorf("depth must be in range [%d-%d], got %d", MinDepth, MaxDepth, c.Depth)
	}
	return nil
}

// Result is the outcome of a search.
type Result struct {
	Move    othello.Move
	Score   int
	Nodes   uint64
	Elapsed time.Duration
}

// Searcher finds the best move using minimax with optional alpha-beta pruning.
// A Searcher is not safe for concurrent use.
type Searcher struct {
	cfg       Config
	root      othello.Player
	nodes     uint64
	startTime time.Time
}

// New creates a new Searcher. Depths below MinDepth are raised to MinDepth.
func New(cfg Config) *Searcher {
	cfg.Depth = max(cfg.Depth, MinDepth)

	return &Searcher{
		cfg: cfg,
	}
}

// Config returns the configuration of the searcher.
func (s *Searcher) Config() Config {
	return s.cfg
}

// BestMove returns the best move for player. It returns false if player has no moves.
// Ties are broken in favour of the first move in row-major order.
func (s *Searcher) BestMove(board othello.Board, player othello.Player) (Result, bool) {
	moves := board.Moves(player)
	if len(moves) == 0 {
		return Result{}, false
	}

	s.root = player
	s.nodes = 0
	s.startTime = time.Now()

	var best Result
	found := false

	for _, move := range moves {
		child := board.DoMoveMust(player, move)

		score := s.minimax(child, s.cfg.Depth-1, math.MinInt, math.MaxInt, false, player.Opponent(), 0, move)

		if !found || score > best.Score {
			best.Move = move
			best.Score = score
			found = true
		}
	}

	best.Nodes = s.nodes
	best.Elapsed = time.Since(s.startTime)
	s.logStats(best)

	return best, true
}

// Evaluate returns the minimax value of board for player when toMove moves next.
func (s *Searcher) Evaluate(board othello.Board, player, toMove othello.Player) int {
	s.root = player
	s.nodes = 0
	s.startTime = time.Now()

	return s.minimax(board, s.cfg.Depth, math.MinInt, math.MaxInt, toMove == player, toMove, 0, othello.Move{})
}

// minimax returns the value of board from the perspective of the root player.
// The math.MinInt and math.MaxInt sentinels are only ever compared, never offset.
func (s *Searcher) minimax(
	board othello.Board,
	depth int,
	alpha int,
	beta int,
	maximizing bool,
	toMove othello.Player,
	ply int,
	lastMove othello.Move,
) int {
	s.nodes++

	if depth <= 0 || board.IsTerminal() {
		score := board.Evaluation(s.root)
		s.trace(ply, toMove, lastMove, score)
		return score
	}

	moves := board.Moves(toMove)

	// Forced pass: same board, one ply deeper.
	if len(moves) == 0 {
		return s.minimax(board, depth-1, alpha, beta, !maximizing, toMove.Opponent(), ply+1, lastMove)
	}

	eval := math.MaxInt
	if maximizing {
		eval = math.MinInt
	}

	for _, move := range moves {
		child := board.DoMoveMust(toMove, move)

		score := s.minimax(child, depth-1, alpha, beta, !maximizing, toMove.Opponent(), ply+1, move)

		if maximizing {
			eval = max(eval, score)
			alpha = max(alpha, eval)
		} else {
			eval = min(eval, score)
			beta = min(beta, eval)
		}

		if s.cfg.Pruning && alpha >= beta {
			break
		}
	}

	s.trace(ply, toMove, lastMove, eval)
	return eval
}

func (s *Searcher) trace(ply int, toMove othello.Player, lastMove othello.Move, score int) {
	if !s.cfg.Debug {
		return
	}

	slog.Info(
		strings.Repeat("  ", ply)+"Search node",
		"player", int(toMove),
		"score", score,
		"move", lastMove.String(),
	)
}

func (s *Searcher) logStats(result Result) {
	elapsedSeconds := result.Elapsed.Seconds()

	nodesPerSecond := int64(0)
	if elapsedSeconds > 0.000001 {
		nodesPerSecond = int64(float64(result.Nodes) / elapsedSeconds)
	}

	slog.Info(
		"Search finished",
		"player", int(s.root),
		"depth", s.cfg.Depth,
		"pruning", s.cfg.Pruning,
		"move", result.Move.String(),
		"score", result.Score,
		"nodes", result.Nodes,
		"elapsed", result.Elapsed,
		"nodes_per_second", nodesPerSecond,
	)
}
