package othello

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MaxX = 8
	MaxY = 8
)

// ErrInvalidMove is returned when a move is off the board, on an occupied square or captures nothing.
var ErrInvalidMove = errors.New("invalid move")

// Cell is the content of a single square.
type Cell int

const (
	Empty Cell = iota
	Black
	White
)

// Player identifies one of the two sides. Player1 owns Black cells and moves first.
type Player int

const (
	Player1 Player = 1
	Player2 Player = 2
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	return Player1 + Player2 - p
}

// Cell returns the cell value owned by the player.
func (p Player) Cell() Cell {
	return Cell(p)
}

// IsValid checks that p is Player1 or Player2.
func (p Player) IsValid() bool {
	return p == Player1 || p == Player2
}

func (p Player) String() string {
	return fmt.Sprintf("Player %d", int(p))
}

type direction struct {
	row, col int
}

var directions = [8]direction{
	{1, 1}, {-1, -1}, {1, 0}, {0, 1},
	{1, -1}, {-1, 1}, {-1, 0}, {0, -1},
}

// Board is an 8x8 grid of cells. It is a value type: assigning a Board copies every cell.
type Board struct {
	cells [MaxY][MaxX]Cell
}

// NewBoardStart creates a new board with the starting position.
func NewBoardStart() Board {
	var b Board
	b.cells[3][3] = White
	b.cells[4][4] = White
	b.cells[3][4] = Black
	b.cells[4][3] = Black
	return b
}

// NewBoardEmpty creates a new board without any discs.
func NewBoardEmpty() Board {
	return Board{}
}

// NewBoardFromString creates a board from 64 row-major characters. Whitespace is ignored,
// '.' or '-' is an empty square, '1' and '2' are discs of the respective player.
func NewBoardFromString(s string) (Board, error) {
	s = strings.Join(strings.Fields(s), "")

	if len(s) != MaxX*MaxY {
		return Board{}, fmt.Errorf("board string must be %d characters long, got %d", MaxX*MaxY, len(s))
	}

	var b Board
	for i, c := range s {
		var cell Cell
		switch c {
		case '.', '-':
			cell = Empty
		case '1':
			cell = Black
		case '2':
			cell = White
		default:
			return Board{}, fmt.Errorf("invalid square %q at index %d", c, i)
		}
		b.cells[i/MaxX][i%MaxX] = cell
	}

	return b, nil
}

// NewBoardFromStringMust is like NewBoardFromString but panics on error.
func NewBoardFromStringMust(s string) Board {
	b, err := NewBoardFromString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Square returns the cell at the given move. Squares off the board are Empty.
func (b Board) Square(move Move) Cell {
	if !move.IsOnBoard() {
		return Empty
	}
	return b.cells[move.Row][move.Col]
}

// captured returns the number of opponent discs enclosed along dir, or 0 if the ray does not capture.
func (b Board) captured(own, opp Cell, move Move, dir direction) int {
	row, col := move.Row+dir.row, move.Col+dir.col
	count := 0

	for onBoard(row, col) && b.cells[row][col] == opp {
		row += dir.row
		col += dir.col
		count++
	}

	if count == 0 || !onBoard(row, col) || b.cells[row][col] != own {
		return 0
	}
	return count
}

func (b Board) isCandidate(player Player, move Move) bool {
	return player.IsValid() && move.IsOnBoard() && b.cells[move.Row][move.Col] == Empty
}

// IsValidMove checks if player can play move.
func (b Board) IsValidMove(player Player, move Move) bool {
	if !b.isCandidate(player, move) {
		return false
	}

	own, opp := player.Cell(), player.Opponent().Cell()
	for _, dir := range directions {
		if b.captured(own, opp, move, dir) > 0 {
			return true
		}
	}
	return false
}

// Flipped returns all opponent discs that would be flipped if player played move.
// It returns nil for invalid moves.
func (b Board) Flipped(player Player, move Move) []Move {
	if !b.isCandidate(player, move) {
		return nil
	}

	own, opp := player.Cell(), player.Opponent().Cell()

	var flipped []Move
	for _, dir := range directions {
		count := b.captured(own, opp, move, dir)
		for dist := 1; dist <= count; dist++ {
			flipped = append(flipped, Move{Row: move.Row + dist*dir.row, Col: move.Col + dist*dir.col})
		}
	}
	return flipped
}

// DoMove plays move for player and returns the resulting board. The receiver is never modified.
func (b Board) DoMove(player Player, move Move) (Board, error) {
	flipped := b.Flipped(player, move)
	if len(flipped) == 0 {
		return b, fmt.Errorf("%w: %s for %s", ErrInvalidMove, move, player)
	}

	own := player.Cell()
	b.cells[move.Row][move.Col] = own
	for _, f := range flipped {
		b.cells[f.Row][f.Col] = own
	}
	return b, nil
}

// DoMoveMust is like DoMove but panics on an invalid move.
func (b Board) DoMoveMust(player Player, move Move) Board {
	child, err := b.DoMove(player, move)
	if err != nil {
		panic(err)
	}
	return child
}

// Moves returns all valid moves for player in row-major order.
func (b Board) Moves(player Player) []Move {
	var moves []Move
	for row := 0; row < MaxY; row++ {
		for col := 0; col < MaxX; col++ {
			move := Move{Row: row, Col: col}
			if b.IsValidMove(player, move) {
				moves = append(moves, move)
			}
		}
	}
	return moves
}

// HasMoves checks if player has at least one valid move.
func (b Board) HasMoves(player Player) bool {
	for row := 0; row < MaxY; row++ {
		for col := 0; col < MaxX; col++ {
			if b.IsValidMove(player, Move{Row: row, Col: col}) {
				return true
			}
		}
	}
	return false
}

// IsTerminal returns whether neither player can move.
func (b Board) IsTerminal() bool {
	return !b.HasMoves(Player1) && !b.HasMoves(Player2)
}

// Score returns the number of discs owned by player.
func (b Board) Score(player Player) int {
	own := player.Cell()
	score := 0
	for row := 0; row < MaxY; row++ {
		for col := 0; col < MaxX; col++ {
			if b.cells[row][col] == own {
				score++
			}
		}
	}
	return score
}

// Evaluation returns the disc difference from the perspective of player.
func (b Board) Evaluation(player Player) int {
	return b.Score(player) - b.Score(player.Opponent())
}

// CountDiscs returns the number of discs on the board.
func (b Board) CountDiscs() int {
	return b.Score(Player1) + b.Score(Player2)
}

// ASCIIArtLines returns the ascii art lines for the board, marking moves of player.
func (b Board) ASCIIArtLines(player Player) []string {
	lines := make([]string, MaxY+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for row := 0; row < MaxY; row++ {
		line := fmt.Sprintf("%d ", row+1)

		for col := 0; col < MaxX; col++ {
			move := Move{Row: row, Col: col}

			switch {
			case b.cells[row][col] == White:
				line += "○ "
			case b.cells[row][col] == Black:
				line += "● "
			case b.IsValidMove(player, move):
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[MaxY+1] = "+-----------------+"

	return lines
}

// Print prints the board to the console. This is used for debugging.
func (b Board) Print(player Player) {
	for _, line := range b.ASCIIArtLines(player) {
		fmt.Println(line)
	}
}

// String returns the 64 character representation accepted by NewBoardFromString.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(MaxX * MaxY)

	for row := 0; row < MaxY; row++ {
		for col := 0; col < MaxX; col++ {
			switch b.cells[row][col] {
			case Black:
				sb.WriteByte('1')
			case White:
				sb.WriteByte('2')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

func onBoard(row, col int) bool {
	return row >= 0 && row < MaxY && col >= 0 && col < MaxX
}
