package cli

import (
	"strconv"
	"strings"

	"github.com/lk16/flippy/minimax/internal/othello"
)

// Terminal color codes
const (
	Reset = "\033[0m"
	Blue  = "\033[34m"
	Green = "\033[32m"
	Red   = "\033[31m"
)

const helpText = "Enter a column then row (ex. '4 5') or a field (ex. 'e6') to make a move, " +
	"'ai' to have the ai make the move for you, 'undo' to take back the last move, " +
	"or 'exit' to stop the game. To change depth, enter 'depth' followed by an integer in the range [1-9], " +
	"ex. 'depth 4'. Toggle search options with 'pruning on|off' and 'debug on|off'."

// RenderBoard draws the board with row and column numbers. Moves of player are shown as '*'.
func RenderBoard(board othello.Board, player othello.Player, color bool) string {
	var sb strings.Builder

	paint := func(code, text string) {
		if color {
			sb.WriteString(code + text + Reset)
		} else {
			sb.WriteString(text)
		}
	}

	for row := 0; row < othello.MaxY; row++ {
		sb.WriteString(strconv.Itoa(row) + " ")

		for col := 0; col < othello.MaxX; col++ {
			move := othello.Move{Row: row, Col: col}

			switch board.Square(move) {
			case othello.Black:
				paint(Blue, "1")
			case othello.White:
				paint(Green, "2")
			default:
				if board.IsValidMove(player, move) {
					paint(Red, "*")
				} else {
					sb.WriteString("-")
				}
			}

			sb.WriteString(" ")
		}

		sb.WriteString("\n")
	}

	sb.WriteString("  0 1 2 3 4 5 6 7\n")
	return sb.String()
}
