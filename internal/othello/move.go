package othello

import (
	"fmt"
	"strings"
)

// Move is a square on the board. Row and Col are zero-based.
type Move struct {
	Row int `json:"row" validate:"min=0,max=7"`
	Col int `json:"col" validate:"min=0,max=7"`
}

// IsOnBoard checks that both coordinates are in range.
func (m Move) IsOnBoard() bool {
	return onBoard(m.Row, m.Col)
}

// Field returns the field notation of the move, e.g. "d3" for row 2, column 3.
func (m Move) Field() string {
	return fmt.Sprintf("%c%c", 'a'+m.Col, '1'+m.Row)
}

func (m Move) String() string {
	if !m.IsOnBoard() {
		return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
	}
	return m.Field()
}

// FieldToMove converts a field notation (e.g. "a1", "h8") to a move.
func FieldToMove(field string) (Move, error) {
	if len(field) != 2 {
		return Move{}, fmt.Errorf("invalid field length: %s", field)
	}

	field = strings.ToLower(field)

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return Move{}, fmt.Errorf("invalid field: %s", field)
	}

	return Move{
		Row: int(field[1] - '1'),
		Col: int(field[0] - 'a'),
	}, nil
}
