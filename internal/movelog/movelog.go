package movelog

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/lk16/flippy/minimax/internal/othello"
)

// Write writes one line per played move, followed by the final score statement.
// Moves are written as column then row, the same order players type them in.
func Write(w io.Writer, game *othello.Game) error {
	buf := bufio.NewWriter(w)

	for _, entry := range game.Log() {
		if _, err := fmt.Fprintf(buf, "Player %d: %d %d\n", int(entry.Player), entry.Move.Col, entry.Move.Row); err != nil {
			return fmt.Errorf("failed to write move: %w", err)
		}
	}

	if _, err := buf.WriteString(game.FinalStatement()); err != nil {
		return fmt.Errorf("failed to write final statement: %w", err)
	}

	return buf.Flush()
}

// WriteFile writes the move log of game to filename, replacing any existing file.
func WriteFile(filename string, game *othello.Game) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create move log: %w", err)
	}

	if err = Write(file, game); err != nil {
		_ = file.Close()
		return err
	}

	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close move log: %w", err)
	}

	return nil
}
