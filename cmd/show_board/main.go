package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/flippy/minimax/internal/othello"
)

func main() {
	boardString := flag.String("board", "", "the board to show, 64 characters of '.', '1' or '2'")
	player := flag.Int("player", 1, "the player to show moves for")
	flag.Parse()

	board, err := othello.NewBoardFromString(*boardString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if !othello.Player(*player).IsValid() {
		fmt.Printf("invalid player: %d\n", *player)
		os.Exit(1)
	}

	board.Print(othello.Player(*player))
}
