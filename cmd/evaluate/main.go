package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/flippy/minimax/internal/config"
	"github.com/lk16/flippy/minimax/internal/othello"
	"github.com/lk16/flippy/minimax/internal/search"
)

func main() {
	config.SetLogLevel()

	boardString := flag.String("board", othello.NewBoardStart().String(), "the board to search, 64 characters of '.', '1' or '2'")
	player := flag.Int("player", 1, "the player to move")
	depth := flag.Int("depth", search.DefaultDepth, "the search depth")
	noPruning := flag.Bool("no-pruning", false, "disable alpha-beta pruning")
	debug := flag.Bool("debug", false, "log every node")
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

	cfg := search.Config{
		Depth:   *depth,
		Pruning: !*noPruning,
		Debug:   *debug,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	board.Print(othello.Player(*player))

	result, ok := search.New(cfg).BestMove(board, othello.Player(*player))
	if !ok {
		fmt.Printf("%s has no moves\n", othello.Player(*player))
		return
	}

	fmt.Printf("Best move: %s\n", result.Move)
	fmt.Printf("Score: %d\n", result.Score)
	fmt.Printf("Nodes: %d\n", result.Nodes)
	fmt.Printf("Time: %s\n", result.Elapsed)
}
