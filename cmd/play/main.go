package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/chzyer/readline"
	_ "github.com/joho/godotenv/autoload"
	"github.com/lk16/flippy/minimax/internal/cli"
	"github.com/lk16/flippy/minimax/internal/config"
	"github.com/lk16/flippy/minimax/internal/movelog"
	"github.com/lk16/flippy/minimax/internal/othello"
	"golang.org/x/term"
)

func main() {
	config.SetLogLevel()

	cfg := config.LoadPlayConfig()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Printf("%s%s%s\n", cli.Red, err.Error(), cli.Reset)
		os.Exit(1)
	}
	defer rl.Close()

	color := term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec

	game := othello.NewGame()
	session := cli.NewSession(game, cfg.Search, rl, os.Stdout, color)

	if err := session.Run(); err != nil {
		slog.Error("Game stopped", "error", err)
	}

	if err := movelog.WriteFile(cfg.MoveLogFile, game); err != nil {
		slog.Error("Failed to write move log", "file", cfg.MoveLogFile, "error", err)
		os.Exit(1)
	}

	slog.Debug("Move log written", "file", cfg.MoveLogFile, "game_id", game.ID())
}
