package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/tatianab/peppers-last-stand/internal/config"
	"github.com/tatianab/peppers-last-stand/internal/engine"
	"github.com/tatianab/peppers-last-stand/internal/models"
	"github.com/tatianab/peppers-last-stand/internal/session"
	"github.com/tatianab/peppers-last-stand/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "game")
		if err != nil {
			fmt.Printf("Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	}

	eng, err := engine.Load(cfg.MapFile)
	if err != nil {
		fmt.Printf("Error creating engine: %v\n", err)
		os.Exit(1)
	}

	var res models.Result
	if cfg.Plain || !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		res, err = session.Run(ctx, eng, session.NewLineChannel(os.Stdin, os.Stdout))
	} else {
		res, err = tui.Run(eng, os.Stdout)
	}
	if err != nil {
		fmt.Printf("Error running game: %v\n", err)
		os.Exit(1)
	}
	slog.Info("game finished", "result", res.String())
}
