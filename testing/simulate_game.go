package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tatianab/peppers-last-stand/internal/config"
	"github.com/tatianab/peppers-last-stand/internal/engine"
	"github.com/tatianab/peppers-last-stand/internal/session"
)

const maxTurns = 40

// winningRoute collects every item in the reference house and walks into
// the Kitchen.
var winningRoute = []string{
	"status", "check",
	"e", "get millet seed",
	"e", "get 'sunflower seed'",
	"n", "get CRACKER",
	"s", "w",
	"s", "get chip",
	"e", "get pellet",
	"w", "n",
	"n", "get pretzel",
	"east",
}

// scriptedPlayer types the route one command per turn and echoes each
// command after the prompt, so the transcript reads like a real session.
type scriptedPlayer struct {
	*session.LineChannel
	out   io.Writer
	route []string
	turn  int
}

func (p *scriptedPlayer) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.turn >= len(p.route) || p.turn >= maxTurns {
		return "", io.EOF
	}
	action := p.route[p.turn]
	p.turn++
	fmt.Fprintf(p.out, "%s%s\n", session.Prompt, action)
	return action, nil
}

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	eng, err := engine.Load(cfg.MapFile)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	route := winningRoute
	if len(os.Args) > 1 {
		route = os.Args[1:]
	}

	player := &scriptedPlayer{
		LineChannel: session.NewLineChannel(nil, os.Stdout),
		out:         os.Stdout,
		route:       route,
	}
	res, err := session.Run(ctx, eng, player)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	fmt.Printf("\n--- Game ended after %d commands: %s ---\n", player.turn, res)
}
