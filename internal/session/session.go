// Package session drives the parser and the engine turn by turn against a
// text channel until the game ends.
package session

import (
	"context"
	"io"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/tatianab/peppers-last-stand/internal/engine"
	"github.com/tatianab/peppers-last-stand/internal/models"
	"github.com/tatianab/peppers-last-stand/internal/parser"
)

// Channel is the line-oriented text channel a session talks through.
type Channel interface {
	// ReadLine blocks until the player enters one line. io.EOF means the
	// player is gone.
	ReadLine(ctx context.Context) (string, error)
	Write(events ...engine.Event) error
}

// Session owns the game state of one play-through.
type Session struct {
	eng   *engine.Engine
	state models.GameState
}

func New(eng *engine.Engine) *Session {
	return &Session{
		eng:   eng,
		state: eng.NewGame(),
	}
}

// State returns the current game state.
func (s *Session) State() models.GameState {
	return s.state
}

// Result returns how the session ended, or ResultNone while it is running.
func (s *Session) Result() models.Result {
	return s.state.Result
}

// Start returns the welcome banner and the status shown before the first
// prompt.
func (s *Session) Start() []engine.Event {
	w := s.eng.World()
	slog.Info("session started", "map", w.Title(), "room", s.state.Room, "required", w.RequiredItems())
	return []engine.Event{s.eng.Welcome(), s.eng.Status(s.state)}
}

// Submit plays one line of input. While the game goes on the returned
// events end with the status for the next prompt.
func (s *Session) Submit(line string) ([]engine.Event, models.Result) {
	if s.state.Result.Terminal() {
		return nil, s.state.Result
	}

	next, events, res := s.eng.Apply(s.state, parser.Parse(line))
	s.state = next
	if res.Terminal() {
		slog.Info("session ended", "result", res.String(), "turns", next.Turns, "inventory", len(next.Inventory))
		return events, res
	}
	return append(events, s.eng.Status(s.state)), res
}

// Run plays a whole session over ch. End of input counts as quitting.
func Run(ctx context.Context, eng *engine.Engine, ch Channel) (models.Result, error) {
	s := New(eng)
	if err := ch.Write(s.Start()...); err != nil {
		return models.ResultNone, errors.Wrap(err, "write welcome")
	}

	for {
		line, err := ch.ReadLine(ctx)
		if errors.Is(err, io.EOF) {
			slog.Info("input closed, quitting")
			line, err = "quit", nil
		}
		if err != nil {
			return s.Result(), errors.Wrap(err, "read command")
		}

		events, res := s.Submit(line)
		if err := ch.Write(events...); err != nil {
			return res, errors.Wrap(err, "write output")
		}
		if res.Terminal() {
			return res, nil
		}
	}
}
