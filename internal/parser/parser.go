// Package parser turns one line of player input into an Action.
package parser

import (
	"strings"

	"github.com/tatianab/peppers-last-stand/internal/models"
)

// Action is a parsed player command. The set of implementations is closed;
// consumers switch over the concrete types.
type Action interface {
	action()
}

type (
	// Move walks through an exit.
	Move struct{ Direction models.Direction }
	// Get picks up an item by its normalized name.
	Get struct{ Item string }
	// Check lists the exits and items of the current room.
	Check struct{}
	// Status shows where the player is and what they carry.
	Status struct{}
	Help   struct{}
	Quit   struct{}
	Scream struct{}
	// EmptyInput is a blank line.
	EmptyInput struct{}
	// GetMissingArgument is "get" with nothing after it.
	GetMissingArgument struct{}
	// InvalidDirection is "go" followed by something that is not a direction.
	InvalidDirection struct{ Word string }
	// Invalid is anything else, carrying the trimmed input.
	Invalid struct{ Text string }
)

func (Move) action() {}
func (Get) action() {}
func (Check) action() {}
func (Status) action() {}
func (Help) action() {}
func (Quit) action() {}
func (Scream) action() {}
func (EmptyInput) action() {}
func (GetMissingArgument) action() {}
func (InvalidDirection) action() {}
func (Invalid) action() {}

var aliases = map[string]models.Direction{
	"n": models.North,
	"s": models.South,
	"e": models.East,
	"w": models.West,
}

// Parse maps a raw input line to exactly one Action. More specific commands
// win over the generic fallbacks.
func Parse(line string) Action {
	text := strings.TrimSpace(line)
	if text == "" {
		return EmptyInput{}
	}
	lower := strings.ToLower(text)

	switch lower {
	case "help":
		return Help{}
	case "status":
		return Status{}
	case "quit":
		return Quit{}
	}
	if d, ok := aliases[lower]; ok {
		return Move{Direction: d}
	}
	switch lower {
	case "check", "c":
		return Check{}
	case "scream":
		return Scream{}
	}

	tokens := strings.Fields(lower)
	if tokens[0] == "go" && len(tokens) == 2 {
		if d, ok := models.ParseDirection(tokens[1]); ok {
			return Move{Direction: d}
		}
		return InvalidDirection{Word: strings.Fields(text)[1]}
	}
	if len(tokens) == 1 {
		if d, ok := models.ParseDirection(lower); ok {
			return Move{Direction: d}
		}
	}

	if tokens[0] == "get" {
		// Slice the original text so the item keeps the player's casing
		// until normalization.
		rest := strings.TrimSpace(text[len(strings.Fields(text)[0]):])
		item := models.NormalizeItemName(rest)
		if item == "" {
			return GetMissingArgument{}
		}
		return Get{Item: item}
	}

	return Invalid{Text: text}
}
