package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tatianab/peppers-last-stand/internal/models"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Action
	}{
		{"empty", "", EmptyInput{}},
		{"whitespace only", "   \t ", EmptyInput{}},
		{"help", "help", Help{}},
		{"help upper", "HELP", Help{}},
		{"status", " Status ", Status{}},
		{"quit", "quit", Quit{}},
		{"alias n", "n", Move{Direction: models.North}},
		{"alias S", "S", Move{Direction: models.South}},
		{"alias e", "e", Move{Direction: models.East}},
		{"alias w", "w", Move{Direction: models.West}},
		{"bare direction", "north", Move{Direction: models.North}},
		{"bare direction mixed case", "WeSt", Move{Direction: models.West}},
		{"go direction", "go east", Move{Direction: models.East}},
		{"go direction upper", "GO NORTH", Move{Direction: models.North}},
		{"go extra spaces", "go    south", Move{Direction: models.South}},
		{"go bad direction", "go Up", InvalidDirection{Word: "Up"}},
		{"go alone", "go", Invalid{Text: "go"}},
		{"go too many words", "go north now", Invalid{Text: "go north now"}},
		{"go alias is not a direction word", "go n", InvalidDirection{Word: "n"}},
		{"check", "check", Check{}},
		{"check alias", "C", Check{}},
		{"scream", "scream", Scream{}},
		{"get", "get millet seed", Get{Item: "Millet Seed"}},
		{"get upper", "GET PRETZEL", Get{Item: "Pretzel"}},
		{"get quoted", `get "sunflower seed"`, Get{Item: "Sunflower Seed"}},
		{"get single quoted", "get 'chip'", Get{Item: "Chip"}},
		{"get collapses whitespace", "get  millet    seed ", Get{Item: "Millet Seed"}},
		{"get missing argument", "get", GetMissingArgument{}},
		{"get missing argument spaces", "  get   ", GetMissingArgument{}},
		{"get empty quotes", `get ""`, GetMissingArgument{}},
		{"get lone quote", `get "`, GetMissingArgument{}},
		{"get hyphenated", "get MILLET-SEED", Get{Item: "Millet-seed"}},
		{"get prefix only matches whole word", "getaway", Invalid{Text: "getaway"}},
		{"unknown", "dance wildly", Invalid{Text: "dance wildly"}},
		{"direction plus noise", "north please", Invalid{Text: "north please"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in))
		})
	}
}

func TestParseDirectionFormsAgree(t *testing.T) {
	want := Move{Direction: models.North}
	for _, in := range []string{"n", "north", "go north", "GO NORTH"} {
		assert.Equal(t, want, Parse(in), "input %q", in)
	}
}

