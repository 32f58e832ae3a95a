package models

import (
	"slices"
	"strings"
)

// Direction is one of the four compass exits a room can have.
type Direction string

const (
	North Direction = "North"
	South Direction = "South"
	East  Direction = "East"
	West  Direction = "West"
)

// Directions lists the compass directions in display order.
var Directions = []Direction{North, South, East, West}

// ParseDirection matches a direction name case-insensitively.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if strings.EqualFold(s, string(d)) {
			return d, true
		}
	}
	return "", false
}

// Room is the literal definition of one room in a map file.
type Room struct {
	Name  string               `yaml:"name"`
	Exits map[Direction]string `yaml:"exits"` // direction -> neighbor room name
	Items []string             `yaml:"items"`
}

// Map is the fixed world configuration supplied at startup.
type Map struct {
	Title         string `yaml:"title"`
	Goal          string `yaml:"goal"`
	StartRoom     string `yaml:"start_room"`
	TerminalRoom  string `yaml:"terminal_room"`
	RequiredItems int    `yaml:"required_items"`
	WinText       string `yaml:"win_text"`
	LossText      string `yaml:"loss_text"`
	Rooms         []Room `yaml:"rooms"`
}

// Result is how a session ended, if it has.
type Result int

const (
	ResultNone Result = iota
	ResultWin
	ResultLoss
	ResultQuit
)

func (r Result) String() string {
	switch r {
	case ResultWin:
		return "WON"
	case ResultLoss:
		return "LOST"
	case ResultQuit:
		return "QUIT"
	default:
		return "PLAYING"
	}
}

// Terminal reports whether the session is over.
func (r Result) Terminal() bool {
	return r != ResultNone
}

// GameState represents the current dynamic state of the game.
type GameState struct {
	Room      string
	Inventory []string
	Turns     int
	Result    Result
}

// Holds reports whether item is in the inventory.
func (s GameState) Holds(item string) bool {
	return slices.Contains(s.Inventory, item)
}
