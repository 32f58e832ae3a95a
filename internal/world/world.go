// Package world holds the room graph and item placement for one session.
// The graph never changes shape after New; only room item sets shrink as
// the player picks things up.
package world

import (
	"fmt"
	"slices"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/tatianab/peppers-last-stand/internal/models"
)

type room struct {
	name  string
	exits map[models.Direction]string
	items []string // insertion order
}

// Exit is one direction -> neighbor edge of a room.
type Exit struct {
	Direction models.Direction
	Room      string
}

// World is the validated room graph.
type World struct {
	title    string
	goal     string
	winText  string
	lossText string
	start    string
	terminal string
	required int
	rooms    map[string]*room
	order    []string
	initial  []string
}

// MapError lists every problem found while validating a map.
type MapError struct {
	Problems []string
}

func (e *MapError) Error() string {
	return "invalid map: " + strings.Join(e.Problems, "; ")
}

func (e *MapError) add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// InvariantViolation is the panic value raised when a room name that the
// session holds does not exist in the world.
type InvariantViolation struct {
	Room string
}

func (v *InvariantViolation) Error() string {
	return fmt.Sprintf("world invariant violated: room %q does not exist", v.Room)
}

// New validates m and builds a World from it. Item names are normalized the
// same way player input is.
func New(m *models.Map) (*World, error) {
	w := &World{
		title:    m.Title,
		goal:     m.Goal,
		winText:  m.WinText,
		lossText: m.LossText,
		start:    m.StartRoom,
		terminal: m.TerminalRoom,
		required: m.RequiredItems,
		rooms:    make(map[string]*room, len(m.Rooms)),
	}
	problems := &MapError{}
	owners := make(map[string]string)

	for _, def := range m.Rooms {
		if def.Name == "" {
			problems.add("room with empty name")
			continue
		}
		if _, dup := w.rooms[def.Name]; dup {
			problems.add("duplicate room %q", def.Name)
			continue
		}

		r := &room{name: def.Name, exits: make(map[models.Direction]string, len(def.Exits))}
		for key, dest := range def.Exits {
			d, ok := models.ParseDirection(string(key))
			if !ok {
				problems.add("room %q: unknown direction %q", def.Name, key)
				continue
			}
			if _, dup := r.exits[d]; dup {
				problems.add("room %q: direction %s given twice", def.Name, d)
				continue
			}
			r.exits[d] = dest
		}

		for _, raw := range def.Items {
			item := models.NormalizeItemName(raw)
			if item == "" {
				problems.add("room %q: empty item name", def.Name)
				continue
			}
			if owner, taken := owners[item]; taken {
				problems.add("item %q placed in both %q and %q", item, owner, def.Name)
				continue
			}
			owners[item] = def.Name
			r.items = append(r.items, item)
			w.initial = append(w.initial, item)
		}

		w.rooms[def.Name] = r
		w.order = append(w.order, def.Name)
	}

	for _, name := range w.order {
		for _, d := range models.Directions {
			dest, ok := w.rooms[name].exits[d]
			if ok && w.rooms[dest] == nil {
				problems.add("room %q: %s leads to unknown room %q", name, d, dest)
			}
		}
	}

	if w.rooms[w.start] == nil {
		problems.add("start room %q does not exist", w.start)
	}
	if w.rooms[w.terminal] == nil {
		problems.add("terminal room %q does not exist", w.terminal)
	}
	if w.required < 1 {
		problems.add("required_items must be at least 1, got %d", w.required)
	} else if w.required > len(w.initial) {
		problems.add("required_items is %d but only %d items are placed", w.required, len(w.initial))
	}

	if len(problems.Problems) == 0 && !w.reachable(w.start).Has(w.terminal) {
		problems.add("terminal room %q cannot be reached from %q", w.terminal, w.start)
	}

	if len(problems.Problems) > 0 {
		return nil, problems
	}
	return w, nil
}

// reachable walks the directed graph breadth-first from start.
func (w *World) reachable(start string) mapset.Set[string] {
	visited := mapset.New[string]()
	queue := []string{start}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if visited.Has(name) {
			continue
		}
		visited.Put(name)
		for _, d := range models.Directions {
			if dest, ok := w.rooms[name].exits[d]; ok && !visited.Has(dest) {
				queue = append(queue, dest)
			}
		}
	}
	return visited
}

func (w *World) room(name string) *room {
	r, ok := w.rooms[name]
	if !ok {
		panic(&InvariantViolation{Room: name})
	}
	return r
}

func (w *World) Title() string { return w.title }
func (w *World) Goal() string { return w.goal }
func (w *World) WinText() string { return w.winText }
func (w *World) LossText() string { return w.lossText }
func (w *World) Start() string { return w.start }
func (w *World) Terminal() string { return w.terminal }
func (w *World) RequiredItems() int { return w.required }

// Rooms returns the room names in map order.
func (w *World) Rooms() []string {
	return slices.Clone(w.order)
}

// HasRoom reports whether name is a room of this world.
func (w *World) HasRoom(name string) bool {
	_, ok := w.rooms[name]
	return ok
}

// Neighbor returns the room reached by leaving name in direction d.
func (w *World) Neighbor(name string, d models.Direction) (string, bool) {
	dest, ok := w.room(name).exits[d]
	return dest, ok
}

// Exits lists a room's edges in North, South, East, West order.
func (w *World) Exits(name string) []Exit {
	r := w.room(name)
	var exits []Exit
	for _, d := range models.Directions {
		if dest, ok := r.exits[d]; ok {
			exits = append(exits, Exit{Direction: d, Room: dest})
		}
	}
	return exits
}

// ItemsIn returns the items currently lying in a room.
func (w *World) ItemsIn(name string) []string {
	return slices.Clone(w.room(name).items)
}

// RemoveItem takes item out of a room. It reports false when the item is
// not there.
func (w *World) RemoveItem(name, item string) bool {
	r := w.room(name)
	i := slices.Index(r.items, item)
	if i < 0 {
		return false
	}
	r.items = slices.Delete(r.items, i, i+1)
	return true
}

// IsTerminal reports whether entering the room ends the game.
func (w *World) IsTerminal(name string) bool {
	w.room(name)
	return name == w.terminal
}

// InitialItems returns every item the map placed, in map order.
func (w *World) InitialItems() []string {
	return slices.Clone(w.initial)
}

// RemainingItems returns every item still lying in some room.
func (w *World) RemainingItems() []string {
	var items []string
	for _, name := range w.order {
		items = append(items, w.rooms[name].items...)
	}
	return items
}
