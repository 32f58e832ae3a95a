package engine

import (
	"bytes"
	_ "embed"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/tatianab/peppers-last-stand/internal/models"
	"github.com/tatianab/peppers-last-stand/internal/parser"
	"github.com/tatianab/peppers-last-stand/internal/world"
)

//go:embed prompts/welcome.txt
var welcomePrompt string

//go:embed prompts/help.txt
var helpPrompt string

//go:embed prompts/status.txt
var statusPrompt string

const (
	msgBlocked      = "You can't go that way."
	msgPickedUp     = "You picked up the %s."
	msgNoItem       = "There is no %s here."
	msgNoExits      = "There are no adjacent rooms."
	msgFarewell     = "Thanks for playing. Goodbye!"
	msgScream       = "You scream at the top of your lungs. That was cathartic!"
	msgReprompt     = "Please enter a command. Type 'help' for a list of commands."
	msgGetWhat      = "Get what? Please include an item name after 'get'."
	msgInvalid      = "Invalid command. Type 'help' for a list of commands."
	msgHint         = "You have all %d items! Head to the %s to finish the game."
	msgThanks       = "Thanks for playing the game. Hope you enjoyed it."
	defaultWinText  = "Congratulations! You've collected all %d items and reached the %s. You win!"
	defaultLossText = "Oh no! You've reached the %s without collecting all %d items. GAME OVER!"
)

// Engine applies player actions to a game state over one world.
type Engine struct {
	world   *world.World
	welcome *template.Template
	help    *template.Template
	status  *template.Template
}

func NewEngine(w *world.World) (*Engine, error) {
	funcs := template.FuncMap{"join": strings.Join}

	welcome, err := template.New("welcome").Parse(welcomePrompt)
	if err != nil {
		return nil, errors.Wrap(err, "welcome template")
	}
	help, err := template.New("help").Parse(helpPrompt)
	if err != nil {
		return nil, errors.Wrap(err, "help template")
	}
	status, err := template.New("status").Funcs(funcs).Parse(statusPrompt)
	if err != nil {
		return nil, errors.Wrap(err, "status template")
	}

	return &Engine{
		world:   w,
		welcome: welcome,
		help:    help,
		status:  status,
	}, nil
}

// Load builds an engine over the map at path, or over the reference map
// when path is empty.
func Load(path string) (*Engine, error) {
	m, err := models.LoadMap(path)
	if err != nil {
		return nil, err
	}
	w, err := world.New(m)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build world")
	}
	return NewEngine(w)
}

// World returns the world this engine mutates.
func (e *Engine) World() *world.World {
	return e.world
}

// NewGame returns the state a session starts from.
func (e *Engine) NewGame() models.GameState {
	return models.GameState{Room: e.world.Start()}
}

// Welcome is the banner shown once before the first turn.
func (e *Engine) Welcome() Event {
	return Event{Kind: EventWelcome, Text: e.render(e.welcome, struct {
		Title string
		Goal  string
	}{
		Title: e.world.Title(),
		Goal:  e.world.Goal(),
	})}
}

// Status describes where the player is and what they carry.
func (e *Engine) Status(st models.GameState) Event {
	hint := ""
	if e.allCollected(st) && !e.world.IsTerminal(st.Room) {
		hint = e.completionHint()
	}
	return Event{Kind: EventStatus, Text: e.render(e.status, struct {
		Room      string
		Inventory []string
		Count     int
		Required  int
		Here      []string
		Hint      string
	}{
		Room:      st.Room,
		Inventory: st.Inventory,
		Count:     len(st.Inventory),
		Required:  e.world.RequiredItems(),
		Here:      e.world.ItemsIn(st.Room),
		Hint:      hint,
	})}
}

// Apply runs one action against st. The returned state is st's successor;
// st itself is left untouched, though room item sets in the world are
// updated in place. Once a state carries a terminal result Apply does
// nothing.
func (e *Engine) Apply(st models.GameState, action parser.Action) (models.GameState, []Event, models.Result) {
	if st.Result.Terminal() {
		return st, nil, st.Result
	}
	if _, ok := action.(parser.EmptyInput); !ok {
		st.Turns++
	}

	before := st.Room
	var events []Event

	switch a := action.(type) {
	case parser.Move:
		events = e.move(&st, a.Direction)
	case parser.Get:
		events = e.get(&st, a.Item)
	case parser.Check:
		events = []Event{e.check(st)}
	case parser.Status:
		events = []Event{e.Status(st)}
	case parser.Help:
		events = []Event{{Kind: EventHelp, Text: e.render(e.help, struct {
			Title    string
			Required int
			Terminal string
		}{
			Title:    e.world.Title(),
			Required: e.world.RequiredItems(),
			Terminal: e.world.Terminal(),
		})}}
	case parser.Quit:
		st.Result = models.ResultQuit
		events = []Event{{Kind: EventFarewell, Text: msgFarewell}}
	case parser.Scream:
		events = []Event{{Kind: EventScream, Text: msgScream}}
	case parser.EmptyInput:
		events = []Event{{Kind: EventReprompt, Text: msgReprompt}}
	case parser.GetMissingArgument:
		events = []Event{{Kind: EventGetWhat, Text: msgGetWhat}}
	case parser.InvalidDirection:
		events = []Event{{Kind: EventBlocked, Text: msgBlocked}}
	case parser.Invalid:
		events = []Event{{Kind: EventInvalid, Text: msgInvalid}}
	default:
		panic(fmt.Sprintf("engine: unhandled action %T", action))
	}

	slog.Debug("applied action",
		"action", fmt.Sprintf("%T", action),
		"from", before,
		"to", st.Room,
		"inventory", len(st.Inventory),
		"turn", st.Turns,
		"result", st.Result.String(),
	)
	return st, events, st.Result
}

func (e *Engine) move(st *models.GameState, d models.Direction) []Event {
	dest, ok := e.world.Neighbor(st.Room, d)
	if !ok {
		return []Event{{Kind: EventBlocked, Text: msgBlocked}}
	}
	st.Room = dest
	if !e.world.IsTerminal(dest) {
		return nil
	}

	if e.allCollected(*st) {
		st.Result = models.ResultWin
		return []Event{{Kind: EventWin, Text: e.winText() + "\n" + msgThanks}}
	}
	st.Result = models.ResultLoss
	return []Event{{Kind: EventLoss, Text: e.lossText() + "\n" + msgThanks}}
}

func (e *Engine) get(st *models.GameState, item string) []Event {
	if !e.world.RemoveItem(st.Room, item) {
		return []Event{{Kind: EventNoItem, Text: fmt.Sprintf(msgNoItem, item)}}
	}
	st.Inventory = append(slices.Clone(st.Inventory), item)

	events := []Event{{Kind: EventPickedUp, Text: fmt.Sprintf(msgPickedUp, item)}}
	if len(st.Inventory) == e.world.RequiredItems() {
		events = append(events, Event{Kind: EventHint, Text: e.completionHint()})
	}
	return events
}

func (e *Engine) check(st models.GameState) Event {
	var lines []string
	exits := e.world.Exits(st.Room)
	if len(exits) == 0 {
		lines = append(lines, msgNoExits)
	} else {
		lines = append(lines, "Rooms around you:")
		for _, x := range exits {
			lines = append(lines, fmt.Sprintf("  %s: %s", x.Direction, x.Room))
		}
	}
	if items := e.world.ItemsIn(st.Room); len(items) > 0 {
		lines = append(lines, "You see here: "+strings.Join(items, ", "))
	}
	return Event{Kind: EventExits, Text: strings.Join(lines, "\n")}
}

// allCollected is the win threshold. The status hint and the terminal room check
// read it directly; the pickup hint fires on the pickup that reaches it.
func (e *Engine) allCollected(st models.GameState) bool {
	return len(st.Inventory) >= e.world.RequiredItems()
}

func (e *Engine) completionHint() string {
	return fmt.Sprintf(msgHint, e.world.RequiredItems(), e.world.Terminal())
}

func (e *Engine) winText() string {
	if t := e.world.WinText(); t != "" {
		return t
	}
	return fmt.Sprintf(defaultWinText, e.world.RequiredItems(), e.world.Terminal())
}

func (e *Engine) lossText() string {
	if t := e.world.LossText(); t != "" {
		return t
	}
	return fmt.Sprintf(defaultLossText, e.world.Terminal(), e.world.RequiredItems())
}

func (e *Engine) render(tmpl *template.Template, data any) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Templates are embedded and their data types are fixed here, so a
		// failure is a programming error.
		panic(errors.Wrapf(err, "render %s", tmpl.Name()))
	}
	return strings.TrimRight(buf.String(), "\n")
}
