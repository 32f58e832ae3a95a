package engine

// EventKind tells a text channel what an output event is, so it can style it.
type EventKind int

const (
	EventWelcome EventKind = iota
	EventStatus
	EventBlocked
	EventPickedUp
	EventNoItem
	EventHint
	EventExits
	EventHelp
	EventFarewell
	EventScream
	EventReprompt
	EventGetWhat
	EventInvalid
	EventWin
	EventLoss
)

var eventNames = [...]string{
	EventWelcome:  "welcome",
	EventStatus:   "status",
	EventBlocked:  "blocked",
	EventPickedUp: "picked_up",
	EventNoItem:   "no_item",
	EventHint:     "hint",
	EventExits:    "exits",
	EventHelp:     "help",
	EventFarewell: "farewell",
	EventScream:   "scream",
	EventReprompt: "reprompt",
	EventGetWhat:  "get_what",
	EventInvalid:  "invalid",
	EventWin:      "win",
	EventLoss:     "loss",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// UserError reports whether the event answers a command the game could not
// carry out.
func (k EventKind) UserError() bool {
	switch k {
	case EventBlocked, EventNoItem, EventReprompt, EventGetWhat, EventInvalid:
		return true
	}
	return false
}

// Event is one piece of output produced by a turn. Text may span several
// lines.
type Event struct {
	Kind EventKind
	Text string
}
