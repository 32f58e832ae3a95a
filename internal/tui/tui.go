package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tatianab/peppers-last-stand/internal/engine"
	"github.com/tatianab/peppers-last-stand/internal/models"
	"github.com/tatianab/peppers-last-stand/internal/session"
)

type sessionState int

const (
	statePlaying sessionState = iota
	stateOver
)

type logEntry struct {
	input string // player line when event has no text
	event engine.Event
}

type model struct {
	state     sessionState
	engine    *engine.Engine
	session   *session.Session
	textInput textinput.Model
	viewport  viewport.Model
	// entries is the scrollback. It is rendered at the current width on
	// every resize.
	entries   []logEntry
	width     int
	height    int
	// ending holds the events of the final turn so they can be printed
	// again once the alt screen is gone.
	ending []engine.Event
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFAF5F"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87D787")).
			Bold(true)

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

func NewModel(eng *engine.Engine) model {
	ti := textinput.New()
	ti.Placeholder = "What do you do?"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	m := model{
		state:     statePlaying,
		engine:    eng,
		session:   session.New(eng),
		textInput: ti,
		viewport:  viewport.New(0, 0),
	}
	m.appendEvents(m.session.Start())
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			if m.state == statePlaying {
				m.ending, _ = m.session.Submit("quit")
			}
			return m, tea.Quit

		case tea.KeyEnter:
			if m.state == stateOver {
				return m, tea.Quit
			}

			action := m.textInput.Value()
			m.textInput.Reset()

			m.entries = append(m.entries, logEntry{input: action})

			events, res := m.session.Submit(action)
			m.appendEvents(events)
			if res.Terminal() {
				m.state = stateOver
				m.ending = events
				m.textInput.Blur()
			}
			m.viewport.SetContent(m.renderLog())
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.logWidth()
		m.viewport.Height = msg.Height - 6
		m.viewport.SetContent(m.renderLog())
		m.viewport.GotoBottom()
	}

	if m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		m.viewport.View(),
		m.renderState(),
	)

	var footer string
	switch m.state {
	case statePlaying:
		footer = lipgloss.JoinVertical(lipgloss.Left,
			"\n"+m.textInput.View(),
			"\n"+helpStyle.Render("Type 'help' for commands, 'quit' or Esc to leave."),
		)
	case stateOver:
		footer = "\n" + helpStyle.Render(fmt.Sprintf("Game over (%s). Press Enter or Esc to exit.", m.session.Result()))
	}

	return "\n" + lipgloss.JoinVertical(lipgloss.Left, mainView, footer) + "\n"
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.75)
}

func (m *model) appendEvents(events []engine.Event) {
	for _, ev := range events {
		if ev.Text == "" {
			continue
		}
		m.entries = append(m.entries, logEntry{event: ev})
	}
}

func renderEvent(ev engine.Event, width int) string {
	style := gameStyle
	switch {
	case ev.Kind == engine.EventWelcome:
		style = titleStyle
	case ev.Kind == engine.EventStatus:
		style = statusStyle
	case ev.Kind == engine.EventWin:
		style = winStyle
	case ev.Kind == engine.EventLoss:
		style = lossStyle
	case ev.Kind.UserError():
		style = warnStyle
	}
	return style.Width(width).Render(ev.Text)
}

func (m model) renderState() string {
	state := m.session.State()
	w := m.engine.World()

	// Location
	location := titleStyle.Render("LOCATION") + "\n" + state.Room + "\n\n"

	// Items in the room
	hereTitle := titleStyle.Render("YOU SEE") + "\n"
	here := "(nothing)\n"
	if items := w.ItemsIn(state.Room); len(items) > 0 {
		here = strings.Join(items, "\n") + "\n"
	}
	here += "\n"

	// Inventory
	invTitle := titleStyle.Render(fmt.Sprintf("INVENTORY %d/%d", len(state.Inventory), w.RequiredItems())) + "\n"
	inventory := ""
	if len(state.Inventory) == 0 {
		inventory = "(empty)"
	} else {
		for _, item := range state.Inventory {
			inventory += "- " + item + "\n"
		}
	}

	content := location + hereTitle + here + invTitle + inventory

	stateWidth := int(float64(m.width) * 0.23) // Leave some room for padding
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

func (m model) renderLog() string {
	width := m.logWidth()
	var b strings.Builder
	for _, e := range m.entries {
		if e.event.Text == "" {
			b.WriteString("\n" + userStyle.Width(width).Render("> "+e.input) + "\n\n")
			continue
		}
		b.WriteString(renderEvent(e.event, width) + "\n\n")
	}
	return b.String()
}

// Run plays one session in the terminal. The final turn's text is written to
// out after the alt screen closes so it stays visible.
func Run(eng *engine.Engine, out io.Writer) (models.Result, error) {
	p := tea.NewProgram(NewModel(eng), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return models.ResultNone, err
	}

	m := final.(model)
	for _, ev := range m.ending {
		fmt.Fprintln(out, ev.Text)
	}
	return m.session.Result(), nil
}
