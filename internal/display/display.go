// Package display provides the terminal UI using Bubble Tea.
//
// [Terminal] is the controller's view in the terminal: every control is
// always present and the "container" is the card list drawn by the Bubble
// Tea model. Typed commands and shortcut keys both end up as controller
// activations, so the terminal behaves like the web page.
package display

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/recipebox/internal/controller"
	"github.com/hammamikhairi/recipebox/internal/conversation"
	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/render"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	// BannerStyle is muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4e7")).
			Bold(true)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(0, 1)

	controlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Padding(0, 1)

	activeControlStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#18181b")).
				Background(lipgloss.Color("#bbf7d0")).
				Padding(0, 1)

	groupLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8")).
			Width(8)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Italic(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	difficultyStyles = map[string]lipgloss.Style{
		"easy":   lipgloss.NewStyle().Foreground(lipgloss.Color("#86efac")),
		"medium": lipgloss.NewStyle().Foreground(lipgloss.Color("#fde68a")),
		"hard":   lipgloss.NewStyle().Foreground(lipgloss.Color("#fca5a5")),
	}
)

// ── Terminal view ────────────────────────────────────────────────

// Compile-time interface check.
var _ controller.View = (*Terminal)(nil)

// Terminal holds what the controller last drew. Only the Bubble Tea
// goroutine touches it.
type Terminal struct {
	cards  []render.Card
	active map[domain.Group]string
}

// NewTerminal creates an empty terminal view.
func NewTerminal() *Terminal {
	return &Terminal{active: make(map[domain.Group]string)}
}

// Controls lists every value of the group; the terminal always has them all.
func (t *Terminal) Controls(g domain.Group) []string {
	var out []string
	switch g {
	case domain.GroupFilter:
		for _, f := range domain.Filters() {
			out = append(out, f.String())
		}
	case domain.GroupSort:
		for _, s := range domain.Sorts() {
			out = append(out, s.String())
		}
	}
	return out
}

// HasContainer is always true.
func (t *Terminal) HasContainer() bool { return true }

// Render replaces the stored cards.
func (t *Terminal) Render(cards []render.Card) error {
	t.cards = slices.Clone(cards)
	return nil
}

// MarkActive records the active control of a group.
func (t *Terminal) MarkActive(g domain.Group, value string) { t.active[g] = value }

// Cards returns the cards from the last render.
func (t *Terminal) Cards() []render.Card { return slices.Clone(t.cards) }

// Active returns the active control value of a group.
func (t *Terminal) Active(g domain.Group) string { return t.active[g] }

// RenderCards draws cards as bordered boxes, one per line group. width <= 0
// falls back to 80 columns. No cards draws nothing.
func RenderCards(cards []render.Card, width int) string {
	if width <= 0 {
		width = 80
	}
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder
	for _, c := range cards {
		diff, ok := difficultyStyles[c.Difficulty]
		if !ok {
			diff = metaStyle
		}
		body := titleStyle.Render(c.Title) + "\n" +
			metaStyle.Render("⏱ "+c.Duration+"  ") + diff.Render(c.Difficulty)
		if c.Description != "" {
			body += "\n" + descStyle.Width(inner).Render(c.Description)
		}
		b.WriteString(cardStyle.Render(body))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderControls(t *Terminal) string {
	var rows []string
	for _, g := range []domain.Group{domain.GroupFilter, domain.GroupSort} {
		parts := []string{groupLabelStyle.Render(g.String())}
		for _, v := range t.Controls(g) {
			if v == t.Active(g) {
				parts = append(parts, activeControlStyle.Render(v))
			} else {
				parts = append(parts, controlStyle.Render(v))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// ── Key bindings ─────────────────────────────────────────────────

type keyMap struct {
	Submit     key.Binding
	NextFilter key.Binding
	NextSort   key.Binding
	Reset      key.Binding
	Quit       key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run command")),
		NextFilter: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "next filter")),
		NextSort:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "next sort")),
		Reset:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) short() []key.Binding {
	return []key.Binding{k.Submit, k.NextFilter, k.NextSort, k.Reset, k.Quit}
}

const commandHelp = "type a filter (all, easy, medium, hard, quick), a sort (none, name, time), " +
	"\"filter <v>\", \"sort <v>\", reset, or quit"

// ── UI ───────────────────────────────────────────────────────────

// UI runs the terminal front end.
type UI struct {
	ctrl   *controller.Controller
	term   *Terminal
	parser *conversation.KeywordParser
	log    *logger.Logger
}

// NewUI creates the display over a started controller bound to term.
func NewUI(ctrl *controller.Controller, term *Terminal, parser *conversation.KeywordParser, log *logger.Logger) *UI {
	return &UI{ctrl: ctrl, term: term, parser: parser, log: log}
}

// Run starts the Bubble Tea event loop. Blocks until quit.
func (u *UI) Run(ctx context.Context) error {
	_, err := tea.NewProgram(newModel(ctx, u), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	ctx      context.Context
	ui       *UI
	input    textinput.Model
	help     help.Model
	keys     keyMap
	status   string
	failed   bool
	showHelp bool
	width    int
}

func newModel(ctx context.Context, u *UI) model {
	ti := textinput.New()
	ti.Prompt = "recipes> "
	ti.PromptStyle = promptStyle
	ti.Placeholder = "easy, quick, sort name, reset…"
	ti.Focus()
	ti.CharLimit = 120
	ti.Width = 60

	return model{
		ctx:   ctx,
		ui:    u,
		input: ti,
		help:  help.New(),
		keys:  defaultKeys(),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			v := m.input.Value()
			m.input.Reset()
			return m.run(m.ui.parser.Parse(v))
		case key.Matches(msg, m.keys.NextFilter):
			next := cycle(m.ui.term.Controls(domain.GroupFilter), m.ui.term.Active(domain.GroupFilter))
			return m.run(domain.Command{Type: domain.CommandActivate, Group: domain.GroupFilter, Value: next})
		case key.Matches(msg, m.keys.NextSort):
			next := cycle(m.ui.term.Controls(domain.GroupSort), m.ui.term.Active(domain.GroupSort))
			return m.run(domain.Command{Type: domain.CommandActivate, Group: domain.GroupSort, Value: next})
		case key.Matches(msg, m.keys.Reset):
			return m.run(domain.Command{Type: domain.CommandReset})
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		if w := msg.Width - len(m.input.Prompt); w > 0 {
			m.input.Width = w
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// run applies a parsed command and sets the status line.
func (m model) run(cmd domain.Command) (tea.Model, tea.Cmd) {
	m.failed = false
	switch cmd.Type {
	case domain.CommandQuit:
		return m, tea.Quit
	case domain.CommandHelp:
		m.showHelp = !m.showHelp
		m.status = ""
	case domain.CommandReset:
		if err := m.ui.ctrl.Reset(m.ctx); err != nil {
			m.fail(err)
			break
		}
		m.status = "showing everything"
	case domain.CommandActivate:
		if err := m.ui.ctrl.Activate(m.ctx, cmd.Group, cmd.Value); err != nil {
			if errors.Is(err, domain.ErrNoControl) {
				m.status = fmt.Sprintf("no %s called %q", cmd.Group, cmd.Value)
				m.failed = true
				break
			}
			m.fail(err)
			break
		}
		m.status = fmt.Sprintf("%s: %s (%d shown)", cmd.Group, cmd.Value, len(m.ui.term.Cards()))
	default:
		if cmd.Value == "" {
			m.status = ""
			break
		}
		m.status = fmt.Sprintf("didn't catch %q, type help", cmd.Value)
		m.failed = true
	}
	return m, nil
}

func (m *model) fail(err error) {
	m.ui.log.Error("command failed: %v", err)
	m.status = err.Error()
	m.failed = true
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(renderControls(m.ui.term))
	b.WriteString("\n\n")

	cards := m.ui.term.Cards()
	if len(cards) == 0 {
		b.WriteString(emptyStyle.Render("  no recipes match"))
		b.WriteByte('\n')
	} else {
		b.WriteString(RenderCards(cards, m.width))
	}

	if m.showHelp {
		b.WriteString(metaStyle.Render(commandHelp))
		b.WriteByte('\n')
	}
	if m.status != "" {
		if m.failed {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(m.input.View())
	b.WriteByte('\n')
	b.WriteString(m.help.ShortHelpView(m.keys.short()))
	return b.String()
}

// cycle returns the value after current, wrapping around.
func cycle(values []string, current string) string {
	if len(values) == 0 {
		return current
	}
	i := slices.Index(values, current)
	return values[(i+1)%len(values)]
}
