package ui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/daftar/internal/codec"
	"github.com/faizmokh/daftar/internal/locale"
	"github.com/faizmokh/daftar/internal/logging"
	"github.com/faizmokh/daftar/internal/nav"
	"github.com/faizmokh/daftar/internal/roster"
)

// Options carries the collaborators a Model needs. Nil fields get defaults:
// the seeded store, a fresh navigator, English strings and a discard logger.
type Options struct {
	Store     *roster.Store
	Navigator *nav.Navigator
	Strings   *locale.Strings
	Logger    *slog.Logger
}

// Model owns Bubble Tea state for the home and result screens.
type Model struct {
	store   *roster.Store
	nav     *nav.Navigator
	strings *locale.Strings
	logger  *slog.Logger

	// unsubscribe detaches the store listener registered by NewModel.
	unsubscribe func()

	screen nav.Screen
	input  textinput.Model
	help   help.Model

	homeKeys   homeKeyMap
	resultKeys resultKeyMap

	// result holds the decoded copy shown on the result screen.
	result    []roster.Entry
	decodeErr error

	statusLine string
	errorLine  string
}

// NewModel wires a model positioned on the navigator's current destination.
func NewModel(opts Options) Model {
	if opts.Store == nil {
		opts.Store = roster.Initial()
	}
	if opts.Navigator == nil {
		opts.Navigator = nav.New()
	}
	if opts.Strings == nil {
		opts.Strings = locale.Must("en")
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	logger := opts.Logger
	unsubscribe := opts.Store.Subscribe(func(entries []roster.Entry) {
		logger.Debug("store changed", "entries", len(entries))
	})

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = opts.Strings.Get(locale.InputPlaceholder)
	input.Width = 40

	m := Model{
		store:       opts.Store,
		nav:         opts.Navigator,
		strings:     opts.Strings,
		logger:      opts.Logger,
		unsubscribe: unsubscribe,
		input:       input,
		help:        help.New(),
		homeKeys:    newHomeKeys(opts.Strings),
		resultKeys:  newResultKeys(opts.Strings),
	}
	return m.enter(m.nav.Current())
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update routes key presses to the active screen.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.screen == nav.ScreenResult {
			return m.handleResultKey(msg)
		}
		return m.handleHomeKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Close detaches the model from its store. The store stays usable.
func (m Model) Close() {
	m.unsubscribe()
}

// Screen reports the screen currently shown.
func (m Model) Screen() nav.Screen {
	return m.screen
}

// Input returns the home screen's pending text.
func (m Model) Input() string {
	return m.input.Value()
}

// Result returns the decoded list shown on the result screen.
func (m Model) Result() []roster.Entry {
	return m.result
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.homeKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.homeKeys.Submit):
		return m.submit()
	case key.Matches(msg, m.homeKeys.Navigate):
		return m.navigateToResult()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.errorLine = ""
	return m, cmd
}

func (m Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.resultKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.resultKeys.Back):
		return m.back()
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	name := m.input.Value()
	if !m.store.Append(name) {
		m.errorLine = m.strings.Get(locale.BlankInput)
		m.statusLine = ""
		return m, nil
	}

	m.logger.Info("entry added", "name", name, "entries", m.store.Len())
	m.input.Reset()
	m.statusLine = m.strings.Format(locale.Added, map[string]any{"Name": name})
	m.errorLine = ""
	return m, nil
}

func (m Model) navigateToResult() (tea.Model, tea.Cmd) {
	payload := codec.Encode(m.store.Entries())
	dest, err := m.nav.Navigate(nav.ResultRoute(payload))
	if err != nil {
		m.errorLine = err.Error()
		return m, nil
	}

	m.logger.Info("navigate", "to", dest.Screen.String(), "id", dest.ID.String(), "depth", m.nav.Depth())
	return m.enter(dest), nil
}

func (m Model) back() (tea.Model, tea.Cmd) {
	dest, ok := m.nav.Back()
	if !ok {
		return m, nil
	}

	m.logger.Info("back", "to", dest.Screen.String(), "id", dest.ID.String(), "depth", m.nav.Depth())
	return m.enter(dest), textinput.Blink
}

// enter switches the model to dest. Result destinations decode their payload
// once here and keep no link to the store.
func (m Model) enter(dest nav.Destination) Model {
	m.screen = dest.Screen
	m.statusLine = ""
	m.errorLine = ""

	switch dest.Screen {
	case nav.ScreenResult:
		res := codec.Decode(dest.Arg(nav.ArgListData))
		if !res.OK() {
			m.logger.Warn("decode payload", "id", dest.ID.String(), "err", res.Err)
		}
		m.result = res.List()
		m.decodeErr = res.Err
		m.input.Blur()
	default:
		m.result = nil
		m.decodeErr = nil
		m.input.Focus()
	}
	return m
}

// View renders the active screen.
func (m Model) View() string {
	var b strings.Builder

	if m.screen == nav.ScreenResult {
		m.viewResult(&b)
	} else {
		m.viewHome(&b)
	}

	b.WriteByte('\n')
	if m.screen == nav.ScreenResult {
		b.WriteString(m.help.View(m.resultKeys))
	} else {
		b.WriteString(m.help.View(m.homeKeys))
	}
	b.WriteByte('\n')

	return b.String()
}

func (m Model) viewHome(b *strings.Builder) {
	b.WriteString(titleStyle.Render(m.strings.Get(locale.EnterItem)))
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	b.WriteByte('\n')

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		buttonStyle.Render(m.strings.Get(locale.ButtonSubmit)),
		" ",
		buttonStyle.Render(m.strings.Get(locale.ButtonNavigate)),
	)
	b.WriteString(buttons)
	b.WriteString("\n\n")

	writeEntries(b, m.store.Entries(), m.strings.Get(locale.NoEntries))

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.statusLine))
		b.WriteByte('\n')
	}
}

func (m Model) viewResult(b *strings.Builder) {
	b.WriteString(titleStyle.Render(m.strings.Get(locale.ResultTitle)))
	b.WriteByte('\n')

	writeEntries(b, m.result, m.strings.Get(locale.NoEntries))

	if m.decodeErr != nil {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(m.strings.Get(locale.DecodeFailed)))
		b.WriteByte('\n')
	}
}

func writeEntries(b *strings.Builder, entries []roster.Entry, empty string) {
	if len(entries) == 0 {
		b.WriteString(mutedStyle.Render(empty))
		b.WriteByte('\n')
		return
	}
	for _, entry := range entries {
		b.WriteString(itemStyle.Render(entry.Name))
		b.WriteByte('\n')
	}
}
