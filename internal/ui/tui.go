package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunTUI plays a session in the bubbletea interface: a scrolling
// transcript viewport over a single input line.
func RunTUI(e Engine, cfg Config) error {
	cfg = cfg.WithDefaults()
	if !IsTTY(cfg.Output) {
		return fmt.Errorf("output is not a TTY")
	}

	model := newPlayModel(e, GetStyles(cfg.NoColor || DetectNoColor()))

	var opts []tea.ProgramOption
	if f, ok := cfg.Output.(*os.File); ok {
		opts = append(opts, tea.WithOutput(f))
	}
	opts = append(opts, tea.WithAltScreen())

	_, err := tea.NewProgram(model, opts...).Run()
	return err
}

// playModel is the bubbletea model for a game session.
type playModel struct {
	engine     Engine
	styles     Styles
	viewport   viewport.Model
	input      textinput.Model
	transcript string
	ready      bool
	quitting   bool
	width      int
	height     int
}

// newPlayModel creates the session model with the opening transcript.
func newPlayModel(e Engine, styles Styles) *playModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.InputLine
	ti.CharLimit = 120
	ti.Focus()

	return &playModel{
		engine:     e,
		styles:     styles,
		input:      ti,
		transcript: e.Welcome(),
		width:      80,
		height:     24,
	}
}

// Init implements tea.Model.
func (m *playModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit runs the typed line through the engine and appends the
// exchange to the transcript.
func (m *playModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	m.transcript += "\n\n" + m.styles.Prompt.Render("> ") + m.styles.InputLine.Render(line)

	resp := m.engine.Execute(line)
	if resp.Text != "" {
		m.transcript += "\n" + resp.Text
	}

	m.refreshViewport()

	if resp.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// layout sizes the viewport to the terminal, reserving rows for the
// title bar, the input line, and the hint line.
func (m *playModel) layout() {
	height := m.height - 4
	if height < 5 {
		height = 5
	}
	width := m.width
	if width < 20 {
		width = 20
	}

	if !m.ready {
		m.viewport = viewport.New(width, height)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = height
	}
	m.input.Width = width - 4
	m.refreshViewport()
}

// refreshViewport re-wraps the transcript and scrolls to the bottom.
func (m *playModel) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(lipgloss.NewStyle().Width(m.viewport.Width).Render(m.transcript))
	m.viewport.GotoBottom()
}

// View implements tea.Model.
func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye! Thanks for playing.\n"
	}
	if !m.ready {
		return "Entering the keep..."
	}

	title := m.styles.Title.Render("Hollowkeep")
	hint := m.styles.Dim.Render("enter to act • pgup/pgdn to scroll • ctrl+c to abandon")

	return strings.Join([]string{
		title,
		m.viewport.View(),
		m.input.View(),
		hint,
	}, "\n")
}

// Ensure playModel implements tea.Model.
var _ tea.Model = (*playModel)(nil)
