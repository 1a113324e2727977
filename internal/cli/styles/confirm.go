package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/lookout/internal/domain/entity"
)

// ConfirmKeyMap defines keybindings for the confirm dialog.
type ConfirmKeyMap struct {
	Yes     key.Binding
	No      key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ConfirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Toggle, k.Confirm, k.Cancel}
}

// FullHelp implements help.KeyMap.
func (k ConfirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultConfirmKeyMap returns the default keybindings.
func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		No:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		Toggle:  key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→", "switch")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// ConfirmModel is a yes/no dialog that quits its program once answered.
// "No" is selected initially.
type ConfirmModel struct {
	message   string
	yes       bool
	confirmed bool
	canceled  bool

	keys  ConfirmKeyMap
	help  help.Model
	theme *Theme
}

// NewConfirm creates a confirmation dialog styled for theme.
func NewConfirm(theme *Theme, message string) ConfirmModel {
	return ConfirmModel{
		message: message,
		keys:    DefaultConfirmKeyMap(),
		help:    NewStyledHelp(theme),
		theme:   theme,
	}
}

// Init implements tea.Model.
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || m.Done() {
		return m, nil
	}

	switch {
	case key.Matches(k, m.keys.Yes):
		m.yes = true
	case key.Matches(k, m.keys.No):
		m.yes = false
	case key.Matches(k, m.keys.Toggle):
		m.yes = !m.yes
	case key.Matches(k, m.keys.Confirm):
		m.confirmed = true
		return m, tea.Quit
	case key.Matches(k, m.keys.Cancel):
		m.canceled = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model. The dialog disappears once answered.
func (m ConfirmModel) View() string {
	if m.Done() {
		return ""
	}
	t := m.theme

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		m.button("No", !m.yes), "  ", m.button("Yes", m.yes))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		t.Title.Render(m.message),
		"",
		buttons,
		"",
		m.help.View(m.keys),
	)
	return t.Box.Render(content)
}

// button marks the selection by more than color when contrast is raised.
func (m ConfirmModel) button(label string, selected bool) string {
	t := m.theme
	if !selected {
		return t.BadgeMuted.Render(" " + label + " ")
	}
	switch t.Preferences.Contrast {
	case entity.ContrastHigh:
		return t.Badge.Underline(true).Bold(true).Render("[" + label + "]")
	case entity.ContrastMedium:
		return t.Badge.Bold(true).Render(" " + label + " ")
	default:
		return t.Badge.Render(" " + label + " ")
	}
}

// Done reports whether the dialog was answered or canceled.
func (m ConfirmModel) Done() bool {
	return m.confirmed || m.canceled
}

// Result reports whether the user confirmed "Yes".
func (m ConfirmModel) Result() bool {
	return m.confirmed && m.yes
}
