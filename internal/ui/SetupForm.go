package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	submitButtonStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(focusedColor).
				Padding(0, 1)

	blurredButtonStyle = submitButtonStyle.
				BorderForeground(blurredColor)
)

const nameCharLimit = 20

// SetupModel asks for the name runs are recorded under.
type SetupModel struct {
	nameInput   textinput.Model
	defaultName string
	focusIndex  int // 0: name, 1: submit
	width       int
	height      int
}

func NewInitialSetupModel(defaultName string) SetupModel {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Focus()
	ti.CharLimit = nameCharLimit
	ti.PromptStyle = focusedStyle
	ti.TextStyle = focusedStyle

	return SetupModel{
		nameInput:   ti,
		defaultName: defaultName,
	}
}

// Init sends a command to start the cursor blinking
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// name is what was typed, or the configured name if nothing was.
func (m SetupModel) name() string {
	if name := strings.TrimSpace(m.nameInput.Value()); name != "" {
		return name
	}
	return m.defaultName
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return QuitGameMsg{} }

		case "tab", "shift+tab":
			m.focusIndex = 1 - m.focusIndex
			if m.focusIndex == 0 {
				return m, m.nameInput.Focus()
			}
			m.nameInput.Blur()
			return m, nil

		case "enter":
			name := m.name()
			return m, func() tea.Msg { return SetupSubmitMsg{Name: name} }
		}

		if m.focusIndex == 0 {
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Cursor blink and friends.
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m SetupModel) View() string {
	center := func(s string) string {
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(s)
	}

	var b strings.Builder

	prompt := "What should the leaderboard call you?"
	if m.focusIndex == 0 {
		prompt = focusedStyle.Render(prompt)
	} else {
		prompt = blurredStyle.Render(prompt)
	}
	b.WriteString(center(prompt))
	b.WriteString("\n\n")
	b.WriteString(center(m.nameInput.View()))
	b.WriteString("\n\n")

	submitButton := blurredButtonStyle.Render("Play")
	if m.focusIndex == 1 {
		submitButton = submitButtonStyle.Render("Play")
	}
	b.WriteString(center(submitButton))
	b.WriteString("\n\n")

	b.WriteString(center(helpStyle.Render("(tab to switch focus, enter to play, esc to go back, ctrl+c to quit)")))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
