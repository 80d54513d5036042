package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	introPlay IntroSubmitMsg = iota
	introLeaderboard
)

// IntroModel holds the state for the main menu.
type IntroModel struct {
	selected IntroSubmitMsg
	palette  Palette
	width    int
	height   int
}

func NewIntroModel(palette Palette) IntroModel {
	return IntroModel{selected: introPlay, palette: palette}
}

func (m IntroModel) Init() tea.Cmd { return nil }

func (m IntroModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "right", "l", "tab":
			// Two buttons, so any move toggles.
			if m.selected == introPlay {
				m.selected = introLeaderboard
			} else {
				m.selected = introPlay
			}
		case "enter":
			selected := m.selected
			return m, func() tea.Msg { return selected }
		case "q", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

var gridsnakeAscii = `
  ██████  ██████  ██ ██████      ███████ ███    ██  █████  ██   ██ ███████
 ██       ██   ██ ██ ██   ██     ██      ████   ██ ██   ██ ██  ██  ██
 ██   ███ ██████  ██ ██   ██     ███████ ██ ██  ██ ███████ █████   █████
 ██    ██ ██   ██ ██ ██   ██          ██ ██  ██ ██ ██   ██ ██  ██  ██
  ██████  ██   ██ ██ ██████      ███████ ██   ████ ██   ██ ██   ██ ███████
`

func (m IntroModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Foreground(m.palette.Accent).Render(gridsnakeAscii))
	sb.WriteString("\n")

	// A little preview of the cast: the player, both enemies and the food.
	cast := lipgloss.JoinHorizontal(lipgloss.Center,
		m.palette.PlayerBody.Render("████"),
		m.palette.PlayerHead.Render("▶ "),
		"      ",
		m.palette.Food.Render("● "),
		"      ",
		m.palette.Blue.Render("██████"),
		"  ",
		m.palette.Yellow.Render("████"),
	)
	sb.WriteString(cast)
	sb.WriteString("\n")

	play := buttonStyle.Render("Play")
	leaderboard := buttonStyle.Render("Leaderboard")
	if m.selected == introPlay {
		play = m.palette.SelectedButton.Render("Play")
	} else {
		leaderboard = m.palette.SelectedButton.Render("Leaderboard")
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center, play, leaderboard)
	content := lipgloss.JoinVertical(lipgloss.Center, sb.String(), buttons)

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}
