package ui

import (
	"github.com/Mshel/gridsnake/internal/config"
	"github.com/Mshel/gridsnake/internal/game"
	"github.com/charmbracelet/lipgloss"
)

const voidColor = "233"

var (
	mapViewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(0, 0)

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	voidStyle = lipgloss.NewStyle().Background(lipgloss.Color(voidColor))

	headRunes = map[game.Direction]rune{
		game.Up:    '▲',
		game.Down:  '▼',
		game.Left:  '◀',
		game.Right: '▶',
	}

	focusedColor = lipgloss.Color("205")
	blurredColor = lipgloss.Color("240")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(blurredColor)
	helpStyle    = blurredStyle

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Padding(0, 3).
			Margin(1, 1).
			Border(lipgloss.RoundedBorder())
)

// Palette is the lipgloss rendition of the configured theme.
type Palette struct {
	PlayerHead lipgloss.Style
	PlayerBody lipgloss.Style
	Blue       lipgloss.Style
	Yellow     lipgloss.Style
	Food       lipgloss.Style
	Accent     lipgloss.Color
	Border     lipgloss.Color

	SelectedButton lipgloss.Style
}

func NewPalette(theme config.Theme) Palette {
	accent := lipgloss.Color(theme.Accent)
	return Palette{
		PlayerHead: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.PlayerHead)).
			Foreground(lipgloss.Color("0")).
			Bold(true),
		PlayerBody: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.PlayerBody)),
		Blue:       lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Blue)),
		Yellow:     lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Yellow)),
		Food: lipgloss.NewStyle().
			Background(lipgloss.Color(voidColor)).
			Foreground(lipgloss.Color(theme.Food)),
		Accent: accent,
		Border: lipgloss.Color(theme.Border),

		SelectedButton: buttonStyle.
			Background(accent).
			BorderForeground(accent),
	}
}

func (p Palette) enemy(color game.EnemyColor) lipgloss.Style {
	if color == game.Yellow {
		return p.Yellow
	}
	return p.Blue
}
