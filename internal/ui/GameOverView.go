package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Mshel/gridsnake/internal/game"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const leaderboardSize = 10

const (
	gameOverRestart = iota
	gameOverLeaderboard
	gameOverExit
	gameOverButtonCount
)

var gameOverButtons = [gameOverButtonCount]string{"RESTART", "LEADERBOARD", "EXIT"}

// GameOverState holds the data and local state for rendering the game over screens.
type GameOverState struct {
	GameManager    *game.GameManager
	Palette        Palette
	FinalScore     int
	FinalLength    int
	EnemiesEaten   int
	Cause          game.DeathCause
	SelectedButton int
	ScreenWidth    int
	ScreenHeight   int
}

var (
	leaderboardHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("236")).
				Padding(0, 1).
				Align(lipgloss.Center)

	leaderboardRowStyle = lipgloss.NewStyle().
				Padding(0, 1)

	leaderboardBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("8"))
)

func causeText(cause game.DeathCause) string {
	switch cause {
	case game.CauseWall:
		return "You ran into the wall."
	case game.CauseSelf:
		return "You bit your own tail."
	case game.CauseEnemy:
		return "You ran into an enemy snake."
	}
	return ""
}

// RenderGameOverScreen draws the final score and the buttons.
func (g *GameOverState) RenderGameOverScreen() string {
	messageStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("9")).
		Padding(1, 5).
		Align(lipgloss.Center)

	title := messageStyle.Render("G A M E   O V E R")

	stats := fmt.Sprintf("%s\n\nFinal score: %d\nLength: %d\nEnemies eaten: %d\n",
		causeText(g.Cause), g.FinalScore, g.FinalLength, g.EnemiesEaten)

	rendered := make([]string, 0, gameOverButtonCount)
	for i, label := range gameOverButtons {
		if i == g.SelectedButton {
			rendered = append(rendered, g.Palette.SelectedButton.Render(label))
		} else {
			rendered = append(rendered, buttonStyle.Render(label))
		}
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, rendered...)

	content := lipgloss.JoinVertical(lipgloss.Center, title, stats, buttons)

	return lipgloss.Place(g.ScreenWidth, g.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 2).Render(content),
	)
}

// RenderLeaderboardScreen draws the best runs of this session.
func (g *GameOverState) RenderLeaderboardScreen() string {
	var tableContent strings.Builder

	var scores []game.Score
	total := 0
	if service := g.GameManager.HighScores(); service != nil {
		var err error
		scores, err = service.GetHighScores(leaderboardSize, 0)
		if err != nil {
			log.Error("Could not load leaderboard", "error", err)
		}
		if total, err = service.GetTotalScoreCount(); err != nil {
			log.Error("Could not count runs", "error", err)
		}
	}

	rankWidth := 4
	nameWidth := 22
	scoreWidth := 8
	eatenWidth := 8

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		leaderboardHeaderStyle.Width(rankWidth).Render("#"),
		leaderboardHeaderStyle.Width(nameWidth).Render("Player"),
		leaderboardHeaderStyle.Width(scoreWidth).Render("Score"),
		leaderboardHeaderStyle.Width(eatenWidth).Render("Eaten"),
	)
	tableContent.WriteString(header + "\n")

	if len(scores) == 0 {
		tableContent.WriteString(leaderboardRowStyle.Faint(true).Render("No finished runs yet.") + "\n")
	}

	for i, score := range scores {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			leaderboardRowStyle.Width(rankWidth).Render(strconv.Itoa(i+1)),
			g.Palette.PlayerBody.Width(nameWidth).Render(score.PlayerName),
			leaderboardRowStyle.Width(scoreWidth).Render(strconv.Itoa(score.Score)),
			leaderboardRowStyle.Width(eatenWidth).Render(strconv.Itoa(score.EnemiesEaten)),
		)
		tableContent.WriteString(leaderboardBorderStyle.Render(row) + "\n")
	}

	title := lipgloss.NewStyle().Bold(true).Padding(1, 0).
		Render(fmt.Sprintf("SESSION LEADERBOARD (TOP %d OF %d)", min(leaderboardSize, total), total))
	instruction := lipgloss.NewStyle().Faint(true).Margin(1, 0).Render("Press ESC or ENTER to go back.")

	finalContent := lipgloss.JoinVertical(lipgloss.Center,
		title,
		tableContent.String(),
		instruction,
	)

	return lipgloss.Place(g.ScreenWidth, g.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Render(finalContent),
	)
}
