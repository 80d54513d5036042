package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mshel/gridsnake/internal/config"
	"github.com/Mshel/gridsnake/internal/game"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// --- Internal Game States for GameViewModel ---

type GameState int

const (
	StatePlaying GameState = iota
	StateGameOver
	StateLeaderboard
)

const (
	cellWidth          = 2
	boardWidth         = game.GridSize * cellWidth
	updatePollInterval = 50 * time.Millisecond
	runIDPrefix        = 8
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellFood
	cellPlayerHead
	cellPlayerBody
	cellEnemyHead
	cellEnemyBody
)

// gameUpdatePollMsg means the poll found nothing new.
type gameUpdatePollMsg struct{}

var (
	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder())

	sectionStyle = lipgloss.NewStyle().Bold(true)
)

type GameViewModel struct {
	ScreenWidth  int
	ScreenHeight int

	gameManager *game.GameManager
	snapshot    game.Snapshot
	keys        KeyMap
	help        help.Model
	palette     Palette

	// spectator views only the leaderboard, opened from the intro screen.
	spectator     bool
	gameState     GameState
	gameOverState GameOverState
}

func NewGameModel(gm *game.GameManager, settings config.Settings, screenWidth int, screenHeight int) GameViewModel {
	palette := NewPalette(settings.Theme)
	h := help.New()
	h.ShowAll = true

	return GameViewModel{
		gameManager:  gm,
		snapshot:     gm.Snapshot(),
		keys:         NewKeyMap(settings.Keys),
		help:         h,
		palette:      palette,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		gameState:    StatePlaying,
		gameOverState: GameOverState{
			GameManager:  gm,
			Palette:      palette,
			ScreenWidth:  screenWidth,
			ScreenHeight: screenHeight,
		},
	}
}

func NewLeaderboardModel(gm *game.GameManager, settings config.Settings, screenWidth int, screenHeight int) GameViewModel {
	m := NewGameModel(gm, settings, screenWidth, screenHeight)
	m.spectator = true
	m.gameState = StateLeaderboard
	return m
}

// --- Init/Update/View Methods ---

func (m GameViewModel) Init() tea.Cmd {
	if m.spectator {
		return nil
	}
	return m.listenForGameUpdates()
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.gameOverState.ScreenWidth = msg.Width
		m.gameOverState.ScreenHeight = msg.Height
		return m, nil

	case ShowLeaderboardMsg:
		m.gameState = StateLeaderboard
		return m, nil

	case tea.KeyMsg:
		if m.gameState == StateGameOver || m.gameState == StateLeaderboard {
			return m.updateMenus(msg)
		}
		return m.updatePlaying(msg)

	case game.GameTickMsg:
		m.snapshot = msg.Snapshot
		return m, m.listenForGameUpdates()

	case game.PlayerDeadMsg:
		if msg.RunID == m.snapshot.RunID {
			log.Info("Player died, showing Game Over screen.", "run", msg.RunID, "score", msg.Score)
			m.showGameOver(msg)
		}
		return m, m.listenForGameUpdates()

	case gameUpdatePollMsg:
		return m, m.listenForGameUpdates()
	}

	return m, nil
}

func (m *GameViewModel) showGameOver(msg game.PlayerDeadMsg) {
	m.gameState = StateGameOver
	m.gameOverState.FinalScore = msg.Score
	m.gameOverState.Cause = msg.Cause
	m.gameOverState.FinalLength = len(m.snapshot.Player)
	m.gameOverState.EnemiesEaten = m.snapshot.EnemiesEaten
	m.gameOverState.SelectedButton = gameOverRestart
}

func (m GameViewModel) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if dir, ok := m.keys.direction(msg); ok {
		m.gameManager.Send(game.Command{Kind: game.CommandDirection, Direction: dir})
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Start):
		m.gameManager.Send(game.Command{Kind: game.CommandStart})
	case key.Matches(msg, m.keys.Pause):
		m.gameManager.Send(game.Command{Kind: game.CommandTogglePause})
	case key.Matches(msg, m.keys.Restart):
		m.gameManager.Send(game.Command{Kind: game.CommandRestart})
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m GameViewModel) updateMenus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.gameState == StateLeaderboard {
		switch msg.String() {
		case "esc", "enter", "q":
			if m.spectator {
				return m, func() tea.Msg { return QuitGameMsg{} }
			}
			m.gameState = StateGameOver
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Restart) {
		return m.restart()
	}

	switch msg.String() {
	case "left", "h", "shift+tab":
		m.gameOverState.SelectedButton = max(0, m.gameOverState.SelectedButton-1)
	case "right", "l", "tab":
		m.gameOverState.SelectedButton = min(gameOverButtonCount-1, m.gameOverState.SelectedButton+1)
	case "enter":
		switch m.gameOverState.SelectedButton {
		case gameOverRestart:
			return m.restart()
		case gameOverLeaderboard:
			m.gameState = StateLeaderboard
		case gameOverExit:
			return m, tea.Quit
		}
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m GameViewModel) restart() (tea.Model, tea.Cmd) {
	m.gameManager.Send(game.Command{Kind: game.CommandRestart})
	m.gameState = StatePlaying
	return m, nil
}

func (m GameViewModel) View() string {
	switch m.gameState {
	case StateGameOver:
		return m.gameOverState.RenderGameOverScreen()
	case StateLeaderboard:
		return m.gameOverState.RenderLeaderboardScreen()
	}

	board := mapViewStyle.
		BorderForeground(m.palette.Border).
		Render(m.renderBoard())
	status := statusPanelStyle.Render(m.renderStatusPanel())

	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinHorizontal(lipgloss.Top, board, status),
	)
}

// classifyCell reports what occupies c. The player is drawn over enemies so
// the fatal overlap stays visible on the last frame.
func classifyCell(snap game.Snapshot, c game.Cell) (cellKind, game.EnemyColor) {
	for i, part := range snap.Player {
		if part == c {
			if i == 0 {
				return cellPlayerHead, 0
			}
			return cellPlayerBody, 0
		}
	}
	for _, enemy := range snap.Enemies {
		for i, part := range enemy.Body {
			if part == c {
				if i == 0 {
					return cellEnemyHead, enemy.Color
				}
				return cellEnemyBody, enemy.Color
			}
		}
	}
	if snap.Food == c {
		return cellFood, 0
	}
	return cellEmpty, 0
}

func (m GameViewModel) renderCell(kind cellKind, color game.EnemyColor) string {
	switch kind {
	case cellPlayerHead:
		return m.palette.PlayerHead.Render(string(headRunes[m.snapshot.Direction]) + " ")
	case cellPlayerBody:
		return m.palette.PlayerBody.Render("██")
	case cellEnemyHead:
		return m.palette.enemy(color).Bold(true).Render("██")
	case cellEnemyBody:
		return m.palette.enemy(color).Faint(true).Render("▓▓")
	case cellFood:
		return m.palette.Food.Render("● ")
	}
	return voidStyle.Render("  ")
}

func (m GameViewModel) renderBoard() string {
	if m.snapshot.Status == game.StatusPaused {
		return lipgloss.Place(boardWidth, game.GridSize,
			lipgloss.Center, lipgloss.Center,
			pausedStyle.BorderForeground(m.palette.Accent).Render("PAUSED"),
			lipgloss.WithWhitespaceChars("░"),
			lipgloss.WithWhitespaceForeground(lipgloss.Color("238")),
		)
	}

	var sb strings.Builder
	for y := 0; y < game.GridSize; y++ {
		for x := 0; x < game.GridSize; x++ {
			sb.WriteString(m.renderCell(classifyCell(m.snapshot, game.Cell{X: x, Y: y})))
		}
		if y < game.GridSize-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m GameViewModel) renderStatusPanel() string {
	snap := m.snapshot
	var statusContent strings.Builder

	statusContent.WriteString(sectionStyle.Render("--- Player ---") + "\n")
	statusContent.WriteString(m.palette.PlayerBody.Render("● ") + m.gameManager.PlayerName() + "\n")
	statusContent.WriteString(fmt.Sprintf("Score: %d\n", snap.Score))
	statusContent.WriteString(fmt.Sprintf("Length: %d\n", len(snap.Player)))
	statusContent.WriteString(fmt.Sprintf("Enemies eaten: %d\n", snap.EnemiesEaten))
	statusContent.WriteString(fmt.Sprintf("Heading: %c\n", headRunes[snap.Direction]))
	statusContent.WriteString(fmt.Sprintf("Tick: %d\n", snap.Tick))
	statusContent.WriteString(fmt.Sprintf("Status: %s\n", snap.Status))
	statusContent.WriteString(fmt.Sprintf("Run: %s\n", shortRunID(snap.RunID)))

	statusContent.WriteString("\n" + sectionStyle.Render("--- Enemies ---") + "\n")
	for _, enemy := range snap.Enemies {
		statusContent.WriteString(fmt.Sprintf("%s%-6s %d/%d  worth %d\n",
			m.palette.enemy(enemy.Color).Render("● "), enemy.Color,
			len(enemy.Body), enemy.TargetLength, enemy.TargetLength*game.EnemyScorePerSegment))
	}

	if snap.Status == game.StatusReady {
		statusContent.WriteString("\n" + lipgloss.NewStyle().Foreground(m.palette.Accent).Bold(true).
			Render(fmt.Sprintf("Press %s to start", m.keys.Start.Help().Key)) + "\n")
	}

	statusContent.WriteString("\n" + sectionStyle.Render("--- Controls ---") + "\n")
	statusContent.WriteString(m.help.View(m.keys))

	return statusContent.String()
}

func shortRunID(id string) string {
	if len(id) > runIDPrefix {
		return id[:runIDPrefix]
	}
	return id
}

// listenForGameUpdates polls the game loop's update channel. Exactly one
// poll is in flight at a time; every handled update schedules the next.
func (m GameViewModel) listenForGameUpdates() tea.Cmd {
	updates := m.gameManager.UpdateChannel
	return tea.Tick(updatePollInterval, func(t time.Time) tea.Msg {
		select {
		case msg := <-updates:
			return msg
		default:
			return gameUpdatePollMsg{}
		}
	})
}
