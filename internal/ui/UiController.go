package ui

import (
	"github.com/Mshel/gridsnake/internal/config"
	"github.com/Mshel/gridsnake/internal/game"
	tea "github.com/charmbracelet/bubbletea"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GameScreen
)

// Messages for screen transitions
type IntroSubmitMsg int // introPlay or introLeaderboard

type SetupSubmitMsg struct {
	Name string
}

type ShowLeaderboardMsg struct{}

// QuitGameMsg sends the controller back to the intro screen.
type QuitGameMsg struct{}

type ControllerModel struct {
	CurrentScreen Screen
	GameManager   *game.GameManager
	Settings      config.Settings

	IntroModel tea.Model
	SetupModel tea.Model
	GameModel  tea.Model

	ScreenWidth  int
	ScreenHeight int
}

func NewControllerModel(gameManager *game.GameManager, settings config.Settings) ControllerModel {
	return ControllerModel{
		GameManager:   gameManager,
		Settings:      settings,
		CurrentScreen: IntroScreen,

		IntroModel: NewIntroModel(NewPalette(settings.Theme)),
		SetupModel: NewInitialSetupModel(settings.PlayerName),
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		return m.SetupModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Game Loading..."
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// ctrl+c quits from anywhere; other quit keys belong to the screens since
	// the name form needs every printable key.
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		// Every screen keeps its own size; the hidden ones need it too.
		m.IntroModel, _ = m.IntroModel.Update(msg)
		m.SetupModel, _ = m.SetupModel.Update(msg)
		if m.GameModel != nil {
			m.GameModel, cmd = m.GameModel.Update(msg)
		}
		return m, cmd

	case IntroSubmitMsg:
		switch msg {
		case introPlay:
			m.CurrentScreen = SetupScreen
			return m, m.SetupModel.Init()
		case introLeaderboard:
			m.CurrentScreen = GameScreen
			m.GameModel = NewLeaderboardModel(m.GameManager, m.Settings, m.ScreenWidth, m.ScreenHeight)
			return m, tea.Sequence(m.GameModel.Init(), func() tea.Msg { return ShowLeaderboardMsg{} })
		}
		return m, nil

	case SetupSubmitMsg:
		m.CurrentScreen = GameScreen
		m.GameManager.SetPlayerName(msg.Name)
		m.GameModel = NewGameModel(m.GameManager, m.Settings, m.ScreenWidth, m.ScreenHeight)
		return m, m.GameModel.Init()

	case QuitGameMsg:
		m.CurrentScreen = IntroScreen
		m.GameModel = nil
		return m, m.IntroModel.Init()
	}

	switch m.CurrentScreen {
	case IntroScreen:
		m.IntroModel, cmd = m.IntroModel.Update(msg)
	case SetupScreen:
		m.SetupModel, cmd = m.SetupModel.Update(msg)
	case GameScreen:
		if m.GameModel != nil {
			m.GameModel, cmd = m.GameModel.Update(msg)
		}
	}
	return m, cmd
}
