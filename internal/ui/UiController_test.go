package ui

import (
	"testing"

	"github.com/Mshel/gridsnake/internal/config"
	"github.com/Mshel/gridsnake/internal/game"
	tea "github.com/charmbracelet/bubbletea"
)

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	return cmd()
}

func TestControllerScreenFlow(t *testing.T) {
	gm := game.NewGameManager(game.WithRandomSource(game.NewRandomSource(3)))
	settings := config.Default()
	settings.PlayerName = "grace"

	var model tea.Model = NewControllerModel(gm, settings)

	model, cmd := model.Update(keyPress("enter"))
	msg := runCmd(t, cmd)
	if msg != introPlay {
		t.Fatalf("expected introPlay, got %v", msg)
	}

	model, _ = model.Update(msg)
	if got := model.(ControllerModel).CurrentScreen; got != SetupScreen {
		t.Fatalf("expected setup screen, got %v", got)
	}

	// Nothing typed: the configured name is used.
	model, cmd = model.Update(keyPress("enter"))
	msg = runCmd(t, cmd)
	submit, ok := msg.(SetupSubmitMsg)
	if !ok || submit.Name != "grace" {
		t.Fatalf("expected SetupSubmitMsg for grace, got %#v", msg)
	}

	model, _ = model.Update(msg)
	if got := model.(ControllerModel).CurrentScreen; got != GameScreen {
		t.Fatalf("expected game screen, got %v", got)
	}
	if gm.PlayerName() != "grace" {
		t.Fatalf("expected the game to be named for grace, got %q", gm.PlayerName())
	}
}

func TestSetupUsesTypedName(t *testing.T) {
	var model tea.Model = NewInitialSetupModel("player")
	for _, r := range "ada" {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	_, cmd := model.Update(keyPress("enter"))
	if msg := runCmd(t, cmd); msg != (SetupSubmitMsg{Name: "ada"}) {
		t.Fatalf("expected ada, got %#v", msg)
	}
}

func TestControllerQuitKeys(t *testing.T) {
	gm := game.NewGameManager(game.WithRandomSource(game.NewRandomSource(3)))
	model := NewControllerModel(gm, config.Default())
	model.CurrentScreen = SetupScreen

	// "q" is just a letter while typing a name.
	updated, _ := model.Update(keyPress("q"))
	model = updated.(ControllerModel)
	if got := model.SetupModel.(SetupModel).nameInput.Value(); got != "q" {
		t.Fatalf("expected q to be typed, got %q", got)
	}

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if _, ok := runCmd(t, cmd).(tea.QuitMsg); !ok {
		t.Fatalf("expected ctrl+c to quit")
	}
}

func TestControllerLeaderboardFromIntro(t *testing.T) {
	gm := game.NewGameManager(game.WithRandomSource(game.NewRandomSource(3)))
	var model tea.Model = NewControllerModel(gm, config.Default())

	model, _ = model.Update(introLeaderboard)
	controller := model.(ControllerModel)
	if controller.CurrentScreen != GameScreen {
		t.Fatalf("expected the leaderboard on the game screen, got %v", controller.CurrentScreen)
	}
	if state := controller.GameModel.(GameViewModel).gameState; state != StateLeaderboard {
		t.Fatalf("expected leaderboard state, got %v", state)
	}

	model, _ = model.Update(QuitGameMsg{})
	if got := model.(ControllerModel).CurrentScreen; got != IntroScreen {
		t.Fatalf("expected intro screen, got %v", got)
	}
}
