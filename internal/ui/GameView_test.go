package ui

import (
	"strings"
	"testing"

	"github.com/Mshel/gridsnake/internal/config"
	"github.com/Mshel/gridsnake/internal/game"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestGameModel(t *testing.T, opts ...game.Option) (GameViewModel, *game.GameManager) {
	t.Helper()
	opts = append([]game.Option{game.WithRandomSource(game.NewRandomSource(1))}, opts...)
	gm := game.NewGameManager(opts...)
	return NewGameModel(gm, config.Default(), 120, 40), gm
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func nextCommand(t *testing.T, gm *game.GameManager) game.Command {
	t.Helper()
	select {
	case cmd := <-gm.CommandChannel:
		return cmd
	default:
		t.Fatalf("expected a queued command")
	}
	return game.Command{}
}

func TestClassifyCell(t *testing.T) {
	snap := game.Snapshot{
		Player: []game.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}},
		Enemies: []game.EnemyView{
			{Color: game.Yellow, Body: []game.Cell{{X: 5, Y: 5}, {X: 5, Y: 6}}},
		},
		Food: game.Cell{X: 9, Y: 9},
	}

	tests := []struct {
		cell  game.Cell
		kind  cellKind
		color game.EnemyColor
	}{
		{game.Cell{X: 5, Y: 5}, cellPlayerHead, 0},
		{game.Cell{X: 4, Y: 5}, cellPlayerBody, 0},
		{game.Cell{X: 5, Y: 6}, cellEnemyBody, game.Yellow},
		{game.Cell{X: 9, Y: 9}, cellFood, 0},
		{game.Cell{X: 0, Y: 0}, cellEmpty, 0},
	}
	for _, tt := range tests {
		kind, color := classifyCell(snap, tt.cell)
		if kind != tt.kind || color != tt.color {
			t.Fatalf("cell %v: expected %v/%v, got %v/%v", tt.cell, tt.kind, tt.color, kind, color)
		}
	}
}

func TestPlayingKeysBecomeCommands(t *testing.T) {
	m, gm := newTestGameModel(t)

	tests := []struct {
		key  string
		want game.Command
	}{
		{"up", game.Command{Kind: game.CommandDirection, Direction: game.Up}},
		{"a", game.Command{Kind: game.CommandDirection, Direction: game.Left}},
		{" ", game.Command{Kind: game.CommandStart}},
		{"p", game.Command{Kind: game.CommandTogglePause}},
		{"r", game.Command{Kind: game.CommandRestart}},
	}
	for _, tt := range tests {
		m.Update(keyPress(tt.key))
		if got := nextCommand(t, gm); got != tt.want {
			t.Fatalf("key %q: expected %+v, got %+v", tt.key, tt.want, got)
		}
	}

	_, cmd := m.Update(keyPress("q"))
	if cmd == nil {
		t.Fatalf("expected quit key to return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestGameOverFlow(t *testing.T) {
	m, gm := newTestGameModel(t)

	updated, _ := m.Update(game.PlayerDeadMsg{RunID: gm.RunID(), Score: 40, Cause: game.CauseSelf})
	m = updated.(GameViewModel)
	if m.gameState != StateGameOver || m.gameOverState.FinalScore != 40 {
		t.Fatalf("expected game over with score 40, got state %v score %d", m.gameState, m.gameOverState.FinalScore)
	}
	if view := m.View(); !strings.Contains(view, "Final score: 40") {
		t.Fatalf("expected final score in view:\n%s", view)
	}

	updated, _ = m.Update(keyPress("l"))
	m = updated.(GameViewModel)
	updated, _ = m.Update(keyPress("enter"))
	m = updated.(GameViewModel)
	if m.gameState != StateLeaderboard {
		t.Fatalf("expected leaderboard, got %v", m.gameState)
	}

	updated, _ = m.Update(keyPress("esc"))
	m = updated.(GameViewModel)
	if m.gameState != StateGameOver {
		t.Fatalf("expected to return to game over, got %v", m.gameState)
	}

	updated, _ = m.Update(keyPress("h"))
	m = updated.(GameViewModel)
	updated, _ = m.Update(keyPress("enter"))
	m = updated.(GameViewModel)
	if m.gameState != StatePlaying {
		t.Fatalf("expected restart to resume playing, got %v", m.gameState)
	}
	if got := nextCommand(t, gm); got.Kind != game.CommandRestart {
		t.Fatalf("expected restart command, got %+v", got)
	}
}

func TestDeathOfAnOldRunIsIgnored(t *testing.T) {
	m, _ := newTestGameModel(t)

	updated, _ := m.Update(game.PlayerDeadMsg{RunID: "stale", Score: 10, Cause: game.CauseWall})
	if updated.(GameViewModel).gameState != StatePlaying {
		t.Fatalf("expected a stale death to be ignored")
	}
}

func TestLeaderboardListsRuns(t *testing.T) {
	scores, err := game.NewHighScoreService(game.SessionDSN)
	if err != nil {
		t.Fatalf("failed to open leaderboard: %v", err)
	}
	defer scores.Close()
	if err := scores.SavePlayersHighScore(game.RunRecord{RunID: "r1", PlayerName: "ada", Score: 70, Cause: string(game.CauseWall)}); err != nil {
		t.Fatalf("save: %v", err)
	}

	gm := game.NewGameManager(game.WithHighScores(scores), game.WithRandomSource(game.NewRandomSource(1)))
	m := NewLeaderboardModel(gm, config.Default(), 120, 40)

	view := m.View()
	if !strings.Contains(view, "ada") || !strings.Contains(view, "70") {
		t.Fatalf("expected the recorded run in the leaderboard:\n%s", view)
	}

	_, cmd := m.Update(keyPress("esc"))
	if cmd == nil {
		t.Fatalf("expected a command back to the intro screen")
	}
	if _, ok := cmd().(QuitGameMsg); !ok {
		t.Fatalf("expected QuitGameMsg")
	}
}

func TestPausedBoardHidesTheGame(t *testing.T) {
	m, gm := newTestGameModel(t)
	gm.Start()
	gm.TogglePause()
	m.snapshot = gm.Snapshot()

	board := m.renderBoard()
	if !strings.Contains(board, "PAUSED") {
		t.Fatalf("expected paused overlay:\n%s", board)
	}
	if strings.Contains(board, "██") {
		t.Fatalf("expected the board to be hidden while paused")
	}
}
