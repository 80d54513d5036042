package game

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestGameManager(t *testing.T, opts ...Option) *GameManager {
	t.Helper()
	opts = append([]Option{WithRandomSource(&scriptedRandom{})}, opts...)
	return NewGameManager(opts...)
}

func sendPlayerToWall(gm *GameManager) {
	gm.sim.state.Player = &PlayerSnake{
		Body:          []Cell{{0, 5}, {1, 5}, {2, 5}},
		Direction:     Left,
		NextDirection: Left,
	}
}

func TestGameManagerLifecycle(t *testing.T) {
	gm := newTestGameManager(t)

	if gm.Status() != StatusReady {
		t.Fatalf("expected ready, got %v", gm.Status())
	}
	if gm.TogglePause() {
		t.Fatalf("expected pause to be ignored while ready")
	}
	if _, stepped := gm.Tick(); stepped {
		t.Fatalf("expected no step while ready")
	}

	if !gm.Start() {
		t.Fatalf("expected start from ready")
	}
	if gm.Start() {
		t.Fatalf("expected a second start to be ignored")
	}

	if _, stepped := gm.Tick(); !stepped {
		t.Fatalf("expected a step while running")
	}

	if !gm.TogglePause() || gm.Status() != StatusPaused {
		t.Fatalf("expected paused, got %v", gm.Status())
	}
	if gm.SetIntent(Up) {
		t.Fatalf("expected intents to be ignored while paused")
	}
	tick := gm.Snapshot().Tick
	if _, stepped := gm.Tick(); stepped || gm.Snapshot().Tick != tick {
		t.Fatalf("expected no step while paused")
	}

	if !gm.TogglePause() || gm.Status() != StatusRunning {
		t.Fatalf("expected running again, got %v", gm.Status())
	}
	if !gm.SetIntent(Up) {
		t.Fatalf("expected intent to be accepted while running")
	}
}

func TestGameManagerIntentWhileReady(t *testing.T) {
	gm := newTestGameManager(t)

	if !gm.SetIntent(Down) {
		t.Fatalf("expected intent to be buffered before the game starts")
	}
	gm.Start()
	gm.Tick()

	if got := gm.Snapshot().Direction; got != Down {
		t.Fatalf("expected heading down, got %v", got)
	}
}

func TestGameManagerGameOverRecordsRun(t *testing.T) {
	scores, err := NewHighScoreService(SessionDSN)
	if err != nil {
		t.Fatalf("failed to open leaderboard: %v", err)
	}
	defer scores.Close()

	gm := newTestGameManager(t, WithHighScores(scores), WithPlayerName("tester"))
	gm.Start()
	sendPlayerToWall(gm)

	result, stepped := gm.Tick()
	if !stepped || !result.Terminal {
		t.Fatalf("expected the tick to end the game")
	}
	if gm.Status() != StatusTerminal {
		t.Fatalf("expected terminal status, got %v", gm.Status())
	}
	if gm.Start() || gm.TogglePause() || gm.SetIntent(Up) {
		t.Fatalf("expected a finished game to refuse everything but restart")
	}

	runs, err := scores.GetHighScores(10, 0)
	if err != nil {
		t.Fatalf("failed to read leaderboard: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(runs))
	}
	if runs[0].PlayerName != "tester" || runs[0].Cause != string(CauseWall) || runs[0].RunID != gm.RunID() {
		t.Fatalf("unexpected run record %+v", runs[0])
	}
}

func TestGameManagerRestart(t *testing.T) {
	gm := newTestGameManager(t)
	gm.Start()
	sendPlayerToWall(gm)
	gm.Tick()
	oldRun := gm.RunID()

	gm.Restart()

	snap := gm.Snapshot()
	if snap.Status != StatusReady {
		t.Fatalf("expected ready after restart, got %v", snap.Status)
	}
	if snap.Terminal || snap.Score != 0 || snap.Tick != 0 {
		t.Fatalf("expected a fresh game, got %+v", snap)
	}
	if snap.RunID == oldRun {
		t.Fatalf("expected a new run id")
	}
}

func TestGameManagerRunLoop(t *testing.T) {
	scheduler := newManualScheduler()
	gm := newTestGameManager(t, WithScheduler(func() Scheduler { return scheduler }))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gm.Run(ctx) }()

	next := func() GameTickMsg {
		t.Helper()
		select {
		case msg := <-gm.UpdateChannel:
			tick, ok := msg.(GameTickMsg)
			if !ok {
				t.Fatalf("expected GameTickMsg, got %T", msg)
			}
			return tick
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for an update")
		}
		return GameTickMsg{}
	}

	if !gm.Send(Command{Kind: CommandStart}) {
		t.Fatalf("expected start command to be queued")
	}
	if msg := next(); msg.Snapshot.Status != StatusRunning {
		t.Fatalf("expected running after start, got %v", msg.Snapshot.Status)
	}

	gm.Send(Command{Kind: CommandDirection, Direction: Up})
	next()

	scheduler.ch <- time.Now()
	msg := next()
	if msg.Snapshot.Tick != 1 || msg.Snapshot.Direction != Up {
		t.Fatalf("expected tick 1 heading up, got tick %d heading %v", msg.Snapshot.Tick, msg.Snapshot.Direction)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("game loop did not stop")
	}
	if !scheduler.stopped.Load() {
		t.Fatalf("expected the scheduler to be stopped")
	}
}

func TestGameManagerRunLoopPublishesDeath(t *testing.T) {
	scheduler := newManualScheduler()
	gm := newTestGameManager(t, WithScheduler(func() Scheduler { return scheduler }))
	gm.Start()
	sendPlayerToWall(gm)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go gm.Run(ctx)

	scheduler.ch <- time.Now()

	var dead *PlayerDeadMsg
	deadline := time.After(2 * time.Second)
	for dead == nil {
		select {
		case msg := <-gm.UpdateChannel:
			if d, ok := msg.(PlayerDeadMsg); ok {
				dead = &d
			}
		case <-deadline:
			t.Fatalf("timed out waiting for PlayerDeadMsg")
		}
	}
	if dead.Cause != CauseWall || dead.RunID != gm.RunID() {
		t.Fatalf("unexpected death message %+v", dead)
	}
}
