package game

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

type Status int

const (
	StatusReady Status = iota
	StatusRunning
	StatusPaused
	StatusTerminal
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusTerminal:
		return "game-over"
	}
	return "unknown"
}

type CommandKind int

const (
	CommandDirection CommandKind = iota
	CommandStart
	CommandTogglePause
	CommandRestart
)

type Command struct {
	Kind      CommandKind
	Direction Direction
}

type GameTickMsg struct {
	Snapshot Snapshot
}

type PlayerDeadMsg struct {
	RunID string
	Score int
	Cause DeathCause
}

// GameManager owns one game and the Ready/Running/Paused/Terminal lifecycle
// around it. Run is the only goroutine that should mutate the game; the UI
// talks to it through CommandChannel and listens on UpdateChannel.
type GameManager struct {
	CommandChannel chan Command
	UpdateChannel  chan tea.Msg

	mu           sync.RWMutex
	playerName   string
	sim          *Simulation
	status       Status
	runID        string
	rng          RandomSource
	newScheduler func() Scheduler
	highScores   *HighScoreService
}

type Option func(*GameManager)

func WithRandomSource(rng RandomSource) Option {
	return func(gm *GameManager) { gm.rng = rng }
}

func WithScheduler(newScheduler func() Scheduler) Option {
	return func(gm *GameManager) { gm.newScheduler = newScheduler }
}

func WithHighScores(service *HighScoreService) Option {
	return func(gm *GameManager) { gm.highScores = service }
}

func WithPlayerName(name string) Option {
	return func(gm *GameManager) { gm.playerName = name }
}

func NewGameManager(opts ...Option) *GameManager {
	gm := &GameManager{
		CommandChannel: make(chan Command, commandChannelSize),
		UpdateChannel:  make(chan tea.Msg, updateChannelSize),
		playerName:     "player",
		newScheduler: func() Scheduler {
			return NewTickerScheduler(TickDuration)
		},
	}
	for _, opt := range opts {
		opt(gm)
	}
	if gm.rng == nil {
		gm.rng = NewTimeSeededSource()
	}

	gm.sim = NewSimulation(gm.rng)
	gm.status = StatusReady
	gm.runID = uuid.NewString()
	return gm
}

// Run drives the game until ctx is cancelled.
func (gm *GameManager) Run(ctx context.Context) error {
	scheduler := gm.newScheduler()
	defer scheduler.Stop()

	log.Info("Game loop started.", "run", gm.RunID())
	for {
		select {
		case <-ctx.Done():
			log.Info("Game loop stopped.")
			return ctx.Err()

		case <-scheduler.C():
			result, stepped := gm.Tick()
			if !stepped {
				continue
			}
			snap := gm.Snapshot()
			gm.publish(GameTickMsg{Snapshot: snap})
			if result.Terminal {
				gm.publishBlocking(ctx, PlayerDeadMsg{RunID: snap.RunID, Score: snap.Score, Cause: snap.Cause})
			}

		case cmd := <-gm.CommandChannel:
			gm.processCommand(cmd)
			gm.publish(GameTickMsg{Snapshot: gm.Snapshot()})
		}
	}
}

// Send queues a command for the game loop without blocking the caller.
func (gm *GameManager) Send(cmd Command) bool {
	select {
	case gm.CommandChannel <- cmd:
		return true
	default:
		log.Warn("Command dropped, game loop is not keeping up.", "kind", cmd.Kind)
		return false
	}
}

func (gm *GameManager) processCommand(cmd Command) {
	switch cmd.Kind {
	case CommandDirection:
		gm.SetIntent(cmd.Direction)
	case CommandStart:
		gm.Start()
	case CommandTogglePause:
		gm.TogglePause()
	case CommandRestart:
		gm.Restart()
	}
}

func (gm *GameManager) Start() bool {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if gm.status != StatusReady {
		return false
	}
	gm.status = StatusRunning
	log.Info("Game started.", "run", gm.runID, "player", gm.playerName)
	return true
}

func (gm *GameManager) TogglePause() bool {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	switch gm.status {
	case StatusRunning:
		gm.status = StatusPaused
	case StatusPaused:
		gm.status = StatusRunning
	default:
		return false
	}
	log.Info("Pause toggled.", "run", gm.runID, "status", gm.status)
	return true
}

// Restart replaces the game with a fresh one, from any state.
func (gm *GameManager) Restart() {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	gm.sim.Reset()
	gm.status = StatusReady
	gm.runID = uuid.NewString()
	log.Info("Game restarted.", "run", gm.runID)
}

// SetIntent forwards a heading while the game is Ready or Running.
func (gm *GameManager) SetIntent(dir Direction) bool {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if gm.status != StatusReady && gm.status != StatusRunning {
		return false
	}
	return gm.sim.SetIntent(dir)
}

// Tick steps the game if it is running. The bool reports whether a step
// actually happened.
func (gm *GameManager) Tick() (StepResult, bool) {
	gm.mu.Lock()
	if gm.status != StatusRunning {
		gm.mu.Unlock()
		return StepResult{}, false
	}

	result := gm.sim.Step()
	for _, ev := range result.Events {
		log.Debug("Tick event", "run", gm.runID, "tick", result.Tick, "event", ev.Kind, "cell", ev.Cell,
			"color", ev.Color, "points", ev.Points, "cause", ev.Cause)
	}

	var finished *RunRecord
	if result.Terminal {
		gm.status = StatusTerminal
		record := gm.runRecordLocked()
		finished = &record
	}
	gm.mu.Unlock()

	if finished != nil {
		log.Info("Game over.", "run", finished.RunID, "score", finished.Score, "cause", finished.Cause)
		gm.recordRun(*finished)
	}
	return result, true
}

func (gm *GameManager) runRecordLocked() RunRecord {
	gs := gm.sim.state
	return RunRecord{
		RunID:        gm.runID,
		PlayerName:   gm.playerName,
		Score:        gs.Score,
		Length:       len(gs.Player.Body),
		EnemiesEaten: gs.EnemiesEaten,
		Cause:        string(gs.Cause),
		Ticks:        int64(gs.Tick),
	}
}

func (gm *GameManager) recordRun(run RunRecord) {
	if gm.highScores == nil {
		return
	}
	if err := gm.highScores.SavePlayersHighScore(run); err != nil {
		log.Error("High score persist failed", "run", run.RunID, "error", err)
	}
}

func (gm *GameManager) PlayerName() string {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return gm.playerName
}

// SetPlayerName names the player for runs recorded from now on.
func (gm *GameManager) SetPlayerName(name string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	gm.playerName = name
}

func (gm *GameManager) Snapshot() Snapshot {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	snap := gm.sim.Snapshot()
	snap.Status = gm.status
	snap.RunID = gm.runID
	return snap
}

func (gm *GameManager) Status() Status {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return gm.status
}

func (gm *GameManager) RunID() string {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return gm.runID
}

func (gm *GameManager) HighScores() *HighScoreService {
	return gm.highScores
}

// publish drops the message when nobody is reading; the next tick carries a
// fresher snapshot anyway.
func (gm *GameManager) publish(msg tea.Msg) {
	select {
	case gm.UpdateChannel <- msg:
	default:
	}
}

func (gm *GameManager) publishBlocking(ctx context.Context, msg tea.Msg) {
	select {
	case gm.UpdateChannel <- msg:
	case <-ctx.Done():
	}
}
