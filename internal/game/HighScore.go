package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// SessionDSN keeps the leaderboard in memory for the lifetime of the process.
const SessionDSN = ":memory:"

const tableName = "high_scores"

type HighScoreService struct {
	db *sqlx.DB
}

type Score struct {
	ID           int       `db:"id"`
	RunID        string    `db:"run_id"`
	PlayerName   string    `db:"player_name"`
	Score        int       `db:"score"`
	Length       int       `db:"length"`
	EnemiesEaten int       `db:"enemies_eaten"`
	Cause        string    `db:"cause"`
	Ticks        int64     `db:"ticks"`
	CreatedAt    time.Time `db:"created_at"`
}

// RunRecord is what GameManager hands over when a run ends.
type RunRecord struct {
	RunID        string `db:"run_id"`
	PlayerName   string `db:"player_name"`
	Score        int    `db:"score"`
	Length       int    `db:"length"`
	EnemiesEaten int    `db:"enemies_eaten"`
	Cause        string `db:"cause"`
	Ticks        int64  `db:"ticks"`
}

func NewHighScoreService(dsn string) (*HighScoreService, error) {
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// An in-memory database belongs to a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	service := &HighScoreService{db: db}
	if err := service.createTable(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating high scores table: %w", err)
	}

	return service, nil
}

// createTable creates the high_scores table if it does not exist.
func (serviceImpl *HighScoreService) createTable() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + tableName + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		player_name TEXT NOT NULL,
		score INTEGER NOT NULL,
		length INTEGER NOT NULL,
		enemies_eaten INTEGER NOT NULL,
		cause TEXT NOT NULL,
		ticks INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := serviceImpl.db.Exec(createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
	}
	log.Debug("High scores table ensured.")
	return nil
}

func (serviceImpl *HighScoreService) SavePlayersHighScore(run RunRecord) error {
	const insertSQL = `
	INSERT INTO ` + tableName + ` (run_id, player_name, score, length, enemies_eaten, cause, ticks)
	VALUES (:run_id, :player_name, :score, :length, :enemies_eaten, :cause, :ticks);`

	_, err := serviceImpl.db.NamedExec(insertSQL, run)
	if err != nil {
		return fmt.Errorf("failed to insert high score for %s: %w", run.PlayerName, err)
	}

	return nil
}

// GetHighScores retrieves a page of runs, best score first.
func (serviceImpl *HighScoreService) GetHighScores(limit, offset int) ([]Score, error) {
	const selectSQL = `
	SELECT id, run_id, player_name, score, length, enemies_eaten, cause, ticks, created_at
	FROM ` + tableName + `
	ORDER BY score DESC, id ASC
	LIMIT ? OFFSET ?;`

	var scores []Score
	if err := serviceImpl.db.Select(&scores, selectSQL, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to query high scores: %w", err)
	}

	return scores, nil
}

func (serviceImpl *HighScoreService) GetTotalScoreCount() (int, error) {
	const countSQL = `SELECT COUNT(*) FROM ` + tableName + `;`
	var count int
	if err := serviceImpl.db.Get(&count, countSQL); err != nil {
		return 0, fmt.Errorf("failed to get total score count: %w", err)
	}
	return count, nil
}

func (serviceImpl *HighScoreService) Close() error {
	return serviceImpl.db.Close()
}
