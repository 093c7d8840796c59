package game

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultHighScorePath is the SQLite database file, kept in the working
// directory.
const DefaultHighScorePath = "highscores.db"

const tableName = "high_scores"

// Score is one finished run in the high-score table.
type Score struct {
	ID          int
	PlayerName  string
	Points      int
	SnakeLength int
	Speed       int
	CreatedAt   time.Time
}

// HighScoreService stores finished runs in a SQLite database. A nil
// service is a valid "leaderboard disabled" state for callers that
// could not open the database.
type HighScoreService struct {
	db *sql.DB
}

// NewHighScoreService opens the database at path, creating the file and
// the high_scores table when missing. An empty path uses
// DefaultHighScorePath.
func NewHighScoreService(path string) (*HighScoreService, error) {
	if path == "" {
		path = DefaultHighScorePath
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open high score database %s: %w", path, err)
	}

	serviceImpl := &HighScoreService{db: db}
	if err := serviceImpl.createTable(); err != nil {
		db.Close()
		return nil, err
	}
	return serviceImpl, nil
}

// createTable creates the high_scores table if it does not exist.
func (serviceImpl *HighScoreService) createTable() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + tableName + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_name TEXT NOT NULL,
		score INTEGER NOT NULL,
		snake_length INTEGER NOT NULL,
		speed INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := serviceImpl.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
	}
	log.Debug("high scores table ensured")
	return nil
}

// SaveHighScore records one finished run.
func (serviceImpl *HighScoreService) SaveHighScore(playerName string, points, snakeLength, speed int) error {
	const insertSQL = `
	INSERT INTO ` + tableName + ` (player_name, score, snake_length, speed)
	VALUES (?, ?, ?, ?);`

	if _, err := serviceImpl.db.Exec(insertSQL, playerName, points, snakeLength, speed); err != nil {
		return fmt.Errorf("failed to insert high score for %s: %w", playerName, err)
	}
	return nil
}

// GetHighScores retrieves a paginated list of scores, best first. Ties
// go to the longer snake, then to the earlier run.
func (serviceImpl *HighScoreService) GetHighScores(limit, offset int) ([]Score, error) {
	const selectSQL = `
	SELECT id, player_name, score, snake_length, speed, created_at
	FROM ` + tableName + `
	ORDER BY score DESC, snake_length DESC, id ASC
	LIMIT ? OFFSET ?;`

	rows, err := serviceImpl.db.Query(selectSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query high scores: %w", err)
	}
	defer rows.Close()

	var scores []Score
	for rows.Next() {
		var score Score
		err := rows.Scan(&score.ID, &score.PlayerName, &score.Points,
			&score.SnakeLength, &score.Speed, &score.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		scores = append(scores, score)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return scores, nil
}

// GetTotalScoreCount returns the number of recorded runs.
func (serviceImpl *HighScoreService) GetTotalScoreCount() (int, error) {
	const countSQL = `SELECT COUNT(*) FROM ` + tableName + `;`
	var count int
	if err := serviceImpl.db.QueryRow(countSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get total score count: %w", err)
	}
	return count, nil
}

// Close releases the underlying database handle.
func (serviceImpl *HighScoreService) Close() error {
	return serviceImpl.db.Close()
}
