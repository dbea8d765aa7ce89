package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/questmaster/questmaster/models"
	_ "modernc.org/sqlite"
)

const defaultUserID = "default"

// SQLiteStore implements Store on a SQLite database. Quests keep their
// subtasks embedded as a JSON column; stats live in a single row per
// user (this store serves one session, keyed "default").
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates an uninitialized SQLiteStore; Initialize must
// be called before use.
func NewSQLiteStore() *SQLiteStore {
	return &SQLiteStore{}
}

// Initialize opens the database at the 'dataFile' config key and
// creates the schema if needed.
func (s *SQLiteStore) Initialize(config map[string]string) error {
	path := config[dataFileKey]
	if path == "" {
		path = "quests.db"
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	s.db = db

	schema := `
	CREATE TABLE IF NOT EXISTS quests (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		category TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		status TEXT DEFAULT 'active',
		due_date TEXT,
		created_at TEXT NOT NULL,
		completed_at TEXT,
		subtasks TEXT,
		position INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS user_stats (
		user_id TEXT PRIMARY KEY,
		level INTEGER DEFAULT 1,
		xp INTEGER DEFAULT 0,
		completed_tasks INTEGER DEFAULT 0,
		active_tasks INTEGER DEFAULT 0,
		last_updated TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// LoadQuests returns the persisted quest collection in insertion order.
func (s *SQLiteStore) LoadQuests() ([]models.Quest, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, category, difficulty, status,
		       due_date, created_at, completed_at, subtasks
		FROM quests ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query quests: %w", err)
	}
	defer func() { _ = rows.Close() }()

	quests := []models.Quest{}
	for rows.Next() {
		var q models.Quest
		var dueDate, completedAt, subtasks sql.NullString
		var createdAt string
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.Category, &q.Difficulty,
			&q.Status, &dueDate, &createdAt, &completedAt, &subtasks); err != nil {
			return nil, fmt.Errorf("failed to scan quest row: %w", err)
		}

		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			q.CreatedAt = t
		}
		if dueDate.Valid {
			if t, err := time.Parse(time.RFC3339Nano, dueDate.String); err == nil {
				q.DueDate = &t
			}
		}
		if completedAt.Valid {
			if t, err := time.Parse(time.RFC3339Nano, completedAt.String); err == nil {
				q.CompletedAt = &t
			}
		}

		q.Subtasks = []models.Subtask{}
		if subtasks.Valid && subtasks.String != "" {
			if err := json.Unmarshal([]byte(subtasks.String), &q.Subtasks); err != nil {
				return nil, fmt.Errorf("failed to decode subtasks for quest %s: %w", q.ID, err)
			}
		}
		quests = append(quests, q)
	}
	return quests, rows.Err()
}

// SaveQuests replaces the persisted quest collection in one
// transaction.
func (s *SQLiteStore) SaveQuests(quests []models.Quest) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM quests`); err != nil {
		return fmt.Errorf("failed to clear quests: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO quests (id, title, description, category, difficulty, status,
		                    due_date, created_at, completed_at, subtasks, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, q := range quests {
		subtasks, err := json.Marshal(q.Subtasks)
		if err != nil {
			return fmt.Errorf("failed to encode subtasks for quest %s: %w", q.ID, err)
		}

		var dueDate, completedAt any
		if q.DueDate != nil {
			dueDate = q.DueDate.Format(time.RFC3339Nano)
		}
		if q.CompletedAt != nil {
			completedAt = q.CompletedAt.Format(time.RFC3339Nano)
		}

		if _, err := stmt.Exec(q.ID, q.Title, q.Description, string(q.Category), string(q.Difficulty),
			string(q.Status), dueDate, q.CreatedAt.Format(time.RFC3339Nano), completedAt,
			string(subtasks), i); err != nil {
			return fmt.Errorf("failed to insert quest %s: %w", q.ID, err)
		}
	}
	return tx.Commit()
}

// LoadStats returns the persisted player stats, or defaults when no row
// exists yet.
func (s *SQLiteStore) LoadStats() (models.PlayerStats, error) {
	stats := models.DefaultPlayerStats()
	err := s.db.QueryRow(`
		SELECT level, xp, completed_tasks, active_tasks
		FROM user_stats WHERE user_id = ?`, defaultUserID).
		Scan(&stats.Level, &stats.XP, &stats.CompletedTasks, &stats.ActiveTasks)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultPlayerStats(), nil
	}
	if err != nil {
		return models.PlayerStats{}, fmt.Errorf("failed to load stats: %w", err)
	}
	return stats, nil
}

// SaveStats upserts the player stats row.
func (s *SQLiteStore) SaveStats(stats models.PlayerStats) error {
	_, err := s.db.Exec(`
		INSERT INTO user_stats (user_id, level, xp, completed_tasks, active_tasks, last_updated)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			level = excluded.level,
			xp = excluded.xp,
			completed_tasks = excluded.completed_tasks,
			active_tasks = excluded.active_tasks,
			last_updated = excluded.last_updated`,
		defaultUserID, stats.Level, stats.XP, stats.CompletedTasks, stats.ActiveTasks,
		time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
