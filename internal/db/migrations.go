package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS events (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			category    TEXT NOT NULL CHECK(category IN ('exercise', 'eating', 'work', 'relax', 'family', 'social', 'other')),
			start_time  DATETIME NOT NULL,
			end_time    DATETIME NOT NULL,
			color       TEXT NOT NULL DEFAULT '',
			location    TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			created_at  DATETIME NOT NULL,
			updated_at  DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS goals (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			color      TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS tasks (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			goal_id    TEXT NOT NULL REFERENCES goals(id),
			completed  INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_events_start ON events(start_time);
		CREATE INDEX IF NOT EXISTS idx_tasks_goal ON tasks(goal_id);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
