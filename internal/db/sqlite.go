// Package db provides SQLite storage for the weekplan API.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"weekplan/internal/calendar"
)

// SQLite stores events, goals, and tasks. Identifiers are uuid
// strings assigned on insert; callers treat them as opaque.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite store and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// ListEvents returns all events ordered by start time.
func (s *SQLite) ListEvents(ctx context.Context) ([]calendar.Event, error) {
	query := `
		SELECT id, title, category, start_time, end_time, color, location, description, created_at, updated_at
		FROM events
		ORDER BY start_time, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	events := []calendar.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}

// GetEvent retrieves an event by id. Returns calendar.ErrEventNotFound
// if no row matches.
func (s *SQLite) GetEvent(ctx context.Context, id string) (calendar.Event, error) {
	query := `
		SELECT id, title, category, start_time, end_time, color, location, description, created_at, updated_at
		FROM events
		WHERE id = ?
	`

	row := s.db.QueryRowContext(ctx, query, id)
	e, err := scanEvent(row)
	if err == sql.ErrNoRows {
		return calendar.Event{}, calendar.ErrEventNotFound
	}
	if err != nil {
		return calendar.Event{}, err
	}
	return e, nil
}

// CreateEvent inserts a draft and returns the stored event with its
// assigned id and timestamps.
func (s *SQLite) CreateEvent(ctx context.Context, draft calendar.EventDraft) (calendar.Event, error) {
	now := time.Now()
	e := calendar.Event{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Category:    draft.Category,
		StartTime:   draft.StartTime,
		EndTime:     draft.EndTime,
		Color:       draft.Color,
		Location:    draft.Location,
		Description: draft.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query := `
		INSERT INTO events (id, title, category, start_time, end_time, color, location, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		e.ID,
		e.Title,
		e.Category,
		e.StartTime.Format(time.RFC3339),
		e.EndTime.Format(time.RFC3339),
		e.Color,
		e.Location,
		e.Description,
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return calendar.Event{}, fmt.Errorf("inserting event: %w", err)
	}

	return e, nil
}

// UpdateEvent replaces every field of the event except id and
// created_at. The stored color is overwritten verbatim, including
// back to empty when the override is cleared.
func (s *SQLite) UpdateEvent(ctx context.Context, e calendar.Event) (calendar.Event, error) {
	existing, err := s.GetEvent(ctx, e.ID)
	if err != nil {
		return calendar.Event{}, err
	}

	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = time.Now()

	query := `
		UPDATE events
		SET title = ?, category = ?, start_time = ?, end_time = ?, color = ?, location = ?, description = ?, updated_at = ?
		WHERE id = ?
	`

	_, err = s.db.ExecContext(ctx, query,
		e.Title,
		e.Category,
		e.StartTime.Format(time.RFC3339),
		e.EndTime.Format(time.RFC3339),
		e.Color,
		e.Location,
		e.Description,
		e.UpdatedAt.Format(time.RFC3339),
		e.ID,
	)
	if err != nil {
		return calendar.Event{}, fmt.Errorf("updating event: %w", err)
	}

	return e, nil
}

// DeleteEvent removes an event by id. Returns calendar.ErrEventNotFound
// if nothing was deleted.
func (s *SQLite) DeleteEvent(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return calendar.ErrEventNotFound
	}
	return nil
}

// ListGoals returns all goals with their tasks nested, ordered by
// creation time.
func (s *SQLite) ListGoals(ctx context.Context) ([]calendar.Goal, error) {
	query := `
		SELECT id, name, color, created_at, updated_at
		FROM goals
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	goals := []calendar.Goal{}
	for rows.Next() {
		var (
			g         calendar.Goal
			createdAt string
			updatedAt string
		)
		if err := rows.Scan(&g.ID, &g.Name, &g.Color, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}
		if g.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing goal created at: %w", err)
		}
		if g.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("parsing goal updated at: %w", err)
		}
		goals = append(goals, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}

	for i := range goals {
		tasks, err := s.ListTasksByGoal(ctx, goals[i].ID)
		if err != nil {
			return nil, err
		}
		goals[i].Tasks = tasks
	}

	return goals, nil
}

// CreateGoal inserts a goal and returns it with an empty task list.
func (s *SQLite) CreateGoal(ctx context.Context, name, color string) (calendar.Goal, error) {
	now := time.Now()
	g := calendar.Goal{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     color,
		Tasks:     []calendar.Task{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `
		INSERT INTO goals (id, name, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		g.ID,
		g.Name,
		g.Color,
		g.CreatedAt.Format(time.RFC3339),
		g.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return calendar.Goal{}, fmt.Errorf("inserting goal: %w", err)
	}

	return g, nil
}

// ListTasksByGoal returns the tasks belonging to a goal, oldest first.
func (s *SQLite) ListTasksByGoal(ctx context.Context, goalID string) ([]calendar.Task, error) {
	query := `
		SELECT id, name, goal_id, completed, created_at, updated_at
		FROM tasks
		WHERE goal_id = ?
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query, goalID)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := []calendar.Task{}
	for rows.Next() {
		var (
			t         calendar.Task
			createdAt string
			updatedAt string
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.GoalID, &t.Completed, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		if t.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing task created at: %w", err)
		}
		if t.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, fmt.Errorf("parsing task updated at: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	return tasks, nil
}

// CreateTask inserts a task under a goal. Returns
// calendar.ErrGoalNotFound if the goal does not exist. New tasks
// always start not completed.
func (s *SQLite) CreateTask(ctx context.Context, name, goalID string) (calendar.Task, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM goals WHERE id = ?`, goalID).Scan(&exists)
	if err != nil {
		return calendar.Task{}, fmt.Errorf("checking goal: %w", err)
	}
	if exists == 0 {
		return calendar.Task{}, calendar.ErrGoalNotFound
	}

	now := time.Now()
	t := calendar.Task{
		ID:        uuid.NewString(),
		Name:      name,
		GoalID:    goalID,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	query := `
		INSERT INTO tasks (id, name, goal_id, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.GoalID,
		t.Completed,
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return calendar.Task{}, fmt.Errorf("inserting task: %w", err)
	}

	return t, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (calendar.Event, error) {
	var (
		e         calendar.Event
		start     string
		end       string
		createdAt string
		updatedAt string
	)

	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Category,
		&start,
		&end,
		&e.Color,
		&e.Location,
		&e.Description,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return calendar.Event{}, err
	}
	if err != nil {
		return calendar.Event{}, fmt.Errorf("scanning event: %w", err)
	}

	if e.StartTime, err = parseTime(start); err != nil {
		return calendar.Event{}, fmt.Errorf("parsing start time: %w", err)
	}
	if e.EndTime, err = parseTime(end); err != nil {
		return calendar.Event{}, fmt.Errorf("parsing end time: %w", err)
	}
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return calendar.Event{}, fmt.Errorf("parsing created at: %w", err)
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return calendar.Event{}, fmt.Errorf("parsing updated at: %w", err)
	}

	return e, nil
}

// parseTime parses a timestamp in the formats SQLite might return.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z",
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
