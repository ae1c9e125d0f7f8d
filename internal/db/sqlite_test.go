package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"weekplan/internal/calendar"
)

func newTestDB(t *testing.T) *SQLite {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testDraft(t *testing.T, title string, start, end time.Time) calendar.EventDraft {
	t.Helper()
	d, err := calendar.NewEventDraft(title, calendar.CategoryWork, start, end)
	if err != nil {
		t.Fatalf("draft: %v", err)
	}
	return d
}

func TestCreateAndGetEvent(t *testing.T) {
	s := newTestDB(t)
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	draft := testDraft(t, "Standup", start, start.Add(time.Hour))
	draft.Color = "#123456"
	draft.Location = "Room 4"
	draft.Description = "daily sync"

	created, err := s.CreateEvent(ctx, draft)
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	if created.ID == "" {
		t.Error("expected ID to be set after insert")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	got, err := s.GetEvent(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetEvent failed: %v", err)
	}
	if got.Title != "Standup" || got.Category != calendar.CategoryWork {
		t.Errorf("got %+v", got)
	}
	if !got.StartTime.Equal(start) {
		t.Errorf("start = %v, want %v", got.StartTime, start)
	}
	if got.Color != "#123456" || got.Location != "Room 4" || got.Description != "daily sync" {
		t.Errorf("optional fields not persisted: %+v", got)
	}
}

func TestGetEventNotFound(t *testing.T) {
	s := newTestDB(t)

	_, err := s.GetEvent(context.Background(), "missing")
	if !errors.Is(err, calendar.ErrEventNotFound) {
		t.Errorf("error = %v, want ErrEventNotFound", err)
	}
}

func TestListEventsOrderedByStart(t *testing.T) {
	s := newTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, h := range []int{15, 8, 11} {
		start := base.Add(time.Duration(h) * time.Hour)
		if _, err := s.CreateEvent(ctx, testDraft(t, "e", start, start.Add(time.Hour))); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
	}

	events, err := s.ListEvents(ctx)
	if err != nil {
		t.Fatalf("ListEvents failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].StartTime.Before(events[i-1].StartTime) {
			t.Errorf("events out of order at %d: %v before %v", i, events[i].StartTime, events[i-1].StartTime)
		}
	}
}

func TestUpdateEvent(t *testing.T) {
	s := newTestDB(t)
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	created, err := s.CreateEvent(ctx, testDraft(t, "Standup", start, start.Add(time.Hour)))
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	created.Title = "Team standup"
	created.StartTime = start.Add(2 * time.Hour)
	created.EndTime = start.Add(3 * time.Hour)
	created.Color = "#EC4899"

	updated, err := s.UpdateEvent(ctx, created)
	if err != nil {
		t.Fatalf("UpdateEvent failed: %v", err)
	}
	if updated.Title != "Team standup" || updated.Color != "#EC4899" {
		t.Errorf("updated = %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("CreatedAt must survive an update")
	}

	got, err := s.GetEvent(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetEvent failed: %v", err)
	}
	if !got.StartTime.Equal(created.StartTime) {
		t.Errorf("start = %v, want %v", got.StartTime, created.StartTime)
	}
}

func TestUpdateEventNotFound(t *testing.T) {
	s := newTestDB(t)

	_, err := s.UpdateEvent(context.Background(), calendar.Event{
		ID:        "missing",
		Title:     "ghost",
		Category:  calendar.CategoryWork,
		StartTime: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, calendar.ErrEventNotFound) {
		t.Errorf("error = %v, want ErrEventNotFound", err)
	}
}

func TestDeleteEvent(t *testing.T) {
	s := newTestDB(t)
	ctx := context.Background()

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	created, err := s.CreateEvent(ctx, testDraft(t, "Standup", start, start.Add(time.Hour)))
	if err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	if err := s.DeleteEvent(ctx, created.ID); err != nil {
		t.Fatalf("DeleteEvent failed: %v", err)
	}
	if _, err := s.GetEvent(ctx, created.ID); !errors.Is(err, calendar.ErrEventNotFound) {
		t.Errorf("error = %v, want ErrEventNotFound after delete", err)
	}

	if err := s.DeleteEvent(ctx, created.ID); !errors.Is(err, calendar.ErrEventNotFound) {
		t.Errorf("second delete error = %v, want ErrEventNotFound", err)
	}
}

func TestGoalsAndTasks(t *testing.T) {
	s := newTestDB(t)
	ctx := context.Background()

	goal, err := s.CreateGoal(ctx, "Learn Go", "#3B82F6")
	if err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}
	if goal.ID == "" {
		t.Error("expected ID to be set after insert")
	}
	if goal.Tasks == nil {
		t.Error("new goal must carry an empty task slice, not nil")
	}

	task, err := s.CreateTask(ctx, "Read Effective Go", goal.ID)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if task.GoalID != goal.ID {
		t.Errorf("GoalID = %q, want %q", task.GoalID, goal.ID)
	}
	if task.Completed {
		t.Error("new task must start incomplete")
	}

	goals, err := s.ListGoals(ctx)
	if err != nil {
		t.Fatalf("ListGoals failed: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("got %d goals, want 1", len(goals))
	}
	if len(goals[0].Tasks) != 1 || goals[0].Tasks[0].ID != task.ID {
		t.Errorf("tasks nested under goal = %+v", goals[0].Tasks)
	}
}

func TestCreateTaskUnknownGoal(t *testing.T) {
	s := newTestDB(t)

	_, err := s.CreateTask(context.Background(), "orphan", "no-such-goal")
	if !errors.Is(err, calendar.ErrGoalNotFound) {
		t.Errorf("error = %v, want ErrGoalNotFound", err)
	}
}
