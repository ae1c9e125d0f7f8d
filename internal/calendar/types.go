// Package calendar defines the core domain types for weekplan:
// events on the weekly grid, goals, and the tasks attached to them.
package calendar

import (
	"errors"
	"time"
)

// Validation errors.
var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrInvalidCategory   = errors.New("unknown event category")
	ErrEndBeforeStart    = errors.New("end time must be after start time")
	ErrMissingGoal       = errors.New("task must reference a goal")
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
)

// Domain errors.
var (
	ErrEventNotFound = errors.New("event not found")
	ErrGoalNotFound  = errors.New("goal not found")
)

// Category classifies an event for default coloring.
type Category string

const (
	CategoryExercise Category = "exercise"
	CategoryEating   Category = "eating"
	CategoryWork     Category = "work"
	CategoryRelax    Category = "relax"
	CategoryFamily   Category = "family"
	CategorySocial   Category = "social"
	CategoryOther    Category = "other"
)

// Categories lists every valid category. Order is the display order.
var Categories = []Category{
	CategoryExercise,
	CategoryEating,
	CategoryWork,
	CategoryRelax,
	CategoryFamily,
	CategorySocial,
	CategoryOther,
}

// Valid returns true if the category is a known value.
func (c Category) Valid() bool {
	switch c {
	case CategoryExercise, CategoryEating, CategoryWork, CategoryRelax,
		CategoryFamily, CategorySocial, CategoryOther:
		return true
	default:
		return false
	}
}

// Event is a concrete scheduled occurrence on the week grid.
// The ID is assigned by the persistence layer and is treated as an
// opaque string everywhere else.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    Category  `json:"category"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Color       string    `json:"color,omitempty"` // explicit override, wins over category color
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// EventDraft is an event before the persistence layer has assigned it
// an identity. Drafts are what slot clicks and task drops produce.
type EventDraft struct {
	Title       string    `json:"title"`
	Category    Category  `json:"category"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Color       string    `json:"color,omitempty"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
}

// NewEventDraft creates a draft with validation.
func NewEventDraft(title string, category Category, start, end time.Time) (EventDraft, error) {
	if title == "" {
		return EventDraft{}, ErrEmptyTitle
	}
	if !category.Valid() {
		return EventDraft{}, ErrInvalidCategory
	}
	if !end.After(start) {
		return EventDraft{}, ErrEndBeforeStart
	}
	return EventDraft{
		Title:     title,
		Category:  category,
		StartTime: start,
		EndTime:   end,
	}, nil
}

// Validate checks the invariants that hold for any draft.
func (d EventDraft) Validate() error {
	if d.Title == "" {
		return ErrEmptyTitle
	}
	if !d.Category.Valid() {
		return ErrInvalidCategory
	}
	if !d.EndTime.After(d.StartTime) {
		return ErrEndBeforeStart
	}
	return nil
}

// Duration returns the event length.
func (e Event) Duration() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}

// DisplayColor returns the explicit color if set, otherwise the color
// derived from the event's category.
func (e Event) DisplayColor() string {
	if e.Color != "" {
		return e.Color
	}
	return e.Category.Color()
}

// Goal groups tasks and supplies the default color for events created
// from them. Tasks are persisted independently and joined in for
// listing; the slice here is a read-side convenience.
type Goal struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Tasks     []Task    `json:"tasks"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// Task is an actionable item under a goal. Dropping it on the grid
// materializes an event; the task itself is never modified by that.
type Task struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	GoalID    string    `json:"goalId"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}
