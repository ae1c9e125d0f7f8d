// Package store holds the client-side cache of events and goals and
// keeps it synchronized with the persistence API. Mutations are
// applied to the cache only after the API confirms them: the cache
// may be stale while a call is in flight, but it never shows
// speculative data that could be rolled back.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"weekplan/internal/calendar"
	"weekplan/internal/logging"
)

// Client is the persistence collaborator the store synchronizes
// against. Implementations issue one HTTP call per method.
type Client interface {
	ListEvents(ctx context.Context) ([]calendar.Event, error)
	CreateEvent(ctx context.Context, draft calendar.EventDraft) (calendar.Event, error)
	UpdateEvent(ctx context.Context, event calendar.Event) (calendar.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	ListGoals(ctx context.Context) ([]calendar.Goal, error)
	CreateGoal(ctx context.Context, name, color string) (calendar.Goal, error)
	CreateTask(ctx context.Context, name, goalID string) (calendar.Task, error)
}

// SliceStatus tracks the fetch state of one cache slice.
type SliceStatus struct {
	Loading bool
	Err     string // last error message, empty when the last call succeeded
}

// State is a snapshot of the cached entities. UI code reads snapshots
// and dispatches commands; it never mutates the cache directly.
type State struct {
	Events       []calendar.Event
	Goals        []calendar.Goal
	EventsStatus SliceStatus
	GoalsStatus  SliceStatus
}

// Store owns the process-wide cache. All exported methods are safe
// for concurrent use; the mutex serializes cache access the way the
// original single-threaded event loop serialized its handlers.
type Store struct {
	client Client
	log    *logging.Logger

	mu    sync.Mutex
	state State

	// Fetch sequencing: each fetch takes a ticket when it starts and
	// a response is discarded if a younger fetch already applied.
	// Without this a slow early fetch could overwrite a fresher one.
	eventsSeq, eventsApplied uint64
	goalsSeq, goalsApplied   uint64
}

// New creates a store backed by the given client.
func New(client Client, log *logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{client: client, log: log}
}

// Snapshot returns a copy of the current state. The slices are copied
// so callers can hold a snapshot across later mutations.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

func (st State) clone() State {
	out := st
	out.Events = make([]calendar.Event, len(st.Events))
	copy(out.Events, st.Events)
	out.Goals = make([]calendar.Goal, len(st.Goals))
	for i, g := range st.Goals {
		tasks := make([]calendar.Task, len(g.Tasks))
		copy(tasks, g.Tasks)
		g.Tasks = tasks
		out.Goals[i] = g
	}
	return out
}

// FetchEvents replaces the events cache from the API. On failure the
// prior cache is preserved and the error message recorded.
func (s *Store) FetchEvents(ctx context.Context) error {
	s.mu.Lock()
	s.eventsSeq++
	seq := s.eventsSeq
	s.state.EventsStatus.Loading = true
	s.state.EventsStatus.Err = ""
	s.mu.Unlock()

	events, err := s.client.ListEvents(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.EventsStatus.Loading = false
	if err != nil {
		s.state.EventsStatus.Err = fmt.Sprintf("failed to fetch events: %v", err)
		s.log.Errorw("fetch events failed", "err", err)
		return fmt.Errorf("fetching events: %w", err)
	}
	if seq < s.eventsApplied {
		// A younger fetch already landed; this response is stale.
		return nil
	}
	s.eventsApplied = seq
	s.state.Events = events
	return nil
}

// FetchGoals replaces the goals cache (tasks arrive nested per goal)
// from the API. On failure the prior cache is preserved and the error
// message recorded.
func (s *Store) FetchGoals(ctx context.Context) error {
	s.mu.Lock()
	s.goalsSeq++
	seq := s.goalsSeq
	s.state.GoalsStatus.Loading = true
	s.state.GoalsStatus.Err = ""
	s.mu.Unlock()

	goals, err := s.client.ListGoals(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.GoalsStatus.Loading = false
	if err != nil {
		s.state.GoalsStatus.Err = fmt.Sprintf("failed to fetch goals: %v", err)
		s.log.Errorw("fetch goals failed", "err", err)
		return fmt.Errorf("fetching goals: %w", err)
	}
	if seq < s.goalsApplied {
		return nil
	}
	s.goalsApplied = seq
	s.state.Goals = goals
	return nil
}

// CreateEvent submits a draft and appends the created event to the
// cache once the API confirms it.
func (s *Store) CreateEvent(ctx context.Context, draft calendar.EventDraft) (calendar.Event, error) {
	if err := draft.Validate(); err != nil {
		return calendar.Event{}, err
	}

	created, err := s.client.CreateEvent(ctx, draft)
	if err != nil {
		s.recordEventsErr("failed to create event", err)
		return calendar.Event{}, fmt.Errorf("creating event: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.EventsStatus.Err = ""
	s.state.Events = append(s.state.Events, created)
	s.log.Infow("event created", "id", created.ID, "title", created.Title)
	return created, nil
}

// UpdateEvent submits a full event and replaces the cached copy by id
// on confirmation. An id missing from the cache leaves the cache
// unchanged. The explicit color override, if present, travels through
// verbatim.
func (s *Store) UpdateEvent(ctx context.Context, event calendar.Event) (calendar.Event, error) {
	if event.Title == "" {
		return calendar.Event{}, calendar.ErrEmptyTitle
	}

	updated, err := s.client.UpdateEvent(ctx, event)
	if err != nil {
		s.recordEventsErr("failed to update event", err)
		return calendar.Event{}, fmt.Errorf("updating event: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.EventsStatus.Err = ""
	for i := range s.state.Events {
		if s.state.Events[i].ID == updated.ID {
			s.state.Events[i] = updated
			break
		}
	}
	return updated, nil
}

// DeleteEvent removes the event with the given id from the cache once
// the API confirms the delete. Other events keep their relative order.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	if err := s.client.DeleteEvent(ctx, id); err != nil {
		s.recordEventsErr("failed to delete event", err)
		return fmt.Errorf("deleting event: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.EventsStatus.Err = ""
	kept := s.state.Events[:0]
	for _, e := range s.state.Events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.state.Events = kept
	return nil
}

// CreateGoal creates a goal and appends it to the cache.
func (s *Store) CreateGoal(ctx context.Context, name, color string) (calendar.Goal, error) {
	if name == "" {
		return calendar.Goal{}, calendar.ErrEmptyName
	}

	created, err := s.client.CreateGoal(ctx, name, color)
	if err != nil {
		s.recordGoalsErr("failed to create goal", err)
		return calendar.Goal{}, fmt.Errorf("creating goal: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.GoalsStatus.Err = ""
	s.state.Goals = append(s.state.Goals, created)
	s.log.Infow("goal created", "id", created.ID, "name", created.Name)
	return created, nil
}

// CreateTask creates a task under a goal and appends it into the
// cached parent, looked up by goal id.
func (s *Store) CreateTask(ctx context.Context, name, goalID string) (calendar.Task, error) {
	if name == "" {
		return calendar.Task{}, calendar.ErrEmptyName
	}
	if goalID == "" {
		return calendar.Task{}, calendar.ErrMissingGoal
	}

	created, err := s.client.CreateTask(ctx, name, goalID)
	if err != nil {
		s.recordGoalsErr("failed to create task", err)
		return calendar.Task{}, fmt.Errorf("creating task: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.GoalsStatus.Err = ""
	for i := range s.state.Goals {
		if s.state.Goals[i].ID == created.GoalID {
			s.state.Goals[i].Tasks = append(s.state.Goals[i].Tasks, created)
			break
		}
	}
	return created, nil
}

// CreateEventFromTask materializes a dropped task as a new event.
// The source task is left untouched.
func (s *Store) CreateEventFromTask(ctx context.Context, taskID, taskName string, day time.Time, startTime, endTime, goalColor string) (calendar.Event, error) {
	draft, err := calendar.MaterializeTask(taskID, taskName, day, startTime, endTime, goalColor)
	if err != nil {
		return calendar.Event{}, err
	}
	return s.CreateEvent(ctx, draft)
}

// Drop resolves a drag-and-drop release on cell (day, hour) and
// dispatches the resulting command. A nil payload is ignored and
// leaves the state unchanged.
func (s *Store) Drop(ctx context.Context, payload calendar.DragPayload, day time.Time, hour int, fraction float64) error {
	action, err := calendar.Resolve(payload, day, hour, fraction)
	if err != nil {
		return err
	}
	switch a := action.(type) {
	case nil:
		return nil
	case calendar.Reposition:
		_, err := s.UpdateEvent(ctx, a.Event)
		return err
	case calendar.Materialize:
		_, err := s.CreateEvent(ctx, a.Draft)
		return err
	default:
		return nil
	}
}

func (s *Store) recordEventsErr(msg string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.EventsStatus.Err = fmt.Sprintf("%s: %v", msg, err)
	s.log.Errorw(msg, "err", err)
}

func (s *Store) recordGoalsErr(msg string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.GoalsStatus.Err = fmt.Sprintf("%s: %v", msg, err)
	s.log.Errorw(msg, "err", err)
}
