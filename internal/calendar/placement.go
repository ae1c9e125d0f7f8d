package calendar

import (
	"time"
)

// DragPayload is the item currently held by a drag session. Exactly
// one concrete type exists per draggable thing; drop handling switches
// on the type instead of inspecting loose key-value pairs.
type DragPayload interface {
	isDragPayload()
}

// EventDrag carries an existing event being repositioned.
type EventDrag struct {
	Event Event
}

// TaskDrag carries a task reference plus the presentation metadata it
// inherits from its goal.
type TaskDrag struct {
	TaskID    string
	TaskName  string
	GoalColor string
}

func (EventDrag) isDragPayload() {}
func (TaskDrag) isDragPayload()  {}

// DropAction is the resolved outcome of a drop: either an update to
// an existing event or a draft to be created.
type DropAction interface {
	isDropAction()
}

// Reposition updates an existing event's timing in place.
type Reposition struct {
	Event Event // timing already rewritten, all other fields untouched
}

// Materialize creates a new event from a dropped task.
type Materialize struct {
	TaskID string
	Draft  EventDraft
}

func (Reposition) isDropAction() {}
func (Materialize) isDropAction() {}

// Resolve turns a drop at cell (day, hour) with a fractional offset
// into a concrete action. A nil payload means nothing was being
// dragged; the drop is ignored and Resolve returns (nil, nil).
func Resolve(payload DragPayload, day time.Time, hour int, fraction float64) (DropAction, error) {
	switch p := payload.(type) {
	case nil:
		return nil, nil
	case EventDrag:
		moved, err := RepositionEvent(p.Event, day, hour, fraction)
		if err != nil {
			return nil, err
		}
		return Reposition{Event: moved}, nil
	case TaskDrag:
		start, err := CellStart(day, hour, fraction)
		if err != nil {
			return nil, err
		}
		startClock := Clock(start.Hour(), start.Minute())
		endClock := Clock(start.Hour()+1, start.Minute())
		draft, err := MaterializeTask(p.TaskID, p.TaskName, day, startClock, endClock, p.GoalColor)
		if err != nil {
			return nil, err
		}
		return Materialize{TaskID: p.TaskID, Draft: draft}, nil
	default:
		return nil, nil
	}
}

// RepositionEvent computes the timing of an event dropped on cell
// (day, hour). The event's original duration is preserved exactly;
// only start and end change.
func RepositionEvent(e Event, day time.Time, hour int, fraction float64) (Event, error) {
	start, err := CellStart(day, hour, fraction)
	if err != nil {
		return Event{}, err
	}
	duration := e.EndTime.Sub(e.StartTime)
	e.StartTime = start
	e.EndTime = start.Add(duration)
	return e, nil
}

// MaterializeTask turns a dropped task into an event draft. Times are
// wall-clock "HH:MM" strings combined with the drop day. Tasks carry
// no category, so the draft defaults to work; the goal's color is set
// as the explicit override so it wins over the category color. The
// source task is read-only here: materialization never deletes or
// marks it.
func MaterializeTask(taskID, taskName string, day time.Time, startTime, endTime, goalColor string) (EventDraft, error) {
	if taskName == "" {
		return EventDraft{}, ErrEmptyTitle
	}
	start, err := At(day, startTime)
	if err != nil {
		return EventDraft{}, err
	}
	end, err := At(day, endTime)
	if err != nil {
		return EventDraft{}, err
	}
	if !end.After(start) {
		return EventDraft{}, ErrEndBeforeStart
	}
	return EventDraft{
		Title:     taskName,
		Category:  CategoryWork,
		StartTime: start,
		EndTime:   end,
		Color:     goalColor,
	}, nil
}

// EventsInCell filters the events rendering in cell (day, hour),
// preserving input order.
func EventsInCell(events []Event, day time.Time, hour int) []Event {
	var result []Event
	for _, e := range events {
		if e.InCell(day, hour) {
			result = append(result, e)
		}
	}
	return result
}
