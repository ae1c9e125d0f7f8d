package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"weekplan/internal/calendar"
)

// createEventRequest is the POST /events and PUT /events/:id body:
// every event field minus the id.
type createEventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Category    string    `json:"category" validate:"required,oneof=exercise eating work relax family social other"`
	StartTime   time.Time `json:"startTime" validate:"required"`
	EndTime     time.Time `json:"endTime" validate:"required"`
	Color       string    `json:"color"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
}

type createGoalRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"required"`
}

type createTaskRequest struct {
	Name   string `json:"name" validate:"required"`
	GoalID string `json:"goalId" validate:"required"`
}

// messageResponse is the DELETE success body.
type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse is the failure body for every endpoint.
type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) listEvents(c echo.Context) error {
	events, err := s.store.ListEvents(c.Request().Context())
	if err != nil {
		s.log.Errorw("list events failed", "err", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to fetch events"})
	}
	return c.JSON(http.StatusOK, events)
}

func (s *Server) createEvent(c echo.Context) error {
	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	if !req.EndTime.After(req.StartTime) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: calendar.ErrEndBeforeStart.Error()})
	}

	draft := calendar.EventDraft{
		Title:       req.Title,
		Category:    calendar.Category(req.Category),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Color:       req.Color,
		Location:    req.Location,
		Description: req.Description,
	}

	created, err := s.store.CreateEvent(c.Request().Context(), draft)
	if err != nil {
		s.log.Errorw("create event failed", "err", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to create event"})
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateEvent(c echo.Context) error {
	id := c.Param("id")

	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	if !req.EndTime.After(req.StartTime) {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: calendar.ErrEndBeforeStart.Error()})
	}

	event := calendar.Event{
		ID:          id,
		Title:       req.Title,
		Category:    calendar.Category(req.Category),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Color:       req.Color,
		Location:    req.Location,
		Description: req.Description,
	}

	updated, err := s.store.UpdateEvent(c.Request().Context(), event)
	if err != nil {
		if errors.Is(err, calendar.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Event not found"})
		}
		s.log.Errorw("update event failed", "err", err, "id", id)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to update event"})
	}
	return c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteEvent(c echo.Context) error {
	id := c.Param("id")

	err := s.store.DeleteEvent(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, calendar.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "Event not found"})
		}
		s.log.Errorw("delete event failed", "err", err, "id", id)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to delete event"})
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Event deleted successfully"})
}

func (s *Server) listGoals(c echo.Context) error {
	goals, err := s.store.ListGoals(c.Request().Context())
	if err != nil {
		s.log.Errorw("list goals failed", "err", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to fetch goals"})
	}
	return c.JSON(http.StatusOK, goals)
}

func (s *Server) createGoal(c echo.Context) error {
	var req createGoalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := s.store.CreateGoal(c.Request().Context(), req.Name, req.Color)
	if err != nil {
		s.log.Errorw("create goal failed", "err", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to create goal"})
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) createTask(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := s.store.CreateTask(c.Request().Context(), req.Name, req.GoalID)
	if err != nil {
		if errors.Is(err, calendar.ErrGoalNotFound) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "Goal not found"})
		}
		s.log.Errorw("create task failed", "err", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to create task"})
	}
	return c.JSON(http.StatusCreated, created)
}
