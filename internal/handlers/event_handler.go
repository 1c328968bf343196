package handlers

import (
	"net/http"
	"strconv"

	"github.com/bondbuddies/backend/internal/models"
	"github.com/bondbuddies/backend/internal/repositories"
	"github.com/bondbuddies/backend/internal/services"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	eventRepository repositories.EventRepository
	engagement      *services.EngagementService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventRepo repositories.EventRepository, engagement *services.EngagementService) *EventHandler {
	return &EventHandler{eventRepository: eventRepo, engagement: engagement}
}

// RegisterEventRoutes registers event-related routes
func (h *EventHandler) RegisterEventRoutes(g *echo.Group) {
	g.POST("/events", h.CreateEvent)
	g.GET("/events", h.GetEvents)
	g.GET("/events/:id", h.GetEvent)
	g.POST("/events/:id/join", h.JoinEvent)
	g.GET("/events/:id/participants", h.GetParticipants)
}

// CreateEvent creates a new event organized by the current user
func (h *EventHandler) CreateEvent(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.engagement.CreateEvent(currentUserID, req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, event)
}

// GetEvents lists events, optionally filtered by game type
func (h *EventHandler) GetEvents(c echo.Context) error {
	events, err := h.eventRepository.ListEvents(c.QueryParam("game_type"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, events)
}

// GetEvent returns a single event
func (h *EventHandler) GetEvent(c echo.Context) error {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid event ID")
	}

	event, err := h.eventRepository.GetEventByID(uint(eventID))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Event not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, event)
}

// JoinEvent registers the current user for an event
func (h *EventHandler) JoinEvent(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid event ID")
	}

	ok, err := h.engagement.JoinEvent(currentUserID, uint(eventID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !ok {
		return echo.NewHTTPError(http.StatusConflict, "Event not found, full, or already joined")
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true})
}

// GetParticipants lists participant user IDs for an event
func (h *EventHandler) GetParticipants(c echo.Context) error {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid event ID")
	}

	ids, err := h.eventRepository.ListParticipantIDs(uint(eventID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"event_id": eventID, "participants": ids})
}
