package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bondbuddies/backend/internal/models"
	"github.com/bondbuddies/backend/internal/repositories"
	"github.com/bondbuddies/backend/internal/services"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserHandler handles user profile HTTP requests
type UserHandler struct {
	userRepository   repositories.UserRepository
	promptRepository repositories.PromptRepository
	statsService     *services.StatsService
	recorder         *services.ActionRecorder
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, promptRepo repositories.PromptRepository, statsService *services.StatsService, recorder *services.ActionRecorder) *UserHandler {
	return &UserHandler{
		userRepository:   userRepo,
		promptRepository: promptRepo,
		statsService:     statsService,
		recorder:         recorder,
	}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/me", h.GetMe)
	g.PUT("/users/me", h.UpdateMe)
	g.GET("/users/me/activity", h.GetMyActivity)
	g.GET("/users/:id", h.GetUser)
	g.GET("/users/:id/stats", h.GetUserStats)
	g.GET("/users/search", h.SearchUsers)
	g.GET("/prompts", h.GetPrompts)
}

// GetMe returns the current user's profile
func (h *UserHandler) GetMe(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	user, err := h.userRepository.GetUserByID(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe updates the current user's editable profile fields
func (h *UserHandler) UpdateMe(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.GetUserByID(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, user)
}

// GetMyActivity returns the current user's recent engagement actions
func (h *UserHandler) GetMyActivity(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	actions, err := h.recorder.Recent(currentUserID, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, actions)
}

// GetUser returns a user's public profile
func (h *UserHandler) GetUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	user, err := h.userRepository.GetUserByID(uint(userID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, user.ToCompact())
}

// GetUserStats returns a user's engagement statistics
func (h *UserHandler) GetUserStats(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	stats, err := h.statsService.UserStats(c.Request().Context(), uint(userID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}

// SearchUsers searches users by username
func (h *UserHandler) SearchUsers(c echo.Context) error {
	term := c.QueryParam("q")
	if term == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing search term")
	}

	users, err := h.userRepository.SearchUsers(term)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

// GetPrompts returns post prompts for the current user's age group, or the
// full catalog with ?all=true
func (h *UserHandler) GetPrompts(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if c.QueryParam("all") == "true" {
		prompts, err := h.promptRepository.ListPrompts()
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, prompts)
	}

	user, err := h.userRepository.GetUserByID(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	prompts, err := h.promptRepository.PromptsForAgeGroup(user.AgeGroup, 5)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, prompts)
}
