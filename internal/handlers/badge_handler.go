package handlers

import (
	"net/http"
	"strconv"

	"github.com/bondbuddies/backend/internal/models"
	"github.com/bondbuddies/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// BadgeHandler handles badge-related HTTP requests
type BadgeHandler struct {
	badgeService *services.BadgeService
}

// NewBadgeHandler creates a new BadgeHandler
func NewBadgeHandler(badgeService *services.BadgeService) *BadgeHandler {
	return &BadgeHandler{badgeService: badgeService}
}

// RegisterBadgeRoutes registers badge-related routes
func (h *BadgeHandler) RegisterBadgeRoutes(g *echo.Group) {
	g.GET("/badges", h.GetBadges)
	g.GET("/users/me/badges", h.GetMyBadges)
	g.POST("/users/me/badges/check", h.CheckBadges)
	g.POST("/users/:id/badges/:badge_id", h.AwardBadge)
}

// BadgeProgress is a user badge with derived completion info
type BadgeProgress struct {
	models.UserBadgeView
	Completed          bool `json:"completed"`
	ProgressPercentage int  `json:"progress_percentage"`
}

// GetBadges lists all badge definitions
func (h *BadgeHandler) GetBadges(c echo.Context) error {
	badges, err := h.badgeService.ListBadges()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, badges)
}

// GetMyBadges lists the current user's badges with progress, earned first
func (h *BadgeHandler) GetMyBadges(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	views, err := h.badgeService.UserBadges(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	progress := make([]BadgeProgress, len(views))
	for i, v := range views {
		ub := models.UserBadge{CurrentProgress: v.CurrentProgress, EarnedDate: v.EarnedDate}
		progress[i] = BadgeProgress{
			UserBadgeView:      v,
			Completed:          services.IsCompleted(&ub, &v.Badge),
			ProgressPercentage: services.ProgressPercentage(&ub, &v.Badge),
		}
	}
	return c.JSON(http.StatusOK, progress)
}

// CheckBadges re-evaluates the current user's badge eligibility
func (h *BadgeHandler) CheckBadges(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	awarded, err := h.badgeService.AwardEligibleBadges(currentUserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"awarded": awarded})
}

// AwardBadge manually awards a badge to a user (curated badges)
func (h *BadgeHandler) AwardBadge(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}
	badgeID, err := strconv.ParseUint(c.Param("badge_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid badge ID")
	}

	awarded, err := h.badgeService.AwardManual(uint(userID), uint(badgeID))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !awarded {
		return echo.NewHTTPError(http.StatusConflict, "Badge not found or already awarded")
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true})
}
