package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/austcms/clubpay/internal/pkg/logger"
	"github.com/austcms/clubpay/internal/pkg/middleware"
	"github.com/austcms/clubpay/internal/pkg/models"
	"github.com/austcms/clubpay/internal/utils"
	"github.com/austcms/clubpay/services/payment"
)

// ClubHandler serves club reads and the pending-approval list
type ClubHandler struct {
	clubs payment.ClubRepo
	cfg   *models.Config
}

// NewClubHandler creates a new club handler
func NewClubHandler(clubs payment.ClubRepo, cfg *models.Config) *ClubHandler {
	return &ClubHandler{
		clubs: clubs,
		cfg:   cfg,
	}
}

// RegisterRoutes registers the club routes
func (h *ClubHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/v1/clubs", middleware.JWTAuthMiddleware(h.cfg.JWT))

	g.GET("/:clubId", h.GetClub)
	g.GET("/:clubId/pending", h.GetPendingMembers)
}

// GetClub handles club retrieval requests
func (h *ClubHandler) GetClub(c echo.Context) error {
	clubID := c.Param("clubId")

	club, err := h.clubs.GetClubByID(c.Request().Context(), clubID)
	if err != nil {
		if errors.Is(err, payment.ErrClubNotFound) {
			return utils.NotFoundResponse(c, "Club not found")
		}
		logger.Error("Failed to retrieve club",
			logger.String("club_id", clubID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve club")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Club retrieved successfully", club)
}

// GetPendingMembers handles pending-approval list requests
func (h *ClubHandler) GetPendingMembers(c echo.Context) error {
	clubID := c.Param("clubId")

	members, err := h.clubs.GetPendingMembers(c.Request().Context(), clubID)
	if err != nil {
		logger.Error("Failed to retrieve pending members",
			logger.String("club_id", clubID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve pending members")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Pending members retrieved successfully", members)
}
