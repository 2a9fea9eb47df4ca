package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"mood-movie-discovery/internal/discover"
	"mood-movie-discovery/internal/middleware"
	"mood-movie-discovery/internal/models"
	"mood-movie-discovery/internal/service"
	"mood-movie-discovery/internal/tmdb"
)

// DiscoveryHandler handles HTTP requests for mood-driven discovery.
type DiscoveryHandler struct {
	svc *service.DiscoveryService
}

// NewDiscoveryHandler creates a new DiscoveryHandler.
func NewDiscoveryHandler(svc *service.DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{svc: svc}
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health returns service health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *DiscoveryHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "mood-movie-discovery",
	})
}

// Discover runs a mood search.
// @Summary Search movies by mood
// @Tags discovery
// @Accept json
// @Produce json
// @Param selection body models.FilterSelection true "Filter selection"
// @Success 200 {object} models.DiscoverResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /discover [post]
func (h *DiscoveryHandler) Discover(c fiber.Ctx) error {
	var sel models.FilterSelection
	if err := c.Bind().JSON(&sel); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request body",
		})
	}

	// Client input is rejected before any upstream call.
	switch sel.CombineMode {
	case "", models.CombineOR, models.CombineAND:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: `combine_mode must be "or" or "and"`,
		})
	}
	for _, d := range sel.Decades {
		if _, _, err := discover.ParseDecade(d); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "invalid decade token: " + d,
			})
		}
	}

	resp, err := h.svc.Discover(c.Context(), middleware.UserScope(c), sel)
	if err != nil {
		if errors.Is(err, tmdb.ErrNotConfigured) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
				Error: "movie search service unavailable",
			})
		}
		slog.Error("mood search failed", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "movie search failed, please try again",
		})
	}

	return c.JSON(resp)
}

// Lists returns a trending/popular/top-rated list.
// @Summary Get a fixed movie list
// @Tags discovery
// @Produce json
// @Param list query string false "List type" Enums(trending,popular,top_rated) default(trending)
// @Success 200 {object} service.ListResponse
// @Failure 502 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /lists [get]
func (h *DiscoveryHandler) Lists(c fiber.Ctx) error {
	listType := c.Query("list", tmdb.ListTrending)

	resp, err := h.svc.FetchList(c.Context(), listType)
	if err != nil {
		if errors.Is(err, tmdb.ErrNotConfigured) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
				Error: "movie search service unavailable",
			})
		}
		slog.Error("failed to fetch list", "list", listType, "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "failed to retrieve movie list, please try again",
		})
	}

	return c.JSON(resp)
}

// CuratedPath returns movies for a predefined discovery experience.
// @Summary Get a curated path
// @Tags discovery
// @Produce json
// @Param id path string true "Curated path ID"
// @Success 200 {object} service.PathResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /paths/{id} [get]
func (h *DiscoveryHandler) CuratedPath(c fiber.Ctx) error {
	pathID := c.Params("id")

	resp, err := h.svc.CuratedPath(c.Context(), pathID)
	if err != nil {
		if errors.Is(err, service.ErrPathNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "curated path not found",
			})
		}
		if errors.Is(err, tmdb.ErrNotConfigured) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
				Error: "movie search service unavailable",
			})
		}
		slog.Error("failed to fetch curated path", "path", pathID, "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error: "failed to retrieve curated path, please try again",
		})
	}

	return c.JSON(resp)
}
