package handler

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"mood-movie-discovery/internal/middleware"
	"mood-movie-discovery/internal/models"
	"mood-movie-discovery/internal/service"
)

// LibraryHandler handles HTTP requests for watchlist and mood journal.
type LibraryHandler struct {
	svc *service.LibraryService
}

// NewLibraryHandler creates a new LibraryHandler.
func NewLibraryHandler(svc *service.LibraryService) *LibraryHandler {
	return &LibraryHandler{svc: svc}
}

// Watchlist returns the user's saved movies.
// @Summary Get watchlist
// @Tags watchlist
// @Produce json
// @Param mood query string false "Filter by the mood the movie was saved under"
// @Success 200 {array} models.WatchlistEntry
// @Failure 500 {object} ErrorResponse
// @Router /watchlist [get]
func (h *LibraryHandler) Watchlist(c fiber.Ctx) error {
	entries, err := h.svc.Watchlist(c.Context(), middleware.UserScope(c), c.Query("mood"))
	if err != nil {
		slog.Error("failed to get watchlist", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve watchlist",
		})
	}
	return c.JSON(entries)
}

// AddToWatchlist saves a movie.
// @Summary Add a movie to the watchlist
// @Tags watchlist
// @Accept json
// @Produce json
// @Param movie body models.AddWatchlistRequest true "Movie to save"
// @Success 201 {object} models.WatchlistEntry
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /watchlist [post]
func (h *LibraryHandler) AddToWatchlist(c fiber.Ctx) error {
	var req models.AddWatchlistRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request body",
		})
	}
	if req.ID <= 0 || req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "movie id and title are required",
		})
	}

	entry, err := h.svc.AddToWatchlist(c.Context(), middleware.UserScope(c), req)
	if err != nil {
		slog.Error("failed to add to watchlist", "movie_id", req.ID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to save movie",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// RemoveFromWatchlist deletes a saved movie.
// @Summary Remove a movie from the watchlist
// @Tags watchlist
// @Produce json
// @Param movieID path int true "Movie ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /watchlist/{movieID} [delete]
func (h *LibraryHandler) RemoveFromWatchlist(c fiber.Ctx) error {
	movieID, err := strconv.Atoi(c.Params("movieID"))
	if err != nil || movieID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid movie ID",
		})
	}

	if err := h.svc.RemoveFromWatchlist(c.Context(), middleware.UserScope(c), movieID); err != nil {
		slog.Error("failed to remove from watchlist", "movie_id", movieID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to remove movie",
		})
	}
	return c.JSON(fiber.Map{"message": "removed"})
}

// JournalEntries returns the user's mood journal.
// @Summary Get mood journal entries
// @Tags journal
// @Produce json
// @Param mood query string false "Filter by mood"
// @Success 200 {array} models.MoodEntry
// @Failure 500 {object} ErrorResponse
// @Router /journal [get]
func (h *LibraryHandler) JournalEntries(c fiber.Ctx) error {
	entries, err := h.svc.JournalEntries(c.Context(), middleware.UserScope(c), c.Query("mood"))
	if err != nil {
		slog.Error("failed to get journal entries", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve journal entries",
		})
	}
	return c.JSON(entries)
}

// AddJournalEntry creates a journal entry.
// @Summary Add a mood journal entry
// @Tags journal
// @Accept json
// @Produce json
// @Param entry body models.AddJournalEntryRequest true "Journal entry"
// @Success 201 {object} models.MoodEntry
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /journal [post]
func (h *LibraryHandler) AddJournalEntry(c fiber.Ctx) error {
	var req models.AddJournalEntryRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request body",
		})
	}
	if req.Mood == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "mood is required",
		})
	}

	entry, err := h.svc.AddJournalEntry(c.Context(), middleware.UserScope(c), req)
	if err != nil {
		slog.Error("failed to add journal entry", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to save journal entry",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// DeleteJournalEntry removes a journal entry.
// @Summary Delete a mood journal entry
// @Tags journal
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /journal/{id} [delete]
func (h *LibraryHandler) DeleteJournalEntry(c fiber.Ctx) error {
	entryID := c.Params("id")
	if entryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid entry ID",
		})
	}

	if err := h.svc.DeleteJournalEntry(c.Context(), middleware.UserScope(c), entryID); err != nil {
		slog.Error("failed to delete journal entry", "id", entryID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to delete journal entry",
		})
	}
	return c.JSON(fiber.Map{"message": "deleted"})
}

// UserData returns a raw per-user collection.
// @Summary Get raw user data
// @Tags userdata
// @Produce json
// @Param type query string true "Collection" Enums(watchlist,moodEntries)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /user-data [get]
func (h *LibraryHandler) UserData(c fiber.Ctx) error {
	data, err := h.svc.UserData(c.Context(), middleware.UserScope(c), c.Query("type"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCollection) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: err.Error(),
			})
		}
		slog.Error("failed to get user data", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve user data",
		})
	}
	return c.JSON(fiber.Map{"data": data})
}
