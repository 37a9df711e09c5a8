package api

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"feedreader/internal/db"
	"feedreader/internal/metrics"
)

// FavoriteToggleHandler flips a keyword's favorite flag.
type FavoriteToggleHandler struct {
	db *db.DB
}

// NewFavoriteToggleHandler creates a new favorite toggle handler.
func NewFavoriteToggleHandler(database *db.DB) *FavoriteToggleHandler {
	return &FavoriteToggleHandler{db: database}
}

// toggleFavoriteRequest is the POST body of /toggle-favorite-keyword.
type toggleFavoriteRequest struct {
	Keyword string `json:"keyword"`
}

// Toggle handles POST /toggle-favorite-keyword.
func (h *FavoriteToggleHandler) Toggle(c fiber.Ctx) error {
	var req toggleFavoriteRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		metrics.RecordToggle(metrics.ToggleFavorite, metrics.OutcomeError)
		return failure(c, fiber.StatusBadRequest, "malformed request body", err)
	}

	keyword := strings.ToLower(strings.TrimSpace(req.Keyword))
	if keyword == "" {
		metrics.RecordToggle(metrics.ToggleFavorite, metrics.OutcomeError)
		return failure(c, fiber.StatusBadRequest, "keyword is required", errors.New("empty keyword"))
	}

	favorite, err := h.db.ToggleFavoriteKeyword(c.Context(), keyword)
	if err != nil {
		metrics.RecordToggle(metrics.ToggleFavorite, metrics.OutcomeError)
		return failure(c, fiber.StatusInternalServerError, "failed to toggle favorite", err)
	}

	metrics.RecordToggle(metrics.ToggleFavorite, metrics.OutcomeOK)
	return c.JSON(fiber.Map{
		"success":  true,
		"favorite": favorite,
	})
}
