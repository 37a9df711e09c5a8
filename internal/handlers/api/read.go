package api

import (
	"errors"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v3"

	"feedreader/internal/db"
	"feedreader/internal/metrics"
)

// ReadToggleHandler flips an article's read flag.
type ReadToggleHandler struct {
	db *db.DB
}

// NewReadToggleHandler creates a new read toggle handler.
func NewReadToggleHandler(database *db.DB) *ReadToggleHandler {
	return &ReadToggleHandler{db: database}
}

// Toggle handles GET /toggle-read/{link}. The client doubly URL-encodes the
// article link so arbitrary characters (including % and /) survive as a
// single path segment; the router strips one layer, this handler the other.
func (h *ReadToggleHandler) Toggle(c fiber.Ctx) error {
	link, err := decodeLink(c.Params("*"))
	if err != nil {
		metrics.RecordToggle(metrics.ToggleRead, metrics.OutcomeError)
		return failure(c, fiber.StatusBadRequest, "malformed article link", err)
	}

	read, err := h.db.ToggleArticleRead(c.Context(), link)
	if err != nil {
		if errors.Is(err, db.ErrArticleNotFound) {
			metrics.RecordToggle(metrics.ToggleRead, metrics.OutcomeNotFound)
			return failure(c, fiber.StatusNotFound, "article not found", err)
		}
		metrics.RecordToggle(metrics.ToggleRead, metrics.OutcomeError)
		return failure(c, fiber.StatusInternalServerError, "failed to toggle read state", err)
	}

	metrics.RecordToggle(metrics.ToggleRead, metrics.OutcomeOK)
	return c.JSON(fiber.Map{
		"success": true,
		"read":    read,
	})
}

// decodeLink removes the encoding layer left after the router's own percent
// decoding and validates that the result looks like an article link.
func decodeLink(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("empty link")
	}

	link, err := url.PathUnescape(raw)
	if err != nil {
		return "", err
	}

	if !strings.HasPrefix(link, "http://") && !strings.HasPrefix(link, "https://") {
		return "", errors.New("link is not an absolute URL")
	}
	return link, nil
}
