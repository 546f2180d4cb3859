// handlers_results.go - Recent analysis result handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const maxRecentResults = 20

// HandleRecentResults returns recent analyses, newest first. The list is
// in-memory only and empties on restart.
func (h *Handler) HandleRecentResults(c echo.Context) error {
	return c.JSON(http.StatusOK, h.history.Recent(maxRecentResults))
}

// HandleGetResult returns a single analysis record by ID.
func (h *Handler) HandleGetResult(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return NewValidationError("id")
	}

	rec, ok := h.history.Get(id)
	if !ok {
		return NewNotFoundError("result", id)
	}

	return c.JSON(http.StatusOK, rec)
}
