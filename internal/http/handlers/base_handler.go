// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"columbus/internal/modules/chat"
	"columbus/internal/modules/itinerary"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeServiceError maps module sentinel errors to HTTP status codes.
// Generation-path failures never reach here; the services absorb them.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, itinerary.ErrBadRequest), errors.Is(err, chat.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, itinerary.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, itinerary.ErrForbidden):
		writeError(c, http.StatusForbidden, "you don't have permission to access this itinerary")
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
