// README: Traveler preference endpoints.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"columbus/internal/http/middleware"
	"columbus/internal/modules/user"
	"columbus/internal/types"
)

type PreferencesHandler struct {
	users *user.Service
}

func NewPreferencesHandler(svc *user.Service) *PreferencesHandler {
	return &PreferencesHandler{users: svc}
}

// Get handles GET /api/users/preferences. A user with nothing saved gets an
// empty profile rather than a 404.
func (h *PreferencesHandler) Get(c *gin.Context) {
	p, err := h.users.GetByUser(c.Request.Context(), types.ID(middleware.UID(c)))
	if errors.Is(err, user.ErrNotFound) {
		writeJSON(c, http.StatusOK, &user.Preferences{})
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, p)
}

// Put handles PUT /api/users/preferences.
func (h *PreferencesHandler) Put(c *gin.Context) {
	var p user.Preferences
	if err := c.ShouldBindJSON(&p); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.users.Save(c.Request.Context(), types.ID(middleware.UID(c)), &p); err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"saved": true})
}
