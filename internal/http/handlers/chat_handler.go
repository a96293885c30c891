// README: Chat endpoint.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"columbus/internal/http/middleware"
	"columbus/internal/modules/chat"
	"columbus/internal/types"
)

type ChatHandler struct {
	chat *chat.Service
}

func NewChatHandler(svc *chat.Service) *ChatHandler {
	return &ChatHandler{chat: svc}
}

type chatRequest struct {
	Message     string `json:"message"`
	SessionID   string `json:"session_id"`
	ItineraryID string `json:"itinerary_id"`
}

// Respond handles POST /api/chat. A model failure still answers 200 with the
// apology reply; only persistence failures surface as errors.
func (h *ChatHandler) Respond(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(c, http.StatusBadRequest, "message is required")
		return
	}

	var itineraryID *types.ID
	if req.ItineraryID != "" {
		id := types.ID(req.ItineraryID)
		itineraryID = &id
	}

	res, err := h.chat.Respond(c.Request.Context(), types.ID(middleware.UID(c)), req.Message, req.SessionID, itineraryID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"session_id": res.SessionID,
		"message":    res.Message,
		"timestamp":  res.Timestamp,
	})
}
