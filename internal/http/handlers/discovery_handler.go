// README: Destination-suggestion and transportation endpoints (not yet implemented).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DiscoveryHandler struct{}

func NewDiscoveryHandler() *DiscoveryHandler {
	return &DiscoveryHandler{}
}

// SuggestDestinations handles GET /api/destinations/suggest.
// TODO: back this with curated destination rows plus a ranking prompt once
// the destinations table is populated.
func (h *DiscoveryHandler) SuggestDestinations(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"message": "destination suggestions not yet implemented",
		"data":    []any{},
	})
}

// TransportationRoutes handles GET /api/transportation/routes.
func (h *DiscoveryHandler) TransportationRoutes(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{
		"message": "transportation guidance not yet implemented",
		"data": gin.H{
			"origin":      c.Query("origin"),
			"destination": c.Query("destination"),
			"routes":      []any{},
		},
	})
}
