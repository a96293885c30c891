// README: Itinerary endpoints (generate, get, update).
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"columbus/internal/http/middleware"
	"columbus/internal/modules/itinerary"
	"columbus/internal/types"
)

type ItineraryHandler struct {
	itineraries *itinerary.Service
}

func NewItineraryHandler(svc *itinerary.Service) *ItineraryHandler {
	return &ItineraryHandler{itineraries: svc}
}

// Generate handles POST /api/itineraries/generate.
// Model failures do not fail the request: a fallback plan is returned with 200.
func (h *ItineraryHandler) Generate(c *gin.Context) {
	var req itinerary.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	res, err := h.itineraries.Generate(c.Request.Context(), types.ID(middleware.UID(c)), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"itinerary_id": string(res.ID),
		"itinerary":    res.Plan,
		"created_at":   res.CreatedAt,
	})
}

// Get handles GET /api/itineraries/:id.
func (h *ItineraryHandler) Get(c *gin.Context) {
	it, err := h.itineraries.Get(c.Request.Context(), types.ID(middleware.UID(c)), types.ID(c.Param("id")))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"itinerary_id":     string(it.ID),
		"title":            it.Title,
		"destination_name": it.DestinationName,
		"start_date":       dateOrNil(it.StartDate),
		"end_date":         dateOrNil(it.EndDate),
		"duration_days":    it.DurationDays,
		"budget_total":     it.BudgetTotal,
		"budget_currency":  it.BudgetCurrency,
		"travel_style":     it.TravelStyle,
		"status":           it.Status,
		"itinerary_data":   it.Plan,
		"is_public":        it.IsPublic,
		"view_count":       it.ViewCount,
		"created_at":       it.CreatedAt,
		"updated_at":       it.UpdatedAt,
	})
}

// Update handles PUT /api/itineraries/:id.
func (h *ItineraryHandler) Update(c *gin.Context) {
	var req itinerary.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	updatedAt, err := h.itineraries.Update(c.Request.Context(), types.ID(middleware.UID(c)), types.ID(c.Param("id")), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"itinerary_id": c.Param("id"),
		"updated_at":   updatedAt,
	})
}

func dateOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}
