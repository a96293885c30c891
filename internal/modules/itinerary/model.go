// README: Itinerary request/plan data model and validation.
package itinerary

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"columbus/internal/types"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("itinerary not found")
	ErrForbidden  = errors.New("forbidden")
)

const (
	MinDurationDays = 1
	MaxDurationDays = 30

	StatusDraft     = "draft"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
)

// GenerateRequest is a validated trip-plan request. Preferences is an opaque
// bag forwarded to the model verbatim.
type GenerateRequest struct {
	Destination  string         `json:"destination"`
	DurationDays int            `json:"duration_days"`
	Budget       float64        `json:"budget"`
	Currency     string         `json:"budget_currency"`
	TravelStyle  string         `json:"travel_style"`
	StartDate    string         `json:"start_date,omitempty"`
	Preferences  map[string]any `json:"preferences,omitempty"`
}

// Validate rejects out-of-range requests before any external call is made.
// Currency defaults to USD when absent.
func (r *GenerateRequest) Validate() error {
	if strings.TrimSpace(r.Destination) == "" {
		return fmt.Errorf("%w: destination is required", ErrBadRequest)
	}
	if r.DurationDays < MinDurationDays || r.DurationDays > MaxDurationDays {
		return fmt.Errorf("%w: duration must be between %d and %d days", ErrBadRequest, MinDurationDays, MaxDurationDays)
	}
	if r.Budget <= 0 {
		return fmt.Errorf("%w: budget must be positive", ErrBadRequest)
	}
	if strings.TrimSpace(r.TravelStyle) == "" {
		return fmt.Errorf("%w: travel_style is required", ErrBadRequest)
	}
	if r.StartDate != "" {
		if _, err := time.Parse("2006-01-02", r.StartDate); err != nil {
			return fmt.Errorf("%w: start_date must be YYYY-MM-DD", ErrBadRequest)
		}
	}
	if r.Currency == "" {
		r.Currency = "USD"
	}
	return nil
}

// Plan is the structured itinerary, with field names matching the schema the
// model is prompted to produce.
type Plan struct {
	Title              string            `json:"title"`
	Destination        string            `json:"destination"`
	Overview           string            `json:"overview"`
	TotalEstimatedCost float64           `json:"total_estimated_cost"`
	Days               []DayPlan         `json:"days"`
	Tips               []string          `json:"tips"`
	EmergencyContacts  map[string]string `json:"emergency_contacts"`
	PackingList        []string          `json:"packing_list"`
}

type DayPlan struct {
	DayNumber      int             `json:"day_number"`
	Date           string          `json:"date"`
	Title          string          `json:"title"`
	Activities     []Activity      `json:"activities"`
	Meals          map[string]Meal `json:"meals"`
	Transportation string          `json:"transportation"`
	DailyCost      float64         `json:"daily_cost"`
}

type Activity struct {
	Time            string  `json:"time"`
	Activity        string  `json:"activity"`
	Location        string  `json:"location"`
	Description     string  `json:"description"`
	EstimatedCost   float64 `json:"estimated_cost"`
	DurationMinutes int     `json:"duration_minutes"`
}

type Meal struct {
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// Stored is a persisted plan plus ownership and lifecycle columns.
type Stored struct {
	ID              types.ID
	UserID          types.ID
	Title           string
	DestinationName string
	StartDate       *time.Time
	EndDate         *time.Time
	DurationDays    int
	BudgetTotal     float64
	BudgetCurrency  string
	TravelStyle     string
	Status          string
	Plan            Plan
	AIModelVersion  string
	IsPublic        bool
	ViewCount       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Summary is the compact form injected into chat prompts; never the full
// day-by-day payload, to bound prompt size.
type Summary struct {
	Destination  string
	DurationDays int
	TravelStyle  string
}
