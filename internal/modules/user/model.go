// README: Stored traveler preference row.
package user

import (
	"errors"
	"time"

	"columbus/internal/types"
)

var ErrNotFound = errors.New("preferences not found")

// Preferences is the per-user travel profile consulted during itinerary
// generation and editable over the API.
type Preferences struct {
	UserID                  types.ID  `json:"-"`
	TravelStyle             string    `json:"travel_style"`
	BudgetPreference        string    `json:"budget_preference"`
	AccommodationPreference string    `json:"accommodation_preference"`
	FoodPreference          string    `json:"food_preference"`
	ActivityPreferences     []string  `json:"activity_preferences"`
	DietaryRestrictions     string    `json:"dietary_restrictions"`
	UpdatedAt               time.Time `json:"updated_at"`
}
