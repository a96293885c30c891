// README: Deterministic prompt rendering for itinerary generation.
package itinerary

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"columbus/internal/modules/user"
)

// BuildPrompt renders the full generation instruction for a validated request.
// The output schema is communicated as prose; extraction handles whatever the
// model actually returns. Identical inputs render byte-identical text: the
// preference bag is serialized with sorted keys and nothing time- or
// randomness-dependent is injected here.
func BuildPrompt(req GenerateRequest, profile *user.Preferences) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert travel planner. Create a detailed %d-day itinerary for %s.\n\n", req.DurationDays, req.Destination)

	fmt.Fprintf(&b, "Trip Details:\n")
	fmt.Fprintf(&b, "- Destination: %s\n", req.Destination)
	fmt.Fprintf(&b, "- Duration: %d days\n", req.DurationDays)
	fmt.Fprintf(&b, "- Total Budget: %s %s\n", formatAmount(req.Budget), req.Currency)
	fmt.Fprintf(&b, "- Travel Style: %s\n\n", req.TravelStyle)

	fmt.Fprintf(&b, "User Preferences:\n%s\n", marshalPreferences(req.Preferences))

	if lines := profileLines(profile); lines != "" {
		fmt.Fprintf(&b, "\nSaved Traveler Profile:\n%s", lines)
	}

	b.WriteString(`
Please create a comprehensive day-by-day itinerary that includes:
1. Daily activities with specific times and locations
2. Restaurant recommendations for breakfast, lunch, and dinner
3. Transportation suggestions between locations
4. Estimated costs for each activity
5. Practical tips and local insights
6. Emergency contacts and important information

Format the response as a structured JSON with this schema:
{
    "title": "Trip title",
    "destination": "` + req.Destination + `",
    "overview": "Brief overview of the trip",
    "total_estimated_cost": ` + formatAmount(req.Budget) + `,
    "days": [
        {
            "day_number": 1,
            "date": "Day 1",
            "title": "Day title",
            "activities": [
                {
                    "time": "09:00",
                    "activity": "Activity name",
                    "location": "Location name",
                    "description": "Detailed description",
                    "estimated_cost": 50,
                    "duration_minutes": 120
                }
            ],
            "meals": {
                "breakfast": {"name": "Restaurant", "location": "Address", "estimated_cost": 15},
                "lunch": {"name": "Restaurant", "location": "Address", "estimated_cost": 20},
                "dinner": {"name": "Restaurant", "location": "Address", "estimated_cost": 35}
            },
            "transportation": "Transportation details for the day",
            "daily_cost": 200
        }
    ],
    "tips": ["Tip 1", "Tip 2"],
    "emergency_contacts": {"police": "number", "ambulance": "number"},
    "packing_list": ["Item 1", "Item 2"]
}

Ensure the itinerary is realistic, well-paced, and fits within the budget.`)

	return b.String()
}

// profileLines renders the stored preference row as fixed-order bullet lines.
// Empty fields are skipped; a nil or fully empty profile renders nothing.
func profileLines(p *user.Preferences) string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	line := func(label, v string) {
		if v != "" {
			fmt.Fprintf(&b, "- %s: %s\n", label, v)
		}
	}
	line("Travel Style", p.TravelStyle)
	line("Budget Preference", p.BudgetPreference)
	line("Accommodation", p.AccommodationPreference)
	line("Food Preference", p.FoodPreference)
	if len(p.ActivityPreferences) > 0 {
		fmt.Fprintf(&b, "- Preferred Activities: %s\n", strings.Join(p.ActivityPreferences, ", "))
	}
	line("Dietary Restrictions", p.DietaryRestrictions)
	return b.String()
}

func marshalPreferences(prefs map[string]any) string {
	if prefs == nil {
		return "{}"
	}
	out, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		// Opaque bags that cannot serialize degrade to nothing-to-add.
		return "{}"
	}
	return string(out)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
