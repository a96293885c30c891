// README: Deterministic fallback plan used when generation or extraction fails.
package itinerary

import "fmt"

// FallbackPlan builds a minimally valid plan from the validated request alone:
// one empty day entry per duration day, the budget split evenly across days,
// and the total kept exactly equal to the input budget. Per-day costs may not
// sum back to the total; that is accepted.
func FallbackPlan(destination string, durationDays int, budget float64, currency string) Plan {
	days := make([]DayPlan, durationDays)
	for i := range days {
		days[i] = DayPlan{
			DayNumber:      i + 1,
			Date:           fmt.Sprintf("Day %d", i+1),
			Title:          fmt.Sprintf("Explore %s", destination),
			Activities:     []Activity{},
			Meals:          map[string]Meal{},
			Transportation: "To be planned",
			DailyCost:      budget / float64(durationDays),
		}
	}
	return Plan{
		Title:              fmt.Sprintf("%d-Day Trip to %s", durationDays, destination),
		Destination:        destination,
		Overview:           fmt.Sprintf("A %d-day adventure in %s", durationDays, destination),
		TotalEstimatedCost: budget,
		Days:               days,
		Tips:               []string{"Plan ahead", "Stay safe", "Have fun"},
		EmergencyContacts:  map[string]string{},
		PackingList:        []string{},
	}
}
