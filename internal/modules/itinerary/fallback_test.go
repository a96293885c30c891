package itinerary

import (
	"fmt"
	"testing"
)

// TestFallbackPlan_DayCount verifies the day-count and cost invariants across
// the full accepted duration range.
func TestFallbackPlan_DayCount(t *testing.T) {
	for days := MinDurationDays; days <= MaxDurationDays; days++ {
		t.Run(fmt.Sprintf("%d_days", days), func(t *testing.T) {
			plan := FallbackPlan("Lisbon, Portugal", days, 1000, "EUR")

			if len(plan.Days) != days {
				t.Fatalf("expected %d day entries, got %d", days, len(plan.Days))
			}
			for i, d := range plan.Days {
				if d.DayNumber != i+1 {
					t.Errorf("day %d has day_number %d", i, d.DayNumber)
				}
				if len(d.Activities) != 0 || len(d.Meals) != 0 {
					t.Errorf("day %d should be empty, got %d activities / %d meals", i+1, len(d.Activities), len(d.Meals))
				}
				if d.Transportation != "To be planned" {
					t.Errorf("day %d transportation = %q", i+1, d.Transportation)
				}
			}
			if plan.TotalEstimatedCost != 1000 {
				t.Errorf("total_estimated_cost = %v, want the input budget exactly", plan.TotalEstimatedCost)
			}
		})
	}
}

// TestFallbackPlan_EvenBudgetSplit pins the per-day split for a 3-day trip.
func TestFallbackPlan_EvenBudgetSplit(t *testing.T) {
	plan := FallbackPlan("Tokyo, Japan", 3, 900, "USD")

	if len(plan.Days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(plan.Days))
	}
	for _, d := range plan.Days {
		if d.DailyCost != 300.0 {
			t.Errorf("day %d daily_cost = %v, want 300.0", d.DayNumber, d.DailyCost)
		}
	}
	if plan.TotalEstimatedCost != 900 {
		t.Errorf("total_estimated_cost = %v, want 900", plan.TotalEstimatedCost)
	}
	if plan.Title != "3-Day Trip to Tokyo, Japan" {
		t.Errorf("title = %q", plan.Title)
	}
	if plan.Destination != "Tokyo, Japan" {
		t.Errorf("destination = %q", plan.Destination)
	}
}
