package itinerary

import (
	"strings"
	"testing"

	"columbus/internal/modules/user"
)

func testRequest() GenerateRequest {
	return GenerateRequest{
		Destination:  "Kyoto, Japan",
		DurationDays: 5,
		Budget:       1500,
		Currency:     "USD",
		TravelStyle:  "cultural",
		Preferences: map[string]any{
			"activities":         []string{"temples", "food"},
			"accommodation_type": "ryokan",
		},
	}
}

// TestBuildPrompt_Idempotent verifies byte-identical rendering for identical
// context, which the extraction tests and any future caching rely on.
func TestBuildPrompt_Idempotent(t *testing.T) {
	req := testRequest()
	a := BuildPrompt(req, nil)
	b := BuildPrompt(req, nil)
	if a != b {
		t.Fatal("BuildPrompt is not deterministic for identical input")
	}

	profile := &user.Preferences{TravelStyle: "slow travel", FoodPreference: "vegetarian"}
	a = BuildPrompt(req, profile)
	b = BuildPrompt(req, profile)
	if a != b {
		t.Fatal("BuildPrompt with profile is not deterministic")
	}
}

func TestBuildPrompt_Content(t *testing.T) {
	prompt := BuildPrompt(testRequest(), nil)

	for _, want := range []string{
		"Create a detailed 5-day itinerary for Kyoto, Japan.",
		"- Total Budget: 1500 USD",
		"- Travel Style: cultural",
		`"accommodation_type": "ryokan"`,
		`"total_estimated_cost": 1500`,
		`"day_number": 1`,
		`"packing_list"`,
		`"emergency_contacts"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	if strings.Contains(prompt, "Saved Traveler Profile") {
		t.Error("profile section rendered without a profile")
	}
}

func TestBuildPrompt_ProfileSection(t *testing.T) {
	profile := &user.Preferences{
		TravelStyle:         "luxury",
		ActivityPreferences: []string{"spas", "fine dining"},
	}
	prompt := BuildPrompt(testRequest(), profile)

	if !strings.Contains(prompt, "Saved Traveler Profile:") {
		t.Fatal("profile section missing")
	}
	if !strings.Contains(prompt, "- Travel Style: luxury") {
		t.Error("travel style line missing")
	}
	if !strings.Contains(prompt, "- Preferred Activities: spas, fine dining") {
		t.Error("activities line missing")
	}
	if strings.Contains(prompt, "- Dietary Restrictions:") {
		t.Error("empty profile fields should be skipped")
	}
}

// TestBuildPrompt_EmptyPreferences verifies that nil and empty bags render the
// same "nothing to add" placeholder.
func TestBuildPrompt_EmptyPreferences(t *testing.T) {
	req := testRequest()
	req.Preferences = nil
	if !strings.Contains(BuildPrompt(req, nil), "User Preferences:\n{}") {
		t.Error("nil preference bag should render {}")
	}
	req.Preferences = map[string]any{}
	if !strings.Contains(BuildPrompt(req, nil), "User Preferences:\n{}") {
		t.Error("empty preference bag should render {}")
	}
}
