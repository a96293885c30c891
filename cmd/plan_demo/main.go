// README: One-shot demo that drives the itinerary prompt against the live model.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"columbus/internal/ai"
	"columbus/internal/infra"
	"columbus/internal/modules/itinerary"
)

func main() {
	ctx := context.Background()

	secrets := infra.NewCachedSecretSource(infra.EnvSecretSource{})
	llm := ai.NewGeminiClient("gemini-2.0-flash", "GEMINI_API_KEY", secrets)
	defer llm.Close()

	req := itinerary.GenerateRequest{
		Destination:  "Tokyo, Japan",
		DurationDays: 3,
		Budget:       900,
		Currency:     "USD",
		TravelStyle:  "cultural",
		Preferences: map[string]any{
			"activities": []string{"temples", "food", "museums"},
		},
	}
	if err := req.Validate(); err != nil {
		log.Fatal(err)
	}

	prompt := itinerary.BuildPrompt(req, nil)
	raw, err := llm.Complete(ctx, ai.CompletionRequest{Prompt: prompt, MaxTokens: 4096, Temperature: 0.7})

	var plan itinerary.Plan
	if err != nil {
		log.Printf("completion failed (%v); showing fallback plan", err)
		plan = itinerary.FallbackPlan(req.Destination, req.DurationDays, req.Budget, req.Currency)
	} else if err := ai.ExtractJSON(raw, &plan); err != nil {
		log.Printf("extraction failed (%v); showing fallback plan", err)
		plan = itinerary.FallbackPlan(req.Destination, req.DurationDays, req.Budget, req.Currency)
	}

	out, _ := json.MarshalIndent(plan, "", "  ")
	fmt.Println(string(out))
}
