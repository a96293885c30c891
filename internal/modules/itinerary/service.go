// README: Itinerary generation pipeline (prompt → model → extract → fallback) and plan CRUD.
package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"columbus/internal/ai"
	"columbus/internal/modules/user"
	"columbus/internal/types"
)

// Generation settings: a large token ceiling so day-by-day JSON is never
// truncated mid-structure, and moderate temperature to balance plan variety
// against schema adherence.
const (
	generateMaxTokens   = 4096
	generateTemperature = 0.7
)

// PlanStore is the persistence half of the pipeline.
type PlanStore interface {
	Insert(ctx context.Context, it *Stored) (types.ID, time.Time, error)
	Get(ctx context.Context, id types.ID) (*Stored, error)
	IncrementViews(ctx context.Context, id types.ID) error
	Update(ctx context.Context, id types.ID, fields map[string]any) (time.Time, error)
	SummaryFor(ctx context.Context, id, uid types.ID) (*Summary, error)
}

// ProfileSource supplies the traveler's stored preferences; a lookup failure
// degrades to generating without them.
type ProfileSource interface {
	GetByUser(ctx context.Context, uid types.ID) (*user.Preferences, error)
}

type Service struct {
	store        PlanStore
	profiles     ProfileSource
	llm          ai.CompletionClient
	modelVersion string
}

func NewService(store PlanStore, profiles ProfileSource, llm ai.CompletionClient, modelVersion string) *Service {
	return &Service{store: store, profiles: profiles, llm: llm, modelVersion: modelVersion}
}

type GenerateResult struct {
	ID        types.ID
	Plan      Plan
	CreatedAt time.Time
}

// Generate runs the full pipeline for a trip-plan request. Model and
// extraction failures are absorbed by the deterministic fallback plan; only
// validation and persistence failures are returned to the caller.
func (s *Service) Generate(ctx context.Context, uid types.ID, req GenerateRequest) (*GenerateResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var profile *user.Preferences
	if s.profiles != nil {
		p, err := s.profiles.GetByUser(ctx, uid)
		switch {
		case err == nil:
			profile = p
		case errors.Is(err, user.ErrNotFound):
			// Nothing saved yet; generate without a profile.
		default:
			log.Printf("itinerary: load profile for %s: %v", uid, err)
		}
	}

	prompt := BuildPrompt(req, profile)
	plan := s.generatePlan(ctx, req, prompt)

	var startDate, endDate *time.Time
	if req.StartDate != "" {
		if t, err := time.Parse("2006-01-02", req.StartDate); err == nil {
			end := t.AddDate(0, 0, req.DurationDays-1)
			startDate, endDate = &t, &end
		}
	}

	stored := &Stored{
		UserID:          uid,
		Title:           plan.Title,
		DestinationName: req.Destination,
		StartDate:       startDate,
		EndDate:         endDate,
		DurationDays:    req.DurationDays,
		BudgetTotal:     req.Budget,
		BudgetCurrency:  req.Currency,
		TravelStyle:     req.TravelStyle,
		Status:          StatusDraft,
		Plan:            plan,
		AIModelVersion:  s.modelVersion,
	}

	id, createdAt, err := s.store.Insert(ctx, stored)
	if err != nil {
		return nil, fmt.Errorf("itinerary: save plan: %w", err)
	}

	log.Printf("itinerary: created %s for %s (%s, %d days)", id, uid, req.Destination, req.DurationDays)
	return &GenerateResult{ID: id, Plan: plan, CreatedAt: createdAt}, nil
}

// generatePlan invokes the model once and extracts the structured plan,
// substituting the fallback on any invocation or extraction failure.
func (s *Service) generatePlan(ctx context.Context, req GenerateRequest, prompt string) Plan {
	raw, err := s.llm.Complete(ctx, ai.CompletionRequest{
		Prompt:      prompt,
		MaxTokens:   generateMaxTokens,
		Temperature: generateTemperature,
	})
	if err != nil {
		log.Printf("itinerary: completion failed, using fallback: %v", err)
		return FallbackPlan(req.Destination, req.DurationDays, req.Budget, req.Currency)
	}

	var plan Plan
	if err := ai.ExtractJSON(raw, &plan); err != nil {
		log.Printf("itinerary: extraction failed, using fallback: %v", err)
		return FallbackPlan(req.Destination, req.DurationDays, req.Budget, req.Currency)
	}
	return plan
}

// Get returns an itinerary visible to uid: its owner, or anyone when public.
// Non-owner reads bump the view counter (best effort).
func (s *Service) Get(ctx context.Context, uid, id types.ID) (*Stored, error) {
	it, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	owner := it.UserID == uid
	if !owner && !it.IsPublic {
		return nil, ErrForbidden
	}
	if !owner {
		if err := s.store.IncrementViews(ctx, id); err != nil {
			log.Printf("itinerary: bump view count for %s: %v", id, err)
		}
	}
	return it, nil
}

// UpdateRequest carries the editable fields; nil means "leave unchanged".
type UpdateRequest struct {
	Title     *string `json:"title"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Status    *string `json:"status"`
	Plan      *Plan   `json:"itinerary_data"`
	IsPublic  *bool   `json:"is_public"`
}

// Update applies the whitelisted edits to an itinerary owned by uid.
func (s *Service) Update(ctx context.Context, uid, id types.ID, req UpdateRequest) (time.Time, error) {
	it, err := s.store.Get(ctx, id)
	if err != nil {
		return time.Time{}, err
	}
	if it.UserID != uid {
		return time.Time{}, ErrForbidden
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.StartDate != nil {
		fields["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		fields["end_date"] = *req.EndDate
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Plan != nil {
		planJSON, err := json.Marshal(req.Plan)
		if err != nil {
			return time.Time{}, err
		}
		fields["itinerary_data"] = planJSON
	}
	if req.IsPublic != nil {
		fields["is_public"] = *req.IsPublic
	}
	if len(fields) == 0 {
		return time.Time{}, fmt.Errorf("%w: no valid fields to update", ErrBadRequest)
	}

	return s.store.Update(ctx, id, fields)
}

// SummaryFor exposes the compact itinerary context consumed by the chat
// pipeline.
func (s *Service) SummaryFor(ctx context.Context, id, uid types.ID) (*Summary, error) {
	return s.store.SummaryFor(ctx, id, uid)
}
