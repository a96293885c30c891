// README: Chat pipeline (context window → prompt → model → apology fallback) and turn persistence.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"columbus/internal/ai"
	"columbus/internal/modules/itinerary"
	"columbus/internal/types"
)

const (
	chatMaxTokens   = 1024
	chatTemperature = 0.7

	// fallbackReply is returned verbatim whenever the model cannot be
	// reached; chat never surfaces a generation failure to the traveler.
	fallbackReply = "I'm sorry, I encountered an error processing your request. Please try again."
)

// TurnStore is the session half of the pipeline.
type TurnStore interface {
	Append(ctx context.Context, sessionID string, t StoredTurn) error
	Recent(ctx context.Context, sessionID string, limit int) ([]Turn, error)
}

// SummarySource supplies the compact itinerary context for a linked plan.
type SummarySource interface {
	SummaryFor(ctx context.Context, id, uid types.ID) (*itinerary.Summary, error)
}

type Service struct {
	store        TurnStore
	itineraries  SummarySource
	llm          ai.CompletionClient
	historyLimit int
}

// NewService builds the chat responder. historyLimit bounds the prompt's
// context window (turns, not pairs).
func NewService(store TurnStore, itineraries SummarySource, llm ai.CompletionClient, historyLimit int) *Service {
	return &Service{store: store, itineraries: itineraries, llm: llm, historyLimit: historyLimit}
}

type Result struct {
	SessionID string
	Message   string
	Timestamp int64
}

// Respond answers one traveler message. History and itinerary context are
// best-effort; a model failure degrades to the fixed apology. Both turns are
// persisted after generation as two independent appends; a crash between
// them can leave an unpaired user turn, which is accepted. Persistence
// failures are surfaced, not absorbed.
func (s *Service) Respond(ctx context.Context, uid types.ID, message, sessionID string, itineraryID *types.ID) (*Result, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrBadRequest)
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	history, err := s.store.Recent(ctx, sessionID, s.historyLimit)
	if err != nil {
		log.Printf("chat: load history for session %s: %v", sessionID, err)
		history = nil
	}

	var summary *itinerary.Summary
	if itineraryID != nil && s.itineraries != nil {
		sum, err := s.itineraries.SummaryFor(ctx, *itineraryID, uid)
		switch {
		case err == nil:
			summary = sum
		case errors.Is(err, itinerary.ErrNotFound):
			// Linked itinerary gone or not theirs; answer without it.
		default:
			log.Printf("chat: load itinerary context %s: %v", *itineraryID, err)
		}
	}

	reply := s.generateReply(ctx, BuildSystemPrompt(summary), history, message)

	ts := time.Now().UnixMilli()
	userTurn := StoredTurn{Timestamp: ts, UserID: uid, Role: RoleUser, Content: message, ItineraryID: itineraryID}
	if err := s.store.Append(ctx, sessionID, userTurn); err != nil {
		return nil, fmt.Errorf("chat: save user turn: %w", err)
	}
	assistantTurn := StoredTurn{Timestamp: ts + 1, UserID: uid, Role: RoleAssistant, Content: reply, ItineraryID: itineraryID}
	if err := s.store.Append(ctx, sessionID, assistantTurn); err != nil {
		return nil, fmt.Errorf("chat: save assistant turn: %w", err)
	}

	return &Result{SessionID: sessionID, Message: reply, Timestamp: ts}, nil
}

func (s *Service) generateReply(ctx context.Context, system string, history []Turn, message string) string {
	turns := make([]ai.Turn, 0, len(history)+1)
	for _, t := range history {
		turns = append(turns, ai.Turn{Role: t.Role, Content: t.Content})
	}
	turns = append(turns, ai.Turn{Role: ai.RoleUser, Content: message})

	raw, err := s.llm.Complete(ctx, ai.CompletionRequest{
		System:      system,
		Turns:       turns,
		MaxTokens:   chatMaxTokens,
		Temperature: chatTemperature,
	})
	if err != nil {
		log.Printf("chat: completion failed, using fallback reply: %v", err)
		return fallbackReply
	}
	return ai.ExtractText(raw)
}
