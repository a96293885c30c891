package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"columbus/internal/ai"
	"columbus/internal/modules/itinerary"
	"columbus/internal/types"
)

type fakeLLM struct {
	response string
	err      error
	lastReq  ai.CompletionRequest
}

func (f *fakeLLM) Complete(_ context.Context, req ai.CompletionRequest) (string, error) {
	f.lastReq = req
	return f.response, f.err
}

type fakeTurnStore struct {
	turns     []Turn
	recentErr error
	appendErr error
	appended  map[string][]StoredTurn
}

func (f *fakeTurnStore) Append(_ context.Context, sessionID string, t StoredTurn) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	if f.appended == nil {
		f.appended = map[string][]StoredTurn{}
	}
	f.appended[sessionID] = append(f.appended[sessionID], t)
	return nil
}

func (f *fakeTurnStore) Recent(_ context.Context, _ string, limit int) ([]Turn, error) {
	if f.recentErr != nil {
		return nil, f.recentErr
	}
	turns := f.turns
	if len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	return turns, nil
}

type fakeSummaries struct {
	summary *itinerary.Summary
	err     error
}

func (f *fakeSummaries) SummaryFor(_ context.Context, _, _ types.ID) (*itinerary.Summary, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.summary, nil
}

func TestRespond_EmptyMessageRejected(t *testing.T) {
	store := &fakeTurnStore{}
	svc := NewService(store, &fakeSummaries{err: itinerary.ErrNotFound}, &fakeLLM{}, 10)

	for _, msg := range []string{"", "   ", "\n\t"} {
		if _, err := svc.Respond(context.Background(), "uid-1", msg, "s-1", nil); !errors.Is(err, ErrBadRequest) {
			t.Errorf("message %q: expected ErrBadRequest, got %v", msg, err)
		}
	}
	if store.appended != nil {
		t.Error("rejected message must not be persisted")
	}
}

func TestRespond_MintsSessionID(t *testing.T) {
	store := &fakeTurnStore{}
	svc := NewService(store, nil, &fakeLLM{response: "Sure!"}, 10)

	res, err := svc.Respond(context.Background(), "uid-1", "Hi", "", nil)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if res.SessionID == "" {
		t.Fatal("expected a minted session id")
	}
	if len(store.appended[res.SessionID]) != 2 {
		t.Errorf("turns stored under %q: %d", res.SessionID, len(store.appended[res.SessionID]))
	}
}

func TestRespond_ReusesSessionID(t *testing.T) {
	store := &fakeTurnStore{}
	svc := NewService(store, nil, &fakeLLM{response: "Sure!"}, 10)

	res, err := svc.Respond(context.Background(), "uid-1", "Hi", "session-42", nil)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if res.SessionID != "session-42" {
		t.Errorf("session id = %q", res.SessionID)
	}
}

// TestRespond_HistoryWindow verifies a long conversation is trimmed to the
// most recent turns, oldest first, with the new user message appended last.
func TestRespond_HistoryWindow(t *testing.T) {
	var turns []Turn
	for i := 0; i < 12; i++ {
		role := RoleUser
		if i%2 == 1 {
			role = RoleAssistant
		}
		turns = append(turns, Turn{Role: role, Content: fmt.Sprintf("msg-%d", i)})
	}
	store := &fakeTurnStore{turns: turns}
	llm := &fakeLLM{response: "Got it."}
	svc := NewService(store, nil, llm, 10)

	if _, err := svc.Respond(context.Background(), "uid-1", "What about day 2?", "s-1", nil); err != nil {
		t.Fatalf("Respond: %v", err)
	}

	sent := llm.lastReq.Turns
	if len(sent) != 11 {
		t.Fatalf("sent %d turns, want 10 history + 1 new", len(sent))
	}
	if sent[0].Content != "msg-2" {
		t.Errorf("oldest turn = %q, want msg-2 (first two trimmed)", sent[0].Content)
	}
	if sent[9].Content != "msg-11" {
		t.Errorf("latest history turn = %q", sent[9].Content)
	}
	last := sent[10]
	if last.Role != ai.RoleUser || last.Content != "What about day 2?" {
		t.Errorf("final turn = %+v", last)
	}
	if llm.lastReq.MaxTokens != 1024 || llm.lastReq.Temperature != 0.7 {
		t.Errorf("request settings = %d/%v", llm.lastReq.MaxTokens, llm.lastReq.Temperature)
	}
}

// TestRespond_HistoryFailureDegrades verifies a broken session store still
// produces an answer from the bare message.
func TestRespond_HistoryFailureDegrades(t *testing.T) {
	store := &fakeTurnStore{recentErr: errors.New("redis down")}
	llm := &fakeLLM{response: "Happy to help."}
	svc := NewService(store, nil, llm, 10)

	res, err := svc.Respond(context.Background(), "uid-1", "Hi", "s-1", nil)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if res.Message != "Happy to help." {
		t.Errorf("message = %q", res.Message)
	}
	if len(llm.lastReq.Turns) != 1 {
		t.Errorf("sent %d turns, want just the new message", len(llm.lastReq.Turns))
	}
}

func TestRespond_ItineraryContext(t *testing.T) {
	sum := &itinerary.Summary{Destination: "Tokyo, Japan", DurationDays: 3, TravelStyle: "cultural"}
	llm := &fakeLLM{response: "Try Asakusa."}
	svc := NewService(&fakeTurnStore{}, &fakeSummaries{summary: sum}, llm, 10)

	itID := types.ID("it-1")
	if _, err := svc.Respond(context.Background(), "uid-1", "Where should I go?", "s-1", &itID); err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if !strings.Contains(llm.lastReq.System, "Destination: Tokyo, Japan") {
		t.Error("itinerary context missing from system prompt")
	}
}

func TestRespond_MissingItineraryIgnored(t *testing.T) {
	llm := &fakeLLM{response: "Sure."}
	svc := NewService(&fakeTurnStore{}, &fakeSummaries{err: itinerary.ErrNotFound}, llm, 10)

	itID := types.ID("gone")
	if _, err := svc.Respond(context.Background(), "uid-1", "Hi", "s-1", &itID); err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if strings.Contains(llm.lastReq.System, "Current itinerary context") {
		t.Error("context rendered for a missing itinerary")
	}
}

// TestRespond_ModelFailureApology verifies the fixed apology is returned AND
// persisted when the model cannot be reached.
func TestRespond_ModelFailureApology(t *testing.T) {
	store := &fakeTurnStore{}
	svc := NewService(store, nil, &fakeLLM{err: errors.New("quota exceeded")}, 10)

	res, err := svc.Respond(context.Background(), "uid-1", "Hi", "s-1", nil)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if res.Message != fallbackReply {
		t.Errorf("message = %q", res.Message)
	}
	stored := store.appended["s-1"]
	if len(stored) != 2 || stored[1].Content != fallbackReply {
		t.Errorf("stored turns = %+v", stored)
	}
}

// TestRespond_TurnPairOrdering pins the user/assistant timestamp pairing.
func TestRespond_TurnPairOrdering(t *testing.T) {
	store := &fakeTurnStore{}
	svc := NewService(store, nil, &fakeLLM{response: "Of course."}, 10)

	itID := types.ID("it-1")
	res, err := svc.Respond(context.Background(), "uid-1", "Hi", "s-1", &itID)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}

	stored := store.appended["s-1"]
	if len(stored) != 2 {
		t.Fatalf("stored %d turns, want 2", len(stored))
	}
	userTurn, assistantTurn := stored[0], stored[1]
	if userTurn.Role != RoleUser || assistantTurn.Role != RoleAssistant {
		t.Errorf("roles = %q/%q", userTurn.Role, assistantTurn.Role)
	}
	if assistantTurn.Timestamp != userTurn.Timestamp+1 {
		t.Errorf("timestamps = %d/%d, want assistant one past user", userTurn.Timestamp, assistantTurn.Timestamp)
	}
	if res.Timestamp != userTurn.Timestamp {
		t.Errorf("result timestamp = %d, want the user turn's %d", res.Timestamp, userTurn.Timestamp)
	}
	if userTurn.ItineraryID == nil || *userTurn.ItineraryID != itID {
		t.Error("itinerary link not stored on the user turn")
	}
}

func TestRespond_PersistenceFailureSurfaced(t *testing.T) {
	store := &fakeTurnStore{appendErr: errors.New("redis down")}
	svc := NewService(store, nil, &fakeLLM{response: "Sure."}, 10)

	if _, err := svc.Respond(context.Background(), "uid-1", "Hi", "s-1", nil); err == nil {
		t.Fatal("expected persistence error to surface")
	}
}
