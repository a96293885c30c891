// README: Chat turn model and session constants.
package chat

import (
	"errors"

	"columbus/internal/types"
)

var ErrBadRequest = errors.New("bad request")

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message of a conversation as fed to the model.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// StoredTurn is the session-store record: a Turn plus ownership and a logical
// millisecond timestamp. Within a session timestamps strictly increase; the
// assistant reply is stamped one past its triggering user turn so it always
// sorts after it.
type StoredTurn struct {
	Timestamp   int64     `json:"timestamp"`
	UserID      types.ID  `json:"user_id"`
	Role        string    `json:"role"`
	Content     string    `json:"content"`
	ItineraryID *types.ID `json:"itinerary_id,omitempty"`
}
