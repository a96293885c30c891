// README: Contract for text generation against an external LLM.
package ai

import (
	"context"
)

// CompletionClient is the contract for one request/response exchange with the
// language model. Implementations return the raw completion text; callers are
// responsible for extracting structure from it.
type CompletionClient interface {
	// Complete sends the request and returns the raw model output.
	// Implementations may retry transient transport failures; whatever
	// error survives that surfaces as a non-nil error.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
