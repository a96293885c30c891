// README: Request shapes shared by completion client implementations.
package ai

// Turn roles, mirrored in session storage.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single prior exchange fed to the model, oldest first.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest carries everything one model invocation needs.
// For single-shot generation leave Turns empty and put the whole prompt in
// Prompt; for conversational use, System holds the persona instructions and
// Turns the ordered history ending with the new user message.
type CompletionRequest struct {
	System      string
	Prompt      string
	Turns       []Turn
	MaxTokens   int32
	Temperature float32
}
