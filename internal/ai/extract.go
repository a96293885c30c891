// README: Recovers structured payloads from raw model output.
package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	labeledFence = "```json"
	fence        = "```"
)

// ExtractText returns the chat-form result: the raw completion, trimmed.
func ExtractText(raw string) string {
	return strings.TrimSpace(raw)
}

// ExtractJSON unwraps any fencing around the payload and unmarshals it into v.
// Malformed JSON is a hard failure; callers fall back rather than repair.
func ExtractJSON(raw string, v any) error {
	payload := Unfence(raw)
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return fmt.Errorf("extract: parse model output: %w", err)
	}
	return nil
}

// Unfence strips decorative code fencing from model output. A ```json block
// takes priority over a bare ``` block; with no fencing the text is returned
// verbatim (trimmed). Only the first block is considered.
func Unfence(raw string) string {
	if i := strings.Index(raw, labeledFence); i >= 0 {
		rest := raw[i+len(labeledFence):]
		if j := strings.Index(rest, fence); j >= 0 {
			rest = rest[:j]
		}
		return strings.TrimSpace(rest)
	}
	if i := strings.Index(raw, fence); i >= 0 {
		rest := raw[i+len(fence):]
		if j := strings.Index(rest, fence); j >= 0 {
			rest = rest[:j]
		}
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(raw)
}
