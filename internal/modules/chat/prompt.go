// README: Deterministic system-prompt rendering for the travel assistant.
package chat

import (
	"fmt"
	"strings"

	"columbus/internal/modules/itinerary"
)

const systemPrompt = `You are a knowledgeable and friendly travel assistant. Help users with:
- Travel planning and itinerary suggestions
- Destination recommendations
- Budget advice
- Cultural tips and local insights
- Transportation guidance
- Safety information
- Food and restaurant suggestions

Provide accurate, helpful, and engaging responses. Be concise but informative.`

// BuildSystemPrompt renders the assistant persona, appending the compact
// itinerary context lines only when a summary exists. Identical input renders
// byte-identical output.
func BuildSystemPrompt(sum *itinerary.Summary) string {
	if sum == nil {
		return systemPrompt
	}
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\nCurrent itinerary context:\n")
	fmt.Fprintf(&b, "Destination: %s\n", sum.Destination)
	fmt.Fprintf(&b, "Duration: %d days\n", sum.DurationDays)
	fmt.Fprintf(&b, "Travel Style: %s\n", sum.TravelStyle)
	return b.String()
}
