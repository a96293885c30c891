// README: Common identifier type used across modules.
package types

// ID is an opaque identifier (Firebase UID, itinerary UUID, session UUID).
type ID string
