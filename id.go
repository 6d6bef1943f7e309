package quaycheck

import "github.com/google/uuid"

// NewID generates a globally unique, time-sortable UUIDv7 (RFC 9562).
// Used to correlate request logs with responses.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
