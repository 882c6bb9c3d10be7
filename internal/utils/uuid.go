package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered UUIDv7 so trace ids sort by arrival in
// the logs. It falls back to a random UUIDv4.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
