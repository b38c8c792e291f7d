package utils

import "github.com/google/uuid"

// NewSessionID generates a unique planning session id.
func NewSessionID() string {
	return uuid.NewString()
}
