package repository

import (
	"context"
	"errors"

	"tripgenie-service/internal/domain/entity"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("planning session not found")

// SessionStore holds live planning sessions. Implementations must apply
// each mutation atomically: a reader never observes a half-applied
// selection change.
type SessionStore interface {
	// Put stores a session snapshot, replacing any existing one.
	Put(ctx context.Context, session *entity.PlanningSession) error

	// Get returns a consistent snapshot of the session.
	Get(ctx context.Context, id string) (*entity.PlanningSession, error)

	// Update applies mutate to the session under the store's atomicity
	// guarantee and returns the resulting snapshot.
	Update(ctx context.Context, id string, mutate func(*entity.PlanningSession) error) (*entity.PlanningSession, error)

	// Delete removes a session. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}
