package repository

import (
	"context"

	"tripgenie-service/internal/domain/entity"
)

// PlanRepository archives planning sessions and final trip summaries.
// The live session state lives in the SessionStore; this is the durable
// record for audit and history views.
type PlanRepository interface {
	SaveSession(ctx context.Context, session *entity.PlanningSession) error
	FindSessionByID(ctx context.Context, id string) (*entity.PlanningSession, error)
	MarkFinalized(ctx context.Context, id string) error
	SaveFinalSummary(ctx context.Context, summary *entity.FinalTripSummary) error
	FindRecentSessions(ctx context.Context, limit int) ([]*entity.PlanningSession, error)
}
