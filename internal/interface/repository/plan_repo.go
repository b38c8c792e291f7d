package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tripgenie-service/internal/domain/entity"
	"tripgenie-service/internal/domain/repository"
)

// Stored field names, matching the entity bson tags.
const (
	fieldCreatedAt = "createdAt"
	fieldUpdatedAt = "updatedAt"
	fieldStatus    = "status"
	fieldSessionID = "sessionId"
)

// MongoPlanRepository implements the PlanRepository interface
type MongoPlanRepository struct {
	sessions  *mongo.Collection
	summaries *mongo.Collection
}

// NewMongoPlanRepository creates a new MongoDB plan repository
func NewMongoPlanRepository(db *mongo.Database) repository.PlanRepository {
	sessions := db.Collection("planning_sessions")
	summaries := db.Collection("final_summaries")

	// Create indexes for better performance
	ctx := context.Background()

	// Index on createdAt for recent-session listings
	createdAtIndex := mongo.IndexModel{
		Keys: bson.M{fieldCreatedAt: -1},
	}

	// Index on status for filtering finalized sessions
	statusIndex := mongo.IndexModel{
		Keys: bson.M{fieldStatus: 1},
	}

	sessions.Indexes().CreateMany(ctx, []mongo.IndexModel{
		createdAtIndex,
		statusIndex,
	})

	// Index on sessionId for looking up a session's frozen summary
	sessionIDIndex := mongo.IndexModel{
		Keys:    bson.M{fieldSessionID: 1},
		Options: options.Index().SetUnique(true),
	}

	summaries.Indexes().CreateOne(ctx, sessionIDIndex)

	return &MongoPlanRepository{
		sessions:  sessions,
		summaries: summaries,
	}
}

// SaveSession archives a planning session snapshot, replacing any earlier
// snapshot of the same session.
func (r *MongoPlanRepository) SaveSession(ctx context.Context, session *entity.PlanningSession) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.sessions.ReplaceOne(ctx, bson.M{"_id": session.ID}, session, opts)
	return err
}

// FindSessionByID finds an archived session by ID
func (r *MongoPlanRepository) FindSessionByID(ctx context.Context, id string) (*entity.PlanningSession, error) {
	var session entity.PlanningSession
	err := r.sessions.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// MarkFinalized marks an archived session as finalized
func (r *MongoPlanRepository) MarkFinalized(ctx context.Context, id string) error {
	update := bson.M{
		"$set": bson.M{
			fieldStatus:    entity.SessionFinalized,
			fieldUpdatedAt: time.Now().UTC(),
		},
	}
	_, err := r.sessions.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

// SaveFinalSummary stores the frozen trip summary produced at finalize time
func (r *MongoPlanRepository) SaveFinalSummary(ctx context.Context, summary *entity.FinalTripSummary) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.summaries.ReplaceOne(ctx, bson.M{fieldSessionID: summary.SessionID}, summary, opts)
	return err
}

// FindRecentSessions returns the most recently created sessions
func (r *MongoPlanRepository) FindRecentSessions(ctx context.Context, limit int) ([]*entity.PlanningSession, error) {
	opts := options.Find().
		SetSort(bson.M{fieldCreatedAt: -1}).
		SetLimit(int64(limit))

	cursor, err := r.sessions.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []*entity.PlanningSession
	for cursor.Next(ctx) {
		var session entity.PlanningSession
		if err := cursor.Decode(&session); err != nil {
			return nil, err
		}
		sessions = append(sessions, &session)
	}
	return sessions, cursor.Err()
}
