// internal/app/store/impactlogs/impactstore.go
package impactstore

import (
	"context"
	"time"

	"github.com/launchlane/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// deleteBatchSize caps how many log IDs are removed per round during
// account cleanup, keeping each delete statement bounded.
const deleteBatchSize = 500

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("impact_logs")}
}

// Append records one impact session. Logs are append-only; there is no
// update or single-delete path.
func (s *Store) Append(ctx context.Context, log models.ImpactLog) (models.ImpactLog, error) {
	log.ID = primitive.NewObjectID()
	log.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, log); err != nil {
		return models.ImpactLog{}, err
	}
	return log, nil
}

// ListByFounder returns a founder's impact history, newest first.
func (s *Store) ListByFounder(ctx context.Context, founderID string, limit int64) ([]models.ImpactLog, error) {
	return s.list(ctx, bson.M{"founder_id": founderID}, limit)
}

// ListByMentor returns the sessions a mentor has logged, newest first.
func (s *Store) ListByMentor(ctx context.Context, mentorID string, limit int64) ([]models.ImpactLog, error) {
	return s.list(ctx, bson.M{"mentor_id": mentorID}, limit)
}

func (s *Store) list(ctx context.Context, query bson.M, limit int64) ([]models.ImpactLog, error) {
	if limit <= 0 {
		limit = 100
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var logs []models.ImpactLog
	if err := cur.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// CountByFounder returns how many sessions have been logged for a founder.
func (s *Store) CountByFounder(ctx context.Context, founderID string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"founder_id": founderID})
}

// DeleteForUser removes every log the user appears in, as founder or
// mentor, in bounded batches. Returns the total number of documents
// deleted. Used by account deletion.
func (s *Store) DeleteForUser(ctx context.Context, uid string) (int64, error) {
	query := bson.M{
		"$or": []bson.M{
			{"founder_id": uid},
			{"mentor_id": uid},
		},
	}

	var total int64
	for {
		ids, err := s.nextBatch(ctx, query)
		if err != nil {
			return total, err
		}
		if len(ids) == 0 {
			return total, nil
		}
		res, err := s.c.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
		if err != nil {
			return total, err
		}
		total += res.DeletedCount
		if res.DeletedCount == 0 {
			return total, nil
		}
	}
}

func (s *Store) nextBatch(ctx context.Context, query bson.M) ([]primitive.ObjectID, error) {
	opts := options.Find().
		SetLimit(deleteBatchSize).
		SetProjection(bson.M{"_id": 1})

	cur, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	return ids, nil
}
