// internal/app/store/annotations/annotationstore.go
package annotationstore

import (
	"context"
	"time"

	"github.com/launchlane/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("chat_annotations")}
}

// Append records one annotation on a chat thread.
func (s *Store) Append(ctx context.Context, a models.ChatAnnotation) (models.ChatAnnotation, error) {
	a.ID = primitive.NewObjectID()
	a.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.ChatAnnotation{}, err
	}
	return a, nil
}

// ListByChat returns a thread's annotations in posting order.
func (s *Store) ListByChat(ctx context.Context, chatID string, limit int64) ([]models.ChatAnnotation, error) {
	if limit <= 0 {
		limit = 200
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetLimit(limit)

	cur, err := s.c.Find(ctx, bson.M{"chat_id": chatID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ChatAnnotation
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByAuthorSince counts annotations an author posted at or after the
// cutoff. Backs the daily comment cap when the in-process limiter restarts
// cold.
func (s *Store) CountByAuthorSince(ctx context.Context, authorID string, since time.Time) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{
		"author_id":  authorID,
		"created_at": bson.M{"$gte": since},
	})
}

// DeleteByAuthor removes every annotation the user authored. Returns the
// number of documents deleted. Used by account deletion.
func (s *Store) DeleteByAuthor(ctx context.Context, authorID string) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"author_id": authorID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
