// internal/app/store/assignments/assignmentstore.go
package assignmentstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/launchlane/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrSelfAssignment     = errors.New("mentor and founder must differ")
	ErrDuplicatePair      = errors.New("assignment already exists for this pair")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrNotPending         = errors.New("assignment is not pending")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("mentor_assignments")}
}

// Request creates a pending assignment for a mentor/founder pair. The
// document _id is the canonical pair key, so a second request for the same
// two people in either direction loses the insert race atomically. A
// rejected pair also blocks re-requests because the rejected document
// keeps the pair key occupied.
func (s *Store) Request(ctx context.Context, mentorID, founderID, assignedBy string) (models.Assignment, error) {
	if mentorID == founderID {
		return models.Assignment{}, ErrSelfAssignment
	}

	now := time.Now().UTC()
	a := models.Assignment{
		ID:         models.PairKey(mentorID, founderID),
		MentorID:   mentorID,
		FounderID:  founderID,
		Status:     models.AssignmentPending,
		AssignedBy: assignedBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	_, err := s.c.InsertOne(ctx, a)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Assignment{}, ErrDuplicatePair
		}
		return models.Assignment{}, err
	}
	return a, nil
}

// Get loads an assignment by its pair-key id.
func (s *Store) Get(ctx context.Context, id string) (models.Assignment, error) {
	var a models.Assignment
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return models.Assignment{}, ErrAssignmentNotFound
	}
	if err != nil {
		return models.Assignment{}, err
	}
	return a, nil
}

// GetByPair loads the assignment for a mentor/founder pair in either
// direction.
func (s *Store) GetByPair(ctx context.Context, mentorID, founderID string) (models.Assignment, error) {
	var a models.Assignment
	err := s.c.FindOne(ctx, bson.M{"_id": models.PairKey(mentorID, founderID)}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return models.Assignment{}, ErrAssignmentNotFound
	}
	if err != nil {
		return models.Assignment{}, err
	}
	return a, nil
}

// Resolve moves a pending assignment to active or rejected. Only the
// assignment's mentor may resolve it, and only from the pending state;
// both constraints ride on the filter so the transition is atomic.
func (s *Store) Resolve(ctx context.Context, mentorID, founderID, newStatus string) (models.Assignment, error) {
	res := s.c.FindOneAndUpdate(ctx,
		bson.M{
			"_id":       models.PairKey(mentorID, founderID),
			"mentor_id": mentorID,
			"status":    models.AssignmentPending,
		},
		bson.M{"$set": bson.M{
			"status":     newStatus,
			"updated_at": time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var a models.Assignment
	if err := res.Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			// Distinguish "no such assignment" from "wrong state".
			if _, gerr := s.GetByPair(ctx, mentorID, founderID); gerr == nil {
				return models.Assignment{}, ErrNotPending
			}
			return models.Assignment{}, ErrAssignmentNotFound
		}
		return models.Assignment{}, err
	}
	return a, nil
}

// HasActive reports whether the pair has an assignment in the active state.
// Pending and rejected assignments do not count; callers that only need to
// exclude rejection should load the record with GetByPair instead.
func (s *Store) HasActive(ctx context.Context, mentorID, founderID string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{
		"_id":    models.PairKey(mentorID, founderID),
		"status": models.AssignmentActive,
	}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ListForMentor returns a mentor's assignments, newest first, optionally
// narrowed to one status.
func (s *Store) ListForMentor(ctx context.Context, mentorID, status string) ([]models.Assignment, error) {
	return s.list(ctx, bson.M{"mentor_id": mentorID}, status)
}

// ListForFounder returns a founder's assignments, newest first, optionally
// narrowed to one status.
func (s *Store) ListForFounder(ctx context.Context, founderID, status string) ([]models.Assignment, error) {
	return s.list(ctx, bson.M{"founder_id": founderID}, status)
}

// ListForUser returns every assignment the user participates in, in either
// role, newest first, optionally narrowed to one status.
func (s *Store) ListForUser(ctx context.Context, uid, status string) ([]models.Assignment, error) {
	return s.list(ctx, bson.M{"$or": []bson.M{
		{"mentor_id": uid},
		{"founder_id": uid},
	}}, status)
}

func (s *Store) list(ctx context.Context, query bson.M, status string) ([]models.Assignment, error) {
	if status != "" {
		query["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Assignment
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByStatus returns how many assignments a user participates in with
// the given status, in either role.
func (s *Store) CountByStatus(ctx context.Context, uid, status string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{
		"status": status,
		"$or": []bson.M{
			{"mentor_id": uid},
			{"founder_id": uid},
		},
	})
}

// DeleteForUser removes every assignment the user participates in, in
// either role. Returns the number of documents deleted. Used by account
// deletion.
func (s *Store) DeleteForUser(ctx context.Context, uid string) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{
		"$or": []bson.M{
			{"mentor_id": uid},
			{"founder_id": uid},
		},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
