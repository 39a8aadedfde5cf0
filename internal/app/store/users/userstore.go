// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/launchlane/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("a user with this email already exists")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Get loads a user by uid.
func (s *Store) Get(ctx context.Context, uid string) (models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"_id": uid}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// EnsureUser upserts the identity record for a uid seen on a valid bearer
// token, syncing the display name and email. New records default to the
// founder role; an existing role is never overwritten here.
func (s *Store) EnsureUser(ctx context.Context, uid, displayName, email string) (models.User, error) {
	now := time.Now().UTC()

	set := bson.M{
		"updated_at": now,
	}
	if displayName != "" {
		set["display_name"] = displayName
		set["display_name_ci"] = text.Fold(displayName)
	}
	if email != "" {
		set["email"] = email
	}

	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": uid},
		bson.M{
			"$set": set,
			"$setOnInsert": bson.M{
				"role":       models.RoleFounder,
				"created_at": now,
			},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)
	var u models.User
	if err := res.Decode(&u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// SetRole changes a user's active role.
func (s *Store) SetRole(ctx context.Context, uid, role string) error {
	res, err := s.c.UpdateByID(ctx, uid, bson.M{"$set": bson.M{
		"role":       role,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// RoleByID returns the user's stored role. Satisfies the authorization
// guard's role source.
func (s *Store) RoleByID(ctx context.Context, uid string) (string, error) {
	var doc struct {
		Role string `bson:"role"`
	}
	err := s.c.FindOne(ctx, bson.M{"_id": uid},
		options.FindOne().SetProjection(bson.M{"role": 1})).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return doc.Role, nil
}

// SyncDisplayName updates the identity record's display name. Called when a
// mentor profile is created or renamed so the two stay consistent.
func (s *Store) SyncDisplayName(ctx context.Context, uid, displayName string) error {
	res, err := s.c.UpdateByID(ctx, uid, bson.M{"$set": bson.M{
		"display_name":    displayName,
		"display_name_ci": text.Fold(displayName),
		"updated_at":      time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Delete removes a user record by uid. Returns the number of documents
// deleted (0 or 1). Used by account deletion.
func (s *Store) Delete(ctx context.Context, uid string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": uid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
