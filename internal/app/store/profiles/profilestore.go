// internal/app/store/profiles/profilestore.go
package profilestore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/launchlane/mentorhub/internal/app/system/strength"
	"github.com/launchlane/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var (
	ErrProfileExists   = errors.New("mentor profile already exists")
	ErrProfileNotFound = errors.New("mentor profile not found")
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("mentor_profiles")}
}

// Create inserts a mentor profile keyed by the owner's uid. The derived
// profile strength is computed here; any caller-supplied value is ignored.
func (s *Store) Create(ctx context.Context, p models.MentorProfile) (models.MentorProfile, error) {
	now := time.Now().UTC()
	p.DisplayNameCI = text.Fold(p.DisplayName)
	if p.Visibility == "" {
		p.Visibility = models.VisibilityPublic
	}
	p.ProfileStrength = strength.Score(p)
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, p)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.MentorProfile{}, ErrProfileExists
		}
		return models.MentorProfile{}, err
	}
	return p, nil
}

// Get loads a profile by the owner's uid regardless of visibility.
func (s *Store) Get(ctx context.Context, userID string) (models.MentorProfile, error) {
	var p models.MentorProfile
	err := s.c.FindOne(ctx, bson.M{"_id": userID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return models.MentorProfile{}, ErrProfileNotFound
	}
	if err != nil {
		return models.MentorProfile{}, err
	}
	return p, nil
}

// GetPublic loads a profile only when it is publicly visible.
func (s *Store) GetPublic(ctx context.Context, userID string) (models.MentorProfile, error) {
	var p models.MentorProfile
	err := s.c.FindOne(ctx, bson.M{
		"_id":        userID,
		"visibility": models.VisibilityPublic,
	}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return models.MentorProfile{}, ErrProfileNotFound
	}
	if err != nil {
		return models.MentorProfile{}, err
	}
	return p, nil
}

// Update replaces the mutable fields of an existing profile with the merged
// document the caller assembled, recomputing the derived strength. CreatedAt
// is preserved from the stored document.
func (s *Store) Update(ctx context.Context, p models.MentorProfile) (models.MentorProfile, error) {
	p.DisplayNameCI = text.Fold(p.DisplayName)
	p.ProfileStrength = strength.Score(p)
	p.UpdatedAt = time.Now().UTC()

	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": p.UserID},
		bson.M{"$set": bson.M{
			"display_name":         p.DisplayName,
			"display_name_ci":      p.DisplayNameCI,
			"headline":             p.Headline,
			"bio":                  p.Bio,
			"avatar_url":           p.AvatarURL,
			"company":              p.Company,
			"position":             p.Position,
			"linkedin_url":         p.LinkedinURL,
			"twitter_url":          p.TwitterURL,
			"website_url":          p.WebsiteURL,
			"industries":           p.Industries,
			"skills":               p.Skills,
			"coaching_style":       p.CoachingStyle,
			"years_experience":     p.YearsExperience,
			"portfolio":            p.Portfolio,
			"is_accepting_mentees": p.IsAcceptingMentees,
			"pricing_model":        p.PricingModel,
			"hourly_rate":          p.HourlyRate,
			"calendly_url":         p.CalendlyURL,
			"profile_strength":     p.ProfileStrength,
			"visibility":           p.Visibility,
			"updated_at":           p.UpdatedAt,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.MentorProfile
	if err := res.Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.MentorProfile{}, ErrProfileNotFound
		}
		return models.MentorProfile{}, err
	}
	return updated, nil
}

// SetAvatarURL records the stored avatar location and refreshes the derived
// strength, since the avatar contributes to the score.
func (s *Store) SetAvatarURL(ctx context.Context, userID, url string) (models.MentorProfile, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return models.MentorProfile{}, err
	}
	p.AvatarURL = url
	newStrength := strength.Score(p)

	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{
			"avatar_url":       url,
			"profile_strength": newStrength,
			"updated_at":       time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.MentorProfile
	if err := res.Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.MentorProfile{}, ErrProfileNotFound
		}
		return models.MentorProfile{}, err
	}
	return updated, nil
}

// SetVisibility soft-hides or republishes a profile.
func (s *Store) SetVisibility(ctx context.Context, userID, visibility string) error {
	res, err := s.c.UpdateByID(ctx, userID, bson.M{"$set": bson.M{
		"visibility": visibility,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// ListFilter narrows marketplace discovery results. Zero values mean
// "don't filter on this field".
type ListFilter struct {
	Industry      string
	Skill         string
	PricingModel  string
	AcceptingOnly bool
	NamePrefix    string // folded prefix match on display_name_ci
	MinStrength   int
	Limit         int64
	Offset        int64
}

func (f ListFilter) query() bson.M {
	query := bson.M{"visibility": models.VisibilityPublic}
	if f.Industry != "" {
		query["industries"] = f.Industry
	}
	if f.Skill != "" {
		query["skills"] = f.Skill
	}
	if f.PricingModel != "" {
		query["pricing_model"] = f.PricingModel
	}
	if f.AcceptingOnly {
		query["is_accepting_mentees"] = true
	}
	if f.NamePrefix != "" {
		query["display_name_ci"] = bson.M{
			"$gte": f.NamePrefix,
			"$lt":  f.NamePrefix + "￿",
		}
	}
	if f.MinStrength > 0 {
		query["profile_strength"] = bson.M{"$gte": f.MinStrength}
	}
	return query
}

// ListPublic returns public profiles matching the filter, strongest first
// with a stable _id tiebreak.
func (s *Store) ListPublic(ctx context.Context, f ListFilter) ([]models.MentorProfile, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "profile_strength", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(limit).
		SetSkip(f.Offset)

	cur, err := s.c.Find(ctx, f.query(), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var profiles []models.MentorProfile
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// CountPublic returns the number of public profiles matching the filter.
func (s *Store) CountPublic(ctx context.Context, f ListFilter) (int64, error) {
	return s.c.CountDocuments(ctx, f.query())
}

// Delete removes a profile by owner uid. Returns the number of documents
// deleted (0 or 1). Used by account deletion, not by profile operations.
func (s *Store) Delete(ctx context.Context, userID string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
