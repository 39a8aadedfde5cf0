package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/launchlane/mentorhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts an identity record with the given uid and role.
func (f *Fixtures) CreateUser(ctx context.Context, uid, displayName, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:            uid,
		DisplayName:   displayName,
		DisplayNameCI: text.Fold(displayName),
		Email:         uid + "@test.example",
		Role:          role,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := f.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateFounder inserts an identity record with the founder role.
func (f *Fixtures) CreateFounder(ctx context.Context, uid, displayName string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, uid, displayName, models.RoleFounder)
}

// CreateMentor inserts an identity record with the mentor role.
func (f *Fixtures) CreateMentor(ctx context.Context, uid, displayName string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, uid, displayName, models.RoleMentor)
}

// CreateMentorProfile inserts a public marketplace profile for uid.
// The strength value is written as given; use the profile store in tests
// that exercise derivation.
func (f *Fixtures) CreateMentorProfile(ctx context.Context, uid, displayName string, strength int) models.MentorProfile {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.MentorProfile{
		UserID:             uid,
		DisplayName:        displayName,
		DisplayNameCI:      text.Fold(displayName),
		Headline:           "Test headline",
		Industries:         []string{"fintech"},
		Skills:             []string{"fundraising"},
		YearsExperience:    5,
		IsAcceptingMentees: true,
		PricingModel:       models.PricingProBono,
		ProfileStrength:    strength,
		Visibility:         models.VisibilityPublic,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	_, err := f.db.Collection("mentor_profiles").InsertOne(ctx, p)
	if err != nil {
		f.t.Fatalf("failed to create test mentor profile: %v", err)
	}

	return p
}

// CreateAssignment inserts an assignment between mentorID and founderID with
// the given status, keyed by the pair key.
func (f *Fixtures) CreateAssignment(ctx context.Context, mentorID, founderID, status string) models.Assignment {
	f.t.Helper()

	now := time.Now().UTC()
	a := models.Assignment{
		ID:         models.PairKey(mentorID, founderID),
		MentorID:   mentorID,
		FounderID:  founderID,
		Status:     status,
		AssignedBy: founderID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := f.db.Collection("mentor_assignments").InsertOne(ctx, a)
	if err != nil {
		f.t.Fatalf("failed to create test assignment: %v", err)
	}

	return a
}

// CreateImpactLog inserts an impact log for the founder-mentor pair.
func (f *Fixtures) CreateImpactLog(ctx context.Context, founderID, mentorID, notes string) models.ImpactLog {
	f.t.Helper()

	log := models.ImpactLog{
		FounderID: founderID,
		MentorID:  mentorID,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}

	res, err := f.db.Collection("impact_logs").InsertOne(ctx, log)
	if err != nil {
		f.t.Fatalf("failed to create test impact log: %v", err)
	}
	log.ID = res.InsertedID.(primitive.ObjectID)

	return log
}
