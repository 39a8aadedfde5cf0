package validators_test

import (
	"testing"
	"time"

	"github.com/launchlane/mentorhub/internal/app/system/validators"
	"github.com/launchlane/mentorhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEnsureAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// EnsureAll should succeed on a clean database
	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// First call
	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}

	// Second call should also succeed (idempotent)
	err = validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// Verify collections exist
	expectedCollections := []string{
		"users",
		"mentor_profiles",
		"mentor_assignments",
		"impact_logs",
		"chat_annotations",
		"audit_events",
	}

	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		t.Fatalf("ListCollectionNames failed: %v", err)
	}

	collMap := make(map[string]bool)
	for _, name := range names {
		collMap[name] = true
	}

	for _, expected := range expectedCollections {
		if !collMap[expected] {
			t.Errorf("expected collection %q to exist", expected)
		}
	}
}

func TestUsersValidator_RequiredFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// Try to insert user without required fields - should fail
	_, err = db.Collection("users").InsertOne(ctx, bson.M{
		"email": "orphan@example.com",
	})
	if err == nil {
		t.Error("expected validation error when inserting user without required fields")
	}
}

func TestUsersValidator_ValidUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// Insert valid user - should succeed
	_, err = db.Collection("users").InsertOne(ctx, bson.M{
		"_id":             "uid-valid-user",
		"display_name":    "Test User",
		"display_name_ci": "test user",
		"email":           "test@example.com",
		"role":            "founder",
	})
	if err != nil {
		t.Errorf("Insert valid user failed: %v", err)
	}
}

func TestUsersValidator_InvalidRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// Try to insert user with invalid role - should fail
	_, err = db.Collection("users").InsertOne(ctx, bson.M{
		"_id":             "uid-invalid-role",
		"display_name":    "Test User",
		"display_name_ci": "test user",
		"role":            "invalid_role",
	})
	if err == nil {
		t.Error("expected validation error when inserting user with invalid role")
	}
}

func TestUsersValidator_AllValidRoles(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	validRoles := []string{"founder", "mentor", "admin", "superadmin"}

	for _, role := range validRoles {
		_, err = db.Collection("users").InsertOne(ctx, bson.M{
			"_id":             "uid-" + role,
			"display_name":    "Test " + role,
			"display_name_ci": "test " + role,
			"role":            role,
		})
		if err != nil {
			t.Errorf("Insert user with role %q failed: %v", role, err)
		}
	}
}

func TestMentorProfilesValidator_RequiredFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// Try to insert profile without required fields - should fail
	_, err = db.Collection("mentor_profiles").InsertOne(ctx, bson.M{
		"headline": "Helping founders scale",
	})
	if err == nil {
		t.Error("expected validation error when inserting mentor_profile without required fields")
	}
}

func TestMentorProfilesValidator_ValidProfile(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// Insert valid profile - should succeed
	_, err = db.Collection("mentor_profiles").InsertOne(ctx, bson.M{
		"_id":              "uid-mentor-1",
		"display_name":     "Jane Mentor",
		"display_name_ci":  "jane mentor",
		"headline":         "3x founder",
		"industries":       bson.A{"fintech"},
		"pricing_model":    "Pro Bono",
		"profile_strength": 45,
		"visibility":       "public",
		"created_at":       time.Now(),
		"updated_at":       time.Now(),
	})
	if err != nil {
		t.Errorf("Insert valid mentor_profile failed: %v", err)
	}
}

func TestMentorProfilesValidator_InvalidVisibility(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err = db.Collection("mentor_profiles").InsertOne(ctx, bson.M{
		"_id":             "uid-mentor-bad-vis",
		"display_name":    "Jane Mentor",
		"display_name_ci": "jane mentor",
		"visibility":      "unlisted",
		"created_at":      time.Now(),
	})
	if err == nil {
		t.Error("expected validation error when inserting mentor_profile with invalid visibility")
	}
}

func TestMentorAssignmentsValidator_RequiredFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// Try to insert assignment without required fields - should fail
	_, err = db.Collection("mentor_assignments").InsertOne(ctx, bson.M{
		"assigned_by": "uid-founder-1",
	})
	if err == nil {
		t.Error("expected validation error when inserting mentor_assignment without required fields")
	}
}

func TestMentorAssignmentsValidator_ValidAssignment(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err = db.Collection("mentor_assignments").InsertOne(ctx, bson.M{
		"_id":         "uid-founder-1:uid-mentor-1",
		"mentor_id":   "uid-mentor-1",
		"founder_id":  "uid-founder-1",
		"status":      "pending",
		"assigned_by": "uid-founder-1",
		"created_at":  time.Now(),
		"updated_at":  time.Now(),
	})
	if err != nil {
		t.Errorf("Insert valid mentor_assignment failed: %v", err)
	}
}

func TestMentorAssignmentsValidator_InvalidStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err = db.Collection("mentor_assignments").InsertOne(ctx, bson.M{
		"_id":        "uid-founder-2:uid-mentor-2",
		"mentor_id":  "uid-mentor-2",
		"founder_id": "uid-founder-2",
		"status":     "paused",
		"created_at": time.Now(),
	})
	if err == nil {
		t.Error("expected validation error when inserting mentor_assignment with invalid status")
	}
}

func TestImpactLogsValidator_RequiredFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err = db.Collection("impact_logs").InsertOne(ctx, bson.M{
		"notes": "great session",
	})
	if err == nil {
		t.Error("expected validation error when inserting impact_log without required fields")
	}
}

func TestImpactLogsValidator_ValidLog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err = db.Collection("impact_logs").InsertOne(ctx, bson.M{
		"founder_id": "uid-founder-1",
		"mentor_id":  "uid-mentor-1",
		"notes":      "covered pricing strategy",
		"metrics":    bson.M{"mrr": "12000"},
		"created_at": time.Now(),
	})
	if err != nil {
		t.Errorf("Insert valid impact_log failed: %v", err)
	}
}

func TestChatAnnotationsValidator_RequiredFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err = db.Collection("chat_annotations").InsertOne(ctx, bson.M{
		"comment": "follow up next week",
	})
	if err == nil {
		t.Error("expected validation error when inserting chat_annotation without required fields")
	}
}

func TestChatAnnotationsValidator_ValidAnnotation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err = db.Collection("chat_annotations").InsertOne(ctx, bson.M{
		"chat_id":    "chat-123",
		"author_id":  "uid-mentor-1",
		"comment":    "founder agreed to revisit pricing",
		"created_at": time.Now(),
	})
	if err != nil {
		t.Errorf("Insert valid chat_annotation failed: %v", err)
	}
}

func TestAuditEvents_NoValidator(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := validators.EnsureAll(ctx, db)
	if err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	// audit_events has no validator, so any document should be accepted
	_, err = db.Collection("audit_events").InsertOne(ctx, bson.M{
		"any_field": "any_value",
	})
	if err != nil {
		t.Errorf("Insert to audit_events should succeed (no validator): %v", err)
	}
}
