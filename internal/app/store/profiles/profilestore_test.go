package profilestore_test

import (
	"testing"

	profilestore "github.com/launchlane/mentorhub/internal/app/store/profiles"
	"github.com/launchlane/mentorhub/internal/domain/models"
	"github.com/launchlane/mentorhub/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	profile := models.MentorProfile{
		UserID:      "uid-mentor-1",
		DisplayName: "Jane Mentor",
		Headline:    "3x founder, now helping others",
	}

	created, err := store.Create(ctx, profile)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Verify normalized fields
	if created.DisplayNameCI == "" {
		t.Error("expected DisplayNameCI to be set")
	}

	// Verify timestamps
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if created.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}

	// Verify default visibility
	if created.Visibility != models.VisibilityPublic {
		t.Errorf("expected visibility 'public', got %q", created.Visibility)
	}

	// Verify derived strength was computed (display name + headline)
	if created.ProfileStrength <= 0 {
		t.Errorf("expected positive profile strength, got %d", created.ProfileStrength)
	}
}

func TestStore_Create_Duplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	profile := models.MentorProfile{
		UserID:      "uid-mentor-dup",
		DisplayName: "Jane Mentor",
	}

	if _, err := store.Create(ctx, profile); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	// Second create for the same uid must fail
	_, err := store.Create(ctx, profile)
	if err != profilestore.ErrProfileExists {
		t.Errorf("expected ErrProfileExists, got %v", err)
	}
}

func TestStore_Create_IgnoresCallerStrength(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	profile := models.MentorProfile{
		UserID:          "uid-mentor-strength",
		DisplayName:     "Jane Mentor",
		ProfileStrength: 99, // must be recomputed, not trusted
	}

	created, err := store.Create(ctx, profile)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ProfileStrength == 99 {
		t.Error("expected caller-supplied strength to be recomputed")
	}
}

func TestStore_Get_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Get(ctx, "uid-missing")
	if err != profilestore.ErrProfileNotFound {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestStore_Update_RecomputesStrength(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.MentorProfile{
		UserID:      "uid-mentor-2",
		DisplayName: "Jane Mentor",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	created.Headline = "Growth advisor"
	created.Company = "Acme"
	created.CalendlyURL = "https://calendly.com/jane"

	updated, err := store.Update(ctx, created)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.ProfileStrength <= created.ProfileStrength {
		t.Errorf("expected strength to grow: before=%d after=%d",
			created.ProfileStrength, updated.ProfileStrength)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("expected UpdatedAt to advance")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("expected CreatedAt to be preserved")
	}
}

func TestStore_Update_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Update(ctx, models.MentorProfile{
		UserID:      "uid-missing",
		DisplayName: "Ghost",
	})
	if err != profilestore.ErrProfileNotFound {
		t.Errorf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestStore_SetAvatarURL(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.MentorProfile{
		UserID:      "uid-mentor-3",
		DisplayName: "Jane Mentor",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := store.SetAvatarURL(ctx, "uid-mentor-3", "/avatars/uid-mentor-3.png")
	if err != nil {
		t.Fatalf("SetAvatarURL failed: %v", err)
	}
	if updated.AvatarURL != "/avatars/uid-mentor-3.png" {
		t.Errorf("avatar url = %q", updated.AvatarURL)
	}
	if updated.ProfileStrength <= created.ProfileStrength {
		t.Error("expected avatar to raise profile strength")
	}
}

func TestStore_ListPublic_ExcludesPrivate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.MentorProfile{
		UserID: "uid-public", DisplayName: "Public Mentor",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, models.MentorProfile{
		UserID: "uid-private", DisplayName: "Private Mentor",
		Visibility: models.VisibilityPrivate,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	list, err := store.ListPublic(ctx, profilestore.ListFilter{})
	if err != nil {
		t.Fatalf("ListPublic failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 public profile, got %d", len(list))
	}
	if list[0].UserID != "uid-public" {
		t.Errorf("unexpected profile %q in public list", list[0].UserID)
	}
}

func TestStore_ListPublic_Filters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seed := []models.MentorProfile{
		{
			UserID: "uid-fintech", DisplayName: "Fin Mentor",
			Industries: []string{"fintech"}, PricingModel: models.PricingProBono,
			IsAcceptingMentees: true,
		},
		{
			UserID: "uid-saas", DisplayName: "SaaS Mentor",
			Industries: []string{"saas"}, PricingModel: models.PricingPaid,
		},
	}
	for _, p := range seed {
		if _, err := store.Create(ctx, p); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	list, err := store.ListPublic(ctx, profilestore.ListFilter{Industry: "fintech"})
	if err != nil {
		t.Fatalf("ListPublic failed: %v", err)
	}
	if len(list) != 1 || list[0].UserID != "uid-fintech" {
		t.Errorf("industry filter returned %v", list)
	}

	list, err = store.ListPublic(ctx, profilestore.ListFilter{AcceptingOnly: true})
	if err != nil {
		t.Fatalf("ListPublic failed: %v", err)
	}
	if len(list) != 1 || list[0].UserID != "uid-fintech" {
		t.Errorf("accepting filter returned %v", list)
	}

	list, err = store.ListPublic(ctx, profilestore.ListFilter{PricingModel: models.PricingPaid})
	if err != nil {
		t.Fatalf("ListPublic failed: %v", err)
	}
	if len(list) != 1 || list[0].UserID != "uid-saas" {
		t.Errorf("pricing filter returned %v", list)
	}
}

func TestStore_ListPublic_SortsByStrength(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Weak profile: just a name. Strong profile: many scored fields.
	if _, err := store.Create(ctx, models.MentorProfile{
		UserID: "uid-weak", DisplayName: "Weak Mentor",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	rate := 150
	if _, err := store.Create(ctx, models.MentorProfile{
		UserID:      "uid-strong",
		DisplayName: "Strong Mentor",
		Headline:    "Serial operator",
		Company:     "Acme",
		Position:    "CEO",
		LinkedinURL: "https://linkedin.com/in/strong",
		Industries:  []string{"fintech"},
		Skills:      []string{"gtm"},
		CalendlyURL: "https://calendly.com/strong",
		PricingModel: models.PricingPaid,
		HourlyRate:   &rate,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	list, err := store.ListPublic(ctx, profilestore.ListFilter{})
	if err != nil {
		t.Fatalf("ListPublic failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(list))
	}
	if list[0].UserID != "uid-strong" {
		t.Errorf("expected strongest profile first, got %q", list[0].UserID)
	}
}

func TestStore_SetVisibility(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.MentorProfile{
		UserID: "uid-vis", DisplayName: "Vis Mentor",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.SetVisibility(ctx, "uid-vis", models.VisibilityPrivate); err != nil {
		t.Fatalf("SetVisibility failed: %v", err)
	}

	if _, err := store.GetPublic(ctx, "uid-vis"); err != profilestore.ErrProfileNotFound {
		t.Errorf("expected private profile to be hidden, got %v", err)
	}

	// Still reachable for the owner
	p, err := store.Get(ctx, "uid-vis")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if p.Visibility != models.VisibilityPrivate {
		t.Errorf("visibility = %q", p.Visibility)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := profilestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.MentorProfile{
		UserID: "uid-del", DisplayName: "Del Mentor",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	n, err := store.Delete(ctx, "uid-del")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted = %d, want 1", n)
	}

	if _, err := store.Get(ctx, "uid-del"); err != profilestore.ErrProfileNotFound {
		t.Errorf("expected ErrProfileNotFound after delete, got %v", err)
	}
}
