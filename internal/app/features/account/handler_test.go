package account_test

import (
	"testing"

	"github.com/launchlane/mentorhub/internal/app/features/account"
	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	profilestore "github.com/launchlane/mentorhub/internal/app/store/profiles"
	userstore "github.com/launchlane/mentorhub/internal/app/store/users"
	"github.com/launchlane/mentorhub/internal/domain/models"
	"github.com/launchlane/mentorhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*account.Handler, *mongo.Database, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	h := account.NewHandler(db, httpapi.NewErrorLogger(logger), nil, logger)
	return h, db, testutil.NewFixtures(t, db)
}

func switchRole(t *testing.T, h *account.Handler, user testutil.TestUser, role string) *testutil.ResponseRecorder {
	t.Helper()
	req := testutil.NewJSONRequest(t, "POST", "/api/account/role",
		map[string]any{"role": role}, user)
	rec := testutil.NewRecorder()
	h.HandleRoleSwitch(rec.ResponseRecorder, req)
	return rec
}

func TestHandleRoleSwitch(t *testing.T) {
	h, db, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateFounder(ctx, "u1", "Casey")

	switchRole(t, h, testutil.FounderUser("u1"), models.RoleMentor).AssertStatus(t, 200)

	role, err := userstore.New(db).RoleByID(ctx, "u1")
	if err != nil {
		t.Fatalf("role lookup: %v", err)
	}
	if role != models.RoleMentor {
		t.Errorf("role = %q, want mentor", role)
	}
}

func TestHandleRoleSwitch_CreatesIdentityRecord(t *testing.T) {
	h, db, _ := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	switchRole(t, h, testutil.FounderUser("newcomer"), models.RoleMentor).AssertStatus(t, 200)

	role, err := userstore.New(db).RoleByID(ctx, "newcomer")
	if err != nil {
		t.Fatalf("role lookup: %v", err)
	}
	if role != models.RoleMentor {
		t.Errorf("role = %q", role)
	}
}

func TestHandleRoleSwitch_InvalidRole(t *testing.T) {
	h, _, _ := newHandler(t)

	rec := switchRole(t, h, testutil.FounderUser("u1"), "admin")
	rec.AssertStatus(t, 400)
	rec.AssertContains(t, `Role must be "founder" or "mentor".`)
}

func TestHandleRoleSwitch_LeavesProfileUntouched(t *testing.T) {
	h, db, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateMentor(ctx, "u1", "Casey")
	fx.CreateMentorProfile(ctx, "u1", "Casey", 60)

	switchRole(t, h, testutil.MentorUser("u1"), models.RoleFounder).AssertStatus(t, 200)
	switchRole(t, h, testutil.FounderUser("u1"), models.RoleMentor).AssertStatus(t, 200)

	p, err := profilestore.New(db).Get(ctx, "u1")
	if err != nil {
		t.Fatalf("profile should survive role switches: %v", err)
	}
	if p.DisplayName != "Casey" {
		t.Errorf("displayName = %q", p.DisplayName)
	}
}

func TestHandleDelete(t *testing.T) {
	h, db, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateMentor(ctx, "u1", "Casey")
	fx.CreateMentorProfile(ctx, "u1", "Casey", 60)
	fx.CreateAssignment(ctx, "u1", "f1", models.AssignmentActive)
	fx.CreateAssignment(ctx, "u1", "f2", models.AssignmentPending)
	fx.CreateImpactLog(ctx, "f1", "u1", "session one")
	fx.CreateImpactLog(ctx, "f1", "u1", "session two")

	req := testutil.NewAuthenticatedRequest("DELETE", "/api/account", testutil.MentorUser("u1"))
	rec := testutil.NewRecorder()
	h.HandleDelete(rec.ResponseRecorder, req)
	rec.AssertStatus(t, 200)

	var resp struct {
		Success bool              `json:"success"`
		Removed map[string]string `json:"removed"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.Removed["profiles"] != "1" {
		t.Errorf("profiles removed = %q", resp.Removed["profiles"])
	}
	if resp.Removed["assignments"] != "2" {
		t.Errorf("assignments removed = %q", resp.Removed["assignments"])
	}
	if resp.Removed["impact_logs"] != "2" {
		t.Errorf("impact logs removed = %q", resp.Removed["impact_logs"])
	}
	if resp.Removed["users"] != "1" {
		t.Errorf("users removed = %q", resp.Removed["users"])
	}

	if _, err := profilestore.New(db).Get(ctx, "u1"); err != profilestore.ErrProfileNotFound {
		t.Errorf("profile still present: %v", err)
	}
	if _, err := userstore.New(db).Get(ctx, "u1"); err != userstore.ErrUserNotFound {
		t.Errorf("user still present: %v", err)
	}
}

func TestHandleDelete_EmptyAccount(t *testing.T) {
	h, _, _ := newHandler(t)

	req := testutil.NewAuthenticatedRequest("DELETE", "/api/account", testutil.FounderUser("ghost"))
	rec := testutil.NewRecorder()
	h.HandleDelete(rec.ResponseRecorder, req)

	rec.AssertStatus(t, 200)

	var resp struct {
		Removed map[string]string `json:"removed"`
	}
	rec.DecodeJSON(t, &resp)
	if resp.Removed["users"] != "0" {
		t.Errorf("users removed = %q", resp.Removed["users"])
	}
}
