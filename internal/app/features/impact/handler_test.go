package impact_test

import (
	"strings"
	"testing"

	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	"github.com/launchlane/mentorhub/internal/app/features/impact"
	"github.com/launchlane/mentorhub/internal/domain/models"
	"github.com/launchlane/mentorhub/internal/testutil"
	"go.uber.org/zap"
)

type createResponse struct {
	Success   bool             `json:"success"`
	ImpactLog models.ImpactLog `json:"impactLog"`
	Error     string           `json:"error"`
}

type listResponse struct {
	Success    bool               `json:"success"`
	ImpactLogs []models.ImpactLog `json:"impactLogs"`
}

func newHandler(t *testing.T) (*impact.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	h := impact.NewHandler(db, httpapi.NewErrorLogger(logger), nil, nil, logger)
	return h, testutil.NewFixtures(t, db)
}

func logSession(t *testing.T, h *impact.Handler, founderID, mentorID, notes string) *testutil.ResponseRecorder {
	t.Helper()
	req := testutil.NewJSONRequest(t, "POST", "/api/impact",
		map[string]any{"mentorId": mentorID, "notes": notes}, testutil.FounderUser(founderID))
	rec := testutil.NewRecorder()
	h.HandleCreate(rec.ResponseRecorder, req)
	return rec
}

func TestHandleCreate_NoAssignment(t *testing.T) {
	h, _ := newHandler(t)

	rec := logSession(t, h, "founder1", "mentorX", "great session")
	rec.AssertStatus(t, 401)
	rec.AssertContains(t, "Unauthorized: Mentor not assigned to this founder")
}

func TestHandleCreate_PendingAssignmentPasses(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateAssignment(ctx, "m1", "f1", models.AssignmentPending)

	rec := logSession(t, h, "f1", "m1", "kickoff call")
	rec.AssertStatus(t, 201)

	var resp createResponse
	rec.DecodeJSON(t, &resp)
	if resp.ImpactLog.FounderID != "f1" || resp.ImpactLog.MentorID != "m1" {
		t.Errorf("pair = %q/%q", resp.ImpactLog.FounderID, resp.ImpactLog.MentorID)
	}
	if resp.ImpactLog.CreatedAt.IsZero() {
		t.Error("createdAt not set")
	}
}

func TestHandleCreate_ActiveAssignmentPasses(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateAssignment(ctx, "m1", "f1", models.AssignmentActive)

	logSession(t, h, "f1", "m1", "weekly sync").AssertStatus(t, 201)
}

func TestHandleCreate_RejectedAssignmentBlocked(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateAssignment(ctx, "m1", "f1", models.AssignmentRejected)

	rec := logSession(t, h, "f1", "m1", "should not land")
	rec.AssertStatus(t, 401)
	rec.AssertContains(t, "Unauthorized: Mentor not assigned to this founder")
}

func TestHandleCreate_MissingMentorID(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewJSONRequest(t, "POST", "/api/impact",
		map[string]any{"notes": "no mentor"}, testutil.FounderUser("f1"))
	rec := testutil.NewRecorder()
	h.HandleCreate(rec.ResponseRecorder, req)

	rec.AssertStatus(t, 400)
	rec.AssertContains(t, "Mentor id is required.")
}

func TestHandleCreate_SanitizesNotes(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateAssignment(ctx, "m1", "f1", models.AssignmentActive)

	rec := logSession(t, h, "f1", "m1", `intro <script>alert("x")</script> done`)
	rec.AssertStatus(t, 201)

	var resp createResponse
	rec.DecodeJSON(t, &resp)
	if resp.ImpactLog.Notes == "" {
		t.Fatal("notes emptied")
	}
	if strings.Contains(resp.ImpactLog.Notes, "<script") {
		t.Errorf("script survived: %q", resp.ImpactLog.Notes)
	}
}

func TestServeList_FounderAndMentorViews(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateAssignment(ctx, "m1", "f1", models.AssignmentActive)
	fx.CreateAssignment(ctx, "m1", "f2", models.AssignmentActive)

	logSession(t, h, "f1", "m1", "one").AssertStatus(t, 201)
	logSession(t, h, "f1", "m1", "two").AssertStatus(t, 201)
	logSession(t, h, "f2", "m1", "three").AssertStatus(t, 201)

	req := testutil.NewAuthenticatedRequest("GET", "/api/impact", testutil.FounderUser("f1"))
	rec := testutil.NewRecorder()
	h.ServeList(rec.ResponseRecorder, req)
	rec.AssertStatus(t, 200)

	var resp listResponse
	rec.DecodeJSON(t, &resp)
	if len(resp.ImpactLogs) != 2 {
		t.Errorf("founder logs = %d, want 2", len(resp.ImpactLogs))
	}

	req = testutil.NewAuthenticatedRequest("GET", "/api/impact", testutil.MentorUser("m1"))
	rec = testutil.NewRecorder()
	h.ServeList(rec.ResponseRecorder, req)
	rec.DecodeJSON(t, &resp)
	if len(resp.ImpactLogs) != 3 {
		t.Errorf("mentor logs = %d, want 3", len(resp.ImpactLogs))
	}
}

func TestServeList_EmptyIsArray(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewAuthenticatedRequest("GET", "/api/impact", testutil.FounderUser("nobody"))
	rec := testutil.NewRecorder()
	h.ServeList(rec.ResponseRecorder, req)

	rec.AssertStatus(t, 200)
	rec.AssertContains(t, `"impactLogs":[]`)
}

func TestServeList_BadLimit(t *testing.T) {
	h, _ := newHandler(t)

	req := testutil.NewAuthenticatedRequest("GET", "/api/impact?limit=zero", testutil.FounderUser("f1"))
	rec := testutil.NewRecorder()
	h.ServeList(rec.ResponseRecorder, req)

	rec.AssertStatus(t, 400)
}
