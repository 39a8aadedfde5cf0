package auditlog_test

import (
	"net/http/httptest"
	"testing"

	"github.com/launchlane/mentorhub/internal/app/store/audit"
	"github.com/launchlane/mentorhub/internal/app/system/auditlog"
	"github.com/launchlane/mentorhub/internal/app/system/events"
	"github.com/launchlane/mentorhub/internal/testutil"
	"go.uber.org/zap"
)

func TestLogger_NilLogger(t *testing.T) {
	// nil logger should be a no-op (not panic)
	var logger *auditlog.Logger
	ctx, cancel := testutil.TestContext()
	defer cancel()
	req := httptest.NewRequest("GET", "/", nil)

	// These should all be no-ops, not panic
	logger.Log(ctx, audit.Event{EventType: "test"})
	logger.AssignmentRequested(ctx, req, "uid-founder", "uid-mentor")
	logger.RoleSwitched(ctx, req, "uid-1", "founder", "mentor")
}

func TestLogger_Log_ConfigOff(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	zapLog := zap.NewNop()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zapLog, nil, auditlog.Config{
		Domain:  "off",
		Account: "off",
	})

	logger.Log(ctx, audit.Event{
		Category:  audit.CategoryAssignment,
		EventType: audit.EventAssignmentRequested,
		ActorID:   "uid-1",
		Success:   true,
	})

	// Verify nothing was logged to DB
	evs, err := store.GetByActor(ctx, "uid-1", 10)
	if err != nil {
		t.Fatalf("GetByActor failed: %v", err)
	}
	if len(evs) != 0 {
		t.Error("expected no events when config is 'off'")
	}
}

func TestLogger_Log_ConfigDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	zapLog := zap.NewNop()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zapLog, nil, auditlog.Config{
		Domain:  "db",
		Account: "db",
	})

	logger.Log(ctx, audit.Event{
		Category:  audit.CategoryAssignment,
		EventType: audit.EventAssignmentRequested,
		ActorID:   "uid-1",
		SubjectID: "uid-2",
		Success:   true,
	})

	evs, err := store.GetByActor(ctx, "uid-1", 10)
	if err != nil {
		t.Fatalf("GetByActor failed: %v", err)
	}
	if len(evs) != 1 {
		t.Fatalf("expected 1 event, got %d", len(evs))
	}
	if evs[0].EventType != audit.EventAssignmentRequested {
		t.Errorf("event type = %q", evs[0].EventType)
	}
}

func TestLogger_Log_ConfigLogOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	zapLog := zap.NewNop()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zapLog, nil, auditlog.Config{
		Domain:  "log",
		Account: "log",
	})

	logger.Log(ctx, audit.Event{
		Category:  audit.CategoryProfile,
		EventType: audit.EventProfileCreated,
		ActorID:   "uid-1",
		Success:   true,
	})

	// Zap-only config should skip the DB write
	evs, err := store.GetByActor(ctx, "uid-1", 10)
	if err != nil {
		t.Fatalf("GetByActor failed: %v", err)
	}
	if len(evs) != 0 {
		t.Error("expected no DB events when config is 'log'")
	}
}

func TestLogger_FeedsRecentBuffer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	zapLog := zap.NewNop()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	buf := events.NewBuffer(8)
	logger := auditlog.New(store, zapLog, buf, auditlog.Config{
		Domain:  "log",
		Account: "log",
	})

	req := httptest.NewRequest("POST", "/assignments/request", nil)
	logger.AssignmentRequested(ctx, req, "uid-founder", "uid-mentor")

	recent := buf.Recent()
	if len(recent) != 1 {
		t.Fatalf("expected 1 buffered event, got %d", len(recent))
	}
	if recent[0].Type != audit.EventAssignmentRequested {
		t.Errorf("buffered type = %q", recent[0].Type)
	}
	if recent[0].Actor != "uid-founder" {
		t.Errorf("buffered actor = %q", recent[0].Actor)
	}
}

func TestLogger_BufferSkippedWhenOff(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	zapLog := zap.NewNop()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	buf := events.NewBuffer(8)
	logger := auditlog.New(store, zapLog, buf, auditlog.Config{
		Domain:  "off",
		Account: "off",
	})

	logger.Log(ctx, audit.Event{
		Category:  audit.CategoryImpact,
		EventType: audit.EventImpactLogged,
		ActorID:   "uid-1",
		Success:   true,
	})

	if buf.Len() != 0 {
		t.Error("expected buffer to stay empty when category is off")
	}
}
