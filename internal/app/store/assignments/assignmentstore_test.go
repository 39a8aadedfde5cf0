package assignmentstore_test

import (
	"testing"

	assignmentstore "github.com/launchlane/mentorhub/internal/app/store/assignments"
	"github.com/launchlane/mentorhub/internal/domain/models"
	"github.com/launchlane/mentorhub/internal/testutil"
)

func TestStore_Request(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a, err := store.Request(ctx, "uid-mentor", "uid-founder", "uid-founder")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if a.Status != models.AssignmentPending {
		t.Errorf("status = %q, want pending", a.Status)
	}
	if a.ID != models.PairKey("uid-mentor", "uid-founder") {
		t.Errorf("id = %q, want pair key", a.ID)
	}
	if a.CreatedAt.IsZero() || a.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestStore_Request_Self(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Request(ctx, "uid-same", "uid-same", "uid-same")
	if err != assignmentstore.ErrSelfAssignment {
		t.Errorf("expected ErrSelfAssignment, got %v", err)
	}
}

func TestStore_Request_DuplicatePair(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Request(ctx, "uid-mentor", "uid-founder", "uid-founder"); err != nil {
		t.Fatalf("first Request failed: %v", err)
	}

	// Same pair again
	_, err := store.Request(ctx, "uid-mentor", "uid-founder", "uid-founder")
	if err != assignmentstore.ErrDuplicatePair {
		t.Errorf("expected ErrDuplicatePair, got %v", err)
	}

	// Same two people with roles reversed still collides on the pair key
	_, err = store.Request(ctx, "uid-founder", "uid-mentor", "uid-mentor")
	if err != assignmentstore.ErrDuplicatePair {
		t.Errorf("expected ErrDuplicatePair on reversed pair, got %v", err)
	}
}

func TestStore_Request_RejectedPairStaysBlocked(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Request(ctx, "uid-mentor", "uid-founder", "uid-founder"); err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if _, err := store.Resolve(ctx, "uid-mentor", "uid-founder", models.AssignmentRejected); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	// Rejection is terminal for the pair
	_, err := store.Request(ctx, "uid-mentor", "uid-founder", "uid-founder")
	if err != assignmentstore.ErrDuplicatePair {
		t.Errorf("expected ErrDuplicatePair after rejection, got %v", err)
	}
}

func TestStore_Resolve_Accept(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Request(ctx, "uid-mentor", "uid-founder", "uid-founder"); err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	a, err := store.Resolve(ctx, "uid-mentor", "uid-founder", models.AssignmentActive)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if a.Status != models.AssignmentActive {
		t.Errorf("status = %q, want active", a.Status)
	}

	active, err := store.HasActive(ctx, "uid-mentor", "uid-founder")
	if err != nil {
		t.Fatalf("HasActive failed: %v", err)
	}
	if !active {
		t.Error("expected pair to be active")
	}
}

func TestStore_Resolve_OnlyPending(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Request(ctx, "uid-mentor", "uid-founder", "uid-founder"); err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if _, err := store.Resolve(ctx, "uid-mentor", "uid-founder", models.AssignmentActive); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	// Accepted assignments cannot transition again
	_, err := store.Resolve(ctx, "uid-mentor", "uid-founder", models.AssignmentRejected)
	if err != assignmentstore.ErrNotPending {
		t.Errorf("expected ErrNotPending, got %v", err)
	}
}

func TestStore_Resolve_WrongMentor(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Request(ctx, "uid-mentor", "uid-founder", "uid-founder"); err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	// The founder cannot resolve their own request; the filter pins the
	// mentor side of the pair.
	_, err := store.Resolve(ctx, "uid-founder", "uid-mentor", models.AssignmentActive)
	if err != assignmentstore.ErrNotPending {
		t.Errorf("expected ErrNotPending for wrong mentor, got %v", err)
	}
}

func TestStore_Resolve_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Resolve(ctx, "uid-mentor", "uid-founder", models.AssignmentActive)
	if err != assignmentstore.ErrAssignmentNotFound {
		t.Errorf("expected ErrAssignmentNotFound, got %v", err)
	}
}

func TestStore_HasActive_PendingIsNotActive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Request(ctx, "uid-mentor", "uid-founder", "uid-founder"); err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	active, err := store.HasActive(ctx, "uid-mentor", "uid-founder")
	if err != nil {
		t.Fatalf("HasActive failed: %v", err)
	}
	if active {
		t.Error("pending assignment must not count as active")
	}
}

func TestStore_Lists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pairs := []struct{ mentor, founder string }{
		{"uid-mentor", "uid-founder-1"},
		{"uid-mentor", "uid-founder-2"},
		{"uid-other-mentor", "uid-founder-1"},
	}
	for _, p := range pairs {
		if _, err := store.Request(ctx, p.mentor, p.founder, p.founder); err != nil {
			t.Fatalf("Request failed: %v", err)
		}
	}
	if _, err := store.Resolve(ctx, "uid-mentor", "uid-founder-1", models.AssignmentActive); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	mentorAll, err := store.ListForMentor(ctx, "uid-mentor", "")
	if err != nil {
		t.Fatalf("ListForMentor failed: %v", err)
	}
	if len(mentorAll) != 2 {
		t.Errorf("mentor list = %d, want 2", len(mentorAll))
	}

	mentorPending, err := store.ListForMentor(ctx, "uid-mentor", models.AssignmentPending)
	if err != nil {
		t.Fatalf("ListForMentor failed: %v", err)
	}
	if len(mentorPending) != 1 {
		t.Errorf("mentor pending list = %d, want 1", len(mentorPending))
	}

	founderAll, err := store.ListForFounder(ctx, "uid-founder-1", "")
	if err != nil {
		t.Fatalf("ListForFounder failed: %v", err)
	}
	if len(founderAll) != 2 {
		t.Errorf("founder list = %d, want 2", len(founderAll))
	}
}

func TestStore_DeleteForUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := assignmentstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Request(ctx, "uid-mentor", "uid-founder", "uid-founder"); err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if _, err := store.Request(ctx, "uid-founder", "uid-third", "uid-third"); err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if _, err := store.Request(ctx, "uid-mentor", "uid-other", "uid-other"); err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	// uid-founder participates in two assignments, one as founder and one
	// as mentor
	n, err := store.DeleteForUser(ctx, "uid-founder")
	if err != nil {
		t.Fatalf("DeleteForUser failed: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted = %d, want 2", n)
	}

	remaining, err := store.ListForMentor(ctx, "uid-mentor", "")
	if err != nil {
		t.Fatalf("ListForMentor failed: %v", err)
	}
	if len(remaining) != 1 {
		t.Errorf("remaining mentor assignments = %d, want 1", len(remaining))
	}
}
