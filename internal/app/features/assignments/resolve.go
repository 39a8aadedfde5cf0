// internal/app/features/assignments/resolve.go
package assignments

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	assignmentstore "github.com/launchlane/mentorhub/internal/app/store/assignments"
	"github.com/launchlane/mentorhub/internal/app/system/authz"
	"github.com/launchlane/mentorhub/internal/app/system/timeouts"
	"github.com/launchlane/mentorhub/internal/domain/models"
)

// HandleAccept handles POST /api/assignments/{id}/accept.
func (h *Handler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, models.AssignmentActive)
}

// HandleReject handles POST /api/assignments/{id}/reject. Rejection is
// terminal: the document stays behind and keeps the pair key occupied, so
// the founder cannot simply re-request.
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, models.AssignmentRejected)
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request, newStatus string) {
	_, _, callerUID, _ := authz.UserCtx(r)
	id := chi.URLParam(r, "id")
	if id == "" {
		h.ErrLog.BadRequest(w, r, "Assignment id is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := assignmentstore.New(h.DB)

	a, err := store.Get(ctx, id)
	if err == assignmentstore.ErrAssignmentNotFound {
		httpapi.Fail(w, http.StatusNotFound, "Assignment not found.")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "load assignment failed", err)
		return
	}

	// Only the assignment's mentor or an admin may decide its fate.
	if callerUID != a.MentorID && !authz.IsAdmin(r) {
		httpapi.Fail(w, http.StatusForbidden, "Only the requested mentor can respond to this request.")
		return
	}

	resolved, err := store.Resolve(ctx, a.MentorID, a.FounderID, newStatus)
	switch err {
	case nil:
	case assignmentstore.ErrNotPending:
		httpapi.Fail(w, http.StatusConflict, "This request has already been resolved.")
		return
	case assignmentstore.ErrAssignmentNotFound:
		httpapi.Fail(w, http.StatusNotFound, "Assignment not found.")
		return
	default:
		h.ErrLog.ServerError(w, r, "resolve assignment failed", err)
		return
	}

	if newStatus == models.AssignmentActive {
		h.Metrics.AssignmentAccepted()
		h.Audit.AssignmentAccepted(ctx, r, a.MentorID, a.FounderID)
	} else {
		h.Metrics.AssignmentRejected()
		h.Audit.AssignmentRejected(ctx, r, a.MentorID, a.FounderID)
	}

	httpapi.OK(w, map[string]any{"assignment": resolved})
}
