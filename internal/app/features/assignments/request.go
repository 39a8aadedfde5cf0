// internal/app/features/assignments/request.go
package assignments

import (
	"context"
	"net/http"

	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	assignmentstore "github.com/launchlane/mentorhub/internal/app/store/assignments"
	"github.com/launchlane/mentorhub/internal/app/system/authz"
	"github.com/launchlane/mentorhub/internal/app/system/inputval"
	"github.com/launchlane/mentorhub/internal/app/system/normalize"
	"github.com/launchlane/mentorhub/internal/app/system/timeouts"
)

type requestInput struct {
	MentorID string `json:"mentorId" validate:"required,max=200" label:"Mentor id"`
}

// HandleRequest handles POST /api/assignments/request. The caller is the
// founder; the new assignment starts pending and waits on the mentor.
func (h *Handler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	_, _, founderID, _ := authz.UserCtx(r)

	var in requestInput
	if err := httpapi.DecodeJSON(w, r, &in); err != nil {
		h.ErrLog.BadRequest(w, r, err.Error())
		return
	}
	if result := inputval.Validate(in); result.HasErrors() {
		h.ErrLog.BadRequest(w, r, result.First())
		return
	}
	mentorID := normalize.QueryParam(in.MentorID)
	if mentorID == "" {
		h.ErrLog.BadRequest(w, r, "Mentor id is required.")
		return
	}

	h.create(w, r, mentorID, founderID, founderID)
}

type assignInput struct {
	MentorID  string `json:"mentorId" validate:"required,max=200" label:"Mentor id"`
	FounderID string `json:"founderId" validate:"required,max=200" label:"Founder id"`
}

// HandleAssign handles POST /api/assignments/assign, the administrative
// variant: an admin pairs a mentor with a founder on their behalf. The
// assignment still starts pending and the mentor still accepts or rejects.
func (h *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	_, _, adminID, _ := authz.UserCtx(r)

	var in assignInput
	if err := httpapi.DecodeJSON(w, r, &in); err != nil {
		h.ErrLog.BadRequest(w, r, err.Error())
		return
	}
	if result := inputval.Validate(in); result.HasErrors() {
		h.ErrLog.BadRequest(w, r, result.First())
		return
	}
	mentorID := normalize.QueryParam(in.MentorID)
	founderID := normalize.QueryParam(in.FounderID)
	if mentorID == "" || founderID == "" {
		h.ErrLog.BadRequest(w, r, "Mentor id and founder id are required.")
		return
	}

	h.create(w, r, mentorID, founderID, adminID)
}

// create runs the shared insert path for both the self-service request and
// the administrative assign. assignedBy records who initiated the pairing.
func (h *Handler) create(w http.ResponseWriter, r *http.Request, mentorID, founderID, assignedBy string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := assignmentstore.New(h.DB)
	a, err := store.Request(ctx, mentorID, founderID, assignedBy)
	switch err {
	case nil:
	case assignmentstore.ErrSelfAssignment:
		h.Audit.AssignmentRequestBlocked(ctx, r, founderID, mentorID, "self assignment")
		httpapi.Fail(w, http.StatusBadRequest, "You cannot mentor yourself.")
		return
	case assignmentstore.ErrDuplicatePair:
		h.Metrics.AssignmentConflict()
		h.Audit.AssignmentRequestBlocked(ctx, r, founderID, mentorID, "duplicate pair")
		httpapi.Fail(w, http.StatusConflict, "Request already sent or active.")
		return
	default:
		h.ErrLog.ServerError(w, r, "create assignment failed", err)
		return
	}

	h.Metrics.AssignmentRequested()
	h.Audit.AssignmentRequested(ctx, r, founderID, mentorID)

	httpapi.Created(w, map[string]any{"assignment": a})
}
