// internal/app/features/impact/impact.go
package impact

import (
	"context"
	"net/http"
	"strconv"

	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	assignmentstore "github.com/launchlane/mentorhub/internal/app/store/assignments"
	impactstore "github.com/launchlane/mentorhub/internal/app/store/impactlogs"
	"github.com/launchlane/mentorhub/internal/app/system/authz"
	"github.com/launchlane/mentorhub/internal/app/system/htmlsanitize"
	"github.com/launchlane/mentorhub/internal/app/system/inputval"
	"github.com/launchlane/mentorhub/internal/app/system/normalize"
	"github.com/launchlane/mentorhub/internal/app/system/timeouts"
	"github.com/launchlane/mentorhub/internal/domain/models"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type createInput struct {
	MentorID string            `json:"mentorId" validate:"required,max=200" label:"Mentor id"`
	Notes    string            `json:"notes" validate:"max=5000" label:"Notes"`
	Metrics  map[string]string `json:"metrics"`
}

// HandleCreate handles POST /api/impact. The caller is the founder; the
// write is refused unless a non-rejected assignment links them to the
// mentor named in the body.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	_, _, founderID, _ := authz.UserCtx(r)

	var in createInput
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	a, err := assignmentstore.New(h.DB).GetByPair(ctx, mentorID, founderID)
	if err == assignmentstore.ErrAssignmentNotFound || (err == nil && a.Status == models.AssignmentRejected) {
		h.Audit.ImpactBlocked(ctx, r, founderID, mentorID, "no non-rejected assignment")
		httpapi.Fail(w, http.StatusUnauthorized, "Unauthorized: Mentor not assigned to this founder")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "assignment lookup failed", err)
		return
	}

	log := models.ImpactLog{
		FounderID: founderID,
		MentorID:  mentorID,
		Notes:     htmlsanitize.Plain(in.Notes),
		Metrics:   sanitizeMetrics(in.Metrics),
	}
	created, err := impactstore.New(h.DB).Append(ctx, log)
	if err != nil {
		h.ErrLog.ServerError(w, r, "append impact log failed", err)
		return
	}

	h.Metrics.ImpactLogCreated()
	h.Audit.ImpactLogged(ctx, r, founderID, mentorID)

	httpapi.Created(w, map[string]any{"impactLog": created})
}

// ServeList handles GET /api/impact. Founders see the sessions they logged;
// mentors see the sessions logged about them.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	_, _, uid, _ := authz.UserCtx(r)

	limit := int64(defaultListLimit)
	if raw := normalize.QueryParam(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 {
			h.ErrLog.BadRequest(w, r, "Limit must be a positive integer.")
			return
		}
		if n > maxListLimit {
			n = maxListLimit
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := impactstore.New(h.DB)
	var (
		logs []models.ImpactLog
		err  error
	)
	if authz.IsMentor(r) {
		logs, err = store.ListByMentor(ctx, uid, limit)
	} else {
		logs, err = store.ListByFounder(ctx, uid, limit)
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "list impact logs failed", err)
		return
	}
	if logs == nil {
		logs = []models.ImpactLog{}
	}

	httpapi.OK(w, map[string]any{"impactLogs": logs})
}

// sanitizeMetrics strips markup from free-form metric keys and values and
// drops entries whose key sanitizes to nothing.
func sanitizeMetrics(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		key := htmlsanitize.Plain(k)
		if key == "" {
			continue
		}
		out[key] = htmlsanitize.Plain(v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
