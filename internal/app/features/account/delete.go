// internal/app/features/account/delete.go
package account

import (
	"context"
	"net/http"
	"strconv"

	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	annotationstore "github.com/launchlane/mentorhub/internal/app/store/annotations"
	assignmentstore "github.com/launchlane/mentorhub/internal/app/store/assignments"
	impactstore "github.com/launchlane/mentorhub/internal/app/store/impactlogs"
	profilestore "github.com/launchlane/mentorhub/internal/app/store/profiles"
	userstore "github.com/launchlane/mentorhub/internal/app/store/users"
	"github.com/launchlane/mentorhub/internal/app/system/authz"
	"github.com/launchlane/mentorhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /api/account. It removes everything the
// caller owns or participates in: mentor profile, assignments on either
// side, impact logs in either role, chat annotations they authored, and
// finally the identity record. Impact logs are deleted in bounded batches
// by the store, so a long mentoring history cannot pin a single oversized
// delete.
//
// The sweep is best-effort sequential rather than transactional; a failure
// partway leaves earlier deletions in place and reports the error.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	_, _, uid, _ := authz.UserCtx(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	removed := map[string]string{}

	profiles, err := profilestore.New(h.DB).Delete(ctx, uid)
	if err != nil {
		h.ErrLog.ServerError(w, r, "delete profile failed", err)
		return
	}
	removed["profiles"] = strconv.FormatInt(profiles, 10)

	assignments, err := assignmentstore.New(h.DB).DeleteForUser(ctx, uid)
	if err != nil {
		h.ErrLog.ServerError(w, r, "delete assignments failed", err)
		return
	}
	removed["assignments"] = strconv.FormatInt(assignments, 10)

	impactLogs, err := impactstore.New(h.DB).DeleteForUser(ctx, uid)
	if err != nil {
		h.ErrLog.ServerError(w, r, "delete impact logs failed", err)
		return
	}
	removed["impact_logs"] = strconv.FormatInt(impactLogs, 10)

	annotations, err := annotationstore.New(h.DB).DeleteByAuthor(ctx, uid)
	if err != nil {
		h.ErrLog.ServerError(w, r, "delete annotations failed", err)
		return
	}
	removed["annotations"] = strconv.FormatInt(annotations, 10)

	users, err := userstore.New(h.DB).Delete(ctx, uid)
	if err != nil {
		h.ErrLog.ServerError(w, r, "delete user failed", err)
		return
	}
	removed["users"] = strconv.FormatInt(users, 10)

	h.Log.Info("account deleted",
		zap.String("uid", uid),
		zap.Int64("profiles", profiles),
		zap.Int64("assignments", assignments),
		zap.Int64("impact_logs", impactLogs),
		zap.Int64("annotations", annotations),
	)
	h.Audit.AccountDeleted(ctx, r, uid, removed)

	httpapi.OK(w, map[string]any{"removed": removed})
}
