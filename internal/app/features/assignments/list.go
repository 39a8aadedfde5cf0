// internal/app/features/assignments/list.go
package assignments

import (
	"context"
	"net/http"

	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	assignmentstore "github.com/launchlane/mentorhub/internal/app/store/assignments"
	"github.com/launchlane/mentorhub/internal/app/system/authz"
	"github.com/launchlane/mentorhub/internal/app/system/normalize"
	"github.com/launchlane/mentorhub/internal/app/system/timeouts"
	"github.com/launchlane/mentorhub/internal/domain/models"
)

// ServeList handles GET /api/assignments. It returns every assignment the
// caller participates in, whichever side of the pairing they are on, so a
// user who has switched roles still sees their history. An optional
// ?status= narrows the result.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	_, _, uid, _ := authz.UserCtx(r)

	status := normalize.QueryParam(r.URL.Query().Get("status"))
	if status != "" && !models.ValidAssignmentStatus(status) {
		h.ErrLog.BadRequest(w, r, "Status must be one of pending, active, rejected.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := assignmentstore.New(h.DB).ListForUser(ctx, uid, status)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list assignments failed", err)
		return
	}
	if list == nil {
		list = []models.Assignment{}
	}

	httpapi.OK(w, map[string]any{"assignments": list})
}
