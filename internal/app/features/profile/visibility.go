// internal/app/features/profile/visibility.go
package profile

import (
	"context"
	"net/http"

	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	profilestore "github.com/launchlane/mentorhub/internal/app/store/profiles"
	"github.com/launchlane/mentorhub/internal/app/system/authz"
	"github.com/launchlane/mentorhub/internal/app/system/inputval"
	"github.com/launchlane/mentorhub/internal/app/system/normalize"
	"github.com/launchlane/mentorhub/internal/app/system/timeouts"
)

type visibilityInput struct {
	Visibility string `json:"visibility" validate:"required,visibility" label:"Visibility"`
}

// HandleVisibility handles PUT /api/profile/visibility. Profiles are never
// hard-deleted by profile operations; this is the soft-hide switch that
// removes them from marketplace discovery.
func (h *Handler) HandleVisibility(w http.ResponseWriter, r *http.Request) {
	_, _, uid, _ := authz.UserCtx(r)

	var in visibilityInput
	if err := httpapi.DecodeJSON(w, r, &in); err != nil {
		h.ErrLog.BadRequest(w, r, err.Error())
		return
	}
	if result := inputval.Validate(in); result.HasErrors() {
		h.ErrLog.BadRequest(w, r, result.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := profilestore.New(h.DB).SetVisibility(ctx, uid, normalize.Status(in.Visibility))
	if err == profilestore.ErrProfileNotFound {
		httpapi.Fail(w, http.StatusNotFound, "Profile not found.")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "set visibility failed", err)
		return
	}

	httpapi.OK(w, nil)
}
