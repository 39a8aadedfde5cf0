// internal/app/features/account/role.go
package account

import (
	"context"
	"net/http"

	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	userstore "github.com/launchlane/mentorhub/internal/app/store/users"
	"github.com/launchlane/mentorhub/internal/app/system/authz"
	"github.com/launchlane/mentorhub/internal/app/system/inputval"
	"github.com/launchlane/mentorhub/internal/app/system/timeouts"
)

type roleInput struct {
	Role string `json:"role" validate:"required,role" label:"Role"`
}

// HandleRoleSwitch handles POST /api/account/role. Only the founder and
// mentor roles are switchable; admin is never self-assignable. The switch
// mutates the identity record alone, so any mentor profile the user owns
// is left exactly as it was.
func (h *Handler) HandleRoleSwitch(w http.ResponseWriter, r *http.Request) {
	_, name, uid, _ := authz.UserCtx(r)

	var in roleInput
	if err := httpapi.DecodeJSON(w, r, &in); err != nil {
		h.ErrLog.BadRequest(w, r, err.Error())
		return
	}
	if result := inputval.Validate(in); result.HasErrors() {
		h.ErrLog.BadRequest(w, r, result.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := userstore.New(h.DB)

	// First sighting of this uid creates the identity record, so a brand
	// new user can pick a role before doing anything else.
	u, err := store.EnsureUser(ctx, uid, name, "")
	if err != nil {
		h.ErrLog.ServerError(w, r, "ensure user failed", err)
		return
	}
	if u.Role != in.Role {
		if err := store.SetRole(ctx, uid, in.Role); err != nil {
			h.ErrLog.ServerError(w, r, "set role failed", err)
			return
		}
	}

	h.Audit.RoleSwitched(ctx, r, uid, u.Role, in.Role)

	httpapi.OK(w, map[string]any{"role": in.Role})
}
