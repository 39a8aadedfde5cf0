// internal/app/features/account/routes.go
package account

import (
	"github.com/go-chi/chi/v5"
	"github.com/launchlane/mentorhub/internal/app/system/auth"
)

// Routes mounts the account routes under the base path (typically
// "/api/account" from bootstrap). Both operations act on the caller's own
// account, so a signed-in user of any role qualifies.
func Routes(h *Handler, am *auth.Manager) chi.Router {
	r := chi.NewRouter()
	r.Use(am.RequireSignedIn)

	r.Post("/role", h.HandleRoleSwitch)
	r.Delete("/", h.HandleDelete)

	return r
}
