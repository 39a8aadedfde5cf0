// internal/app/features/status/routes.go
package status

import (
	"github.com/go-chi/chi/v5"
	"github.com/launchlane/mentorhub/internal/app/system/auth"
	"github.com/launchlane/mentorhub/internal/domain/models"
)

// Routes mounts the status routes under the base path (typically "/status"
// from bootstrap). Admin only.
func Routes(h *Handler, am *auth.Manager) chi.Router {
	r := chi.NewRouter()
	r.Use(am.RequireSignedIn)
	r.Use(am.RequireRole(models.RoleAdmin))

	r.Get("/", h.Serve)

	return r
}
