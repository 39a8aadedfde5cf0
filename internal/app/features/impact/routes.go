// internal/app/features/impact/routes.go
package impact

import (
	"github.com/go-chi/chi/v5"
	"github.com/launchlane/mentorhub/internal/app/system/auth"
	"github.com/launchlane/mentorhub/internal/domain/models"
)

// Routes mounts the impact routes under the base path (typically
// "/api/impact" from bootstrap).
func Routes(h *Handler, am *auth.Manager) chi.Router {
	r := chi.NewRouter()
	r.Use(am.RequireSignedIn)

	r.Get("/", h.ServeList)

	r.Group(func(fr chi.Router) {
		fr.Use(am.RequireRole(models.RoleFounder))
		fr.Post("/", h.HandleCreate)
	})

	return r
}
