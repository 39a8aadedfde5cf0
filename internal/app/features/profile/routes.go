// internal/app/features/profile/routes.go
package profile

import (
	"github.com/go-chi/chi/v5"
	"github.com/launchlane/mentorhub/internal/app/system/auth"
	"github.com/launchlane/mentorhub/internal/domain/models"
)

// Routes mounts the profile routes under the base path (typically
// "/api/profile" from bootstrap).
func Routes(h *Handler, am *auth.Manager) chi.Router {
	r := chi.NewRouter()

	// Reads: own profile when signed in, public profile via ?uid= for anyone.
	r.Get("/", h.ServeGet)

	// Writes are mentor-only.
	r.Group(func(pr chi.Router) {
		pr.Use(am.RequireSignedIn)
		pr.Use(am.RequireRole(models.RoleMentor))

		pr.Post("/", h.HandleCreate)
		pr.Put("/", h.HandleUpdate)
		pr.Post("/avatar", h.HandleAvatarUpload)
		pr.Put("/visibility", h.HandleVisibility)
	})

	return r
}
