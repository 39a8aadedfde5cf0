// internal/app/features/assignments/routes.go
package assignments

import (
	"github.com/go-chi/chi/v5"
	"github.com/launchlane/mentorhub/internal/app/system/auth"
	"github.com/launchlane/mentorhub/internal/domain/models"
)

// Routes mounts the assignment routes under the base path (typically
// "/api/assignments" from bootstrap). Everything here requires a signed-in
// caller; per-route role gates narrow further.
func Routes(h *Handler, am *auth.Manager) chi.Router {
	r := chi.NewRouter()
	r.Use(am.RequireSignedIn)

	r.Get("/", h.ServeList)

	r.Group(func(fr chi.Router) {
		fr.Use(am.RequireRole(models.RoleFounder))
		fr.Post("/request", h.HandleRequest)
	})

	r.Group(func(ar chi.Router) {
		ar.Use(am.RequireRole(models.RoleAdmin))
		ar.Post("/assign", h.HandleAssign)
	})

	r.Group(func(mr chi.Router) {
		mr.Use(am.RequireRole(models.RoleMentor, models.RoleAdmin))
		mr.Post("/{id}/accept", h.HandleAccept)
		mr.Post("/{id}/reject", h.HandleReject)
	})

	return r
}
