// internal/app/features/annotations/routes.go
package annotations

import (
	"github.com/go-chi/chi/v5"
	"github.com/launchlane/mentorhub/internal/app/system/auth"
	"github.com/launchlane/mentorhub/internal/domain/models"
)

// Routes mounts the chat annotation routes under the base path (typically
// "/api/chats" from bootstrap).
func Routes(h *Handler, am *auth.Manager) chi.Router {
	r := chi.NewRouter()
	r.Use(am.RequireSignedIn)

	r.Get("/{chatID}/comments", h.ServeList)

	r.Group(func(mr chi.Router) {
		mr.Use(am.RequireRole(models.RoleMentor))
		mr.Post("/{chatID}/comments", h.HandleCreate)
	})

	return r
}
