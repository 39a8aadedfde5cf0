// internal/app/features/mentors/routes.go
package mentors

import "github.com/go-chi/chi/v5"

// Routes mounts the marketplace routes under the base path (typically
// "/api/mentors" from bootstrap). Discovery is public: no auth required.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}
