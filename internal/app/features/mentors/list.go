// internal/app/features/mentors/list.go
package mentors

import (
	"context"
	"net/http"
	"strconv"

	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	profilestore "github.com/launchlane/mentorhub/internal/app/store/profiles"
	"github.com/launchlane/mentorhub/internal/app/system/normalize"
	"github.com/launchlane/mentorhub/internal/app/system/timeouts"
	"github.com/launchlane/mentorhub/internal/domain/models"
)

// ServeList handles GET /api/mentors.
//
// Only profiles with public visibility are ever returned, regardless of
// filters. Results are ordered by profile strength (strongest first).
//
// Optional query parameters: industry, skill, pricing, accepting=true,
// q (display-name prefix), min_strength, limit, offset.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := profilestore.ListFilter{
		Industry:     normalize.Tag(q.Get("industry")),
		Skill:        normalize.Tag(q.Get("skill")),
		PricingModel: normalize.PricingModel(q.Get("pricing")),
		NamePrefix:   normalize.QueryParam(q.Get("q")),
	}
	if q.Get("accepting") == "true" {
		filter.AcceptingOnly = true
	}
	if v := q.Get("min_strength"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 100 {
			h.ErrLog.BadRequest(w, r, "min_strength must be an integer between 0 and 100")
			return
		}
		filter.MinStrength = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 1 {
			h.ErrLog.BadRequest(w, r, "limit must be a positive integer")
			return
		}
		filter.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			h.ErrLog.BadRequest(w, r, "offset must be a non-negative integer")
			return
		}
		filter.Offset = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := profilestore.New(h.DB)
	mentors, err := store.ListPublic(ctx, filter)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list public mentors failed", err)
		return
	}
	total, err := store.CountPublic(ctx, filter)
	if err != nil {
		h.ErrLog.ServerError(w, r, "count public mentors failed", err)
		return
	}
	if mentors == nil {
		mentors = []models.MentorProfile{}
	}

	httpapi.OK(w, map[string]any{
		"mentors": mentors,
		"total":   total,
	})
}
