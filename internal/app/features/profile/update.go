// internal/app/features/profile/update.go
package profile

import (
	"context"
	"net/http"

	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	profilestore "github.com/launchlane/mentorhub/internal/app/store/profiles"
	userstore "github.com/launchlane/mentorhub/internal/app/store/users"
	"github.com/launchlane/mentorhub/internal/app/system/authz"
	"github.com/launchlane/mentorhub/internal/app/system/inputval"
	"github.com/launchlane/mentorhub/internal/app/system/timeouts"
	"github.com/launchlane/mentorhub/internal/domain/models"
	"go.uber.org/zap"
)

// updateInput distinguishes absent fields from explicit values: a nil
// pointer means "leave unchanged" and is dropped before the merge, never
// written as null.
type updateInput struct {
	DisplayName        *string           `json:"displayName"`
	Headline           *string           `json:"headline"`
	Bio                *string           `json:"bio"`
	Company            *string           `json:"company"`
	Position           *string           `json:"position"`
	LinkedinURL        *string           `json:"linkedinUrl"`
	TwitterURL         *string           `json:"twitterUrl"`
	WebsiteURL         *string           `json:"websiteUrl"`
	CalendlyURL        *string           `json:"calendlyUrl"`
	CoachingStyle      *string           `json:"coachingStyle"`
	PricingModel       *string           `json:"pricingModel"`
	Visibility         *string           `json:"visibility"`
	Industries         *[]string         `json:"industries"`
	Skills             *[]string         `json:"skills"`
	YearsExperience    *int              `json:"yearsExperience"`
	Portfolio          *[]portfolioInput `json:"portfolio"`
	IsAcceptingMentees *bool             `json:"isAcceptingMentees"`
	HourlyRate         *int              `json:"hourlyRate"`
}

// HandleUpdate handles PUT /api/profile.
//
// Merge semantics: only fields present in the body change; the merged view
// is re-validated, re-sanitized, and re-scored as a whole before the write.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	_, _, uid, _ := authz.UserCtx(r)

	var in updateInput
	if err := httpapi.DecodeJSON(w, r, &in); err != nil {
		h.ErrLog.BadRequest(w, r, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := profilestore.New(h.DB)
	existing, err := store.Get(ctx, uid)
	if err == profilestore.ErrProfileNotFound {
		httpapi.Fail(w, http.StatusNotFound, "Profile not found.")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "load profile failed", err)
		return
	}

	merged := mergeInput(existing, in)
	if result := inputval.Validate(merged); result.HasErrors() {
		h.ErrLog.BadRequest(w, r, result.First())
		return
	}
	p, ok := h.buildProfile(w, r, uid, merged)
	if !ok {
		return
	}
	p.AvatarURL = existing.AvatarURL

	updated, err := store.Update(ctx, p)
	if err == profilestore.ErrProfileNotFound {
		httpapi.Fail(w, http.StatusNotFound, "Profile not found.")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "update profile failed", err)
		return
	}

	if updated.DisplayName != existing.DisplayName {
		if err := userstore.New(h.DB).SyncDisplayName(ctx, uid, updated.DisplayName); err != nil && err != userstore.ErrUserNotFound {
			h.Log.Warn("display name sync failed", zap.String("uid", uid), zap.Error(err))
		}
	}

	h.Audit.ProfileUpdated(ctx, r, uid, updated.ProfileStrength)

	httpapi.OK(w, map[string]any{"profile": updated})
}

// mergeInput overlays the present update fields onto the stored profile and
// returns the merged view as create-shaped input for shared validation.
func mergeInput(existing models.MentorProfile, in updateInput) createInput {
	merged := createInput{
		DisplayName:        existing.DisplayName,
		Headline:           existing.Headline,
		Bio:                existing.Bio,
		Company:            existing.Company,
		Position:           existing.Position,
		LinkedinURL:        existing.LinkedinURL,
		TwitterURL:         existing.TwitterURL,
		WebsiteURL:         existing.WebsiteURL,
		CalendlyURL:        existing.CalendlyURL,
		CoachingStyle:      existing.CoachingStyle,
		PricingModel:       existing.PricingModel,
		Visibility:         existing.Visibility,
		Industries:         existing.Industries,
		Skills:             existing.Skills,
		YearsExperience:    existing.YearsExperience,
		IsAcceptingMentees: existing.IsAcceptingMentees,
		HourlyRate:         existing.HourlyRate,
	}
	for _, item := range existing.Portfolio {
		merged.Portfolio = append(merged.Portfolio, portfolioInput{
			StartupName: item.StartupName,
			Outcome:     item.Outcome,
			Description: item.Description,
		})
	}

	if in.DisplayName != nil {
		merged.DisplayName = *in.DisplayName
	}
	if in.Headline != nil {
		merged.Headline = *in.Headline
	}
	if in.Bio != nil {
		merged.Bio = *in.Bio
	}
	if in.Company != nil {
		merged.Company = *in.Company
	}
	if in.Position != nil {
		merged.Position = *in.Position
	}
	if in.LinkedinURL != nil {
		merged.LinkedinURL = *in.LinkedinURL
	}
	if in.TwitterURL != nil {
		merged.TwitterURL = *in.TwitterURL
	}
	if in.WebsiteURL != nil {
		merged.WebsiteURL = *in.WebsiteURL
	}
	if in.CalendlyURL != nil {
		merged.CalendlyURL = *in.CalendlyURL
	}
	if in.CoachingStyle != nil {
		merged.CoachingStyle = *in.CoachingStyle
	}
	if in.PricingModel != nil {
		merged.PricingModel = *in.PricingModel
	}
	if in.Visibility != nil {
		merged.Visibility = *in.Visibility
	}
	if in.Industries != nil {
		merged.Industries = *in.Industries
	}
	if in.Skills != nil {
		merged.Skills = *in.Skills
	}
	if in.YearsExperience != nil {
		merged.YearsExperience = *in.YearsExperience
	}
	if in.Portfolio != nil {
		merged.Portfolio = *in.Portfolio
	}
	if in.IsAcceptingMentees != nil {
		merged.IsAcceptingMentees = *in.IsAcceptingMentees
	}
	if in.HourlyRate != nil {
		merged.HourlyRate = in.HourlyRate
	}
	return merged
}
