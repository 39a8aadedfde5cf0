// internal/app/features/profile/profile.go
package profile

import (
	"context"
	"net/http"

	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	profilestore "github.com/launchlane/mentorhub/internal/app/store/profiles"
	userstore "github.com/launchlane/mentorhub/internal/app/store/users"
	"github.com/launchlane/mentorhub/internal/app/system/authz"
	"github.com/launchlane/mentorhub/internal/app/system/htmlsanitize"
	"github.com/launchlane/mentorhub/internal/app/system/inputval"
	"github.com/launchlane/mentorhub/internal/app/system/normalize"
	"github.com/launchlane/mentorhub/internal/app/system/timeouts"
	"github.com/launchlane/mentorhub/internal/domain/models"
	"go.uber.org/zap"
)

type portfolioInput struct {
	StartupName string `json:"startupName"`
	Outcome     string `json:"outcome"`
	Description string `json:"description"`
}

type createInput struct {
	DisplayName        string           `json:"displayName" validate:"required,max=200" label:"Display name"`
	Headline           string           `json:"headline" validate:"max=200" label:"Headline"`
	Bio                string           `json:"bio" validate:"max=5000" label:"Bio"`
	Company            string           `json:"company" validate:"max=200" label:"Company"`
	Position           string           `json:"position" validate:"max=200" label:"Position"`
	LinkedinURL        string           `json:"linkedinUrl" validate:"httpurl" label:"LinkedIn URL"`
	TwitterURL         string           `json:"twitterUrl" validate:"httpurl" label:"Twitter URL"`
	WebsiteURL         string           `json:"websiteUrl" validate:"httpurl" label:"Website URL"`
	CalendlyURL        string           `json:"calendlyUrl" validate:"httpurl" label:"Calendly URL"`
	CoachingStyle      string           `json:"coachingStyle" validate:"coachingstyle" label:"Coaching style"`
	PricingModel       string           `json:"pricingModel" validate:"pricing" label:"Pricing model"`
	Visibility         string           `json:"visibility" validate:"visibility" label:"Visibility"`
	Industries         []string         `json:"industries"`
	Skills             []string         `json:"skills"`
	YearsExperience    int              `json:"yearsExperience"`
	Portfolio          []portfolioInput `json:"portfolio"`
	IsAcceptingMentees bool             `json:"isAcceptingMentees"`
	HourlyRate         *int             `json:"hourlyRate"`
}

// ServeGet handles GET /api/profile and GET /api/profile?uid=X.
//
// Without uid the caller's own profile is returned (auth required, any
// visibility). With uid, the read goes through the public view: private
// profiles answer not-found to everyone but their owner.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	_, _, callerUID, signedIn := authz.UserCtx(r)
	uid := normalize.QueryParam(r.URL.Query().Get("uid"))

	if uid == "" {
		if !signedIn {
			httpapi.Fail(w, http.StatusUnauthorized, "Unauthorized: missing credential")
			return
		}
		uid = callerUID
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := profilestore.New(h.DB)

	var (
		p   models.MentorProfile
		err error
	)
	if signedIn && uid == callerUID {
		p, err = store.Get(ctx, uid)
	} else {
		p, err = store.GetPublic(ctx, uid)
	}
	if err == profilestore.ErrProfileNotFound {
		httpapi.Fail(w, http.StatusNotFound, "Profile not found.")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "load profile failed", err)
		return
	}

	httpapi.OK(w, map[string]any{"profile": p})
}

// HandleCreate handles POST /api/profile.
//
// Creation is once per user: a second create answers Conflict, never
// overwrites. The identity record's display name is synced to the profile's.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	_, _, uid, _ := authz.UserCtx(r)

	var in createInput
	if err := httpapi.DecodeJSON(w, r, &in); err != nil {
		h.ErrLog.BadRequest(w, r, err.Error())
		return
	}
	if result := inputval.Validate(in); result.HasErrors() {
		h.ErrLog.BadRequest(w, r, result.First())
		return
	}
	p, ok := h.buildProfile(w, r, uid, in)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := profilestore.New(h.DB)
	created, err := store.Create(ctx, p)
	if err == profilestore.ErrProfileExists {
		httpapi.Fail(w, http.StatusConflict, "Profile already exists.")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "create profile failed", err)
		return
	}

	if _, err := userstore.New(h.DB).EnsureUser(ctx, uid, created.DisplayName, ""); err != nil {
		h.Log.Warn("display name sync failed", zap.String("uid", uid), zap.Error(err))
	}

	h.Metrics.ProfileCreated()
	h.Audit.ProfileCreated(ctx, r, uid, created.ProfileStrength)

	httpapi.Created(w, map[string]any{"profile": created})
}

// buildProfile converts validated input into a profile document, applying
// sanitization and tag normalization. Reports false after writing an error
// response when a portfolio entry is invalid.
func (h *Handler) buildProfile(w http.ResponseWriter, r *http.Request, uid string, in createInput) (models.MentorProfile, bool) {
	if in.YearsExperience < 0 {
		h.ErrLog.BadRequest(w, r, "Years of experience must be non-negative.")
		return models.MentorProfile{}, false
	}

	portfolio := make([]models.PortfolioItem, 0, len(in.Portfolio))
	for _, item := range in.Portfolio {
		name := htmlsanitize.Plain(item.StartupName)
		if name == "" {
			h.ErrLog.BadRequest(w, r, "Each portfolio entry needs a startup name.")
			return models.MentorProfile{}, false
		}
		if !inputval.IsValidOutcome(item.Outcome) {
			h.ErrLog.BadRequest(w, r, "Portfolio outcome must be one of Exited, Active, Failed, Acquired.")
			return models.MentorProfile{}, false
		}
		portfolio = append(portfolio, models.PortfolioItem{
			StartupName: name,
			Outcome:     item.Outcome,
			Description: htmlsanitize.Plain(item.Description),
		})
	}

	p := models.MentorProfile{
		UserID:             uid,
		DisplayName:        htmlsanitize.Plain(normalize.Name(in.DisplayName)),
		Headline:           htmlsanitize.Plain(in.Headline),
		Bio:                htmlsanitize.Rich(in.Bio),
		Company:            htmlsanitize.Plain(in.Company),
		Position:           htmlsanitize.Plain(in.Position),
		LinkedinURL:        normalize.QueryParam(in.LinkedinURL),
		TwitterURL:         normalize.QueryParam(in.TwitterURL),
		WebsiteURL:         normalize.QueryParam(in.WebsiteURL),
		CalendlyURL:        normalize.QueryParam(in.CalendlyURL),
		CoachingStyle:      in.CoachingStyle,
		PricingModel:       normalize.PricingModel(in.PricingModel),
		Visibility:         normalize.Status(in.Visibility),
		Industries:         htmlsanitize.PlainAll(normalize.Tags(in.Industries)),
		Skills:             htmlsanitize.PlainAll(normalize.Tags(in.Skills)),
		YearsExperience:    in.YearsExperience,
		Portfolio:          portfolio,
		IsAcceptingMentees: in.IsAcceptingMentees,
		HourlyRate:         in.HourlyRate,
	}
	if p.DisplayName == "" {
		h.ErrLog.BadRequest(w, r, "Display name is required.")
		return models.MentorProfile{}, false
	}
	return p, true
}
