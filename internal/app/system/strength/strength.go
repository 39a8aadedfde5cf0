// internal/app/system/strength/strength.go

// Package strength computes the derived profile-strength score for mentor
// profiles. The score is a pure, deterministic function of the stored fields,
// always in [0,100], and is recomputed server-side on every write; it is
// never trusted from the caller. It drives UI completeness meters only.
package strength

import "github.com/launchlane/mentorhub/internal/domain/models"

// Weights per field. The sum is 100; Score caps at 100 regardless.
const (
	weightDisplayName  = 5
	weightHeadline     = 5
	weightBio          = 5
	weightAvatar       = 5
	weightCompany      = 5
	weightPosition     = 5
	weightLinkedin     = 10
	weightIndustries   = 10
	weightSkills       = 10
	weightPortfolio    = 20
	weightCalendly     = 10
	weightPricingModel = 10
)

// MinBioLength is the shortest bio that counts toward the score.
const MinBioLength = 50

// Score returns the profile strength for p.
func Score(p models.MentorProfile) int {
	s := 0
	if p.DisplayName != "" {
		s += weightDisplayName
	}
	if p.Headline != "" {
		s += weightHeadline
	}
	if len(p.Bio) > MinBioLength {
		s += weightBio
	}
	if p.AvatarURL != "" {
		s += weightAvatar
	}
	if p.Company != "" {
		s += weightCompany
	}
	if p.Position != "" {
		s += weightPosition
	}
	if p.LinkedinURL != "" {
		s += weightLinkedin
	}
	if len(p.Industries) > 0 {
		s += weightIndustries
	}
	if len(p.Skills) > 0 {
		s += weightSkills
	}
	if len(p.Portfolio) > 0 {
		s += weightPortfolio
	}
	if p.CalendlyURL != "" {
		s += weightCalendly
	}
	if p.PricingModel != "" {
		s += weightPricingModel
	}
	if s > 100 {
		s = 100
	}
	return s
}
