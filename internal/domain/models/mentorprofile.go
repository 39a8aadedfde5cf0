// internal/domain/models/mentorprofile.go
package models

import "time"

// Coaching styles a mentor can declare on their profile.
const (
	CoachingHandsOn       = "hands-on"
	CoachingAdvisory      = "advisory"
	CoachingSoundingBoard = "sounding-board"
	CoachingNetworkFirst  = "network-first"
)

// Pricing models for mentorship.
const (
	PricingProBono = "Pro Bono"
	PricingPaid    = "Paid"
	PricingEquity  = "Equity"
)

// PricingModels is the canonical list, used to build schema enums.
var PricingModels = []string{PricingProBono, PricingPaid, PricingEquity}

// Portfolio outcomes.
const (
	OutcomeExited   = "Exited"
	OutcomeActive   = "Active"
	OutcomeFailed   = "Failed"
	OutcomeAcquired = "Acquired"
)

// Profile visibility states. Private profiles never appear in marketplace
// discovery; profiles are soft-hidden via visibility, never hard-deleted by
// profile operations.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// PortfolioItem is one startup in a mentor's track record.
type PortfolioItem struct {
	StartupName string `bson:"startup_name" json:"startupName"`
	Outcome     string `bson:"outcome" json:"outcome"` // Exited | Active | Failed | Acquired
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// MentorProfile is a mentor's published marketplace profile.
//
// The document is keyed by the account identity (_id == user id from the
// identity provider), so at most one profile can exist per user; the store's
// primary-key uniqueness enforces idempotent-safe creation.
type MentorProfile struct {
	UserID        string `bson:"_id" json:"userId"`
	DisplayName   string `bson:"display_name" json:"displayName"`
	DisplayNameCI string `bson:"display_name_ci" json:"-"` // lowercase, diacritics-stripped
	Headline      string `bson:"headline,omitempty" json:"headline,omitempty"`
	Bio           string `bson:"bio,omitempty" json:"bio,omitempty"`
	AvatarURL     string `bson:"avatar_url,omitempty" json:"avatarUrl,omitempty"`
	Company       string `bson:"company,omitempty" json:"company,omitempty"`
	Position      string `bson:"position,omitempty" json:"position,omitempty"`
	LinkedinURL   string `bson:"linkedin_url,omitempty" json:"linkedinUrl,omitempty"`
	TwitterURL    string `bson:"twitter_url,omitempty" json:"twitterUrl,omitempty"`
	WebsiteURL    string `bson:"website_url,omitempty" json:"websiteUrl,omitempty"`

	Industries    []string `bson:"industries,omitempty" json:"industries,omitempty"`
	Skills        []string `bson:"skills,omitempty" json:"skills,omitempty"`
	CoachingStyle string   `bson:"coaching_style,omitempty" json:"coachingStyle,omitempty"`

	YearsExperience int             `bson:"years_experience" json:"yearsExperience"`
	Portfolio       []PortfolioItem `bson:"portfolio,omitempty" json:"portfolio,omitempty"`

	IsAcceptingMentees bool   `bson:"is_accepting_mentees" json:"isAcceptingMentees"`
	PricingModel       string `bson:"pricing_model,omitempty" json:"pricingModel,omitempty"`
	HourlyRate         *int   `bson:"hourly_rate,omitempty" json:"hourlyRate,omitempty"`
	CalendlyURL        string `bson:"calendly_url,omitempty" json:"calendlyUrl,omitempty"`

	// ProfileStrength is derived on every write and never trusted from the
	// caller. Always in [0,100].
	ProfileStrength int `bson:"profile_strength" json:"profileStrength"`

	Visibility string `bson:"visibility" json:"visibility"` // public | private

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// ValidCoachingStyle reports whether s is a known coaching style.
func ValidCoachingStyle(s string) bool {
	switch s {
	case CoachingHandsOn, CoachingAdvisory, CoachingSoundingBoard, CoachingNetworkFirst:
		return true
	}
	return false
}

// ValidPricingModel reports whether s is a known pricing model.
func ValidPricingModel(s string) bool {
	switch s {
	case PricingProBono, PricingPaid, PricingEquity:
		return true
	}
	return false
}

// ValidOutcome reports whether s is a known portfolio outcome.
func ValidOutcome(s string) bool {
	switch s {
	case OutcomeExited, OutcomeActive, OutcomeFailed, OutcomeAcquired:
		return true
	}
	return false
}

// ValidVisibility reports whether s is a known visibility state.
func ValidVisibility(s string) bool {
	return s == VisibilityPublic || s == VisibilityPrivate
}
