// internal/app/system/inputval/inputval.go

// Package inputval validates API request input. Handlers declare rules with
// struct tags and call Validate; the field validators are also usable
// directly. Each validator trims its input before checking.
package inputval

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/launchlane/mentorhub/internal/domain/models"
)

// IsValidEmail reports whether s is a plausible email address. Display-name
// forms ("Name <a@b>") are rejected; only the bare address form passes.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}
	if strings.Contains(local, "..") || strings.Contains(domain, "..") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return true
}

// IsValidHTTPURL reports whether s is an absolute http or https URL with a
// host.
func IsValidHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// IsValidRole reports whether s is a role a user may switch to.
func IsValidRole(s string) bool {
	return models.SwitchableRole(strings.ToLower(strings.TrimSpace(s)))
}

// IsValidPricingModel reports whether s is a known pricing model.
// Empty is not valid here; optional fields skip validation when blank.
func IsValidPricingModel(s string) bool {
	return models.ValidPricingModel(strings.TrimSpace(s))
}

// IsValidCoachingStyle reports whether s is a known coaching style.
func IsValidCoachingStyle(s string) bool {
	return models.ValidCoachingStyle(strings.TrimSpace(s))
}

// IsValidOutcome reports whether s is a known portfolio outcome.
func IsValidOutcome(s string) bool {
	return models.ValidOutcome(strings.TrimSpace(s))
}

// IsValidVisibility reports whether s is a known profile visibility state.
func IsValidVisibility(s string) bool {
	return models.ValidVisibility(strings.ToLower(strings.TrimSpace(s)))
}
