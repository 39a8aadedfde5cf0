// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/launchlane/mentorhub/internal/app/system/auth"
)

// UserCtx returns the caller's role (lowercased), name, uid, and a found
// flag. If no user is present in context it returns "visitor", "", "", false,
// so callers can trust that ok=true means a valid authenticated caller.
func UserCtx(r *http.Request) (role string, name string, uid string, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok || user.UID == "" {
		return "visitor", "", "", false
	}
	return strings.ToLower(user.Role), user.Name, user.UID, true
}

// IsAdmin reports whether the current request's caller is an admin.
// Superadmins are also considered admins for permission purposes.
func IsAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && (role == "admin" || role == "superadmin")
}

// IsMentor reports whether the current request's caller holds the mentor role.
func IsMentor(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "mentor"
}

// IsFounder reports whether the current request's caller holds the founder role.
func IsFounder(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "founder"
}

// SelfOrAdmin reports whether the caller is the target identity itself or an
// admin/superadmin acting on its behalf.
func SelfOrAdmin(r *http.Request, targetUID string) bool {
	_, _, uid, ok := UserCtx(r)
	if !ok {
		return false
	}
	if uid == targetUID {
		return true
	}
	return IsAdmin(r)
}

// HasAnyRole reports whether the caller holds any of the given roles.
func HasAnyRole(r *http.Request, roles ...string) bool {
	role, _, _, ok := UserCtx(r)
	if !ok {
		return false
	}
	for _, want := range roles {
		if role == strings.ToLower(strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}
