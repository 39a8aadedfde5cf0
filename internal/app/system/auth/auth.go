// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Current-User helper                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

// AuthUser is what the guard resolves from a bearer credential and injects
// into r.Context().
type AuthUser struct {
	UID  string
	Name string
	// Role is the caller's role. When RoleFromToken is true it came from the
	// token's role claim; otherwise it was read fresh from the identity store.
	Role          string
	RoleFromToken bool
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the resolved caller & "found?" flag.
func CurrentUser(r *http.Request) (*AuthUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*AuthUser)
	return u, ok
}

// RoleSource reads a user's stored role. Used as the fallback when the bearer
// token carries no role claim, and re-read on every request so a role switch
// takes effect immediately; the guard never trusts a stale cached role.
type RoleSource interface {
	RoleByID(ctx context.Context, uid string) (string, error)
}

// Manager verifies bearer credentials and enforces role requirements.
type Manager struct {
	verifier TokenVerifier
	roles    RoleSource
	logger   *zap.Logger
}

// NewManager builds the guard from a token verifier (the external identity
// provider boundary) and a role source (the users store).
func NewManager(verifier TokenVerifier, roles RoleSource, logger *zap.Logger) *Manager {
	return &Manager{verifier: verifier, roles: roles, logger: logger}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Middleware                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// LoadBearerUser resolves the Authorization bearer credential, if present,
// and injects the caller into context. Requests without a credential pass
// through anonymous; RequireSignedIn/RequireRole reject them later.
func (m *Manager) LoadBearerUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			// Invalid credential is worse than no credential: reject now so
			// handlers never see a half-authenticated request.
			m.logger.Debug("bearer verification failed", zap.Error(err))
			writeAuthError(w, http.StatusUnauthorized, "Unauthorized: invalid credential")
			return
		}

		u := &AuthUser{
			UID:           claims.UID,
			Name:          claims.Name,
			Role:          strings.ToLower(claims.Role),
			RoleFromToken: claims.Role != "",
		}
		next.ServeHTTP(w, withUser(r, u))
	})
}

// RequireSignedIn ensures there is a resolved caller in context.
// API callers get a plain 401 JSON envelope.
func (m *Manager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			writeAuthError(w, http.StatusUnauthorized, "Unauthorized: missing credential")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole ensures the caller holds one of the allowed roles.
//
// The token's role claim is checked first; if the token carried none, the
// stored role field is read from the identity store on this request. Callers
// with a valid credential but no matching role get 403.
func (m *Manager) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "Unauthorized: missing credential")
				return
			}

			role := u.Role
			if !u.RoleFromToken {
				stored, err := m.roles.RoleByID(r.Context(), u.UID)
				if err != nil {
					m.logger.Warn("role lookup failed",
						zap.String("uid", u.UID), zap.Error(err))
					writeAuthError(w, http.StatusForbidden, "Forbidden: role could not be resolved")
					return
				}
				role = strings.ToLower(stored)
				u.Role = role
			}

			if _, has := set[role]; !has {
				// Superadmins pass every role gate.
				if role != "superadmin" {
					writeAuthError(w, http.StatusForbidden, "Forbidden: insufficient role")
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Helpers                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// WithTestUser injects a caller into the request context, bypassing bearer
// verification. Test use only.
func WithTestUser(r *http.Request, u *AuthUser) *http.Request {
	return withUser(r, u)
}

func withUser(r *http.Request, u *AuthUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, prefix))
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   msg,
	})
}
