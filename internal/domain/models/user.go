// internal/domain/models/user.go
package models

import "time"

// User roles. A user holds exactly one active role at a time; switching
// between founder and mentor is a single-field transition that never touches
// profile documents.
const (
	RoleFounder    = "founder"
	RoleMentor     = "mentor"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// User is the identity record consumed by the authorization guard.
//
// Identity issuance lives with the external identity provider; this record
// carries only what the core needs: the active role (fallback when the bearer
// token carries no role claim) and the display name synced on profile create.
type User struct {
	ID            string `bson:"_id" json:"id"` // identity-provider uid
	DisplayName   string `bson:"display_name" json:"displayName"`
	DisplayNameCI string `bson:"display_name_ci" json:"-"` // lowercase, diacritics-stripped
	Email         string `bson:"email,omitempty" json:"email,omitempty"`
	Role          string `bson:"role" json:"role"` // founder | mentor | admin | superadmin

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// SwitchableRole reports whether role is one a user may switch to via the
// role identity manager. Admin roles are provisioned out of band.
func SwitchableRole(role string) bool {
	return role == RoleFounder || role == RoleMentor
}
