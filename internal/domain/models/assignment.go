// internal/domain/models/assignment.go
package models

import (
	"strings"
	"time"
)

// Assignment statuses. Pending may transition to active or rejected; both are
// terminal for the pair.
const (
	AssignmentPending  = "pending"
	AssignmentActive   = "active"
	AssignmentRejected = "rejected"
)

// Assignment links one mentor to one founder with a lifecycle status.
//
// The document _id is the deterministic pair key (see PairKey), so the
// store's primary-key uniqueness enforces "at most one assignment per pair"
// atomically at insert time: two concurrent requests for the same pair
// cannot both commit.
type Assignment struct {
	ID        string `bson:"_id" json:"id"`
	MentorID  string `bson:"mentor_id" json:"mentorId"`
	FounderID string `bson:"founder_id" json:"founderId"`
	Status    string `bson:"status" json:"status"` // pending | active | rejected

	// AssignedBy is the identity that initiated the pairing: the founder for
	// self-service requests, an administrator for pushed assignments.
	AssignedBy string `bson:"assigned_by" json:"assignedBy"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// PairKey returns the deterministic document key for an unordered
// (mentor, founder) pair. Both orderings of the same two identities map to
// the same key.
func PairKey(mentorID, founderID string) string {
	a, b := mentorID, founderID
	if strings.Compare(a, b) > 0 {
		a, b = b, a
	}
	return a + ":" + b
}

// ValidAssignmentStatus reports whether s is a known assignment status.
func ValidAssignmentStatus(s string) bool {
	switch s {
	case AssignmentPending, AssignmentActive, AssignmentRejected:
		return true
	}
	return false
}
