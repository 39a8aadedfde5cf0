// internal/domain/models/impactlog.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ImpactLog records the outcome of one mentoring session. It is owned by the
// founder (stored under the founder's namespace) and references the mentor it
// was held with. Creation is gated on a non-rejected assignment between the
// two, not merely on caller identity.
type ImpactLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FounderID string             `bson:"founder_id" json:"founderId"`
	MentorID  string             `bson:"mentor_id" json:"mentorId"`

	Notes   string            `bson:"notes" json:"notes"`
	Metrics map[string]string `bson:"metrics,omitempty" json:"metrics,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
