// internal/domain/models/chatannotation.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatAnnotation is a mentor-authored comment attached to a chat session.
// Authorship requires a non-rejected assignment between the author and the
// chat's owning founder, matching the impact-log gate.
type ChatAnnotation struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChatID   string             `bson:"chat_id" json:"chatId"`
	AuthorID string             `bson:"author_id" json:"authorId"`

	Comment string `bson:"comment" json:"comment"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}
