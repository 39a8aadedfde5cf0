// internal/app/features/mentors/handler.go

// Package mentors serves public marketplace discovery: the list of mentor
// profiles eligible for listing, filtered and ordered for browsing.
package mentors

import (
	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the marketplace endpoints.
type Handler struct {
	DB     *mongo.Database
	ErrLog *httpapi.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a mentors Handler.
func NewHandler(db *mongo.Database, errLog *httpapi.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		ErrLog: errLog,
		Log:    logger,
	}
}
