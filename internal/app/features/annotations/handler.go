// internal/app/features/annotations/handler.go

// Package annotations serves mentor comments on chat threads. Posting is
// gated the same way impact logs are: the author needs a non-rejected
// assignment with the founder who owns the chat. A per-author daily cap
// keeps a single mentor from flooding threads.
package annotations

import (
	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	"github.com/launchlane/mentorhub/internal/app/system/auditlog"
	"github.com/launchlane/mentorhub/internal/app/system/ratelimit"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the chat annotation endpoints.
type Handler struct {
	DB       *mongo.Database
	ErrLog   *httpapi.ErrorLogger
	Audit    *auditlog.Logger
	Comments *ratelimit.CommentLimiter
	Log      *zap.Logger
}

// NewHandler constructs an annotations Handler. A nil limiter disables the
// daily cap.
func NewHandler(db *mongo.Database, errLog *httpapi.ErrorLogger, audit *auditlog.Logger, limiter *ratelimit.CommentLimiter, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		ErrLog:   errLog,
		Audit:    audit,
		Comments: limiter,
		Log:      logger,
	}
}
