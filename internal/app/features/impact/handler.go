// internal/app/features/impact/handler.go

// Package impact serves the impact-log ledger: founders record the outcome
// of mentoring sessions, gated on a non-rejected assignment with the mentor
// in question. A pending assignment passes the gate; only an explicit
// rejection (or no assignment at all) blocks the write.
package impact

import (
	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	"github.com/launchlane/mentorhub/internal/app/system/auditlog"
	"github.com/launchlane/mentorhub/internal/app/system/metrics"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the impact endpoints.
type Handler struct {
	DB      *mongo.Database
	ErrLog  *httpapi.ErrorLogger
	Audit   *auditlog.Logger
	Metrics *metrics.Registry
	Log     *zap.Logger
}

// NewHandler constructs an impact Handler.
func NewHandler(db *mongo.Database, errLog *httpapi.ErrorLogger, audit *auditlog.Logger, reg *metrics.Registry, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		ErrLog:  errLog,
		Audit:   audit,
		Metrics: reg,
		Log:     logger,
	}
}
