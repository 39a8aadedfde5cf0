// internal/app/features/assignments/handler.go

// Package assignments serves the mentorship pairing lifecycle: founders
// request mentors, administrators push assignments, mentors accept or
// reject pending requests, and participants list their own pairings.
//
// Each pair of people has at most one assignment ever. The store keys the
// document by the canonical pair key, so duplicate requests (in either
// direction, and regardless of status) lose the insert race rather than
// being filtered by a racy read-then-write.
package assignments

import (
	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	"github.com/launchlane/mentorhub/internal/app/system/auditlog"
	"github.com/launchlane/mentorhub/internal/app/system/metrics"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the assignment endpoints.
type Handler struct {
	DB      *mongo.Database
	ErrLog  *httpapi.ErrorLogger
	Audit   *auditlog.Logger
	Metrics *metrics.Registry
	Log     *zap.Logger
}

// NewHandler constructs an assignments Handler.
func NewHandler(db *mongo.Database, errLog *httpapi.ErrorLogger, audit *auditlog.Logger, reg *metrics.Registry, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		ErrLog:  errLog,
		Audit:   audit,
		Metrics: reg,
		Log:     logger,
	}
}
