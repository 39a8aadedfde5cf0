// internal/app/features/profile/handler.go

// Package profile serves mentor profile management: create, merge-update,
// reads (own or public by uid), avatar upload, and visibility changes.
// Profile strength is derived by the store on every write; nothing in this
// package trusts a caller-supplied score.
package profile

import (
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	"github.com/launchlane/mentorhub/internal/app/system/auditlog"
	"github.com/launchlane/mentorhub/internal/app/system/metrics"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the profile endpoints.
type Handler struct {
	DB      *mongo.Database
	Storage storage.Store
	ErrLog  *httpapi.ErrorLogger
	Audit   *auditlog.Logger
	Metrics *metrics.Registry
	Log     *zap.Logger
}

// NewHandler constructs a profile Handler. Storage backs avatar uploads.
func NewHandler(db *mongo.Database, store storage.Store, errLog *httpapi.ErrorLogger, audit *auditlog.Logger, reg *metrics.Registry, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Storage: store,
		ErrLog:  errLog,
		Audit:   audit,
		Metrics: reg,
		Log:     logger,
	}
}
