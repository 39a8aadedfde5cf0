// internal/app/features/account/handler.go

// Package account serves identity-level operations: switching between the
// founder and mentor roles, and deleting the account with all of its data.
// Role switches touch only the identity record; mentor profiles survive a
// switch to founder and are simply hidden from the marketplace's
// role-gated writes until the user switches back.
package account

import (
	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	"github.com/launchlane/mentorhub/internal/app/system/auditlog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the account endpoints.
type Handler struct {
	DB     *mongo.Database
	ErrLog *httpapi.ErrorLogger
	Audit  *auditlog.Logger
	Log    *zap.Logger
}

// NewHandler constructs an account Handler.
func NewHandler(db *mongo.Database, errLog *httpapi.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		ErrLog: errLog,
		Audit:  audit,
		Log:    logger,
	}
}
