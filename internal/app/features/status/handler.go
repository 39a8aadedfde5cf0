// internal/app/features/status/handler.go

// Package status serves the admin-only operational snapshot: process
// uptime, database connectivity, and the recent-event ring maintained by
// the audit pipeline.
package status

import (
	"context"
	"net/http"
	"time"

	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	"github.com/launchlane/mentorhub/internal/app/system/events"
	"github.com/launchlane/mentorhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the status endpoint.
type Handler struct {
	Client  *mongo.Client
	Events  *events.Buffer
	Log     *zap.Logger
	started time.Time
}

// NewHandler constructs a status Handler. Uptime counts from construction,
// which bootstrap does once at startup.
func NewHandler(client *mongo.Client, buf *events.Buffer, logger *zap.Logger) *Handler {
	return &Handler{
		Client:  client,
		Events:  buf,
		Log:     logger,
		started: time.Now().UTC(),
	}
}

// Serve handles GET /status.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	database := "connected"
	if err := h.Client.Ping(ctx, nil); err != nil {
		h.Log.Warn("status ping failed", zap.Error(err))
		database = "unreachable"
	}

	recent := []events.Event{}
	if h.Events != nil {
		recent = h.Events.Recent()
	}

	httpapi.OK(w, map[string]any{
		"database":     database,
		"uptime":       time.Since(h.started).Round(time.Second).String(),
		"recentEvents": recent,
	})
}
