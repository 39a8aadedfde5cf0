// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"
	"strconv"

	"github.com/launchlane/mentorhub/internal/app/store/audit"
	"github.com/launchlane/mentorhub/internal/app/system/events"
	"go.uber.org/zap"
)

// Config holds audit logging configuration.
type Config struct {
	// Domain controls logging for marketplace events (profiles, assignments,
	// impact logs, chat annotations).
	// Values: "all" (MongoDB + zap), "db" (MongoDB only), "log" (zap only), "off" (disabled)
	Domain string
	// Account controls logging for account events (role switches, deletions).
	// Values: "all" (MongoDB + zap), "db" (MongoDB only), "log" (zap only), "off" (disabled)
	Account string
}

// Logger provides convenience methods for logging audit events.
// It logs to MongoDB (via audit.Store) and structured logs (via zap), and
// feeds the in-process recent-activity buffer when one is attached.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	recent *events.Buffer
	config Config
}

// New creates a new audit Logger. recent may be nil.
func New(store *audit.Store, zapLog *zap.Logger, recent *events.Buffer, config Config) *Logger {
	return &Logger{
		store:  store,
		zapLog: zapLog,
		recent: recent,
		config: config,
	}
}

// getClientIP extracts the client IP from the request.
func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header first (for reverse proxies)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	// Check X-Real-IP header
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	// Fall back to RemoteAddr
	return r.RemoteAddr
}

// logToZap logs the event to zap with consistent structure.
func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
	}

	if event.ActorID != "" {
		fields = append(fields, zap.String("actor_id", event.ActorID))
	}
	if event.SubjectID != "" {
		fields = append(fields, zap.String("subject_id", event.SubjectID))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records an audit event based on configuration.
// If the logger is nil, this is a no-op (allows tests to use nil audit logger).
// Logging destination is controlled by config: "all", "db", "log", or "off".
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	// Determine which config setting applies based on event category
	var setting string
	switch event.Category {
	case audit.CategoryAccount:
		setting = l.config.Account
	default:
		setting = l.config.Domain
	}

	// Check if logging is disabled for this category
	if setting == "off" {
		return
	}

	// The recent-activity buffer mirrors everything that is logged anywhere.
	if l.recent != nil {
		detail := event.FailureReason
		if detail == "" {
			detail = event.SubjectID
		}
		l.recent.Add(events.Event{
			Type:   event.EventType,
			Actor:  event.ActorID,
			Detail: detail,
		})
	}

	// Log to zap if configured
	if setting == "all" || setting == "log" {
		l.logToZap(event)
	}

	// Log to MongoDB if configured
	if setting == "all" || setting == "db" {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

// --- Profile Events ---

// ProfileCreated logs creation of a mentor profile.
func (l *Logger) ProfileCreated(ctx context.Context, r *http.Request, actorID string, strength int) {
	l.Log(ctx, audit.Event{
		Category:  audit.CategoryProfile,
		EventType: audit.EventProfileCreated,
		ActorID:   actorID,
		IP:        getClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
		Details: map[string]string{
			"profile_strength": itoa(strength),
		},
	})
}

// ProfileUpdated logs an update to a mentor profile.
func (l *Logger) ProfileUpdated(ctx context.Context, r *http.Request, actorID string, strength int) {
	l.Log(ctx, audit.Event{
		Category:  audit.CategoryProfile,
		EventType: audit.EventProfileUpdated,
		ActorID:   actorID,
		IP:        getClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
		Details: map[string]string{
			"profile_strength": itoa(strength),
		},
	})
}

// AvatarUploaded logs an avatar upload.
func (l *Logger) AvatarUploaded(ctx context.Context, r *http.Request, actorID, contentType string) {
	l.Log(ctx, audit.Event{
		Category:  audit.CategoryProfile,
		EventType: audit.EventAvatarUploaded,
		ActorID:   actorID,
		IP:        getClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
		Details: map[string]string{
			"content_type": contentType,
		},
	})
}

// --- Assignment Events ---

// AssignmentRequested logs a founder requesting a mentor.
func (l *Logger) AssignmentRequested(ctx context.Context, r *http.Request, founderID, mentorID string) {
	l.Log(ctx, audit.Event{
		Category:  audit.CategoryAssignment,
		EventType: audit.EventAssignmentRequested,
		ActorID:   founderID,
		SubjectID: mentorID,
		IP:        getClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
	})
}

// AssignmentRequestBlocked logs a request that was refused (duplicate pair,
// self-assignment).
func (l *Logger) AssignmentRequestBlocked(ctx context.Context, r *http.Request, founderID, mentorID, reason string) {
	l.Log(ctx, audit.Event{
		Category:      audit.CategoryAssignment,
		EventType:     audit.EventAssignmentRequested,
		ActorID:       founderID,
		SubjectID:     mentorID,
		IP:            getClientIP(r),
		UserAgent:     r.UserAgent(),
		Success:       false,
		FailureReason: reason,
	})
}

// AssignmentAccepted logs a mentor accepting a pending request.
func (l *Logger) AssignmentAccepted(ctx context.Context, r *http.Request, mentorID, founderID string) {
	l.Log(ctx, audit.Event{
		Category:  audit.CategoryAssignment,
		EventType: audit.EventAssignmentAccepted,
		ActorID:   mentorID,
		SubjectID: founderID,
		IP:        getClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
	})
}

// AssignmentRejected logs a mentor rejecting a pending request.
func (l *Logger) AssignmentRejected(ctx context.Context, r *http.Request, mentorID, founderID string) {
	l.Log(ctx, audit.Event{
		Category:  audit.CategoryAssignment,
		EventType: audit.EventAssignmentRejected,
		ActorID:   mentorID,
		SubjectID: founderID,
		IP:        getClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
	})
}

// --- Impact Events ---

// ImpactLogged logs a founder recording an impact session with a mentor.
func (l *Logger) ImpactLogged(ctx context.Context, r *http.Request, founderID, mentorID string) {
	l.Log(ctx, audit.Event{
		Category:  audit.CategoryImpact,
		EventType: audit.EventImpactLogged,
		ActorID:   founderID,
		SubjectID: mentorID,
		IP:        getClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
	})
}

// ImpactBlocked logs an impact write refused by the assignment gate.
func (l *Logger) ImpactBlocked(ctx context.Context, r *http.Request, founderID, mentorID, reason string) {
	l.Log(ctx, audit.Event{
		Category:      audit.CategoryImpact,
		EventType:     audit.EventImpactLogged,
		ActorID:       founderID,
		SubjectID:     mentorID,
		IP:            getClientIP(r),
		UserAgent:     r.UserAgent(),
		Success:       false,
		FailureReason: reason,
	})
}

// CommentAdded logs a mentor annotating a chat thread.
func (l *Logger) CommentAdded(ctx context.Context, r *http.Request, mentorID, chatID string) {
	l.Log(ctx, audit.Event{
		Category:  audit.CategoryImpact,
		EventType: audit.EventCommentAdded,
		ActorID:   mentorID,
		IP:        getClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
		Details: map[string]string{
			"chat_id": chatID,
		},
	})
}

// --- Account Events ---

// RoleSwitched logs a founder/mentor role switch.
func (l *Logger) RoleSwitched(ctx context.Context, r *http.Request, actorID, fromRole, toRole string) {
	l.Log(ctx, audit.Event{
		Category:  audit.CategoryAccount,
		EventType: audit.EventRoleSwitched,
		ActorID:   actorID,
		IP:        getClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
		Details: map[string]string{
			"from_role": fromRole,
			"to_role":   toRole,
		},
	})
}

// AccountDeleted logs an account deletion with per-collection removal counts.
func (l *Logger) AccountDeleted(ctx context.Context, r *http.Request, actorID string, removed map[string]string) {
	l.Log(ctx, audit.Event{
		Category:  audit.CategoryAccount,
		EventType: audit.EventAccountDeleted,
		ActorID:   actorID,
		IP:        getClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
		Details:   removed,
	})
}

// --- Helper functions ---

func itoa(i int) string {
	return strconv.Itoa(i)
}
