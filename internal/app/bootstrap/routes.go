// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/go-chi/chi/v5"
	accountfeature "github.com/launchlane/mentorhub/internal/app/features/account"
	annotationsfeature "github.com/launchlane/mentorhub/internal/app/features/annotations"
	assignmentsfeature "github.com/launchlane/mentorhub/internal/app/features/assignments"
	healthfeature "github.com/launchlane/mentorhub/internal/app/features/health"
	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	impactfeature "github.com/launchlane/mentorhub/internal/app/features/impact"
	mentorsfeature "github.com/launchlane/mentorhub/internal/app/features/mentors"
	profilefeature "github.com/launchlane/mentorhub/internal/app/features/profile"
	statusfeature "github.com/launchlane/mentorhub/internal/app/features/status"
	auditstore "github.com/launchlane/mentorhub/internal/app/store/audit"
	userstore "github.com/launchlane/mentorhub/internal/app/store/users"
	"github.com/launchlane/mentorhub/internal/app/system/auditlog"
	"github.com/launchlane/mentorhub/internal/app/system/auth"
	"github.com/launchlane/mentorhub/internal/app/system/events"
	"github.com/launchlane/mentorhub/internal/app/system/metrics"
	"github.com/launchlane/mentorhub/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE
// app. WAFFLE calls it after configuration, DB connection, schema setup,
// and Startup have completed.
//
// The JSON API is mounted under /api; /health, /metrics, and /status serve
// operations. Bearer identities are resolved once, globally, so every
// handler can read the caller from the request context.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MentorHubMongoDatabase

	verifier, err := auth.NewHMACVerifier(appCfg.AuthTokenSecret, appCfg.AuthTokenIssuer)
	if err != nil {
		logger.Error("token verifier init failed", zap.Error(err))
		return nil, err
	}
	// The user store doubles as the guard's role source, so a role switch
	// takes effect on the next request even for tokens minted before it.
	authMgr := auth.NewManager(verifier, userstore.New(db), logger)

	metricsReg := metrics.New()
	recentEvents := events.NewBuffer(appCfg.RecentEventsCap)
	audit := auditlog.New(auditstore.New(db), logger, recentEvents, auditlog.Config{
		Domain:  appCfg.AuditLogDomain,
		Account: appCfg.AuditLogAccount,
	})
	errLog := httpapi.NewErrorLogger(logger)

	avatarStore, err := storage.NewLocal(storage.LocalConfig{
		BasePath: appCfg.StorageLocalPath,
		BaseURL:  appCfg.StorageLocalURL,
	})
	if err != nil {
		logger.Error("avatar storage init failed", zap.Error(err))
		return nil, err
	}

	commentLimiter := ratelimit.NewCommentLimiter(appCfg.CommentsPerDay)

	r := chi.NewRouter()

	// Global: resolve the bearer identity (if any) into the request context.
	r.Use(authMgr.LoadBearerUser)

	// Operations endpoints.
	healthHandler := healthfeature.NewHandler(deps.MentorHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Handle("/metrics", metricsReg.Handler())

	statusHandler := statusfeature.NewHandler(deps.MentorHubMongoClient, recentEvents, logger)
	r.Mount("/status", statusfeature.Routes(statusHandler, authMgr))

	// Marketplace discovery is the one public API surface.
	mentorsHandler := mentorsfeature.NewHandler(db, errLog, logger)
	r.With(metricsReg.Middleware("/api/mentors")).
		Mount("/api/mentors", mentorsfeature.Routes(mentorsHandler))

	profileHandler := profilefeature.NewHandler(db, avatarStore, errLog, audit, metricsReg, logger)
	r.With(metricsReg.Middleware("/api/profile")).
		Mount("/api/profile", profilefeature.Routes(profileHandler, authMgr))

	assignmentsHandler := assignmentsfeature.NewHandler(db, errLog, audit, metricsReg, logger)
	r.With(metricsReg.Middleware("/api/assignments")).
		Mount("/api/assignments", assignmentsfeature.Routes(assignmentsHandler, authMgr))

	impactHandler := impactfeature.NewHandler(db, errLog, audit, metricsReg, logger)
	r.With(metricsReg.Middleware("/api/impact")).
		Mount("/api/impact", impactfeature.Routes(impactHandler, authMgr))

	annotationsHandler := annotationsfeature.NewHandler(db, errLog, audit, commentLimiter, logger)
	r.With(metricsReg.Middleware("/api/chats")).
		Mount("/api/chats", annotationsfeature.Routes(annotationsHandler, authMgr))

	accountHandler := accountfeature.NewHandler(db, errLog, audit, logger)
	r.With(metricsReg.Middleware("/api/account")).
		Mount("/api/account", accountfeature.Routes(accountHandler, authMgr))

	return r, nil
}
