// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for MentorHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, auth_token_secret, etc.
//   - Environment variables: MENTORHUB_MONGO_URI, MENTORHUB_AUTH_TOKEN_SECRET, etc.
//   - Command-line flags: --mongo_uri, --auth_token_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "mentor_hub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Bearer credential verification
	{Name: "auth_token_secret", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "HS256 shared secret for bearer tokens (must be strong in production)"},
	{Name: "auth_token_issuer", Default: "", Desc: "Expected bearer token issuer (blank disables the check)"},

	// Avatar storage configuration
	{Name: "storage_type", Default: "local", Desc: "Storage backend: 'local'"},
	{Name: "storage_local_path", Default: "./uploads/avatars", Desc: "Local storage path for avatar images"},
	{Name: "storage_local_url", Default: "/files/avatars", Desc: "URL prefix for serving stored avatars"},

	// Audit logging settings
	{Name: "audit_log_domain", Default: "all", Desc: "Marketplace event logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_log_account", Default: "all", Desc: "Account event logging: 'all' (db+log), 'db', 'log', or 'off'"},

	// Abuse limits
	{Name: "comments_per_day", Default: 50, Desc: "Daily chat-comment cap per mentor (0 disables)"},

	// Operational status
	{Name: "recent_events_cap", Default: 256, Desc: "Size of the /status recent-event ring"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// config.LoadWithAppConfig merges .env files, config files, MENTORHUB_*
// environment variables, and command-line flags, with precedence
// flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "MENTORHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		AuthTokenSecret: appValues.String("auth_token_secret"),
		AuthTokenIssuer: appValues.String("auth_token_issuer"),

		StorageType:      appValues.String("storage_type"),
		StorageLocalPath: appValues.String("storage_local_path"),
		StorageLocalURL:  appValues.String("storage_local_url"),

		AuditLogDomain:  appValues.String("audit_log_domain"),
		AuditLogAccount: appValues.String("audit_log_account"),

		CommentsPerDay: appValues.Int("comments_per_day"),

		RecentEventsCap: appValues.Int("recent_events_cap"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// MentorHub validates the MongoDB URI format and the token secret here to
// catch configuration errors before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.AuthTokenSecret == "" {
		return fmt.Errorf("auth_token_secret must be set")
	}
	if coreCfg.Env == "prod" && len(appCfg.AuthTokenSecret) < 32 {
		return fmt.Errorf("auth_token_secret must be at least 32 characters in production")
	}

	if appCfg.StorageType != "local" {
		return fmt.Errorf("unsupported storage_type %q (only 'local' is supported)", appCfg.StorageType)
	}

	return nil
}
