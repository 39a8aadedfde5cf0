// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, log
// level, CORS); AppConfig is everything specific to MentorHub. Values come
// from config files, MENTORHUB_* environment variables, or command-line
// flags, loaded in LoadConfig.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Bearer credential verification
	AuthTokenSecret string // HS256 shared secret for bearer tokens (must be strong in production)
	AuthTokenIssuer string // Expected token issuer (blank disables the issuer check)

	// Avatar storage configuration
	StorageType      string // Storage backend: "local"
	StorageLocalPath string // Local storage path (e.g., "./uploads/avatars")
	StorageLocalURL  string // URL prefix for serving stored files (e.g., "/files/avatars")

	// Audit logging destinations: "all" (db+log), "db", "log", or "off"
	AuditLogDomain  string // Marketplace events: profiles, assignments, impact, comments
	AuditLogAccount string // Account events: role switches, deletions

	// Abuse limits
	CommentsPerDay int // Daily chat-comment cap per mentor (0 disables)

	// Operational status
	RecentEventsCap int // Size of the /status recent-event ring
}
