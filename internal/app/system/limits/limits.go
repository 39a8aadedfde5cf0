// internal/app/system/limits/limits.go
package limits

// Request body size limits for various features.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxJSONBodySize is the maximum size for JSON API request bodies.
	MaxJSONBodySize = 1 << 20 // 1 MB

	// MaxAvatarSize is the maximum size for avatar image uploads.
	// Avatar uploads use ParseMultipartForm with this limit.
	MaxAvatarSize = 5 << 20 // 5 MB
)

// AllowedAvatarTypes lists the content types accepted for avatar uploads.
var AllowedAvatarTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}
