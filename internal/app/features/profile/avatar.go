// internal/app/features/profile/avatar.go
package profile

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	profilestore "github.com/launchlane/mentorhub/internal/app/store/profiles"
	"github.com/launchlane/mentorhub/internal/app/system/authz"
	"github.com/launchlane/mentorhub/internal/app/system/limits"
	"github.com/launchlane/mentorhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleAvatarUpload handles POST /api/profile/avatar (multipart field
// "avatar"). Accepts image/jpeg, image/png, image/webp up to 5 MiB; the
// public URL is written onto the caller's profile and the derived strength
// refreshed.
func (h *Handler) HandleAvatarUpload(w http.ResponseWriter, r *http.Request) {
	_, _, uid, _ := authz.UserCtx(r)

	// Slack for multipart framing on top of the file cap.
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxAvatarSize+64*1024)

	file, header, err := r.FormFile("avatar")
	if err != nil {
		h.ErrLog.BadRequest(w, r, "An image file is required in the \"avatar\" field.")
		return
	}
	defer file.Close()

	if header.Size > limits.MaxAvatarSize {
		h.ErrLog.BadRequest(w, r, "Avatar image must be 5 MB or smaller.")
		return
	}
	contentType := header.Header.Get("Content-Type")
	ext, ok := limits.AllowedAvatarTypes[contentType]
	if !ok {
		h.ErrLog.BadRequest(w, r, "Avatar must be a JPEG, PNG, or WebP image.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	// Unique path: avatars/YYYY/MM/uuid.ext
	now := time.Now().UTC()
	path := filepath.ToSlash(filepath.Join(
		fmt.Sprintf("avatars/%04d/%02d", now.Year(), now.Month()),
		uuid.New().String()[:8]+ext,
	))

	opts := &storage.PutOptions{ContentType: contentType}
	if err := h.Storage.Put(ctx, path, file, opts); err != nil {
		h.ErrLog.ServerError(w, r, "avatar upload failed", err)
		return
	}

	url := h.Storage.URL(path)
	updated, err := profilestore.New(h.DB).SetAvatarURL(ctx, uid, url)
	if err == profilestore.ErrProfileNotFound {
		httpapi.Fail(w, http.StatusNotFound, "Profile not found.")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "store avatar url failed", err)
		return
	}

	h.Log.Info("avatar uploaded",
		zap.String("uid", uid),
		zap.String("path", path),
		zap.Int64("size", header.Size),
	)
	h.Audit.AvatarUploaded(ctx, r, uid, contentType)

	httpapi.OK(w, map[string]any{"profile": updated})
}
