// internal/app/features/annotations/comments.go
package annotations

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/launchlane/mentorhub/internal/app/features/httpapi"
	annotationstore "github.com/launchlane/mentorhub/internal/app/store/annotations"
	assignmentstore "github.com/launchlane/mentorhub/internal/app/store/assignments"
	"github.com/launchlane/mentorhub/internal/app/system/authz"
	"github.com/launchlane/mentorhub/internal/app/system/htmlsanitize"
	"github.com/launchlane/mentorhub/internal/app/system/inputval"
	"github.com/launchlane/mentorhub/internal/app/system/normalize"
	"github.com/launchlane/mentorhub/internal/app/system/timeouts"
	"github.com/launchlane/mentorhub/internal/domain/models"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

type commentInput struct {
	FounderID string `json:"founderId" validate:"required,max=200" label:"Founder id"`
	Comment   string `json:"comment" validate:"required,max=2000" label:"Comment"`
}

// HandleCreate handles POST /api/chats/{chatID}/comments. The caller is
// the mentor; founderId names the chat's owning founder, and the write is
// refused unless a non-rejected assignment links the two.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	_, _, authorID, _ := authz.UserCtx(r)
	chatID := normalize.QueryParam(chi.URLParam(r, "chatID"))
	if chatID == "" {
		h.ErrLog.BadRequest(w, r, "Chat id is required.")
		return
	}

	var in commentInput
	if err := httpapi.DecodeJSON(w, r, &in); err != nil {
		h.ErrLog.BadRequest(w, r, err.Error())
		return
	}
	if result := inputval.Validate(in); result.HasErrors() {
		h.ErrLog.BadRequest(w, r, result.First())
		return
	}
	founderID := normalize.QueryParam(in.FounderID)
	comment := htmlsanitize.Plain(in.Comment)
	if comment == "" {
		h.ErrLog.BadRequest(w, r, "Comment is required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	a, err := assignmentstore.New(h.DB).GetByPair(ctx, authorID, founderID)
	if err == assignmentstore.ErrAssignmentNotFound || (err == nil && a.Status == models.AssignmentRejected) {
		httpapi.Fail(w, http.StatusUnauthorized, "Unauthorized: Mentor not assigned to this founder")
		return
	}
	if err != nil {
		h.ErrLog.ServerError(w, r, "assignment lookup failed", err)
		return
	}

	store := annotationstore.New(h.DB)

	if ok, err := h.underDailyCap(ctx, store, authorID); err != nil {
		h.ErrLog.ServerError(w, r, "comment cap check failed", err)
		return
	} else if !ok {
		httpapi.Fail(w, http.StatusTooManyRequests, "Daily comment limit reached. Try again tomorrow.")
		return
	}

	created, err := store.Append(ctx, models.ChatAnnotation{
		ChatID:   chatID,
		AuthorID: authorID,
		Comment:  comment,
	})
	if err != nil {
		h.ErrLog.ServerError(w, r, "append annotation failed", err)
		return
	}

	h.Audit.CommentAdded(ctx, r, authorID, chatID)

	httpapi.Created(w, map[string]any{"annotation": created})
}

// underDailyCap enforces the per-author daily cap. The in-memory window is
// the fast path; the store count backs it up so a process restart does not
// reset the cap.
func (h *Handler) underDailyCap(ctx context.Context, store *annotationstore.Store, authorID string) (bool, error) {
	perDay := h.Comments.Cap()
	if perDay <= 0 {
		return true, nil
	}
	if !h.Comments.Allow(authorID) {
		return false, nil
	}

	since := time.Now().UTC().Add(-24 * time.Hour)
	n, err := store.CountByAuthorSince(ctx, authorID, since)
	if err != nil {
		return false, err
	}
	if n >= int64(perDay) {
		h.Log.Debug("daily comment cap hit from durable count",
			zap.String("author", authorID), zap.Int64("count", n))
		return false, nil
	}
	return true, nil
}

// ServeList handles GET /api/chats/{chatID}/comments, returning the chat's
// annotations in posting order.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	chatID := normalize.QueryParam(chi.URLParam(r, "chatID"))
	if chatID == "" {
		h.ErrLog.BadRequest(w, r, "Chat id is required.")
		return
	}

	limit := int64(defaultListLimit)
	if raw := normalize.QueryParam(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 {
			h.ErrLog.BadRequest(w, r, "Limit must be a positive integer.")
			return
		}
		if n > maxListLimit {
			n = maxListLimit
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := annotationstore.New(h.DB).ListByChat(ctx, chatID, limit)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list annotations failed", err)
		return
	}
	if list == nil {
		list = []models.ChatAnnotation{}
	}

	httpapi.OK(w, map[string]any{"annotations": list})
}
