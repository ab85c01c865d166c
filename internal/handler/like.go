package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/syndx/forum-api/internal/middleware"
	"github.com/syndx/forum-api/internal/utils"
)

// PUT /threads/{threadId}/comments/{commentId}/likes
//
// A deliberate PUT: the toggle is idempotent per state, two calls in a row
// land back on the original state.
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteFail(w, http.StatusUnauthorized, "Missing authentication")
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	if err := h.like.Toggle(threadId, user.Id, commentId); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
