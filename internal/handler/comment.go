package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/syndx/forum-api/internal/domain"
	"github.com/syndx/forum-api/internal/middleware"
	"github.com/syndx/forum-api/internal/utils"
)

type createCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

// POST /threads/{threadId}/comments
func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteFail(w, http.StatusUnauthorized, "Missing authentication")
		return
	}
	threadId := chi.URLParam(r, "threadId")

	var body createCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	registered, err := h.comment.Create(threadId, user.Id, body.Content, nil)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, map[string]interface{}{"addedComment": registered})
}

// POST /threads/{threadId}/comments/{commentId}/replies
func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteFail(w, http.StatusUnauthorized, "Missing authentication")
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := domain.CommentId(chi.URLParam(r, "commentId"))

	var body createCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	registered, err := h.comment.Create(threadId, user.Id, body.Content, &commentId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, map[string]interface{}{"addedReply": registered})
}

// DELETE /threads/{threadId}/comments/{commentId}
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteFail(w, http.StatusUnauthorized, "Missing authentication")
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	if err := h.comment.Delete(commentId, threadId, user.Id, nil); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}

// DELETE /threads/{threadId}/comments/{commentId}/replies/{replyId}
func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteFail(w, http.StatusUnauthorized, "Missing authentication")
		return
	}
	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")
	replyId := domain.CommentId(chi.URLParam(r, "replyId"))

	if err := h.comment.Delete(commentId, threadId, user.Id, &replyId); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, nil)
}
