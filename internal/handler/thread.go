package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/syndx/forum-api/internal/middleware"
	"github.com/syndx/forum-api/internal/utils"
)

type createThreadRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
}

// POST /threads
func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteFail(w, http.StatusUnauthorized, "Missing authentication")
		return
	}

	var body createThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	registered, err := h.thread.Create(body.Title, body.Body, user.Id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, map[string]interface{}{"addedThread": registered})
}

// GET /threads/{threadId}
func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	detail, err := h.thread.Get(threadId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{"thread": detail})
}
