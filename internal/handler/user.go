package handler

import (
	"net/http"

	"github.com/syndx/forum-api/internal/utils"
)

type registerUserRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Fullname string `json:"fullname" validate:"required"`
}

// POST /users
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var body registerUserRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	registered, err := h.auth.Register(body.Username, body.Password, body.Fullname)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, map[string]interface{}{"addedUser": registered})
}
