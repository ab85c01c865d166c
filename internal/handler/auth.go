package handler

import (
	"net/http"
	"time"

	"github.com/syndx/forum-api/internal/utils"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// POST /authentications
//
// On success the token rides both in the body and in an httpOnly cookie,
// so browser clients and API clients can use whichever fits.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	token, err := h.auth.Login(body.Username, body.Password)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.JwtTTL()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	utils.WriteSuccess(w, http.StatusCreated, map[string]interface{}{"accessToken": token})
}
