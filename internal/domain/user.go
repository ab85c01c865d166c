package domain

import (
	"time"

	internal_errors "github.com/syndx/forum-api/internal/errors"
)

type User struct {
	Id        UserId
	Username  Username
	PassHash  string
	Fullname  string
	CreatedAt time.Time
}

// RegisteredUser is the public view of a freshly created account.
type RegisteredUser struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
	Fullname string   `json:"fullname"`
}

func NewRegisteredUser(id, username, fullname string) (RegisteredUser, error) {
	if id == "" || username == "" || fullname == "" {
		return RegisteredUser{}, internal_errors.NewValidation("registered user needs id, username and fullname")
	}
	return RegisteredUser{Id: id, Username: username, Fullname: fullname}, nil
}
