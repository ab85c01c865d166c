package domain

import (
	"time"

	internal_errors "github.com/syndx/forum-api/internal/errors"
)

// RegisterThread is the validated payload for thread creation.
type RegisterThread struct {
	Title ThreadTitle
	Body  string
}

func NewRegisterThread(title, body string) (RegisterThread, error) {
	if title == "" || body == "" {
		return RegisterThread{}, internal_errors.NewValidation("thread needs title and body")
	}
	return RegisterThread{Title: title, Body: body}, nil
}

// RegisteredThread is what storage hands back after a successful insert.
type RegisteredThread struct {
	Id    ThreadId    `json:"id"`
	Title ThreadTitle `json:"title"`
	Owner UserId      `json:"owner"`
}

func NewRegisteredThread(id, title, owner string) (RegisteredThread, error) {
	if id == "" || title == "" || owner == "" {
		return RegisteredThread{}, internal_errors.NewValidation("registered thread needs id, title and owner")
	}
	return RegisteredThread{Id: id, Title: title, Owner: owner}, nil
}

// Thread is the persisted thread with its author resolved to a username.
type Thread struct {
	Id       ThreadId    `json:"id"`
	Title    ThreadTitle `json:"title"`
	Body     string      `json:"body"`
	Date     time.Time   `json:"date"`
	Username Username    `json:"username"`
}

// ThreadDetail is the full thread view returned to clients,
// comments already materialized into their nested form.
type ThreadDetail struct {
	Thread
	Comments []MappedComment `json:"comments"`
}
