// Package handler exposes the HTTP surface of the forum API. Handlers
// decode and validate request bodies, call into the service layer and wrap
// results in the response envelope.
package handler

import (
	"context"

	"github.com/syndx/forum-api/internal/config"
	"github.com/syndx/forum-api/internal/service"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth    service.AuthService
	thread  service.ThreadService
	comment service.CommentService
	like    service.LikeService
	health  Pinger
	cfg     *config.Config
}

func New(auth service.AuthService, thread service.ThreadService, comment service.CommentService, like service.LikeService, health Pinger, cfg *config.Config) *Handler {
	return &Handler{auth, thread, comment, like, health, cfg}
}
