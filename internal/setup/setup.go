// Package setup initializes the dependency graph of the service.
package setup

import (
	"github.com/syndx/forum-api/internal/config"
	"github.com/syndx/forum-api/internal/handler"
	"github.com/syndx/forum-api/internal/jwt"
	"github.com/syndx/forum-api/internal/middleware"
	"github.com/syndx/forum-api/internal/service"
	"github.com/syndx/forum-api/internal/storage/pg"
)

type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Jwt            jwt.JwtService
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, jwtService, cfg.Public.BcryptCost)
	thread := service.NewThread(storage, storage)
	comment := service.NewComment(storage, storage)
	like := service.NewLike(storage, storage, storage)

	h := handler.New(auth, thread, comment, like, storage, cfg)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(jwtService),
		Jwt:            jwtService,
	}, nil
}
