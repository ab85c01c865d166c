// Package router wires handlers and middleware into the chi route tree.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/syndx/forum-api/internal/config"
	"github.com/syndx/forum-api/internal/handler"
	"github.com/syndx/forum-api/internal/middleware"
	"github.com/syndx/forum-api/internal/middleware/metrics"
	"github.com/syndx/forum-api/internal/middleware/ratelimiter"
)

func New(h *handler.Handler, auth *middleware.Auth, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
	}))
	r.Use(metrics.Middleware)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method("GET", "/metrics", promhttp.Handler())

	writeLimiter := ratelimiter.New(cfg.Public.WriteRPS, cfg.Public.WriteBurst, 1*time.Hour)

	r.Post("/users", h.RegisterUser)
	r.Post("/authentications", h.Login)

	r.Route("/threads", func(r chi.Router) {
		r.Get("/{threadId}", h.GetThread)

		// Writes require a valid token and are throttled per user.
		r.Group(func(r chi.Router) {
			r.Use(auth.NeedAuth())
			r.Use(middleware.RateLimit(writeLimiter))

			r.Post("/", h.CreateThread)
			r.Post("/{threadId}/comments", h.CreateComment)
			r.Delete("/{threadId}/comments/{commentId}", h.DeleteComment)
			r.Post("/{threadId}/comments/{commentId}/replies", h.CreateReply)
			r.Delete("/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
			r.Put("/{threadId}/comments/{commentId}/likes", h.ToggleLike)
		})
	})

	return r
}
