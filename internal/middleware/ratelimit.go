package middleware

import (
	"net"
	"net/http"

	"github.com/syndx/forum-api/internal/middleware/ratelimiter"
	"github.com/syndx/forum-api/internal/utils"
)

// RateLimit throttles requests per acting user. Runs after NeedAuth, so
// the user is normally in the context; unauthenticated requests fall back
// to the client IP.
func RateLimit(limiter *ratelimiter.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)
			if !limiter.Allow(key) {
				utils.WriteFail(w, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if user := GetUserFromContext(r); user != nil {
		return user.Id
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
