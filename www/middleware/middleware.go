// Package middleware wraps the probe server's handlers with request logging
// and response headers.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type Middleware func(http.HandlerFunc) http.HandlerFunc

func MiddlewareChain(middlewares ...Middleware) Middleware {
	return func(handler http.HandlerFunc) http.HandlerFunc {
		for _, mw := range middlewares {
			handler = mw(handler)
		}
		return handler
	}
}

// Logging middleware logs probe and graph requests after they complete.
func Logging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Generate (or reuse) a unique request ID.
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r)
		duration := time.Since(start)

		// Determine the client IP.
		clientIP := r.RemoteAddr
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			clientIP = forwarded
		}

		slog.Info("HTTP request completed",
			"request_id", requestID,
			"client_ip", clientIP,
			"method", r.Method,
			"uri", r.RequestURI,
			"duration", duration,
			"user_agent", r.UserAgent(),
		)
	}
}

// SecurityHeaders adds response headers for the probe and graph endpoints.
// Both serve non-HTML content, so MIME confusion protection is the one that
// matters.
func SecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		next(w, r)
	}
}
