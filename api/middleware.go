package api

import (
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/secure"

	"github.com/carson-networks/spaces-server/internal/handlers/v1/response"
	"github.com/carson-networks/spaces-server/internal/logging"
)

// withCORS admits the configured frontend origin with credentials.
func withCORS(frontendURL string, next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", logging.RequestIDHeader},
		ExposedHeaders:   []string{logging.RequestIDHeader},
		AllowCredentials: true,
	}).Handler(next)
}

// securityHeaders sets the browser hardening headers on every response.
// Strict-Transport-Security is only sent on HTTPS requests outside development.
func securityHeaders(development bool, next http.Handler) http.Handler {
	return secure.New(secure.Options{
		FrameDeny:            true,
		ContentTypeNosniff:   true,
		ReferrerPolicy:       "no-referrer",
		STSSeconds:           15552000,
		STSIncludeSubdomains: true,
		IsDevelopment:        development,
	}).Handler(next)
}

// requestID echoes the caller's request id or assigns a fresh one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := req.Header.Get(logging.RequestIDHeader)
		if id == "" {
			id = uuid.Must(uuid.NewV4()).String()
			req.Header.Set(logging.RequestIDHeader, id)
		}
		w.Header().Set(logging.RequestIDHeader, id)
		next.ServeHTTP(w, req)
	})
}

// recoverer turns a panicking handler into the 500 error envelope.
func recoverer(logger *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.WithFields(logrus.Fields{
				"panic":  rec,
				"path":   req.URL.Path,
				"method": req.Method,
			}).Error("HttpServer.recoverer.panic")
			response.WriteError(w, http.StatusInternalServerError, "Internal server error")
		}()
		next.ServeHTTP(w, req)
	})
}
