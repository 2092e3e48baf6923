// Package server exposes the assessment and admin HTTP API.
package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wichai/compass/internal/auth"
	"github.com/wichai/compass/internal/store"
)

const sessionCookie = "compass_session"

// Server wires the HTTP handlers to the repositories.
type Server struct {
	submissions  store.SubmissionRepo
	admins       store.AdminRepo
	authManager  *auth.Manager
	logger       zerolog.Logger
	submitSchema *submitSchema
}

// New builds a Server. It compiles the submit payload schema once.
func New(submissions store.SubmissionRepo, admins store.AdminRepo, authManager *auth.Manager, logger zerolog.Logger) (*Server, error) {
	schema, err := compileSubmitSchema()
	if err != nil {
		return nil, err
	}
	return &Server{
		submissions:  submissions,
		admins:       admins,
		authManager:  authManager,
		logger:       logger,
		submitSchema: schema,
	}, nil
}

// Routes returns the full handler tree. Reporting and destructive endpoints
// sit behind the admin session check.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/assessment/questions", s.handleQuestions)
	mux.HandleFunc("POST /api/assessment/submit", s.handleSubmit)
	mux.HandleFunc("POST /api/admin/login", s.handleLogin)
	mux.HandleFunc("POST /api/admin/logout", s.handleLogout)

	mux.Handle("GET /api/assessment/responses", s.adminOnly(s.handleResponses))
	mux.Handle("GET /api/assessment/stats", s.adminOnly(s.handleStats))
	mux.Handle("GET /api/assessment/export", s.adminOnly(s.handleExport))
	mux.Handle("DELETE /api/assessment/responses/{id}", s.adminOnly(s.handleDelete))
	mux.Handle("DELETE /api/assessment/responses", s.adminOnly(s.handleClear))

	return s.logRequests(mux)
}

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info().
			Str("request_id", uuid.NewString()).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// adminOnly requires a valid admin session cookie.
func (s *Server) adminOnly(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			s.writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if _, err := s.authManager.Parse(cookie.Value); err != nil {
			s.writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next(w, r)
	})
}
