package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/wichai/compass/internal/auth"
	"github.com/wichai/compass/internal/catalog"
	"github.com/wichai/compass/internal/export"
	"github.com/wichai/compass/internal/scoring"
	"github.com/wichai/compass/internal/stats"
	"github.com/wichai/compass/internal/submission"
)

// envelope is the uniform response wrapper.
type envelope struct {
	Success bool                 `json:"success"`
	Data    any                  `json:"data,omitempty"`
	Message string               `json:"message,omitempty"`
	Error   string               `json:"error,omitempty"`
	Fields  []scoring.FieldError `json:"fields,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error().Err(err).Msg("encode response")
	}
}

func (s *Server) writeData(w http.ResponseWriter, data any) {
	s.writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, envelope{Success: false, Error: msg})
}

func (s *Server) writeValidationError(w http.ResponseWriter, verr *scoring.ValidationError) {
	s.writeJSON(w, http.StatusBadRequest, envelope{
		Success: false,
		Error:   "validation failed",
		Fields:  verr.Fields,
	})
}

// questionPayload is the public catalog shape. Point values stay
// server-side so clients cannot see the scoring key.
type questionPayload struct {
	ID        string                   `json:"id"`
	Dimension catalog.Dimension        `json:"dimension"`
	Question  textPayload              `json:"question"`
	Options   map[string]optionPayload `json:"options"`
}

type textPayload struct {
	EN string `json:"en"`
	TH string `json:"th"`
}

type optionPayload struct {
	Text textPayload `json:"text"`
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	questions := make([]questionPayload, 0, catalog.TotalQuestions)
	for _, q := range catalog.Questions() {
		options := make(map[string]optionPayload, len(q.Options))
		for key, opt := range q.Options {
			options[string(key)] = optionPayload{Text: textPayload{EN: opt.Text.EN, TH: opt.Text.TH}}
		}
		questions = append(questions, questionPayload{
			ID:        q.ID,
			Dimension: q.Dimension,
			Question:  textPayload{EN: q.Prompt.EN, TH: q.Prompt.TH},
			Options:   options,
		})
	}
	s.writeData(w, questions)
}

type submitRequest struct {
	Role     string            `json:"role"`
	UserName *string           `json:"userName"`
	Answers  map[string]string `json:"answers"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 64<<10))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "cannot read body")
		return
	}
	if err := s.submitSchema.Validate(body); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var payload submitRequest
	if err := json.Unmarshal(body, &payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "bad request")
		return
	}

	role, err := submission.ParseRole(payload.Role)
	if err != nil {
		s.writeValidationError(w, &scoring.ValidationError{Fields: []scoring.FieldError{
			{Field: "role", Message: err.Error()},
		}})
		return
	}

	answers, err := scoring.ParseAnswerSet(payload.Answers)
	if err != nil {
		var verr *scoring.ValidationError
		if errors.As(err, &verr) {
			s.writeValidationError(w, verr)
			return
		}
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !scoring.ProgressOf(answers).Complete() {
		var fields []scoring.FieldError
		for _, q := range catalog.Questions() {
			if _, ok := answers[q.ID]; !ok {
				fields = append(fields, scoring.FieldError{
					Field:   "answers." + q.ID,
					Message: "question not answered",
				})
			}
		}
		s.writeValidationError(w, &scoring.ValidationError{Fields: fields})
		return
	}

	userName := ""
	if payload.UserName != nil {
		userName = *payload.UserName
	}
	rec := submission.FromAnswers(role, userName, r.UserAgent(), answers)

	saved, err := s.submissions.Create(r.Context(), rec)
	if err != nil {
		s.logger.Error().Err(err).Msg("save submission")
		s.writeError(w, http.StatusInternalServerError, "cannot save submission")
		return
	}

	s.writeData(w, map[string]any{
		"response": saved,
		"results":  scoring.ScoreAll(answers),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "bad request")
		return
	}
	if payload.Username == "" || payload.Password == "" {
		s.writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	admin, err := s.admins.ByUsername(r.Context(), payload.Username)
	if err != nil {
		s.logger.Error().Err(err).Msg("load admin user")
		s.writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	if admin == nil || !auth.CheckPassword(admin.PasswordHash, payload.Password) {
		s.writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := s.authManager.Issue(admin.Username)
	if err != nil {
		s.logger.Error().Err(err).Msg("issue session")
		s.writeError(w, http.StatusInternalServerError, "cannot issue session")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		HttpOnly: true,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(s.authManager.TTL()),
	})
	s.writeData(w, map[string]any{"username": admin.Username})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		HttpOnly: true,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
	})
	s.writeJSON(w, http.StatusOK, envelope{Success: true, Message: "logged out"})
}

func (s *Server) handleResponses(w http.ResponseWriter, r *http.Request) {
	records, err := s.submissions.All(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("load submissions")
		s.writeError(w, http.StatusInternalServerError, "failed to fetch assessment responses")
		return
	}
	s.writeData(w, records)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	records, err := s.submissions.All(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("load submissions")
		s.writeError(w, http.StatusInternalServerError, "failed to fetch assessment statistics")
		return
	}
	s.writeData(w, stats.Aggregate(records, time.Now()))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	ok, err := s.submissions.Delete(r.Context(), id)
	if err != nil {
		s.logger.Error().Err(err).Int("id", id).Msg("delete submission")
		s.writeError(w, http.StatusInternalServerError, "failed to delete response")
		return
	}
	if !ok {
		s.writeError(w, http.StatusNotFound, "response not found")
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{Success: true, Message: "response deleted"})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	n, err := s.submissions.Clear(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("clear submissions")
		s.writeError(w, http.StatusInternalServerError, "failed to clear responses")
		return
	}
	s.writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: fmt.Sprintf("%d responses cleared", n),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	includeNames := r.URL.Query().Get("includeUserName") == "true"

	records, err := s.submissions.All(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("load submissions")
		s.writeError(w, http.StatusInternalServerError, "failed to export data")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(includeNames)))
	if err := export.WriteCSV(w, records, includeNames); err != nil {
		s.logger.Error().Err(err).Msg("write csv export")
	}
}
