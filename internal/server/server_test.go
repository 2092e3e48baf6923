package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/wichai/compass/internal/auth"
	"github.com/wichai/compass/internal/catalog"
	"github.com/wichai/compass/internal/store"
)

func newTestServer(t *testing.T) (http.Handler, *store.Store) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)
	_, err = st.Admins().Create(t.Context(), "admin", hash)
	require.NoError(t, err)

	srv, err := New(st.Submissions(), st.Admins(), auth.NewManager("test-secret", time.Hour), zerolog.Nop())
	require.NoError(t, err)
	return srv.Routes(), st
}

func fullAnswers() map[string]string {
	answers := map[string]string{}
	for _, q := range catalog.Questions() {
		answers[q.ID] = "A"
	}
	return answers
}

func submitBody(t *testing.T, role string, answers map[string]string) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"role":     role,
		"userName": "Ann",
		"answers":  answers,
	})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func login(t *testing.T, handler http.Handler) *http.Cookie {
	t.Helper()
	body := strings.NewReader(`{"username":"admin","password":"hunter2"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", body)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestSubmitAndStats(t *testing.T) {
	handler, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/assessment/submit", submitBody(t, "founder", fullAnswers()))
	req.Header.Set("User-Agent", "test-agent")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Response struct {
				ID           int    `json:"id"`
				Role         string `json:"role"`
				OverallScore int    `json:"overallScore"`
			} `json:"response"`
			Results struct {
				Overall struct {
					Score      int     `json:"score"`
					MaxScore   int     `json:"maxScore"`
					Percentage float64 `json:"percentage"`
					Level      string  `json:"level"`
				} `json:"overall"`
			} `json:"results"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotZero(t, resp.Data.Response.ID)
	require.Equal(t, 48, resp.Data.Response.OverallScore)
	require.Equal(t, 48, resp.Data.Results.Overall.Score)
	require.Equal(t, "excellent", resp.Data.Results.Overall.Level)

	cookie := login(t, handler)
	req = httptest.NewRequest(http.MethodGet, "/api/assessment/stats", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var statsResp struct {
		Data struct {
			TotalResponses   int            `json:"totalResponses"`
			AverageScore     float64        `json:"averageScore"`
			RoleDistribution map[string]int `json:"roleDistribution"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &statsResp))
	require.Equal(t, 1, statsResp.Data.TotalResponses)
	require.Equal(t, float64(100), statsResp.Data.AverageScore)
	require.Equal(t, 1, statsResp.Data.RoleDistribution["founder"])
}

func TestSubmitRejectsInvalidOption(t *testing.T) {
	handler, _ := newTestServer(t)

	answers := fullAnswers()
	answers["1.1"] = "E"
	req := httptest.NewRequest(http.MethodPost, "/api/assessment/submit", submitBody(t, "founder", answers))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Fields  []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.Len(t, resp.Fields, 1)
	require.Equal(t, "answers.1.1", resp.Fields[0].Field)
}

func TestSubmitRejectsIncompleteAnswerSet(t *testing.T) {
	handler, _ := newTestServer(t)

	answers := fullAnswers()
	delete(answers, "3.2")
	req := httptest.NewRequest(http.MethodPost, "/api/assessment/submit", submitBody(t, "founder", answers))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "answers.3.2")
}

func TestSubmitRejectsUnknownRole(t *testing.T) {
	handler, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/assessment/submit", submitBody(t, "astronaut", fullAnswers()))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuestionsOmitPoints(t *testing.T) {
	handler, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/assessment/questions", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, catalog.TotalQuestions)
	require.NotContains(t, rec.Body.String(), "points")
}

func TestAdminEndpointsRequireSession(t *testing.T) {
	handler, _ := newTestServer(t)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/api/assessment/responses"},
		{http.MethodGet, "/api/assessment/stats"},
		{http.MethodGet, "/api/assessment/export"},
		{http.MethodDelete, "/api/assessment/responses/1"},
		{http.MethodDelete, "/api/assessment/responses"},
	}
	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equalf(t, http.StatusUnauthorized, rec.Code, "%s %s", p.method, p.path)
	}
}

func TestLoginRejectsBadPassword(t *testing.T) {
	handler, _ := newTestServer(t)

	body := strings.NewReader(`{"username":"admin","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", body)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeleteMissingResponse(t *testing.T) {
	handler, _ := newTestServer(t)
	cookie := login(t, handler)

	req := httptest.NewRequest(http.MethodDelete, "/api/assessment/responses/12345", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClearAndExport(t *testing.T) {
	handler, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/assessment/submit", submitBody(t, "external-advisor", fullAnswers()))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	cookie := login(t, handler)

	req = httptest.NewRequest(http.MethodGet, "/api/assessment/export?includeUserName=true", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "User Name")
	require.Contains(t, rec.Body.String(), "external-advisor")

	req = httptest.NewRequest(http.MethodDelete, "/api/assessment/responses", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), fmt.Sprintf("%d responses cleared", 1))
}
