package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"watchgate/internal/platform/middleware"
	"watchgate/internal/screening"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type stubService struct {
	result *screening.ScreenResult
	err    error
	got    screening.ScreenRequest
}

func (s *stubService) Screen(_ context.Context, req screening.ScreenRequest) (*screening.ScreenResult, error) {
	s.got = req
	return s.result, s.err
}

func newTestRouter(svc Service, validator middleware.JWTValidator) http.Handler {
	r := chi.NewRouter()
	New(svc, discardLogger, validator).Register(r)
	return r
}

func postScreen(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/screen", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleScreen(t *testing.T) {
	svc := &stubService{
		result: &screening.ScreenResult{
			RunID:   "run-1",
			Query:   "John Smith",
			Country: "Panama",
			Sources: []screening.SourceResult{
				{Source: "OFAC SDN List", Matches: screening.MatchSet{{Name: "John Smith", Score: 100}}},
				{Source: "UN Consolidated Sanctions List", Matches: screening.MatchSet{}, Skipped: true, Warning: "UN Consolidated Sanctions List check failed: boom"},
			},
			Assessment: screening.RiskAssessment{
				Score:   70,
				Factors: []screening.RiskFactor{screening.FactorOFACSanctions, screening.FactorMonitored},
			},
			ScreenedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	router := newTestRouter(svc, nil)

	rec := postScreen(t, router, `{"query":"John Smith","country":"Panama"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "John Smith", svc.got.Query)
	assert.Equal(t, "Panama", svc.got.Country)

	var resp ScreenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "run-1", resp.RunID)
	assert.Equal(t, 70, resp.Assessment.Score)
	require.Len(t, resp.Sources, 2)
	assert.Equal(t, "John Smith", resp.Sources[0].Matches[0].Name)
	assert.True(t, resp.Sources[1].Skipped)
	assert.Nil(t, resp.Domain)
}

func TestHandleScreenValidation(t *testing.T) {
	router := newTestRouter(&stubService{}, nil)

	t.Run("empty query", func(t *testing.T) {
		rec := postScreen(t, router, `{"query":"   "}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"bad_request","error_description":"query name is required"}`, rec.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := postScreen(t, router, `{"query":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"bad_request","error_description":"invalid request body"}`, rec.Body.String())
	})

	t.Run("wrong content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/screen", strings.NewReader(`{"query":"x"}`))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleScreenCancelledContext(t *testing.T) {
	router := newTestRouter(&stubService{err: context.DeadlineExceeded}, nil)

	rec := postScreen(t, router, `{"query":"John Smith"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"source_unavailable","error_description":"screening timed out"}`, rec.Body.String())
}

type denyValidator struct{}

func (denyValidator) ValidateToken(string) (*middleware.JWTClaims, error) {
	return &middleware.JWTClaims{ClientID: "c"}, nil
}

func TestHandleScreenRequiresToken(t *testing.T) {
	router := newTestRouter(&stubService{}, denyValidator{})

	rec := postScreen(t, router, `{"query":"John Smith"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
