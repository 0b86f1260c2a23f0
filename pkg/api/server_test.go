package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alrightsc/gtnh-flow/pkg/recipe"
	"github.com/Alrightsc/gtnh-flow/pkg/server"
)

func TestConstants(t *testing.T) {
	assert.Equal(t, "gtocd", name)
	assert.Equal(t, "dev", versionDefault)
	assert.NotEmpty(t, Version())
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	s, err := NewServer()
	require.NoError(t, err)
	return s.Handler()
}

func TestNewServer_Routes(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var root struct {
		Name   string   `json:"name"`
		Routes []string `json:"routes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &root))
	assert.Equal(t, name, root.Name)
	assert.Equal(t, []string{
		"/health",
		"/metrics",
		"/ready",
		"/v1/machines",
		"/v1/overclock",
		"/v1/overclock/batch",
		"/v1/tiers",
	}, root.Routes)
}

func TestNewServer_OptionsOverride(t *testing.T) {
	s, err := NewServer(server.WithName("custom"))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rec.Body.String(), `"name":"custom"`)
}

func TestOverclockEndpoint(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/overclock",
		strings.NewReader(`{"machine":"industrial coke oven","user_voltage":"HV","eut":30,"dur":1000}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var out recipe.Recipe
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "industrial coke oven", out.Machine)
	assert.Greater(t, out.EUt, 30.0)
}

func TestErrorEnvelope(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/overclock", strings.NewReader(`not json`))
	req.Header.Set("X-Request-Id", "550e8400-e29b-41d4-a716-446655440000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", resp.RequestID)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestConcurrentRequests(t *testing.T) {
	h := newTestHandler(t)

	const n = 20
	codes := make([]int, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/v1/overclock",
				strings.NewReader(`{"machine":"EBF","user_voltage":"EV","eut":120,"dur":400,"coils":"HSSG","heat":1800}`))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			codes[i] = rec.Code
		}()
	}
	wg.Wait()

	for i, code := range codes {
		assert.Equal(t, http.StatusOK, code, "request %d", i)
	}
}
