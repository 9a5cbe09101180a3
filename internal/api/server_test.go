package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsutakahope/churching-sub001/internal/api"
	"github.com/itsutakahope/churching-sub001/internal/application/service"
	"github.com/itsutakahope/churching-sub001/internal/infrastructure/storage"
)

func newTestServer() (*api.Server, *storage.MockRepository) {
	repo := storage.NewMockRepository()
	svc := service.NewSummaryService(repo, nil)
	return api.NewServer(api.DefaultConfig(), repo, svc, nil), repo
}

func TestServerRoutes(t *testing.T) {
	server, repo := newTestServer()
	repo.AddDedication(&storage.Dedication{
		ID:       "DED-1",
		Amount:   1000,
		Method:   "cash",
		Category: "building-fund",
	})

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"list dedications", http.MethodGet, "/api/dedications", "", http.StatusOK},
		{"get dedication", http.MethodGet, "/api/dedications/DED-1", "", http.StatusOK},
		{"missing dedication", http.MethodGet, "/api/dedications/nope", "", http.StatusNotFound},
		{"summary", http.MethodGet, "/api/summary", "", http.StatusOK},
		{"set summary total", http.MethodPut, "/api/summary/total", `{"period":"current","total":1000}`, http.StatusOK},
		{"list reports", http.MethodGet, "/api/reports", "", http.StatusOK},
		{"generate report", http.MethodPost, "/api/reports", "", http.StatusCreated},
		{"unknown route", http.MethodGet, "/api/nope", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req *http.Request
			if tc.body != "" {
				req = httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			} else {
				req = httptest.NewRequest(tc.method, tc.path, nil)
			}
			rec := httptest.NewRecorder()

			server.Router().ServeHTTP(rec, req)

			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestServerCORSHeaders(t *testing.T) {
	server, _ := newTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/api/dedications", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServerHealthBody(t *testing.T) {
	server, _ := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}
