package api_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"phishsniper/internal/api"
	"phishsniper/internal/api/handler/v1handler"
	"phishsniper/internal/engine"
	"phishsniper/pkg/logger"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func newServer(t *testing.T) http.Handler {
	t.Helper()

	var deps api.Deps
	srv, err := api.NewServer(deps, api.Options{
		Addr:           ":0",
		RequestTimeout: 5 * time.Second,
		MetricsPath:    "/metrics",
		Registry:       prometheus.NewRegistry(),
	})
	require.NoError(t, err)

	return srv.Handler
}

func TestServerRoutes(t *testing.T) {
	// instruments created before the first meter provider is installed are delegated to it
	e, err := engine.New(engine.Deps{}, engine.DefaultConfig())
	require.NoError(t, err)
	srv, err := api.NewServer(api.Deps{Deps: v1handler.Deps{Engine: e}}, api.Options{
		MetricsPath: "/metrics",
		Registry:    prometheus.NewRegistry(),
	})
	require.NoError(t, err)
	h := srv.Handler

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(`{"url":"http://192.168.1.1/login"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"risk_level":"Medium"`)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	cases := []struct {
		path   string
		status int
		body   string
	}{
		{path: "/healthz", status: http.StatusOK, body: `"ok"`},
		{path: "/specs/v1.yaml", status: http.StatusOK, body: "openapi: 3.0.3"},
		{path: "/v1/docs/", status: http.StatusOK, body: "PhishSniper"},
		{path: "/debug/pprof/", status: http.StatusOK, body: "goroutine"},
		{path: "/metrics", status: http.StatusOK, body: "phishsniper_engine_analyses"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		require.Equal(t, tc.status, rec.Code, tc.path)
		require.Contains(t, rec.Body.String(), tc.body, tc.path)
	}
}

func TestServerPreflight(t *testing.T) {
	rec := httptest.NewRecorder()
	newServer(t).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/v1/analyze", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServerInvalidPublicKey(t *testing.T) {
	_, err := api.NewServer(api.Deps{}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: "invalid"},
		Registry:          prometheus.NewRegistry(),
	})
	require.Error(t, err)
}
