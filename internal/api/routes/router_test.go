package routes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebridge/medtour-backend/internal/api/handlers"
	"github.com/carebridge/medtour-backend/internal/api/routes"
)

type okPinger struct{}

func (okPinger) Ping(_ context.Context) error { return nil }

func newTestHandler() http.Handler {
	healthHandler := handlers.NewHealthHandler(map[string]handlers.Pinger{
		"postgres": okPinger{},
	})
	router := routes.NewRouter(handlers.NewDirectoryHandler(nil), healthHandler, nil, nil)
	return router.SetupRoutes()
}

func TestRouter_HealthEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_UnknownRouteIs404(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
