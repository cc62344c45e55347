package routes

import (
	"net/http"

	"github.com/carebridge/medtour-backend/internal/api/handlers"
	"github.com/carebridge/medtour-backend/internal/api/middleware"
	"github.com/carebridge/medtour-backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	directoryHandler *handlers.DirectoryHandler
	healthHandler    *handlers.HealthHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	directoryHandler *handlers.DirectoryHandler,
	healthHandler *handlers.HealthHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		directoryHandler: directoryHandler,
		healthHandler:    healthHandler,
		cacheMiddleware:  cacheMiddleware,
		metrics:          metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /api/health", r.healthHandler.Health)

	// Directory endpoints
	r.mux.HandleFunc("GET /api/hospitals", r.directoryHandler.ListHospitals)
	r.mux.HandleFunc("GET /api/branches", r.directoryHandler.ListBranches)
	r.mux.HandleFunc("GET /api/doctors", r.directoryHandler.ListDoctors)
	r.mux.HandleFunc("GET /api/treatments", r.directoryHandler.ListTreatments)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}

	handler = middleware.CORSMiddleware(handler)

	return handler
}
