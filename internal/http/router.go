package http

import (
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/schedule-api/internal/http/handlers"
)

// NewRouter registers the API routes, health endpoints and the OpenAPI document on a chi router.
// Middlewares run for every request, including unmatched ones.
func NewRouter(handler *handlers.Handler, middlewares ...func(nethttp.Handler) nethttp.Handler) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/health", handler.Health)
	r.Get("/ready", handler.Ready)

	routes := Routes(handler)
	for _, route := range routes {
		r.Method(route.Method, route.Pattern, route.Handler)
	}
	r.Get("/openapi.yaml", openAPIHandler(routes))
	return r
}
