package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	httpmw "github.com/you-humble/material-catalog/platform/http/middleware"
	"github.com/you-humble/material-catalog/platform/logger"
	"github.com/you-humble/material-catalog/platform/metrics"
)

type MaterialHandler interface {
	Routes() chi.Router
}

// NewRouter mounts the material resource under /materials. Cross-origin
// requests are accepted from allowedOrigin only.
func NewRouter(materials MaterialHandler, healthCheck http.Handler, allowedOrigin string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		httpmw.Logging(logger.L()),
		metrics.Middleware,
		httpmw.Recovery(logger.L()),
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{allowedOrigin},
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders:   []string{"X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)

	r.Mount("/materials", materials.Routes())

	r.Method(http.MethodGet, "/health", healthCheck)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}
