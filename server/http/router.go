package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	catHnd "catalogue-recon/internal/catalogue/handler"
	"catalogue-recon/internal/config"
	"catalogue-recon/internal/middleware"
	"catalogue-recon/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)

	// reconciliation endpoints
	r.Post("/analyze", catHnd.Analyze(cfg, logger))
	r.Post("/drift", catHnd.Drift(cfg, logger))

	return r
}
