package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/joshuamatosdev/insight-sub001/internal/http/contract"
	authmw "github.com/joshuamatosdev/insight-sub001/internal/http/middleware"
	"github.com/joshuamatosdev/insight-sub001/internal/http/report"
)

type Options struct {
	// AllowedOrigins lists the browser origins allowed by CORS.
	AllowedOrigins []string
	// Auth enables bearer authentication on /api/v1 when set.
	Auth *authmw.Auth
}

func New(
	contractsV1 *contract.Handler,
	reportsV1 *report.Handler,
	opts Options,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Report-Archive-Key"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	router.Route("/api/v1", func(r chi.Router) {
		if opts.Auth != nil {
			r.Use(opts.Auth.Middleware)
		}

		r.Get("/labels", contractsV1.Labels)

		r.Route("/contracts", func(r chi.Router) {
			contractsV1.Routes(r)
			reportsV1.Routes(r)
		})
	})

	return router
}
