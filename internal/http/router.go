package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/stockwise/inventory-api/internal/http/handlers"
)

// Config enumerates the policy knobs of the middleware chain. The routes
// themselves are fixed; what varies per deployment is who may call them
// (AllowedOrigins, Auth) and how hard (RateLimitEnabled).
type Config struct {
	Auth             AuthConfig
	AllowedOrigins   []string
	RateLimitEnabled bool
	UploadDir        string
}

func NewRouter(cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	if cfg.RateLimitEnabled {
		r.Use(RateLimit)
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/Event", handlers.GetEventsHandler)

		api.Group(func(private chi.Router) {
			private.Use(Authenticator(cfg.Auth))

			private.Route("/Category", func(c chi.Router) {
				c.Get("/", handlers.GetCategoriesHandler)
				c.Post("/", handlers.CreateCategoryHandler)
				c.Get("/{id}", handlers.GetCategoryByIDHandler)
				c.Put("/{id}", handlers.UpdateCategoryHandler)
				c.Delete("/{id}", handlers.DeleteCategoryHandler)
			})

			private.Route("/Product", func(p chi.Router) {
				p.Get("/", handlers.ListProductsHandler)
				p.Post("/", handlers.CreateProductHandler)
				p.Get("/{id}", handlers.GetProductByIDHandler)
				p.Put("/{id}", handlers.UpdateProductHandler)
				p.Delete("/{id}", handlers.DeleteProductHandler)
			})
		})
	})

	if cfg.UploadDir != "" {
		uploads := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir)))
		r.Get("/uploads/*", uploads.ServeHTTP)
	}

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
