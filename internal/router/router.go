package router

import (
	"log/slog"
	"net/http"

	_ "pet-health-tracker/docs"
	"pet-health-tracker/internal/adapters/storage"
	"pet-health-tracker/internal/domain/accounts"
	"pet-health-tracker/internal/domain/health"
	"pet-health-tracker/internal/domain/pets"
	"pet-health-tracker/internal/middleware"
	"pet-health-tracker/internal/platform/respond"
	"pet-health-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger *slog.Logger

	// Si es nil se usa storage en memoria.
	Repos *storage.Repositories

	Verifier auth.AuthVerifier
	Issuer   auth.TokenIssuer
	Hasher   auth.PasswordHasher

	// DevAuth acepta X-Debug-User-ID como identidad (solo dev).
	DevAuth bool

	CORSOrigins  []string
	CookieSecure bool
}

type healthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewRouter(opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Repos == nil {
		opts.Repos = storage.Memory()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(opts.Logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.DebugUserHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(middleware.AuthContext(opts.Verifier, opts.DevAuth))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	accountsSvc := accounts.NewService(opts.Repos.Accounts, opts.Hasher, opts.Issuer)
	petsSvc := pets.NewService(opts.Repos.Pets)
	healthSvc := health.NewService(opts.Repos.Health)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health-check", func(w http.ResponseWriter, _ *http.Request) {
			respond.JSON(w, http.StatusOK, healthCheck{Status: "OK", Message: "Furever Health API is running"})
		})

		accounts.RegisterRoutes(api, accountsSvc, accounts.CookieOptions{Secure: opts.CookieSecure})

		api.Group(func(pr chi.Router) {
			pr.Use(middleware.RequireAuth)
			pets.RegisterRoutes(pr, petsSvc)
			health.RegisterRoutes(pr, healthSvc)
		})
	})

	return r
}
