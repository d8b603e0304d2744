package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/prasanth-t0205/techblog/internal/infrastructure/http/handlers"
	"github.com/prasanth-t0205/techblog/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	AuthHandler          *handlers.AuthHandler
	UsersHandler         *handlers.UsersHandler
	PostsHandler         *handlers.PostsHandler
	NotificationsHandler *handlers.NotificationsHandler
	HealthHandler        *handlers.HealthHandler
	RequireAuth          func(http.Handler) http.Handler
	Secure               func(http.Handler) http.Handler
	CORS                 func(http.Handler) http.Handler
	Log                  zerolog.Logger
	Metrics              bool // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(chimid.Recoverer)
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	} else {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", cfg.AuthHandler.Signup)
		r.Post("/login", cfg.AuthHandler.Login)
		r.Post("/logout", cfg.AuthHandler.Logout)
		r.Group(func(r chi.Router) {
			r.Use(cfg.RequireAuth)
			r.Get("/me", cfg.AuthHandler.Me)
		})
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Use(cfg.RequireAuth)
		r.Get("/profile/{username}", cfg.UsersHandler.Profile)
		r.Post("/follow/{id}", cfg.UsersHandler.Follow)
		r.Post("/update", cfg.UsersHandler.Update)
	})

	r.Route("/api/posts", func(r chi.Router) {
		r.Get("/", cfg.PostsHandler.List)
		r.Get("/random", cfg.PostsHandler.Random)
		r.Get("/search/{query}", cfg.PostsHandler.Search)
		r.Get("/{id}", cfg.PostsHandler.Get)
		r.Group(func(r chi.Router) {
			r.Use(cfg.RequireAuth)
			r.Get("/user/{username}", cfg.PostsHandler.UserPosts)
			r.Post("/create", cfg.PostsHandler.Create)
			r.Put("/edit/{id}", cfg.PostsHandler.Edit)
			r.Delete("/{id}", cfg.PostsHandler.Delete)
		})
	})

	r.Route("/api/notifications", func(r chi.Router) {
		r.Use(cfg.RequireAuth)
		r.Get("/", cfg.NotificationsHandler.List)
		r.Delete("/", cfg.NotificationsHandler.Clear)
	})

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
