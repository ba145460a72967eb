package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/DiegoRoNa/uptask-api/internal/infrastructure/http/handlers"
	"github.com/DiegoRoNa/uptask-api/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	AuthHandler    *handlers.AuthHandler
	ProjectHandler *handlers.ProjectHandler
	TaskHandler    *handlers.TaskHandler
	TeamHandler    *handlers.TeamHandler
	NoteHandler    *handlers.NoteHandler
	HealthHandler  *handlers.HealthHandler
	Session        *middleware.SessionValidator
	Projects       *middleware.ProjectResolver
	Tasks          *middleware.TaskResolver
	Log            zerolog.Logger
	CORS           func(http.Handler) http.Handler
	Secure         func(http.Handler) http.Handler
	IPRateLimit    func(http.Handler) http.Handler
	Metrics        bool // expose /metrics
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
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	r.Use(chimid.AllowContentType("application/json"))
	if cfg.IPRateLimit != nil {
		r.Use(cfg.IPRateLimit)
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

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", cfg.AuthHandler.CreateAccount)
			r.Post("/confirm-account", cfg.AuthHandler.ConfirmAccount)
			r.Post("/login", cfg.AuthHandler.Login)
			r.Post("/request-code", cfg.AuthHandler.RequestConfirmationCode)
			r.Post("/forgot-password", cfg.AuthHandler.ForgotPassword)
			r.Post("/validate-token", cfg.AuthHandler.ValidateToken)
			r.Post("/update-password/{token}", cfg.AuthHandler.UpdatePasswordWithToken)
			// Routes that require a logged-in user
			r.Group(func(r chi.Router) {
				r.Use(cfg.Session.Handler)
				r.Get("/user", cfg.AuthHandler.CurrentUser)
				r.Put("/profile", cfg.AuthHandler.UpdateProfile)
				r.Post("/update-password", cfg.AuthHandler.UpdateCurrentUserPassword)
				r.Post("/check-password", cfg.AuthHandler.CheckPassword)
			})
		})

		r.Route("/projects", func(r chi.Router) {
			r.Use(cfg.Session.Handler)
			r.Get("/", cfg.ProjectHandler.List)
			r.Post("/", cfg.ProjectHandler.Create)

			r.Route("/{projectId}", func(r chi.Router) {
				r.Use(cfg.Projects.Handler)
				r.Use(middleware.RequireMembership)
				r.Get("/", cfg.ProjectHandler.Get)
				r.With(middleware.RequireManager).Put("/", cfg.ProjectHandler.Update)
				r.With(middleware.RequireManager).Delete("/", cfg.ProjectHandler.Delete)

				r.Route("/tasks", func(r chi.Router) {
					r.Get("/", cfg.TaskHandler.List)
					r.Post("/", cfg.TaskHandler.Create)

					r.Route("/{taskId}", func(r chi.Router) {
						r.Use(cfg.Tasks.Handler)
						r.Get("/", cfg.TaskHandler.Get)
						r.With(middleware.RequireManager).Put("/", cfg.TaskHandler.Update)
						r.With(middleware.RequireManager).Delete("/", cfg.TaskHandler.Delete)
						r.Post("/status", cfg.TaskHandler.UpdateStatus)

						r.Route("/notes", func(r chi.Router) {
							r.Post("/", cfg.NoteHandler.Create)
							r.Get("/", cfg.NoteHandler.List)
							r.Delete("/{noteId}", cfg.NoteHandler.Delete)
						})
					})
				})

				r.Route("/team", func(r chi.Router) {
					r.Post("/find", cfg.TeamHandler.FindMember)
					r.Get("/", cfg.TeamHandler.List)
					r.With(middleware.RequireManager).Post("/", cfg.TeamHandler.AddMember)
					r.With(middleware.RequireManager).Delete("/{userId}", cfg.TeamHandler.RemoveMember)
				})
			})
		})
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
