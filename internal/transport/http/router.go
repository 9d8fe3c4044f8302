package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/portal360/admin-api/internal/application/content"
	"github.com/portal360/admin-api/internal/application/event"
	"github.com/portal360/admin-api/internal/application/feature"
	"github.com/portal360/admin-api/internal/application/session"
	"github.com/portal360/admin-api/internal/application/trigger"
	"github.com/portal360/admin-api/internal/application/user"
	"github.com/portal360/admin-api/internal/config"
	"github.com/portal360/admin-api/internal/domain"
	"github.com/portal360/admin-api/internal/infrastructure/google"
	jwtinfra "github.com/portal360/admin-api/internal/infrastructure/jwt"
	"github.com/portal360/admin-api/internal/infrastructure/smtp"
	"github.com/portal360/admin-api/internal/infrastructure/sns"
	"github.com/portal360/admin-api/internal/transport/http/handler"
	appmiddleware "github.com/portal360/admin-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo        UserRepository
	SessionRepo     SessionRepository
	TriggerRepo     TriggerRepository
	EventRepo       EventRepository
	FeatureRepo     FeatureRepository
	ContentRepo     ContentRepository
	ObjectStore     ObjectStore
	Mailer          smtp.Mailer
	Announcer       sns.Announcer
	JWTProvider     *jwtinfra.Provider
	GoogleVerifier  *google.Verifier // nil disables Google SSO
	RefreshTokenDur time.Duration
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(appmiddleware.DeviceID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Device-Id"},
		ExposedHeaders:   []string{"X-Device-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10, applied to the login endpoint.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	sessionDeps := session.ServiceDeps{
		SessionRepo:     deps.SessionRepo,
		UserRepo:        deps.UserRepo,
		JWTProvider:     deps.JWTProvider,
		RefreshTokenDur: deps.RefreshTokenDur,
	}
	if deps.GoogleVerifier != nil {
		sessionDeps.GoogleVerifier = deps.GoogleVerifier
	}
	sessionSvc := session.NewService(sessionDeps)
	triggerSvc := trigger.NewService(deps.TriggerRepo, deps.EventRepo, deps.Mailer, deps.Announcer)
	eventSvc := event.NewService(deps.EventRepo)
	featureSvc := feature.NewService(deps.FeatureRepo, deps.Announcer)
	userSvc := user.NewService(deps.UserRepo, deps.SessionRepo)
	contentSvc := content.NewService(deps.ObjectStore, deps.ContentRepo)

	healthH := handler.NewHealthHandler()
	sessionH := handler.NewSessionHandler(sessionSvc)
	triggerH := handler.NewTriggerHandler(triggerSvc)
	eventH := handler.NewEventHandler(eventSvc)
	featureH := handler.NewFeatureHandler(featureSvc)
	userH := handler.NewUserHandler(userSvc)
	contentH := handler.NewContentHandler(contentSvc)

	adminOnly := appmiddleware.RequireRole(domain.RoleAdmin)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/sessions/login", sessionH.Login)
		r.Post("/sessions/refresh", sessionH.Refresh)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/sessions", sessionH.GetCurrent)
			r.Post("/sessions/logout", sessionH.Logout)

			// Admin and viewer can read everything
			r.Get("/email-triggers/get-all", triggerH.GetAll)
			r.Get("/email-triggers/timing-options", triggerH.TimingOptions)
			r.Get("/email-triggers/{id}", triggerH.Get)
			r.Get("/events", eventH.List)
			r.Get("/events/{id}", eventH.Get)
			r.Get("/features", featureH.List)
			r.Get("/content/{id}", contentH.Get)

			// Mutations are admin-only
			r.Group(func(r chi.Router) {
				r.Use(adminOnly)

				r.Post("/email-triggers/create", triggerH.Create)
				r.Put("/email-triggers/{id}/update", triggerH.Update)
				r.Delete("/email-triggers/{id}/delete", triggerH.Delete)
				r.Put("/email-triggers/{id}/toggle", triggerH.Toggle)
				r.Post("/email-triggers/{id}/test", triggerH.SendTest)

				r.Post("/events", eventH.Create)
				r.Put("/events/{id}", eventH.Update)
				r.Delete("/events/{id}", eventH.Delete)

				r.Post("/features", featureH.Create)
				r.Put("/features/{id}/toggle", featureH.Toggle)

				r.Get("/users", userH.List)
				r.Post("/users", userH.Create)
				r.Get("/users/{id}", userH.Get)
				r.Put("/users/{id}", userH.Update)
				r.Put("/users/{id}/toggle", userH.Toggle)
				r.Delete("/users/{id}", userH.Delete)

				r.Post("/content", contentH.Upload)
				r.Delete("/content/{id}", contentH.Delete)
			})
		})
	})

	return r
}
