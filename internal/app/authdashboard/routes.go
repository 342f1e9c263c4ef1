package authdashboard

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/auth-dashboard/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/auth-dashboard/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/auth-dashboard/internal/http/handlers/dashboard"
	"github.com/magabrotheeeer/auth-dashboard/internal/http/middlewarectx"
	"github.com/magabrotheeeer/auth-dashboard/internal/models"
	authservice "github.com/magabrotheeeer/auth-dashboard/internal/services/auth"
)

// RegisterRoutes регистрирует все маршруты приложения.
// verbose включает текст внутренних ошибок в ответах (вне продакшена).
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.Service, verbose bool) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/health", dashboard.Health())
		r.Post("/register", register.New(logger, authService, verbose).ServeHTTP)
		r.Post("/login", login.New(logger, authService, verbose).ServeHTTP)

		// Группа с JWT аутентификацией; роль проверяется отдельным middleware
		// на каждом маршруте — точное совпадение, без иерархии.
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.With(middlewarectx.RequireRole(logger, models.RoleUser)).
				Get("/user-dashboard", dashboard.User())
			r.With(middlewarectx.RequireRole(logger, models.RoleAdmin)).
				Get("/admin-dashboard", dashboard.Admin())
		})
	})

	r.Handle("/metrics", promhttp.Handler())
}
