// Package middlewarectx содержит HTTP middleware для проверки JWT токенов
// и ролей пользователей.
//
// JWTMiddleware проверяет наличие и валидность JWT токена в заголовке
// Authorization и в случае успеха добавляет в контекст идентификатор
// и роль пользователя для дальнейшего использования в обработчиках.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/auth-dashboard/internal/http/response"
	"github.com/magabrotheeeer/auth-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/auth-dashboard/internal/metrics"
	"github.com/magabrotheeeer/auth-dashboard/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserID — ключ для идентификатора пользователя в контексте.
	UserID Key = "user_id"
	// Role — ключ для роли пользователя в контексте.
	Role Key = "role"
)

// Service описывает интерфейс сервиса для валидации JWT токена.
type Service interface {
	ValidateToken(ctx context.Context, token string) (*models.User, error)
}

// UserIDFromContext возвращает идентификатор пользователя, положенный в контекст middleware.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserID).(int64)
	return id, ok
}

// RoleFromContext возвращает роль пользователя, положенную в контекст middleware.
func RoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(Role).(models.Role)
	return role, ok
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
//
// Если токен валиден, добавляет идентификатор и роль пользователя в контекст
// запроса, иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
// Причина отказа (отсутствие подписи, истечение срока, битый формат)
// клиенту не сообщается.
func JWTMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				metrics.TokenValidationsTotal.WithLabelValues(metrics.ResultError).Inc()
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("no token provided"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			user, err := authService.ValidateToken(r.Context(), tokenStr)
			if err != nil {
				log.Error("invalid token", sl.Err(err))
				metrics.TokenValidationsTotal.WithLabelValues(metrics.ResultError).Inc()
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid token"))
				return
			}

			metrics.TokenValidationsTotal.WithLabelValues(metrics.ResultOK).Inc()
			ctx := context.WithValue(r.Context(), UserID, user.ID)
			ctx = context.WithValue(ctx, Role, user.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
