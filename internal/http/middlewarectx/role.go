package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/auth-dashboard/internal/http/response"
	"github.com/magabrotheeeer/auth-dashboard/internal/models"
)

// RequireRole возвращает middleware, пропускающий запрос только при точном
// совпадении роли из контекста с требуемой. Иерархии ролей нет: токен
// администратора не проходит на маршрут для обычного пользователя.
//
// Ставится после JWTMiddleware — роль берётся из контекста запроса.
func RequireRole(log *slog.Logger, required models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireRole"

			role, ok := RoleFromContext(r.Context())
			if !ok {
				log.Error("user identification missing", slog.String("op", op))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("no token provided"))
				return
			}

			if role != required {
				log.Error("role mismatch",
					slog.String("op", op),
					slog.String("have", role.String()),
					slog.String("want", required.String()),
				)
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("access denied"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
