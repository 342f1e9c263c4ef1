// Package register реализует HTTP-обработчик регистрации пользователей.
//
// Обработчик декодирует JSON, проверяет обязательные поля, преобразует
// числовую роль с провода в доменное перечисление и делегирует операцию
// сервису аутентификации. При успехе возвращает 201 с выпущенным токеном.
package register

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/auth-dashboard/internal/http/response"
	"github.com/magabrotheeeer/auth-dashboard/internal/lib/sl"
	"github.com/magabrotheeeer/auth-dashboard/internal/metrics"
	"github.com/magabrotheeeer/auth-dashboard/internal/models"
)

// Request — входные данные для регистрации.
// Role — указатель, чтобы отличать отсутствующее поле от валидного нуля (роль user).
type Request struct {
	Email    string `json:"email" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     *int   `json:"role" validate:"required"`
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, email, name, password string, role models.Role) (string, error)
}

// Handler обрабатывает HTTP-запросы регистрации.
type Handler struct {
	log      *slog.Logger
	auth     Service
	validate *validator.Validate
	verbose  bool
}

// New создает новый экземпляр Handler.
// verbose включает текст внутренних ошибок в ответах (вне продакшена).
func New(log *slog.Logger, auth Service, verbose bool) *Handler {
	return &Handler{
		log:      log,
		auth:     auth,
		validate: validator.New(),
		verbose:  verbose,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	role, err := models.ParseRole(*req.Role)
	if err != nil {
		log.Error("invalid role", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid role"))
		return
	}

	token, err := h.auth.Register(r.Context(), req.Email, req.Name, req.Password, role)
	if err != nil {
		log.Error("registration failed", sl.Err(err))
		metrics.RegistrationsTotal.WithLabelValues(metrics.ResultError).Inc()
		status, resp := response.FromError(err, h.verbose)
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("user registered", slog.String("email", req.Email), slog.String("role", role.String()))
	metrics.RegistrationsTotal.WithLabelValues(metrics.ResultOK).Inc()
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.Token(token))
}
