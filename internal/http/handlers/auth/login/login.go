// Package login реализует HTTP-обработчик для запросов аутентификации пользователей.
//
// В нём определяется структура Request для входных данных, выполняется декодирование JSON,
// проверка и валидация полей, а также делегирование операции входа сервису аутентификации.
// При успешной аутентификации возвращается JSON с JWT; неизвестная почта и неверный
// пароль дают одинаковый ответ 401.
package login

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
)

// Request — структура входных данных для авторизации.
type Request struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Handler обрабатывает HTTP-запросы для авторизации.
type Handler struct {
	log      *slog.Logger
	auth     Service
	validate *validator.Validate
	verbose  bool
}

// New создает новый экземпляр Handler с указанными логгером и сервисом аутентификации.
func New(log *slog.Logger, auth Service, verbose bool) *Handler {
	return &Handler{
		log:      log,
		auth:     auth,
		validate: validator.New(),
		verbose:  verbose,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

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

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Error("login failed", sl.Err(err))
		metrics.LoginsTotal.WithLabelValues(metrics.ResultError).Inc()
		status, resp := response.FromError(err, h.verbose)
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("login success", slog.String("email", req.Email))
	metrics.LoginsTotal.WithLabelValues(metrics.ResultOK).Inc()
	render.JSON(w, r, response.Token(token))
}
