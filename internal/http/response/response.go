// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON-ответов HTTP-обработчиков. Все ошибки возвращаются
// в одном конверте {"error": "<message>"}, успешные ответы — плоскими
// объектами с токеном или сообщением.
package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/auth-dashboard/internal/services/auth"
	"github.com/magabrotheeeer/auth-dashboard/internal/storage"
)

// ErrorResponse описывает конверт ошибки, единый для всех отказов сервера.
type ErrorResponse struct {
	Error string `json:"error"`
	// Detail заполняется только вне продакшена для внутренних ошибок.
	Detail string `json:"detail,omitempty"`
}

// TokenResponse — успешный ответ register и login.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse — успешный ответ защищённых маршрутов.
type MessageResponse struct {
	Message string `json:"message"`
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// Token возвращает TokenResponse с выпущенным токеном.
func Token(token string) TokenResponse {
	return TokenResponse{Token: token}
}

// Message возвращает MessageResponse с переданным текстом.
func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}

// FromError отображает ошибку бизнес-уровня в HTTP-статус и конверт ошибки.
// Это единственная точка, где вид ошибки превращается в код ответа:
// обработчики не разбирают ошибки сами.
//
// Сообщения намеренно не уточняют причину: неизвестная почта и неверный
// пароль, как и истёкший и подделанный токен, неотличимы для клиента.
// Для прочих ошибок текст включается в Detail только при verbose.
func FromError(err error, verbose bool) (int, ErrorResponse) {
	switch {
	case errors.Is(err, storage.ErrUserExists):
		return http.StatusBadRequest, Error("user already exists")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, Error("invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, Error("invalid token")
	default:
		resp := Error("internal error")
		if verbose {
			resp.Detail = err.Error()
		}
		return http.StatusInternalServerError, resp
	}
}

// ValidationError формирует конверт ошибки на основе ошибок валидации.
// Каждое нарушение превращается в человеко-читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Error(strings.Join(errsMsgs, ", "))
}
