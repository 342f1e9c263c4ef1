// Package dashboard содержит обработчики защищённых маршрутов и health-check.
// Содержательной логики здесь нет: доступ контролируют middleware аутентификации
// и проверки роли, обработчики лишь возвращают приветственное сообщение.
package dashboard

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/auth-dashboard/internal/http/response"
)

// User возвращает обработчик пользовательской панели.
func User() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.Message("Welcome to user dashboard"))
	}
}

// Admin возвращает обработчик административной панели.
func Admin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.Message("Welcome to admin dashboard"))
	}
}

// Health возвращает обработчик проверки живости сервиса.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.Message("ok"))
	}
}
