// Package models содержит доменную модель пользователя сервиса,
// включающую данные учётной записи, хэш пароля и роль.
// Структуры используются в бизнес-логике и при работе с хранилищем.
package models

import "fmt"

// Role — закрытое перечисление ролей пользователя.
// На проводе роль передаётся числом (0 — user, 1 — admin),
// преобразование выполняется только на границе сериализации.
type Role int

const (
	// RoleUser — обычный пользователь.
	RoleUser Role = iota
	// RoleAdmin — администратор.
	RoleAdmin
)

// ParseRole преобразует числовое значение с провода в Role.
// Возвращает ошибку для любого значения вне перечисления.
func ParseRole(v int) (Role, error) {
	switch v {
	case 0:
		return RoleUser, nil
	case 1:
		return RoleAdmin, nil
	default:
		return 0, fmt.Errorf("unknown role: %d", v)
	}
}

// RoleFromString восстанавливает Role из строкового представления,
// хранящегося в claims токена.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "user":
		return RoleUser, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return 0, fmt.Errorf("unknown role: %q", s)
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	default:
		return "user"
	}
}

// Int возвращает числовое представление роли для провода.
func (r Role) Int() int {
	return int(r)
}

// User представляет зарегистрированного пользователя сервиса.
type User struct {
	ID           int64  // Уникальный идентификатор, назначается монотонно
	Email        string // Электронная почта (уникальная)
	Name         string // Отображаемое имя
	PasswordHash string // Хэш пароля, исходный пароль не хранится
	Role         Role   // Роль пользователя
}
