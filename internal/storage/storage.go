// Package storage определяет контракт хранилища пользователей и общие
// ошибки для всех его реализаций (in-memory, postgres, redis).
package storage

import (
	"context"
	"errors"

	"github.com/magabrotheeeer/auth-dashboard/internal/models"
)

var (
	// ErrUserExists возвращается при попытке регистрации с занятой почтой.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound возвращается, если пользователь не найден по почте.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository описывает контракт для работы с пользователями в хранилище.
//
// Реализация обязана выполнять проверку уникальности почты и вставку
// атомарно: конкурентные регистрации с одинаковой почтой не должны
// проходить обе.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его ID.
	// ID назначаются монотонно и не переиспользуются.
	RegisterUser(ctx context.Context, user models.User) (int64, error)

	// GetUserByEmail возвращает пользователя по почте или ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
