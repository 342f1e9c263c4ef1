// Package auth содержит логику бизнес-уровня для регистрации, входа
// и проверки токенов пользователей.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/auth-dashboard/internal/lib/jwt"
	"github.com/magabrotheeeer/auth-dashboard/internal/lib/password"
	"github.com/magabrotheeeer/auth-dashboard/internal/models"
	"github.com/magabrotheeeer/auth-dashboard/internal/storage"
)

// ErrInvalidCredentials возвращается и для неизвестной почты, и для
// неверного пароля: вызывающая сторона не должна отличать одно от другого.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken возвращается для любого невалидного токена.
var ErrInvalidToken = jwt.ErrInvalidToken

// Service отвечает за регистрацию, авторизацию и валидацию JWT.
type Service struct {
	users    storage.UserRepository
	jwtMaker jwt.Maker
}

// NewService создает новый экземпляр Service.
func NewService(users storage.UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя и возвращает токен для него.
//
// Хранилище мутируется ровно один раз и только при успехе: вставка —
// последний изменяющий шаг перед выпуском токена, откат не требуется.
// Занятая почта приводит к storage.ErrUserExists.
func (s *Service) Register(ctx context.Context, email, name, rawPassword string, role models.Role) (string, error) {
	const op = "services.auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashed,
		Role:         role,
	}
	id, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	token, err := s.jwtMaker.GenerateToken(id, role)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Login проверяет пароль пользователя и генерирует JWT.
// Состояние хранилища при этом не изменяется.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (string, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	token, err := s.jwtMaker.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// ValidateToken проверяет JWT и возвращает идентификатор и роль пользователя.
// Проверка чистая и не обращается к хранилищу.
func (s *Service) ValidateToken(_ context.Context, token string) (*models.User, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	role, err := models.RoleFromString(claims.Role)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &models.User{
		ID:   claims.UserID,
		Role: role,
	}, nil
}
