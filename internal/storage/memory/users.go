// Package memory реализует хранилище пользователей в памяти процесса.
//
// Хранилище не переживает перезапуск и используется как бэкенд по умолчанию.
// Все мутации сериализуются одним мьютексом, поэтому проверка уникальности
// почты и вставка выполняются как единое целое, а идентификаторы назначаются
// монотонно и не переиспользуются даже после удаления записи.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/magabrotheeeer/auth-dashboard/internal/models"
	"github.com/magabrotheeeer/auth-dashboard/internal/storage"
)

// Store хранит пользователей, индексированных по почте.
type Store struct {
	mu      sync.RWMutex
	byEmail map[string]models.User
	nextID  int64
}

// New создает пустое хранилище.
func New() *Store {
	return &Store{
		byEmail: make(map[string]models.User),
		nextID:  1,
	}
}

// RegisterUser сохраняет нового пользователя и возвращает его ID.
func (s *Store) RegisterUser(ctx context.Context, user models.User) (int64, error) {
	const op = "storage.memory.RegisterUser"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[user.Email]; ok {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrUserExists)
	}

	user.ID = s.nextID
	s.nextID++
	s.byEmail[user.Email] = user
	return user.ID, nil
}

// GetUserByEmail возвращает пользователя по почте.
// Сравнение почты точное, с учётом регистра.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.memory.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}
	return &u, nil
}
