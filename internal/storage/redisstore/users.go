// Package redisstore реализует хранилище пользователей на основе Redis.
//
// Записи хранятся в JSON по ключу почты, идентификаторы выдаются счётчиком
// INCR (монотонно, без переиспользования), а уникальность почты обеспечивает
// SETNX: из двух конкурентных регистраций запись создаст ровно одна.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/auth-dashboard/internal/config"
	"github.com/magabrotheeeer/auth-dashboard/internal/models"
	"github.com/magabrotheeeer/auth-dashboard/internal/storage"
)

const (
	nextIDKey      = "user:next_id"
	emailKeyPrefix = "user:email:"
)

// Store хранит пользователей в Redis.
type Store struct {
	db *redis.Client
}

type userRecord struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash"`
	Role         int    `json:"role"`
}

// New подключается к Redis и возвращает хранилище.
func New(ctx context.Context, cfg config.RedisConnection) (*Store, error) {
	const op = "storage.redisstore.New"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		Username:     cfg.User,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{db: db}, nil
}

// RegisterUser сохраняет нового пользователя и возвращает его ID.
//
// Идентификатор выделяется до SETNX, поэтому неудачная попытка регистрации
// оставляет «дыру» в нумерации — идентификаторы монотонны, но не плотны.
func (s *Store) RegisterUser(ctx context.Context, user models.User) (int64, error) {
	const op = "storage.redisstore.RegisterUser"

	id, err := s.db.Incr(ctx, nextIDKey).Result()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	rec := userRecord{
		ID:           id,
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Role:         user.Role.Int(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	ok, err := s.db.SetNX(ctx, emailKeyPrefix+user.Email, data, 0).Result()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		return 0, fmt.Errorf("%s: %w", op, storage.ErrUserExists)
	}
	return id, nil
}

// GetUserByEmail возвращает пользователя по его почте.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.redisstore.GetUserByEmail"

	val, err := s.db.Get(ctx, emailKeyPrefix+email).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var rec userRecord
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	role, err := models.ParseRole(rec.Role)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.User{
		ID:           rec.ID,
		Email:        rec.Email,
		Name:         rec.Name,
		PasswordHash: rec.PasswordHash,
		Role:         role,
	}, nil
}

// Close закрывает подключение к Redis.
func (s *Store) Close() error {
	return s.db.Close()
}
