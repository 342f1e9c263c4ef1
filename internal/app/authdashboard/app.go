// Package authdashboard собирает HTTP-приложение сервиса аутентификации:
// выбирает бэкенд хранилища пользователей, создаёт сервис и запускает сервер.
package authdashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/auth-dashboard/internal/config"
	"github.com/magabrotheeeer/auth-dashboard/internal/lib/jwt"
	"github.com/magabrotheeeer/auth-dashboard/internal/migrations"
	authservice "github.com/magabrotheeeer/auth-dashboard/internal/services/auth"
	"github.com/magabrotheeeer/auth-dashboard/internal/storage"
	"github.com/magabrotheeeer/auth-dashboard/internal/storage/memory"
	"github.com/magabrotheeeer/auth-dashboard/internal/storage/postgres"
	"github.com/magabrotheeeer/auth-dashboard/internal/storage/redisstore"
)

// App инкапсулирует HTTP-сервер и ресурсы, требующие закрытия при остановке.
type App struct {
	server     *http.Server
	logger     *slog.Logger
	closeStore func() error
}

// New создает приложение: хранилище по cfg.Storage.Type, JWT-мейкер,
// сервис аутентификации и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.authdashboard.New"

	users, closeStore, err := newUserRepository(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.NewService(users, jwtMaker)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, cfg.Env != "prod")

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:     srv,
		logger:     logger,
		closeStore: closeStore,
	}, nil
}

// newUserRepository выбирает бэкенд хранилища пользователей.
// По умолчанию используется хранилище в памяти процесса.
func newUserRepository(ctx context.Context, cfg *config.Config) (storage.UserRepository, func() error, error) {
	switch cfg.Type {
	case "", "memory":
		return memory.New(), func() error { return nil }, nil
	case "postgres":
		db, err := postgres.New(cfg.StorageConnectionString)
		if err != nil {
			return nil, nil, err
		}
		if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	case "redis":
		rs, err := redisstore.New(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, nil, err
		}
		return rs, rs.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage type: %q", cfg.Type)
	}
}

// Run запускает сервер и блокируется до ошибки или отмены контекста.
// При отмене выполняет graceful shutdown и закрывает хранилище.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.closeStore(); closeErr != nil && err == nil {
			err = closeErr
		}
		return err
	}
}
