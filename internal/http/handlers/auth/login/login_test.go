package login

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/auth-dashboard/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	authMock := new(AuthServiceMock)
	logger := newNoopLogger()

	handler := New(logger, authMock, false)

	tests := []struct {
		name           string
		requestBody    any
		setupMock      func()
		wantStatusCode int
		wantToken      string
		wantError      string
	}{
		{
			name:        "valid login",
			requestBody: Request{Email: "a@x.com", Password: "p1"},
			setupMock: func() {
				authMock.On("Login", mock.Anything, "a@x.com", "p1").
					Return("issued-token", nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantToken:      "issued-token",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name:           "missing password",
			requestBody:    Request{Email: "a@x.com"},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "field Password is a required field",
		},
		{
			name:        "invalid credentials",
			requestBody: Request{Email: "a@x.com", Password: "wrong"},
			setupMock: func() {
				authMock.On("Login", mock.Anything, "a@x.com", "wrong").
					Return("", fmt.Errorf("services.auth.Login: %w", auth.ErrInvalidCredentials)).Once()
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock.ExpectedCalls = nil
			authMock.Calls = nil
			if tt.setupMock != nil {
				tt.setupMock()
			}

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				var err error
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.wantToken != "" {
				assert.Equal(t, tt.wantToken, got["token"])
				assert.Nil(t, got["error"])
			}
			if tt.wantError != "" {
				errStr, ok := got["error"].(string)
				assert.True(t, ok)
				assert.Contains(t, errStr, tt.wantError)
			}

			authMock.AssertExpectations(t)
		})
	}
}
