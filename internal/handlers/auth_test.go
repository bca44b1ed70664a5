package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Yemresalcan/calender2025API/internal/handlers"
	"github.com/Yemresalcan/calender2025API/internal/middleware"
	"github.com/Yemresalcan/calender2025API/internal/security"
	"github.com/Yemresalcan/calender2025API/internal/services"
	"github.com/Yemresalcan/calender2025API/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock AuthService --- //

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, email, password string) (*models.AuthResult, error) {
	args := m.Called(ctx, username, email, password)
	result, _ := args.Get(0).(*models.AuthResult)
	return result, args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	args := m.Called(ctx, email, password)
	result, _ := args.Get(0).(*models.AuthResult)
	return result, args.Error(1)
}

func (m *MockAuthService) VerifyToken(token string) bool {
	return m.Called(token).Bool(0)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return m.Called(ctx, token, newPassword).Error(0)
}

// --- Tests --- //

func TestNewAuthHandler(t *testing.T) {
	h := handlers.NewAuthHandler(new(MockAuthService))
	assert.NotNil(t, h)
}

// Вспомогательная функция для создания роутера с обработчиком.
func setupAuthRouter(h *handlers.AuthHandler, parser middleware.TokenParser) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/auth/register", h.Register)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/verify", h.Verify)
	r.Post("/auth/forgot-password", h.ForgotPassword)
	r.Post("/auth/reset-password", h.ResetPassword)
	if parser != nil {
		r.With(middleware.Authenticator(parser)).Get("/auth/me", h.Me)
	} else {
		r.Get("/auth/me", h.Me)
	}
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded), "ответ должен быть JSON: %s", rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	return rr, decoded
}

func TestAuthHandler_Register(t *testing.T) {
	longPassword := strings.Repeat("x", security.MaxPasswordBytes+1)

	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *MockAuthService)
		expectedStatus int
		expectedBody   map[string]interface{}
	}{
		{
			name: "Успешная регистрация",
			body: `{"username": "testuser", "email": "test@example.com", "password": "password123"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "testuser", "test@example.com", "password123").
					Return(&models.AuthResult{Token: "jwt", Username: "testuser"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody: map[string]interface{}{
				"message": "Регистрация прошла успешно", "token": "jwt", "username": "testuser",
			},
		},
		{
			name:           "Невалидный JSON",
			body:           `{"username": "testuser", "password": "password123"`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"message": "Неверный формат запроса"},
		},
		{
			name:           "Пустой email",
			body:           `{"username": "testuser", "email": "", "password": "password123"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"message": "Имя пользователя, email и пароль не могут быть пустыми"},
		},
		{
			name:           "Пустой password",
			body:           `{"username": "testuser", "email": "test@example.com", "password": ""}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"message": "Имя пользователя, email и пароль не могут быть пустыми"},
		},
		{
			name:           "Слишком длинный пароль",
			body:           `{"username": "testuser", "email": "test@example.com", "password": "` + longPassword + `"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"message": "Пароль слишком длинный"},
		},
		{
			name: "Email занят",
			body: `{"username": "testuser", "email": "taken@example.com", "password": "password123"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "testuser", "taken@example.com", "password123").
					Return(nil, services.ErrEmailTaken).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"message": services.ErrEmailTaken.Error()},
		},
		{
			name: "Имя пользователя занято",
			body: `{"username": "existinguser", "email": "test@example.com", "password": "password123"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "existinguser", "test@example.com", "password123").
					Return(nil, services.ErrUsernameTaken).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"message": services.ErrUsernameTaken.Error()},
		},
		{
			name: "Внутренняя ошибка сервера",
			body: `{"username": "erroruser", "email": "test@example.com", "password": "password123"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("Register", mock.Anything, "erroruser", "test@example.com", "password123").
					Return(nil, errors.New("some internal error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"message": "Внутренняя ошибка сервера"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			if tt.mockSetup != nil {
				tt.mockSetup(mockService)
			}
			r := setupAuthRouter(handlers.NewAuthHandler(mockService), nil)

			rr, body := doJSON(t, r, http.MethodPost, "/auth/register", tt.body)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedBody, body)
			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *MockAuthService)
		expectedStatus int
		expectedBody   map[string]interface{}
	}{
		{
			name: "Успешный вход",
			body: `{"email": "test@example.com", "password": "password123"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "test@example.com", "password123").
					Return(&models.AuthResult{Token: "jwt", Username: "testuser"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"token": "jwt", "username": "testuser"},
		},
		{
			name:           "Невалидный JSON",
			body:           `not json`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"message": "Неверный формат запроса"},
		},
		{
			name:           "Пустой пароль",
			body:           `{"email": "test@example.com"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"message": "Email и пароль не могут быть пустыми"},
		},
		{
			name: "Неверные учетные данные",
			body: `{"email": "test@example.com", "password": "wrong"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "test@example.com", "wrong").
					Return(nil, services.ErrInvalidCredentials).Once()
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   map[string]interface{}{"message": services.ErrInvalidCredentials.Error()},
		},
		{
			name: "Внутренняя ошибка сервера",
			body: `{"email": "test@example.com", "password": "password123"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("Login", mock.Anything, "test@example.com", "password123").
					Return(nil, services.ErrInternal).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"message": "Внутренняя ошибка сервера"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			if tt.mockSetup != nil {
				tt.mockSetup(mockService)
			}
			r := setupAuthRouter(handlers.NewAuthHandler(mockService), nil)

			rr, body := doJSON(t, r, http.MethodPost, "/auth/login", tt.body)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedBody, body)
			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Verify(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		mockSetup func(m *MockAuthService)
		expected  bool
	}{
		{
			name: "Валидный токен",
			body: `{"token": "good"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("VerifyToken", "good").Return(true).Once()
			},
			expected: true,
		},
		{
			name: "Невалидный токен",
			body: `{"token": "bad"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("VerifyToken", "bad").Return(false).Once()
			},
			expected: false,
		},
		{name: "Сломанное тело запроса", body: `{"token":`, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			if tt.mockSetup != nil {
				tt.mockSetup(mockService)
			}
			r := setupAuthRouter(handlers.NewAuthHandler(mockService), nil)

			rr, body := doJSON(t, r, http.MethodPost, "/auth/verify", tt.body)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, map[string]interface{}{"isValid": tt.expected}, body)
			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		mockSetup func(m *MockAuthService)
	}{
		{
			name: "Существующий email",
			body: `{"email": "known@example.com"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("ForgotPassword", mock.Anything, "known@example.com").Return(nil).Once()
			},
		},
		{
			name: "Ошибка сервиса",
			body: `{"email": "known@example.com"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("ForgotPassword", mock.Anything, "known@example.com").Return(errors.New("boom")).Once()
			},
		},
		{name: "Пустой email", body: `{"email": ""}`},
		{name: "Сломанное тело запроса", body: `{"email":`},
	}

	var messages []interface{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			if tt.mockSetup != nil {
				tt.mockSetup(mockService)
			}
			r := setupAuthRouter(handlers.NewAuthHandler(mockService), nil)

			rr, body := doJSON(t, r, http.MethodPost, "/auth/forgot-password", tt.body)

			assert.Equal(t, http.StatusOK, rr.Code)
			messages = append(messages, body["message"])
			mockService.AssertExpectations(t)
		})
	}

	// Ответ не раскрывает, зарегистрирован ли email
	for _, msg := range messages {
		assert.Equal(t, messages[0], msg)
	}
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	invalidToken := map[string]interface{}{"message": "Ссылка для сброса пароля недействительна или устарела"}

	tests := []struct {
		name           string
		body           string
		mockSetup      func(m *MockAuthService)
		expectedStatus int
		expectedBody   map[string]interface{}
	}{
		{
			name: "Успешный сброс",
			body: `{"token": "tok", "newPassword": "new-password"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("ResetPassword", mock.Anything, "tok", "new-password").Return(nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"message": "Пароль успешно изменен"},
		},
		{
			name: "Недействительный токен",
			body: `{"token": "tok", "newPassword": "new-password"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("ResetPassword", mock.Anything, "tok", "new-password").
					Return(services.ErrInvalidOrExpiredToken).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   invalidToken,
		},
		{
			name:           "Пустой токен",
			body:           `{"token": "", "newPassword": "new-password"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   invalidToken,
		},
		{
			name:           "Слишком длинный пароль",
			body:           `{"token": "tok", "newPassword": "` + strings.Repeat("x", security.MaxPasswordBytes+1) + `"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"message": "Пароль слишком длинный"},
		},
		{
			name:           "Невалидный JSON",
			body:           `[]`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"message": "Неверный формат запроса"},
		},
		{
			name: "Внутренняя ошибка сервера",
			body: `{"token": "tok", "newPassword": "new-password"}`,
			mockSetup: func(m *MockAuthService) {
				m.On("ResetPassword", mock.Anything, "tok", "new-password").Return(services.ErrInternal).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"message": "Внутренняя ошибка сервера"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockAuthService)
			if tt.mockSetup != nil {
				tt.mockSetup(mockService)
			}
			r := setupAuthRouter(handlers.NewAuthHandler(mockService), nil)

			rr, body := doJSON(t, r, http.MethodPost, "/auth/reset-password", tt.body)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedBody, body)
			mockService.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	issuer, err := security.NewTokenIssuer("test-secret")
	require.NoError(t, err)
	token, err := issuer.Issue(&models.User{ID: "user-1", Username: "testuser", Email: "test@example.com"})
	require.NoError(t, err)

	r := setupAuthRouter(handlers.NewAuthHandler(new(MockAuthService)), issuer)

	t.Run("С валидным токеном", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var body models.CurrentUserResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, models.CurrentUserResponse{ID: "user-1", Email: "test@example.com", Username: "testuser"}, body)
	})

	t.Run("Без токена", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Без middleware", func(t *testing.T) {
		bare := setupAuthRouter(handlers.NewAuthHandler(new(MockAuthService)), nil)
		rr, body := doJSON(t, bare, http.MethodGet, "/auth/me", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Требуется аутентификация", body["message"])
	})
}
