package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Yemresalcan/calender2025API/internal/middleware"
	"github.com/Yemresalcan/calender2025API/internal/security"
	"github.com/Yemresalcan/calender2025API/internal/services"
	"github.com/Yemresalcan/calender2025API/models"
)

// Максимальный размер тела запроса.
const maxBodyBytes = 1 << 20

// Тексты ответов API.
const (
	msgInvalidRequest     = "Неверный формат запроса"
	msgRegistered         = "Регистрация прошла успешно"
	msgEmptyRegister      = "Имя пользователя, email и пароль не могут быть пустыми"
	msgEmptyLogin         = "Email и пароль не могут быть пустыми"
	msgPasswordTooLong    = "Пароль слишком длинный"
	msgResetRequested     = "Если такой email зарегистрирован, на него отправлена ссылка для сброса пароля"
	msgResetDone          = "Пароль успешно изменен"
	msgInvalidResetToken  = "Ссылка для сброса пароля недействительна или устарела"
	msgInternal           = "Внутренняя ошибка сервера"
	msgAuthenticationNeed = "Требуется аутентификация"
)

// AuthService определяет интерфейс сервиса аутентификации, нужный обработчикам.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.AuthResult, error)
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	VerifyToken(token string) bool
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// AuthHandler обрабатывает HTTP-запросы, связанные с аутентификацией.
type AuthHandler struct {
	service AuthService
}

// NewAuthHandler создает новый экземпляр AuthHandler.
func NewAuthHandler(s AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Printf("[AuthHandler] Ошибка декодирования запроса регистрации: %v", err)
		writeMessage(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		log.Printf("[AuthHandler] Пустые поля в запросе регистрации")
		writeMessage(w, http.StatusBadRequest, msgEmptyRegister)
		return
	}
	if len(req.Password) > security.MaxPasswordBytes {
		writeMessage(w, http.StatusBadRequest, msgPasswordTooLong)
		return
	}

	log.Printf("[AuthHandler] Попытка регистрации пользователя: %s", req.Username)

	result, err := h.service.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken), errors.Is(err, services.ErrUsernameTaken):
			writeMessage(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, security.ErrPasswordTooLong):
			writeMessage(w, http.StatusBadRequest, msgPasswordTooLong)
		default:
			log.Printf("[AuthHandler] Ошибка регистрации '%s': %v", req.Username, err)
			writeMessage(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	writeJSON(w, http.StatusOK, models.RegisterResponse{
		Message:  msgRegistered,
		Token:    result.Token,
		Username: result.Username,
	})
}

// Login обрабатывает запрос на вход пользователя.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Printf("[AuthHandler] Ошибка декодирования запроса входа: %v", err)
		writeMessage(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		log.Printf("[AuthHandler] Пустой email или пароль при входе")
		writeMessage(w, http.StatusBadRequest, msgEmptyLogin)
		return
	}

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, services.ErrInvalidCredentials.Error())
			return
		}
		log.Printf("[AuthHandler] Ошибка входа: %v", err)
		writeMessage(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{Token: result.Token, Username: result.Username})
}

// Verify сообщает, действителен ли токен. Любой некорректный запрос дает isValid: false.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyTokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusOK, models.VerifyTokenResponse{IsValid: false})
		return
	}

	writeJSON(w, http.StatusOK, models.VerifyTokenResponse{IsValid: h.service.VerifyToken(req.Token)})
}

// ForgotPassword запускает сброс пароля. Ответ одинаков для любого email.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForgotPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Printf("[AuthHandler] Ошибка декодирования запроса сброса пароля: %v", err)
	} else if req.Email != "" {
		if err = h.service.ForgotPassword(r.Context(), req.Email); err != nil {
			log.Printf("[AuthHandler] Ошибка запроса сброса пароля: %v", err)
		}
	}

	writeMessage(w, http.StatusOK, msgResetRequested)
}

// ResetPassword устанавливает новый пароль по токену из письма.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Printf("[AuthHandler] Ошибка декодирования запроса смены пароля: %v", err)
		writeMessage(w, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	if req.Token == "" || req.NewPassword == "" {
		writeMessage(w, http.StatusBadRequest, msgInvalidResetToken)
		return
	}
	if len(req.NewPassword) > security.MaxPasswordBytes {
		writeMessage(w, http.StatusBadRequest, msgPasswordTooLong)
		return
	}

	err := h.service.ResetPassword(r.Context(), req.Token, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidOrExpiredToken):
			writeMessage(w, http.StatusBadRequest, msgInvalidResetToken)
		case errors.Is(err, security.ErrPasswordTooLong):
			writeMessage(w, http.StatusBadRequest, msgPasswordTooLong)
		default:
			log.Printf("[AuthHandler] Ошибка смены пароля: %v", err)
			writeMessage(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	writeMessage(w, http.StatusOK, msgResetDone)
}

// Me возвращает данные пользователя из проверенного токена.
// Должен стоять за middleware.Authenticator.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, msgAuthenticationNeed)
		return
	}

	writeJSON(w, http.StatusOK, models.CurrentUserResponse{
		ID:       claims.Subject,
		Email:    claims.Email,
		Username: claims.Username,
	})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Клиент уже получил статус, сложно что-то изменить
		log.Printf("[AuthHandler] Ошибка кодирования ответа: %v", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.MessageResponse{Message: message})
}
