package models

import "time"

// User представляет учетную запись пользователя календаря.
// Тэги `db` используются для маппинга с полями БД с помощью sqlx.
// Тэги `json` используются для (де)сериализации JSON.
type User struct {
	ID           string `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"` // Не отправляем хеш пароля в JSON

	// Токен и срок сброса пароля задаются и очищаются только вместе.
	ResetPasswordToken  *string    `db:"reset_password_token" json:"-"`
	ResetPasswordExpiry *time.Time `db:"reset_password_expiry" json:"-"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// HasPendingReset сообщает, открыто ли у пользователя окно сброса пароля на момент now.
func (u *User) HasPendingReset(now time.Time) bool {
	return u.ResetPasswordToken != nil && u.ResetPasswordExpiry != nil && u.ResetPasswordExpiry.After(now)
}

// AuthResult - результат успешной регистрации или входа.
type AuthResult struct {
	Token    string
	Username string
}

// RegisterRequest представляет тело запроса на регистрацию.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse представляет тело ответа при успешной регистрации.
type RegisterResponse struct {
	Message  string `json:"message"`
	Token    string `json:"token"`
	Username string `json:"username"`
}

// LoginRequest представляет тело запроса на вход.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse представляет тело ответа при успешном входе.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// VerifyTokenRequest представляет тело запроса на проверку токена.
type VerifyTokenRequest struct {
	Token string `json:"token"`
}

// VerifyTokenResponse представляет результат проверки токена.
type VerifyTokenResponse struct {
	IsValid bool `json:"isValid"`
}

// ForgotPasswordRequest представляет тело запроса на восстановление пароля.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest представляет тело запроса на установку нового пароля.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// MessageResponse - общий формат ответа с текстовым сообщением (в том числе об ошибке).
type MessageResponse struct {
	Message string `json:"message"`
}

// CurrentUserResponse - данные пользователя, извлеченные из проверенного токена.
type CurrentUserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}
