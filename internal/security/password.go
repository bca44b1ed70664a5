// Package security содержит криптографические примитивы сервиса аутентификации:
// хеширование паролей, выпуск и проверку JWT, генерацию токенов сброса пароля.
package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes - предел длины пароля, который bcrypt способен учесть.
const MaxPasswordBytes = 72

// ErrPasswordTooLong возвращается при попытке захешировать слишком длинный пароль.
var ErrPasswordTooLong = errors.New("пароль длиннее 72 байт")

// PasswordHasher хеширует и проверяет пароли с помощью bcrypt.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher создает хешер с заданной стоимостью bcrypt.
// Стоимость вне диапазона [bcrypt.MinCost, bcrypt.MaxCost] считается ошибкой конфигурации.
func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("недопустимая стоимость bcrypt %d (допустимо %d..%d)",
			cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &PasswordHasher{cost: cost}, nil
}

// Hash возвращает bcrypt-хеш пароля. Соль случайна, поэтому два хеша одного пароля различаются.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("ошибка хеширования пароля: %w", err)
	}
	return string(hashed), nil
}

// Verify сообщает, соответствует ли пароль сохраненному хешу.
// Поврежденный или пустой хеш дает false, а не ошибку.
// Пароль длиннее MaxPasswordBytes не совпадает ни с одним хешем: bcrypt отбросил бы хвост.
func (h *PasswordHasher) Verify(password, hash string) bool {
	if len(password) > MaxPasswordBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
