package security

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// resetTokenBytes - объем случайных данных в токене сброса пароля (256 бит).
const resetTokenBytes = 32

// GenerateResetToken возвращает криптографически случайный одноразовый токен в base64url.
func GenerateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("ошибка генерации токена сброса пароля: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
