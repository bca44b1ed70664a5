package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/Yemresalcan/calender2025API/internal/security"
	"github.com/Yemresalcan/calender2025API/models"
)

// Тип для ключа контекста.
type contextKey string

// ClaimsKey - ключ, под которым в контексте лежат проверенные *security.Claims.
const ClaimsKey contextKey = "claims"

// TokenParser проверяет токен доступа и возвращает его полезную нагрузку.
type TokenParser interface {
	Parse(token string) (*security.Claims, error)
}

// Authenticator пропускает запрос дальше только с действительным Bearer-токеном.
func Authenticator(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Println("[AuthMiddleware] Заголовок Authorization отсутствует")
				unauthorized(w, "Требуется аутентификация")
				return
			}

			// Проверяем формат "Bearer token"
			headerParts := strings.Fields(authHeader)
			if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "bearer") {
				log.Println("[AuthMiddleware] Неверный формат заголовка Authorization")
				unauthorized(w, "Неверный формат токена")
				return
			}

			claims, err := parser.Parse(headerParts[1])
			if err != nil {
				log.Printf("[AuthMiddleware] Токен отклонен: %v", err)
				unauthorized(w, "Невалидный токен")
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaimsFromContext извлекает проверенные данные токена из контекста запроса.
func GetClaimsFromContext(ctx context.Context) (*security.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*security.Claims)
	return claims, ok && claims != nil
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: message})
}
