package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/Yemresalcan/calender2025API/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenTTL - время жизни токена доступа.
	TokenTTL = 7 * 24 * time.Hour
	// IssuerName - значение поля iss в выпускаемых токенах.
	IssuerName = "calendar-api"
)

// Ошибки выпуска и проверки токенов.
var (
	ErrSecretNotConfigured = errors.New("секретный ключ JWT не задан")
	ErrInvalidToken        = errors.New("невалидный токен")
)

// Claims - полезная нагрузка токена. Subject содержит ID пользователя.
type Claims struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenOption настраивает TokenIssuer.
type TokenOption func(*TokenIssuer)

// WithClock подменяет источник текущего времени (используется в тестах).
func WithClock(now func() time.Time) TokenOption {
	return func(i *TokenIssuer) {
		i.now = now
	}
}

// TokenIssuer выпускает и проверяет JWT, подписанные HS256.
// Безопасен для одновременного использования: после создания состояние не меняется.
type TokenIssuer struct {
	secret []byte
	now    func() time.Time
}

// NewTokenIssuer создает издателя токенов.
// Пустой секрет - фатальная ошибка конфигурации, сервер не должен стартовать без него.
func NewTokenIssuer(secret string, opts ...TokenOption) (*TokenIssuer, error) {
	if secret == "" {
		return nil, ErrSecretNotConfigured
	}
	issuer := &TokenIssuer{
		secret: []byte(secret),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(issuer)
	}
	return issuer, nil
}

// Issue создает подписанный токен для пользователя, действующий TokenTTL с момента выпуска.
func (i *TokenIssuer) Issue(user *models.User) (string, error) {
	now := i.now()
	claims := Claims{
		Email:    user.Email,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    IssuerName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи JWT: %w", err)
	}
	return signed, nil
}

// Parse проверяет подпись, алгоритм, издателя и интервал [iat, exp) без допуска на
// расхождение часов и возвращает полезную нагрузку.
// Любая проблема с токеном приводит к ошибке, обернутой в ErrInvalidToken.
func (i *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(_ *jwt.Token) (interface{}, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(IssuerName),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Verify классифицирует токен как валидный или нет и никогда не возвращает ошибку.
func (i *TokenIssuer) Verify(tokenString string) bool {
	_, err := i.Parse(tokenString)
	return err == nil
}
