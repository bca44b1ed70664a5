package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Yemresalcan/calender2025API/internal/repository"
	"github.com/Yemresalcan/calender2025API/internal/security"
	"github.com/Yemresalcan/calender2025API/models"
)

// ResetTokenTTL - сколько действует токен сброса пароля.
const ResetTokenTTL = time.Hour

// PasswordResetManager выпускает одноразовые токены сброса пароля и погашает их.
type PasswordResetManager struct {
	userRepo     repository.UserRepository
	hasher       *security.PasswordHasher
	now          func() time.Time
	newToken     func() (string, error)
	storeTimeout time.Duration
}

// NewPasswordResetManager создает менеджер токенов сброса.
// now и storeTimeout обычно передаются из настроек AuthService.
func NewPasswordResetManager(
	userRepo repository.UserRepository,
	hasher *security.PasswordHasher,
	now func() time.Time,
	storeTimeout time.Duration,
) *PasswordResetManager {
	if now == nil {
		now = time.Now
	}
	return &PasswordResetManager{
		userRepo:     userRepo,
		hasher:       hasher,
		now:          now,
		newToken:     security.GenerateResetToken,
		storeTimeout: storeTimeout,
	}
}

// Generate создает новый токен для пользователя и сохраняет его со сроком now + ResetTokenTTL.
// Предыдущий незавершенный сброс при этом перестает действовать.
func (m *PasswordResetManager) Generate(ctx context.Context, user *models.User) (string, error) {
	token, err := m.newToken()
	if err != nil {
		return "", fmt.Errorf("ошибка генерации токена сброса: %w", err)
	}

	now := m.now()
	storeCtx, cancel := withStoreTimeout(ctx, m.storeTimeout)
	defer cancel()

	if err = m.userRepo.SetResetToken(storeCtx, user.ID, token, now.Add(ResetTokenTTL), now); err != nil {
		return "", fmt.Errorf("ошибка сохранения токена сброса: %w", err)
	}
	return token, nil
}

// Consume меняет пароль владельца действующего токена и гасит токен.
// Неизвестный, истекший, уже использованный токен и проигранная гонка за один токен
// возвращают одинаковую ErrInvalidOrExpiredToken.
func (m *PasswordResetManager) Consume(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return ErrInvalidOrExpiredToken
	}
	// Длина проверяется до поиска токена: ответ не зависит от того, действителен ли он
	if len(newPassword) > security.MaxPasswordBytes {
		return security.ErrPasswordTooLong
	}

	lookupCtx, cancel := withStoreTimeout(ctx, m.storeTimeout)
	user, err := m.userRepo.GetUserByResetToken(lookupCtx, token, m.now())
	cancel()
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidOrExpiredToken
		}
		log.Printf("[AuthService] Ошибка поиска пользователя по токену сброса: %v", err)
		return ErrInternal
	}

	hash, err := m.hasher.Hash(newPassword)
	if err != nil {
		if errors.Is(err, security.ErrPasswordTooLong) {
			return err
		}
		log.Printf("[AuthService] Ошибка хеширования нового пароля для пользователя %s: %v", user.ID, err)
		return ErrInternal
	}

	updateCtx, cancel := withStoreTimeout(ctx, m.storeTimeout)
	defer cancel()

	err = m.userRepo.ResetPassword(updateCtx, user.ID, token, hash, m.now())
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrInvalidOrExpiredToken
		}
		log.Printf("[AuthService] Ошибка обновления пароля для пользователя %s: %v", user.ID, err)
		return ErrInternal
	}

	log.Printf("[AuthService] Пароль пользователя %s сброшен", user.ID)
	return nil
}

// withStoreTimeout ограничивает время одного обращения к хранилищу. Нулевой таймаут
// оставляет контекст без изменений.
func withStoreTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
