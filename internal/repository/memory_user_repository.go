package repository

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Yemresalcan/calender2025API/models"
)

// memoryUserRepository хранит пользователей в памяти процесса.
// Используется для локального запуска без PostgreSQL и в тестах сервисов.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User // по ID
}

// NewMemoryUserRepository создает пустое хранилище пользователей в памяти.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]*models.User)}
}

// CreateUser проверяет уникальность email и имени под одной блокировкой,
// поэтому параллельные регистрации не создают дубликатов.
func (r *memoryUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrEmailTaken
		}
	}
	for _, u := range r.users {
		if u.Username == user.Username {
			return ErrUsernameTaken
		}
	}

	r.users[user.ID] = cloneUser(user)
	log.Printf("[Repo] Пользователь '%s' создан в памяти с ID %s", user.Username, user.ID)
	return nil
}

func (r *memoryUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.find(ctx, func(u *models.User) bool { return u.Email == email })
}

func (r *memoryUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.find(ctx, func(u *models.User) bool { return u.Username == username })
}

func (r *memoryUserRepository) GetUserByResetToken(
	ctx context.Context,
	token string,
	asOf time.Time,
) (*models.User, error) {
	return r.find(ctx, func(u *models.User) bool {
		return u.HasPendingReset(asOf) && *u.ResetPasswordToken == token
	})
}

func (r *memoryUserRepository) SetResetToken(
	ctx context.Context,
	userID, token string,
	expiry, updatedAt time.Time,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	u.ResetPasswordToken = &token
	u.ResetPasswordExpiry = &expiry
	u.UpdatedAt = updatedAt
	return nil
}

func (r *memoryUserRepository) ResetPassword(
	ctx context.Context,
	userID, token, passwordHash string,
	now time.Time,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok || !u.HasPendingReset(now) || *u.ResetPasswordToken != token {
		return ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.ResetPasswordToken = nil
	u.ResetPasswordExpiry = nil
	u.UpdatedAt = now
	return nil
}

func (r *memoryUserRepository) find(ctx context.Context, match func(*models.User) bool) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if match(u) {
			return cloneUser(u), nil
		}
	}
	return nil, ErrUserNotFound
}

// cloneUser возвращает копию, не разделяющую указатели с хранилищем.
func cloneUser(u *models.User) *models.User {
	c := *u
	if u.ResetPasswordToken != nil {
		token := *u.ResetPasswordToken
		c.ResetPasswordToken = &token
	}
	if u.ResetPasswordExpiry != nil {
		expiry := *u.ResetPasswordExpiry
		c.ResetPasswordExpiry = &expiry
	}
	return &c
}
