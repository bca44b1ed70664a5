package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Yemresalcan/calender2025API/models"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Коды ошибок и имена ограничений PostgreSQL.
const (
	pgUniqueViolationCode = "23505"
	emailUniqueConstraint = "users_email_key"
	nameUniqueConstraint  = "users_username_key"
)

const userColumns = `id, username, email, password_hash, reset_password_token, reset_password_expiry, created_at, updated_at`

// UserRepository определяет методы для работы с данными пользователей в хранилище.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// GetUserByResetToken ищет пользователя с данным токеном сброса, срок которого строго позже asOf.
	GetUserByResetToken(ctx context.Context, token string, asOf time.Time) (*models.User, error)
	// SetResetToken записывает токен и срок сброса, заменяя предыдущие.
	SetResetToken(ctx context.Context, userID, token string, expiry, updatedAt time.Time) error
	// ResetPassword меняет хеш пароля и очищает токен со сроком, только если у пользователя
	// все еще действует именно этот токен. Иначе возвращает ErrUserNotFound.
	ResetPassword(ctx context.Context, userID, token, passwordHash string, now time.Time) error
}

// postgresUserRepository реализует UserRepository для PostgreSQL.
type postgresUserRepository struct {
	db *sqlx.DB
}

// NewPostgresUserRepository создает новый экземпляр репозитория пользователей для PostgreSQL.
func NewPostgresUserRepository(db *sqlx.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

// CreateUser создает нового пользователя в базе данных.
// Нарушение уникальности email или имени пользователя возвращается как ErrEmailTaken / ErrUsernameTaken.
func (r *postgresUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (id, username, email, password_hash, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			switch pgErr.Constraint {
			case emailUniqueConstraint:
				log.Printf("[Repo] Ошибка создания пользователя '%s': email уже занят", user.Username)
				return ErrEmailTaken
			case nameUniqueConstraint:
				log.Printf("[Repo] Ошибка создания пользователя '%s': имя пользователя уже занято", user.Username)
				return ErrUsernameTaken
			}
		}
		log.Printf("[Repo] Непредвиденная ошибка при создании пользователя '%s': %v", user.Username, err)
		return fmt.Errorf("ошибка выполнения запроса на создание пользователя: %w", err)
	}

	log.Printf("[Repo] Пользователь '%s' успешно создан с ID %s", user.Username, user.ID)
	return nil
}

// GetUserByEmail находит пользователя по email.
func (r *postgresUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return r.getUser(ctx, query, email)
}

// GetUserByUsername находит пользователя по его имени.
func (r *postgresUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username=$1`
	return r.getUser(ctx, query, username)
}

// GetUserByResetToken находит пользователя по действующему токену сброса пароля.
func (r *postgresUserRepository) GetUserByResetToken(
	ctx context.Context,
	token string,
	asOf time.Time,
) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE reset_password_token=$1 AND reset_password_expiry > $2`
	return r.getUser(ctx, query, token, asOf)
}

func (r *postgresUserRepository) getUser(ctx context.Context, query string, args ...interface{}) (*models.User, error) {
	var user models.User

	err := r.db.GetContext(ctx, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		log.Printf("[Repo] Ошибка при поиске пользователя: %v", err)
		return nil, fmt.Errorf("ошибка выполнения запроса на получение пользователя: %w", err)
	}

	return &user, nil
}

// SetResetToken сохраняет токен сброса пароля и срок его действия.
func (r *postgresUserRepository) SetResetToken(
	ctx context.Context,
	userID, token string,
	expiry, updatedAt time.Time,
) error {
	query := `UPDATE users SET reset_password_token=$1, reset_password_expiry=$2, updated_at=$3 WHERE id=$4`

	res, err := r.db.ExecContext(ctx, query, token, expiry, updatedAt, userID)
	if err != nil {
		log.Printf("[Repo] Ошибка сохранения токена сброса для пользователя %s: %v", userID, err)
		return fmt.Errorf("ошибка выполнения запроса на сохранение токена сброса: %w", err)
	}
	if err = expectAffected(res); err != nil {
		return err
	}

	log.Printf("[Repo] Токен сброса пароля сохранен для пользователя %s", userID)
	return nil
}

// ResetPassword атомарно меняет пароль и закрывает окно сброса.
func (r *postgresUserRepository) ResetPassword(
	ctx context.Context,
	userID, token, passwordHash string,
	now time.Time,
) error {
	query := `UPDATE users SET password_hash=$1, reset_password_token=NULL, reset_password_expiry=NULL, updated_at=$2 ` +
		`WHERE id=$3 AND reset_password_token=$4 AND reset_password_expiry > $2`

	res, err := r.db.ExecContext(ctx, query, passwordHash, now, userID, token)
	if err != nil {
		log.Printf("[Repo] Ошибка обновления пароля для пользователя %s: %v", userID, err)
		return fmt.Errorf("ошибка выполнения запроса на обновление пароля: %w", err)
	}
	if err = expectAffected(res); err != nil {
		return err
	}

	log.Printf("[Repo] Пароль пользователя %s обновлен, токен сброса очищен", userID)
	return nil
}

// expectAffected возвращает ErrUserNotFound, если запрос не изменил ни одной строки.
func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка получения количества измененных строк: %w", err)
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// Кастомные ошибки репозитория.
var (
	ErrUserNotFound  = errors.New("пользователь не найден")
	ErrEmailTaken    = errors.New("email уже занят")
	ErrUsernameTaken = errors.New("имя пользователя уже занято")
)
