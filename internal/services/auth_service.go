package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Yemresalcan/calender2025API/internal/notify"
	"github.com/Yemresalcan/calender2025API/internal/repository"
	"github.com/Yemresalcan/calender2025API/internal/security"
	"github.com/Yemresalcan/calender2025API/models"
	"github.com/google/uuid"
)

// Значения по умолчанию для таймаутов сервиса.
const (
	DefaultStoreTimeout  = 5 * time.Second
	DefaultNotifyTimeout = 30 * time.Second
)

// Пароль для холостого сравнения при входе с неизвестным email.
const dummyPassword = "calendar-api-dummy-password"

// AuthService определяет интерфейс для сервиса аутентификации.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.AuthResult, error)
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	VerifyToken(token string) bool
	// ForgotPassword никогда не сообщает вызывающему, существует ли email.
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	// Wait дожидается завершения фоновых отправок писем.
	Wait()
}

// Option настраивает authService.
type Option func(*authService)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *authService) { s.now = now }
}

// WithStoreTimeout задает таймаут каждого обращения к хранилищу.
func WithStoreTimeout(d time.Duration) Option {
	return func(s *authService) { s.storeTimeout = d }
}

// WithNotifyTimeout задает таймаут фоновой отправки письма.
func WithNotifyTimeout(d time.Duration) Option {
	return func(s *authService) { s.notifyTimeout = d }
}

// Убедимся, что authService удовлетворяет интерфейсу AuthService.
var _ AuthService = (*authService)(nil)

type authService struct {
	userRepo repository.UserRepository
	hasher   *security.PasswordHasher
	tokens   *security.TokenIssuer
	notifier notify.Notifier
	resets   *PasswordResetManager

	now           func() time.Time
	storeTimeout  time.Duration
	notifyTimeout time.Duration
	dummyHash     string

	wg sync.WaitGroup
}

// NewAuthService создает новый экземпляр сервиса аутентификации.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher *security.PasswordHasher,
	tokens *security.TokenIssuer,
	notifier notify.Notifier,
	opts ...Option,
) AuthService {
	s := &authService{
		userRepo:      userRepo,
		hasher:        hasher,
		tokens:        tokens,
		notifier:      notifier,
		now:           time.Now,
		storeTimeout:  DefaultStoreTimeout,
		notifyTimeout: DefaultNotifyTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.resets = NewPasswordResetManager(userRepo, hasher, s.now, s.storeTimeout)

	// Хеш той же стоимости, что и у настоящих паролей: вход с неизвестным email
	// выполняет такое же сравнение bcrypt.
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		log.Printf("[AuthService] Не удалось подготовить холостой хеш: %v", err)
	}
	s.dummyHash = dummyHash

	return s
}

// Register регистрирует нового пользователя и сразу выпускает для него токен.
func (s *authService) Register(ctx context.Context, username, email, password string) (*models.AuthResult, error) {
	// Сначала email, затем имя: при двойном конфликте клиент видит ошибку про email
	if err := s.ensureFree(ctx, s.userRepo.GetUserByEmail, email, ErrEmailTaken); err != nil {
		return nil, err
	}
	if err := s.ensureFree(ctx, s.userRepo.GetUserByUsername, username, ErrUsernameTaken); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, security.ErrPasswordTooLong) {
			return nil, err
		}
		log.Printf("[AuthService] Ошибка хеширования пароля для '%s': %v", username, err)
		return nil, ErrInternal
	}

	id, err := uuid.NewV7()
	if err != nil {
		log.Printf("[AuthService] Ошибка генерации ID пользователя: %v", err)
		return nil, ErrInternal
	}

	now := s.now()
	user := &models.User{
		ID:           id.String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	storeCtx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	err = s.userRepo.CreateUser(storeCtx, user)
	cancel()
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			log.Printf("[AuthService] Попытка регистрации с занятым email (гонка): %s", username)
			return nil, ErrEmailTaken
		case errors.Is(err, repository.ErrUsernameTaken):
			log.Printf("[AuthService] Попытка регистрации с занятым именем (гонка): %s", username)
			return nil, ErrUsernameTaken
		}
		log.Printf("[AuthService] Непредвиденная ошибка репозитория при регистрации '%s': %v", username, err)
		return nil, ErrInternal
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		log.Printf("[AuthService] Ошибка генерации JWT для '%s': %v", username, err)
		return nil, ErrInternal
	}

	log.Printf("[AuthService] Пользователь '%s' успешно зарегистрирован", username)
	return &models.AuthResult{Token: token, Username: user.Username}, nil
}

// ensureFree возвращает conflict, если lookup находит пользователя по value.
func (s *authService) ensureFree(
	ctx context.Context,
	lookup func(context.Context, string) (*models.User, error),
	value string,
	conflict error,
) error {
	storeCtx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	_, err := lookup(storeCtx, value)
	switch {
	case err == nil:
		log.Printf("[AuthService] Отказ в регистрации: %v", conflict)
		return conflict
	case errors.Is(err, repository.ErrUserNotFound):
		return nil
	default:
		log.Printf("[AuthService] Ошибка репозитория при проверке уникальности: %v", err)
		return ErrInternal
	}
}

// Login аутентифицирует пользователя по email и паролю и возвращает JWT токен.
func (s *authService) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	storeCtx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	user, err := s.userRepo.GetUserByEmail(storeCtx, email)
	cancel()
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.hasher.Verify(password, s.dummyHash)
			log.Printf("[AuthService] Попытка входа с неизвестным email")
			return nil, ErrInvalidCredentials // Общая ошибка для неизвестного email и неверного пароля
		}
		log.Printf("[AuthService] Ошибка репозитория при поиске пользователя для входа: %v", err)
		return nil, ErrInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		log.Printf("[AuthService] Неверный пароль для пользователя: %s", user.Username)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		log.Printf("[AuthService] Ошибка генерации JWT для '%s': %v", user.Username, err)
		return nil, ErrInternal
	}

	log.Printf("[AuthService] Пользователь '%s' успешно аутентифицирован", user.Username)
	return &models.AuthResult{Token: token, Username: user.Username}, nil
}

// VerifyToken сообщает, действителен ли токен доступа.
func (s *authService) VerifyToken(token string) bool {
	return s.tokens.Verify(token)
}

// ForgotPassword запускает сброс пароля для существующего пользователя.
// Результат для вызывающего всегда один и тот же: ошибки только логируются.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	storeCtx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	user, err := s.userRepo.GetUserByEmail(storeCtx, email)
	cancel()
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Printf("[AuthService] Запрошен сброс пароля для неизвестного email")
		} else {
			log.Printf("[AuthService] Ошибка репозитория при запросе сброса пароля: %v", err)
		}
		return nil
	}

	token, err := s.resets.Generate(ctx, user)
	if err != nil {
		log.Printf("[AuthService] Не удалось создать токен сброса для пользователя %s: %v", user.ID, err)
		return nil
	}

	// Письмо отправляется после ответа клиенту и не зависит от отмены запроса
	notifyCtx := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		sendCtx, cancel := context.WithTimeout(notifyCtx, s.notifyTimeout)
		defer cancel()

		if sendErr := s.notifier.SendResetEmail(sendCtx, user.Email, token); sendErr != nil {
			log.Printf("[AuthService] Ошибка отправки письма сброса пользователю %s: %v", user.ID, sendErr)
			return
		}
		log.Printf("[AuthService] Письмо сброса пароля отправлено пользователю %s", user.ID)
	}()

	return nil
}

// ResetPassword устанавливает новый пароль по токену сброса.
func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return s.resets.Consume(ctx, token, newPassword)
}

func (s *authService) Wait() {
	s.wg.Wait()
}

// Кастомные ошибки сервиса.
var (
	ErrInvalidCredentials    = errors.New("неверный email или пароль")
	ErrEmailTaken            = errors.New("пользователь с таким email уже существует")
	ErrUsernameTaken         = errors.New("имя пользователя уже занято")
	ErrInvalidOrExpiredToken = errors.New("недействительный или просроченный токен")
	ErrInternal              = errors.New("внутренняя ошибка сервера")
)
