package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Yemresalcan/calender2025API/internal/handlers"
	"github.com/Yemresalcan/calender2025API/internal/migrations"
	appmiddleware "github.com/Yemresalcan/calender2025API/internal/middleware"
	"github.com/Yemresalcan/calender2025API/internal/notify"
	"github.com/Yemresalcan/calender2025API/internal/repository"
	"github.com/Yemresalcan/calender2025API/internal/security"
	"github.com/Yemresalcan/calender2025API/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
)

const (
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 10 * time.Second
	defaultIdleTimeout     = 30 * time.Second
	defaultShutdownTimeout = 15 * time.Second
)

// Подменяются в тестах.
var (
	newPostgresDB = repository.NewPostgresDB
	runMigrations = migrations.Up
)

// Структура для хранения инициализированных зависимостей.
type dependencies struct {
	db          *sqlx.DB
	tokens      *security.TokenIssuer
	authService services.AuthService
	authHandler *handlers.AuthHandler
	closers     []io.Closer
}

// Close освобождает внешние ресурсы в обратном порядке создания.
func (d *dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i].Close(); err != nil {
			log.Printf("Ошибка освобождения ресурса: %v", err)
		}
	}
}

// main - точка входа. Вызывает run и обрабатывает ошибку.
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Не удалось прочитать .env: %v", err)
	}

	if err := run(); err != nil {
		log.Printf("Ошибка выполнения сервера: %v", err)
		os.Exit(1)
	}
}

// run содержит основную логику запуска сервера и возвращает ошибку.
func run() error {
	log.Println("Запуск сервера Calendar API...")

	cfg, err := parseFlags()
	if err != nil {
		return fmt.Errorf("ошибка конфигурации: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setupDependencies(ctx, cfg)
	if err != nil {
		return fmt.Errorf("ошибка инициализации зависимостей: %w", err)
	}
	defer deps.Close()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      setupRouter(deps.authHandler, deps.tokens),
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		if cfg.TLSEnabled() {
			log.Printf("Запуск HTTPS-сервера на порту %s...", cfg.Port)
			log.Printf("Используется сертификат: %s", cfg.CertFile)
			serveErr <- server.ListenAndServeTLS(cfg.CertFile, cfg.KeyFile)
			return
		}
		log.Printf("Запуск HTTP-сервера на порту %s...", cfg.Port)
		serveErr <- server.ListenAndServe()
	}()

	return awaitShutdown(ctx, server, serveErr, deps.authService.Wait)
}

// awaitShutdown ждет ошибки сервера или сигнала завершения и останавливает сервер.
// drain вызывается на любом пути выхода: фоновые отправки писем дожидаются завершения.
func awaitShutdown(ctx context.Context, server *http.Server, serveErr <-chan error, drain func()) error {
	defer func() {
		drain()
		log.Println("Сервер остановлен.")
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ошибка запуска сервера: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Println("Получен сигнал завершения, останавливаем сервер...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Ошибка остановки сервера: %v", err)
	}
	return nil
}

// setupDependencies инициализирует и возвращает все необходимые зависимости сервера.
func setupDependencies(ctx context.Context, cfg *config) (*dependencies, error) {
	deps := &dependencies{}

	// 1. Хранилище пользователей
	userRepo, err := setupUserRepository(ctx, cfg, deps)
	if err != nil {
		deps.Close()
		return nil, err
	}

	// 2. Хеширование паролей и токены
	hasher, err := security.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("ошибка настройки хеширования паролей: %w", err)
	}
	deps.tokens, err = security.NewTokenIssuer(cfg.JWTSecret)
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("ошибка настройки JWT: %w", err)
	}

	// 3. Отправка писем
	notifier := setupNotifier(cfg, deps)

	// 4. Сервис и обработчики
	deps.authService = services.NewAuthService(userRepo, hasher, deps.tokens, notifier,
		services.WithStoreTimeout(cfg.StoreTimeout))
	deps.authHandler = handlers.NewAuthHandler(deps.authService)

	return deps, nil
}

func setupUserRepository(ctx context.Context, cfg *config, deps *dependencies) (repository.UserRepository, error) {
	if cfg.Storage == storageMemory {
		log.Println("Используется хранилище пользователей в памяти: данные не сохраняются между запусками.")
		return repository.NewMemoryUserRepository(), nil
	}

	db, err := newPostgresDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации БД: %w", err)
	}
	deps.db = db
	deps.closers = append(deps.closers, db)

	if err = runMigrations(ctx, db.DB); err != nil {
		return nil, fmt.Errorf("ошибка миграции БД: %w", err)
	}
	return repository.NewPostgresUserRepository(db), nil
}

func setupNotifier(cfg *config, deps *dependencies) notify.Notifier {
	if cfg.Notifier == notifierKafka {
		log.Printf("Письма сброса пароля публикуются в Kafka, топик %s", cfg.Kafka.Topic)
		kafkaNotifier := notify.NewKafkaNotifier(notify.NewKafkaWriter(cfg.Kafka))
		deps.closers = append(deps.closers, kafkaNotifier)
		return kafkaNotifier
	}

	if cfg.SMTP.Host == "" {
		log.Printf("Переменная %s не задана: письма сброса пароля отправляться не будут", notify.EnvSMTPHost)
		return notify.NewDisabledNotifier()
	}
	return notify.NewSMTPNotifier(cfg.SMTP)
}

// setupRouter настраивает и возвращает роутер chi.
func setupRouter(authHandler *handlers.AuthHandler, tokens appmiddleware.TokenParser) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// --- Маршруты --- //
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong\n"))
	})

	r.Route("/auth", func(r chi.Router) {
		// Публичные маршруты
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/verify", authHandler.Verify)
		r.Post("/forgot-password", authHandler.ForgotPassword)
		r.Post("/reset-password", authHandler.ResetPassword)

		// Приватные маршруты (требуют аутентификации)
		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.Authenticator(tokens))
			r.Get("/me", authHandler.Me)
		})
	})
	return r
}
