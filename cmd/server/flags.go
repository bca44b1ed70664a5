package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Yemresalcan/calender2025API/internal/notify"
	"github.com/Yemresalcan/calender2025API/internal/security"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultServerPort   = "8080"
	defaultStorage      = storagePostgres
	defaultNotifier     = notifierSMTP
	defaultFrontendURL  = "http://localhost:5173"
	defaultStoreTimeout = 5 * time.Second

	storagePostgres = "postgres"
	storageMemory   = "memory"
	notifierSMTP    = "smtp"
	notifierKafka   = "kafka"

	// Переменные окружения.
	envServerPort   = "SERVER_PORT"
	envTLSCertFile  = "TLS_CERT_FILE"
	envTLSKeyFile   = "TLS_KEY_FILE"
	envDatabaseDSN  = "DATABASE_DSN"
	envStorage      = "STORAGE"
	envJWTSecret    = "JWT_SECRET" //nolint:gosec // Это имя переменной окружения
	envBcryptCost   = "BCRYPT_COST"
	envStoreTimeout = "STORE_TIMEOUT"
	envFrontendURL  = "FRONTEND_URL"
	envNotifier     = "NOTIFIER"
)

// config хранит конфигурацию сервера.
type config struct {
	Port         string
	CertFile     string
	KeyFile      string
	DatabaseDSN  string
	Storage      string
	JWTSecret    string
	BcryptCost   int
	StoreTimeout time.Duration
	FrontendURL  string
	Notifier     string

	SMTP  notify.SMTPConfig
	Kafka notify.KafkaConfig
}

// TLSEnabled сообщает, заданы ли сертификат и ключ.
func (c *config) TLSEnabled() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

// parseFlags разбирает флаги и переменные окружения, возвращает config или ошибку.
// Флаги имеют приоритет над переменными окружения.
func parseFlags() (*config, error) {
	cfg := &config{}
	var bcryptCost, storeTimeout string

	flag.StringVar(&cfg.Port, "port", "",
		fmt.Sprintf("Порт HTTP-сервера (env: %s, default: %s)", envServerPort, defaultServerPort))
	flag.StringVar(&cfg.CertFile, "cert-file", "",
		fmt.Sprintf("Путь к файлу TLS-сертификата (env: %s)", envTLSCertFile))
	flag.StringVar(&cfg.KeyFile, "key-file", "",
		fmt.Sprintf("Путь к файлу TLS-ключа (env: %s)", envTLSKeyFile))
	flag.StringVar(&cfg.DatabaseDSN, "database-dsn", "",
		fmt.Sprintf("Строка подключения к базе данных (env: %s)", envDatabaseDSN))
	flag.StringVar(&cfg.Storage, "storage", "",
		fmt.Sprintf("Хранилище пользователей: postgres или memory (env: %s, default: %s)", envStorage, defaultStorage))
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", "",
		fmt.Sprintf("Секрет для подписи JWT (env: %s)", envJWTSecret))
	flag.StringVar(&bcryptCost, "bcrypt-cost", "",
		fmt.Sprintf("Стоимость bcrypt (env: %s, default: %d)", envBcryptCost, bcrypt.DefaultCost))
	flag.StringVar(&storeTimeout, "store-timeout", "",
		fmt.Sprintf("Таймаут обращения к хранилищу (env: %s, default: %s)", envStoreTimeout, defaultStoreTimeout))
	flag.StringVar(&cfg.FrontendURL, "frontend-url", "",
		fmt.Sprintf("Адрес фронтенда для ссылок сброса пароля (env: %s, default: %s)", envFrontendURL, defaultFrontendURL))
	flag.StringVar(&cfg.Notifier, "notifier", "",
		fmt.Sprintf("Способ отправки писем: smtp или kafka (env: %s, default: %s)", envNotifier, defaultNotifier))

	flag.Parse()

	// Применяем переменные окружения, если флаги не заданы
	cfg.Port = firstNonEmpty(cfg.Port, os.Getenv(envServerPort), defaultServerPort)
	cfg.CertFile = firstNonEmpty(cfg.CertFile, os.Getenv(envTLSCertFile))
	cfg.KeyFile = firstNonEmpty(cfg.KeyFile, os.Getenv(envTLSKeyFile))
	cfg.DatabaseDSN = firstNonEmpty(cfg.DatabaseDSN, os.Getenv(envDatabaseDSN))
	cfg.Storage = firstNonEmpty(cfg.Storage, os.Getenv(envStorage), defaultStorage)
	cfg.JWTSecret = firstNonEmpty(cfg.JWTSecret, os.Getenv(envJWTSecret))
	cfg.FrontendURL = firstNonEmpty(cfg.FrontendURL, os.Getenv(envFrontendURL), defaultFrontendURL)
	cfg.Notifier = firstNonEmpty(cfg.Notifier, os.Getenv(envNotifier), defaultNotifier)
	bcryptCost = firstNonEmpty(bcryptCost, os.Getenv(envBcryptCost))
	storeTimeout = firstNonEmpty(storeTimeout, os.Getenv(envStoreTimeout))

	cfg.BcryptCost = bcrypt.DefaultCost
	if bcryptCost != "" {
		cost, err := strconv.Atoi(bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("некорректная стоимость bcrypt %q: %w", bcryptCost, err)
		}
		cfg.BcryptCost = cost
	}

	cfg.StoreTimeout = defaultStoreTimeout
	if storeTimeout != "" {
		d, err := time.ParseDuration(storeTimeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("некорректный таймаут хранилища %q", storeTimeout)
		}
		cfg.StoreTimeout = d
	}

	smtpCfg, err := notify.SMTPConfigFromEnv(cfg.FrontendURL)
	if err != nil {
		return nil, err
	}
	cfg.SMTP = smtpCfg
	cfg.Kafka = notify.KafkaConfigFromEnv()

	// Проверяем обязательные параметры
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w (--jwt-secret или %s)", security.ErrSecretNotConfigured, envJWTSecret)
	}
	switch cfg.Storage {
	case storagePostgres:
		if cfg.DatabaseDSN == "" {
			return nil, errors.New("не указана строка подключения к БД (--database-dsn или " + envDatabaseDSN + ")")
		}
	case storageMemory:
	default:
		return nil, fmt.Errorf("неизвестное хранилище %q: ожидается %s или %s", cfg.Storage, storagePostgres, storageMemory)
	}
	switch cfg.Notifier {
	case notifierSMTP:
	case notifierKafka:
		if cfg.Kafka.Broker == "" {
			return nil, errors.New("для отправки через Kafka нужен " + notify.EnvKafkaBroker)
		}
	default:
		return nil, fmt.Errorf("неизвестный способ отправки писем %q: ожидается %s или %s", cfg.Notifier, notifierSMTP, notifierKafka)
	}
	if (cfg.CertFile == "") != (cfg.KeyFile == "") {
		return nil, errors.New("для HTTPS нужны и сертификат, и ключ (--cert-file и --key-file)")
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
