// Command mailer читает события сброса пароля из Kafka и отправляет письма через SMTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Yemresalcan/calender2025API/internal/notify"
	"github.com/joho/godotenv"
)

const (
	envFrontendURL  = "FRONTEND_URL"
	envKafkaGroupID = "KAFKA_GROUP_ID"

	defaultFrontendURL  = "http://localhost:5173"
	defaultKafkaGroupID = "calendar-mailer"
)

type config struct {
	SMTP    notify.SMTPConfig
	Kafka   notify.KafkaConfig
	GroupID string
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Не удалось прочитать .env: %v", err)
	}

	if err := run(); err != nil {
		log.Printf("[Mailer] Ошибка: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("ошибка конфигурации: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader := notify.NewKafkaReader(cfg.Kafka, cfg.GroupID)
	defer func() {
		if err := reader.Close(); err != nil {
			log.Printf("[Mailer] Ошибка закрытия читателя Kafka: %v", err)
		}
	}()

	log.Printf("[Mailer] Чтение топика %s (группа %s)", cfg.Kafka.Topic, cfg.GroupID)
	consumer := notify.NewConsumer(reader, notify.NewSMTPNotifier(cfg.SMTP), cfg.SMTP.SessionTimeout)
	if err = consumer.Run(ctx); err != nil {
		return fmt.Errorf("ошибка чтения Kafka: %w", err)
	}
	log.Println("[Mailer] Остановлен.")
	return nil
}

// loadConfig читает настройки из окружения. SMTP_HOST и KAFKA_BROKER обязательны.
func loadConfig() (*config, error) {
	frontendURL := os.Getenv(envFrontendURL)
	if frontendURL == "" {
		frontendURL = defaultFrontendURL
	}

	smtpCfg, err := notify.SMTPConfigFromEnv(frontendURL)
	if err != nil {
		return nil, err
	}
	if smtpCfg.Host == "" {
		return nil, errors.New("не задан " + notify.EnvSMTPHost)
	}

	kafkaCfg := notify.KafkaConfigFromEnv()
	if kafkaCfg.Broker == "" {
		return nil, errors.New("не задан " + notify.EnvKafkaBroker)
	}

	groupID := os.Getenv(envKafkaGroupID)
	if groupID == "" {
		groupID = defaultKafkaGroupID
	}

	return &config{SMTP: smtpCfg, Kafka: kafkaCfg, GroupID: groupID}, nil
}
