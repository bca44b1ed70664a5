package notify

import (
	"fmt"
	"os"
	"strconv"
)

// Переменные окружения почты и Kafka.
const (
	EnvSMTPHost      = "SMTP_HOST"
	EnvSMTPPort      = "SMTP_PORT"
	EnvSMTPUsername  = "SMTP_USERNAME"
	EnvSMTPPassword  = "SMTP_PASSWORD" //nolint:gosec // Это имя переменной окружения
	EnvSMTPFrom      = "SMTP_FROM"
	EnvSMTPFromName  = "SMTP_FROM_NAME"
	EnvKafkaBroker   = "KAFKA_BROKER"
	EnvKafkaTopic    = "KAFKA_TOPIC"
	EnvKafkaUsername = "KAFKA_USERNAME"
	EnvKafkaPassword = "KAFKA_PASSWORD" //nolint:gosec // Это имя переменной окружения

	DefaultSMTPPort = 587
)

// SMTPConfigFromEnv читает настройки SMTP из окружения.
// Пустой Host в результате означает, что почта не настроена.
func SMTPConfigFromEnv(frontendURL string) (SMTPConfig, error) {
	cfg := SMTPConfig{
		Host:        os.Getenv(EnvSMTPHost),
		Port:        DefaultSMTPPort,
		Username:    os.Getenv(EnvSMTPUsername),
		Password:    os.Getenv(EnvSMTPPassword),
		From:        os.Getenv(EnvSMTPFrom),
		FromName:    os.Getenv(EnvSMTPFromName),
		FrontendURL: frontendURL,
	}
	if v := os.Getenv(EnvSMTPPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return SMTPConfig{}, fmt.Errorf("некорректный %s: %q", EnvSMTPPort, v)
		}
		cfg.Port = port
	}
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	return cfg, nil
}

// KafkaConfigFromEnv читает настройки Kafka из окружения.
func KafkaConfigFromEnv() KafkaConfig {
	cfg := KafkaConfig{
		Broker:   os.Getenv(EnvKafkaBroker),
		Topic:    os.Getenv(EnvKafkaTopic),
		Username: os.Getenv(EnvKafkaUsername),
		Password: os.Getenv(EnvKafkaPassword),
	}
	if cfg.Topic == "" {
		cfg.Topic = DefaultKafkaTopic
	}
	return cfg
}
