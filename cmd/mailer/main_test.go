package main

import (
	"testing"

	"github.com/Yemresalcan/calender2025API/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, env map[string]string) {
	t.Helper()
	for _, key := range []string{
		envFrontendURL, envKafkaGroupID,
		notify.EnvSMTPHost, notify.EnvSMTPPort, notify.EnvSMTPUsername, notify.EnvSMTPFrom,
		notify.EnvKafkaBroker, notify.EnvKafkaTopic, notify.EnvKafkaUsername,
	} {
		t.Setenv(key, env[key])
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("Значения по умолчанию", func(t *testing.T) {
		setEnv(t, map[string]string{
			notify.EnvSMTPHost:    "smtp.example.com",
			notify.EnvKafkaBroker: "localhost:9092",
		})

		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, "smtp.example.com", cfg.SMTP.Host)
		assert.Equal(t, notify.DefaultSMTPPort, cfg.SMTP.Port)
		assert.Equal(t, defaultFrontendURL, cfg.SMTP.FrontendURL)
		assert.Equal(t, "localhost:9092", cfg.Kafka.Broker)
		assert.Equal(t, notify.DefaultKafkaTopic, cfg.Kafka.Topic)
		assert.Equal(t, defaultKafkaGroupID, cfg.GroupID)
	})

	t.Run("Все параметры из окружения", func(t *testing.T) {
		setEnv(t, map[string]string{
			envFrontendURL:         "https://app.example.com",
			envKafkaGroupID:        "mailer-2",
			notify.EnvSMTPHost:     "smtp.example.com",
			notify.EnvSMTPPort:     "2525",
			notify.EnvSMTPUsername: "robot@example.com",
			notify.EnvKafkaBroker:  "kafka:9092",
			notify.EnvKafkaTopic:   "resets",
		})

		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, 2525, cfg.SMTP.Port)
		assert.Equal(t, "robot@example.com", cfg.SMTP.From)
		assert.Equal(t, "https://app.example.com", cfg.SMTP.FrontendURL)
		assert.Equal(t, "resets", cfg.Kafka.Topic)
		assert.Equal(t, "mailer-2", cfg.GroupID)
	})

	errCases := []struct {
		name    string
		env     map[string]string
		errPart string
	}{
		{
			name:    "Нет SMTP_HOST",
			env:     map[string]string{notify.EnvKafkaBroker: "localhost:9092"},
			errPart: notify.EnvSMTPHost,
		},
		{
			name:    "Нет KAFKA_BROKER",
			env:     map[string]string{notify.EnvSMTPHost: "smtp.example.com"},
			errPart: notify.EnvKafkaBroker,
		},
		{
			name: "Некорректный порт SMTP",
			env: map[string]string{
				notify.EnvSMTPHost:    "smtp.example.com",
				notify.EnvSMTPPort:    "0",
				notify.EnvKafkaBroker: "localhost:9092",
			},
			errPart: notify.EnvSMTPPort,
		},
	}

	for _, tt := range errCases {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)
			_, err := loadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}
