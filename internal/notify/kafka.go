package notify

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

// DefaultKafkaTopic - топик событий сброса пароля.
const DefaultKafkaTopic = "password-reset"

// KafkaConfig - параметры подключения к Kafka.
// При пустом Username соединение открывается без SASL и TLS (локальный брокер).
type KafkaConfig struct {
	Broker   string
	Topic    string
	Username string
	Password string
}

// PasswordResetRequested - событие, которое сервер публикует вместо прямой отправки письма.
// Его читает cmd/mailer и отправляет письмо через SMTP.
type PasswordResetRequested struct {
	Email       string    `json:"email"`
	Token       string    `json:"token"`
	RequestedAt time.Time `json:"requested_at"`
}

// MessageWriter - часть kafka.Writer, которой пользуется KafkaNotifier.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaWriter создает синхронного продюсера для топика cfg.Topic.
func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Broker),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: 10 * time.Second,
	}
	if cfg.Username != "" {
		w.Transport = &kafka.Transport{
			SASL: plain.Mechanism{Username: cfg.Username, Password: cfg.Password},
			TLS:  &tls.Config{MinVersion: tls.VersionTLS12},
		}
	}
	return w
}

// KafkaNotifier публикует PasswordResetRequested в Kafka.
type KafkaNotifier struct {
	writer MessageWriter
	now    func() time.Time
}

// NewKafkaNotifier создает Notifier поверх writer.
func NewKafkaNotifier(writer MessageWriter) *KafkaNotifier {
	return &KafkaNotifier{writer: writer, now: time.Now}
}

// SendResetEmail публикует событие; ключ сообщения - email, чтобы события одного
// пользователя попадали в одну партицию.
func (n *KafkaNotifier) SendResetEmail(ctx context.Context, email, token string) error {
	value, err := json.Marshal(PasswordResetRequested{
		Email:       email,
		Token:       token,
		RequestedAt: n.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("ошибка сериализации события сброса: %w", err)
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(email),
		Value: value,
		Time:  n.now(),
	})
	if err != nil {
		return fmt.Errorf("ошибка публикации события сброса в Kafka: %w", err)
	}

	log.Println("[Notifier] Событие сброса пароля опубликовано в Kafka")
	return nil
}

// Close закрывает продюсера.
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
