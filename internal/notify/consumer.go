package notify

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

// MessageReader - часть kafka.Reader, которой пользуется Consumer.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaReader создает читателя топика cfg.Topic в группе groupID.
func NewKafkaReader(cfg KafkaConfig, groupID string) *kafka.Reader {
	dialer := &kafka.Dialer{
		Timeout:   10 * time.Second,
		DualStack: true,
	}
	if cfg.Username != "" {
		dialer.TLS = &tls.Config{MinVersion: tls.VersionTLS12}
		dialer.SASLMechanism = plain.Mechanism{Username: cfg.Username, Password: cfg.Password}
	}

	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{cfg.Broker},
		GroupID:  groupID,
		Topic:    cfg.Topic,
		MinBytes: 1,
		MaxBytes: 10e6,
		Dialer:   dialer,
	})
}

// Consumer читает события PasswordResetRequested и отправляет письма через notifier.
type Consumer struct {
	reader   MessageReader
	notifier Notifier
	timeout  time.Duration
}

// NewConsumer создает обработчик событий. timeout ограничивает отправку одного письма.
func NewConsumer(reader MessageReader, notifier Notifier, timeout time.Duration) *Consumer {
	if timeout <= 0 {
		timeout = DefaultSMTPSessionTimeout
	}
	return &Consumer{reader: reader, notifier: notifier, timeout: timeout}
}

// Run обрабатывает сообщения, пока не отменен ctx.
// Каждое сообщение подтверждается после одной попытки отправки: повторов нет,
// неразборчивые сообщения пропускаются.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		c.handle(ctx, msg)

		if err = c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Printf("[Mailer] Ошибка подтверждения сообщения (offset %d): %v", msg.Offset, err)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg kafka.Message) {
	var event PasswordResetRequested
	if err := json.Unmarshal(msg.Value, &event); err != nil || event.Email == "" || event.Token == "" {
		log.Printf("[Mailer] Пропуск некорректного сообщения (offset %d)", msg.Offset)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.notifier.SendResetEmail(sendCtx, event.Email, event.Token); err != nil {
		log.Printf("[Mailer] Ошибка отправки письма (offset %d): %v", msg.Offset, err)
		return
	}
	log.Printf("[Mailer] Письмо сброса пароля отправлено (offset %d)", msg.Offset)
}
