// Package notify доставляет пользователю письмо со ссылкой для сброса пароля.
package notify

import (
	"context"
	"errors"
	"log"
)

// Notifier отправляет письмо со ссылкой для сброса пароля.
type Notifier interface {
	SendResetEmail(ctx context.Context, email, token string) error
}

// ErrNotConfigured возвращается, когда отправка писем не настроена.
var ErrNotConfigured = errors.New("отправка писем не настроена")

type disabledNotifier struct{}

// NewDisabledNotifier возвращает Notifier, который ничего не отправляет.
// Им заменяется SMTP, если не задан SMTP_HOST: сервер при этом продолжает работать.
func NewDisabledNotifier() Notifier {
	return disabledNotifier{}
}

func (disabledNotifier) SendResetEmail(_ context.Context, _, _ string) error {
	log.Println("[Notifier] Письмо сброса пароля не отправлено: SMTP не настроен")
	return ErrNotConfigured
}
