package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

// Таймауты SMTP по умолчанию.
const (
	DefaultSMTPDialTimeout    = 8 * time.Second
	DefaultSMTPSessionTimeout = 30 * time.Second
)

// SMTPConfig - параметры подключения к почтовому серверу.
type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	FromName    string
	FrontendURL string

	DialTimeout    time.Duration
	SessionTimeout time.Duration
}

// SMTPNotifier отправляет письма сброса пароля через SMTP с STARTTLS.
type SMTPNotifier struct {
	cfg SMTPConfig
}

// NewSMTPNotifier создает отправителя писем через SMTP.
func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = DefaultSMTPDialTimeout
	}
	if cfg.SessionTimeout <= 0 {
		cfg.SessionTimeout = DefaultSMTPSessionTimeout
	}
	return &SMTPNotifier{cfg: cfg}
}

// SendResetEmail формирует и отправляет письмо со ссылкой сброса на адрес email.
func (n *SMTPNotifier) SendResetEmail(ctx context.Context, email, token string) error {
	body, err := RenderResetEmail(ResetLink(n.cfg.FrontendURL, token))
	if err != nil {
		return err
	}

	from := mail.Address{Name: n.cfg.FromName, Address: n.cfg.From}
	msg := strings.Join([]string{
		"From: " + from.String(),
		"To: " + email,
		"Subject: " + mime.QEncoding.Encode("utf-8", ResetEmailSubject),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		body,
	}, "\r\n")

	addr := net.JoinHostPort(n.cfg.Host, strconv.Itoa(n.cfg.Port))
	log.Printf("[Notifier] Отправка письма сброса через %s", addr)

	if err = n.send(ctx, addr, email, []byte(msg)); err != nil {
		return fmt.Errorf("ошибка отправки письма через SMTP: %w", err)
	}
	return nil
}

func (n *SMTPNotifier) send(ctx context.Context, addr, to string, msg []byte) error {
	dialer := &net.Dialer{Timeout: n.cfg.DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}

	// Ограничиваем всю сессию, чтобы зависший сервер не держал горутину
	deadline := time.Now().Add(n.cfg.SessionTimeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	_ = conn.SetDeadline(deadline)

	c, err := smtp.NewClient(conn, n.cfg.Host)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer func() { _ = c.Close() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err = c.StartTLS(&tls.Config{ServerName: n.cfg.Host, MinVersion: tls.VersionTLS12}); err != nil {
			return err
		}
	}
	if n.cfg.Username != "" {
		auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
		if err = c.Auth(auth); err != nil {
			return err
		}
	}

	if err = c.Mail(n.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	return c.Quit()
}
