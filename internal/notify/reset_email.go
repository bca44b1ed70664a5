package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"
)

// ResetEmailSubject - тема письма сброса пароля.
const ResetEmailSubject = "Сброс пароля"

var resetEmailTemplate = template.Must(template.New("reset-email").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #4f46e5;">Сброс пароля</h2>
  <p>Здравствуйте!</p>
  <p>Чтобы задать новый пароль, перейдите по ссылке:</p>
  <p style="margin: 20px 0;">
    <a href="{{.Link}}" style="background-color: #4f46e5; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Сбросить пароль</a>
  </p>
  <p><strong>Важно:</strong> ссылка действует {{.ValidFor}}.</p>
  <p style="color: #666; font-size: 0.9em;">Если вы не запрашивали сброс пароля, просто проигнорируйте это письмо.</p>
</div>`))

// ResetLink строит ссылку на страницу сброса пароля фронтенда: <frontendURL>/reset-password/<token>.
func ResetLink(frontendURL, token string) string {
	return strings.TrimRight(frontendURL, "/") + "/reset-password/" + url.PathEscape(token)
}

// RenderResetEmail возвращает HTML-тело письма со ссылкой link.
func RenderResetEmail(link string) (string, error) {
	var buf bytes.Buffer
	err := resetEmailTemplate.Execute(&buf, map[string]string{
		"Link":     link,
		"ValidFor": "1 час",
	})
	if err != nil {
		return "", fmt.Errorf("ошибка формирования письма: %w", err)
	}
	return buf.String(), nil
}
