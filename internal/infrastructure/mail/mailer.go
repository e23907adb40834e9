package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/Taller-api/internal/application/notification"
	"github.com/jhoicas/Taller-api/pkg/config"
)

// Mailer envía correos por SMTP. Con el puerto 465 gomail usa TLS implícito.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer construye el mailer con la configuración SMTP.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.SSL = cfg.Port == 465
	return &Mailer{dialer: d, from: cfg.From}
}

// Send envía un correo HTML de forma síncrona.
func (m *Mailer) Send(msg notification.EmailMessage) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", msg.To)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/html", msg.HTML)

	if err := m.dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("enviar correo a %s: %w", msg.To, err)
	}
	return nil
}
