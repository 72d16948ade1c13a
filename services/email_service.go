// File: /services/email_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"peerza-api/config"
)

type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
}

func NewEmailService(cfg *config.Config) *EmailService {
	service := &EmailService{config: cfg}
	if cfg.SMTPHost != "" {
		service.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	}
	return service
}

// Enabled reports whether SMTP is configured. Registration works either
// way; the welcome mail is best effort.
func (es *EmailService) Enabled() bool {
	return es != nil && es.dialer != nil
}

func (es *EmailService) SendWelcomeEmail(email, username string) error {
	if !es.Enabled() {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Welcome to Peerza")

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Welcome, %s!</h2>
    <p>Your Peerza account is ready. Add a skill you can teach and one
    you want to learn, then search for peers to swap sessions with.</p>
    <p>Happy learning,<br>The Peerza Team</p>
</body>
</html>`, username)

	m.SetBody("text/html", htmlBody)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	logrus.WithField("email", email).Info("welcome email sent")
	return nil
}
