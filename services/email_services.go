package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Ayush5112006/dduhack-sub002/config"
)

type EmailService struct {
	host     string
	port     string
	username string
	password string
}

func NewEmailService() *EmailService {
	return &EmailService{
		host:     config.MailHost,
		port:     config.MailPort,
		username: config.MailUsername,
		password: config.MailPassword,
	}
}

// DefaultNotifier returns the SMTP notifier, or nil when mail is not
// configured so callers silently skip delivery.
func DefaultNotifier() Notifier {
	if config.MailHost == "" {
		return nil
	}
	return NewEmailService()
}

// Send delivers a notification email with the shared layout
func (s *EmailService) Send(to, subject, body string) error {
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	htmlTemplate := strings.TrimSpace(`
To: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: %s

<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
</head>
<body style="background-color: #f9fafb; margin: 0; padding: 0; font-family: Arial, sans-serif;">
    <table width="100%%" cellpadding="0" cellspacing="0" style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <tr>
            <td style="background: linear-gradient(to right, #1a1a1a, #2d2d2d); padding: 40px 20px; text-align: center; border-radius: 12px;">
                <h1 style="color: #ffffff; margin-bottom: 30px; font-size: 24px;">%s</h1>
                <p style="color: #9ca3af; margin-bottom: 30px; font-size: 16px;">%s</p>
                <a href="%s" style="display: inline-block; background-color: #d97706; color: #ffffff; text-decoration: none; padding: 12px 30px; border-radius: 25px; font-weight: bold; margin-bottom: 30px;">Open Dashboard</a>
            </td>
        </tr>
        <tr>
            <td style="text-align: center; padding-top: 20px;">
                <p style="color: #6b7280; font-size: 14px;">© 2025 DDUHack. All rights reserved.</p>
            </td>
        </tr>
    </table>
</body>
</html>
`)

	msg := []byte(fmt.Sprintf(htmlTemplate, to, subject, subject, subject, body, config.ClientUrl))
	return smtp.SendMail(s.host+":"+s.port, auth, s.username, []string{to}, msg)
}

// SendPasswordResetEmail sends the reset link for a requested password reset
func (s *EmailService) SendPasswordResetEmail(to, resetToken string) error {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", config.ClientUrl, resetToken)
	body := fmt.Sprintf(`Click the link below to reset your password. This link will expire in 1 hour.<br><a href="%s">Reset Password</a>`, resetLink)
	return s.Send(to, "Reset Your DDUHack Password", body)
}
