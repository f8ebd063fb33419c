// Package mail sends transactional account emails over SMTP.
package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/movian/movian-api/internal/pkg/config"
)

// SMTPMailer delivers verification and password-reset mail. Links point at
// the configured frontend base URL.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendVerificationEmail(to, username, token string) error {
	link := fmt.Sprintf("%s/verify-email/%s", strings.TrimRight(m.cfg.AppBaseURL, "/"), token)
	body := fmt.Sprintf(`
	<html>
	<body>
		<h2>Welcome to Movian, %s!</h2>
		<p>Confirm your email address to activate your account:</p>
		<p><a href="%s">Verify my email</a></p>
		<p>This link expires in 24 hours. If a newer registration was made with
		this address, only the most recent link works.</p>
		<p>If you didn't sign up, you can ignore this email.</p>
	</body>
	</html>
	`, username, link)

	return m.send(to, "Verify your Movian account", body)
}

func (m *SMTPMailer) SendResetEmail(to, username, token string) error {
	link := fmt.Sprintf("%s/reset-password/%s", strings.TrimRight(m.cfg.AppBaseURL, "/"), token)
	body := fmt.Sprintf(`
	<html>
	<body>
		<h2>Password Reset</h2>
		<p>Hi %s, a password reset was requested for your account. Use the link
		below to choose a new password:</p>
		<p><a href="%s">Reset my password</a></p>
		<p>This link expires in 1 hour.</p>
		<p>If you didn't request this, please ignore this email.</p>
	</body>
	</html>
	`, username, link)

	return m.send(to, "Reset your Movian password", body)
}

func (m *SMTPMailer) send(to, subject, body string) error {
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	headers := []string{
		"From: " + m.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="utf-8"`,
	}

	var message strings.Builder
	message.WriteString(strings.Join(headers, "\r\n"))
	message.WriteString("\r\n\r\n")
	message.WriteString(body)

	return smtp.SendMail(
		m.cfg.Host+":"+m.cfg.Port,
		auth,
		m.cfg.From,
		[]string{to},
		[]byte(message.String()),
	)
}
