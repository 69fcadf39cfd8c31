package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

type SMTPNotifier struct {
	addr        string
	auth        smtp.Auth
	from        string
	frontendURL string
}

func NewSMTPNotifier(host, port, username, password, from, frontendURL string) *SMTPNotifier {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &SMTPNotifier{
		addr:        fmt.Sprintf("%s:%s", host, port),
		auth:        auth,
		from:        from,
		frontendURL: frontendURL,
	}
}

func (s *SMTPNotifier) SendConfirmation(ctx context.Context, email, name, code string) error {
	subject := "TaskHive - Confirm your account"
	body := fmt.Sprintf(`<p>Hi %s, your TaskHive account is almost ready, you only need to confirm it.</p>
<p>Visit the following link:</p>
<a href="%s/auth/confirm-account">Confirm account</a>
<p>And enter the code: <b>%s</b></p>
<p>This code expires in 10 minutes.</p>`, name, s.frontendURL, code)

	return s.send(email, subject, body)
}

func (s *SMTPNotifier) SendPasswordReset(ctx context.Context, email, name, code string) error {
	subject := "TaskHive - Reset your password"
	body := fmt.Sprintf(`<p>Hi %s, you requested a password reset.</p>
<p>Visit the following link:</p>
<a href="%s/auth/new-password">Reset password</a>
<p>And enter the code: <b>%s</b></p>
<p>This code expires in 10 minutes.</p>`, name, s.frontendURL, code)

	return s.send(email, subject, body)
}

func (s *SMTPNotifier) send(to, subject, htmlBody string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", s.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	return smtp.SendMail(s.addr, s.auth, s.from, []string{to}, []byte(msg.String()))
}
