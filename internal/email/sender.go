package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"grievance-desk/internal/common/aws"
)

// Sender delivers a rendered message. Delivery providers are external
// collaborators; implementations stay thin.
type Sender interface {
	Send(ctx context.Context, from, to, subject, body string) (messageID string, err error)
}

// SESSender delivers through AWS SES.
type SESSender struct {
	ses *aws.SESClient
}

func NewSESSender(ses *aws.SESClient) *SESSender {
	return &SESSender{ses: ses}
}

func (s *SESSender) Send(ctx context.Context, from, to, subject, body string) (string, error) {
	return s.ses.SendSimple(ctx, from, to, subject, body)
}

// SMTPSender delivers through a plain SMTP relay.
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
}

func (s *SMTPSender) Send(_ context.Context, from, to, subject, body string) (string, error) {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	var auth smtp.Auth
	if s.Username != "" {
		auth = smtp.PlainAuth("", s.Username, s.Password, s.Host)
	}

	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(msg.String())); err != nil {
		return "", err
	}
	return fmt.Sprintf("smtp-%d", time.Now().UnixNano()), nil
}
