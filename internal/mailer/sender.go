// Package mailer delivers outbound email over SMTP.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	// From is the SMTP envelope sender. This should be a raw mailbox address.
	From string
	// FromName is an optional display name used only for the message header.
	FromName string
}

// Sender sends HTML mail through a single SMTP endpoint.
type Sender struct {
	config Config
	auth   smtp.Auth
}

func NewSender(config Config) *Sender {
	var auth smtp.Auth
	if config.User != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.User, config.Password, config.Host)
	}

	return &Sender{
		config: config,
		auth:   auth,
	}
}

// IsConfigured reports whether enough settings are present to attempt a send.
func (s *Sender) IsConfigured() bool {
	return s.config.Host != "" && s.config.From != ""
}

func (s *Sender) SendMail(ctx context.Context, to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%s", s.config.Host, s.config.Port)

	fromHeader := s.config.From
	if strings.TrimSpace(s.config.FromName) != "" {
		fromHeader = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.From)
	}

	fromHeader = sanitizeHeader(fromHeader)
	to = sanitizeHeader(to)
	subject = sanitizeHeader(subject)

	msg := []string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=UTF-8",
		"",
		htmlBody,
	}

	return smtp.SendMail(addr, s.auth, s.config.From, []string{to}, []byte(strings.Join(msg, "\r\n")))
}

func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")
	return s
}
