// Package contact validates and delivers messages from the contact form.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"net/smtp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidMessage = errors.New("invalid contact message")
	ErrNotConfigured  = errors.New("SMTP credentials not configured")
)

const (
	maxNameLen = 100
	maxBodyLen = 5000
)

type Message struct {
	Name  string
	Email string
	Body  string
}

// Validate trims the fields in place and checks them.
func (m *Message) Validate() error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Body = strings.TrimSpace(m.Body)

	switch {
	case m.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidMessage)
	case utf8.RuneCountInString(m.Name) > maxNameLen:
		return fmt.Errorf("%w: name is too long", ErrInvalidMessage)
	case strings.ContainsAny(m.Name, "\r\n"):
		return fmt.Errorf("%w: name contains a line break", ErrInvalidMessage)
	case m.Email == "":
		return fmt.Errorf("%w: email is required", ErrInvalidMessage)
	case m.Body == "":
		return fmt.Errorf("%w: message is required", ErrInvalidMessage)
	case utf8.RuneCountInString(m.Body) > maxBodyLen:
		return fmt.Errorf("%w: message is too long", ErrInvalidMessage)
	}

	addr, err := mail.ParseAddress(m.Email)
	if err != nil || addr.Address != m.Email {
		return fmt.Errorf("%w: email address is not valid", ErrInvalidMessage)
	}
	return nil
}

type Sender interface {
	Send(ctx context.Context, m Message) error
}

type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// SMTPSender relays messages through an authenticated SMTP server.
type SMTPSender struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	if cfg.To == "" {
		cfg.To = cfg.User
	}
	return &SMTPSender{cfg: cfg, sendMail: smtp.SendMail}
}

func (s *SMTPSender) Configured() bool {
	return s.cfg.User != "" && s.cfg.Pass != "" && s.cfg.Host != ""
}

func (s *SMTPSender) Send(ctx context.Context, m Message) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	err := s.sendMail(s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.User, []string{s.cfg.To}, s.compose(m))
	if err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	log.Printf("[contact] email sent from %s", m.Email)
	return nil
}

func (s *SMTPSender) compose(m Message) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", m.Name)
	body := fmt.Sprintf(`New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, m.Name, m.Email, m.Body)

	return []byte("To: " + s.cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + s.cfg.User + "\r\n" +
		"Reply-To: " + m.Email + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")
}
