package contact

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	ok := Message{Name: " Ada ", Email: "ada@example.com", Body: " hello "}
	require.NoError(t, ok.Validate())
	assert.Equal(t, "Ada", ok.Name)
	assert.Equal(t, "hello", ok.Body)

	tests := []struct {
		name string
		msg  Message
	}{
		{"missing name", Message{Email: "a@example.com", Body: "x"}},
		{"missing email", Message{Name: "a", Body: "x"}},
		{"missing body", Message{Name: "a", Email: "a@example.com"}},
		{"bad email", Message{Name: "a", Email: "not-an-email", Body: "x"}},
		{"display-name email", Message{Name: "a", Email: "A <a@example.com>", Body: "x"}},
		{"header injection", Message{Name: "a\r\nBcc: x@example.com", Email: "a@example.com", Body: "x"}},
		{"long body", Message{Name: "a", Email: "a@example.com", Body: strings.Repeat("x", maxBodyLen+1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.Validate()
			assert.True(t, errors.Is(err, ErrInvalidMessage), "got %v", err)
		})
	}
}

func TestSMTPSender(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: "587"})
		assert.ErrorIs(t, s.Send(context.Background(), Message{}), ErrNotConfigured)
	})

	t.Run("composes and sends", func(t *testing.T) {
		s := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: "587", User: "me@example.com", Pass: "pw"})

		var gotAddr, gotFrom string
		var gotTo []string
		var gotMsg []byte
		s.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
			return nil
		}

		err := s.Send(context.Background(), Message{Name: "Ada", Email: "ada@example.com", Body: "Hi there"})
		require.NoError(t, err)

		assert.Equal(t, "smtp.example.com:587", gotAddr)
		assert.Equal(t, "me@example.com", gotFrom)
		assert.Equal(t, []string{"me@example.com"}, gotTo, "recipient defaults to the SMTP user")
		assert.Contains(t, string(gotMsg), "Subject: Portfolio Contact: Ada\r\n")
		assert.Contains(t, string(gotMsg), "Reply-To: ada@example.com\r\n")
		assert.Contains(t, string(gotMsg), "Hi there")
	})

	t.Run("wraps relay errors", func(t *testing.T) {
		s := NewSMTPSender(SMTPConfig{Host: "h", Port: "25", User: "u", Pass: "p", To: "t@example.com"})
		relayErr := errors.New("relay down")
		s.sendMail = func(string, smtp.Auth, string, []string, []byte) error { return relayErr }

		err := s.Send(context.Background(), Message{Name: "a", Email: "a@example.com", Body: "x"})
		assert.ErrorIs(t, err, relayErr)
	})
}

func TestLimiter(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewLimiter(2, 2)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"), "burst exhausted")
	assert.True(t, l.Allow("b"), "limits are per client")

	now = now.Add(31 * time.Minute)
	assert.True(t, l.Allow("a"), "one token refills every half hour")

	now = now.Add(3 * time.Hour)
	assert.Equal(t, 2, l.Sweep())
}
