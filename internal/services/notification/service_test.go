package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/Jajanan-pasar/web/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type captureMailer struct {
	configured bool
	sendErr    error

	to      string
	subject string
	body    string
	sent    bool
}

func (m *captureMailer) IsConfigured() bool { return m.configured }

func (m *captureMailer) SendMail(ctx context.Context, to, subject, htmlBody string) error {
	m.sent = true
	m.to = to
	m.subject = subject
	m.body = htmlBody
	return m.sendErr
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestNotifyFundAdded(t *testing.T) {
	user := &models.User{ID: 7, Name: "Sari", Email: "sari@example.com"}
	tx := &models.WalletTransaction{
		TransactionID: "abc-123",
		Credit:        110,
		AdminBonus:    10,
		Balance:       160,
	}

	t.Run("sends rendered email", func(t *testing.T) {
		mailer := &captureMailer{configured: true}
		s := NewService(mailer, quietLogger())

		err := s.NotifyFundAdded(context.Background(), user, tx)

		assert.NoError(t, err)
		assert.True(t, mailer.sent)
		assert.Equal(t, "sari@example.com", mailer.to)
		assert.Equal(t, "Funds added to your wallet", mailer.subject)
		assert.Contains(t, mailer.body, "Sari")
		assert.Contains(t, mailer.body, "100.00")
		assert.Contains(t, mailer.body, "bonus of 10.00")
		assert.Contains(t, mailer.body, "abc-123")
	})

	t.Run("unconfigured mailer skips without error", func(t *testing.T) {
		mailer := &captureMailer{configured: false}
		s := NewService(mailer, quietLogger())

		err := s.NotifyFundAdded(context.Background(), user, tx)

		assert.NoError(t, err)
		assert.False(t, mailer.sent)
	})

	t.Run("transport failure is reported to the caller for logging", func(t *testing.T) {
		mailer := &captureMailer{configured: true, sendErr: errors.New("smtp unreachable")}
		s := NewService(mailer, quietLogger())

		err := s.NotifyFundAdded(context.Background(), user, tx)

		assert.Error(t, err)
	})
}
