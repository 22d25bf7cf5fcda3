// Package notification builds and sends customer-facing emails.
package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/Jajanan-pasar/web/internal/locale"
	"github.com/Jajanan-pasar/web/internal/models"

	"github.com/sirupsen/logrus"
)

// Mailer is the outbound email transport.
type Mailer interface {
	SendMail(ctx context.Context, to, subject, htmlBody string) error
	IsConfigured() bool
}

var addFundTemplate = template.Must(template.New("add_fund").Parse(`
<p>Hi {{.Name}},</p>
<p>{{printf "%.2f" .Amount}} has been added to your wallet by our support team.</p>
{{if gt .Bonus 0.0}}<p>This includes a bonus of {{printf "%.2f" .Bonus}}.</p>{{end}}
<p>Your wallet balance is now {{printf "%.2f" .Balance}}.</p>
<p>Transaction reference: {{.TransactionID}}</p>
`))

type addFundData struct {
	Name          string
	Amount        float64
	Bonus         float64
	Balance       float64
	TransactionID string
}

// Service sends wallet notifications.
type Service struct {
	mailer Mailer
	logger *logrus.Logger
}

func NewService(mailer Mailer, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{mailer: mailer, logger: logger}
}

// NotifyFundAdded emails the customer about an admin wallet credit. Callers
// treat the send as best-effort; the returned error is for logging only.
func (s *Service) NotifyFundAdded(ctx context.Context, user *models.User, tx *models.WalletTransaction) error {
	if !s.mailer.IsConfigured() {
		s.logger.WithField("user_id", user.ID).Warn("mailer not configured, skipping add-fund email")
		return nil
	}

	var body bytes.Buffer
	err := addFundTemplate.Execute(&body, addFundData{
		Name:          user.Name,
		Amount:        tx.Credit - tx.AdminBonus,
		Bonus:         tx.AdminBonus,
		Balance:       tx.Balance,
		TransactionID: tx.TransactionID,
	})
	if err != nil {
		return fmt.Errorf("failed to render add-fund email: %w", err)
	}

	subject := locale.Translate("add_fund_mail_subject")
	if err := s.mailer.SendMail(ctx, user.Email, subject, body.String()); err != nil {
		return fmt.Errorf("failed to send add-fund email: %w", err)
	}
	return nil
}
