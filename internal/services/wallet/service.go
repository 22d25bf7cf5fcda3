// Package wallet implements admin operations over customer wallets:
// crediting funds and reporting on the transaction ledger.
package wallet

import (
	"context"
	"fmt"
	"time"

	"github.com/Jajanan-pasar/web/internal/models"
	"github.com/Jajanan-pasar/web/internal/repositories"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Service defines the admin wallet operations.
type Service interface {
	// AddFundByAdmin credits a customer wallet, applying any active add-fund
	// bonus, and records the ledger row. The balance mutation and the row
	// insert commit atomically.
	AddFundByAdmin(ctx context.Context, customerID uint, amount float64, reference string) (*models.WalletTransaction, error)

	// Report aggregates and lists wallet transactions for the admin report.
	Report(ctx context.Context, filter ReportFilter, limit, offset int) (*Report, error)
}

// Notifier delivers best-effort customer notifications.
type Notifier interface {
	NotifyFundAdded(ctx context.Context, user *models.User, tx *models.WalletTransaction) error
}

type service struct {
	ledger   repositories.WalletTransactionRepository
	users    repositories.UserRepository
	bonuses  repositories.BonusCategoryRepository
	settings repositories.BusinessSettingRepository
	notifier Notifier
	metrics  MetricsCollector
	logger   *logrus.Logger
}

// NewService creates a new wallet service.
func NewService(
	ledger repositories.WalletTransactionRepository,
	users repositories.UserRepository,
	bonuses repositories.BonusCategoryRepository,
	settings repositories.BusinessSettingRepository,
	notifier Notifier,
	metrics MetricsCollector,
	logger *logrus.Logger,
) Service {
	if ledger == nil {
		panic("ledger repository is required")
	}
	if users == nil {
		panic("user repository is required")
	}
	if bonuses == nil {
		panic("bonus repository is required")
	}
	if settings == nil {
		panic("setting repository is required")
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	if logger == nil {
		logger = logrus.New()
	}

	return &service{
		ledger:   ledger,
		users:    users,
		bonuses:  bonuses,
		settings: settings,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

func (s *service) AddFundByAdmin(ctx context.Context, customerID uint, amount float64, reference string) (*models.WalletTransaction, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration("add_fund_by_admin", time.Since(start))
	}()

	if amount < MinAddFundAmount || amount > MaxAddFundAmount {
		s.metrics.RecordError("add_fund_by_admin", "invalid_amount")
		return nil, ErrInvalidAmount
	}

	exists, err := s.users.Exists(customerID)
	if err != nil {
		s.metrics.RecordError("add_fund_by_admin", "user_lookup")
		return nil, fmt.Errorf("failed to check customer: %w", err)
	}
	if !exists {
		s.metrics.RecordError("add_fund_by_admin", "customer_not_found")
		return nil, ErrCustomerNotFound
	}

	bonus := s.applicableBonus(amount, time.Now())

	var (
		tx   *models.WalletTransaction
		user *models.User
	)
	err = s.ledger.ExecuteInTransaction(func(repo repositories.WalletTransactionRepository) error {
		user, err = repo.GetUserForUpdate(customerID)
		if err != nil {
			return err
		}

		oldBalance := user.WalletBalance
		user.WalletBalance += amount + bonus
		if err := repo.UpdateUserBalance(user); err != nil {
			return err
		}

		tx = &models.WalletTransaction{
			UserID:          user.ID,
			TransactionID:   uuid.NewString(),
			TransactionType: models.TransactionTypeAddFundByAdmin,
			Credit:          amount + bonus,
			AdminBonus:      bonus,
			Balance:         user.WalletBalance,
			Reference:       reference,
		}
		if err := repo.Create(tx); err != nil {
			return err
		}

		s.metrics.RecordBalanceChange(user.ID, oldBalance, user.WalletBalance)
		return nil
	})
	if err != nil {
		s.logger.WithError(err).WithField("customer_id", customerID).Error("add fund failed")
		s.metrics.RecordOperationResult("add_fund_by_admin", "failure")
		return nil, ErrCreateFailed
	}

	s.metrics.RecordOperationResult("add_fund_by_admin", "success")
	s.metrics.RecordTransactionVolume(tx.Credit)

	if s.notifier != nil {
		// Fire-and-forget: the email must never delay or fail the response.
		go func(user models.User, tx models.WalletTransaction) {
			if err := s.notifier.NotifyFundAdded(context.Background(), &user, &tx); err != nil {
				s.logger.WithError(err).WithField("user_id", user.ID).Warn("add-fund notification failed")
			}
		}(*user, *tx)
	}

	return tx, nil
}

// applicableBonus picks the highest-value active bonus for the deposit.
// Bonus lookup failures degrade to no bonus rather than failing the credit.
func (s *service) applicableBonus(amount float64, at time.Time) float64 {
	rules, err := s.bonuses.ActiveAt(at, amount)
	if err != nil {
		s.logger.WithError(err).Warn("bonus lookup failed, crediting without bonus")
		return 0
	}

	var best float64
	for i := range rules {
		if !rules[i].AppliesTo(amount, at) {
			continue
		}
		if b := rules[i].BonusFor(amount); b > best {
			best = b
		}
	}
	return best
}

func (s *service) Report(ctx context.Context, filter ReportFilter, limit, offset int) (*Report, error) {
	spec := filter.Spec()

	totals, err := s.ledger.Totals(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate report: %w", err)
	}

	rows, total, err := s.ledger.List(ctx, spec, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list report transactions: %w", err)
	}

	walletEnabled, err := s.settings.WalletStatus(ctx)
	if err != nil {
		// The flag is display-only; a lookup failure should not break the
		// report itself.
		s.logger.WithError(err).Warn("wallet status lookup failed")
	}

	return &Report{
		Totals:        *totals,
		Transactions:  rows,
		Total:         total,
		WalletEnabled: walletEnabled,
	}, nil
}
