package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Jajanan-pasar/web/internal/models"
)

var ErrBonusNotFound = errors.New("bonus category not found")

// BonusCategoryRepository defines CRUD over add-fund bonus rules.
type BonusCategoryRepository interface {
	// Create inserts a new bonus rule.
	Create(bonus *models.AddFundBonusCategory) error

	// GetByID retrieves a single rule by ID.
	GetByID(id uint) (*models.AddFundBonusCategory, error)

	// Search lists rules ordered by ID descending. When tokens is non-empty
	// a rule matches if its title contains ANY token as a substring.
	Search(ctx context.Context, tokens []string, limit, offset int) ([]models.AddFundBonusCategory, int64, error)

	// Update overwrites the editable fields of the rule matched by ID.
	// CreatedAt is never modified. Returns the number of rows affected.
	Update(id uint, bonus *models.AddFundBonusCategory) (int64, error)

	// UpdateStatus sets is_active unconditionally. Returns rows affected;
	// zero means the ID matched nothing.
	UpdateStatus(id uint, active bool) (int64, error)

	// Delete removes the rule. Returns rows affected; zero means no-op.
	Delete(id uint) (int64, error)

	// ActiveAt returns rules whose window covers t and whose minimum deposit
	// is at most amount.
	ActiveAt(t time.Time, amount float64) ([]models.AddFundBonusCategory, error)
}
