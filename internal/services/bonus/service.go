// Package bonus manages add-fund bonus promotional rules.
package bonus

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Jajanan-pasar/web/internal/models"
	"github.com/Jajanan-pasar/web/internal/repositories"

	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned by Get when no rule matches the ID.
var ErrNotFound = errors.New("bonus category not found")

// Input carries the editable fields of a bonus rule. Required-field checks
// happen at the validation boundary; the service persists what it is given.
type Input struct {
	Title             string
	Description       string
	BonusType         string
	BonusAmount       float64
	MinAddMoneyAmount float64
	MaxBonusAmount    *float64
	StartDateTime     time.Time
	EndDateTime       *time.Time
}

// Service defines CRUD over add-fund bonus rules.
type Service interface {
	// List returns rules newest-first, optionally narrowed by a free-text
	// search. The search splits on whitespace and matches titles containing
	// ANY token.
	List(ctx context.Context, search string, limit, offset int) ([]models.AddFundBonusCategory, int64, error)

	// Create inserts a new rule with a server-assigned creation timestamp.
	// is_active is left to the schema default.
	Create(ctx context.Context, in Input) (*models.AddFundBonusCategory, error)

	// Get fetches a single rule, or ErrNotFound.
	Get(ctx context.Context, id uint) (*models.AddFundBonusCategory, error)

	// Update overwrites the rule's editable fields. Missing IDs are a silent
	// no-op, preserving the original contract.
	Update(ctx context.Context, id uint, in Input) error

	// SetStatus flips is_active unconditionally. Missing IDs are a silent
	// no-op.
	SetStatus(ctx context.Context, id uint, active bool) error

	// Delete removes the rule. Deleting a missing ID is a silent no-op.
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo   repositories.BonusCategoryRepository
	logger *logrus.Logger
}

// NewService creates a new bonus rule service.
func NewService(repo repositories.BonusCategoryRepository, logger *logrus.Logger) Service {
	if repo == nil {
		panic("bonus repository is required")
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &service{repo: repo, logger: logger}
}

func (s *service) List(ctx context.Context, search string, limit, offset int) ([]models.AddFundBonusCategory, int64, error) {
	tokens := strings.Fields(search)
	rows, total, err := s.repo.Search(ctx, tokens, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bonus categories: %w", err)
	}
	return rows, total, nil
}

func (s *service) Create(ctx context.Context, in Input) (*models.AddFundBonusCategory, error) {
	bonus := &models.AddFundBonusCategory{
		Title:             in.Title,
		Description:       in.Description,
		BonusType:         in.BonusType,
		BonusAmount:       in.BonusAmount,
		MinAddMoneyAmount: in.MinAddMoneyAmount,
		MaxBonusAmount:    in.MaxBonusAmount,
		StartDateTime:     in.StartDateTime,
		EndDateTime:       in.EndDateTime,
	}
	if err := s.repo.Create(bonus); err != nil {
		return nil, err
	}
	return bonus, nil
}

func (s *service) Get(ctx context.Context, id uint) (*models.AddFundBonusCategory, error) {
	bonus, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrBonusNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return bonus, nil
}

func (s *service) Update(ctx context.Context, id uint, in Input) error {
	affected, err := s.repo.Update(id, &models.AddFundBonusCategory{
		Title:             in.Title,
		Description:       in.Description,
		BonusType:         in.BonusType,
		BonusAmount:       in.BonusAmount,
		MinAddMoneyAmount: in.MinAddMoneyAmount,
		MaxBonusAmount:    in.MaxBonusAmount,
		StartDateTime:     in.StartDateTime,
		EndDateTime:       in.EndDateTime,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		s.logger.WithField("bonus_id", id).Debug("update matched no bonus rule")
	}
	return nil
}

func (s *service) SetStatus(ctx context.Context, id uint, active bool) error {
	affected, err := s.repo.UpdateStatus(id, active)
	if err != nil {
		return err
	}
	if affected == 0 {
		s.logger.WithField("bonus_id", id).Debug("status toggle matched no bonus rule")
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	affected, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		s.logger.WithField("bonus_id", id).Debug("delete matched no bonus rule")
	}
	return nil
}
