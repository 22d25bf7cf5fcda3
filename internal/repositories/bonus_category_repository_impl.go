package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Jajanan-pasar/web/internal/models"

	"gorm.io/gorm"
)

type bonusCategoryRepository struct {
	db *gorm.DB
}

func NewBonusCategoryRepository(db *gorm.DB) BonusCategoryRepository {
	return &bonusCategoryRepository{db: db}
}

func (r *bonusCategoryRepository) Create(bonus *models.AddFundBonusCategory) error {
	if err := r.db.Create(bonus).Error; err != nil {
		return fmt.Errorf("failed to create bonus category: %w", err)
	}
	return nil
}

func (r *bonusCategoryRepository) GetByID(id uint) (*models.AddFundBonusCategory, error) {
	var bonus models.AddFundBonusCategory
	if err := r.db.First(&bonus, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrBonusNotFound
		}
		return nil, fmt.Errorf("failed to get bonus category: %w", err)
	}
	return &bonus, nil
}

func (r *bonusCategoryRepository) Search(ctx context.Context, tokens []string, limit, offset int) ([]models.AddFundBonusCategory, int64, error) {
	var (
		rows  []models.AddFundBonusCategory
		total int64
	)

	q := r.db.WithContext(ctx).Model(&models.AddFundBonusCategory{})
	if len(tokens) > 0 {
		// Title matches ANY token as a substring; case sensitivity is left
		// to the store's LIKE semantics.
		cond := r.db.Where("title LIKE ?", "%"+tokens[0]+"%")
		for _, token := range tokens[1:] {
			cond = cond.Or("title LIKE ?", "%"+token+"%")
		}
		q = q.Where(cond)
	}

	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bonus categories: %w", err)
	}

	err := q.Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search bonus categories: %w", err)
	}
	return rows, total, nil
}

func (r *bonusCategoryRepository) Update(id uint, bonus *models.AddFundBonusCategory) (int64, error) {
	result := r.db.Model(&models.AddFundBonusCategory{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":                bonus.Title,
			"description":          bonus.Description,
			"bonus_type":           bonus.BonusType,
			"bonus_amount":         bonus.BonusAmount,
			"min_add_money_amount": bonus.MinAddMoneyAmount,
			"max_bonus_amount":     bonus.MaxBonusAmount,
			"start_date_time":      bonus.StartDateTime,
			"end_date_time":        bonus.EndDateTime,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update bonus category: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *bonusCategoryRepository) UpdateStatus(id uint, active bool) (int64, error) {
	result := r.db.Model(&models.AddFundBonusCategory{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update bonus status: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *bonusCategoryRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.AddFundBonusCategory{}, id)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete bonus category: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *bonusCategoryRepository) ActiveAt(t time.Time, amount float64) ([]models.AddFundBonusCategory, error) {
	var rows []models.AddFundBonusCategory
	err := r.db.
		Where("is_active = ?", true).
		Where("start_date_time <= ?", t).
		Where("end_date_time IS NULL OR end_date_time >= ?", t).
		Where("min_add_money_amount <= ?", amount).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load active bonus categories: %w", err)
	}
	return rows, nil
}
