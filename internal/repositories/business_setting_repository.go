package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Jajanan-pasar/web/internal/models"
	"github.com/Jajanan-pasar/web/internal/repositories/cache"

	"gorm.io/gorm"
)

var ErrSettingNotFound = errors.New("business setting not found")

const settingCacheTTL = 5 * time.Minute

// BusinessSettingRepository reads global key-value configuration rows.
// This subsystem never writes settings.
type BusinessSettingRepository interface {
	// GetByType retrieves the setting row keyed by type.
	GetByType(ctx context.Context, settingType string) (*models.BusinessSetting, error)

	// WalletStatus reports whether the customer-facing wallet is enabled.
	WalletStatus(ctx context.Context) (bool, error)
}

type businessSettingRepository struct {
	db    *gorm.DB
	cache *cache.Service
}

// NewBusinessSettingRepository builds a setting repository. The cache is
// optional; pass nil to always hit the database.
func NewBusinessSettingRepository(db *gorm.DB, cacheService *cache.Service) BusinessSettingRepository {
	return &businessSettingRepository{db: db, cache: cacheService}
}

func (r *businessSettingRepository) GetByType(ctx context.Context, settingType string) (*models.BusinessSetting, error) {
	var setting models.BusinessSetting

	if r.cache != nil {
		key := r.cache.GenerateKey("business_setting", "type", settingType)
		if found, err := r.cache.Get(ctx, key, &setting); err == nil && found {
			return &setting, nil
		}
	}

	err := r.db.WithContext(ctx).Where("type = ?", settingType).First(&setting).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to get business setting: %w", err)
	}

	if r.cache != nil {
		key := r.cache.GenerateKey("business_setting", "type", settingType)
		// Cache write failures are non-fatal; the next read falls through
		// to the database.
		_ = r.cache.SetWithTTL(ctx, key, &setting, settingCacheTTL)
	}
	return &setting, nil
}

func (r *businessSettingRepository) WalletStatus(ctx context.Context) (bool, error) {
	setting, err := r.GetByType(ctx, models.SettingWalletStatus)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return false, nil
		}
		return false, err
	}
	return setting.Value == "1" || setting.Value == "true", nil
}
