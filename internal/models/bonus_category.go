package models

import (
	"time"
)

// Bonus types for add-fund promotional rules.
const (
	BonusTypePercentage = "percentage"
	BonusTypeFixed      = "fixed"
)

// AddFundBonusCategory is a promotional rule granting extra wallet credit
// when a deposit meets the configured thresholds inside the rule's window.
type AddFundBonusCategory struct {
	ID                uint       `gorm:"primarykey" json:"id"`
	Title             string     `gorm:"not null" json:"title"`
	Description       string     `json:"description"`
	BonusType         string     `gorm:"not null" json:"bonus_type"`
	BonusAmount       float64    `gorm:"not null" json:"bonus_amount"`
	MinAddMoneyAmount float64    `gorm:"not null" json:"min_add_money_amount"`
	MaxBonusAmount    *float64   `json:"max_bonus_amount"`
	StartDateTime     time.Time  `gorm:"not null" json:"start_date_time"`
	EndDateTime       *time.Time `json:"end_date_time"`
	IsActive          bool       `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time  `json:"created_at"`
}

// AppliesTo reports whether the rule is live at t and the deposit amount
// meets the rule's minimum.
func (b *AddFundBonusCategory) AppliesTo(amount float64, t time.Time) bool {
	if !b.IsActive || amount < b.MinAddMoneyAmount {
		return false
	}
	if t.Before(b.StartDateTime) {
		return false
	}
	if b.EndDateTime != nil && t.After(*b.EndDateTime) {
		return false
	}
	return true
}

// BonusFor computes the bonus credit granted for the given deposit amount.
// Percentage bonuses are capped at MaxBonusAmount when one is set.
func (b *AddFundBonusCategory) BonusFor(amount float64) float64 {
	if b.BonusType == BonusTypePercentage {
		bonus := amount * b.BonusAmount / 100
		if b.MaxBonusAmount != nil && bonus > *b.MaxBonusAmount {
			bonus = *b.MaxBonusAmount
		}
		return bonus
	}
	return b.BonusAmount
}
