package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddFundBonusCategoryAppliesTo(t *testing.T) {
	now := time.Now()
	end := now.Add(time.Hour)

	base := AddFundBonusCategory{
		BonusType:         BonusTypeFixed,
		BonusAmount:       10,
		MinAddMoneyAmount: 100,
		StartDateTime:     now.Add(-time.Hour),
		EndDateTime:       &end,
		IsActive:          true,
	}

	tests := []struct {
		name   string
		mutate func(*AddFundBonusCategory)
		amount float64
		want   bool
	}{
		{"inside window and above minimum", nil, 150, true},
		{"exactly the minimum", nil, 100, true},
		{"below minimum", nil, 99.99, false},
		{"inactive", func(b *AddFundBonusCategory) { b.IsActive = false }, 150, false},
		{"not started yet", func(b *AddFundBonusCategory) { b.StartDateTime = now.Add(time.Minute) }, 150, false},
		{"already ended", func(b *AddFundBonusCategory) {
			past := now.Add(-time.Minute)
			b.EndDateTime = &past
		}, 150, false},
		{"open-ended window", func(b *AddFundBonusCategory) { b.EndDateTime = nil }, 150, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := base
			if tt.mutate != nil {
				tt.mutate(&b)
			}
			assert.Equal(t, tt.want, b.AppliesTo(tt.amount, now))
		})
	}
}

func TestAddFundBonusCategoryBonusFor(t *testing.T) {
	t.Run("fixed", func(t *testing.T) {
		b := AddFundBonusCategory{BonusType: BonusTypeFixed, BonusAmount: 25}
		assert.Equal(t, 25.0, b.BonusFor(1000))
	})

	t.Run("percentage", func(t *testing.T) {
		b := AddFundBonusCategory{BonusType: BonusTypePercentage, BonusAmount: 10}
		assert.Equal(t, 50.0, b.BonusFor(500))
	})

	t.Run("percentage capped", func(t *testing.T) {
		bonusCap := 30.0
		b := AddFundBonusCategory{BonusType: BonusTypePercentage, BonusAmount: 10, MaxBonusAmount: &bonusCap}
		assert.Equal(t, 30.0, b.BonusFor(500))
	})
}
