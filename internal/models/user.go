package models

import (
	"time"
)

type User struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	Name          string  `gorm:"not null" json:"name"`
	Email         string  `gorm:"uniqueIndex;not null" json:"email"`
	Phone         string  `gorm:"uniqueIndex;not null" json:"phone"`
	WalletBalance float64 `gorm:"default:0" json:"wallet_balance"`
	Status        string  `gorm:"default:'active'" json:"status"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
