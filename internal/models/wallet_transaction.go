package models

import (
	"time"
)

// Transaction types recorded against customer wallets.
const (
	TransactionTypeAddFundByAdmin = "add_fund_by_admin"
	TransactionTypeAddFund        = "add_fund"
	TransactionTypeOrderPlace     = "order_place"
	TransactionTypeOrderRefund    = "order_refund"
	TransactionTypeLoyaltyPoint   = "loyalty_point_to_wallet"
)

// WalletTransaction is an immutable record of a credit or debit against a
// customer's stored balance. Exactly one of Credit/Debit is meaningful per
// row; aggregation sums them independently.
type WalletTransaction struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	TransactionID   string    `gorm:"uniqueIndex;not null" json:"transaction_id"`
	TransactionType string    `gorm:"index;not null" json:"transaction_type"`
	Credit          float64   `gorm:"default:0" json:"credit"`
	Debit           float64   `gorm:"default:0" json:"debit"`
	AdminBonus      float64   `gorm:"default:0" json:"admin_bonus"`
	Balance         float64   `gorm:"default:0" json:"balance"`
	Reference       string    `json:"reference"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
