package repositories

import (
	"context"
	"fmt"

	"github.com/Jajanan-pasar/web/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type walletTransactionRepository struct {
	db *gorm.DB
}

func NewWalletTransactionRepository(db *gorm.DB) WalletTransactionRepository {
	return &walletTransactionRepository{db: db}
}

func (r *walletTransactionRepository) Create(tx *models.WalletTransaction) error {
	if err := r.db.Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create wallet transaction: %w", err)
	}
	return nil
}

// applyFilter translates the filter spec into AND-combined where clauses.
// Absent fields impose no constraint.
func applyFilter(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.From != nil && f.To != nil {
		q = q.Where("created_at BETWEEN ? AND ?", *f.From, *f.To)
	}
	if f.TransactionType != "" {
		q = q.Where("transaction_type = ?", f.TransactionType)
	}
	if f.CustomerID != 0 {
		q = q.Where("user_id = ?", f.CustomerID)
	}
	return q
}

func (r *walletTransactionRepository) Totals(ctx context.Context, filter TransactionFilter) (*TransactionTotals, error) {
	var totals TransactionTotals
	q := applyFilter(r.db.WithContext(ctx).Model(&models.WalletTransaction{}), filter)
	err := q.Select("COALESCE(SUM(credit), 0) AS total_credit, COALESCE(SUM(debit), 0) AS total_debit").
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate wallet transactions: %w", err)
	}
	return &totals, nil
}

func (r *walletTransactionRepository) List(ctx context.Context, filter TransactionFilter, limit, offset int) ([]models.WalletTransaction, int64, error) {
	var (
		rows  []models.WalletTransaction
		total int64
	)

	q := applyFilter(r.db.WithContext(ctx).Model(&models.WalletTransaction{}), filter)
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count wallet transactions: %w", err)
	}

	err := q.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list wallet transactions: %w", err)
	}
	return rows, total, nil
}

func (r *walletTransactionRepository) GetUserForUpdate(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to lock user row: %w", err)
	}
	return &user, nil
}

func (r *walletTransactionRepository) UpdateUserBalance(user *models.User) error {
	err := r.db.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("wallet_balance", user.WalletBalance).Error
	if err != nil {
		return fmt.Errorf("failed to update wallet balance: %w", err)
	}
	return nil
}

func (r *walletTransactionRepository) ExecuteInTransaction(fn func(WalletTransactionRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&walletTransactionRepository{db: tx})
	})
}
