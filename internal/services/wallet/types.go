package wallet

import (
	"time"

	"github.com/Jajanan-pasar/web/internal/models"
	"github.com/Jajanan-pasar/web/internal/repositories"
)

// Admin add-fund amount bounds.
const (
	MinAddFundAmount = 0.01
	MaxAddFundAmount = 10_000_000
)

const dateLayout = "2006-01-02"

// ReportFilter carries the raw report query parameters. Dates arrive as
// day-granularity strings; values that fail to parse behave as absent.
type ReportFilter struct {
	From            string
	To              string
	TransactionType string
	CustomerID      uint
}

// Spec converts the raw filter into the repository filter, widening the date
// range to full days (from 00:00:00 through to 23:59:59). The range only
// applies when both ends parse.
func (f ReportFilter) Spec() repositories.TransactionFilter {
	spec := repositories.TransactionFilter{
		TransactionType: f.TransactionType,
		CustomerID:      f.CustomerID,
	}

	if f.From != "" && f.To != "" {
		from, errFrom := time.ParseInLocation(dateLayout, f.From, time.Local)
		to, errTo := time.ParseInLocation(dateLayout, f.To, time.Local)
		if errFrom == nil && errTo == nil {
			end := to.Add(24*time.Hour - time.Second)
			spec.From = &from
			spec.To = &end
		}
	}
	return spec
}

// Report is the wallet report page's data contract: aggregate totals over
// the whole filter, one page of transactions, and the storefront wallet flag.
type Report struct {
	Totals        repositories.TransactionTotals `json:"totals"`
	Transactions  []models.WalletTransaction     `json:"transactions"`
	Total         int64                          `json:"total"`
	WalletEnabled bool                           `json:"wallet_status"`
}

// MetricsCollector defines the interface for collecting wallet metrics.
type MetricsCollector interface {
	RecordOperationDuration(operation string, duration time.Duration)
	RecordOperationResult(operation, result string)
	RecordError(operation, errType string)
	RecordBalanceChange(userID uint, oldBalance, newBalance float64)
	RecordTransactionVolume(amount float64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordOperationDuration(string, time.Duration) {}
func (n *NoopMetricsCollector) RecordOperationResult(string, string)          {}
func (n *NoopMetricsCollector) RecordError(string, string)                    {}
func (n *NoopMetricsCollector) RecordBalanceChange(uint, float64, float64)    {}
func (n *NoopMetricsCollector) RecordTransactionVolume(float64)               {}
