// Package locale resolves user-facing message keys to translated strings.
// The admin panel ships English only; additional languages plug in by
// registering another message map.
package locale

var messages = map[string]string{
	"failed_to_create_transaction":      "Failed to create transaction",
	"wallet_bonus_added_successfully":   "Wallet bonus added successfully",
	"wallet_bonus_updated_successfully": "Wallet bonus updated successfully",
	"status_updated_successfully":       "Status updated successfully",
	"bonus_removed_successfully":        "Bonus removed successfully",
	"bonus_not_found":                   "Bonus not found",
	"customer_not_found":                "Customer not found",
	"add_fund_mail_subject":             "Funds added to your wallet",
}

// Translate returns the message for key, or the key itself when no
// translation is registered so missing entries stay visible.
func Translate(key string) string {
	if msg, ok := messages[key]; ok {
		return msg
	}
	return key
}
