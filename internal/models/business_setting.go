package models

// Well-known business setting keys.
const (
	SettingWalletStatus = "wallet_status"
)

// BusinessSetting is a global key-value configuration row keyed by Type.
// This subsystem only reads settings, it never mutates them.
type BusinessSetting struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Type  string `gorm:"uniqueIndex;not null" json:"type"`
	Value string `json:"value"`
}
