package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet holds one user's balance of one cryptocurrency
type Wallet struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	UserID    uint64          `gorm:"not null;uniqueIndex:idx_wallet_user_crypto,priority:1"`
	CryptoID  uint64          `gorm:"not null;uniqueIndex:idx_wallet_user_crypto,priority:2;index"`
	Balance   decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	User   *User           `gorm:"foreignKey:UserID;references:ID"`
	Crypto *Cryptocurrency `gorm:"foreignKey:CryptoID;references:ID"`
}

// TableName specifies the table name for Wallet
func (Wallet) TableName() string {
	return "wallets"
}
