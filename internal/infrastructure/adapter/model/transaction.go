package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for recorded crypto movements
type Transaction struct {
	ID         uint64          `gorm:"primaryKey;autoIncrement"`
	FromUserID uint64          `gorm:"not null;index"`
	ToUserID   uint64          `gorm:"not null;index"`
	CryptoID   uint64          `gorm:"not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	TxType     string          `gorm:"size:20;not null;default:TRANSFER"`
	CreatedAt  time.Time       `gorm:"not null;index"`

	// Define relationships
	FromUser *User           `gorm:"foreignKey:FromUserID;references:ID"`
	ToUser   *User           `gorm:"foreignKey:ToUserID;references:ID"`
	Crypto   *Cryptocurrency `gorm:"foreignKey:CryptoID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
