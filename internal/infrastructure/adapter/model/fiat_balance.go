package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// FiatBalance holds one user's balance in one fiat currency
type FiatBalance struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	UserID    uint64          `gorm:"not null;uniqueIndex:idx_fiat_user_currency,priority:1"`
	Currency  string          `gorm:"size:3;not null;uniqueIndex:idx_fiat_user_currency,priority:2"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	User *User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for FiatBalance
func (FiatBalance) TableName() string {
	return "fiat_balances"
}
