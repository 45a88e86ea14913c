package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cryptocurrency represents a listed asset
type Cryptocurrency struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	Symbol    string          `gorm:"size:10;not null;uniqueIndex"`
	Name      string          `gorm:"size:100;not null"`
	Price     decimal.Decimal `gorm:"type:decimal(20,8);not null;default:0"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName specifies the table name for Cryptocurrency
func (Cryptocurrency) TableName() string {
	return "cryptocurrencies"
}
