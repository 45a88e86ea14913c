package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a buy or sell order
type Order struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	UserID    uint64          `gorm:"not null;index"`
	CryptoID  uint64          `gorm:"not null;index"`
	Type      string          `gorm:"size:4;not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	Status    string          `gorm:"size:10;not null;default:PENDING;index"`
	CreatedAt time.Time       `gorm:"not null;index"`
	UpdatedAt time.Time       `gorm:"not null"`

	User   *User           `gorm:"foreignKey:UserID;references:ID"`
	Crypto *Cryptocurrency `gorm:"foreignKey:CryptoID;references:ID"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}
