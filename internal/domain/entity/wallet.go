package entity

import (
	"time"

	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// Wallet holds one user's balance of one cryptocurrency
type Wallet struct {
	ID        uint64
	UserID    uint64
	CryptoID  uint64
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time

	// Populated on reads
	User   *UserRef
	Crypto *CryptoRef
}

// AssetValue is a quantity of a cryptocurrency priced in USD
type AssetValue struct {
	Symbol   string
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Value    decimal.Decimal
}

// ValueOf prices a quantity at the referenced spot price; a missing reference values at zero
func ValueOf(quantity decimal.Decimal, crypto *CryptoRef) AssetValue {
	if crypto == nil {
		return AssetValue{Symbol: UnknownSymbol, Quantity: quantity, Price: decimal.Zero, Value: decimal.Zero}
	}
	return AssetValue{
		Symbol:   crypto.Symbol,
		Quantity: quantity,
		Price:    crypto.Price,
		Value:    quantity.Mul(crypto.Price),
	}
}

// Portfolio is the USD valuation of all wallets of a user
type Portfolio struct {
	TotalValueUSD decimal.Decimal
	WalletsCount  int
	Breakdown     []AssetValue
}

// NewWallet validates and builds a wallet
func NewWallet(userID, cryptoID uint64, balance decimal.Decimal, timeProvider coreport.TimeProvider) (*Wallet, error) {
	if err := validateID("user_id", userID); err != nil {
		return nil, err
	}
	if err := validateID("crypto_id", cryptoID); err != nil {
		return nil, err
	}
	if err := ValidateNonNegative("balance", balance, CryptoDecimalPlaces); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Wallet{
		UserID:    userID,
		CryptoID:  cryptoID,
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Value prices the wallet balance at the current spot price
func (w *Wallet) Value() AssetValue {
	return ValueOf(w.Balance, w.Crypto)
}

// NewPortfolio sums the value of every wallet
func NewPortfolio(wallets []*Wallet) Portfolio {
	p := Portfolio{
		TotalValueUSD: decimal.Zero,
		WalletsCount:  len(wallets),
		Breakdown:     make([]AssetValue, 0, len(wallets)),
	}
	for _, w := range wallets {
		v := w.Value()
		p.TotalValueUSD = p.TotalValueUSD.Add(v.Value)
		p.Breakdown = append(p.Breakdown, v)
	}
	return p
}
