package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// TxType classifies a transaction
type TxType string

const (
	TxTypeTransfer   TxType = "TRANSFER"
	TxTypeTrade      TxType = "TRADE"
	TxTypeDeposit    TxType = "DEPOSIT"
	TxTypeWithdrawal TxType = "WITHDRAWAL"
)

// Listing limits for transactions
const (
	DefaultTransactionLimit = 50
	DefaultRecentLimit      = 20
	DefaultVolumeDays       = 7
)

// ParseTxType accepts the four transaction types
func ParseTxType(s string) (TxType, error) {
	switch t := TxType(strings.TrimSpace(s)); t {
	case TxTypeTransfer, TxTypeTrade, TxTypeDeposit, TxTypeWithdrawal:
		return t, nil
	default:
		return "", errs.WrapValidationError("tx_type", errs.ErrInvalidTxType)
	}
}

// Transaction is an immutable record of a crypto movement between two users.
// Recording it does not touch wallet balances.
type Transaction struct {
	ID         uint64
	FromUserID uint64
	ToUserID   uint64
	CryptoID   uint64
	Amount     decimal.Decimal
	TxType     TxType
	CreatedAt  time.Time

	FromUser *UserRef
	ToUser   *UserRef
	Crypto   *CryptoRef
}

// TransactionFilter narrows transaction listings
type TransactionFilter struct {
	TxType   TxType
	CryptoID uint64
	UserID   uint64 // matches either side
	Limit    int
}

// VolumeStats aggregates transactions of one cryptocurrency over a window
type VolumeStats struct {
	PeriodDays       int
	TotalVolume      decimal.Decimal
	TransactionCount int64
}

// AverageAmount is volume divided by count, zero when there were no transactions
func (v VolumeStats) AverageAmount() decimal.Decimal {
	if v.TransactionCount == 0 {
		return decimal.Zero
	}
	return v.TotalVolume.Div(decimal.NewFromInt(v.TransactionCount))
}

// NewTransaction validates and builds a transaction record
func NewTransaction(fromUserID, toUserID, cryptoID uint64, amount decimal.Decimal, txType string, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if err := validateID("from_user_id", fromUserID); err != nil {
		return nil, err
	}
	if err := validateID("to_user_id", toUserID); err != nil {
		return nil, err
	}
	if err := validateID("crypto_id", cryptoID); err != nil {
		return nil, err
	}
	if err := ValidateMinimum("amount", amount, MinCryptoAmount, CryptoDecimalPlaces); err != nil {
		return nil, err
	}

	t, err := ParseTxType(txType)
	if err != nil {
		return nil, err
	}

	return &Transaction{
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		CryptoID:   cryptoID,
		Amount:     amount,
		TxType:     t,
		CreatedAt:  timeProvider.Now(),
	}, nil
}

// Value prices the amount at the referenced cryptocurrency's current price
func (t *Transaction) Value() AssetValue {
	return ValueOf(t.Amount, t.Crypto)
}

// TotalTransactionValue sums Value over transactions
func TotalTransactionValue(txs []*Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Value().Value)
	}
	return total
}
