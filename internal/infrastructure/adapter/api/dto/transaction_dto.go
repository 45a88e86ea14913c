package dto

import (
	"time"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest represents the API request for recording a transaction
type CreateTransactionRequest struct {
	FromUserID uint64           `json:"from_user_id" binding:"required"`
	ToUserID   uint64           `json:"to_user_id" binding:"required"`
	CryptoID   uint64           `json:"crypto_id" binding:"required"`
	Amount     *decimal.Decimal `json:"amount" binding:"required"`
	TxType     string           `json:"tx_type" binding:"required"`
}

// TransactionResponse represents a transaction priced at the current spot price
type TransactionResponse struct {
	TxID       uint64             `json:"tx_id"`
	FromUserID uint64             `json:"from_user_id"`
	ToUserID   uint64             `json:"to_user_id"`
	CryptoID   uint64             `json:"crypto_id"`
	Amount     float64            `json:"amount"`
	TxType     string             `json:"tx_type"`
	Symbol     string             `json:"symbol"`
	ValueUSD   float64            `json:"value_usd"`
	CreatedAt  time.Time          `json:"created_at"`
	FromUser   *UserRefResponse   `json:"from_user,omitempty"`
	ToUser     *UserRefResponse   `json:"to_user,omitempty"`
	Crypto     *CryptoRefResponse `json:"cryptocurrency,omitempty"`
}

// VolumeStatsResponse is the trailing volume of one cryptocurrency
type VolumeStatsResponse struct {
	Success     bool              `json:"success"`
	CryptoID    uint64            `json:"crypto_id"`
	Crypto      CryptoRefResponse `json:"cryptocurrency"`
	VolumeStats VolumeStatsData   `json:"volume_stats"`
}

// VolumeStatsData holds the aggregate figures
type VolumeStatsData struct {
	PeriodDays       int     `json:"period_days"`
	TotalVolume      float64 `json:"total_volume"`
	TransactionCount int64   `json:"transaction_count"`
	AverageAmount    float64 `json:"average_amount"`
}

// NewTransactionResponse maps a transaction entity
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	value := t.Value()
	return TransactionResponse{
		TxID:       t.ID,
		FromUserID: t.FromUserID,
		ToUserID:   t.ToUserID,
		CryptoID:   t.CryptoID,
		Amount:     entity.ToFloat(t.Amount),
		TxType:     string(t.TxType),
		Symbol:     value.Symbol,
		ValueUSD:   entity.ToFloat(value.Value),
		CreatedAt:  t.CreatedAt,
		FromUser:   newUserRef(t.FromUser),
		ToUser:     newUserRef(t.ToUser),
		Crypto:     newCryptoRef(t.Crypto),
	}
}

// NewTransactionResponses maps a list of transactions
func NewTransactionResponses(txs []*entity.Transaction) []TransactionResponse {
	return mapSlice(txs, NewTransactionResponse)
}

// NewVolumeStatsResponse maps a volume report
func NewVolumeStatsResponse(r *usecase.VolumeReport) VolumeStatsResponse {
	return VolumeStatsResponse{
		Success:  true,
		CryptoID: r.Crypto.ID,
		Crypto:   NewCryptoRefResponse(r.Crypto),
		VolumeStats: VolumeStatsData{
			PeriodDays:       r.Stats.PeriodDays,
			TotalVolume:      entity.ToFloat(r.Stats.TotalVolume),
			TransactionCount: r.Stats.TransactionCount,
			AverageAmount:    entity.ToFloat(r.Stats.AverageAmount()),
		},
	}
}
