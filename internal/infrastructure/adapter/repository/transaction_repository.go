package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository implements the TransactionRepository interface
type TransactionRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *TransactionRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorClassifier.Translate(err, errs.ErrTransactionNotFound, nil)
	fields["error"] = err.Error()

	if errs.IsNotFoundError(mapped) {
		r.logger.Warn("Transaction not found", fields)
	} else {
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	}
	return mapped
}

func (r *TransactionRepository) withRefs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("FromUser").Preload("ToUser").Preload("Crypto")
}

// List returns transactions matching the filter, newest first
func (r *TransactionRepository) List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.withRefs(ctx)
	if filter.TxType != "" {
		query = query.Where("tx_type = ?", string(filter.TxType))
	}
	if filter.CryptoID != 0 {
		query = query.Where("crypto_id = ?", filter.CryptoID)
	}
	if filter.UserID != 0 {
		query = query.Where("(from_user_id = ? OR to_user_id = ?)", filter.UserID, filter.UserID)
	}

	var txs []model.Transaction
	if err := clampLimit(query.Order("created_at DESC").Order("id DESC"), filter.Limit).Find(&txs).Error; err != nil {
		return nil, r.handleDatabaseError("listing transactions", err, map[string]any{
			"tx_type":   string(filter.TxType),
			"crypto_id": filter.CryptoID,
			"user_id":   filter.UserID,
		})
	}
	return mapAll(txs, transactionToEntity), nil
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	r.logger.Debug("Getting transaction by ID", map[string]any{
		"tx_id": id,
	})

	var m model.Transaction
	if err := r.withRefs(ctx).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting transaction", err, map[string]any{"tx_id": id})
	}
	return transactionToEntity(&m), nil
}

// Create records a transaction and sets its generated ID
func (r *TransactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	m := model.Transaction{
		FromUserID: tx.FromUserID,
		ToUserID:   tx.ToUserID,
		CryptoID:   tx.CryptoID,
		Amount:     tx.Amount,
		TxType:     string(tx.TxType),
		CreatedAt:  tx.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating transaction", err, map[string]any{
			"from_user_id": tx.FromUserID,
			"to_user_id":   tx.ToUserID,
			"crypto_id":    tx.CryptoID,
		})
	}
	tx.ID = m.ID

	r.logger.Info("Transaction recorded", map[string]any{
		"tx_id":     tx.ID,
		"tx_type":   string(tx.TxType),
		"crypto_id": tx.CryptoID,
		"amount":    tx.Amount.String(),
	})
	return nil
}

type volumeStatsRow struct {
	TotalVolume      decimal.Decimal
	TransactionCount int64
}

// VolumeStats sums amounts of one cryptocurrency recorded at or after since
func (r *TransactionRepository) VolumeStats(ctx context.Context, cryptoID uint64, since time.Time) (entity.VolumeStats, error) {
	var row volumeStatsRow
	err := r.db.WithContext(ctx).
		Model(&model.Transaction{}).
		Select("COALESCE(SUM(amount), 0) AS total_volume, COUNT(*) AS transaction_count").
		Where("crypto_id = ? AND created_at >= ?", cryptoID, since).
		Scan(&row).Error
	if err != nil {
		return entity.VolumeStats{}, r.handleDatabaseError("aggregating volume", err, map[string]any{
			"crypto_id": cryptoID,
			"since":     since,
		})
	}
	return entity.VolumeStats{TotalVolume: row.TotalVolume, TransactionCount: row.TransactionCount}, nil
}

// CountByCrypto returns how many transactions moved a cryptocurrency
func (r *TransactionRepository) CountByCrypto(ctx context.Context, cryptoID uint64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Transaction{}).Where("crypto_id = ?", cryptoID).Count(&count).Error; err != nil {
		return 0, r.handleDatabaseError("counting transactions", err, map[string]any{"crypto_id": cryptoID})
	}
	return count, nil
}

// CountByUser returns how many transactions a user sent or received
func (r *TransactionRepository) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Count(&count).Error
	if err != nil {
		return 0, r.handleDatabaseError("counting transactions", err, map[string]any{"user_id": userID})
	}
	return count, nil
}

// ListForWallet returns the history of one user in one cryptocurrency, newest first
func (r *TransactionRepository) ListForWallet(ctx context.Context, userID, cryptoID uint64) ([]*entity.Transaction, error) {
	var txs []model.Transaction
	err := r.withRefs(ctx).
		Where("crypto_id = ?", cryptoID).
		Where("(from_user_id = ? OR to_user_id = ?)", userID, userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&txs).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing wallet transactions", err, map[string]any{
			"user_id":   userID,
			"crypto_id": cryptoID,
		})
	}
	return mapAll(txs, transactionToEntity), nil
}
