package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WalletRepository implements WalletRepository using GORM
type WalletRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *WalletRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorClassifier.Translate(err, errs.ErrWalletNotFound, errs.ErrDuplicateWallet)
	fields["error"] = err.Error()

	if errs.IsNotFoundError(mapped) || errs.IsUniquenessError(mapped) {
		r.logger.Warn(fmt.Sprintf("Rejected when %s", operation), fields)
	} else {
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	}
	return mapped
}

func (r *WalletRepository) withRefs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("User").Preload("Crypto")
}

// List returns every wallet with its owner and asset
func (r *WalletRepository) List(ctx context.Context) ([]*entity.Wallet, error) {
	var wallets []model.Wallet
	if err := r.withRefs(ctx).Order("balance DESC").Order("id ASC").Find(&wallets).Error; err != nil {
		return nil, r.handleDatabaseError("listing wallets", err, map[string]any{})
	}
	return mapAll(wallets, walletToEntity), nil
}

// ListByUser returns a user's wallets, largest balance first
func (r *WalletRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Wallet, error) {
	var wallets []model.Wallet
	err := r.db.WithContext(ctx).
		Preload("Crypto").
		Where("user_id = ?", userID).
		Order("balance DESC").
		Find(&wallets).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing user wallets", err, map[string]any{"user_id": userID})
	}
	return mapAll(wallets, walletToEntity), nil
}

// GetByID retrieves a wallet by ID
func (r *WalletRepository) GetByID(ctx context.Context, id uint64) (*entity.Wallet, error) {
	var m model.Wallet
	if err := r.withRefs(ctx).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting wallet", err, map[string]any{"wallet_id": id})
	}
	return walletToEntity(&m), nil
}

// GetByUserAndCrypto retrieves the single wallet of a user for a cryptocurrency
func (r *WalletRepository) GetByUserAndCrypto(ctx context.Context, userID, cryptoID uint64) (*entity.Wallet, error) {
	var m model.Wallet
	err := r.withRefs(ctx).
		Where("user_id = ? AND crypto_id = ?", userID, cryptoID).
		First(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting wallet by owner", err, map[string]any{
			"user_id":   userID,
			"crypto_id": cryptoID,
		})
	}
	return walletToEntity(&m), nil
}

// Create inserts a wallet; a second wallet for the same user and crypto fails with ErrDuplicateWallet
func (r *WalletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	m := model.Wallet{
		UserID:    wallet.UserID,
		CryptoID:  wallet.CryptoID,
		Balance:   wallet.Balance,
		CreatedAt: wallet.CreatedAt,
		UpdatedAt: wallet.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating wallet", err, map[string]any{
			"user_id":   wallet.UserID,
			"crypto_id": wallet.CryptoID,
		})
	}
	wallet.ID = m.ID

	r.logger.Info("Wallet created", map[string]any{
		"wallet_id": wallet.ID,
		"user_id":   wallet.UserID,
		"crypto_id": wallet.CryptoID,
		"balance":   wallet.Balance.String(),
	})
	return nil
}

// TopHolders returns the largest wallets of a cryptocurrency
func (r *WalletRepository) TopHolders(ctx context.Context, cryptoID uint64, limit int) ([]*entity.Wallet, error) {
	var wallets []model.Wallet
	err := r.withRefs(ctx).
		Where("crypto_id = ?", cryptoID).
		Order("balance DESC").
		Limit(limit).
		Find(&wallets).Error
	if err != nil {
		return nil, r.handleDatabaseError("ranking holders", err, map[string]any{"crypto_id": cryptoID})
	}
	return mapAll(wallets, walletToEntity), nil
}

type holderRow struct {
	TotalHolders int64
	TotalSupply  decimal.Decimal
}

// HolderStats counts wallets of a cryptocurrency and sums their balances
func (r *WalletRepository) HolderStats(ctx context.Context, cryptoID uint64) (entity.HolderStats, error) {
	var row holderRow
	err := r.db.WithContext(ctx).
		Model(&model.Wallet{}).
		Select("COUNT(*) AS total_holders, COALESCE(SUM(balance), 0) AS total_supply").
		Where("crypto_id = ?", cryptoID).
		Scan(&row).Error
	if err != nil {
		return entity.HolderStats{}, r.handleDatabaseError("aggregating holders", err, map[string]any{"crypto_id": cryptoID})
	}
	return entity.HolderStats{TotalHolders: row.TotalHolders, TotalSupply: row.TotalSupply}, nil
}

// CountByUser returns how many wallets a user holds
func (r *WalletRepository) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Wallet{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, r.handleDatabaseError("counting wallets", err, map[string]any{"user_id": userID})
	}
	return count, nil
}
