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

// FiatBalanceRepository implements FiatBalanceRepository using GORM
type FiatBalanceRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewFiatBalanceRepository creates a new FiatBalanceRepository instance
func NewFiatBalanceRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *FiatBalanceRepository {
	return &FiatBalanceRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *FiatBalanceRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorClassifier.Translate(err, errs.ErrFiatBalanceNotFound, errs.ErrDuplicateFiatBalance)
	fields["error"] = err.Error()

	if errs.IsNotFoundError(mapped) || errs.IsUniquenessError(mapped) {
		r.logger.Warn(fmt.Sprintf("Rejected when %s", operation), fields)
	} else {
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	}
	return mapped
}

// List returns every fiat balance with its owner
func (r *FiatBalanceRepository) List(ctx context.Context) ([]*entity.FiatBalance, error) {
	var balances []model.FiatBalance
	if err := r.db.WithContext(ctx).Preload("User").Order("amount DESC").Order("id ASC").Find(&balances).Error; err != nil {
		return nil, r.handleDatabaseError("listing fiat balances", err, map[string]any{})
	}
	return mapAll(balances, fiatToEntity), nil
}

// ListByUser returns a user's balances ordered by currency code
func (r *FiatBalanceRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.FiatBalance, error) {
	var balances []model.FiatBalance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("currency ASC").
		Find(&balances).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing user fiat balances", err, map[string]any{"user_id": userID})
	}
	return mapAll(balances, fiatToEntity), nil
}

// GetByID retrieves a fiat balance by ID
func (r *FiatBalanceRepository) GetByID(ctx context.Context, id uint64) (*entity.FiatBalance, error) {
	var m model.FiatBalance
	if err := r.db.WithContext(ctx).Preload("User").First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting fiat balance", err, map[string]any{"balance_id": id})
	}
	return fiatToEntity(&m), nil
}

// GetByUserAndCurrency retrieves the balance a user holds in one currency
func (r *FiatBalanceRepository) GetByUserAndCurrency(ctx context.Context, userID uint64, currency entity.FiatCurrency) (*entity.FiatBalance, error) {
	var m model.FiatBalance
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ? AND currency = ?", userID, string(currency)).
		First(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting fiat balance by owner", err, map[string]any{
			"user_id":  userID,
			"currency": string(currency),
		})
	}
	return fiatToEntity(&m), nil
}

// Create inserts a fiat balance; (user, currency) is unique
func (r *FiatBalanceRepository) Create(ctx context.Context, balance *entity.FiatBalance) error {
	m := model.FiatBalance{
		UserID:    balance.UserID,
		Currency:  string(balance.Currency),
		Amount:    balance.Amount,
		CreatedAt: balance.CreatedAt,
		UpdatedAt: balance.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating fiat balance", err, map[string]any{
			"user_id":  balance.UserID,
			"currency": string(balance.Currency),
		})
	}
	balance.ID = m.ID

	r.logger.Info("Fiat balance created", map[string]any{
		"balance_id": balance.ID,
		"user_id":    balance.UserID,
		"currency":   string(balance.Currency),
		"amount":     balance.Amount.String(),
	})
	return nil
}

type currencyRow struct {
	TotalAmount decimal.Decimal
	UserCount   int64
}

// TotalByCurrency sums balances held in a currency and counts their rows
func (r *FiatBalanceRepository) TotalByCurrency(ctx context.Context, currency entity.FiatCurrency) (entity.CurrencyTotal, error) {
	var row currencyRow
	err := r.db.WithContext(ctx).
		Model(&model.FiatBalance{}).
		Select("COALESCE(SUM(amount), 0) AS total_amount, COUNT(id) AS user_count").
		Where("currency = ?", string(currency)).
		Scan(&row).Error
	if err != nil {
		return entity.CurrencyTotal{}, r.handleDatabaseError("totalling currency", err, map[string]any{"currency": string(currency)})
	}
	return entity.CurrencyTotal{Currency: currency, TotalAmount: row.TotalAmount, UserCount: row.UserCount}, nil
}

// CountByUser returns how many fiat balances a user holds
func (r *FiatBalanceRepository) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.FiatBalance{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, r.handleDatabaseError("counting fiat balances", err, map[string]any{"user_id": userID})
	}
	return count, nil
}
