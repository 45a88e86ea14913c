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

// CryptocurrencyRepository implements CryptocurrencyRepository using GORM
type CryptocurrencyRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCryptocurrencyRepository creates a new CryptocurrencyRepository instance
func NewCryptocurrencyRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *CryptocurrencyRepository {
	return &CryptocurrencyRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *CryptocurrencyRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorClassifier.Translate(err, errs.ErrCryptocurrencyNotFound, errs.ErrDuplicateCryptocurrency)
	fields["error"] = err.Error()

	if errs.IsNotFoundError(mapped) || errs.IsUniquenessError(mapped) {
		r.logger.Warn(fmt.Sprintf("Rejected when %s", operation), fields)
	} else {
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	}
	return mapped
}

// List returns all cryptocurrencies ordered by symbol
func (r *CryptocurrencyRepository) List(ctx context.Context) ([]*entity.Cryptocurrency, error) {
	var cryptos []model.Cryptocurrency
	if err := r.db.WithContext(ctx).Order("symbol ASC").Find(&cryptos).Error; err != nil {
		return nil, r.handleDatabaseError("listing cryptocurrencies", err, map[string]any{})
	}
	return mapAll(cryptos, cryptoToEntity), nil
}

// GetByID retrieves a cryptocurrency by ID
func (r *CryptocurrencyRepository) GetByID(ctx context.Context, id uint64) (*entity.Cryptocurrency, error) {
	var m model.Cryptocurrency
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting cryptocurrency", err, map[string]any{"crypto_id": id})
	}
	return cryptoToEntity(&m), nil
}

// GetBySymbol retrieves a cryptocurrency by its exact symbol
func (r *CryptocurrencyRepository) GetBySymbol(ctx context.Context, symbol string) (*entity.Cryptocurrency, error) {
	var m model.Cryptocurrency
	if err := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&m).Error; err != nil {
		return nil, r.handleDatabaseError("getting cryptocurrency by symbol", err, map[string]any{"symbol": symbol})
	}
	return cryptoToEntity(&m), nil
}

// Create inserts a cryptocurrency and sets its generated ID
func (r *CryptocurrencyRepository) Create(ctx context.Context, crypto *entity.Cryptocurrency) error {
	m := model.Cryptocurrency{
		Symbol:    crypto.Symbol,
		Name:      crypto.Name,
		Price:     crypto.Price,
		CreatedAt: crypto.CreatedAt,
		UpdatedAt: crypto.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating cryptocurrency", err, map[string]any{"symbol": crypto.Symbol})
	}
	crypto.ID = m.ID

	r.logger.Info("Cryptocurrency listed", map[string]any{
		"crypto_id": crypto.ID,
		"symbol":    crypto.Symbol,
		"price":     crypto.Price.String(),
	})
	return nil
}

type volumeRow struct {
	ID          uint64
	Symbol      string
	Name        string
	Price       decimal.Decimal
	TotalVolume decimal.Decimal
}

// TopByVolume ranks cryptocurrencies by the sum of all wallet balances
func (r *CryptocurrencyRepository) TopByVolume(ctx context.Context, limit int) ([]entity.CryptoVolume, error) {
	var rows []volumeRow
	err := r.db.WithContext(ctx).
		Table("cryptocurrencies").
		Select("cryptocurrencies.id, cryptocurrencies.symbol, cryptocurrencies.name, cryptocurrencies.price, " +
			"COALESCE(SUM(wallets.balance), 0) AS total_volume").
		Joins("LEFT JOIN wallets ON wallets.crypto_id = cryptocurrencies.id").
		Group("cryptocurrencies.id, cryptocurrencies.symbol, cryptocurrencies.name, cryptocurrencies.price").
		Order("total_volume DESC").
		Order("cryptocurrencies.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("ranking cryptocurrencies", err, map[string]any{"limit": limit})
	}

	volumes := make([]entity.CryptoVolume, 0, len(rows))
	for _, row := range rows {
		volumes = append(volumes, entity.CryptoVolume{
			Crypto:      entity.CryptoRef{ID: row.ID, Symbol: row.Symbol, Name: row.Name, Price: row.Price},
			TotalVolume: row.TotalVolume,
		})
	}
	return volumes, nil
}
