package crypto

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
)

// Default ranking sizes
const (
	DefaultTopVolumeLimit  = 10
	DefaultTopHoldersLimit = 10
)

// CryptocurrencyUseCase implements listing and market aggregates
type CryptocurrencyUseCase struct {
	cryptoRepo   persistence.CryptocurrencyRepository
	walletRepo   persistence.WalletRepository
	orderRepo    persistence.OrderRepository
	txRepo       persistence.TransactionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCryptocurrencyUseCase creates a new cryptocurrency use case instance
func NewCryptocurrencyUseCase(
	cryptoRepo persistence.CryptocurrencyRepository,
	walletRepo persistence.WalletRepository,
	orderRepo persistence.OrderRepository,
	txRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.CryptocurrencyUseCase {
	return &CryptocurrencyUseCase{
		cryptoRepo:   cryptoRepo,
		walletRepo:   walletRepo,
		orderRepo:    orderRepo,
		txRepo:       txRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (u *CryptocurrencyUseCase) ListCryptocurrencies(ctx context.Context) ([]*entity.Cryptocurrency, error) {
	return u.cryptoRepo.List(ctx)
}

func (u *CryptocurrencyUseCase) GetCryptocurrency(ctx context.Context, cryptoID uint64) (*entity.Cryptocurrency, error) {
	return u.cryptoRepo.GetByID(ctx, cryptoID)
}

// GetCryptocurrencyBySymbol looks a listing up case-insensitively
func (u *CryptocurrencyUseCase) GetCryptocurrencyBySymbol(ctx context.Context, symbol string) (*entity.Cryptocurrency, error) {
	return u.cryptoRepo.GetBySymbol(ctx, entity.NormalizeSymbol(symbol))
}

// CreateCryptocurrency validates and stores a new listing
func (u *CryptocurrencyUseCase) CreateCryptocurrency(ctx context.Context, input usecase.CreateCryptocurrencyInput) (*entity.Cryptocurrency, error) {
	crypto, err := entity.NewCryptocurrency(input.Symbol, input.Name, input.Price, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.cryptoRepo.Create(ctx, crypto); err != nil {
		u.logger.Error("Failed to create cryptocurrency", map[string]any{
			"symbol": crypto.Symbol,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Cryptocurrency listed", map[string]any{
		"cryptoId": crypto.ID,
		"symbol":   crypto.Symbol,
		"price":    crypto.Price.String(),
	})
	return crypto, nil
}

func (u *CryptocurrencyUseCase) TopByVolume(ctx context.Context, limit int) ([]entity.CryptoVolume, error) {
	if limit <= 0 {
		limit = DefaultTopVolumeLimit
	}
	return u.cryptoRepo.TopByVolume(ctx, limit)
}
