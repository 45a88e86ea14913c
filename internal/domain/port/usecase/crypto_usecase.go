package usecase

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateCryptocurrencyInput carries the fields of a listing request
type CreateCryptocurrencyInput struct {
	Symbol string
	Name   string
	Price  decimal.Decimal
}

// CryptocurrencyUseCase defines operations on listed assets
type CryptocurrencyUseCase interface {
	ListCryptocurrencies(ctx context.Context) ([]*entity.Cryptocurrency, error)
	GetCryptocurrency(ctx context.Context, cryptoID uint64) (*entity.Cryptocurrency, error)
	GetCryptocurrencyBySymbol(ctx context.Context, symbol string) (*entity.Cryptocurrency, error)
	CreateCryptocurrency(ctx context.Context, input CreateCryptocurrencyInput) (*entity.Cryptocurrency, error)
	TopByVolume(ctx context.Context, limit int) ([]entity.CryptoVolume, error)

	// MarketOverview aggregates holders, supply and activity counts for one asset
	MarketOverview(ctx context.Context, cryptoID uint64) (*entity.CryptoMarketOverview, error)

	// TopHolders returns the largest wallets of one asset
	TopHolders(ctx context.Context, cryptoID uint64, limit int) ([]*entity.Wallet, error)
}
