package persistence

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
)

// CryptocurrencyRepository defines the methods to interact with listed assets
type CryptocurrencyRepository interface {
	// List returns every cryptocurrency ordered by symbol
	List(ctx context.Context) ([]*entity.Cryptocurrency, error)

	// GetByID retrieves a cryptocurrency by ID
	//
	// Possible errors:
	// - ErrCryptocurrencyNotFound: If no cryptocurrency has the given ID
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Cryptocurrency, error)

	// GetBySymbol retrieves a cryptocurrency by its ticker symbol
	//
	// Possible errors:
	// - ErrCryptocurrencyNotFound: If no cryptocurrency has the given symbol
	// - ErrDatabaseConnection: If database connection fails
	GetBySymbol(ctx context.Context, symbol string) (*entity.Cryptocurrency, error)

	// Create inserts a new cryptocurrency
	//
	// Possible errors:
	// - ErrDuplicateCryptocurrency: If the symbol is already listed
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, crypto *entity.Cryptocurrency) error

	// TopByVolume ranks cryptocurrencies by the sum of wallet balances
	TopByVolume(ctx context.Context, limit int) ([]entity.CryptoVolume, error)
}
