package persistence

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
)

// OrderRepository defines the methods to interact with orders
type OrderRepository interface {
	// List returns orders matching the filter with user and crypto refs, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error)

	// GetByID retrieves an order with its refs
	//
	// Possible errors:
	// - ErrOrderNotFound: If no order has the given ID
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Order, error)

	// Create inserts a new order
	Create(ctx context.Context, order *entity.Order) error

	// UpdateStatus persists the status of an existing order
	//
	// Possible errors:
	// - ErrOrderNotFound: If no row was updated
	// - ErrDatabaseConnection: If database connection fails
	UpdateStatus(ctx context.Context, order *entity.Order) error

	// ListBook returns PENDING orders of one side for a cryptocurrency.
	// BUY is ordered by price descending, SELL by price ascending.
	ListBook(ctx context.Context, cryptoID uint64, orderType entity.OrderType, limit int) ([]*entity.Order, error)

	// CountByCrypto returns the number of orders placed for a cryptocurrency
	CountByCrypto(ctx context.Context, cryptoID uint64) (int64, error)

	// CountByUser returns the number of orders placed by a user
	CountByUser(ctx context.Context, userID uint64) (int64, error)
}
