package persistence

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
)

// UserRepository defines the methods to interact with user data
type UserRepository interface {
	// List returns every user, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	List(ctx context.Context) ([]*entity.User, error)

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// Create inserts a new user and sets its generated ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If the username or email is already taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// Exists checks whether a user with the given ID exists
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Exists(ctx context.Context, id uint64) (bool, error)

	// Count returns the number of users
	Count(ctx context.Context) (int64, error)

	// TopTraders returns users ranked by number of orders placed
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	TopTraders(ctx context.Context, limit int) ([]entity.TraderStat, error)
}
