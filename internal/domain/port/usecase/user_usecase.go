package usecase

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
)

// CreateUserInput carries the fields of a registration request
type CreateUserInput struct {
	Username string
	Email    string
	Password string // plaintext; hashed before storage
}

// UserUseCase defines user-related business operations
type UserUseCase interface {
	// ListUsers returns all users, newest first
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// GetUser returns a single user or ErrUserNotFound
	GetUser(ctx context.Context, userID uint64) (*entity.User, error)

	// CreateUser hashes the password and stores a new user
	CreateUser(ctx context.Context, input CreateUserInput) (*entity.User, error)

	// GetUserWallets returns the user's wallets; ErrUserNotFound if the user is absent
	GetUserWallets(ctx context.Context, userID uint64) ([]*entity.Wallet, error)

	// GetUserFiatBalances returns the user's fiat balances; ErrUserNotFound if the user is absent
	GetUserFiatBalances(ctx context.Context, userID uint64) ([]*entity.FiatBalance, error)

	// GetUserOrders returns the user's orders, optionally filtered by status
	GetUserOrders(ctx context.Context, userID uint64, status string) ([]*entity.Order, error)

	// GetUserTransactions returns transactions the user sent or received
	GetUserTransactions(ctx context.Context, userID uint64, txType string, limit int) ([]*entity.Transaction, error)

	// GetUserSummary returns the user's holdings and latest activity
	GetUserSummary(ctx context.Context, userID uint64) (*entity.UserSummary, error)

	// GetWalletValue prices every wallet of the user at current spot prices
	GetWalletValue(ctx context.Context, userID uint64) (*entity.Portfolio, error)

	// TopTraders ranks users by order count
	TopTraders(ctx context.Context, limit int) ([]entity.TraderStat, error)
}
