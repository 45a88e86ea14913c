package user

import (
	"context"

	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
)

// DefaultTopTradersLimit is used when no limit is given
const DefaultTopTradersLimit = 10

// UserUseCase implements the user business logic
type UserUseCase struct {
	userRepo     persistence.UserRepository
	walletRepo   persistence.WalletRepository
	fiatRepo     persistence.FiatBalanceRepository
	orderRepo    persistence.OrderRepository
	txRepo       persistence.TransactionRepository
	hasher       coreport.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new user use case instance
func NewUserUseCase(
	userRepo persistence.UserRepository,
	walletRepo persistence.WalletRepository,
	fiatRepo persistence.FiatBalanceRepository,
	orderRepo persistence.OrderRepository,
	txRepo persistence.TransactionRepository,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		walletRepo:   walletRepo,
		fiatRepo:     fiatRepo,
		orderRepo:    orderRepo,
		txRepo:       txRepo,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ensureUser returns ErrUserNotFound when the user does not exist
func (u *UserUseCase) ensureUser(ctx context.Context, userID uint64) error {
	exists, err := u.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		u.logger.Warn("User not found", map[string]any{
			"userId": userID,
		})
		return errs.ErrUserNotFound
	}
	return nil
}
