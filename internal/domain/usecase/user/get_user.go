package user

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
)

// ListUsers returns all users, newest first
func (u *UserUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return u.userRepo.List(ctx)
}

// GetUser returns a single user
func (u *UserUseCase) GetUser(ctx context.Context, userID uint64) (*entity.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to get user", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}
	return user, nil
}

// TopTraders ranks users by the number of orders they placed
func (u *UserUseCase) TopTraders(ctx context.Context, limit int) ([]entity.TraderStat, error) {
	if limit <= 0 {
		limit = DefaultTopTradersLimit
	}
	return u.userRepo.TopTraders(ctx, limit)
}
