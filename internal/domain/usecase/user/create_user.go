package user

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
)

// CreateUser validates the registration, hashes the password and stores the user
func (u *UserUseCase) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	if input.Password == "" {
		return nil, errs.NewValidationError("password", "is required")
	}

	// Validate identity fields before paying for the hash
	if err := entity.ValidateUsername(input.Username); err != nil {
		return nil, err
	}
	if err := entity.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"username": input.Username,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	user, err := entity.NewUser(input.Username, input.Email, hash, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"username": user.Username,
			"error":    err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"userId":   user.ID,
		"username": user.Username,
	})

	return user, nil
}
