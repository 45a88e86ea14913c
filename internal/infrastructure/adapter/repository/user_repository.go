package repository

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorClassifier.Translate(err, errs.ErrUserNotFound, errs.ErrDuplicateUser)
	fields["error"] = err.Error()

	switch {
	case errs.IsNotFoundError(mapped):
		r.logger.Warn("User not found", fields)
	case errs.IsUniquenessError(mapped):
		r.logger.Warn("Duplicate user", fields)
	default:
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	}
	return mapped
}

// List returns all users, newest first
func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&users).Error; err != nil {
		return nil, r.handleDatabaseError("listing users", err, map[string]any{})
	}
	return mapAll(users, userToEntity), nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	r.logger.Debug("Getting user by ID", map[string]any{
		"user_id": id,
	})

	var userModel model.User
	if err := r.db.WithContext(ctx).First(&userModel, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting user", err, map[string]any{"user_id": id})
	}
	return userToEntity(&userModel), nil
}

// Create inserts a new user and sets its generated ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.logger.Debug("Creating new user", map[string]any{
		"username": user.Username,
	})

	userModel := model.User{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&userModel).Error; err != nil {
		return r.handleDatabaseError("creating user", err, map[string]any{"username": user.Username})
	}
	user.ID = userModel.ID

	r.logger.Info("User created successfully", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return nil
}

// Exists reports whether a user row with the id is present
func (r *UserRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, r.handleDatabaseError("checking user", err, map[string]any{"user_id": id})
	}
	return count > 0, nil
}

// Count returns the number of users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, r.handleDatabaseError("counting users", err, map[string]any{})
	}
	return count, nil
}

type traderRow struct {
	ID         uint64
	Username   string
	Email      string
	OrderCount int64
}

// TopTraders ranks users by how many orders they placed
func (r *UserRepository) TopTraders(ctx context.Context, limit int) ([]entity.TraderStat, error) {
	var rows []traderRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select("users.id, users.username, users.email, COUNT(orders.id) AS order_count").
		Joins("LEFT JOIN orders ON orders.user_id = users.id").
		Group("users.id, users.username, users.email").
		Order("order_count DESC").
		Order("users.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("ranking traders", err, map[string]any{"limit": limit})
	}

	stats := make([]entity.TraderStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, entity.TraderStat{
			User:       entity.UserRef{ID: row.ID, Username: row.Username, Email: row.Email},
			OrderCount: row.OrderCount,
		})
	}
	return stats, nil
}
