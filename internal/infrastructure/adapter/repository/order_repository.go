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

// OrderRepository implements OrderRepository using GORM
type OrderRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewOrderRepository creates a new OrderRepository instance
func NewOrderRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *OrderRepository {
	return &OrderRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *OrderRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	mapped := r.errorClassifier.Translate(err, errs.ErrOrderNotFound, nil)
	fields["error"] = err.Error()

	if errs.IsNotFoundError(mapped) {
		r.logger.Warn("Order not found", fields)
	} else {
		r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	}
	return mapped
}

// List returns orders matching the filter, newest first
func (r *OrderRepository) List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, error) {
	query := r.db.WithContext(ctx).Preload("User").Preload("Crypto")
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.CryptoID != 0 {
		query = query.Where("crypto_id = ?", filter.CryptoID)
	}

	var orders []model.Order
	if err := clampLimit(query.Order("created_at DESC").Order("id DESC"), filter.Limit).Find(&orders).Error; err != nil {
		return nil, r.handleDatabaseError("listing orders", err, map[string]any{
			"status":    string(filter.Status),
			"type":      string(filter.Type),
			"user_id":   filter.UserID,
			"crypto_id": filter.CryptoID,
		})
	}
	return mapAll(orders, orderToEntity), nil
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(ctx context.Context, id uint64) (*entity.Order, error) {
	var m model.Order
	if err := r.db.WithContext(ctx).Preload("User").Preload("Crypto").First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting order", err, map[string]any{"order_id": id})
	}
	return orderToEntity(&m), nil
}

// Create inserts an order and sets its generated ID
func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	m := model.Order{
		UserID:    order.UserID,
		CryptoID:  order.CryptoID,
		Type:      string(order.Type),
		Amount:    order.Amount,
		Price:     order.Price,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating order", err, map[string]any{
			"user_id":   order.UserID,
			"crypto_id": order.CryptoID,
		})
	}
	order.ID = m.ID

	r.logger.Info("Order placed", map[string]any{
		"order_id":  order.ID,
		"user_id":   order.UserID,
		"crypto_id": order.CryptoID,
		"type":      string(order.Type),
		"amount":    order.Amount.String(),
		"price":     order.Price.String(),
	})
	return nil
}

// UpdateStatus persists the order's status and update time
func (r *OrderRepository) UpdateStatus(ctx context.Context, order *entity.Order) error {
	result := r.db.WithContext(ctx).Model(&model.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status":     string(order.Status),
			"updated_at": order.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating order status", result.Error, map[string]any{"order_id": order.ID})
	}

	if result.RowsAffected == 0 {
		r.logger.Warn("Order not found during update", map[string]any{
			"order_id": order.ID,
		})
		return errs.ErrOrderNotFound
	}

	r.logger.Info("Order status updated", map[string]any{
		"order_id": order.ID,
		"status":   string(order.Status),
	})
	return nil
}

// ListBook returns PENDING orders of one side: bids by price descending, asks ascending
func (r *OrderRepository) ListBook(ctx context.Context, cryptoID uint64, orderType entity.OrderType, limit int) ([]*entity.Order, error) {
	direction := "price ASC"
	if orderType == entity.OrderTypeBuy {
		direction = "price DESC"
	}

	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("crypto_id = ? AND type = ? AND status = ?", cryptoID, string(orderType), string(entity.OrderStatusPending)).
		Order(direction).
		Order("created_at ASC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, r.handleDatabaseError("loading order book", err, map[string]any{
			"crypto_id": cryptoID,
			"type":      string(orderType),
		})
	}
	return mapAll(orders, orderToEntity), nil
}

// CountByCrypto returns how many orders reference a cryptocurrency
func (r *OrderRepository) CountByCrypto(ctx context.Context, cryptoID uint64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Order{}).Where("crypto_id = ?", cryptoID).Count(&count).Error; err != nil {
		return 0, r.handleDatabaseError("counting orders", err, map[string]any{"crypto_id": cryptoID})
	}
	return count, nil
}

// CountByUser returns how many orders a user placed
func (r *OrderRepository) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Order{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, r.handleDatabaseError("counting orders", err, map[string]any{"user_id": userID})
	}
	return count, nil
}
