package order

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
)

// CreateOrder validates the order, checks its references and stores it as PENDING.
// No funds are reserved.
func (u *OrderUseCase) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*usecase.OrderView, error) {
	order, err := entity.NewOrder(input.UserID, input.CryptoID, input.Type, input.Amount, input.Price, u.timeProvider)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	crypto, err := u.cryptoRepo.GetByID(ctx, input.CryptoID)
	if err != nil {
		return nil, err
	}

	if err := u.orderRepo.Create(ctx, order); err != nil {
		u.logger.Error("Failed to create order", map[string]any{
			"userId":   input.UserID,
			"cryptoId": input.CryptoID,
			"error":    err.Error(),
		})
		return nil, err
	}

	userRef := user.Ref()
	cryptoRef := crypto.Ref()
	order.User = &userRef
	order.Crypto = &cryptoRef

	canExecute, err := u.CanExecute(ctx, order)
	if err != nil {
		return nil, err
	}

	u.logger.Info("Order created", map[string]any{
		"orderId":    order.ID,
		"userId":     order.UserID,
		"symbol":     crypto.Symbol,
		"type":       string(order.Type),
		"totalValue": order.TotalValue().String(),
		"canExecute": canExecute,
	})

	return &usecase.OrderView{Order: order, CanExecute: canExecute}, nil
}

// UpdateOrderStatus moves an order to a new status and reports the previous one
func (u *OrderUseCase) UpdateOrderStatus(ctx context.Context, orderID uint64, status string) (*usecase.StatusChange, error) {
	newStatus, err := entity.ParseOrderStatus(status)
	if err != nil {
		return nil, err
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	oldStatus, err := order.TransitionTo(newStatus, u.timeProvider)
	if err != nil {
		u.logger.Warn("Rejected order status change", map[string]any{
			"orderId": orderID,
			"from":    string(oldStatus),
			"to":      string(newStatus),
		})
		return nil, err
	}

	if oldStatus != newStatus {
		if err := u.orderRepo.UpdateStatus(ctx, order); err != nil {
			return nil, err
		}
	}

	u.logger.Info("Order status updated", map[string]any{
		"orderId": orderID,
		"from":    string(oldStatus),
		"to":      string(newStatus),
	})

	return &usecase.StatusChange{OrderID: orderID, OldStatus: oldStatus, NewStatus: newStatus}, nil
}
