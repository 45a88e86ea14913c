package user

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
)

// GetUserOrders returns the orders of an existing user, optionally filtered by status
func (u *UserUseCase) GetUserOrders(ctx context.Context, userID uint64, status string) ([]*entity.Order, error) {
	filter := entity.OrderFilter{UserID: userID}
	if status != "" {
		s, err := entity.ParseOrderStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = s
	}

	if err := u.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return u.orderRepo.List(ctx, filter)
}

// GetUserTransactions returns transactions the user sent or received
func (u *UserUseCase) GetUserTransactions(ctx context.Context, userID uint64, txType string, limit int) ([]*entity.Transaction, error) {
	filter := entity.TransactionFilter{UserID: userID, Limit: limit}
	if filter.Limit <= 0 {
		filter.Limit = entity.DefaultTransactionLimit
	}
	if txType != "" {
		t, err := entity.ParseTxType(txType)
		if err != nil {
			return nil, err
		}
		filter.TxType = t
	}

	if err := u.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return u.txRepo.List(ctx, filter)
}

// GetUserSummary collects the user's holdings, activity counts and latest activity
func (u *UserUseCase) GetUserSummary(ctx context.Context, userID uint64) (*entity.UserSummary, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &entity.UserSummary{User: user}

	if summary.Wallets, err = u.walletRepo.ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	if summary.FiatBalances, err = u.fiatRepo.ListByUser(ctx, userID); err != nil {
		return nil, err
	}

	summary.RecentOrders, err = u.orderRepo.List(ctx, entity.OrderFilter{
		UserID: userID,
		Limit:  entity.RecentActivityLimit,
	})
	if err != nil {
		return nil, err
	}

	summary.RecentTransactions, err = u.txRepo.List(ctx, entity.TransactionFilter{
		UserID: userID,
		Limit:  entity.RecentActivityLimit,
	})
	if err != nil {
		return nil, err
	}

	if summary.TotalOrders, err = u.orderRepo.CountByUser(ctx, userID); err != nil {
		return nil, err
	}
	if summary.TotalTransactions, err = u.txRepo.CountByUser(ctx, userID); err != nil {
		return nil, err
	}

	u.logger.Debug("User summary built", map[string]any{
		"userId":            userID,
		"totalWallets":      len(summary.Wallets),
		"totalOrders":       summary.TotalOrders,
		"totalTransactions": summary.TotalTransactions,
	})

	return summary, nil
}
