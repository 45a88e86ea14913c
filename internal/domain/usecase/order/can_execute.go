package order

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
)

// CanExecute reports whether the user currently holds enough to fill the order.
// BUY orders are checked against the user's USD balance, SELL orders against the
// wallet of the order's cryptocurrency. A missing user or balance row means false.
// The check is a read; nothing is reserved, so two concurrent checks may both pass.
func (u *OrderUseCase) CanExecute(ctx context.Context, order *entity.Order) (bool, error) {
	exists, err := u.userRepo.Exists(ctx, order.UserID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	switch order.Type {
	case entity.OrderTypeBuy:
		balance, err := u.fiatRepo.GetByUserAndCurrency(ctx, order.UserID, entity.CurrencyUSD)
		if err != nil {
			if errs.IsNotFoundError(err) {
				return false, nil
			}
			return false, err
		}
		return balance.Amount.GreaterThanOrEqual(order.TotalValue()), nil

	case entity.OrderTypeSell:
		wallet, err := u.walletRepo.GetByUserAndCrypto(ctx, order.UserID, order.CryptoID)
		if err != nil {
			if errs.IsNotFoundError(err) {
				return false, nil
			}
			return false, err
		}
		return wallet.Balance.GreaterThanOrEqual(order.Amount), nil
	}

	return false, nil
}
