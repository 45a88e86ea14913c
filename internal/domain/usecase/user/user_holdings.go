package user

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
)

// GetUserWallets returns the wallets of an existing user
func (u *UserUseCase) GetUserWallets(ctx context.Context, userID uint64) ([]*entity.Wallet, error) {
	if err := u.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return u.walletRepo.ListByUser(ctx, userID)
}

// GetUserFiatBalances returns the fiat balances of an existing user
func (u *UserUseCase) GetUserFiatBalances(ctx context.Context, userID uint64) ([]*entity.FiatBalance, error) {
	if err := u.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return u.fiatRepo.ListByUser(ctx, userID)
}

// GetWalletValue prices every wallet of the user at the current spot price
func (u *UserUseCase) GetWalletValue(ctx context.Context, userID uint64) (*entity.Portfolio, error) {
	wallets, err := u.GetUserWallets(ctx, userID)
	if err != nil {
		return nil, err
	}

	portfolio := entity.NewPortfolio(wallets)

	u.logger.Debug("Wallet value computed", map[string]any{
		"userId":       userID,
		"walletsCount": portfolio.WalletsCount,
		"totalUSD":     portfolio.TotalValueUSD.String(),
	})

	return &portfolio, nil
}
