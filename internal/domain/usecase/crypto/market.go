package crypto

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
)

// MarketOverview aggregates holder statistics and activity counts for one cryptocurrency
func (u *CryptocurrencyUseCase) MarketOverview(ctx context.Context, cryptoID uint64) (*entity.CryptoMarketOverview, error) {
	crypto, err := u.cryptoRepo.GetByID(ctx, cryptoID)
	if err != nil {
		return nil, err
	}

	holders, err := u.walletRepo.HolderStats(ctx, cryptoID)
	if err != nil {
		return nil, err
	}

	orders, err := u.orderRepo.CountByCrypto(ctx, cryptoID)
	if err != nil {
		return nil, err
	}

	txs, err := u.txRepo.CountByCrypto(ctx, cryptoID)
	if err != nil {
		return nil, err
	}

	u.logger.Debug("Market overview computed", map[string]any{
		"cryptoId":     cryptoID,
		"totalHolders": holders.TotalHolders,
		"totalSupply":  holders.TotalSupply.String(),
	})

	return &entity.CryptoMarketOverview{
		Crypto:             crypto.Ref(),
		Holders:            holders,
		RecentOrders:       orders,
		RecentTransactions: txs,
	}, nil
}

// TopHolders returns the largest wallets of an existing cryptocurrency
func (u *CryptocurrencyUseCase) TopHolders(ctx context.Context, cryptoID uint64, limit int) ([]*entity.Wallet, error) {
	if _, err := u.cryptoRepo.GetByID(ctx, cryptoID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultTopHoldersLimit
	}
	return u.walletRepo.TopHolders(ctx, cryptoID, limit)
}
