package order

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
)

// GetMarketData returns the best pending bids and asks for a cryptocurrency
func (u *OrderUseCase) GetMarketData(ctx context.Context, cryptoID uint64) (*entity.OrderBook, error) {
	crypto, err := u.cryptoRepo.GetByID(ctx, cryptoID)
	if err != nil {
		return nil, err
	}

	buys, err := u.orderRepo.ListBook(ctx, cryptoID, entity.OrderTypeBuy, entity.MarketDepth)
	if err != nil {
		return nil, err
	}

	sells, err := u.orderRepo.ListBook(ctx, cryptoID, entity.OrderTypeSell, entity.MarketDepth)
	if err != nil {
		return nil, err
	}

	book := &entity.OrderBook{
		Crypto:     crypto.Ref(),
		BuyOrders:  buys,
		SellOrders: sells,
	}

	u.logger.Debug("Market data computed", map[string]any{
		"cryptoId":   cryptoID,
		"buyOrders":  len(buys),
		"sellOrders": len(sells),
		"spread":     book.Spread().String(),
	})

	return book, nil
}
