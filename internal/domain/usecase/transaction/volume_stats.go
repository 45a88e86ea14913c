package transaction

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
)

// VolumeStats aggregates transaction amounts for a cryptocurrency over the trailing days
func (u *TransactionUseCase) VolumeStats(ctx context.Context, cryptoID uint64, days int) (*usecase.VolumeReport, error) {
	if days < 0 {
		return nil, errs.NewValidationError("days", "must be a positive number of days")
	}
	if days == 0 {
		days = entity.DefaultVolumeDays
	}

	crypto, err := u.cryptoRepo.GetByID(ctx, cryptoID)
	if err != nil {
		return nil, err
	}

	since := u.timeProvider.DaysAgo(days)
	stats, err := u.txRepo.VolumeStats(ctx, cryptoID, since)
	if err != nil {
		return nil, err
	}
	stats.PeriodDays = days

	u.logger.Debug("Volume stats computed", map[string]any{
		"cryptoId":         cryptoID,
		"periodDays":       days,
		"totalVolume":      stats.TotalVolume.String(),
		"transactionCount": stats.TransactionCount,
	})

	return &usecase.VolumeReport{Crypto: crypto.Ref(), Stats: stats}, nil
}
