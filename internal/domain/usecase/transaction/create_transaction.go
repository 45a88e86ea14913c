package transaction

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
)

// CreateTransaction checks that both users and the cryptocurrency exist, then records the transaction
func (u *TransactionUseCase) CreateTransaction(ctx context.Context, input usecase.CreateTransactionInput) (*entity.Transaction, error) {
	tx, err := entity.NewTransaction(input.FromUserID, input.ToUserID, input.CryptoID, input.Amount, input.TxType, u.timeProvider)
	if err != nil {
		return nil, err
	}

	from, err := u.userRepo.GetByID(ctx, input.FromUserID)
	if err != nil {
		return nil, sideError("from", err)
	}

	to, err := u.userRepo.GetByID(ctx, input.ToUserID)
	if err != nil {
		return nil, sideError("to", err)
	}

	crypto, err := u.cryptoRepo.GetByID(ctx, input.CryptoID)
	if err != nil {
		return nil, err
	}

	if err := u.txRepo.Create(ctx, tx); err != nil {
		u.logger.Error("Failed to record transaction", map[string]any{
			"fromUserId": input.FromUserID,
			"toUserId":   input.ToUserID,
			"cryptoId":   input.CryptoID,
			"error":      err.Error(),
		})
		return nil, err
	}

	fromRef, toRef, cryptoRef := from.Ref(), to.Ref(), crypto.Ref()
	tx.FromUser = &fromRef
	tx.ToUser = &toRef
	tx.Crypto = &cryptoRef

	u.logger.Info("Transaction recorded", map[string]any{
		"txId":     tx.ID,
		"txType":   string(tx.TxType),
		"symbol":   crypto.Symbol,
		"amount":   tx.Amount.String(),
		"valueUsd": tx.Value().Value.String(),
	})

	return tx, nil
}

// sideError names which party of the transaction is missing
func sideError(side string, err error) error {
	if errs.IsUserNotFoundError(err) {
		return fmt.Errorf("%s %w", side, errs.ErrUserNotFound)
	}
	return err
}
