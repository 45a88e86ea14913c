package wallet

import (
	"context"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/usecase"
)

// WalletUseCase implements wallet operations
type WalletUseCase struct {
	walletRepo   persistence.WalletRepository
	userRepo     persistence.UserRepository
	cryptoRepo   persistence.CryptocurrencyRepository
	txRepo       persistence.TransactionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewWalletUseCase creates a new wallet use case instance
func NewWalletUseCase(
	walletRepo persistence.WalletRepository,
	userRepo persistence.UserRepository,
	cryptoRepo persistence.CryptocurrencyRepository,
	txRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.WalletUseCase {
	return &WalletUseCase{
		walletRepo:   walletRepo,
		userRepo:     userRepo,
		cryptoRepo:   cryptoRepo,
		txRepo:       txRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListWallets returns every wallet, largest balance first
func (u *WalletUseCase) ListWallets(ctx context.Context) ([]*entity.Wallet, error) {
	return u.walletRepo.List(ctx)
}

// GetWallet returns a wallet with its user and crypto refs
func (u *WalletUseCase) GetWallet(ctx context.Context, walletID uint64) (*entity.Wallet, error) {
	return u.walletRepo.GetByID(ctx, walletID)
}

// CreateWallet opens a wallet for an existing user and cryptocurrency
func (u *WalletUseCase) CreateWallet(ctx context.Context, input usecase.CreateWalletInput) (*entity.Wallet, error) {
	wallet, err := entity.NewWallet(input.UserID, input.CryptoID, input.Balance, u.timeProvider)
	if err != nil {
		return nil, err
	}

	exists, err := u.userRepo.Exists(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrUserNotFound
	}

	crypto, err := u.cryptoRepo.GetByID(ctx, input.CryptoID)
	if err != nil {
		return nil, err
	}

	if err := u.walletRepo.Create(ctx, wallet); err != nil {
		u.logger.Error("Failed to create wallet", map[string]any{
			"userId":   input.UserID,
			"cryptoId": input.CryptoID,
			"error":    err.Error(),
		})
		return nil, err
	}

	ref := crypto.Ref()
	wallet.Crypto = &ref

	u.logger.Info("Wallet created", map[string]any{
		"walletId": wallet.ID,
		"userId":   wallet.UserID,
		"symbol":   crypto.Symbol,
		"balance":  wallet.Balance.String(),
	})
	return wallet, nil
}

// GetWalletTransactions lists transactions of the wallet's cryptocurrency sent or received by its owner
func (u *WalletUseCase) GetWalletTransactions(ctx context.Context, walletID uint64) ([]*entity.Transaction, error) {
	wallet, err := u.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, err
	}
	return u.txRepo.ListForWallet(ctx, wallet.UserID, wallet.CryptoID)
}
