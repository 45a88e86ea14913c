package migration

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedUser struct {
	username string
	email    string
	password string
}

type seedCrypto struct {
	symbol string
	name   string
	price  string
}

// Foreign keys below are 1-based positions in defaultUsers and defaultCryptos
var (
	defaultUsers = []seedUser{
		{"john_trader", "john@example.com", "trader-john-123"},
		{"jane_crypto", "jane@example.com", "crypto-jane-456"},
		{"bob_investor", "bob@example.com", "investor-bob-789"},
		{"alice_hodler", "alice@example.com", "hodler-alice-abc"},
	}

	defaultCryptos = []seedCrypto{
		{"BTC", "Bitcoin", "45000.00"},
		{"ETH", "Ethereum", "3200.50"},
		{"XRP", "Ripple", "0.65"},
		{"DOGE", "Dogecoin", "0.08"},
	}

	defaultFiat = []struct {
		user     int
		currency string
		amount   string
	}{
		{1, "USD", "10000.00"},
		{1, "THB", "50000.00"},
		{2, "USD", "25000.00"},
		{2, "THB", "100000.00"},
		{3, "USD", "5000.00"},
		{4, "USD", "15000.00"},
		{4, "THB", "75000.00"},
	}

	defaultWallets = []struct {
		user, crypto int
		balance      string
	}{
		{1, 1, "0.5"},
		{1, 2, "2.75"},
		{2, 1, "1.25"},
		{2, 3, "150"},
		{3, 2, "5"},
		{3, 4, "10000"},
		{4, 1, "0.75"},
		{4, 3, "500"},
	}

	defaultOrders = []struct {
		user, crypto  int
		orderType     string
		amount, price string
		status        string
	}{
		{1, 1, "BUY", "0.1", "44500", "PENDING"},
		{2, 2, "SELL", "1.0", "3250", "COMPLETED"},
		{3, 3, "BUY", "1000", "0.64", "PENDING"},
		{4, 4, "BUY", "50000", "0.07", "COMPLETED"},
		{1, 3, "SELL", "100", "0.66", "CANCELLED"},
	}

	defaultTransactions = []struct {
		from, to, crypto int
		amount           string
		txType           string
	}{
		{1, 2, 1, "0.25", "TRANSFER"},
		{2, 3, 2, "1.5", "TRADE"},
		{4, 1, 3, "75", "TRANSFER"},
		{3, 4, 4, "200", "TRADE"},
		{1, 1, 1, "0.1", "DEPOSIT"},
	}
)

// Seeder loads the demo dataset into an empty database
type Seeder struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	hasher       coreport.PasswordHasher
}

// NewSeeder creates a new seeder
func NewSeeder(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, hasher coreport.PasswordHasher) *Seeder {
	return &Seeder{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		hasher:       hasher,
	}
}

// Seed inserts the default users, assets, balances, orders and transactions.
// It does nothing when any user already exists. All rows commit together.
func (s *Seeder) Seed(ctx context.Context) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.User{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("counting users: %w", err)
	}
	if count > 0 {
		s.logger.Info("Database already populated, skipping seed", map[string]any{
			"users": count,
		})
		return false, nil
	}

	users := make([]model.User, 0, len(defaultUsers))
	now := s.timeProvider.Now()
	for _, u := range defaultUsers {
		hash, err := s.hasher.Hash(u.password)
		if err != nil {
			return false, fmt.Errorf("hashing password for %s: %w", u.username, err)
		}
		users = append(users, model.User{
			Username:     u.username,
			Email:        u.email,
			PasswordHash: hash,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("seeding users: %w", err)
		}

		cryptos := make([]model.Cryptocurrency, 0, len(defaultCryptos))
		for _, c := range defaultCryptos {
			cryptos = append(cryptos, model.Cryptocurrency{
				Symbol:    c.symbol,
				Name:      c.name,
				Price:     decimal.RequireFromString(c.price),
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
		if err := tx.Create(&cryptos).Error; err != nil {
			return fmt.Errorf("seeding cryptocurrencies: %w", err)
		}

		userID := func(pos int) uint64 { return users[pos-1].ID }
		cryptoID := func(pos int) uint64 { return cryptos[pos-1].ID }

		fiat := make([]model.FiatBalance, 0, len(defaultFiat))
		for _, f := range defaultFiat {
			fiat = append(fiat, model.FiatBalance{
				UserID:    userID(f.user),
				Currency:  f.currency,
				Amount:    decimal.RequireFromString(f.amount),
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
		if err := tx.Omit(clause.Associations).Create(&fiat).Error; err != nil {
			return fmt.Errorf("seeding fiat balances: %w", err)
		}

		wallets := make([]model.Wallet, 0, len(defaultWallets))
		for _, w := range defaultWallets {
			wallets = append(wallets, model.Wallet{
				UserID:    userID(w.user),
				CryptoID:  cryptoID(w.crypto),
				Balance:   decimal.RequireFromString(w.balance),
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
		if err := tx.Omit(clause.Associations).Create(&wallets).Error; err != nil {
			return fmt.Errorf("seeding wallets: %w", err)
		}

		orders := make([]model.Order, 0, len(defaultOrders))
		for _, o := range defaultOrders {
			orders = append(orders, model.Order{
				UserID:    userID(o.user),
				CryptoID:  cryptoID(o.crypto),
				Type:      o.orderType,
				Amount:    decimal.RequireFromString(o.amount),
				Price:     decimal.RequireFromString(o.price),
				Status:    o.status,
				CreatedAt: now,
				UpdatedAt: now,
			})
		}
		if err := tx.Omit(clause.Associations).Create(&orders).Error; err != nil {
			return fmt.Errorf("seeding orders: %w", err)
		}

		txs := make([]model.Transaction, 0, len(defaultTransactions))
		for _, t := range defaultTransactions {
			txs = append(txs, model.Transaction{
				FromUserID: userID(t.from),
				ToUserID:   userID(t.to),
				CryptoID:   cryptoID(t.crypto),
				Amount:     decimal.RequireFromString(t.amount),
				TxType:     t.txType,
				CreatedAt:  now,
			})
		}
		if err := tx.Omit(clause.Associations).Create(&txs).Error; err != nil {
			return fmt.Errorf("seeding transactions: %w", err)
		}

		return nil
	})
	if err != nil {
		s.logger.Error("Failed to seed database", map[string]any{
			"error": err.Error(),
		})
		return false, err
	}

	s.logger.Info("Database seeded with default data", map[string]any{
		"users":        len(defaultUsers),
		"cryptos":      len(defaultCryptos),
		"fiat":         len(defaultFiat),
		"wallets":      len(defaultWallets),
		"orders":       len(defaultOrders),
		"transactions": len(defaultTransactions),
	})
	return true, nil
}
