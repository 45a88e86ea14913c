package repository

import (
	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/model"
)

func userToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func userRef(m *model.User) *entity.UserRef {
	if m == nil {
		return nil
	}
	return &entity.UserRef{ID: m.ID, Username: m.Username, Email: m.Email}
}

func cryptoToEntity(m *model.Cryptocurrency) *entity.Cryptocurrency {
	return &entity.Cryptocurrency{
		ID:        m.ID,
		Symbol:    m.Symbol,
		Name:      m.Name,
		Price:     m.Price,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// cryptoRef returns nil for a dangling reference so that valuation falls back to Unknown
func cryptoRef(m *model.Cryptocurrency) *entity.CryptoRef {
	if m == nil {
		return nil
	}
	return &entity.CryptoRef{ID: m.ID, Symbol: m.Symbol, Name: m.Name, Price: m.Price}
}

func walletToEntity(m *model.Wallet) *entity.Wallet {
	return &entity.Wallet{
		ID:        m.ID,
		UserID:    m.UserID,
		CryptoID:  m.CryptoID,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		User:      userRef(m.User),
		Crypto:    cryptoRef(m.Crypto),
	}
}

func fiatToEntity(m *model.FiatBalance) *entity.FiatBalance {
	return &entity.FiatBalance{
		ID:        m.ID,
		UserID:    m.UserID,
		Currency:  entity.FiatCurrency(m.Currency),
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		User:      userRef(m.User),
	}
}

func orderToEntity(m *model.Order) *entity.Order {
	return &entity.Order{
		ID:        m.ID,
		UserID:    m.UserID,
		CryptoID:  m.CryptoID,
		Type:      entity.OrderType(m.Type),
		Amount:    m.Amount,
		Price:     m.Price,
		Status:    entity.OrderStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		User:      userRef(m.User),
		Crypto:    cryptoRef(m.Crypto),
	}
}

func transactionToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:         m.ID,
		FromUserID: m.FromUserID,
		ToUserID:   m.ToUserID,
		CryptoID:   m.CryptoID,
		Amount:     m.Amount,
		TxType:     entity.TxType(m.TxType),
		CreatedAt:  m.CreatedAt,
		FromUser:   userRef(m.FromUser),
		ToUser:     userRef(m.ToUser),
		Crypto:     cryptoRef(m.Crypto),
	}
}

// mapAll converts a slice of models with fn
func mapAll[M any, E any](models []M, fn func(*M) E) []E {
	out := make([]E, 0, len(models))
	for i := range models {
		out = append(out, fn(&models[i]))
	}
	return out
}
