package dto

import (
	"time"

	"github.com/amirhossein-jamali/crypto-exchange/internal/domain/entity"
)

// CreateUserRequest represents the API request for registering a user
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents a user; the password hash is never rendered
type UserResponse struct {
	UserID    uint64    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRefResponse is the user projection embedded in other resources
type UserRefResponse struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// TraderResponse is one row of the top traders ranking
type TraderResponse struct {
	UserRefResponse
	OrderCount int64 `json:"order_count"`
}

// UserSummaryResponse is a user's profile with holdings and latest activity
type UserSummaryResponse struct {
	User               UserResponse          `json:"user"`
	WalletsCount       int                   `json:"wallets_count"`
	FiatBalancesCount  int                   `json:"fiat_balances_count"`
	TotalOrders        int64                 `json:"total_orders"`
	TotalTransactions  int64                 `json:"total_transactions"`
	Wallets            []WalletResponse      `json:"wallets"`
	FiatBalances       []FiatBalanceResponse `json:"fiat_balances"`
	RecentOrders       []OrderResponse       `json:"recent_orders"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
}

// NewUserResponse maps a user entity
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewUserResponses maps a list of users
func NewUserResponses(users []*entity.User) []UserResponse {
	return mapSlice(users, NewUserResponse)
}

func newUserRef(ref *entity.UserRef) *UserRefResponse {
	if ref == nil {
		return nil
	}
	return &UserRefResponse{UserID: ref.ID, Username: ref.Username, Email: ref.Email}
}

// NewTraderResponses maps the top traders ranking
func NewTraderResponses(stats []entity.TraderStat) []TraderResponse {
	return mapSlice(stats, func(s entity.TraderStat) TraderResponse {
		return TraderResponse{
			UserRefResponse: UserRefResponse{UserID: s.User.ID, Username: s.User.Username, Email: s.User.Email},
			OrderCount:      s.OrderCount,
		}
	})
}

// NewUserSummaryResponse maps a user summary
func NewUserSummaryResponse(s *entity.UserSummary) UserSummaryResponse {
	return UserSummaryResponse{
		User:               NewUserResponse(s.User),
		WalletsCount:       len(s.Wallets),
		FiatBalancesCount:  len(s.FiatBalances),
		TotalOrders:        s.TotalOrders,
		TotalTransactions:  s.TotalTransactions,
		Wallets:            NewWalletResponses(s.Wallets),
		FiatBalances:       NewFiatBalanceResponses(s.FiatBalances),
		RecentOrders:       NewOrderResponses(s.RecentOrders),
		RecentTransactions: NewTransactionResponses(s.RecentTransactions),
	}
}
