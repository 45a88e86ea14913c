package entity

// RecentActivityLimit bounds the recent orders and transactions in a user summary
const RecentActivityLimit = 5

// UserSummary is a user's profile with holdings and latest activity
type UserSummary struct {
	User               *User
	Wallets            []*Wallet
	FiatBalances       []*FiatBalance
	RecentOrders       []*Order
	RecentTransactions []*Transaction
	TotalOrders        int64
	TotalTransactions  int64
}
