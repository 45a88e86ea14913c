package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/crypto-exchange/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler the router serves
type Handlers struct {
	System      *handler.SystemHandler
	User        *handler.UserHandler
	Crypto      *handler.CryptocurrencyHandler
	Wallet      *handler.WalletHandler
	FiatBalance *handler.FiatBalanceHandler
	Order       *handler.OrderHandler
	Transaction *handler.TransactionHandler
}

type route struct {
	method      string
	path        string
	description string
	handle      gin.HandlerFunc
}

// SetupRoutes configures all the routes for the API and records them in the /api catalogue
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/", h.System.Root)
	router.GET("/health", h.System.Health)

	api := router.Group("/api")
	api.GET("", h.System.Catalogue)

	groups := []struct {
		name   string
		prefix string
		routes []route
	}{
		{"users", "/users", []route{
			{http.MethodGet, "", "List all users", h.User.ListUsers},
			{http.MethodPost, "", "Create a user", h.User.CreateUser},
			{http.MethodGet, "/top-traders", "Users ranked by order count", h.User.TopTraders},
			{http.MethodGet, "/:id", "Get a user by ID", h.User.GetUser},
			{http.MethodGet, "/:id/wallets", "Wallets of a user", h.User.GetUserWallets},
			{http.MethodGet, "/:id/fiat-balances", "Fiat balances of a user", h.User.GetUserFiatBalances},
			{http.MethodGet, "/:id/orders", "Orders of a user, optionally by status", h.User.GetUserOrders},
			{http.MethodGet, "/:id/transactions", "Transactions sent or received by a user", h.User.GetUserTransactions},
			{http.MethodGet, "/:id/summary", "Holdings and latest activity of a user", h.User.GetUserSummary},
			{http.MethodGet, "/:id/wallet-value", "USD value of a user's wallets", h.User.GetWalletValue},
		}},
		{"cryptocurrencies", "/cryptocurrencies", []route{
			{http.MethodGet, "", "List all cryptocurrencies", h.Crypto.ListCryptocurrencies},
			{http.MethodPost, "", "List a new cryptocurrency", h.Crypto.CreateCryptocurrency},
			{http.MethodGet, "/top-volume", "Cryptocurrencies ranked by held volume", h.Crypto.TopByVolume},
			{http.MethodGet, "/symbol/:symbol", "Get a cryptocurrency by symbol", h.Crypto.GetBySymbol},
			{http.MethodGet, "/:id", "Get a cryptocurrency by ID", h.Crypto.GetCryptocurrency},
			{http.MethodGet, "/:id/market", "Holder and activity overview", h.Crypto.MarketOverview},
			{http.MethodGet, "/:id/holders", "Largest holders", h.Crypto.TopHolders},
		}},
		{"wallets", "/wallets", []route{
			{http.MethodGet, "", "List all wallets", h.Wallet.ListWallets},
			{http.MethodPost, "", "Create a wallet", h.Wallet.CreateWallet},
			{http.MethodGet, "/:id", "Get a wallet with its USD value", h.Wallet.GetWallet},
			{http.MethodGet, "/:id/transactions", "Transaction history of a wallet", h.Wallet.GetWalletTransactions},
		}},
		{"fiat_balances", "/fiat-balances", []route{
			{http.MethodGet, "", "List all fiat balances", h.FiatBalance.ListFiatBalances},
			{http.MethodPost, "", "Create a fiat balance", h.FiatBalance.CreateFiatBalance},
			{http.MethodGet, "/totals/:currency", "Total held in a currency", h.FiatBalance.TotalByCurrency},
			{http.MethodGet, "/:id/convert", "Convert a balance at a given rate", h.FiatBalance.ConvertBalance},
		}},
		{"orders", "/orders", []route{
			{http.MethodGet, "", "List orders with filters", h.Order.ListOrders},
			{http.MethodPost, "", "Place an order", h.Order.CreateOrder},
			{http.MethodGet, "/market/:crypto_id", "Pending order book", h.Order.GetMarketData},
			{http.MethodGet, "/:id", "Get an order by ID", h.Order.GetOrder},
			{http.MethodPatch, "/:id/status", "Update an order's status", h.Order.UpdateOrderStatus},
		}},
		{"transactions", "/transactions", []route{
			{http.MethodGet, "", "List transactions with filters", h.Transaction.ListTransactions},
			{http.MethodPost, "", "Record a transaction", h.Transaction.CreateTransaction},
			{http.MethodGet, "/recent", "Latest transactions", h.Transaction.RecentActivity},
			{http.MethodGet, "/:id", "Get a transaction by ID", h.Transaction.GetTransaction},
			{http.MethodGet, "/:id/volume", "Trailing volume of a cryptocurrency", h.Transaction.VolumeStats},
		}},
	}

	for _, g := range groups {
		group := api.Group(g.prefix)
		for _, r := range g.routes {
			group.Handle(r.method, r.path, r.handle)
			h.System.Register(g.name, r.method, "/api"+g.prefix+r.path, r.description)
		}
	}

	router.NoRoute(h.System.NotFound)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, allowedOrigins []string) {
	// Request id first so every later middleware can log it
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins))
}
