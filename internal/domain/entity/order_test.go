package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	mockTime, fixedTime := fixedTimeProvider(t)

	t.Run("Valid buy order starts pending", func(t *testing.T) {
		o, err := NewOrder(1, 1, "BUY", decimal.RequireFromString("0.1"), decimal.NewFromInt(44500), mockTime)

		require.NoError(t, err)
		assert.Equal(t, OrderTypeBuy, o.Type)
		assert.Equal(t, OrderStatusPending, o.Status)
		assert.Equal(t, "4450", o.TotalValue().String())
		assert.Equal(t, fixedTime, o.CreatedAt)
	})

	t.Run("Invalid type", func(t *testing.T) {
		for _, typ := range []string{"HOLD", "buy", ""} {
			t.Run(typ, func(t *testing.T) {
				o, err := NewOrder(1, 1, typ, decimal.NewFromInt(1), decimal.NewFromInt(1), mockTime)
				assert.Nil(t, o)
				assert.ErrorIs(t, err, errs.ErrInvalidOrderType)
				assert.True(t, errs.IsValidationError(err))
			})
		}
	})

	t.Run("Amount and price bounds", func(t *testing.T) {
		testCases := []struct {
			description string
			amount      string
			price       string
			field       string
		}{
			{"zero amount", "0", "1", "amount"},
			{"negative price", "1", "-5", "price"},
			{"sub satoshi amount", "0.000000001", "1", "amount"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := NewOrder(1, 1, "SELL", decimal.RequireFromString(tc.amount), decimal.RequireFromString(tc.price), mockTime)

				var vErr *errs.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tc.field, vErr.Field)
			})
		}
	})
}

func TestOrderTransitionTo(t *testing.T) {
	mockTime, _ := fixedTimeProvider(t)

	testCases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusCompleted, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusPending, true},
		{OrderStatusCompleted, OrderStatusCompleted, true},
		{OrderStatusCompleted, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusCompleted, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			o := &Order{ID: 9, Status: tc.from}
			old, err := o.TransitionTo(tc.to, mockTime)

			assert.Equal(t, tc.from, old)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, o.Status)
			} else {
				assert.ErrorIs(t, err, errs.ErrOrderFinalized)
				assert.Equal(t, tc.from, o.Status)
			}
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	s, err := ParseOrderStatus("CANCELLED")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusCancelled, s)
	assert.True(t, s.IsTerminal())

	_, err = ParseOrderStatus("DONE")
	assert.ErrorIs(t, err, errs.ErrInvalidOrderStatus)
}

func TestOrderBookSpread(t *testing.T) {
	order := func(price string) *Order {
		return &Order{Price: decimal.RequireFromString(price), Amount: decimal.NewFromInt(1)}
	}

	t.Run("Both sides present", func(t *testing.T) {
		book := OrderBook{
			BuyOrders:  []*Order{order("44500"), order("44000")},
			SellOrders: []*Order{order("45100"), order("46000")},
		}
		assert.Equal(t, "600", book.Spread().String())
	})

	t.Run("Empty side gives zero", func(t *testing.T) {
		assert.True(t, OrderBook{BuyOrders: []*Order{order("1")}}.Spread().IsZero())
		assert.True(t, OrderBook{SellOrders: []*Order{order("1")}}.Spread().IsZero())
		assert.True(t, OrderBook{}.Spread().IsZero())
	})

	t.Run("Crossed book gives negative spread", func(t *testing.T) {
		book := OrderBook{BuyOrders: []*Order{order("100")}, SellOrders: []*Order{order("90")}}
		assert.Equal(t, "-10", book.Spread().String())
	})
}

func TestTotalOrderValue(t *testing.T) {
	orders := []*Order{
		{Amount: decimal.RequireFromString("0.1"), Price: decimal.NewFromInt(44500)},
		{Amount: decimal.NewFromInt(1000), Price: decimal.RequireFromString("0.64")},
	}
	assert.Equal(t, "5090", TotalOrderValue(orders).String())
	assert.True(t, TotalOrderValue(nil).IsZero())
}
