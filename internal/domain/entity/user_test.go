package entity

import (
	"strings"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/crypto-exchange/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedTimeProvider(t *testing.T) (*coremocks.MockTimeProvider, time.Time) {
	fixedTime := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	return mockTime, fixedTime
}

func TestNewUser(t *testing.T) {
	mockTime, fixedTime := fixedTimeProvider(t)

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser(" john_trader ", "john@example.com", "$2a$10$hash", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "john_trader", user.Username)
		assert.Equal(t, "john@example.com", user.Email)
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
		assert.Equal(t, UserRef{Username: "john_trader", Email: "john@example.com"}, user.Ref())
	})

	t.Run("Invalid usernames", func(t *testing.T) {
		testCases := []string{"", "ab", strings.Repeat("x", 51)}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				user, err := NewUser(tc, "john@example.com", "hash", mockTime)
				assert.Nil(t, user)
				assert.ErrorIs(t, err, errs.ErrValidation)

				var vErr *errs.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "username", vErr.Field)
			})
		}
	})

	t.Run("Invalid emails", func(t *testing.T) {
		testCases := []string{"", "not-an-email", "John <john@example.com>", strings.Repeat("a", 95) + "@x.com"}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				user, err := NewUser("john_trader", tc, "hash", mockTime)
				assert.Nil(t, user)

				var vErr *errs.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "email", vErr.Field)
			})
		}
	})

	t.Run("Missing password hash", func(t *testing.T) {
		user, err := NewUser("john_trader", "john@example.com", "", mockTime)
		assert.Nil(t, user)
		assert.True(t, errs.IsValidationError(err))
	})
}
