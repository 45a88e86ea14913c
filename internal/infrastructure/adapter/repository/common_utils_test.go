package repository

import (
	"errors"
	"testing"

	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorClassifier_Classify(t *testing.T) {
	c := NewErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, ""},
		{"postgres unique", errors.New(duplicateKeyMessage), DuplicateKeyError},
		{"sqlite unique", errors.New("UNIQUE constraint failed: users.email"), DuplicateKeyError},
		{"postgres deadlock", errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"), LockError},
		{"postgres serialization", errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)"), LockError},
		{"sqlite busy", errors.New("database is locked (5) (SQLITE_BUSY)"), LockError},
		{"postgres foreign key", errors.New(`ERROR: insert or update on table "wallets" violates foreign key constraint "fk_wallets_user" (SQLSTATE 23503)`), ConstraintError},
		{"sqlite foreign key", errors.New("FOREIGN KEY constraint failed"), ConstraintError},
		{"sqlite not null", errors.New("NOT NULL constraint failed: orders.price"), ConstraintError},
		{"reset", errors.New("read: connection reset by peer"), ConnectionError},
		{"dial", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), ConnectionError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestErrorClassifier_Translate(t *testing.T) {
	c := NewErrorClassifier()

	assert.NoError(t, c.Translate(nil, errs.ErrUserNotFound, errs.ErrDuplicateUser))
	assert.Equal(t, errs.ErrWalletNotFound, c.Translate(gorm.ErrRecordNotFound, errs.ErrWalletNotFound, nil))
	assert.Equal(t, errs.ErrDuplicateFiatBalance,
		c.Translate(errors.New("UNIQUE constraint failed: fiat_balances.user_id, fiat_balances.currency"), errs.ErrFiatBalanceNotFound, errs.ErrDuplicateFiatBalance))

	err := c.Translate(errors.New(duplicateKeyMessage), errs.ErrOrderNotFound, nil)
	assert.ErrorIs(t, err, errs.ErrConstraintViolation)

	err = c.Translate(errors.New("FOREIGN KEY constraint failed"), errs.ErrOrderNotFound, nil)
	assert.ErrorIs(t, err, errs.ErrConstraintViolation)

	err = c.Translate(errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"), errs.ErrOrderNotFound, nil)
	assert.ErrorIs(t, err, errs.ErrDatabaseBusy)
	assert.Equal(t, errs.CodeDatabaseBusy, errs.ErrorCode(err))

	err = c.Translate(errors.New("dial tcp: i/o timeout"), errs.ErrOrderNotFound, nil)
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
}
