package repository

import (
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorType is the store-level class of a driver error
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	ConstraintError   ErrorType = "constraint"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
)

// Markers are matched against the error text of both supported drivers.
// Postgres reports SQLSTATE codes through pgx; sqlite only has its messages.
var errorMarkers = []struct {
	kind    ErrorType
	markers []string
}{
	{DuplicateKeyError, []string{
		"SQLSTATE 23505",
		"duplicate key value",
		"UNIQUE constraint failed",
	}},
	{LockError, []string{
		"SQLSTATE 40P01",
		"SQLSTATE 40001",
		"SQLSTATE 55P03",
		"deadlock detected",
		"could not serialize access",
		"database is locked",
		"database table is locked",
	}},
	{ConstraintError, []string{
		"SQLSTATE 23503",
		"SQLSTATE 23502",
		"SQLSTATE 23514",
		"violates foreign key constraint",
		"violates not-null constraint",
		"violates check constraint",
		"FOREIGN KEY constraint failed",
		"NOT NULL constraint failed",
		"CHECK constraint failed",
	}},
}

// ErrorClassifier maps gorm and driver errors onto domain sentinels
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the class of err; anything unrecognised is a ConnectionError
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, group := range errorMarkers {
		for _, marker := range group.markers {
			if strings.Contains(msg, marker) {
				return group.kind
			}
		}
	}
	return ConnectionError
}

// Translate maps a gorm error onto the domain sentinels of one resource.
// duplicate may be nil for resources without unique columns.
func (c *ErrorClassifier) Translate(err, notFound, duplicate error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	switch c.Classify(err) {
	case DuplicateKeyError:
		if duplicate != nil {
			return duplicate
		}
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	case ConstraintError:
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	case LockError:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseBusy, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
}

// clampLimit applies limit to a query only when it is positive
func clampLimit(db *gorm.DB, limit int) *gorm.DB {
	if limit > 0 {
		return db.Limit(limit)
	}
	return db
}
