package entity

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/crypto-exchange/internal/domain/error"
	coreport "github.com/amirhossein-jamali/crypto-exchange/internal/domain/port/core"
)

// Field limits for users
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MaxEmailLength    = 100
)

// User is an exchange account holder
type User struct {
	ID           uint64
	Username     string
	Email        string
	PasswordHash string // never rendered
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRef is the projection of a user embedded in other entities
type UserRef struct {
	ID       uint64
	Username string
	Email    string
}

// TraderStat pairs a user with the number of orders they placed
type TraderStat struct {
	User       UserRef
	OrderCount int64
}

// NewUser creates a user after validating its identity fields
func NewUser(username, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, errs.NewValidationError("password", "is required")
	}

	now := timeProvider.Now()
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ValidateUsername checks presence and length of a username
func ValidateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n == 0 {
		return errs.NewValidationError("username", "is required")
	}
	if n < MinUsernameLength || n > MaxUsernameLength {
		return errs.NewValidationError("username", "must be between 3 and 50 characters")
	}
	return nil
}

// ValidateEmail checks that the email is a bare, well formed address
func ValidateEmail(email string) error {
	if email == "" {
		return errs.NewValidationError("email", "is required")
	}
	if len(email) > MaxEmailLength {
		return errs.NewValidationError("email", "must be at most 100 characters")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValidationError("email", "must be a valid email address")
	}
	return nil
}

// Ref returns the public projection of the user
func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Username: u.Username, Email: u.Email}
}
