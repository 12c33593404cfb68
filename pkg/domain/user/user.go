package user

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserUnauthorized is returned when credentials or tokens are rejected.
	ErrUserUnauthorized = errors.New("user unauthorized")
)

// User represents a user in the system.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Names     string    `json:"names"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// New creates a new User with a hashed password and current timestamps.
func New(username, email, password string) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if n := utf8.RuneCountInString(username); n < 3 || n > 50 {
		return nil, domain.Invalid("username", "must be between 3 and 50 characters")
	}
	if !utils.IsEmail(email) {
		return nil, domain.Invalid("email", "must be a valid address")
	}
	if len(password) < 6 || len(password) > utils.MaxPasswordBytes {
		return nil, domain.Invalid("password", "must be between 6 and 72 bytes")
	}
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     strings.ToLower(email),
		Password:  hashedPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
