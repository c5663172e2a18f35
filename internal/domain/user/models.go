package user

import (
	"errors"
	"time"
)

// Domain errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login responses don't reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateUserParams struct {
	Email        string
	Name         string
	PasswordHash string
}
