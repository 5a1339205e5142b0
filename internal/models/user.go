package models

import (
	"fmt"
	"regexp"
	"time"

	"golang.org/x/oauth2"

	"sportsdeck/internal/shared"
)

// Validation rules matching the registration form of the original client.
const (
	UsernameMinLength = 3
	UsernameMaxLength = 20
	PasswordMinLength = 4
)

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Account is a locally self-registered user. Accounts are append-only: once
// created they are never mutated, only removed by a full storage clear.
//
// The password is stored in plaintext. This mirrors the demo nature of the
// app and is not suitable for anything beyond local throwaway accounts.
type Account struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewAccount creates an Account with a generated ID.
func NewAccount(username, email, password string) Account {
	return Account{
		ID:        shared.GenerateID(),
		Username:  username,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now(),
	}
}

// Validate checks the account fields against the registration rules.
func (a Account) Validate() error {
	if len(a.Username) < UsernameMinLength {
		return fmt.Errorf("%w: username must be at least %d characters", shared.ErrInvalidInput, UsernameMinLength)
	}
	if len(a.Username) > UsernameMaxLength {
		return fmt.Errorf("%w: username must be at most %d characters", shared.ErrInvalidInput, UsernameMaxLength)
	}
	if !emailRegex.MatchString(a.Email) {
		return fmt.Errorf("%w: invalid email address", shared.ErrInvalidInput)
	}
	if len(a.Password) < PasswordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters", shared.ErrInvalidInput, PasswordMinLength)
	}
	return nil
}

// RemoteUser is the profile payload returned by the auth API. Its shape is
// not identical to Account: remote IDs are numeric and the profile carries
// display fields the local directory never records.
type RemoteUser struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Image     string `json:"image"`
	BirthDate string `json:"birthDate"`
	Phone     string `json:"phone"`
}

// DisplayName returns the best available human-readable name.
func (u RemoteUser) DisplayName() string {
	if u.FirstName != "" || u.LastName != "" {
		switch {
		case u.FirstName == "":
			return u.LastName
		case u.LastName == "":
			return u.FirstName
		default:
			return u.FirstName + " " + u.LastName
		}
	}
	return u.Username
}

// Session is the record of an authenticated user and their access token.
// At most one Session is active per process; it is mirrored to durable
// storage and restored on cold start.
type Session struct {
	User  RemoteUser    `json:"user"`
	Token *oauth2.Token `json:"token"`
}

// LocalSession builds a Session for a directory account with a synthesized
// token. No server round-trip is involved.
func LocalSession(account Account) Session {
	return Session{
		User: RemoteUser{
			Username: account.Username,
			Email:    account.Email,
		},
		Token: &oauth2.Token{AccessToken: shared.GenerateID()},
	}
}
