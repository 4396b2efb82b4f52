package interfaces

import (
	"context"
	"errors"
)

var (
	// ErrInvalidToken means the provider rejected the access token (or the
	// lookup failed); callers translate it to 401.
	ErrInvalidToken = errors.New("invalid access token")
	// ErrSignupRejected means the provider refused the account request
	// (duplicate email, weak password); callers translate it to 400.
	ErrSignupRejected = errors.New("signup rejected by identity provider")
)

// Identity is the resolved user behind a bearer token.
type Identity struct {
	ID    string
	Email string
	Name  string
}

// IIdentityProvider abstracts the external auth service. The record service
// never manages credentials itself: tokens are exchanged for identities and
// accounts are created with auto-confirmed email through this seam.
type IIdentityProvider interface {
	VerifyToken(ctx context.Context, accessToken string) (Identity, error)
	CreateUser(ctx context.Context, email, password, name string) (Identity, error)
}
