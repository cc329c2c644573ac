// Package identity abstracts the external authentication provider. The
// session manager only sees ID tokens; how they were obtained (password
// sign-in, Google popup) is the provider's business.
package identity

import (
	"context"
	"errors"
)

var (
	// ErrInvalidCredentials means the provider rejected the email/password pair.
	ErrInvalidCredentials = errors.New("identity: invalid credentials")

	// ErrEmailInUse means sign-up was attempted with an already registered email.
	ErrEmailInUse = errors.New("identity: email already in use")

	// ErrCancelled means the user abandoned an interactive sign-in flow.
	ErrCancelled = errors.New("identity: sign-in cancelled")

	// ErrUnreachable means the provider could not be contacted.
	ErrUnreachable = errors.New("identity: provider unreachable")
)

// Provider issues ID tokens that the backend exchanges for sessions.
type Provider interface {
	// SignIn authenticates an existing account and returns an ID token.
	SignIn(ctx context.Context, email, password string) (string, error)

	// SignUp creates an account with the given display name and returns an
	// ID token for it.
	SignUp(ctx context.Context, email, password, displayName string) (string, error)

	// SignInInteractive runs the provider's interactive flow (e.g. the
	// Google popup) and returns an ID token.
	SignInInteractive(ctx context.Context) (string, error)

	// SignOut invalidates any provider-side state.
	SignOut(ctx context.Context) error
}
