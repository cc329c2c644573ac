// Package session owns the authenticated session of the client: it drives
// the identity provider, exchanges provider tokens for backend sessions, and
// keeps the credential durable across restarts.
package session

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/Hop-Syder/nexus-connect-t4/internal/apiclient"
	"github.com/Hop-Syder/nexus-connect-t4/internal/identity"
	"github.com/Hop-Syder/nexus-connect-t4/internal/models"
)

// FailureKind classifies why an authentication attempt failed. The set is
// closed so callers can switch on it without string matching.
type FailureKind string

const (
	// KindInvalidCredentials covers wrong email/password pairs.
	KindInvalidCredentials FailureKind = "invalid_credentials"
	// KindCancelled covers abandoned interactive sign-in.
	KindCancelled FailureKind = "cancelled"
	// KindUnreachable covers network failures to the provider or backend.
	KindUnreachable FailureKind = "unreachable"
	// KindBackend covers rejections from the backend exchange.
	KindBackend FailureKind = "backend"
)

// AuthError is a classified authentication failure with a user-facing message.
type AuthError struct {
	Kind    FailureKind
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// AuthResult is the uniform outcome of every authentication entry point.
// Exactly one of User and Err is set.
type AuthResult struct {
	Success bool
	User    *models.UserResponse
	Err     *AuthError
}

func failure(kind FailureKind, message string) AuthResult {
	return AuthResult{Err: &AuthError{Kind: kind, Message: message}}
}

// Manager is the session state machine: logged out, or logged in with a
// resolved user. All entry points return AuthResult instead of an error so
// callers handle success and failure through one shape.
type Manager struct {
	provider identity.Provider
	api      *apiclient.Client
	store    TokenStore

	mu   sync.RWMutex
	user *models.UserResponse
}

// NewManager wires a provider, API client and credential store together.
func NewManager(provider identity.Provider, api *apiclient.Client, store TokenStore) *Manager {
	return &Manager{provider: provider, api: api, store: store}
}

// CurrentUser returns the resolved user, or nil when logged out.
func (m *Manager) CurrentUser() *models.UserResponse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// IsAuthenticated reports whether a user session is active.
func (m *Manager) IsAuthenticated() bool {
	return m.CurrentUser() != nil
}

// Login authenticates with email and password.
func (m *Manager) Login(ctx context.Context, email, password string) AuthResult {
	idToken, err := m.provider.SignIn(ctx, email, password)
	if err != nil {
		return m.providerFailure(err)
	}
	return m.exchange(ctx, idToken)
}

// Register creates a provider account then opens a session for it. The
// backend creates its own user record during the exchange, splitting the
// display name back into first and last name.
func (m *Manager) Register(ctx context.Context, email, password, firstName, lastName string) AuthResult {
	displayName := strings.TrimSpace(firstName + " " + lastName)
	idToken, err := m.provider.SignUp(ctx, email, password, displayName)
	if err != nil {
		return m.providerFailure(err)
	}
	return m.exchange(ctx, idToken)
}

// LoginWithProvider runs the interactive sign-in flow (e.g. Google).
func (m *Manager) LoginWithProvider(ctx context.Context) AuthResult {
	idToken, err := m.provider.SignInInteractive(ctx)
	if err != nil {
		return m.providerFailure(err)
	}
	return m.exchange(ctx, idToken)
}

// Resume restores the session saved by a previous run. A missing credential
// leaves the manager logged out without error; a rejected one clears the
// stored credential so the next run starts clean.
func (m *Manager) Resume(ctx context.Context) AuthResult {
	token, err := m.store.Load()
	if err != nil {
		return failure(KindBackend, "Impossible de lire la session enregistrée")
	}
	if token == "" {
		return failure(KindInvalidCredentials, "Aucune session enregistrée")
	}

	m.api.SetToken(token)
	user, err := m.api.Me(ctx)
	if err != nil {
		m.Logout(ctx)
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) {
			return failure(KindInvalidCredentials, "La session enregistrée a expiré")
		}
		return failure(KindUnreachable, "Impossible de contacter le serveur")
	}

	m.mu.Lock()
	m.user = user
	m.mu.Unlock()
	return AuthResult{Success: true, User: user}
}

// Logout clears every trace of the session: provider state, stored
// credential, API client token and the in-memory user.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.provider.SignOut(ctx); err != nil {
		log.Printf("Warning: provider sign-out failed: %v", err)
	}
	if err := m.store.Clear(); err != nil {
		log.Printf("Warning: failed to clear stored session: %v", err)
	}
	m.api.ClearToken()
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()
}

// exchange trades a provider ID token for a backend session and records it.
func (m *Manager) exchange(ctx context.Context, idToken string) AuthResult {
	resp, err := m.api.ExchangeFirebaseToken(ctx, idToken)
	if err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) {
			msg := apiErr.Detail
			if msg == "" {
				msg = "La connexion a été refusée par le serveur"
			}
			return failure(KindBackend, msg)
		}
		return failure(KindUnreachable, "Impossible de contacter le serveur")
	}

	m.api.SetToken(resp.AccessToken)
	if err := m.store.Save(resp.AccessToken); err != nil {
		log.Printf("Warning: failed to persist session: %v", err)
	}

	m.mu.Lock()
	m.user = &resp.User
	m.mu.Unlock()
	return AuthResult{Success: true, User: &resp.User}
}

// providerFailure folds the provider's closed error set into AuthResult.
func (m *Manager) providerFailure(err error) AuthResult {
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		return failure(KindInvalidCredentials, "Email ou mot de passe incorrect")
	case errors.Is(err, identity.ErrEmailInUse):
		return failure(KindInvalidCredentials, "Cet email est déjà utilisé")
	case errors.Is(err, identity.ErrCancelled):
		return failure(KindCancelled, "Connexion annulée")
	case errors.Is(err, identity.ErrUnreachable):
		return failure(KindUnreachable, "Impossible de contacter le service d'authentification")
	default:
		return failure(KindBackend, err.Error())
	}
}
