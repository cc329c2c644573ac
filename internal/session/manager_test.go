package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hop-Syder/nexus-connect-t4/internal/apiclient"
	"github.com/Hop-Syder/nexus-connect-t4/internal/identity"
	"github.com/Hop-Syder/nexus-connect-t4/internal/models"
)

// fakeProvider scripts the identity provider's answers.
type fakeProvider struct {
	idToken     string
	signInErr   error
	signUpErr   error
	popupErr    error
	signOutErr  error
	signedOut   bool
	displayName string
}

func (p *fakeProvider) SignIn(ctx context.Context, email, password string) (string, error) {
	if p.signInErr != nil {
		return "", p.signInErr
	}
	return p.idToken, nil
}

func (p *fakeProvider) SignUp(ctx context.Context, email, password, displayName string) (string, error) {
	p.displayName = displayName
	if p.signUpErr != nil {
		return "", p.signUpErr
	}
	return p.idToken, nil
}

func (p *fakeProvider) SignInInteractive(ctx context.Context) (string, error) {
	if p.popupErr != nil {
		return "", p.popupErr
	}
	return p.idToken, nil
}

func (p *fakeProvider) SignOut(ctx context.Context) error {
	p.signedOut = true
	return p.signOutErr
}

// fakeBackend serves the exchange and resolve endpoints.
type fakeBackend struct {
	user          models.UserResponse
	token         string
	exchangeCode  int
	exchangeError string
	meCode        int
}

func (b *fakeBackend) serve(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/firebase", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if b.exchangeCode != 0 {
			w.WriteHeader(b.exchangeCode)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "detail": b.exchangeError})
			return
		}
		json.NewEncoder(w).Encode(models.TokenResponse{
			AccessToken: b.token,
			TokenType:   "bearer",
			User:        b.user,
		})
	})
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer "+b.token || b.meCode != 0 {
			code := b.meCode
			if code == 0 {
				code = http.StatusUnauthorized
			}
			w.WriteHeader(code)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "detail": "Invalid or expired token"})
			return
		}
		json.NewEncoder(w).Encode(b.user)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestManager(t *testing.T, provider identity.Provider, backend *fakeBackend) (*Manager, *apiclient.Client, *MemoryStore) {
	t.Helper()
	srv := backend.serve(t)
	api := apiclient.New(srv.URL)
	store := &MemoryStore{}
	return NewManager(provider, api, store), api, store
}

func TestLoginSuccess(t *testing.T) {
	backend := &fakeBackend{
		user:  models.UserResponse{ID: "u1", Email: "a@b.com", HasProfile: true},
		token: "session-token",
	}
	provider := &fakeProvider{idToken: "id-token"}
	m, api, store := newTestManager(t, provider, backend)

	res := m.Login(context.Background(), "a@b.com", "abcdef")

	require.True(t, res.Success)
	require.Nil(t, res.Err)
	assert.Equal(t, "a@b.com", res.User.Email)
	assert.True(t, res.User.HasProfile)
	assert.True(t, m.IsAuthenticated())

	saved, _ := store.Load()
	assert.Equal(t, "session-token", saved, "credential persisted for the next run")
	assert.Equal(t, "session-token", api.Token(), "credential attached to outgoing requests")
}

func TestLoginInvalidCredentials(t *testing.T) {
	provider := &fakeProvider{signInErr: identity.ErrInvalidCredentials}
	m, _, store := newTestManager(t, provider, &fakeBackend{})

	res := m.Login(context.Background(), "a@b.com", "wrong")

	require.False(t, res.Success)
	require.NotNil(t, res.Err)
	assert.Equal(t, KindInvalidCredentials, res.Err.Kind)
	assert.False(t, m.IsAuthenticated())

	saved, _ := store.Load()
	assert.Empty(t, saved)
}

func TestLoginProviderUnreachable(t *testing.T) {
	provider := &fakeProvider{signInErr: identity.ErrUnreachable}
	m, _, _ := newTestManager(t, provider, &fakeBackend{})

	res := m.Login(context.Background(), "a@b.com", "abcdef")
	require.False(t, res.Success)
	assert.Equal(t, KindUnreachable, res.Err.Kind)
}

func TestLoginBackendRejectsExchange(t *testing.T) {
	backend := &fakeBackend{exchangeCode: http.StatusUnauthorized, exchangeError: "Invalid Firebase token"}
	provider := &fakeProvider{idToken: "id-token"}
	m, _, _ := newTestManager(t, provider, backend)

	res := m.Login(context.Background(), "a@b.com", "abcdef")
	require.False(t, res.Success)
	assert.Equal(t, KindBackend, res.Err.Kind)
	assert.Equal(t, "Invalid Firebase token", res.Err.Message)
}

func TestLoginBackendUnreachable(t *testing.T) {
	provider := &fakeProvider{idToken: "id-token"}
	api := apiclient.New("http://127.0.0.1:1")
	m := NewManager(provider, api, &MemoryStore{})

	res := m.Login(context.Background(), "a@b.com", "abcdef")
	require.False(t, res.Success)
	assert.Equal(t, KindUnreachable, res.Err.Kind)
}

func TestRegisterPassesDisplayName(t *testing.T) {
	backend := &fakeBackend{
		user:  models.UserResponse{ID: "u1", Email: "a@b.com", FirstName: "Awa", LastName: "Diallo"},
		token: "session-token",
	}
	provider := &fakeProvider{idToken: "id-token"}
	m, _, _ := newTestManager(t, provider, backend)

	res := m.Register(context.Background(), "a@b.com", "abcdef", "Awa", "Diallo")
	require.True(t, res.Success)
	assert.Equal(t, "Awa Diallo", provider.displayName)
	assert.False(t, res.User.HasProfile, "fresh accounts start without a profile")
}

func TestLoginWithProviderCancelled(t *testing.T) {
	provider := &fakeProvider{popupErr: identity.ErrCancelled}
	m, _, _ := newTestManager(t, provider, &fakeBackend{})

	res := m.LoginWithProvider(context.Background())
	require.False(t, res.Success)
	assert.Equal(t, KindCancelled, res.Err.Kind)
}

func TestLogoutClearsEverything(t *testing.T) {
	backend := &fakeBackend{user: models.UserResponse{ID: "u1"}, token: "session-token"}
	provider := &fakeProvider{idToken: "id-token"}
	m, api, store := newTestManager(t, provider, backend)

	require.True(t, m.Login(context.Background(), "a@b.com", "abcdef").Success)
	m.Logout(context.Background())

	assert.False(t, m.IsAuthenticated())
	assert.Nil(t, m.CurrentUser())
	assert.Empty(t, api.Token())
	saved, _ := store.Load()
	assert.Empty(t, saved)
	assert.True(t, provider.signedOut)
}

func TestLogoutSwallowsProviderFailure(t *testing.T) {
	provider := &fakeProvider{signOutErr: context.DeadlineExceeded}
	m, _, store := newTestManager(t, provider, &fakeBackend{})

	store.Save("stale")
	m.Logout(context.Background())

	saved, _ := store.Load()
	assert.Empty(t, saved, "local state cleared even when the provider errors")
}

func TestResumeRestoresSession(t *testing.T) {
	backend := &fakeBackend{user: models.UserResponse{ID: "u1", Email: "a@b.com"}, token: "session-token"}
	m, _, store := newTestManager(t, &fakeProvider{}, backend)

	store.Save("session-token")
	res := m.Resume(context.Background())

	require.True(t, res.Success)
	assert.Equal(t, "a@b.com", res.User.Email)
	assert.True(t, m.IsAuthenticated())
}

func TestResumeWithoutStoredCredential(t *testing.T) {
	m, _, _ := newTestManager(t, &fakeProvider{}, &fakeBackend{token: "t"})

	res := m.Resume(context.Background())
	require.False(t, res.Success)
	assert.False(t, m.IsAuthenticated())
}

func TestResumeExpiredCredentialLogsOut(t *testing.T) {
	backend := &fakeBackend{token: "current-token"}
	m, api, store := newTestManager(t, &fakeProvider{}, backend)

	store.Save("expired-token")
	res := m.Resume(context.Background())

	require.False(t, res.Success)
	assert.Equal(t, KindInvalidCredentials, res.Err.Kind)
	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, api.Token())
	saved, _ := store.Load()
	assert.Empty(t, saved, "rejected credential is cleared for the next run")
}

func TestFileStoreRoundtrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded, "missing file means no session")

	require.NoError(t, store.Save("session-token"))
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "session-token", loaded)

	require.NoError(t, store.Clear())
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)

	require.NoError(t, store.Clear(), "clearing twice is fine")
}
