package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultIdentityEndpoint = "https://identitytoolkit.googleapis.com/v1"

// FirebaseProvider signs users in against the Firebase Auth REST API using a
// web API key. It backs the email/password flows; the interactive popup flow
// only exists in a browser and is reported as cancelled here.
type FirebaseProvider struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

// NewFirebaseProvider creates a provider for the given web API key.
func NewFirebaseProvider(apiKey string) *FirebaseProvider {
	return &FirebaseProvider{
		apiKey:   apiKey,
		endpoint: defaultIdentityEndpoint,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

// NewFirebaseProviderWithEndpoint is NewFirebaseProvider pointed at a custom
// endpoint, e.g. the Auth emulator.
func NewFirebaseProviderWithEndpoint(apiKey, endpoint string) *FirebaseProvider {
	p := NewFirebaseProvider(apiKey)
	p.endpoint = strings.TrimRight(endpoint, "/")
	return p
}

type firebaseAuthRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	DisplayName       string `json:"displayName,omitempty"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type firebaseAuthResponse struct {
	IDToken string `json:"idToken"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *FirebaseProvider) call(ctx context.Context, action string, body firebaseAuthRequest) (string, error) {
	body.ReturnSecureToken = true
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/accounts:%s?key=%s", p.endpoint, action, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	var out firebaseAuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", mapFirebaseError(out.Error.Message)
	}
	return out.IDToken, nil
}

// mapFirebaseError folds the identity toolkit error codes into the package's
// closed error set.
func mapFirebaseError(code string) error {
	switch {
	case strings.HasPrefix(code, "EMAIL_NOT_FOUND"),
		strings.HasPrefix(code, "INVALID_PASSWORD"),
		strings.HasPrefix(code, "INVALID_LOGIN_CREDENTIALS"),
		strings.HasPrefix(code, "USER_DISABLED"):
		return ErrInvalidCredentials
	case strings.HasPrefix(code, "EMAIL_EXISTS"):
		return ErrEmailInUse
	case code == "":
		return ErrUnreachable
	default:
		return fmt.Errorf("identity: firebase: %s", code)
	}
}

func (p *FirebaseProvider) SignIn(ctx context.Context, email, password string) (string, error) {
	return p.call(ctx, "signInWithPassword", firebaseAuthRequest{Email: email, Password: password})
}

func (p *FirebaseProvider) SignUp(ctx context.Context, email, password, displayName string) (string, error) {
	return p.call(ctx, "signUp", firebaseAuthRequest{Email: email, Password: password, DisplayName: displayName})
}

// SignInInteractive is not available outside a browser.
func (p *FirebaseProvider) SignInInteractive(ctx context.Context) (string, error) {
	return "", fmt.Errorf("%w: interactive sign-in requires a browser", ErrCancelled)
}

// SignOut is a no-op: ID tokens are short-lived and the backend session is
// cleared separately.
func (p *FirebaseProvider) SignOut(ctx context.Context) error {
	return nil
}
