package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/Hop-Syder/nexus-connect-t4/internal/config"
)

var firebaseAuth *auth.Client

// ProviderIdentity is the subset of a verified Firebase ID token the auth
// exchange needs.
type ProviderIdentity struct {
	UID   string
	Email string
	Name  string
}

// InitFirebase initializes the Firebase Admin app. Credentials come from
// FIREBASE_ADMIN_JSON (inline JSON for cloud deployments) or a local
// service-account file.
func InitFirebase(ctx context.Context, cfg *config.Config) error {
	var opts []option.ClientOption
	switch {
	case cfg.FirebaseAdminJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.FirebaseAdminJSON)))
	case cfg.FirebaseAdminFile != "":
		if _, err := os.Stat(cfg.FirebaseAdminFile); err != nil {
			return fmt.Errorf("firebase credentials not found: %w", err)
		}
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseAdminFile))
	default:
		return errors.New("no firebase credentials configured")
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize Firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize Firebase auth client: %w", err)
	}
	firebaseAuth = client
	return nil
}

// VerifyFirebaseToken verifies a provider ID token and extracts the identity
// fields the exchange endpoint uses.
func VerifyFirebaseToken(ctx context.Context, idToken string) (*ProviderIdentity, error) {
	if firebaseAuth == nil {
		return nil, errors.New("firebase not initialized")
	}
	decoded, err := firebaseAuth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}

	identity := &ProviderIdentity{UID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		identity.Name = name
	}
	if identity.Email == "" {
		return nil, errors.New("provider token carries no email")
	}
	return identity, nil
}
