package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenDuration is 7 days, matching the session credential lifetime the
// frontend stores.
const AccessTokenDuration = 7 * 24 * time.Hour

var jwtSecret []byte

// InitTokenService sets the signing secret for access tokens.
func InitTokenService(secret string) {
	jwtSecret = []byte(secret)
}

// CreateAccessToken issues a signed bearer token for a user id.
func CreateAccessToken(userID string) (string, error) {
	if len(jwtSecret) == 0 {
		return "", errors.New("token service not initialized")
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenDuration)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
}

// ParseAccessToken validates a bearer token and returns the user id it carries.
func ParseAccessToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid token claims")
	}
	return claims.Subject, nil
}
