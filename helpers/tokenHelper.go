package helpers

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SignedDetails is the token payload: the subject user id plus the standard
// issued-at/expires-at claims. Tokens are stateless; nothing is persisted.
type SignedDetails struct {
	ID string `json:"_id"`
	jwt.RegisteredClaims
}

type TokenHelper struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokenHelper(secret string, lifetime time.Duration) *TokenHelper {
	return &TokenHelper{secret: []byte(secret), lifetime: lifetime}
}

// Generate signs a token for the given user id, valid for the configured
// lifetime from now.
func (th *TokenHelper) Generate(userID string) (string, error) {
	now := time.Now()
	claims := &SignedDetails{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(th.lifetime)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(th.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Validate verifies the signature and expiry and returns the claims. Every
// failure mode collapses to ErrInvalidToken; callers cannot tell a forged
// token from an expired one.
func (th *TokenHelper) Validate(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return th.secret, nil
		},
	)
	if err != nil {
		return nil, WrapError(KindInvalidToken, ErrInvalidToken.Message, err)
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
