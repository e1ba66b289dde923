package jwtx

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// HS256Verifier validates tokens signed with a shared HMAC-SHA256 secret.
type HS256Verifier struct {
	Secret []byte
	Issuer string
}

func (v *HS256Verifier) Verify(raw string) (Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(v.Secret) == 0 {
		return Claims{}, ErrInvalidToken
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) { return v.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(v.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, errors.Join(ErrInvalidToken, err)
	}
	if claims.Email == "" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

// HS256Signer mints session tokens with the shared secret. The identity
// provider owns minting in production; this exists for tests and local dev.
type HS256Signer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

func (s *HS256Signer) Sign(email, name string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.Issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL)),
		},
		Email: email,
		Name:  name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}
