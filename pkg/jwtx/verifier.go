package jwtx

import "errors"

// ErrInvalidToken reports a token that failed signature, issuer or expiry
// validation. The cause is deliberately not distinguished to callers.
var ErrInvalidToken = errors.New("jwtx: invalid token")

// Verifier validates a raw bearer token and returns its claims.
type Verifier interface {
	Verify(raw string) (Claims, error)
}
