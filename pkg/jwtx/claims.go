// Package jwtx verifies the bearer tokens that authenticate professionals on
// the dashboard endpoints. Tokens are minted by the external identity
// provider with a shared HS256 secret; this package never issues sessions of
// its own outside of tests.
package jwtx

import "github.com/golang-jwt/jwt/v5"

// Claims are the session claims we accept. Email identifies the professional
// and is the ownership key for project listings.
type Claims struct {
	jwt.RegisteredClaims

	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
