package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHS256RoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")
	signer := &HS256Signer{Secret: secret, Issuer: "pulse-idp", TTL: time.Hour}
	verifier := &HS256Verifier{Secret: secret, Issuer: "pulse-idp"}

	raw, err := signer.Sign("broker@example.com", "Jean Dupont")
	require.NoError(t, err)

	claims, err := verifier.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "broker@example.com", claims.Email)
	require.Equal(t, "Jean Dupont", claims.Name)
}

func TestHS256VerifyRejections(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")
	verifier := &HS256Verifier{Secret: secret, Issuer: "pulse-idp"}

	t.Run("empty token", func(t *testing.T) {
		_, err := verifier.Verify("")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		signer := &HS256Signer{Secret: []byte("other"), Issuer: "pulse-idp", TTL: time.Hour}
		raw, err := signer.Sign("broker@example.com", "")
		require.NoError(t, err)

		_, err = verifier.Verify(raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		signer := &HS256Signer{Secret: secret, Issuer: "someone-else", TTL: time.Hour}
		raw, err := signer.Sign("broker@example.com", "")
		require.NoError(t, err)

		_, err = verifier.Verify(raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		signer := &HS256Signer{Secret: secret, Issuer: "pulse-idp", TTL: -time.Minute}
		raw, err := signer.Sign("broker@example.com", "")
		require.NoError(t, err)

		_, err = verifier.Verify(raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing email claim", func(t *testing.T) {
		signer := &HS256Signer{Secret: secret, Issuer: "pulse-idp", TTL: time.Hour}
		raw, err := signer.Sign("", "")
		require.NoError(t, err)

		_, err = verifier.Verify(raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
