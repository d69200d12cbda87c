package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	require.EqualValues(t, 42, claims.AdvisorID)
	require.Equal(t, "42", claims.Subject)
}

func TestParseExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.Generate(42)
	require.NoError(t, err)

	_, err = m.Parse(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).Generate(42)
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Parse(token)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Parse("not.a.token")
	require.ErrorIs(t, err, ErrTokenInvalid)

	_, err = m.Parse("")
	require.ErrorIs(t, err, ErrTokenInvalid)
}
