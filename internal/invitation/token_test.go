package invitation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewToken(t *testing.T) {
	token, err := NewToken()
	require.NoError(t, err)

	// 32 random bytes, base64url without padding.
	require.Len(t, token, 43)
	require.False(t, strings.ContainsAny(token, "+/="))

	other, err := NewToken()
	require.NoError(t, err)
	require.NotEqual(t, token, other)
}

func TestIsExpired(t *testing.T) {
	now := time.Now()
	inv := Invitation{ExpiresAt: now.Add(time.Hour)}

	require.False(t, inv.IsExpired(now))
	require.True(t, inv.IsExpired(now.Add(2*time.Hour)))
}

func TestTimeRemaining(t *testing.T) {
	now := time.Now()
	inv := Invitation{ExpiresAt: now.Add(90 * time.Minute)}

	require.Equal(t, 90*time.Minute, inv.TimeRemaining(now))
	require.Equal(t, time.Duration(0), inv.TimeRemaining(now.Add(3*time.Hour)),
		"remaining time never goes negative")
}
