package notifier

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvitationEmail(t *testing.T) {
	subject, html, err := InvitationEmail(InvitationEmailData{
		AdvisorName:   "Priya Sharma",
		FirmName:      "Sharma Wealth",
		ClientName:    "Asha Rao",
		InvitationURL: "https://portal.example.com/onboarding/abc123",
		ExpiryHours:   48,
	})
	require.NoError(t, err)

	require.Equal(t, "Complete Your Financial Profile - Sharma Wealth", subject)
	require.Contains(t, html, "Hello Asha Rao")
	require.Contains(t, html, "Priya Sharma")
	require.Contains(t, html, "Sharma Wealth")
	require.Contains(t, html, "https://portal.example.com/onboarding/abc123")
	require.Contains(t, html, "expire in 48 hours")
}

func TestInvitationEmailFallbacks(t *testing.T) {
	subject, html, err := InvitationEmail(InvitationEmailData{
		AdvisorName:   "Priya Sharma",
		InvitationURL: "https://portal.example.com/onboarding/abc123",
		ExpiryHours:   48,
	})
	require.NoError(t, err)

	require.Equal(t, "Complete Your Financial Profile - Richie AI", subject)
	require.Contains(t, html, "Hello Valued Client")
	require.NotContains(t, html, "from <strong></strong>")
}
