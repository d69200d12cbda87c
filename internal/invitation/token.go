package invitation

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenSize gives 256 bits of entropy, 43 chars base64url. Tokens are never
// derivable from the client email or advisor id.
const tokenSize = 32

// NewToken returns a cryptographically random URL-safe token.
func NewToken() (string, error) {
	buf := make([]byte, tokenSize)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate invitation token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
