package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/richieai/onboarding-api/internal/httpx"
)

// Identity is the resolved caller attached to authenticated requests.
type Identity struct {
	ID        uint
	FirstName string
	LastName  string
	Email     string
	FirmName  string
	Status    string
}

// StatusActive is the only advisor status allowed through the gate.
const StatusActive = "active"

// IdentityResolver loads the advisor referenced by a token's claims.
// It returns ErrIdentityNotFound when no such advisor exists.
type IdentityResolver func(ctx context.Context, advisorID uint) (*Identity, error)

var ErrIdentityNotFound = errors.New("advisor not found")

type ctxKey string

const ctxKeyIdentity ctxKey = "advisor"

// AdvisorFrom returns the authenticated advisor from the request context.
func AdvisorFrom(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(ctxKeyIdentity).(*Identity)
	return id, ok
}

// WithAdvisor attaches an authenticated advisor to the context.
func WithAdvisor(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

// Middleware verifies the bearer token, resolves the advisor and attaches it
// to the request context. It fails closed with 401 on any defect: missing
// header, bad signature, expired token, unknown advisor, inactive account.
func Middleware(tokens *Manager, resolve IdentityResolver) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				httpx.Fail(w, http.StatusUnauthorized, "No token provided, authorization denied")
				return
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			claims, err := tokens.Parse(raw)
			if err != nil {
				if errors.Is(err, ErrTokenExpired) {
					httpx.Fail(w, http.StatusUnauthorized, "Token has expired")
					return
				}
				httpx.Fail(w, http.StatusUnauthorized, "Token is not valid")
				return
			}

			identity, err := resolve(r.Context(), claims.AdvisorID)
			if err != nil {
				if errors.Is(err, ErrIdentityNotFound) {
					httpx.Fail(w, http.StatusUnauthorized, "Token is not valid - advisor not found")
					return
				}
				httpx.Fail(w, http.StatusInternalServerError, "Server error in authentication")
				return
			}
			if identity.Status != StatusActive {
				httpx.Fail(w, http.StatusUnauthorized, "Account is not active")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdvisor(r.Context(), identity)))
		})
	}
}
