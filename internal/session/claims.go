package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the public claims the client reads out of the access token.
// The signature is NOT verified here: verification is the server's job, the
// client only needs the role and shop association for warm-up gating.
type TokenClaims struct {
	Role   string `json:"role"`
	ShopID *int64 `json:"shop"`
	jwt.RegisteredClaims
}

// ParseClaims decodes the access token payload without verifying it.
func ParseClaims(accessToken string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// ExpiresWithin reports whether the token expires within d. Tokens without an
// exp claim are treated as non-expiring.
func (c *TokenClaims) ExpiresWithin(d time.Duration) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return time.Until(c.ExpiresAt.Time) < d
}
