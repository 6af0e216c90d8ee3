// Package auth verifies HS256 bearer tokens and carries the caller's tenant
// and scopes through request contexts.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Scopes understood by the records API.
const (
	ScopeRecordsWrite = "records:write"
	ScopeRecordsRead  = "records:read"
)

var (
	// ErrMissingToken is returned when no bearer token was presented.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken wraps every signature, issuer, expiry or claim failure.
	ErrInvalidToken = errors.New("invalid bearer token")
)

// Config holds token verification parameters.
type Config struct {
	Secret string
	Issuer string
}

// Claims is the verified identity attached to a request.
type Claims struct {
	Subject   string
	TenantID  string
	Scopes    map[string]struct{}
	ExpiresAt time.Time
}

// HasScope reports whether the claim set includes scope.
func (c *Claims) HasScope(scope string) bool {
	if c == nil {
		return false
	}
	_, ok := c.Scopes[scope]
	return ok
}

type tokenClaims struct {
	TenantID string `json:"tenant_id"`
	Scopes   any    `json:"scopes"`
	jwt.RegisteredClaims
}

// Parse verifies token against cfg and returns its normalized claims.
func Parse(token string, cfg Config) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	var raw tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &raw, func(*jwt.Token) (any, error) {
		return []byte(cfg.Secret), nil
	},
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || raw.Subject == "" || raw.TenantID == "" {
		return nil, ErrInvalidToken
	}

	return &Claims{
		Subject:   raw.Subject,
		TenantID:  raw.TenantID,
		Scopes:    scopeSet(raw.Scopes),
		ExpiresAt: raw.ExpiresAt.Time,
	}, nil
}

// scopeSet accepts either a JSON array or an OAuth-style space separated string.
func scopeSet(value any) map[string]struct{} {
	var names []string
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				names = append(names, s)
			}
		}
	case string:
		names = strings.Fields(v)
	}

	out := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			out[name] = struct{}{}
		}
	}
	return out
}
