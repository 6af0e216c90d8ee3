package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = Config{Secret: "test-secret", Issuer: "health-records"}

func signToken(t *testing.T, claims jwt.MapClaims, method jwt.SigningMethod, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":       "user-1",
		"tenant_id": "tenant-1",
		"iss":       testConfig.Issuer,
		"exp":       time.Now().Add(time.Hour).Unix(),
		"scopes":    []string{ScopeRecordsRead, ScopeRecordsWrite},
	}
}

func TestParseValidToken(t *testing.T) {
	claims, err := Parse(signToken(t, validClaims(), jwt.SigningMethodHS256, testConfig.Secret), testConfig)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "tenant-1", claims.TenantID)
	assert.True(t, claims.HasScope(ScopeRecordsRead))
	assert.True(t, claims.HasScope(ScopeRecordsWrite))
	assert.False(t, claims.HasScope("admin"))
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestParseAcceptsSpaceSeparatedScopes(t *testing.T) {
	raw := validClaims()
	raw["scopes"] = " records:read  records:write "
	claims, err := Parse(signToken(t, raw, jwt.SigningMethodHS256, testConfig.Secret), testConfig)
	require.NoError(t, err)
	assert.Len(t, claims.Scopes, 2)
}

func TestParseRejections(t *testing.T) {
	_, err := Parse("  ", testConfig)
	require.ErrorIs(t, err, ErrMissingToken)

	cases := map[string]func() string{
		"wrong secret": func() string {
			return signToken(t, validClaims(), jwt.SigningMethodHS256, "other")
		},
		"wrong issuer": func() string {
			c := validClaims()
			c["iss"] = "someone-else"
			return signToken(t, c, jwt.SigningMethodHS256, testConfig.Secret)
		},
		"expired": func() string {
			c := validClaims()
			c["exp"] = time.Now().Add(-time.Minute).Unix()
			return signToken(t, c, jwt.SigningMethodHS256, testConfig.Secret)
		},
		"no expiry": func() string {
			c := validClaims()
			delete(c, "exp")
			return signToken(t, c, jwt.SigningMethodHS256, testConfig.Secret)
		},
		"no tenant": func() string {
			c := validClaims()
			delete(c, "tenant_id")
			return signToken(t, c, jwt.SigningMethodHS256, testConfig.Secret)
		},
		"hs512": func() string {
			return signToken(t, validClaims(), jwt.SigningMethodHS512, testConfig.Secret)
		},
		"garbage": func() string { return "not.a.token" },
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(token(), testConfig)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	claims := &Claims{Subject: "s", TenantID: "t"}
	got, ok := FromContext(WithClaims(context.Background(), claims))
	require.True(t, ok)
	assert.Same(t, claims, got)

	var nilClaims *Claims
	assert.False(t, nilClaims.HasScope(ScopeRecordsRead))
}

func TestMiddleware(t *testing.T) {
	var seen *Claims
	handler := NewMiddleware(testConfig).Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Nil(t, seen)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/records", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/records", nil)
	req.Header.Set("Authorization", "Basic abc")
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/records", nil)
	req.Header.Set("Authorization", "bearer "+signToken(t, validClaims(), jwt.SigningMethodHS256, testConfig.Secret))
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "tenant-1", seen.TenantID)
}
