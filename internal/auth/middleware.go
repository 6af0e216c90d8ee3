package auth

import (
	"net/http"
	"strings"
)

// Skipper lets selected requests through without a token.
type Skipper func(r *http.Request) bool

// Middleware enforces bearer-token authentication on incoming requests.
type Middleware struct {
	cfg     Config
	skipper Skipper
}

// NewMiddleware builds a Middleware that leaves the health and metrics
// endpoints open.
func NewMiddleware(cfg Config) Middleware {
	return Middleware{cfg: cfg, skipper: publicPath}
}

func publicPath(r *http.Request) bool {
	switch r.URL.Path {
	case "/healthz", "/metrics":
		return true
	}
	return false
}

// Wrap attaches authentication handling to next.
func (m Middleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.skipper != nil && m.skipper(r) {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := Parse(bearerToken(r), m.cfg)
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Bearer realm="health-records"`)
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return token
}
