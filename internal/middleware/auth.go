// Copyright (c) 2025 Raj Khabar Media. All rights reserved.
// See LICENSE for details.

package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth"
)

// NewTokenAuth builds the HS256 verifier for admin API tokens. Tokens are
// issued by the separate auth service; this server only verifies them.
func NewTokenAuth(secret string) *jwtauth.JWTAuth {
	return jwtauth.New("HS256", []byte(secret), nil)
}

// RequireAuth verifies the JWT carried in the Authorization header (or the
// jwt cookie) and rejects the request with 401 if missing, expired, or
// malformed. Mount on the admin route group.
func RequireAuth(tokenAuth *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return jwtauth.Verifier(tokenAuth)(authenticator(next))
	}
}

func authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"message":"unauthorized"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
