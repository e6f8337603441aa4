package devbackend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTTL  = time.Hour
	refreshTTL = 7 * 24 * time.Hour

	tokenAccess  = "access"
	tokenRefresh = "refresh"
)

var errInvalidToken = errors.New("invalid token")

type contextKey string

const userIDKey contextKey = "user_id"

type claims struct {
	Type string `json:"typ"`
	jwt.RegisteredClaims
}

// tokenIssuer signs and verifies HS256 tokens.
type tokenIssuer struct {
	secret []byte
	now    func() time.Time
}

func (ti tokenIssuer) issue(userID int64, typ string, ttl time.Duration) (string, error) {
	now := ti.now()
	c := claims{
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(ti.secret)
}

func (ti tokenIssuer) pair(userID int64) (access, refresh string, err error) {
	if access, err = ti.issue(userID, tokenAccess, accessTTL); err != nil {
		return "", "", fmt.Errorf("sign access token: %w", err)
	}
	if refresh, err = ti.issue(userID, tokenRefresh, refreshTTL); err != nil {
		return "", "", fmt.Errorf("sign refresh token: %w", err)
	}
	return access, refresh, nil
}

// verify returns the user id of a valid access token.
func (ti tokenIssuer) verify(raw string) (int64, error) {
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (interface{}, error) {
		return ti.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(ti.now))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errInvalidToken, err)
	}
	if c.Type != tokenAccess {
		return 0, errInvalidToken
	}
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, errInvalidToken
	}
	return id, nil
}

// authMiddleware requires a bearer access token and stores the user id in
// the request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			writeError(w, http.StatusUnauthorized, "Não autenticado")
			return
		}
		id, err := s.tokens.verify(raw)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Token inválido ou expirado")
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userID(r *http.Request) (int64, bool) {
	id, ok := r.Context().Value(userIDKey).(int64)
	return id, ok
}
