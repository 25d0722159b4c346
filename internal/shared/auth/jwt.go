package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the identity contained in a JWT.
type Claims struct {
	Owner bool `json:"owner"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

// TokenService signs and verifies owner session tokens with HS256.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	clock  func() time.Time
}

// NewTokenService builds a TokenService. An empty secret falls back to a
// development key; production deployments must configure JWT_SECRET.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	s := strings.TrimSpace(secret)
	if s == "" {
		s = "dev-secret"
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(s), ttl: ttl, clock: time.Now}
}

// SetClock overrides the clock used for expiry validation. Tests pin it to
// verify tokens deterministically.
func (t *TokenService) SetClock(clock func() time.Time) {
	if clock != nil {
		t.clock = clock
	}
}

// Sign issues a signed owner token.
func (t *TokenService) Sign(now time.Time) (string, error) {
	claims := Claims{
		Owner: true,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "owner",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// TTL reports the lifetime configured for issued tokens.
func (t *TokenService) TTL() time.Duration {
	return t.ttl
}

// Verify parses and validates a token and returns its claims.
func (t *TokenService) Verify(raw string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.clock))
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}
	if claims.Subject != "owner" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
