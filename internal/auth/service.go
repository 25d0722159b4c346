package auth

import (
	"crypto/subtle"
	"time"

	sharedauth "portfolio-backend/internal/shared/auth"
)

// Service authenticates the portfolio owner and issues access tokens.
type Service struct {
	OwnerPassword string
	Tokens        *sharedauth.TokenService
	Now           func() time.Time
}

func NewService(ownerPassword string, tokens *sharedauth.TokenService) *Service {
	return &Service{OwnerPassword: ownerPassword, Tokens: tokens}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// Login verifies the owner password and returns a signed token with its expiry.
func (s *Service) Login(password string) (string, time.Time, error) {
	if s.OwnerPassword == "" {
		return "", time.Time{}, ErrNotConfigured
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.OwnerPassword)) != 1 {
		return "", time.Time{}, ErrInvalidCredentials
	}
	now := s.now()
	token, err := s.Tokens.Sign(now)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, now.Add(s.Tokens.TTL()), nil
}
