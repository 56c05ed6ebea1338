package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// AccessTokenTTL is 24 hours
const AccessTokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies the signed bearer tokens. Tokens are
// stateless HS256 JWTs carrying subject (email), issue time and expiry;
// there is no revocation list, a leaked token stays valid until it expires.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: AccessTokenTTL}
}

// Issue creates an access token for subject (the user's lower-cased email).
func (s *TokenService) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and returns the token's subject.
// Every failure collapses into ErrInvalidToken so callers can't leak which
// check failed.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
