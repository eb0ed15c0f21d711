package token

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	// DefaultValidity is how long a minted token authenticates for. Tokens are
	// stateless and never revoked server side, they simply age out.
	DefaultValidity = 72 * time.Hour

	signingMethod = "HS256"
)

// ErrInvalidToken is returned by Verify for any token that does not check
// out: bad signature, wrong algorithm, malformed payload or expired.
var ErrInvalidToken = errors.New("invalid token")

// Service mints and verifies bearer tokens. A token asserts nothing but
// {user id, issued at, expires at}, signed with the server-held secret, so
// verification needs no store lookup.
type Service struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

func NewService(secret string, validity time.Duration) *Service {
	return &Service{
		secret:   []byte(secret),
		validity: validity,
		now:      time.Now,
	}
}

// NewServiceFromEnv builds a Service from JWT_SECRET. The secret is the one
// piece of config the server cannot run without.
func NewServiceFromEnv() (*Service, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	return NewService(secret, DefaultValidity), nil
}

// Mint issues a signed token bound to the given user id.
func (s *Service) Mint(userId string) (string, error) {
	issuedAt := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userId,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.validity)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "fail to sign token")
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the user id the token is
// bound to. It is a pure function of (token, secret, current time).
func (s *Service) Verify(raw string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{signingMethod}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
