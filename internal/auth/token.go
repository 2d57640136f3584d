package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers bad signatures, expiry and malformed tokens alike;
// callers only need to know the credential did not check out.
var ErrInvalidToken = errors.New("invalid token")

// Identity is what a verified bearer token proves about the caller.
type Identity struct {
	Email string `json:"email"`
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 bearer tokens carrying an email claim.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(id Identity) (string, error) {
	now := time.Now()
	c := claims{
		Email: id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

func (s *TokenService) Verify(token string) (Identity, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}
	c, ok := parsed.Claims.(*claims)
	if !ok || c.Email == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{Email: c.Email}, nil
}
