package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken   = errors.New("scope: invalid token")
	ErrMissingSubject = errors.New("scope: token has no subject")
	ErrEmptySecret    = errors.New("scope: jwt secret is required")
)

// Payload is the claim set carried by access tokens. The subject is the user id.
type Payload struct {
	jwt.RegisteredClaims
}

// UserID returns the subject claim.
func (p Payload) UserID() string {
	return p.Subject
}

// Manager issues and verifies HS256 access tokens.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(userID string) (string, error)
}

type implManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewManager creates a token manager. A zero ttl means one hour.
func NewManager(secret, issuer string, ttl time.Duration) (Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return implManager{secret: []byte(secret), issuer: issuer, ttl: ttl}, nil
}

func (m implManager) Verify(tokenString string) (Payload, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	var p Payload
	token, err := jwt.ParseWithClaims(tokenString, &p, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return Payload{}, ErrInvalidToken
	}
	if p.Subject == "" {
		return Payload{}, ErrMissingSubject
	}
	return p, nil
}

func (m implManager) CreateToken(userID string) (string, error) {
	now := time.Now()
	claims := Payload{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    m.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}
