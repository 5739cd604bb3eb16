package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"eventbooking/internal/domain"
)

var errMissingSubject = errors.New("token has no subject")

type jwtClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
}

// JWT signs and verifies organizer tokens with HS256.
type JWT struct {
	secret []byte
	now    func() time.Time
}

var (
	_ domain.TokenVerifier = (*JWT)(nil)
	_ domain.TokenIssuer   = (*JWT)(nil)
)

func NewJWT(secret string) *JWT {
	return &JWT{secret: []byte(secret), now: time.Now}
}

// Issue returns a signed token for subject that expires after ttl.
func (j *JWT) Issue(subject, name string, ttl time.Duration) (string, error) {
	now := j.now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Name: name,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the token subject.
func (j *JWT) Verify(token string) (string, error) {
	claims := &jwtClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if claims.Subject == "" {
		return "", errMissingSubject
	}
	return claims.Subject, nil
}
