package domain

import "time"

// TokenVerifier verifies a bearer token and returns the authenticated subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// TokenIssuer issues bearer tokens for organizers.
type TokenIssuer interface {
	Issue(subject, name string, ttl time.Duration) (string, error)
}
