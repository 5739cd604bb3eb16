package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

type contextKey string

const organizerIDKey contextKey = "organizerID"

// WithOrganizerID returns a context carrying the authenticated organizer ID.
func WithOrganizerID(ctx context.Context, organizerID string) context.Context {
	return context.WithValue(ctx, organizerIDKey, organizerID)
}

// OrganizerIDFromContext returns the authenticated organizer ID, if present.
func OrganizerIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(organizerIDKey).(string)
	return id, ok && id != ""
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, string) {
	if header == "" {
		return "", "missing authorization header"
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", "invalid authorization format"
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", "missing token"
	}
	return token, ""
}

// RequireAuth returns a wrapper that verifies the Bearer token and puts the organizer ID
// in the request context. Requests without a valid token get 401 and next is not called.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, problem := bearerToken(r.Header.Get("Authorization"))
			if problem != "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, problem)
				return
			}
			organizerID, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			next(w, r.WithContext(WithOrganizerID(r.Context(), organizerID)))
		}
	}
}
