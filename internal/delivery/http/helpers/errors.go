package helpers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventbooking/internal/domain"
)

type errorMapping struct {
	kind   error
	status int
	code   string
}

// validationMappings is checked in order against ValidationError.Kind.
var validationMappings = []errorMapping{
	{domain.ErrMissingField, http.StatusBadRequest, ErrCodeMissingField},
	{domain.ErrInvalidArrayField, http.StatusBadRequest, ErrCodeInvalidArrayField},
	{domain.ErrInvalidDate, http.StatusBadRequest, ErrCodeInvalidDate},
	{domain.ErrInvalidTime, http.StatusBadRequest, ErrCodeInvalidTime},
	{domain.ErrInvalidEmail, http.StatusBadRequest, ErrCodeInvalidEmail},
	{domain.ErrInvalidSlug, http.StatusBadRequest, ErrCodeInvalidSlug},
	{domain.ErrDanglingReference, http.StatusUnprocessableEntity, ErrCodeDanglingReference},
	{domain.ErrDuplicateKey, http.StatusConflict, ErrCodeDuplicateKey},
}

// WriteServiceError maps an error returned by a service to a status code and
// error envelope. Unclassified errors are logged and reported as 500 without detail.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, notFoundMsg string) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		for _, m := range validationMappings {
			if errors.Is(ve.Kind, m.kind) {
				writeJSON(w, m.status, APIResponse{Error: &APIError{Code: m.code, Message: ve.Error(), Field: ve.Field}})
				return
			}
		}
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, notFoundMsg)
	case errors.Is(err, domain.ErrDependencyUnavailable):
		logger.WarnContext(r.Context(), "dependency unavailable", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusServiceUnavailable, ErrCodeDependencyUnavailable, "a required dependency is unavailable, try again later")
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
