package helpers

import (
	"encoding/json"
	"net/http"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest            = "bad_request"
	ErrCodeUnauthorized          = "unauthorized"
	ErrCodeNotFound              = "not_found"
	ErrCodeInternalError         = "internal_error"
	ErrCodeMissingField          = "missing_field"
	ErrCodeInvalidArrayField     = "invalid_array_field"
	ErrCodeInvalidDate           = "invalid_date"
	ErrCodeInvalidTime           = "invalid_time"
	ErrCodeInvalidEmail          = "invalid_email"
	ErrCodeInvalidSlug           = "invalid_slug"
	ErrCodeDanglingReference     = "dangling_reference"
	ErrCodeDuplicateKey          = "duplicate_key"
	ErrCodeDependencyUnavailable = "dependency_unavailable"
)

// APIError is the error object in the standardized API response envelope.
// Field is set for validation failures.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// WriteJSONSuccess encodes an APIResponse with data and a nil error.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, APIResponse{Data: data})
}

// WriteJSONError encodes an APIResponse with nil data and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, APIResponse{Error: &APIError{Code: code, Message: message}})
}

func writeJSON(w http.ResponseWriter, statusCode int, body APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
