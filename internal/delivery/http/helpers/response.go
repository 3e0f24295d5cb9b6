package helpers

import (
	"encoding/json"
	"errors"
	"net/http"

	"contributorsboard/internal/domain"
)

// Error codes carried in APIError.Code.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeNotFound      = "not_found"
	ErrCodeInternalError = "internal_error"
)

// APIError is the error object in the response envelope.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the envelope for every API response: Data on success, Error otherwise.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// WriteJSONSuccess writes data in the envelope with the given status.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	writeEnvelope(w, statusCode, APIResponse{Data: data})
}

// WriteJSONError writes an error envelope with the given status, code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	writeEnvelope(w, statusCode, APIResponse{Error: &APIError{Code: code, Message: message}})
}

// WriteDomainError maps err onto an HTTP status and writes the error envelope.
// It reports whether err was a server error, so callers know to log it.
// Internal error details are not sent to the client.
func WriteDomainError(w http.ResponseWriter, err error) (internal bool) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, err.Error())
	case errors.Is(err, domain.ErrUnknownRole):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
	default:
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, "internal error")
		return true
	}
	return false
}

func writeEnvelope(w http.ResponseWriter, statusCode int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}
