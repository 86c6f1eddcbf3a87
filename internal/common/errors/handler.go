// internal/common/errors/handler.go
package errors

import (
	"encoding/json"
	"net/http"
	"time"
)

// ErrorHandler writes application errors as JSON HTTP responses with
// standardized status mapping and logging.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// errorResponse is the wire shape for failed requests. Validation failures
// use the bare {error} form the site's client expects; transport failures
// use {success:false, message}.
type errorResponse struct {
	Error    string `json:"error,omitempty"`
	Success  *bool  `json:"success,omitempty"`
	Message  string `json:"message,omitempty"`
	Fallback string `json:"fallback,omitempty"`
}

// HandleHTTPError normalizes err, logs it at the right level, and writes the
// JSON response. Expected conditions (4xx) log as warnings; 5xx as errors.
func (h *ErrorHandler) HandleHTTPError(w http.ResponseWriter, r *http.Request, err error) {
	stdErr := h.normalizeError(err)
	status := HTTPStatus(stdErr.Code)

	h.logError(r, stdErr, status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	var resp errorResponse
	if IsClientError(stdErr.Code) {
		resp.Error = stdErr.Message
		if stdErr.Details != "" && stdErr.Code == ErrCodeValidationFailed {
			resp.Error = stdErr.Details
		}
		if fallback, ok := stdErr.Metadata["fallback"].(string); ok {
			resp.Fallback = fallback
		}
	} else {
		success := false
		resp.Success = &success
		resp.Message = stdErr.Message
	}

	_ = json.NewEncoder(w).Encode(resp)
}

// normalizeError ensures we always have a StandardError
func (h *ErrorHandler) normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func (h *ErrorHandler) logError(r *http.Request, stdErr *StandardError, status int) {
	fields := map[string]interface{}{
		"method":        r.Method,
		"path":          r.URL.Path,
		"errorCode":     string(stdErr.Code),
		"details":       stdErr.Details,
		"retryable":     stdErr.Retryable,
		"status":        status,
		"errorCategory": GetErrorCategory(stdErr.Code),
	}

	if IsClientError(stdErr.Code) {
		h.logger.Warn("request rejected", fields)
		return
	}
	h.logger.Error("request failed", fields)
}
