package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Warn(msg string, fields map[string]interface{})  {}
func (noopLogger) Error(msg string, fields map[string]interface{}) {}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeValidationFailed, http.StatusBadRequest},
		{ErrCodeMalformedRequest, http.StatusBadRequest},
		{ErrCodePillarNotFound, http.StatusNotFound},
		{ErrCodeSessionNotFound, http.StatusNotFound},
		{ErrCodeSessionExpired, http.StatusNotFound},
		{ErrCodeEmailSendFailed, http.StatusInternalServerError},
		{ErrCodeTransportTimeout, http.StatusGatewayTimeout},
		{ErrCodeSearchQueryFailed, http.StatusBadGateway},
		{ErrorCode("UNMAPPED"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HTTPStatus(tt.code), string(tt.code))
	}
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeValidationFailed))
	assert.Equal(t, "CONTENT", GetErrorCategory(ErrCodePillarNotFound))
	assert.Equal(t, "WIZARD", GetErrorCategory(ErrCodeSessionExpired))
	assert.Equal(t, "RELAY", GetErrorCategory(ErrCodeEmailSendFailed))
	assert.Equal(t, "SEARCH", GetErrorCategory(ErrCodeSearchQueryFailed))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrCodeInternal))
}

func TestHandleHTTPError_ValidationUsesBareErrorShape(t *testing.T) {
	h := NewErrorHandler(noopLogger{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)

	h.HandleHTTPError(rec, req, NewValidationError("Name, email, and message are required"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Name, email, and message are required", resp["error"])
	assert.NotContains(t, resp, "success")
}

func TestHandleHTTPError_ServerErrorShape(t *testing.T) {
	h := NewErrorHandler(noopLogger{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)

	h.HandleHTTPError(rec, req, NewEmailSendFailedError(fmt.Errorf("smtp down")))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Success)
	assert.False(t, *resp.Success)
	assert.Equal(t, "Failed to send message. Please try again later.", resp.Message)
}

func TestHandleHTTPError_WrapsPlainErrors(t *testing.T) {
	h := NewErrorHandler(noopLogger{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	h.HandleHTTPError(rec, req, fmt.Errorf("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
