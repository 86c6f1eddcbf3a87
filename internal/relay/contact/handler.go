package contact

import (
	"encoding/json"
	"io"
	"net/http"

	"valuemed-backend/internal/common/errors"
	"valuemed-backend/internal/common/logger"
)

const maxBodyBytes = 64 << 10

// Handler exposes the relay as POST /api/contact.
type Handler struct {
	service      *Service
	logger       logger.Logger
	errorHandler *errors.ErrorHandler
}

func NewHandler(service *Service, log logger.Logger) *Handler {
	return &Handler{
		service:      service,
		logger:       log.WithFields(map[string]interface{}{"component": "contact"}),
		errorHandler: errors.NewErrorHandler(log),
	}
}

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.errorHandler.HandleHTTPError(w, r, errors.NewMalformedRequestError(err))
		return
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		h.errorHandler.HandleHTTPError(w, r, errors.NewMalformedRequestError(err))
		return
	}

	var input Input
	if err := json.Unmarshal(body, &input); err != nil {
		h.errorHandler.HandleHTTPError(w, r, errors.NewMalformedRequestError(err))
		return
	}

	if MissingRequired(&input) {
		h.errorHandler.HandleHTTPError(w, r,
			errors.NewValidationError("Name, email, and message are required"))
		return
	}

	if err := ValidateSubmission(raw); err != nil {
		h.errorHandler.HandleHTTPError(w, r, errors.NewValidationError(err.Error()))
		return
	}

	output, err := h.service.Execute(r.Context(), &input)
	if err != nil {
		h.errorHandler.HandleHTTPError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(output)
}
