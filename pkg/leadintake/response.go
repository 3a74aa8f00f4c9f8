package leadintake

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type successResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message,omitempty"`
	TestMode  bool            `json:"testMode,omitempty"`
	Duplicate bool            `json:"duplicate,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

type validationResponse struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

type serverErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// errorResponse is the 401/405 shape.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Warn("Failed to encode response", zap.Error(err))
	}
}
