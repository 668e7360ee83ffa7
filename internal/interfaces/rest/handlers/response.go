package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/acquirepay/payment-gateway/internal/application"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code       string                  `json:"code"`
	Message    string                  `json:"message"`
	Violations []application.Violation `json:"violations,omitempty"`
}

func respondWithJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := APIResponse{
		Success: status >= 200 && status < 300,
	}

	if response.Success {
		response.Data = data
	} else {
		if apiErr, ok := data.(*APIError); ok {
			response.Error = apiErr
		}
	}

	_ = json.NewEncoder(w).Encode(response)
}

func respondWithError(w http.ResponseWriter, err error) {
	if svcErr, ok := application.IsServiceError(err); ok {
		respondWithJSON(w, svcErr.HTTPStatus, &APIError{
			Code:       svcErr.Code,
			Message:    svcErr.Message,
			Violations: svcErr.Violations,
		})
		return
	}

	respondWithJSON(w, http.StatusInternalServerError, &APIError{
		Code:    application.ErrCodeInternal,
		Message: "an internal error occurred",
	})
}
