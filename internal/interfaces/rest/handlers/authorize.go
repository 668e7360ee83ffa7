package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/acquirepay/payment-gateway/internal/application"
)

// HandleAuthorize processes a payment authorization request
// @Summary      Authorize a card payment
// @Description  Validate the request, forward it to the acquiring bank and record the outcome.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      application.PaymentRequest  true  "Card payment details"
// @Success      201      {object}  APIResponse                 "Payment authorized or declined"
// @Failure      400      {object}  APIResponse                 "Invalid request parameters"
// @Failure      502      {object}  APIResponse                 "Acquiring bank failure"
// @Router       /payments [post]
func (h *PaymentHandler) HandleAuthorize(w http.ResponseWriter, r *http.Request) {
	var req application.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, &APIError{
			Code:    "MALFORMED_BODY",
			Message: "request body must be valid JSON",
		})
		return
	}

	resp, err := h.authService.Authorize(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, resp)
}
