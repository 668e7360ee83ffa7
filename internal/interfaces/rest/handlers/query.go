package handlers

import (
	"net/http"

	"github.com/google/uuid"
)

// HandleGetPayment retrieves a stored payment by identifier
// @Summary      Get a payment
// @Description  Return the masked view of a previously recorded payment.
// @Tags         payments
// @Produce      json
// @Param        id   path      string       true  "Payment identifier"
// @Success      200  {object}  APIResponse  "Masked payment details"
// @Failure      400  {object}  APIResponse  "Malformed identifier"
// @Failure      404  {object}  APIResponse  "Payment not found"
// @Router       /payments/{id} [get]
func (h *PaymentHandler) HandleGetPayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondWithJSON(w, http.StatusBadRequest, &APIError{
			Code:    "INVALID_PAYMENT_ID",
			Message: "payment id must be a valid UUID",
		})
		return
	}

	resp, err := h.queryService.GetPaymentByID(r.Context(), id)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}
