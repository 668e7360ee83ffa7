package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/acquirepay/payment-gateway/internal/application"
)

type AuthorizationService interface {
	Authorize(ctx context.Context, req *application.PaymentRequest) (*application.PaymentResponse, error)
}

type QueryService interface {
	GetPaymentByID(ctx context.Context, id uuid.UUID) (*application.GetPaymentResponse, error)
}

type PaymentHandler struct {
	authService  AuthorizationService
	queryService QueryService
}

func NewPaymentHandler(
	authService AuthorizationService,
	queryService QueryService,
) *PaymentHandler {
	return &PaymentHandler{
		authService:  authService,
		queryService: queryService,
	}
}

func (h *PaymentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /payments", h.HandleAuthorize)
	mux.HandleFunc("GET /payments/{id}", h.HandleGetPayment)
}
