package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/acquirepay/payment-gateway/internal/application"
	"github.com/acquirepay/payment-gateway/internal/infrastructure/memstore"
	"github.com/acquirepay/payment-gateway/internal/mapper"
)

// QueryService serves the stateless read path: lookup by identifier,
// then project onto the masked response.
type QueryService struct {
	store  application.PaymentStore
	logger *slog.Logger
}

func NewQueryService(store application.PaymentStore, logger *slog.Logger) *QueryService {
	return &QueryService{
		store:  store,
		logger: logger,
	}
}

// GetPaymentByID returns the masked view of a stored payment. A miss
// is an expected outcome, surfaced as PAYMENT_NOT_FOUND.
func (s *QueryService) GetPaymentByID(ctx context.Context, id uuid.UUID) (*application.GetPaymentResponse, error) {
	payment, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, memstore.ErrPaymentNotFound) {
			return nil, application.NewPaymentNotFoundError(id.String())
		}
		return nil, application.NewInternalError(err)
	}

	return mapper.ToGetPaymentResponse(payment)
}
