package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/acquirepay/payment-gateway/internal/application"
	"github.com/acquirepay/payment-gateway/internal/infrastructure/bank"
	"github.com/acquirepay/payment-gateway/internal/mapper"
	"github.com/acquirepay/payment-gateway/internal/validation"
)

// AuthorizeService runs a single authorization attempt end to end:
// validate, map, call the bank once, resolve, store, respond.
type AuthorizeService struct {
	validator  *validation.RequestValidator
	bankClient bank.BankClient
	store      application.PaymentStore
	logger     *slog.Logger
}

func NewAuthorizeService(
	validator *validation.RequestValidator,
	bankClient bank.BankClient,
	store application.PaymentStore,
	logger *slog.Logger,
) *AuthorizeService {
	return &AuthorizeService{
		validator:  validator,
		bankClient: bankClient,
		store:      store,
		logger:     logger,
	}
}

// Authorize processes one payment request. A failed bank call aborts
// the attempt without persisting anything; only payments with a
// resolved terminal status ever reach the store.
func (s *AuthorizeService) Authorize(ctx context.Context, req *application.PaymentRequest) (*application.PaymentResponse, error) {
	if violations := s.validator.Validate(req); len(violations) > 0 {
		return nil, application.NewValidationError(violations)
	}

	payment, err := mapper.FromRequest(req)
	if err != nil {
		return nil, application.NewInternalError(err)
	}

	bankReq, err := mapper.ToBankRequest(payment)
	if err != nil {
		return nil, application.NewInternalError(err)
	}

	bankResp, err := s.bankClient.Authorize(ctx, *bankReq)
	if err != nil {
		s.logger.Error("bank authorization call failed",
			"payment_id", payment.ID,
			"error", err,
		)
		if _, ok := bank.IsBankError(err); ok {
			return nil, application.NewBankProtocolError(err)
		}
		if errors.Is(err, bank.ErrMalformedResponse) {
			return nil, application.NewBankProtocolError(err)
		}
		return nil, application.NewBankUnavailableError(err)
	}

	// The only place a payment status is ever written.
	if err := payment.Resolve(bankResp.Authorized); err != nil {
		return nil, application.NewInternalError(err)
	}

	if err := s.store.Insert(ctx, payment); err != nil {
		return nil, application.NewInternalError(err)
	}

	s.logger.Info("payment resolved",
		"payment_id", payment.ID,
		"status", payment.Status,
		"amount", payment.AmountMinor,
		"currency", payment.Currency,
	)

	resp, err := mapper.ToPaymentResponse(payment)
	if err != nil {
		return nil, application.NewInternalError(err)
	}
	return resp, nil
}
