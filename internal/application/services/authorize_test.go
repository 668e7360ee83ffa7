package services_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/acquirepay/payment-gateway/internal/application"
	"github.com/acquirepay/payment-gateway/internal/application/services"
	"github.com/acquirepay/payment-gateway/internal/config"
	"github.com/acquirepay/payment-gateway/internal/domain"
	"github.com/acquirepay/payment-gateway/internal/infrastructure/bank"
	"github.com/acquirepay/payment-gateway/internal/infrastructure/memstore"
	"github.com/acquirepay/payment-gateway/internal/validation"
)

// mockBankClient lets each test script the bank's behavior and counts
// how many authorization calls were made.
type mockBankClient struct {
	authorizeFn func(ctx context.Context, req bank.AuthorizationRequest) (*bank.AuthorizationResponse, error)
	calls       atomic.Int64
}

func (m *mockBankClient) Authorize(ctx context.Context, req bank.AuthorizationRequest) (*bank.AuthorizationResponse, error) {
	m.calls.Add(1)
	return m.authorizeFn(ctx, req)
}

func defaultPaymentRequest() application.PaymentRequest {
	return application.PaymentRequest{
		CardNumber:  "4111111111111111",
		ExpiryMonth: 12,
		ExpiryYear:  time.Now().UTC().Year() + 2,
		Currency:    "USD",
		AmountMinor: 1050,
		CVV:         "123",
	}
}

type AuthorizeServiceTestSuite struct {
	suite.Suite
	store        *memstore.PaymentStore
	mockBank     *mockBankClient
	service      *services.AuthorizeService
	queryService *services.QueryService
}

func TestAuthorizeServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthorizeServiceTestSuite))
}

// SetupTest runs before each test
func (suite *AuthorizeServiceTestSuite) SetupTest() {
	loggerCfg := config.LoggerConfig{Level: "error"}
	logger := loggerCfg.NewLogger()
	suite.store = memstore.NewPaymentStore()
	suite.mockBank = &mockBankClient{}
	suite.service = services.NewAuthorizeService(
		validation.NewRequestValidator(),
		suite.mockBank,
		suite.store,
		logger,
	)
	suite.queryService = services.NewQueryService(suite.store, logger)
}

func (suite *AuthorizeServiceTestSuite) Test_Authorize_BankApproves() {
	ctx := context.Background()
	t := suite.T()
	req := defaultPaymentRequest()

	suite.mockBank.authorizeFn = func(_ context.Context, bankReq bank.AuthorizationRequest) (*bank.AuthorizationResponse, error) {
		assert.Equal(t, req.CardNumber, bankReq.CardNumber)
		assert.Equal(t, "12/"+time.Now().UTC().AddDate(2, 0, 0).Format("06"), bankReq.ExpiryDate)
		assert.Equal(t, req.AmountMinor, bankReq.Amount)
		return &bank.AuthorizationResponse{Authorized: true, AuthorizationCode: "auth-123"}, nil
	}

	resp, err := suite.service.Authorize(ctx, &req)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, domain.StatusAuthorized, resp.Status)
	assert.Equal(t, "1111", resp.CardNumberLastFour)
	assert.Equal(t, req.AmountMinor, resp.AmountMinor)
	assert.Equal(t, req.Currency, resp.Currency)
	assert.Equal(t, int64(1), suite.mockBank.calls.Load())

	stored, err := suite.store.FindByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAuthorized, stored.Status)
}

func (suite *AuthorizeServiceTestSuite) Test_Authorize_BankDeclines() {
	ctx := context.Background()
	t := suite.T()
	req := defaultPaymentRequest()

	suite.mockBank.authorizeFn = func(context.Context, bank.AuthorizationRequest) (*bank.AuthorizationResponse, error) {
		return &bank.AuthorizationResponse{Authorized: false}, nil
	}

	resp, err := suite.service.Authorize(ctx, &req)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusDeclined, resp.Status)

	// A decline is still a recorded payment.
	stored, err := suite.store.FindByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDeclined, stored.Status)
}

func (suite *AuthorizeServiceTestSuite) Test_Authorize_ValidationFailure_NoBankCallNoRecord() {
	ctx := context.Background()
	t := suite.T()
	req := defaultPaymentRequest()
	req.Currency = "JPY"

	resp, err := suite.service.Authorize(ctx, &req)

	assert.Nil(t, resp)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeValidationFailed, svcErr.Code)
	assert.Equal(t, http.StatusBadRequest, svcErr.HTTPStatus)
	assert.NotEmpty(t, svcErr.Violations)

	assert.Equal(t, int64(0), suite.mockBank.calls.Load())
	assert.Equal(t, 0, suite.store.Len())
}

func (suite *AuthorizeServiceTestSuite) Test_Authorize_BankTransportFailure_NothingPersisted() {
	ctx := context.Background()
	t := suite.T()
	req := defaultPaymentRequest()

	suite.mockBank.authorizeFn = func(context.Context, bank.AuthorizationRequest) (*bank.AuthorizationResponse, error) {
		return nil, errors.New("error making request: connection refused")
	}

	resp, err := suite.service.Authorize(ctx, &req)

	assert.Nil(t, resp)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeBankUnavailable, svcErr.Code)
	assert.Equal(t, http.StatusBadGateway, svcErr.HTTPStatus)

	assert.Equal(t, 0, suite.store.Len())
}

func (suite *AuthorizeServiceTestSuite) Test_Authorize_BankErrorStatus_NothingPersisted() {
	ctx := context.Background()
	t := suite.T()
	req := defaultPaymentRequest()

	suite.mockBank.authorizeFn = func(context.Context, bank.AuthorizationRequest) (*bank.AuthorizationResponse, error) {
		return nil, &bank.BankError{StatusCode: http.StatusInternalServerError, Body: "boom"}
	}

	resp, err := suite.service.Authorize(ctx, &req)

	assert.Nil(t, resp)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeBankProtocol, svcErr.Code)

	assert.Equal(t, 0, suite.store.Len())
}

func (suite *AuthorizeServiceTestSuite) Test_Authorize_MalformedBankBody_ProtocolError() {
	ctx := context.Background()
	t := suite.T()
	req := defaultPaymentRequest()

	suite.mockBank.authorizeFn = func(context.Context, bank.AuthorizationRequest) (*bank.AuthorizationResponse, error) {
		return nil, bank.ErrMalformedResponse
	}

	resp, err := suite.service.Authorize(ctx, &req)

	assert.Nil(t, resp)
	svcErr, ok := application.IsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, application.ErrCodeBankProtocol, svcErr.Code)
	assert.Equal(t, 0, suite.store.Len())
}

// Authorize then retrieve: the lookup returns the same identifier,
// amount and currency, masked, with the terminal status.
func (suite *AuthorizeServiceTestSuite) Test_Authorize_RoundTrip() {
	ctx := context.Background()
	t := suite.T()
	req := defaultPaymentRequest()

	suite.mockBank.authorizeFn = func(context.Context, bank.AuthorizationRequest) (*bank.AuthorizationResponse, error) {
		return &bank.AuthorizationResponse{Authorized: true}, nil
	}

	created, err := suite.service.Authorize(ctx, &req)
	require.NoError(t, err)

	fetched, err := suite.queryService.GetPaymentByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, domain.StatusAuthorized, fetched.Status)
	assert.Equal(t, created.AmountMinor, fetched.AmountMinor)
	assert.Equal(t, created.Currency, fetched.Currency)
	assert.Equal(t, "1111", fetched.CardNumberLastFour)
}

func (suite *AuthorizeServiceTestSuite) Test_Authorize_Concurrent_DistinctIDs() {
	ctx := context.Background()
	t := suite.T()

	suite.mockBank.authorizeFn = func(context.Context, bank.AuthorizationRequest) (*bank.AuthorizationResponse, error) {
		return &bank.AuthorizationResponse{Authorized: true}, nil
	}

	const attempts = 10
	responses := make([]*application.PaymentResponse, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			req := defaultPaymentRequest()
			req.AmountMinor = int64(100 + n)
			resp, err := suite.service.Authorize(ctx, &req)
			assert.NoError(t, err)
			responses[n] = resp
		}(i)
	}
	wg.Wait()

	seen := make(map[uuid.UUID]bool, attempts)
	for _, resp := range responses {
		require.NotNil(t, resp)
		assert.False(t, seen[resp.ID], "duplicate payment id %s", resp.ID)
		seen[resp.ID] = true

		fetched, err := suite.queryService.GetPaymentByID(ctx, resp.ID)
		require.NoError(t, err)
		assert.Equal(t, resp.AmountMinor, fetched.AmountMinor)
	}
}
