package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/moverank/leadgen/internal/entity"
	"github.com/moverank/leadgen/internal/infra/integration/stripe"
	"github.com/moverank/leadgen/internal/usecase"
)

func registrationInput() usecase.RegisterCustomerInput {
	return usecase.RegisterCustomerInput{
		CompanyName: "Swift Movers LLC",
		Email:       "ops@swiftmovers.com",
		Phone:       "555-0100",
		Tier:        "starter",
	}
}

func subscriptionResult() *stripe.SubscriptionResult {
	return &stripe.SubscriptionResult{
		SubscriptionID: "sub_123",
		Status:         entity.SubscriptionStatusActive,
		PeriodStart:    time.Now(),
		PeriodEnd:      time.Now().AddDate(0, 1, 0),
	}
}

func TestRegisterCustomerSuccess(t *testing.T) {
	ctx := context.Background()

	customerRepo := new(MockCustomerRepository)
	subRepo := new(MockSubscriptionRepository)
	gateway := new(MockBillingGateway)

	gateway.On("CreateCustomer", ctx, "ops@swiftmovers.com", "Swift Movers LLC").Return("cus_123", nil)
	gateway.On("CreateSubscription", ctx, "cus_123", mock.Anything).Return(subscriptionResult(), nil)
	customerRepo.On("Create", ctx, mock.Anything).Return(nil)
	subRepo.On("Create", ctx, mock.Anything).Return(nil)

	uc := usecase.NewRegisterCustomerUseCase(customerRepo, subRepo, gateway, nil, zerolog.Nop())

	output, err := uc.Execute(ctx, registrationInput())

	assert.NoError(t, err)
	assert.True(t, output.Success)
	assert.NotEmpty(t, output.CustomerID)
	assert.Equal(t, "Successfully registered with starter plan", output.Message)

	// The local subscription row snapshots the tier quota and starts unused.
	subRepo.AssertCalled(t, "Create", ctx, mock.MatchedBy(func(sub *entity.Subscription) bool {
		return sub.Tier == "starter" &&
			sub.LeadsIncluded == 30 &&
			sub.LeadsUsed == 0 &&
			sub.StripeSubscriptionID == "sub_123"
	}))
	gateway.AssertExpectations(t)
}

// Unknown tier is rejected before any provider or storage call.
func TestRegisterCustomerUnknownTier(t *testing.T) {
	ctx := context.Background()

	customerRepo := new(MockCustomerRepository)
	subRepo := new(MockSubscriptionRepository)
	gateway := new(MockBillingGateway)

	uc := usecase.NewRegisterCustomerUseCase(customerRepo, subRepo, gateway, nil, zerolog.Nop())

	input := registrationInput()
	input.Tier = "platinum"

	output, err := uc.Execute(ctx, input)

	assert.Nil(t, output)
	assert.True(t, usecase.IsDomainError(err))

	gateway.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything, mock.Anything)
	customerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	subRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterCustomerProviderFailureAbortsBeforeLocalWrites(t *testing.T) {
	ctx := context.Background()

	customerRepo := new(MockCustomerRepository)
	subRepo := new(MockSubscriptionRepository)
	gateway := new(MockBillingGateway)

	gateway.On("CreateCustomer", ctx, mock.Anything, mock.Anything).Return("", errors.New("card network unavailable"))

	uc := usecase.NewRegisterCustomerUseCase(customerRepo, subRepo, gateway, nil, zerolog.Nop())

	output, err := uc.Execute(ctx, registrationInput())

	assert.Nil(t, output)
	assert.True(t, usecase.IsTechnicalError(err))
	assert.Contains(t, err.Error(), "Payment setup failed")

	customerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// A failure after the customer row was written rolls that row back.
func TestRegisterCustomerSubscriptionFailureCompensates(t *testing.T) {
	ctx := context.Background()

	customerRepo := new(MockCustomerRepository)
	subRepo := new(MockSubscriptionRepository)
	gateway := new(MockBillingGateway)

	gateway.On("CreateCustomer", ctx, mock.Anything, mock.Anything).Return("cus_123", nil)
	gateway.On("CreateSubscription", ctx, "cus_123", mock.Anything).Return(nil, errors.New("subscription rejected"))
	customerRepo.On("Create", ctx, mock.Anything).Return(nil)
	customerRepo.On("Delete", ctx, mock.Anything).Return(nil)

	uc := usecase.NewRegisterCustomerUseCase(customerRepo, subRepo, gateway, nil, zerolog.Nop())

	output, err := uc.Execute(ctx, registrationInput())

	assert.Nil(t, output)
	assert.True(t, usecase.IsTechnicalError(err))

	customerRepo.AssertCalled(t, "Delete", ctx, mock.Anything)
	subRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
