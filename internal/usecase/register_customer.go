package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/moverank/leadgen/internal/entity"
	"github.com/moverank/leadgen/internal/infra/integration/stripe"
)

type RegisterCustomerInput struct {
	CompanyName string `json:"company_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
	Tier        string `json:"tier" validate:"required"`
}

type RegisterCustomerOutput struct {
	Success    bool   `json:"success"`
	CustomerID string `json:"customer_id"`
	Message    string `json:"message"`
}

type RegisterCustomerUseCase struct {
	CustomerRepo CustomerRepositoryInterface
	SubRepo      SubscriptionRepositoryInterface
	Billing      BillingGateway
	Mail         EmailService
	validate     *validator.Validate
	logger       zerolog.Logger
}

func NewRegisterCustomerUseCase(
	customerRepo CustomerRepositoryInterface,
	subRepo SubscriptionRepositoryInterface,
	billing BillingGateway,
	mailSender EmailService,
	logger zerolog.Logger,
) *RegisterCustomerUseCase {
	return &RegisterCustomerUseCase{
		CustomerRepo: customerRepo,
		SubRepo:      subRepo,
		Billing:      billing,
		Mail:         mailSender,
		validate:     validator.New(),
		logger:       logger,
	}
}

// Execute registers a moving company: provider customer first (abort before
// any local write on failure), then local customer row, provider
// subscription and local subscription row under a compensating transaction.
func (uc *RegisterCustomerUseCase) Execute(ctx context.Context, input RegisterCustomerInput) (*RegisterCustomerOutput, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: validationMessage(err),
		}
	}

	tier, ok := entity.TierByName(input.Tier)
	if !ok {
		return nil, &DomainError{
			Code:    "INVALID_TIER",
			Message: "Invalid subscription tier",
		}
	}

	stripeCustomerID, err := uc.Billing.CreateCustomer(ctx, input.Email, input.CompanyName)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "PAYMENT_SETUP_FAILED",
			Message: "Payment setup failed: " + err.Error(),
		}
	}

	customer := entity.NewCustomer(input.CompanyName, input.Email, input.Phone, stripeCustomerID)

	var subResult *stripe.SubscriptionResult

	txn := NewTransaction(uc.logger)

	txn.AddOperation("create_customer_row", func(ctx context.Context) error {
		return uc.CustomerRepo.Create(ctx, customer)
	})
	txn.AddCompensation("delete_customer_row", func(ctx context.Context) error {
		return uc.CustomerRepo.Delete(ctx, customer.ID)
	})

	txn.AddOperation("create_provider_subscription", func(ctx context.Context) error {
		subResult, err = uc.Billing.CreateSubscription(ctx, stripeCustomerID, tier)
		return err
	})

	txn.AddOperation("create_subscription_row", func(ctx context.Context) error {
		sub := entity.NewSubscription(
			customer.ID,
			tier,
			subResult.SubscriptionID,
			subResult.Status,
			subResult.PeriodStart,
			subResult.PeriodEnd,
		)
		return uc.SubRepo.Create(ctx, sub)
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    "REGISTRATION_FAILED",
			Message: "Registration failed: " + err.Error(),
		}
	}

	if uc.Mail != nil {
		go func() {
			if err := uc.Mail.SendWelcome(customer.Email, customer.CompanyName, tier.Name); err != nil {
				uc.logger.Warn().Err(err).Str("customer_id", customer.ID).Msg("welcome email failed")
			}
		}()
	}

	return &RegisterCustomerOutput{
		Success:    true,
		CustomerID: customer.ID,
		Message:    fmt.Sprintf("Successfully registered with %s plan", tier.Name),
	}, nil
}
