package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/moverank/leadgen/internal/entity"
)

type AssignLeadOutput struct {
	Success      bool   `json:"success"`
	PurchaseType string `json:"purchase_type"`
	Price        int64  `json:"price"`
	Message      string `json:"message"`
}

type AssignLeadUseCase struct {
	Assignments  AssignmentRepositoryInterface
	CustomerRepo CustomerRepositoryInterface
	Billing      BillingGateway
	logger       zerolog.Logger
}

func NewAssignLeadUseCase(
	assignments AssignmentRepositoryInterface,
	customerRepo CustomerRepositoryInterface,
	billing BillingGateway,
	logger zerolog.Logger,
) *AssignLeadUseCase {
	return &AssignLeadUseCase{
		Assignments:  assignments,
		CustomerRepo: customerRepo,
		Billing:      billing,
		logger:       logger,
	}
}

// Execute assigns a lead to a customer. The storage transition commits first;
// an overage charge is attempted afterwards and its failure never undoes the
// assignment, it only flags the purchase for manual billing.
func (uc *AssignLeadUseCase) Execute(ctx context.Context, leadID, customerID string) (*AssignLeadOutput, error) {
	purchase, err := uc.Assignments.Assign(ctx, leadID, customerID)
	if err != nil {
		return nil, err
	}

	message := "Lead assigned to customer"
	if purchase.PurchaseType == entity.PurchaseTypeOverage {
		message = uc.chargeOverage(ctx, purchase, message)
	}

	return &AssignLeadOutput{
		Success:      true,
		PurchaseType: purchase.PurchaseType,
		Price:        purchase.PricePaid,
		Message:      message,
	}, nil
}

func (uc *AssignLeadUseCase) chargeOverage(ctx context.Context, purchase *entity.LeadPurchase, message string) string {
	customer, err := uc.CustomerRepo.FindByID(ctx, purchase.CustomerID)
	if err != nil {
		uc.logger.Error().Err(err).Str("customer_id", purchase.CustomerID).Msg("overage charge skipped, customer lookup failed")
		return message + "; overage charge pending manual billing"
	}

	chargeID, amount, err := uc.Billing.ChargeOverage(ctx, customer.StripeCustomerID, 1, purchase.PricePaid)
	if err != nil {
		uc.logger.Error().Err(err).
			Str("customer_id", purchase.CustomerID).
			Str("purchase_id", purchase.ID).
			Msg("overage charge failed")
		return message + "; overage charge pending manual billing"
	}

	uc.logger.Info().
		Str("charge_id", chargeID).
		Int64("amount", amount).
		Str("customer_id", purchase.CustomerID).
		Msg("overage charged")
	return message
}
