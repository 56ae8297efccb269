package usecase

import (
	"context"

	"github.com/moverank/leadgen/internal/entity"
	"github.com/moverank/leadgen/internal/infra/integration/stripe"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	List(ctx context.Context, status string, minScore int) ([]*entity.Lead, error)
}

type CustomerRepositoryInterface interface {
	Create(ctx context.Context, c *entity.Customer) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*entity.Customer, error)
	FindAll(ctx context.Context) ([]*entity.Customer, error)
	FindAllWithSubscriptions(ctx context.Context) ([]*entity.CustomerWithSubscriptions, error)
}

type SubscriptionRepositoryInterface interface {
	Create(ctx context.Context, sub *entity.Subscription) error
	FindActiveByCustomerID(ctx context.Context, customerID string) (*entity.Subscription, error)
	ListActive(ctx context.Context) ([]*entity.Subscription, error)
}

type PurchaseRepositoryInterface interface {
	ListByType(ctx context.Context, purchaseType string) ([]*entity.LeadPurchase, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]*entity.LeadPurchase, error)
}

// AssignmentRepositoryInterface runs the whole assignment state transition in
// one storage transaction.
type AssignmentRepositoryInterface interface {
	Assign(ctx context.Context, leadID, customerID string) (*entity.LeadPurchase, error)
}

// LeadScorer rates a lead 0-100. Implementations never fail; they degrade to
// a fixed fallback score instead.
type LeadScorer interface {
	ScoreLead(ctx context.Context, lead *entity.Lead) (int, string)
}

type BillingGateway interface {
	CreateCustomer(ctx context.Context, email, companyName string) (string, error)
	CreateSubscription(ctx context.Context, stripeCustomerID string, tier entity.Tier) (*stripe.SubscriptionResult, error)
	ChargeOverage(ctx context.Context, stripeCustomerID string, numLeads int, unitPrice int64) (string, int64, error)
}

type EmailService interface {
	SendWelcome(to, companyName, tierName string) error
}
