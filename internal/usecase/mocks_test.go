package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/moverank/leadgen/internal/entity"
	"github.com/moverank/leadgen/internal/infra/integration/stripe"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) List(ctx context.Context, status string, minScore int) ([]*entity.Lead, error) {
	args := m.Called(ctx, status, minScore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAllWithSubscriptions(ctx context.Context) ([]*entity.CustomerWithSubscriptions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.CustomerWithSubscriptions), args.Error(1)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) FindActiveByCustomerID(ctx context.Context, customerID string) (*entity.Subscription, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) ListActive(ctx context.Context) ([]*entity.Subscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Subscription), args.Error(1)
}

type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) ListByType(ctx context.Context, purchaseType string) ([]*entity.LeadPurchase, error) {
	args := m.Called(ctx, purchaseType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.LeadPurchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListByCustomerID(ctx context.Context, customerID string) ([]*entity.LeadPurchase, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.LeadPurchase), args.Error(1)
}

type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) Assign(ctx context.Context, leadID, customerID string) (*entity.LeadPurchase, error) {
	args := m.Called(ctx, leadID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LeadPurchase), args.Error(1)
}

type MockScorer struct {
	mock.Mock
}

func (m *MockScorer) ScoreLead(ctx context.Context, lead *entity.Lead) (int, string) {
	args := m.Called(ctx, lead)
	return args.Int(0), args.String(1)
}

type MockBillingGateway struct {
	mock.Mock
}

func (m *MockBillingGateway) CreateCustomer(ctx context.Context, email, companyName string) (string, error) {
	args := m.Called(ctx, email, companyName)
	return args.String(0), args.Error(1)
}

func (m *MockBillingGateway) CreateSubscription(ctx context.Context, stripeCustomerID string, tier entity.Tier) (*stripe.SubscriptionResult, error) {
	args := m.Called(ctx, stripeCustomerID, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.SubscriptionResult), args.Error(1)
}

func (m *MockBillingGateway) ChargeOverage(ctx context.Context, stripeCustomerID string, numLeads int, unitPrice int64) (string, int64, error) {
	args := m.Called(ctx, stripeCustomerID, numLeads, unitPrice)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendWelcome(to, companyName, tierName string) error {
	args := m.Called(to, companyName, tierName)
	return args.Error(0)
}
