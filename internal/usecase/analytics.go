package usecase

import (
	"context"

	"github.com/moverank/leadgen/internal/entity"
)

// AnalyticsReport is the admin aggregate view. Revenue figures are whole
// dollars; total revenue is recurring plus cumulative overage.
type AnalyticsReport struct {
	TotalCustomers          int   `json:"total_customers"`
	ActiveSubscriptions     int   `json:"active_subscriptions"`
	MonthlyRecurringRevenue int64 `json:"monthly_recurring_revenue"`
	TotalLeads              int   `json:"total_leads"`
	AvailableLeads          int   `json:"available_leads"`
	SoldLeads               int   `json:"sold_leads"`
	OverageRevenue          int64 `json:"overage_revenue"`
	TotalRevenue            int64 `json:"total_revenue"`
}

type AnalyticsUseCase struct {
	CustomerRepo CustomerRepositoryInterface
	SubRepo      SubscriptionRepositoryInterface
	LeadRepo     LeadRepositoryInterface
	PurchaseRepo PurchaseRepositoryInterface
}

func NewAnalyticsUseCase(
	customerRepo CustomerRepositoryInterface,
	subRepo SubscriptionRepositoryInterface,
	leadRepo LeadRepositoryInterface,
	purchaseRepo PurchaseRepositoryInterface,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		CustomerRepo: customerRepo,
		SubRepo:      subRepo,
		LeadRepo:     leadRepo,
		PurchaseRepo: purchaseRepo,
	}
}

// Execute pulls full table contents and reduces in memory. Fine at this
// scale; revisit with SQL aggregates before lead volume grows.
func (uc *AnalyticsUseCase) Execute(ctx context.Context) (*AnalyticsReport, error) {
	report := &AnalyticsReport{}

	customers, err := uc.CustomerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	report.TotalCustomers = len(customers)

	activeSubs, err := uc.SubRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	report.ActiveSubscriptions = len(activeSubs)
	for _, sub := range activeSubs {
		// MRR counts the tier's sticker price regardless of actual usage.
		if tier, ok := entity.TierByName(sub.Tier); ok {
			report.MonthlyRecurringRevenue += tier.Price
		}
	}

	leads, err := uc.LeadRepo.List(ctx, "", 0)
	if err != nil {
		return nil, err
	}
	report.TotalLeads = len(leads)
	for _, lead := range leads {
		switch lead.Status {
		case entity.LeadStatusAvailable:
			report.AvailableLeads++
		case entity.LeadStatusSold:
			report.SoldLeads++
		}
	}

	overages, err := uc.PurchaseRepo.ListByType(ctx, entity.PurchaseTypeOverage)
	if err != nil {
		return nil, err
	}
	for _, p := range overages {
		report.OverageRevenue += p.PricePaid
	}

	report.TotalRevenue = report.MonthlyRecurringRevenue + report.OverageRevenue
	return report, nil
}
