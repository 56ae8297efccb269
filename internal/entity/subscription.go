package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusCanceled = "canceled"
	SubscriptionStatusPastDue  = "past_due"
)

var ErrNoActiveSubscription = errors.New("no active subscription found")

type Subscription struct {
	ID                   string    `json:"id"`
	CustomerID           string    `json:"customer_id"`
	Tier                 string    `json:"tier"`
	Status               string    `json:"status"`
	LeadsIncluded        int       `json:"leads_included"`
	LeadsUsed            int       `json:"leads_used"`
	StripeSubscriptionID string    `json:"stripe_subscription_id"`
	CurrentPeriodStart   time.Time `json:"current_period_start"`
	CurrentPeriodEnd     time.Time `json:"current_period_end"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// SubscriptionRepository is the read surface handlers need for usage lookups.
type SubscriptionRepository interface {
	FindActiveByCustomerID(ctx context.Context, customerID string) (*Subscription, error)
}

// NewSubscription snapshots the tier's quota at registration time; the quota
// is not re-read from the pricing table afterwards.
func NewSubscription(customerID string, tier Tier, stripeSubscriptionID, status string, periodStart, periodEnd time.Time) *Subscription {
	now := time.Now()
	return &Subscription{
		ID:                   uuid.New().String(),
		CustomerID:           customerID,
		Tier:                 tier.Name,
		Status:               status,
		LeadsIncluded:        tier.LeadsIncluded,
		LeadsUsed:            0,
		StripeSubscriptionID: stripeSubscriptionID,
		CurrentPeriodStart:   periodStart,
		CurrentPeriodEnd:     periodEnd,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}
