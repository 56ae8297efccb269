package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	PurchaseTypeIncluded = "included"
	PurchaseTypeOverage  = "overage"
)

// LeadPurchase is the append-only audit row written when an admin assigns a
// lead to a customer. PricePaid is in whole dollars: 0 for included leads,
// the tier's overage price otherwise.
type LeadPurchase struct {
	ID           string    `json:"id"`
	LeadID       string    `json:"lead_id"`
	CustomerID   string    `json:"customer_id"`
	PurchaseType string    `json:"purchase_type"`
	PricePaid    int64     `json:"price_paid"`
	CreatedAt    time.Time `json:"created_at"`
}

// PurchaseFor decides how the next assignment is billed against a
// subscription's quota state: included while leads_used is below the
// snapshot quota, overage at the tier's overage price from the boundary on.
func PurchaseFor(leadsUsed, leadsIncluded int, tier Tier) (purchaseType string, price int64) {
	if leadsUsed >= leadsIncluded {
		return PurchaseTypeOverage, tier.OveragePrice
	}
	return PurchaseTypeIncluded, 0
}

func NewLeadPurchase(leadID, customerID, purchaseType string, pricePaid int64) *LeadPurchase {
	return &LeadPurchase{
		ID:           uuid.New().String(),
		LeadID:       leadID,
		CustomerID:   customerID,
		PurchaseType: purchaseType,
		PricePaid:    pricePaid,
		CreatedAt:    time.Now(),
	}
}
