package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moverank/leadgen/internal/entity"
)

func TestPurchaseBillingBoundary(t *testing.T) {
	starter, _ := entity.TierByName("starter")

	// Under quota: included, free.
	purchaseType, price := entity.PurchaseFor(29, 30, starter)
	assert.Equal(t, entity.PurchaseTypeIncluded, purchaseType)
	assert.Zero(t, price)

	// leads_used == leads_included is already overage.
	purchaseType, price = entity.PurchaseFor(30, 30, starter)
	assert.Equal(t, entity.PurchaseTypeOverage, purchaseType)
	assert.Equal(t, int64(12), price)

	purchaseType, price = entity.PurchaseFor(31, 30, starter)
	assert.Equal(t, entity.PurchaseTypeOverage, purchaseType)
	assert.Equal(t, int64(12), price)
}

func TestPurchaseBillingUsesTierOveragePrice(t *testing.T) {
	enterprise, _ := entity.TierByName("enterprise")

	purchaseType, price := entity.PurchaseFor(150, 150, enterprise)
	assert.Equal(t, entity.PurchaseTypeOverage, purchaseType)
	assert.Equal(t, int64(8), price)
}

// Drawing down a quota of 2 over 5 assignments yields 2 included purchases,
// then overage for every assignment after them.
func TestPurchaseBillingQuotaDrawdown(t *testing.T) {
	starter, _ := entity.TierByName("starter")

	var included, overage int
	for used := 0; used < 5; used++ {
		purchaseType, _ := entity.PurchaseFor(used, 2, starter)
		switch purchaseType {
		case entity.PurchaseTypeIncluded:
			included++
		case entity.PurchaseTypeOverage:
			overage++
		}
	}

	assert.Equal(t, 2, included)
	assert.Equal(t, 3, overage)
}
