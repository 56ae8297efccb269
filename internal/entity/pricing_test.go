package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/moverank/leadgen/internal/entity"
)

func TestPricingTable(t *testing.T) {
	starter, ok := entity.TierByName("starter")
	assert.True(t, ok)
	assert.Equal(t, int64(299), starter.Price)
	assert.Equal(t, 30, starter.LeadsIncluded)
	assert.Equal(t, int64(12), starter.OveragePrice)

	professional, ok := entity.TierByName("professional")
	assert.True(t, ok)
	assert.Equal(t, int64(599), professional.Price)
	assert.Equal(t, 75, professional.LeadsIncluded)
	assert.Equal(t, int64(10), professional.OveragePrice)

	enterprise, ok := entity.TierByName("enterprise")
	assert.True(t, ok)
	assert.Equal(t, int64(999), enterprise.Price)
	assert.Equal(t, 150, enterprise.LeadsIncluded)
	assert.Equal(t, int64(8), enterprise.OveragePrice)
}

func TestTierByNameUnknown(t *testing.T) {
	_, ok := entity.TierByName("platinum")
	assert.False(t, ok)

	// Lookup is case sensitive; tiers are stored lowercase.
	_, ok = entity.TierByName("Starter")
	assert.False(t, ok)
}

func TestNewSubscriptionSnapshotsQuota(t *testing.T) {
	tier, _ := entity.TierByName("starter")
	periodStart := time.Now()
	periodEnd := periodStart.AddDate(0, 1, 0)
	sub := entity.NewSubscription("cust-1", tier, "sub_123", entity.SubscriptionStatusActive, periodStart, periodEnd)

	assert.Equal(t, "starter", sub.Tier)
	assert.Equal(t, 30, sub.LeadsIncluded)
	assert.Zero(t, sub.LeadsUsed)
	assert.NotEmpty(t, sub.ID)
}
