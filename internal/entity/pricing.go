package entity

import "errors"

var ErrUnknownTier = errors.New("invalid subscription tier")

// Tier is a named subscription plan. Prices are whole dollars; conversion to
// cents happens only at the billing-provider boundary.
type Tier struct {
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	LeadsIncluded int    `json:"leads_included"`
	OveragePrice  int64  `json:"overage_price"`
}

// PricingTiers is the static pricing table. Pure data, no behavior.
var PricingTiers = map[string]Tier{
	"starter":      {Name: "starter", Price: 299, LeadsIncluded: 30, OveragePrice: 12},
	"professional": {Name: "professional", Price: 599, LeadsIncluded: 75, OveragePrice: 10},
	"enterprise":   {Name: "enterprise", Price: 999, LeadsIncluded: 150, OveragePrice: 8},
}

func TierByName(name string) (Tier, bool) {
	tier, ok := PricingTiers[name]
	return tier, ok
}
