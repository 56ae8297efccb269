package stripe

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	stripeapi "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/moverank/leadgen/internal/entity"
)

// Client wraps the three billing-provider operations the system needs:
// create customer, create subscription, one-off overage charge. The provider
// key lives in the instance, not in the stripe-go package global.
type Client struct {
	api    *client.API
	logger zerolog.Logger
}

func NewClient(secretKey string, logger zerolog.Logger) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Client{api: api, logger: logger}
}

// SubscriptionResult carries the provider-assigned identifiers and billing
// period bounds back to the registration flow.
type SubscriptionResult struct {
	SubscriptionID string
	Status         string
	PeriodStart    time.Time
	PeriodEnd      time.Time
}

func (c *Client) CreateCustomer(ctx context.Context, email, companyName string) (string, error) {
	params := &stripeapi.CustomerParams{
		Email: stripeapi.String(email),
		Name:  stripeapi.String(companyName),
	}
	params.Context = ctx
	params.AddMetadata("company_name", companyName)

	cust, err := c.api.Customers.New(params)
	if err != nil {
		c.logger.Error().Err(err).Str("email", email).Msg("stripe customer creation failed")
		return "", fmt.Errorf("stripe customer creation: %w", err)
	}
	return cust.ID, nil
}

// CreateSubscription creates a monthly recurring price for the tier and
// subscribes the customer to it. The price is created inline per registration
// so billing needs no dashboard-managed product catalog.
func (c *Client) CreateSubscription(ctx context.Context, stripeCustomerID string, tier entity.Tier) (*SubscriptionResult, error) {
	priceParams := &stripeapi.PriceParams{
		Currency:   stripeapi.String(string(stripeapi.CurrencyUSD)),
		UnitAmount: stripeapi.Int64(tier.Price * 100),
		Recurring: &stripeapi.PriceRecurringParams{
			Interval: stripeapi.String(string(stripeapi.PriceRecurringIntervalMonth)),
		},
		ProductData: &stripeapi.PriceProductDataParams{
			Name: stripeapi.String(planName(tier)),
		},
	}
	priceParams.Context = ctx

	price, err := c.api.Prices.New(priceParams)
	if err != nil {
		c.logger.Error().Err(err).Str("tier", tier.Name).Msg("stripe price creation failed")
		return nil, fmt.Errorf("stripe price creation: %w", err)
	}

	subParams := &stripeapi.SubscriptionParams{
		Customer: stripeapi.String(stripeCustomerID),
		Items: []*stripeapi.SubscriptionItemsParams{
			{Price: stripeapi.String(price.ID)},
		},
	}
	subParams.Context = ctx
	subParams.AddMetadata("tier", tier.Name)
	subParams.AddMetadata("leads_included", strconv.Itoa(tier.LeadsIncluded))

	sub, err := c.api.Subscriptions.New(subParams)
	if err != nil {
		c.logger.Error().Err(err).Str("tier", tier.Name).Msg("stripe subscription creation failed")
		return nil, fmt.Errorf("stripe subscription creation: %w", err)
	}

	return &SubscriptionResult{
		SubscriptionID: sub.ID,
		Status:         string(sub.Status),
		PeriodStart:    time.Unix(sub.CurrentPeriodStart, 0),
		PeriodEnd:      time.Unix(sub.CurrentPeriodEnd, 0),
	}, nil
}

// ChargeOverage creates a one-off PaymentIntent for leads assigned beyond the
// included quota. unitPrice is in whole dollars; the returned amount is too.
func (c *Client) ChargeOverage(ctx context.Context, stripeCustomerID string, numLeads int, unitPrice int64) (string, int64, error) {
	amount := int64(numLeads) * unitPrice

	params := &stripeapi.PaymentIntentParams{
		Amount:      stripeapi.Int64(amount * 100),
		Currency:    stripeapi.String(string(stripeapi.CurrencyUSD)),
		Customer:    stripeapi.String(stripeCustomerID),
		Description: stripeapi.String(fmt.Sprintf("Overage charge for %d leads", numLeads)),
	}
	params.Context = ctx
	params.AddMetadata("type", "overage")
	params.AddMetadata("num_leads", strconv.Itoa(numLeads))

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		c.logger.Error().Err(err).Str("customer", stripeCustomerID).Msg("stripe overage charge failed")
		return "", 0, fmt.Errorf("stripe overage charge: %w", err)
	}
	return pi.ID, amount, nil
}

func planName(tier entity.Tier) string {
	if tier.Name == "" {
		return "Plan"
	}
	// "starter" -> "Starter Plan"
	return strings.ToUpper(tier.Name[:1]) + tier.Name[1:] + " Plan"
}
