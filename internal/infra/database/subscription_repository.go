package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/moverank/leadgen/internal/entity"
)

type SubscriptionRepository struct {
	DB *sql.DB
}

func NewSubscriptionRepository(db *sql.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (
			id, customer_id, tier, status, leads_included, leads_used,
			stripe_subscription_id, current_period_start, current_period_end,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.DB.ExecContext(ctx, query,
		sub.ID,
		sub.CustomerID,
		sub.Tier,
		sub.Status,
		sub.LeadsIncluded,
		sub.LeadsUsed,
		sub.StripeSubscriptionID,
		sub.CurrentPeriodStart,
		sub.CurrentPeriodEnd,
		sub.CreatedAt,
		sub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) FindActiveByCustomerID(ctx context.Context, customerID string) (*entity.Subscription, error) {
	query := `
		SELECT id, customer_id, tier, status, leads_included, leads_used,
		       stripe_subscription_id, current_period_start, current_period_end,
		       created_at, updated_at
		FROM subscriptions
		WHERE customer_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	sub, err := scanSubscription(r.DB.QueryRowContext(ctx, query, customerID, entity.SubscriptionStatusActive))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNoActiveSubscription
	}
	if err != nil {
		return nil, fmt.Errorf("find active subscription: %w", err)
	}
	return sub, nil
}

func (r *SubscriptionRepository) ListActive(ctx context.Context) ([]*entity.Subscription, error) {
	query := `
		SELECT id, customer_id, tier, status, leads_included, leads_used,
		       stripe_subscription_id, current_period_start, current_period_end,
		       created_at, updated_at
		FROM subscriptions
		WHERE status = $1
	`

	rows, err := r.DB.QueryContext(ctx, query, entity.SubscriptionStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list active subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []*entity.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubscription(row rowScanner) (*entity.Subscription, error) {
	var (
		sub         entity.Subscription
		periodStart sql.NullTime
		periodEnd   sql.NullTime
	)

	err := row.Scan(
		&sub.ID,
		&sub.CustomerID,
		&sub.Tier,
		&sub.Status,
		&sub.LeadsIncluded,
		&sub.LeadsUsed,
		&sub.StripeSubscriptionID,
		&periodStart,
		&periodEnd,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	sub.CurrentPeriodStart = periodStart.Time
	sub.CurrentPeriodEnd = periodEnd.Time
	return &sub, nil
}
