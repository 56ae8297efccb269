package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/moverank/leadgen/internal/entity"
)

// AssignmentRepository performs the lead-to-customer assignment as a single
// transaction: lock the customer's active subscription, decide included vs
// overage, mark the lead sold, append the purchase row and bump leads_used.
// The row lock serializes concurrent assignments against one subscription so
// two of them cannot both read the same leads_used.
type AssignmentRepository struct {
	DB *sql.DB
}

func NewAssignmentRepository(db *sql.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Assign(ctx context.Context, leadID, customerID string) (*entity.LeadPurchase, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin assignment: %w", err)
	}
	defer tx.Rollback()

	subQuery := `
		SELECT id, tier, leads_included, leads_used
		FROM subscriptions
		WHERE customer_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT 1
		FOR UPDATE
	`

	var (
		subID         string
		tierName      string
		leadsIncluded int
		leadsUsed     int
	)
	err = tx.QueryRowContext(ctx, subQuery, customerID, entity.SubscriptionStatusActive).
		Scan(&subID, &tierName, &leadsIncluded, &leadsUsed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNoActiveSubscription
	}
	if err != nil {
		return nil, fmt.Errorf("lock subscription: %w", err)
	}

	tier, ok := entity.TierByName(tierName)
	if !ok {
		return nil, fmt.Errorf("subscription %s: %w: %q", subID, entity.ErrUnknownTier, tierName)
	}

	// Evaluated against the locked row, at assignment time. Never reconciled
	// retroactively if the tier changes later.
	purchaseType, price := entity.PurchaseFor(leadsUsed, leadsIncluded, tier)

	res, err := tx.ExecContext(ctx,
		`UPDATE leads SET status = $1, assigned_to = $2, updated_at = NOW() WHERE id = $3 AND status = $4`,
		entity.LeadStatusSold, customerID, leadID, entity.LeadStatusAvailable,
	)
	if err != nil {
		return nil, fmt.Errorf("mark lead sold: %w", err)
	}
	// Zero rows means the lead does not exist or was already sold.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, entity.ErrLeadNotFound
	}

	purchase := entity.NewLeadPurchase(leadID, customerID, purchaseType, price)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO lead_purchases (id, lead_id, customer_id, purchase_type, price_paid, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		purchase.ID, purchase.LeadID, purchase.CustomerID, purchase.PurchaseType, purchase.PricePaid, purchase.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("record purchase: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE subscriptions SET leads_used = leads_used + 1, updated_at = NOW() WHERE id = $1`,
		subID,
	)
	if err != nil {
		return nil, fmt.Errorf("increment leads_used: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit assignment: %w", err)
	}
	return purchase, nil
}
