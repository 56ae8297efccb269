package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/moverank/leadgen/internal/entity"
)

type PurchaseRepository struct {
	DB *sql.DB
}

func NewPurchaseRepository(db *sql.DB) *PurchaseRepository {
	return &PurchaseRepository{DB: db}
}

func (r *PurchaseRepository) ListByType(ctx context.Context, purchaseType string) ([]*entity.LeadPurchase, error) {
	query := `
		SELECT id, lead_id, customer_id, purchase_type, price_paid, created_at
		FROM lead_purchases
		WHERE purchase_type = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, purchaseType)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	return collectPurchases(rows)
}

func (r *PurchaseRepository) ListByCustomerID(ctx context.Context, customerID string) ([]*entity.LeadPurchase, error) {
	query := `
		SELECT id, lead_id, customer_id, purchase_type, price_paid, created_at
		FROM lead_purchases
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list purchases by customer: %w", err)
	}
	defer rows.Close()

	return collectPurchases(rows)
}

func collectPurchases(rows *sql.Rows) ([]*entity.LeadPurchase, error) {
	var purchases []*entity.LeadPurchase
	for rows.Next() {
		var p entity.LeadPurchase
		err := rows.Scan(&p.ID, &p.LeadID, &p.CustomerID, &p.PurchaseType, &p.PricePaid, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		purchases = append(purchases, &p)
	}
	return purchases, rows.Err()
}
