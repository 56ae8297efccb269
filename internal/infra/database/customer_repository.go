package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/moverank/leadgen/internal/entity"
)

type CustomerRepository struct {
	DB *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (id, company_name, email, phone, stripe_customer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.CompanyName,
		c.Email,
		nullString(c.Phone),
		c.StripeCustomerID,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `
		SELECT id, company_name, email, phone, stripe_customer_id, created_at, updated_at
		FROM customers
		WHERE id = $1
	`

	var (
		c     entity.Customer
		phone sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.CompanyName,
		&c.Email,
		&phone,
		&c.StripeCustomerID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}

	c.Phone = phone.String
	return &c, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	query := `
		SELECT id, company_name, email, phone, stripe_customer_id, created_at, updated_at
		FROM customers
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		var (
			c     entity.Customer
			phone sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.CompanyName, &c.Email, &phone, &c.StripeCustomerID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		c.Phone = phone.String
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}

// FindAllWithSubscriptions joins every customer with its subscription rows,
// newest customers first. Customers without a subscription come back with an
// empty slice.
func (r *CustomerRepository) FindAllWithSubscriptions(ctx context.Context) ([]*entity.CustomerWithSubscriptions, error) {
	query := `
		SELECT c.id, c.company_name, c.email, c.phone, c.stripe_customer_id, c.created_at, c.updated_at,
		       s.id, s.tier, s.status, s.leads_included, s.leads_used,
		       s.stripe_subscription_id, s.current_period_start, s.current_period_end,
		       s.created_at, s.updated_at
		FROM customers c
		LEFT JOIN subscriptions s ON s.customer_id = c.id
		ORDER BY c.created_at DESC, s.created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers with subscriptions: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*entity.CustomerWithSubscriptions)
	var ordered []*entity.CustomerWithSubscriptions

	for rows.Next() {
		var (
			c           entity.Customer
			phone       sql.NullString
			subID       sql.NullString
			tier        sql.NullString
			status      sql.NullString
			included    sql.NullInt64
			used        sql.NullInt64
			stripeSubID sql.NullString
			periodStart sql.NullTime
			periodEnd   sql.NullTime
			subCreated  sql.NullTime
			subUpdated  sql.NullTime
		)

		err := rows.Scan(
			&c.ID, &c.CompanyName, &c.Email, &phone, &c.StripeCustomerID, &c.CreatedAt, &c.UpdatedAt,
			&subID, &tier, &status, &included, &used,
			&stripeSubID, &periodStart, &periodEnd,
			&subCreated, &subUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		c.Phone = phone.String

		cw, seen := byID[c.ID]
		if !seen {
			cw = &entity.CustomerWithSubscriptions{Customer: c, Subscriptions: []*entity.Subscription{}}
			byID[c.ID] = cw
			ordered = append(ordered, cw)
		}

		if subID.Valid {
			cw.Subscriptions = append(cw.Subscriptions, &entity.Subscription{
				ID:                   subID.String,
				CustomerID:           c.ID,
				Tier:                 tier.String,
				Status:               status.String,
				LeadsIncluded:        int(included.Int64),
				LeadsUsed:            int(used.Int64),
				StripeSubscriptionID: stripeSubID.String,
				CurrentPeriodStart:   periodStart.Time,
				CurrentPeriodEnd:     periodEnd.Time,
				CreatedAt:            subCreated.Time,
				UpdatedAt:            subUpdated.Time,
			})
		}
	}
	return ordered, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
