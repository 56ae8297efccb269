package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/moverank/leadgen/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			id, full_name, email, phone, move_date,
			origin_zip, destination_zip, home_size, budget, urgency,
			score, reasoning, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.FullName,
		lead.Email,
		lead.Phone,
		lead.MoveDate,
		lead.OriginZip,
		lead.DestinationZip,
		lead.HomeSize,
		lead.Budget,
		lead.Urgency,
		lead.Score,
		lead.Reasoning,
		lead.Status,
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// List returns leads newest first. status filters exactly when non-empty;
// minScore filters score >= minScore when positive.
func (r *LeadRepository) List(ctx context.Context, status string, minScore int) ([]*entity.Lead, error) {
	query := `
		SELECT id, full_name, email, phone, move_date,
		       origin_zip, destination_zip, home_size, budget, urgency,
		       score, reasoning, status, assigned_to, created_at, updated_at
		FROM leads
		WHERE 1=1
	`

	args := []any{}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if minScore > 0 {
		args = append(args, minScore)
		query += fmt.Sprintf(" AND score >= $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func scanLead(rows *sql.Rows) (*entity.Lead, error) {
	var (
		lead       entity.Lead
		moveDate   time.Time
		assignedTo sql.NullString
	)

	err := rows.Scan(
		&lead.ID,
		&lead.FullName,
		&lead.Email,
		&lead.Phone,
		&moveDate,
		&lead.OriginZip,
		&lead.DestinationZip,
		&lead.HomeSize,
		&lead.Budget,
		&lead.Urgency,
		&lead.Score,
		&lead.Reasoning,
		&lead.Status,
		&assignedTo,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan lead: %w", err)
	}

	lead.MoveDate = moveDate.Format("2006-01-02")
	lead.AssignedTo = assignedTo.String
	return &lead, nil
}
