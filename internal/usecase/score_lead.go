package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/moverank/leadgen/internal/entity"
)

// ScoreLeadInput is the raw lead payload from the public form.
type ScoreLeadInput struct {
	FullName       string `json:"full_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	MoveDate       string `json:"move_date" validate:"required,datetime=2006-01-02"`
	OriginZip      string `json:"origin_zip" validate:"required"`
	DestinationZip string `json:"destination_zip" validate:"required"`
	HomeSize       string `json:"home_size" validate:"required"`
	Budget         string `json:"budget" validate:"required"`
	Urgency        string `json:"urgency" validate:"required"`
}

type ScoreLeadUseCase struct {
	LeadRepo LeadRepositoryInterface
	Scorer   LeadScorer
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewScoreLeadUseCase(leadRepo LeadRepositoryInterface, scorer LeadScorer, logger zerolog.Logger) *ScoreLeadUseCase {
	return &ScoreLeadUseCase{
		LeadRepo: leadRepo,
		Scorer:   scorer,
		validate: validator.New(),
		logger:   logger,
	}
}

// Execute validates, scores and stores a lead. Persistence is best-effort:
// the scored lead goes back to the caller even when the insert fails, so the
// public form stays available while storage is degraded.
func (uc *ScoreLeadUseCase) Execute(ctx context.Context, input ScoreLeadInput) (*entity.Lead, error) {
	if err := uc.validate.Struct(input); err != nil {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: validationMessage(err),
		}
	}

	lead := entity.NewLead(
		input.FullName,
		input.Email,
		input.Phone,
		input.MoveDate,
		input.OriginZip,
		input.DestinationZip,
		input.HomeSize,
		input.Budget,
		input.Urgency,
	)

	lead.Score, lead.Reasoning = uc.Scorer.ScoreLead(ctx, lead)

	if err := uc.LeadRepo.Create(ctx, lead); err != nil {
		uc.logger.Error().Err(err).Str("lead_id", lead.ID).Msg("failed to persist scored lead")
	}

	return lead, nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "validation failed: " + err.Error()
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, snakeCase(fe.Field())+" ("+fe.Tag()+")")
	}
	return "validation failed: " + strings.Join(fields, ", ")
}

func snakeCase(field string) string {
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
