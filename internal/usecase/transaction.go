package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Transaction is a small saga: named operations run in order, and when one
// fails the compensations registered for the operations before it run in
// reverse. It covers multi-write flows that span local storage and a remote
// provider, where a real database transaction cannot.
type Transaction struct {
	operations    []operation
	compensations []operation
	logger        zerolog.Logger
}

type operation struct {
	name string
	fn   func(context.Context) error
}

func NewTransaction(logger zerolog.Logger) *Transaction {
	return &Transaction{logger: logger}
}

// AddOperation appends a step. AddCompensation registers the undo for the
// step added at the same position; steps without an undo simply skip.
func (t *Transaction) AddOperation(name string, fn func(context.Context) error) {
	t.operations = append(t.operations, operation{name, fn})
}

func (t *Transaction) AddCompensation(name string, fn func(context.Context) error) {
	t.compensations = append(t.compensations, operation{name, fn})
}

func (t *Transaction) Execute(ctx context.Context) error {
	for i, op := range t.operations {
		if err := op.fn(ctx); err != nil {
			t.rollback(ctx, i)
			return fmt.Errorf("operation %q failed: %w", op.name, err)
		}
	}
	return nil
}

func (t *Transaction) rollback(ctx context.Context, failedAt int) {
	for i := failedAt - 1; i >= 0; i-- {
		if i >= len(t.compensations) {
			continue
		}
		comp := t.compensations[i]
		if err := comp.fn(ctx); err != nil {
			// Nothing left to do but flag the inconsistency for an operator.
			t.logger.Error().Err(err).Str("compensation", comp.name).Msg("compensation failed, manual cleanup required")
		}
	}
}
