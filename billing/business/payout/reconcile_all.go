package payout

import (
	"context"

	"fieldbill.app/billing/model"
	"fieldbill.app/billing/repository"
)

// ReconcileAll reconciles every contractor with a processor account on file.
// A failing account is recorded in its result and does not stop the sweep.
func (b *business) ReconcileAll(ctx context.Context) ([]model.ReconcileResult, error) {
	rows, err := b.contractorRepo.ListConnectedContractors(ctx)
	if err != nil {
		return nil, model.ErrPersistenceFailure("failed to list connected contractors")
	}

	results := make([]model.ReconcileResult, 0, len(rows))
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := model.ReconcileResult{
			ContractorID: repository.UUIDString(row.ID),
			AccountID:    row.StripeAccountID.String,
		}
		outcome, err := b.ReconcileAccount(ctx, row.StripeAccountID.String)
		if err != nil {
			result.Error = err.Error()
		} else {
			result.Outcome = outcome
		}
		results = append(results, result)
	}

	return results, nil
}
