package payout

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"fieldbill.app/billing/model"
	"fieldbill.app/billing/processor"
	"fieldbill.app/billing/repository"
	"fieldbill.app/billing/repository/contractors"
)

// ReconcileAccount backs the onboarding callback. The redirect is unauthenticated,
// so the profile is matched by processor account id only.
func (b *business) ReconcileAccount(ctx context.Context, accountID string) (*model.OnboardingOutcome, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return nil, model.ErrMissingIdentifier("account")
	}

	acct, err := b.processor.GetAccount(ctx, accountID)
	if err != nil {
		if errors.Is(err, processor.ErrNotFound) {
			return nil, model.ErrNotFound("payout account")
		}
		return nil, model.ErrUpstreamUnavailable("failed to retrieve payout account")
	}

	raw, err := encodeRequirements(acct.Requirements)
	if err != nil {
		return nil, model.ErrPersistenceFailure("failed to encode account requirements")
	}

	row, err := b.contractorRepo.UpdateCapabilitiesByStripeAccount(ctx, contractors.UpdateCapabilitiesByStripeAccountParams{
		PayoutsEnabled:     acct.PayoutsEnabled,
		ChargesEnabled:     acct.ChargesEnabled,
		StripeRequirements: raw,
		StripeAccountID:    repository.Text(accountID),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound("contractor profile")
		}
		return nil, model.ErrPersistenceFailure("failed to update payout capabilities")
	}

	return &model.OnboardingOutcome{
		AccountID:      accountID,
		ContractorID:   repository.UUIDString(row.ID),
		PayoutsEnabled: acct.PayoutsEnabled,
		ChargesEnabled: acct.ChargesEnabled,
		Status:         model.OutcomeStatus(acct.PayoutsEnabled, acct.ChargesEnabled, acct.Requirements),
	}, nil
}
