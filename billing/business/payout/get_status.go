package payout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"fieldbill.app/billing/model"
	"fieldbill.app/billing/repository"
	"fieldbill.app/billing/repository/contractors"
)

// GetStatus reports a contractor's payout account, refreshing the cached flags when the
// processor answers and falling back to them, marked cached, when it does not.
func (b *business) GetStatus(ctx context.Context, contractorID string) (*model.PayoutStatus, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return nil, model.ErrMissingIdentifier("contractorId")
	}

	id, ok := repository.ParseUUID(contractorID)
	if !ok {
		return nil, model.ErrNotFound("contractor profile")
	}

	row, err := b.contractorRepo.GetContractor(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound("contractor profile")
		}
		return nil, model.ErrPersistenceFailure("failed to load contractor profile")
	}

	if !row.StripeAccountID.Valid || row.StripeAccountID.String == "" {
		return &model.PayoutStatus{
			Connected: false,
			Message:   "No Stripe account connected",
		}, nil
	}
	accountID := row.StripeAccountID.String

	acct, err := b.processor.GetAccount(ctx, accountID)
	if err != nil {
		cachedReq := decodeRequirements(row.StripeRequirements)
		return &model.PayoutStatus{
			Connected:      true,
			AccountID:      &accountID,
			PayoutsEnabled: row.PayoutsEnabled,
			ChargesEnabled: row.ChargesEnabled,
			Requirements:   cachedReq,
			Message:        statusMessage(model.OutcomeStatus(row.PayoutsEnabled, row.ChargesEnabled, cachedReq)),
			Cached:         true,
			Warning:        fmt.Errorf("payout account %s: %w", accountID, err),
		}, nil
	}

	status := &model.PayoutStatus{
		Connected:      true,
		AccountID:      &accountID,
		PayoutsEnabled: acct.PayoutsEnabled,
		ChargesEnabled: acct.ChargesEnabled,
		Requirements:   acct.Requirements,
		Message:        statusMessage(model.OutcomeStatus(acct.PayoutsEnabled, acct.ChargesEnabled, acct.Requirements)),
	}

	if acct.PayoutsEnabled == row.PayoutsEnabled && acct.ChargesEnabled == row.ChargesEnabled {
		return status, nil
	}

	// The live answer is still returned when the write-back fails.
	raw, err := encodeRequirements(acct.Requirements)
	if err == nil {
		_, err = b.contractorRepo.UpdateContractorCapabilities(ctx, contractors.UpdateContractorCapabilitiesParams{
			PayoutsEnabled:     acct.PayoutsEnabled,
			ChargesEnabled:     acct.ChargesEnabled,
			StripeRequirements: raw,
			ID:                 row.ID,
		})
	}
	if err != nil {
		status.Warning = fmt.Errorf("write back payout capabilities for %s: %w", contractorID, err)
	}

	return status, nil
}
