package subscription

import (
	"context"

	"fieldbill.app/billing/model"
)

func (b *business) OpenPortal(ctx context.Context, contractorID string) (string, error) {
	row, err := b.loadContractor(ctx, contractorID)
	if err != nil {
		return "", err
	}

	if !row.StripeCustomerID.Valid || row.StripeCustomerID.String == "" {
		return "", model.ErrNoActiveSubscription()
	}

	url, err := b.processor.NewBillingPortalSession(ctx, row.StripeCustomerID.String, b.portalReturnURL)
	if err != nil {
		return "", model.ErrUpstreamUnavailable("failed to open billing portal")
	}

	return url, nil
}
