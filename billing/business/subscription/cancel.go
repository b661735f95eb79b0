package subscription

import (
	"context"

	"fieldbill.app/billing/model"
	"fieldbill.app/billing/repository"
	"fieldbill.app/billing/repository/contractors"
)

// Cancel ends a contractor's subscription. Trials and immediate requests are canceled
// outright; everything else is scheduled for the end of the current period.
func (b *business) Cancel(ctx context.Context, contractorID string, immediate bool) (*model.CancelResult, error) {
	row, err := b.loadContractor(ctx, contractorID)
	if err != nil {
		return nil, err
	}

	status := model.SubscriptionStatus(row.SubscriptionStatus.String)
	if !row.SubscriptionID.Valid || row.SubscriptionID.String == "" || status == model.SubscriptionStatusCanceled {
		return nil, model.ErrNoActiveSubscription()
	}
	subscriptionID := row.SubscriptionID.String

	if immediate || status == model.SubscriptionStatusTrialing {
		if err := b.processor.CancelSubscription(ctx, subscriptionID); err != nil {
			return nil, model.ErrUpstreamUnavailable("failed to cancel subscription")
		}

		if _, err := b.contractorRepo.UpdateContractorSubscription(ctx, contractors.UpdateContractorSubscriptionParams{
			SubscriptionID:     repository.Text(""),
			SubscriptionStatus: repository.Text(string(model.SubscriptionStatusCanceled)),
			ID:                 row.ID,
		}); err != nil {
			return nil, model.ErrPersistenceFailure("subscription canceled but profile update failed")
		}

		return &model.CancelResult{
			CanceledImmediately: true,
			Message:             "Subscription canceled",
		}, nil
	}

	if status == model.SubscriptionStatusCanceling {
		return nil, model.ErrAlreadyCanceling()
	}

	if err := b.processor.CancelSubscriptionAtPeriodEnd(ctx, subscriptionID); err != nil {
		return nil, model.ErrUpstreamUnavailable("failed to schedule subscription cancellation")
	}

	if _, err := b.contractorRepo.UpdateContractorSubscription(ctx, contractors.UpdateContractorSubscriptionParams{
		SubscriptionID:     row.SubscriptionID,
		SubscriptionStatus: repository.Text(string(model.SubscriptionStatusCanceling)),
		ID:                 row.ID,
	}); err != nil {
		return nil, model.ErrPersistenceFailure("cancellation scheduled but profile update failed")
	}

	return &model.CancelResult{
		CanceledImmediately: false,
		Message:             "Subscription will be canceled at the end of the current billing period",
	}, nil
}
