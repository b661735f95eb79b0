package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"fieldbill.app/billing/business/payout"
	"fieldbill.app/billing/model"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	PayoutBusiness payout.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(payoutBusiness payout.Business) {
	activityDeps = &ActivityDependencies{
		PayoutBusiness: payoutBusiness,
	}
}

// SyncPayoutAccountActivity reconciles one payout account against the processor
func SyncPayoutAccountActivity(ctx context.Context, accountID string) (*model.OnboardingOutcome, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing sync payout account activity", "accountID", accountID)

	if activityDeps == nil || activityDeps.PayoutBusiness == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	outcome, err := activityDeps.PayoutBusiness.ReconcileAccount(ctx, accountID)
	if err != nil {
		logger.Error("Failed to sync payout account", "accountID", accountID, "error", err)

		switch model.KindOf(err) {
		case model.KindNotFound, model.KindMissingIdentifier:
			return nil, temporal.NewNonRetryableApplicationError("payout account cannot be reconciled", "PAYOUT_ACCOUNT_UNKNOWN", err)
		}
		return nil, err
	}

	logger.Info("Successfully synced payout account", "accountID", accountID, "status", outcome.Status)
	return outcome, nil
}
