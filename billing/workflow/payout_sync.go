package workflow

import (
	"errors"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"fieldbill.app/billing/model"
)

const (
	DefaultPollInterval = 5 * time.Minute
	DefaultMaxAttempts  = 12
)

// PayoutSyncParams contains parameters for starting the payout sync workflow
type PayoutSyncParams struct {
	AccountID    string        `json:"account_id"`
	PollInterval time.Duration `json:"poll_interval"`
	MaxAttempts  int           `json:"max_attempts"`
}

type PayoutSyncResult struct {
	Status   model.OnboardingStatus `json:"status"`
	Attempts int                    `json:"attempts"`
}

// PayoutSyncWorkflowID is one workflow per payout account.
func PayoutSyncWorkflowID(accountID string) string {
	return "payout-sync-" + accountID
}

// PayoutSync polls a payout account after onboarding until both capabilities are enabled
// or the attempt budget is spent. A recheck signal cuts the current wait short.
func PayoutSync(ctx workflow.Context, params PayoutSyncParams) (*PayoutSyncResult, error) {
	logger := workflow.GetLogger(ctx)

	interval := params.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	maxAttempts := params.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	logger.Info("Starting payout sync workflow", "accountID", params.AccountID, "interval", interval, "maxAttempts", maxAttempts)

	recheckCh := workflow.GetSignalChannel(ctx, RecheckPayoutSignalName)
	result := &PayoutSyncResult{Status: model.OnboardingProcessing}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		timerCtx, cancelTimer := workflow.WithCancel(ctx)
		timer := workflow.NewTimer(timerCtx, interval)

		selector := workflow.NewSelector(ctx)
		selector.AddFuture(timer, func(f workflow.Future) {})
		selector.AddReceive(recheckCh, func(c workflow.ReceiveChannel, more bool) {
			var signal RecheckPayoutSignal
			c.Receive(ctx, &signal)
			logger.Info("Received recheck payout signal", "accountID", params.AccountID, "reason", signal.Reason)
		})
		selector.Select(ctx)
		cancelTimer()

		result.Attempts = attempt

		outcome, err := syncPayoutAccount(ctx, params.AccountID)
		if err != nil {
			var appErr *temporal.ApplicationError
			if errors.As(err, &appErr) && appErr.NonRetryable() {
				logger.Error("Payout account cannot be synced, giving up", "accountID", params.AccountID, "error", err)
				return nil, err
			}
			logger.Warn("Payout sync attempt failed", "accountID", params.AccountID, "attempt", attempt, "error", err)
			continue
		}

		result.Status = outcome.Status
		if outcome.Status == model.OnboardingComplete {
			logger.Info("Payout account fully enabled", "accountID", params.AccountID, "attempt", attempt)
			return result, nil
		}
	}

	logger.Info("Payout sync workflow exhausted its attempts", "accountID", params.AccountID, "status", result.Status)
	return result, nil
}

// syncPayoutAccount executes the SyncPayoutAccount activity
func syncPayoutAccount(ctx workflow.Context, accountID string) (*model.OnboardingOutcome, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    3,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var outcome model.OnboardingOutcome
	if err := workflow.ExecuteActivity(activityCtx, SyncPayoutAccountActivity, accountID).Get(ctx, &outcome); err != nil {
		return nil, err
	}
	return &outcome, nil
}
