package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"
	"go.uber.org/mock/gomock"

	payoutmock "fieldbill.app/billing/mocks/business/payout_business"
	"fieldbill.app/billing/model"
)

func outcome(status model.OnboardingStatus) *model.OnboardingOutcome {
	return &model.OnboardingOutcome{
		AccountID:      "acct_1",
		PayoutsEnabled: status == model.OnboardingComplete,
		ChargesEnabled: status == model.OnboardingComplete,
		Status:         status,
	}
}

func newPayoutSyncEnv(t *testing.T) (*testsuite.TestWorkflowEnvironment, *payoutmock.MockBusiness) {
	ctrl := gomock.NewController(t)
	mockBiz := payoutmock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockBiz)
	t.Cleanup(func() { SetActivityDependencies(nil) })

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterActivity(SyncPayoutAccountActivity)
	return env, mockBiz
}

func TestPayoutSyncWorkflow_CompletesWhenEnabled(t *testing.T) {
	env, mockBiz := newPayoutSyncEnv(t)

	gomock.InOrder(
		mockBiz.EXPECT().ReconcileAccount(gomock.Any(), "acct_1").Return(outcome(model.OnboardingProcessing), nil),
		mockBiz.EXPECT().ReconcileAccount(gomock.Any(), "acct_1").Return(outcome(model.OnboardingComplete), nil),
	)

	env.ExecuteWorkflow(PayoutSync, PayoutSyncParams{AccountID: "acct_1", PollInterval: time.Minute, MaxAttempts: 5})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result PayoutSyncResult
	require.NoError(t, env.GetWorkflowResult(&result))
	assert.Equal(t, model.OnboardingComplete, result.Status)
	assert.Equal(t, 2, result.Attempts)
}

func TestPayoutSyncWorkflow_StopsAfterAttemptBudget(t *testing.T) {
	env, mockBiz := newPayoutSyncEnv(t)

	mockBiz.EXPECT().ReconcileAccount(gomock.Any(), "acct_1").Return(outcome(model.OnboardingPending), nil).Times(3)

	env.ExecuteWorkflow(PayoutSync, PayoutSyncParams{AccountID: "acct_1", PollInterval: time.Minute, MaxAttempts: 3})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result PayoutSyncResult
	require.NoError(t, env.GetWorkflowResult(&result))
	assert.Equal(t, model.OnboardingPending, result.Status)
	assert.Equal(t, 3, result.Attempts)
}

func TestPayoutSyncWorkflow_UnknownAccountFailsFast(t *testing.T) {
	env, mockBiz := newPayoutSyncEnv(t)

	mockBiz.EXPECT().ReconcileAccount(gomock.Any(), "acct_1").Return(nil, model.ErrNotFound("contractor profile")).Times(1)

	env.ExecuteWorkflow(PayoutSync, PayoutSyncParams{AccountID: "acct_1", PollInterval: time.Minute, MaxAttempts: 5})
	require.True(t, env.IsWorkflowCompleted())

	err := env.GetWorkflowError()
	require.Error(t, err)
	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PAYOUT_ACCOUNT_UNKNOWN", appErr.Type())
}

func TestPayoutSyncWorkflow_TransientFailureMovesToNextAttempt(t *testing.T) {
	env, mockBiz := newPayoutSyncEnv(t)

	// The activity retry policy allows three tries per attempt.
	gomock.InOrder(
		mockBiz.EXPECT().ReconcileAccount(gomock.Any(), "acct_1").Return(nil, model.ErrUpstreamUnavailable("failed to retrieve payout account")).Times(3),
		mockBiz.EXPECT().ReconcileAccount(gomock.Any(), "acct_1").Return(outcome(model.OnboardingComplete), nil),
	)

	env.ExecuteWorkflow(PayoutSync, PayoutSyncParams{AccountID: "acct_1", PollInterval: time.Minute, MaxAttempts: 5})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result PayoutSyncResult
	require.NoError(t, env.GetWorkflowResult(&result))
	assert.Equal(t, model.OnboardingComplete, result.Status)
	assert.Equal(t, 2, result.Attempts)
}

func TestPayoutSyncWorkflow_RecheckSignalSkipsWait(t *testing.T) {
	env, mockBiz := newPayoutSyncEnv(t)

	mockBiz.EXPECT().ReconcileAccount(gomock.Any(), "acct_1").Return(outcome(model.OnboardingComplete), nil).Times(1)

	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(RecheckPayoutSignalName, RecheckPayoutSignal{Reason: "onboarding link refreshed"})
	}, time.Minute)

	start := env.Now()
	env.ExecuteWorkflow(PayoutSync, PayoutSyncParams{AccountID: "acct_1", PollInterval: 24 * time.Hour, MaxAttempts: 2})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())
	assert.Less(t, env.Now().Sub(start), 24*time.Hour)
}

func TestSyncPayoutAccountActivity(t *testing.T) {
	testCases := []struct {
		name             string
		mockErr          error
		expectNonRetry   bool
		expectErr        bool
		withDependencies bool
	}{
		{
			name:             "success",
			withDependencies: true,
		},
		{
			name:             "not_found_is_non_retryable",
			mockErr:          model.ErrNotFound("payout account"),
			expectErr:        true,
			expectNonRetry:   true,
			withDependencies: true,
		},
		{
			name:             "upstream_failure_is_retryable",
			mockErr:          model.ErrUpstreamUnavailable("failed to retrieve payout account"),
			expectErr:        true,
			withDependencies: true,
		},
		{
			name:      "missing_dependencies",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockBiz := payoutmock.NewMockBusiness(ctrl)
			if tc.withDependencies {
				SetActivityDependencies(mockBiz)
				if tc.mockErr != nil {
					mockBiz.EXPECT().ReconcileAccount(gomock.Any(), "acct_1").Return(nil, tc.mockErr)
				} else {
					mockBiz.EXPECT().ReconcileAccount(gomock.Any(), "acct_1").Return(outcome(model.OnboardingPending), nil)
				}
			} else {
				activityDeps = nil
			}
			t.Cleanup(func() { SetActivityDependencies(nil) })

			var ts testsuite.WorkflowTestSuite
			env := ts.NewTestActivityEnvironment()
			env.RegisterActivity(SyncPayoutAccountActivity)

			val, err := env.ExecuteActivity(SyncPayoutAccountActivity, "acct_1")
			if !tc.expectErr {
				require.NoError(t, err)
				var got model.OnboardingOutcome
				require.NoError(t, val.Get(&got))
				assert.Equal(t, model.OnboardingPending, got.Status)
				return
			}

			require.Error(t, err)
			var appErr *temporal.ApplicationError
			if errors.As(err, &appErr) {
				assert.Equal(t, tc.expectNonRetry, appErr.NonRetryable())
			} else {
				assert.False(t, tc.expectNonRetry)
			}
		})
	}
}
