package billing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"
	"go.temporal.io/sdk/worker"
	"go.uber.org/mock/gomock"

	"fieldbill.app/billing/mocks/business/payout_business"
	"fieldbill.app/billing/model"
)

type fakeWorker struct {
	worker.Worker
	startErr error
	started  int
	stopped  int
}

func (w *fakeWorker) Start() error {
	w.started++
	return w.startErr
}

func (w *fakeWorker) Stop() {
	w.stopped++
}

func TestStartPayoutSync(t *testing.T) {
	testCases := []struct {
		name          string
		clientErr     error
		workerErr     error
		expectEnabled bool
		expectClose   bool
	}{
		{
			name:          "worker_running",
			expectEnabled: true,
		},
		{
			name:      "client_cannot_be_created",
			clientErr: errors.New("invalid namespace"),
		},
		{
			name:        "worker_fails_to_start",
			workerErr:   errors.New("connection refused"),
			expectClose: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockTemporal := mocks.NewClient(t)
			w := &fakeWorker{startErr: tc.workerErr}

			originalClient, originalWorker := newTemporalClient, newPayoutWorker
			t.Cleanup(func() { newTemporalClient, newPayoutWorker = originalClient, originalWorker })

			newTemporalClient = func(opts client.Options) (client.Client, error) {
				if tc.clientErr != nil {
					return nil, tc.clientErr
				}
				return mockTemporal, nil
			}
			newPayoutWorker = func(c client.Client) worker.Worker { return w }

			if tc.expectClose {
				mockTemporal.On("Close").Return().Once()
			}

			c, started := startPayoutSync(client.Options{HostPort: "temporal.invalid:7233"})

			if tc.expectEnabled {
				assert.Equal(t, mockTemporal, c)
				assert.Equal(t, w, started)
			} else {
				assert.Nil(t, c)
				assert.Nil(t, started)
			}
			if tc.clientErr == nil {
				assert.Equal(t, 1, w.started)
			}
			mockTemporal.AssertExpectations(t)
		})
	}
}

func TestShutdown(t *testing.T) {
	mockTemporal := mocks.NewClient(t)
	w := &fakeWorker{}
	mockTemporal.On("Close").Return().Once()

	(&Service{temporal: mockTemporal, worker: w}).Shutdown(context.Background())

	assert.Equal(t, 1, w.stopped)
	assert.NotPanics(t, func() { (&Service{}).Shutdown(context.Background()) })
}

func TestConnectCallback_WithoutPayoutSync(t *testing.T) {
	syncRunAsync(t)

	ctrl := gomock.NewController(t)
	mockPayouts := payout_business.NewMockBusiness(ctrl)
	service := &Service{payouts: mockPayouts, appBaseURL: testAppBaseURL}

	mockPayouts.EXPECT().
		ReconcileAccount(gomock.Any(), testAccountID).
		Return(&model.OnboardingOutcome{AccountID: testAccountID, Status: model.OnboardingPending}, nil)

	req := httptest.NewRequest(http.MethodGet, "/stripe/connect/callback?account="+testAccountID, nil)
	rec := httptest.NewRecorder()

	service.ConnectCallback(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, testAppBaseURL+"/profile?stripe_status=pending", rec.Header().Get("Location"))
	assert.NoError(t, service.startPayoutSyncWorkflow(context.Background(), testAccountID))
}
