package subscription

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fieldbill.app/billing/mocks/payment_processor"
	"fieldbill.app/billing/mocks/repository/contractor_repo"
	"fieldbill.app/billing/model"
	"fieldbill.app/billing/processor"
	"fieldbill.app/billing/repository"
	"fieldbill.app/billing/repository/contractors"
)

const contractorID = "1f2e3d4c-5b6a-4798-8877-665544332211"

func contractorUUID(t *testing.T) pgtype.UUID {
	t.Helper()
	id, ok := repository.ParseUUID(contractorID)
	require.True(t, ok)
	return id
}

func subscribed(t *testing.T, status model.SubscriptionStatus) contractors.Contractor {
	return contractors.Contractor{
		ID:                 contractorUUID(t),
		StripeCustomerID:   pgtype.Text{String: "cus_1", Valid: true},
		SubscriptionID:     pgtype.Text{String: "sub_1", Valid: true},
		SubscriptionStatus: pgtype.Text{String: string(status), Valid: true},
	}
}

func TestCancel(t *testing.T) {
	testCases := []struct {
		name                string
		contractorID        string
		immediate           bool
		mockRow             contractors.Contractor
		mockRowErr          error
		expectRowLookup     bool
		expectCancelNow     bool
		expectCancelAtEnd   bool
		mockProcessorErr    error
		expectUpdate        bool
		mockUpdateErr       error
		expectUpdateStatus  string
		expectUpdateSubID   pgtype.Text
		expectKind          model.ErrorKind
		expectImmediateFlag bool
	}{
		{
			name:                "trial_is_always_canceled_now",
			contractorID:        contractorID,
			immediate:           false,
			mockRow:             subscribed(t, model.SubscriptionStatusTrialing),
			expectRowLookup:     true,
			expectCancelNow:     true,
			expectUpdate:        true,
			expectUpdateStatus:  "canceled",
			expectUpdateSubID:   pgtype.Text{},
			expectImmediateFlag: true,
		},
		{
			name:                "active_immediate",
			contractorID:        contractorID,
			immediate:           true,
			mockRow:             subscribed(t, model.SubscriptionStatusActive),
			expectRowLookup:     true,
			expectCancelNow:     true,
			expectUpdate:        true,
			expectUpdateStatus:  "canceled",
			expectUpdateSubID:   pgtype.Text{},
			expectImmediateFlag: true,
		},
		{
			name:               "active_at_period_end",
			contractorID:       contractorID,
			immediate:          false,
			mockRow:            subscribed(t, model.SubscriptionStatusActive),
			expectRowLookup:    true,
			expectCancelAtEnd:  true,
			expectUpdate:       true,
			expectUpdateStatus: "canceling",
			expectUpdateSubID:  pgtype.Text{String: "sub_1", Valid: true},
		},
		{
			name:                "canceling_can_still_end_now",
			contractorID:        contractorID,
			immediate:           true,
			mockRow:             subscribed(t, model.SubscriptionStatusCanceling),
			expectRowLookup:     true,
			expectCancelNow:     true,
			expectUpdate:        true,
			expectUpdateStatus:  "canceled",
			expectUpdateSubID:   pgtype.Text{},
			expectImmediateFlag: true,
		},
		{
			name:            "already_canceling",
			contractorID:    contractorID,
			immediate:       false,
			mockRow:         subscribed(t, model.SubscriptionStatusCanceling),
			expectRowLookup: true,
			expectKind:      model.KindAlreadyCanceling,
		},
		{
			name:            "already_canceled",
			contractorID:    contractorID,
			immediate:       true,
			mockRow:         subscribed(t, model.SubscriptionStatusCanceled),
			expectRowLookup: true,
			expectKind:      model.KindNoActiveSubscription,
		},
		{
			name:            "no_subscription",
			contractorID:    contractorID,
			mockRow:         contractors.Contractor{ID: contractorUUID(t)},
			expectRowLookup: true,
			expectKind:      model.KindNoActiveSubscription,
		},
		{
			name:             "processor_cancel_fails",
			contractorID:     contractorID,
			immediate:        true,
			mockRow:          subscribed(t, model.SubscriptionStatusActive),
			expectRowLookup:  true,
			expectCancelNow:  true,
			mockProcessorErr: processor.ErrUnavailable,
			expectKind:       model.KindUpstreamUnavailable,
		},
		{
			name:               "profile_update_fails",
			contractorID:       contractorID,
			immediate:          false,
			mockRow:            subscribed(t, model.SubscriptionStatusActive),
			expectRowLookup:    true,
			expectCancelAtEnd:  true,
			expectUpdate:       true,
			mockUpdateErr:      errors.New("connection reset"),
			expectUpdateStatus: "canceling",
			expectUpdateSubID:  pgtype.Text{String: "sub_1", Valid: true},
			expectKind:         model.KindPersistenceFailure,
		},
		{
			name:            "profile_not_found",
			contractorID:    contractorID,
			mockRowErr:      pgx.ErrNoRows,
			expectRowLookup: true,
			expectKind:      model.KindNotFound,
		},
		{
			name:         "missing_contractor_id",
			contractorID: "",
			expectKind:   model.KindMissingIdentifier,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockContractorRepo := contractor_repo.NewMockQuerier(ctrl)
			mockProcessor := payment_processor.NewMockProcessor(ctrl)
			business := &business{contractorRepo: mockContractorRepo, processor: mockProcessor}

			if tc.expectRowLookup {
				mockContractorRepo.EXPECT().
					GetContractor(gomock.Any(), contractorUUID(t)).
					Return(tc.mockRow, tc.mockRowErr)
			}
			if tc.expectCancelNow {
				mockProcessor.EXPECT().CancelSubscription(gomock.Any(), "sub_1").Return(tc.mockProcessorErr)
			} else {
				mockProcessor.EXPECT().CancelSubscription(gomock.Any(), gomock.Any()).Times(0)
			}
			if tc.expectCancelAtEnd {
				mockProcessor.EXPECT().CancelSubscriptionAtPeriodEnd(gomock.Any(), "sub_1").Return(tc.mockProcessorErr)
			} else {
				mockProcessor.EXPECT().CancelSubscriptionAtPeriodEnd(gomock.Any(), gomock.Any()).Times(0)
			}
			if tc.expectUpdate {
				mockContractorRepo.EXPECT().
					UpdateContractorSubscription(gomock.Any(), contractors.UpdateContractorSubscriptionParams{
						SubscriptionID:     tc.expectUpdateSubID,
						SubscriptionStatus: pgtype.Text{String: tc.expectUpdateStatus, Valid: true},
						ID:                 contractorUUID(t),
					}).
					Return(contractors.Contractor{}, tc.mockUpdateErr)
			}

			result, err := business.Cancel(context.Background(), tc.contractorID, tc.immediate)

			if tc.expectKind != "" {
				assert.Equal(t, tc.expectKind, model.KindOf(err))
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectImmediateFlag, result.CanceledImmediately)
			assert.NotEmpty(t, result.Message)
		})
	}
}
