package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeStatus(t *testing.T) {
	outstanding := &Requirements{CurrentlyDue: []string{"external_account"}}
	eventually := &Requirements{EventuallyDue: []string{"individual.id_number"}}
	pastDueOnly := &Requirements{PastDue: []string{"tos_acceptance.date"}}

	testCases := []struct {
		name           string
		payoutsEnabled bool
		chargesEnabled bool
		requirements   *Requirements
		expected       OnboardingStatus
	}{
		{"both_enabled_wins_over_requirements", true, true, outstanding, OnboardingComplete},
		{"currently_due_is_pending", true, false, outstanding, OnboardingPending},
		{"eventually_due_is_pending", false, false, eventually, OnboardingPending},
		{"past_due_alone_is_processing", false, true, pastDueOnly, OnboardingProcessing},
		{"nil_requirements_is_processing", false, false, nil, OnboardingProcessing},
		{"empty_requirements_is_processing", false, true, &Requirements{}, OnboardingProcessing},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, OutcomeStatus(tc.payoutsEnabled, tc.chargesEnabled, tc.requirements))
		})
	}
}

func TestDocumentStatus_IsTerminal(t *testing.T) {
	assert.False(t, DocumentStatusDraft.IsTerminal())
	assert.False(t, DocumentStatusSent.IsTerminal())
	assert.True(t, DocumentStatusPaid.IsTerminal())
	assert.True(t, DocumentStatusDeclined.IsTerminal())
	assert.True(t, DocumentStatusAccepted.IsTerminal())
}
