package payout

import (
	"context"
	"strings"

	"fieldbill.app/billing/model"
	"fieldbill.app/billing/processor"
	"fieldbill.app/billing/repository/contractors"
)

type Business interface {
	// ReconcileAccount refreshes the cached capability flags of the profile owning accountID.
	ReconcileAccount(ctx context.Context, accountID string) (*model.OnboardingOutcome, error)
	CreateOnboardingLink(ctx context.Context, accountID string) (string, error)
	GetStatus(ctx context.Context, contractorID string) (*model.PayoutStatus, error)
	ReconcileAll(ctx context.Context) ([]model.ReconcileResult, error)
}

type business struct {
	contractorRepo contractors.Querier
	processor      processor.Processor
	apiBaseURL     string
}

// NewPayoutBusiness creates the payout reconciliation business layer.
// apiBaseURL is the public origin onboarding links return to.
func NewPayoutBusiness(contractorRepo contractors.Querier, proc processor.Processor, apiBaseURL string) Business {
	return &business{
		contractorRepo: contractorRepo,
		processor:      proc,
		apiBaseURL:     strings.TrimRight(apiBaseURL, "/"),
	}
}
