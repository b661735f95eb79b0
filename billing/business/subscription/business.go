package subscription

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"fieldbill.app/billing/model"
	"fieldbill.app/billing/processor"
	"fieldbill.app/billing/repository"
	"fieldbill.app/billing/repository/contractors"
)

type Business interface {
	Cancel(ctx context.Context, contractorID string, immediate bool) (*model.CancelResult, error)
	OpenPortal(ctx context.Context, contractorID string) (string, error)
}

type business struct {
	contractorRepo  contractors.Querier
	processor       processor.Processor
	portalReturnURL string
}

// NewSubscriptionBusiness creates the subscription lifecycle business layer.
// portalReturnURL is where the hosted billing portal sends the contractor back to.
func NewSubscriptionBusiness(contractorRepo contractors.Querier, proc processor.Processor, portalReturnURL string) Business {
	return &business{
		contractorRepo:  contractorRepo,
		processor:       proc,
		portalReturnURL: portalReturnURL,
	}
}

func (b *business) loadContractor(ctx context.Context, contractorID string) (contractors.Contractor, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return contractors.Contractor{}, model.ErrMissingIdentifier("contractorId")
	}

	id, ok := repository.ParseUUID(contractorID)
	if !ok {
		return contractors.Contractor{}, model.ErrNotFound("contractor profile")
	}

	row, err := b.contractorRepo.GetContractor(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contractors.Contractor{}, model.ErrNotFound("contractor profile")
		}
		return contractors.Contractor{}, model.ErrPersistenceFailure("failed to load contractor profile")
	}

	return row, nil
}
