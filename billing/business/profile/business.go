package profile

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"fieldbill.app/billing/model"
	"fieldbill.app/billing/repository"
	"fieldbill.app/billing/repository/contractors"
)

// Business keeps the "finished onboarding" flag on the contractor profile.
type Business interface {
	GetOnboardingState(ctx context.Context, contractorID string) (*model.OnboardingState, error)
	CompleteOnboarding(ctx context.Context, contractorID string) (*model.OnboardingState, error)
}

type business struct {
	contractorRepo contractors.Querier
}

func NewProfileBusiness(contractorRepo contractors.Querier) Business {
	return &business{contractorRepo: contractorRepo}
}

func (b *business) GetOnboardingState(ctx context.Context, contractorID string) (*model.OnboardingState, error) {
	id, err := parseContractorID(contractorID)
	if err != nil {
		return nil, err
	}

	row, err := b.contractorRepo.GetContractor(ctx, id)
	if err != nil {
		return nil, lookupError(err)
	}

	return onboardingState(row), nil
}

// CompleteOnboarding stamps the completion time once; later calls keep the first stamp.
func (b *business) CompleteOnboarding(ctx context.Context, contractorID string) (*model.OnboardingState, error) {
	id, err := parseContractorID(contractorID)
	if err != nil {
		return nil, err
	}

	row, err := b.contractorRepo.MarkOnboardingComplete(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, lookupError(err)
		}
		return nil, model.ErrPersistenceFailure("failed to record onboarding completion")
	}

	return onboardingState(row), nil
}

func parseContractorID(contractorID string) (pgtype.UUID, error) {
	contractorID = strings.TrimSpace(contractorID)
	if contractorID == "" {
		return pgtype.UUID{}, model.ErrMissingIdentifier("contractorId")
	}
	id, ok := repository.ParseUUID(contractorID)
	if !ok {
		return pgtype.UUID{}, model.ErrNotFound("contractor profile")
	}
	return id, nil
}

func lookupError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrNotFound("contractor profile")
	}
	return model.ErrPersistenceFailure("failed to load contractor profile")
}

func onboardingState(row contractors.Contractor) *model.OnboardingState {
	return &model.OnboardingState{
		Completed:   row.OnboardingCompletedAt.Valid,
		CompletedAt: repository.TimePtr(row.OnboardingCompletedAt),
	}
}
