package billing

import (
	"context"
	"strings"

	"encore.dev/rlog"

	"fieldbill.app/billing/apierr"
	"fieldbill.app/billing/model"
)

type OnboardingParams struct {
	ContractorID string `query:"contractorId" validate:"required"`
}

type CompleteOnboardingRequest struct {
	ContractorID string `json:"contractorId" validate:"required"`
}

//encore:api public method=GET path=/profile/onboarding
func (s *Service) GetOnboardingState(ctx context.Context, params *OnboardingParams) (*model.OnboardingState, error) {
	state, err := s.profiles.GetOnboardingState(ctx, params.ContractorID)
	if err != nil {
		rlog.Error("failed to get onboarding state", "error", err, "contractor_id", params.ContractorID)
		return nil, apierr.Public(err)
	}
	return state, nil
}

// CompleteOnboarding records that the contractor finished onboarding. Repeat
// calls keep the first completion time.
//
//encore:api public method=POST path=/profile/onboarding/complete
func (s *Service) CompleteOnboarding(ctx context.Context, req *CompleteOnboardingRequest) (*model.OnboardingState, error) {
	state, err := s.profiles.CompleteOnboarding(ctx, req.ContractorID)
	if err != nil {
		rlog.Error("failed to complete onboarding", "error", err, "contractor_id", req.ContractorID)
		return nil, apierr.Public(err)
	}
	return state, nil
}

func (p *OnboardingParams) Validate() error {
	p.ContractorID = strings.TrimSpace(p.ContractorID)
	if err := validate.Struct(p); err != nil {
		return apierr.Public(model.ErrMissingIdentifier("contractorId"))
	}
	return nil
}

func (r *CompleteOnboardingRequest) Validate() error {
	r.ContractorID = strings.TrimSpace(r.ContractorID)
	if err := validate.Struct(r); err != nil {
		return apierr.Public(model.ErrMissingIdentifier("contractorId"))
	}
	return nil
}
