package billing

import (
	"context"
	"strings"

	"encore.dev/rlog"

	"fieldbill.app/billing/apierr"
	"fieldbill.app/billing/model"
)

type CancelSubscriptionRequest struct {
	ContractorID      string `json:"contractorId" validate:"required"`
	CancelImmediately bool   `json:"cancelImmediately"`
}

type CancelSubscriptionResponse struct {
	Success             bool   `json:"success"`
	CanceledImmediately bool   `json:"canceledImmediately"`
	Message             string `json:"message"`
}

type BillingPortalRequest struct {
	ContractorID string `json:"contractorId" validate:"required"`
}

type BillingPortalResponse struct {
	Success   bool   `json:"success"`
	PortalURL string `json:"portalUrl"`
}

// CancelSubscription ends a contractor's subscription. Trials always end
// immediately; paid subscriptions run to the end of the period unless asked.
//
//encore:api public method=POST path=/stripe/subscription/cancel tag:idempotency
func (s *Service) CancelSubscription(ctx context.Context, req *CancelSubscriptionRequest) (*CancelSubscriptionResponse, error) {
	result, err := s.subscriptions.Cancel(ctx, req.ContractorID, req.CancelImmediately)
	if err != nil {
		rlog.Error("failed to cancel subscription", "error", err, "contractor_id", req.ContractorID, "immediate", req.CancelImmediately)
		return nil, apierr.Public(err)
	}

	rlog.Info("subscription canceled", "contractor_id", req.ContractorID, "immediately", result.CanceledImmediately)
	return &CancelSubscriptionResponse{
		Success:             true,
		CanceledImmediately: result.CanceledImmediately,
		Message:             result.Message,
	}, nil
}

//encore:api public method=POST path=/stripe/subscription/portal
func (s *Service) OpenBillingPortal(ctx context.Context, req *BillingPortalRequest) (*BillingPortalResponse, error) {
	portalURL, err := s.subscriptions.OpenPortal(ctx, req.ContractorID)
	if err != nil {
		rlog.Error("failed to open billing portal", "error", err, "contractor_id", req.ContractorID)
		return nil, apierr.Public(err)
	}

	return &BillingPortalResponse{
		Success:   true,
		PortalURL: portalURL,
	}, nil
}

func (r *CancelSubscriptionRequest) Validate() error {
	r.ContractorID = strings.TrimSpace(r.ContractorID)
	if err := validate.Struct(r); err != nil {
		return apierr.Public(model.ErrMissingIdentifier("contractorId"))
	}
	return nil
}

func (r *BillingPortalRequest) Validate() error {
	r.ContractorID = strings.TrimSpace(r.ContractorID)
	if err := validate.Struct(r); err != nil {
		return apierr.Public(model.ErrMissingIdentifier("contractorId"))
	}
	return nil
}
