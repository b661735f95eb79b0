package billing

import (
	"context"
	"strings"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"fieldbill.app/billing/apierr"
	"fieldbill.app/billing/model"
)

type DeclineEstimateResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type MarkInvoicePaidRequest struct {
	// SessionID is the checkout session the payer completed. When set the
	// payment is verified with the processor before the invoice changes.
	SessionID string `json:"sessionId,omitempty" validate:"omitempty,max=255"`
}

type MarkInvoicePaidResponse struct {
	Success bool                  `json:"success"`
	Invoice model.BillingDocument `json:"invoice"`
}

// GetInvoice returns an invoice with its line items, client and contractor.
// The id is the only credential.
//
//encore:api public method=GET path=/invoice/:id
func (s *Service) GetInvoice(ctx context.Context, id string) (*model.DocumentBundle, error) {
	return s.getDocument(ctx, id, model.DocumentTypeInvoice)
}

//encore:api public method=GET path=/estimate/:id
func (s *Service) GetEstimate(ctx context.Context, id string) (*model.DocumentBundle, error) {
	return s.getDocument(ctx, id, model.DocumentTypeEstimate)
}

func (s *Service) getDocument(ctx context.Context, id string, docType model.DocumentType) (*model.DocumentBundle, error) {
	bundle, err := s.documents.GetDocument(ctx, id, docType)
	if err != nil {
		rlog.Error("failed to get document", "error", err, "id", id, "type", docType)
		return nil, apierr.Public(err)
	}
	return bundle, nil
}

//encore:api public method=POST path=/estimate/:id/decline tag:idempotency
func (s *Service) DeclineEstimate(ctx context.Context, id string) (*DeclineEstimateResponse, error) {
	if err := s.documents.DeclineEstimate(ctx, id); err != nil {
		rlog.Error("failed to decline estimate", "error", err, "id", id)
		return nil, apierr.Public(err)
	}

	rlog.Info("estimate declined", "id", id)
	return &DeclineEstimateResponse{
		Success: true,
		Message: "Estimate declined",
	}, nil
}

//encore:api public method=POST path=/invoice/:id/mark-paid tag:idempotency
func (s *Service) MarkInvoicePaid(ctx context.Context, id string, req *MarkInvoicePaidRequest) (*MarkInvoicePaidResponse, error) {
	var sessionID string
	if req != nil {
		sessionID = strings.TrimSpace(req.SessionID)
	}

	invoice, err := s.documents.MarkInvoicePaid(ctx, id, sessionID)
	if err != nil {
		rlog.Error("failed to mark invoice paid", "error", err, "id", id, "verified", sessionID != "")
		return nil, apierr.Public(err)
	}

	rlog.Info("invoice marked paid", "id", id, "verified", sessionID != "")
	return &MarkInvoicePaidResponse{
		Success: true,
		Invoice: *invoice,
	}, nil
}

func (r *MarkInvoicePaidRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
