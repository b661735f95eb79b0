package document

import (
	"context"
	"errors"
	"strings"

	"fieldbill.app/billing/model"
	"fieldbill.app/billing/processor"
	"fieldbill.app/billing/repository"
	"fieldbill.app/billing/repository/documents"
)

// MarkInvoicePaid is the manual fallback for recording a payment.
// When sessionID is set the checkout session must be paid and tied to this invoice;
// any doubt, including an unreachable processor, leaves the invoice untouched.
func (b *business) MarkInvoicePaid(ctx context.Context, id, sessionID string) (*model.BillingDocument, error) {
	if strings.TrimSpace(id) == "" {
		return nil, model.ErrMissingIdentifier("invoice id")
	}

	docID, ok := repository.ParseUUID(id)
	if !ok {
		return nil, model.ErrNotFound("invoice")
	}

	sessionID = strings.TrimSpace(sessionID)
	if sessionID != "" {
		if err := b.verifySession(ctx, repository.UUIDString(docID), sessionID); err != nil {
			return nil, err
		}
	}

	var paid documents.Invoice
	err := b.stateMachine.GetDocumentWithLock(ctx, docID, func(tx documents.Querier, current documents.Invoice) error {
		if current.DocumentType != string(model.DocumentTypeInvoice) {
			return model.ErrInvalidDocumentType(model.DocumentTypeInvoice)
		}

		var err error
		paid, err = b.stateMachine.TransitionToPaidTx(ctx, tx, current, b.now().UTC(), sessionID)
		return err
	})
	if err != nil {
		return nil, err
	}

	doc := toDocument(paid)
	return &doc, nil
}

func (b *business) verifySession(ctx context.Context, documentID, sessionID string) error {
	session, err := b.processor.GetCheckoutSession(ctx, sessionID)
	if errors.Is(err, processor.ErrNotFound) {
		return model.ErrPaymentNotVerified("payment session not found")
	}
	if err != nil {
		return model.ErrUpstreamUnavailable("unable to verify payment with processor")
	}
	if !session.Paid {
		return model.ErrPaymentNotVerified("payment not completed")
	}
	if !strings.EqualFold(session.DocumentID, documentID) {
		return model.ErrPaymentNotVerified("payment session does not match this invoice")
	}
	return nil
}
