package document

import (
	"context"
	"strings"

	"fieldbill.app/billing/model"
	"fieldbill.app/billing/repository"
	"fieldbill.app/billing/repository/documents"
)

// DeclineEstimate moves a draft or sent estimate to declined.
// Checks run in order: exists, is an estimate, not accepted, not declined.
func (b *business) DeclineEstimate(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return model.ErrMissingIdentifier("estimate id")
	}

	docID, ok := repository.ParseUUID(id)
	if !ok {
		return model.ErrNotFound("estimate")
	}

	return b.stateMachine.GetDocumentWithLock(ctx, docID, func(tx documents.Querier, current documents.Invoice) error {
		if current.DocumentType != string(model.DocumentTypeEstimate) {
			return model.ErrInvalidDocumentType(model.DocumentTypeEstimate)
		}

		status := model.DocumentStatus(current.Status)
		if status != model.DocumentStatusDraft && status != model.DocumentStatusSent {
			return model.ErrAlreadyFinalized(status)
		}

		_, err := b.stateMachine.TransitionToDeclinedTx(ctx, tx, current)
		return err
	})
}
