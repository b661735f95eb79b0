package document

import (
	"context"
	"time"

	"fieldbill.app/billing/domain"
	"fieldbill.app/billing/model"
	"fieldbill.app/billing/processor"
	"fieldbill.app/billing/repository/clients"
	"fieldbill.app/billing/repository/contractors"
	"fieldbill.app/billing/repository/documents"
	"fieldbill.app/billing/repository/lineitems"
)

type Business interface {
	GetDocument(ctx context.Context, id string, docType model.DocumentType) (*model.DocumentBundle, error)
	DeclineEstimate(ctx context.Context, id string) error
	MarkInvoicePaid(ctx context.Context, id, sessionID string) (*model.BillingDocument, error)
}

// business handles retrieval and status transitions of invoices and estimates
type business struct {
	documentRepo   documents.Querier
	lineItemRepo   lineitems.Querier
	clientRepo     clients.Querier
	contractorRepo contractors.Querier
	stateMachine   domain.StateMachine
	processor      processor.Processor
	now            func() time.Time
}

func NewDocumentBusiness(
	documentRepo documents.Querier,
	lineItemRepo lineitems.Querier,
	clientRepo clients.Querier,
	contractorRepo contractors.Querier,
	stateMachine domain.StateMachine,
	proc processor.Processor,
) Business {
	return &business{
		documentRepo:   documentRepo,
		lineItemRepo:   lineItemRepo,
		clientRepo:     clientRepo,
		contractorRepo: contractorRepo,
		stateMachine:   stateMachine,
		processor:      proc,
		now:            time.Now,
	}
}
