package document

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"

	"fieldbill.app/billing/model"
	"fieldbill.app/billing/repository"
	"fieldbill.app/billing/repository/lineitems"
)

// GetDocument assembles a document with its line items, client and owner for public display.
// The id is the only access control, so a row of the other document type is reported as missing.
func (b *business) GetDocument(ctx context.Context, id string, docType model.DocumentType) (*model.DocumentBundle, error) {
	if strings.TrimSpace(id) == "" {
		return nil, model.ErrMissingIdentifier(string(docType) + " id")
	}

	docID, ok := repository.ParseUUID(id)
	if !ok {
		return nil, model.ErrNotFound(string(docType))
	}

	row, err := b.documentRepo.GetDocument(ctx, docID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNotFound(string(docType))
		}
		return nil, model.ErrPersistenceFailure("failed to load " + string(docType))
	}
	if row.DocumentType != string(docType) {
		return nil, model.ErrNotFound(string(docType))
	}

	items, err := b.lineItemRepo.ListLineItemsByDocument(ctx, row.ID)
	if err != nil {
		return nil, model.ErrPersistenceFailure("failed to load line items")
	}
	slices.SortStableFunc(items, func(a, b lineitems.LineItem) int {
		return cmp.Compare(a.SortOrder, b.SortOrder)
	})

	bundle := &model.DocumentBundle{
		Document:  toDocument(row),
		LineItems: lo.Map(items, toLineItem),
	}

	// A dangling client reference renders as "no client on file".
	if row.ClientID.Valid {
		client, err := b.clientRepo.GetClient(ctx, row.ClientID)
		switch {
		case err == nil:
			bundle.Client = toClient(client)
		case !errors.Is(err, pgx.ErrNoRows):
			return nil, model.ErrPersistenceFailure("failed to load client")
		}
	}

	contractor, err := b.contractorRepo.GetContractor(ctx, row.ContractorID)
	switch {
	case err == nil:
		bundle.Contractor = toContractorDisplay(contractor)
	case errors.Is(err, pgx.ErrNoRows):
		bundle.Contractor = model.ContractorDisplay{BusinessName: model.UnnamedBusiness}
	default:
		return nil, model.ErrPersistenceFailure("failed to load contractor")
	}

	return bundle, nil
}
