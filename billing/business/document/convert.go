package document

import (
	"fieldbill.app/billing/model"
	"fieldbill.app/billing/repository"
	"fieldbill.app/billing/repository/clients"
	"fieldbill.app/billing/repository/contractors"
	"fieldbill.app/billing/repository/documents"
	"fieldbill.app/billing/repository/lineitems"
)

func toDocument(row documents.Invoice) model.BillingDocument {
	return model.BillingDocument{
		ID:               repository.UUIDString(row.ID),
		DocumentNumber:   row.DocumentNumber,
		Type:             model.DocumentType(row.DocumentType),
		Status:           model.DocumentStatus(row.Status),
		IssueDate:        repository.DatePtr(row.IssueDate),
		DueDate:          repository.DatePtr(row.DueDate),
		Notes:            repository.TextPtr(row.Notes),
		Subtotal:         model.NewMoney(repository.Decimal(row.Subtotal)),
		TaxRate:          repository.Decimal(row.TaxRate),
		TaxAmount:        model.NewMoney(repository.Decimal(row.TaxAmount)),
		Total:            model.NewMoney(repository.Decimal(row.Total)),
		ContractorID:     repository.UUIDString(row.ContractorID),
		ClientID:         repository.UUIDPtr(row.ClientID),
		PaidAt:           repository.TimePtr(row.PaidAt),
		PaymentReference: repository.TextPtr(row.PaymentReference),
		CreatedAt:        row.CreatedAt.Time,
		UpdatedAt:        row.UpdatedAt.Time,
	}
}

func toLineItem(row lineitems.LineItem, _ int) model.LineItem {
	return model.LineItem{
		ID:          repository.UUIDString(row.ID),
		DocumentID:  repository.UUIDString(row.InvoiceID),
		Description: row.Description,
		Quantity:    repository.Decimal(row.Quantity),
		UnitPrice:   model.NewMoney(repository.Decimal(row.UnitPrice)),
		Total:       model.NewMoney(repository.Decimal(row.Total)),
		SortOrder:   row.SortOrder,
		CreatedAt:   row.CreatedAt.Time,
	}
}

func toClient(row clients.Client) *model.Client {
	return &model.Client{
		ID:      repository.UUIDString(row.ID),
		Name:    row.Name,
		Email:   repository.TextPtr(row.Email),
		Phone:   repository.TextPtr(row.Phone),
		Address: repository.TextPtr(row.Address),
	}
}

func toContractorDisplay(row contractors.Contractor) model.ContractorDisplay {
	display := model.ContractorDisplay{
		BusinessName: model.UnnamedBusiness,
		ContactName:  repository.TextPtr(row.ContactName),
		Email:        repository.TextPtr(row.Email),
		Phone:        repository.TextPtr(row.Phone),
		Address:      repository.TextPtr(row.Address),
	}
	if row.BusinessName.Valid && row.BusinessName.String != "" {
		display.BusinessName = row.BusinessName.String
	}
	return display
}
