package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingDocument is either an invoice or an estimate; both share one table
// and are told apart by Type.
type BillingDocument struct {
	ID               string          `json:"id"`
	DocumentNumber   string          `json:"document_number"`
	Type             DocumentType    `json:"document_type"`
	Status           DocumentStatus  `json:"status"`
	IssueDate        *time.Time      `json:"issue_date,omitempty"`
	DueDate          *time.Time      `json:"due_date,omitempty"`
	Notes            *string         `json:"notes,omitempty"`
	Subtotal         Money           `json:"subtotal"`
	TaxRate          decimal.Decimal `json:"tax_rate"`
	TaxAmount        Money           `json:"tax_amount"`
	Total            Money           `json:"total"`
	ContractorID     string          `json:"contractor_id"`
	ClientID         *string         `json:"client_id,omitempty"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
	PaymentReference *string         `json:"payment_reference,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type DocumentType string

const (
	DocumentTypeInvoice  DocumentType = "invoice"
	DocumentTypeEstimate DocumentType = "estimate"
)

type DocumentStatus string

const (
	DocumentStatusDraft    DocumentStatus = "draft"
	DocumentStatusSent     DocumentStatus = "sent"
	DocumentStatusPaid     DocumentStatus = "paid"
	DocumentStatusDeclined DocumentStatus = "declined"
	DocumentStatusAccepted DocumentStatus = "accepted"
)

// IsTerminal reports whether no further transition is allowed out of s.
func (s DocumentStatus) IsTerminal() bool {
	switch s {
	case DocumentStatusPaid, DocumentStatusDeclined, DocumentStatusAccepted:
		return true
	}
	return false
}

// DocumentBundle is a document assembled for public display.
type DocumentBundle struct {
	Document   BillingDocument   `json:"document"`
	LineItems  []LineItem        `json:"line_items"`
	Client     *Client           `json:"client"`
	Contractor ContractorDisplay `json:"contractor"`
}
