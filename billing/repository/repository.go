package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"fieldbill.app/billing/repository/clients"
	"fieldbill.app/billing/repository/contractors"
	"fieldbill.app/billing/repository/documents"
	"fieldbill.app/billing/repository/lineitems"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Documents   *documents.Queries
	LineItems   lineitems.Querier
	Clients     clients.Querier
	Contractors contractors.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Documents:   documents.New(db),
		LineItems:   lineitems.New(db),
		Clients:     clients.New(db),
		Contractors: contractors.New(db),
	}
}
