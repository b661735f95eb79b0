package domain

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"fieldbill.app/billing/model"
	"fieldbill.app/billing/repository"
	"fieldbill.app/billing/repository/documents"
)

// StateMachine defines the interface for document status transitions and transaction management
type StateMachine interface {
	// GetDocumentWithLock runs fn inside a transaction holding a row lock on the document.
	// fn receives queries bound to that transaction; returning an error rolls it back.
	GetDocumentWithLock(ctx context.Context, id pgtype.UUID, fn func(tx documents.Querier, doc documents.Invoice) error) error

	TransitionToDeclinedTx(ctx context.Context, tx documents.Querier, doc documents.Invoice) (documents.Invoice, error)
	TransitionToPaidTx(ctx context.Context, tx documents.Querier, doc documents.Invoice, paidAt time.Time, paymentRef string) (documents.Invoice, error)
}

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// DocumentStateMachine owns the transaction boundary for document status changes.
// It holds no per-call state and is safe for concurrent use.
type DocumentStateMachine struct {
	db   TxBeginner
	docs *documents.Queries
}

func NewDocumentStateMachine(db TxBeginner, docs *documents.Queries) *DocumentStateMachine {
	return &DocumentStateMachine{
		db:   db,
		docs: docs,
	}
}

func (sm *DocumentStateMachine) GetDocumentWithLock(ctx context.Context, id pgtype.UUID, fn func(tx documents.Querier, doc documents.Invoice) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return model.ErrPersistenceFailure("failed to start transaction")
	}
	defer tx.Rollback(ctx)

	txDocs := sm.docs.WithTx(tx)

	current, err := txDocs.GetDocumentForUpdate(ctx, id)
	if err != nil {
		return lockError(err)
	}

	if err := fn(txDocs, current); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.ErrPersistenceFailure("failed to commit state transition")
	}

	return nil
}

// TransitionToDeclinedTx moves a draft or sent document to declined.
func (sm *DocumentStateMachine) TransitionToDeclinedTx(ctx context.Context, tx documents.Querier, doc documents.Invoice) (documents.Invoice, error) {
	if err := checkNotTerminal(doc); err != nil {
		return documents.Invoice{}, err
	}

	updated, err := tx.UpdateDocumentStatus(ctx, documents.UpdateDocumentStatusParams{
		Status:         string(model.DocumentStatusDeclined),
		ID:             doc.ID,
		ExpectedStatus: doc.Status,
	})
	if err != nil {
		return documents.Invoice{}, writeError(err)
	}

	return updated, nil
}

// TransitionToPaidTx moves a draft or sent document to paid and stamps paidAt.
// An empty paymentRef is stored as NULL.
func (sm *DocumentStateMachine) TransitionToPaidTx(ctx context.Context, tx documents.Querier, doc documents.Invoice, paidAt time.Time, paymentRef string) (documents.Invoice, error) {
	if err := checkNotTerminal(doc); err != nil {
		return documents.Invoice{}, err
	}

	updated, err := tx.MarkDocumentPaid(ctx, documents.MarkDocumentPaidParams{
		PaidAt:           repository.Timestamptz(paidAt),
		PaymentReference: repository.Text(paymentRef),
		ID:               doc.ID,
		ExpectedStatus:   doc.Status,
	})
	if err != nil {
		return documents.Invoice{}, writeError(err)
	}

	return updated, nil
}

func checkNotTerminal(doc documents.Invoice) error {
	status := model.DocumentStatus(doc.Status)
	if status.IsTerminal() {
		return model.ErrAlreadyFinalized(status)
	}
	return nil
}

func lockError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrNotFound("document")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.LockNotAvailable {
		return model.ErrConflict("document is being updated by another request")
	}

	return model.ErrPersistenceFailure("failed to lock document for state transition")
}

// The conditional update matches no row when the status moved after it was read.
func writeError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrConflict("document status changed during the transition")
	}
	return model.ErrPersistenceFailure("failed to update document status")
}
