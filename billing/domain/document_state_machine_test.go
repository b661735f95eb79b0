package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldbill.app/billing/model"
	"fieldbill.app/billing/repository"
	"fieldbill.app/billing/repository/documents"
)

// fakeRow fills the columns the state machine reads: id, document_type and status.
type fakeRow struct {
	doc documents.Invoice
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*pgtype.UUID) = r.doc.ID
	*dest[4].(*string) = r.doc.DocumentType
	*dest[5].(*string) = r.doc.Status
	return nil
}

type fakeTx struct {
	pgx.Tx

	rows       []fakeRow
	queries    []string
	args       [][]any
	commitErr  error
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	tx.queries = append(tx.queries, sql)
	tx.args = append(tx.args, args)
	if len(tx.rows) == 0 {
		return fakeRow{err: errors.New("unexpected query")}
	}
	row := tx.rows[0]
	tx.rows = tx.rows[1:]
	return row
}

func (tx *fakeTx) Commit(context.Context) error {
	if tx.commitErr != nil {
		return tx.commitErr
	}
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if !tx.committed {
		tx.rolledBack = true
	}
	return nil
}

type fakeBeginner struct {
	tx  *fakeTx
	err error
}

func (b *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

func testDocument(t *testing.T, docType, status string) documents.Invoice {
	t.Helper()
	id, ok := repository.ParseUUID("7f1c2a4e-3b5d-4c6e-8f90-1a2b3c4d5e6f")
	require.True(t, ok)
	return documents.Invoice{ID: id, DocumentType: docType, Status: status}
}

func TestGetDocumentWithLock(t *testing.T) {
	lockErr := &pgconn.PgError{Code: pgerrcode.LockNotAvailable}
	callbackErr := model.ErrInvalidDocumentType(model.DocumentTypeEstimate)

	testCases := []struct {
		name           string
		beginErr       error
		lockRow        fakeRow
		callbackErr    error
		commitErr      error
		expectKind     model.ErrorKind
		expectErr      error
		expectCallback bool
		expectCommit   bool
	}{
		{
			name:           "success_commits",
			lockRow:        fakeRow{doc: documents.Invoice{Status: "sent", DocumentType: "invoice"}},
			expectCallback: true,
			expectCommit:   true,
		},
		{
			name:       "begin_fails",
			beginErr:   errors.New("pool closed"),
			expectKind: model.KindPersistenceFailure,
		},
		{
			name:       "document_missing",
			lockRow:    fakeRow{err: pgx.ErrNoRows},
			expectKind: model.KindNotFound,
		},
		{
			name:       "row_already_locked",
			lockRow:    fakeRow{err: lockErr},
			expectKind: model.KindConflict,
		},
		{
			name:       "lock_query_fails",
			lockRow:    fakeRow{err: errors.New("connection reset")},
			expectKind: model.KindPersistenceFailure,
		},
		{
			name:           "callback_error_rolls_back",
			lockRow:        fakeRow{doc: documents.Invoice{Status: "sent", DocumentType: "invoice"}},
			callbackErr:    callbackErr,
			expectErr:      callbackErr,
			expectCallback: true,
		},
		{
			name:           "commit_fails",
			lockRow:        fakeRow{doc: documents.Invoice{Status: "sent", DocumentType: "invoice"}},
			commitErr:      errors.New("serialization failure"),
			expectKind:     model.KindPersistenceFailure,
			expectCallback: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx := &fakeTx{rows: []fakeRow{tc.lockRow}, commitErr: tc.commitErr}
			sm := NewDocumentStateMachine(&fakeBeginner{tx: tx, err: tc.beginErr}, documents.New(nil))
			doc := testDocument(t, "invoice", "sent")

			called := false
			err := sm.GetDocumentWithLock(context.Background(), doc.ID, func(q documents.Querier, current documents.Invoice) error {
				called = true
				assert.NotNil(t, q)
				assert.Equal(t, tc.lockRow.doc.Status, current.Status)
				return tc.callbackErr
			})

			assert.Equal(t, tc.expectCallback, called)
			switch {
			case tc.expectErr != nil:
				assert.ErrorIs(t, err, tc.expectErr)
			case tc.expectKind != "":
				assert.Equal(t, tc.expectKind, model.KindOf(err))
			default:
				assert.NoError(t, err)
			}

			if tc.beginErr != nil {
				return
			}
			require.NotEmpty(t, tx.queries)
			assert.Contains(t, tx.queries[0], "FOR UPDATE NOWAIT")
			assert.Equal(t, tc.expectCommit, tx.committed)
			assert.Equal(t, !tc.expectCommit, tx.rolledBack)
		})
	}
}

func TestTransitionToDeclinedTx(t *testing.T) {
	testCases := []struct {
		name         string
		status       string
		updateRow    fakeRow
		expectKind   model.ErrorKind
		expectStatus string
		expectUpdate bool
	}{
		{
			name:         "draft_to_declined",
			status:       "draft",
			updateRow:    fakeRow{doc: documents.Invoice{Status: "declined"}},
			expectStatus: "declined",
			expectUpdate: true,
		},
		{
			name:         "sent_to_declined",
			status:       "sent",
			updateRow:    fakeRow{doc: documents.Invoice{Status: "declined"}},
			expectStatus: "declined",
			expectUpdate: true,
		},
		{
			name:       "already_declined",
			status:     "declined",
			expectKind: model.KindAlreadyFinalized,
		},
		{
			name:       "already_accepted",
			status:     "accepted",
			expectKind: model.KindAlreadyFinalized,
		},
		{
			name:         "status_moved_concurrently",
			status:       "sent",
			updateRow:    fakeRow{err: pgx.ErrNoRows},
			expectKind:   model.KindConflict,
			expectUpdate: true,
		},
		{
			name:         "update_fails",
			status:       "sent",
			updateRow:    fakeRow{err: errors.New("disk full")},
			expectKind:   model.KindPersistenceFailure,
			expectUpdate: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx := &fakeTx{rows: []fakeRow{tc.updateRow}}
			sm := NewDocumentStateMachine(&fakeBeginner{tx: tx}, documents.New(nil))
			doc := testDocument(t, "estimate", tc.status)

			updated, err := sm.TransitionToDeclinedTx(context.Background(), documents.New(tx), doc)

			if tc.expectKind != "" {
				assert.Equal(t, tc.expectKind, model.KindOf(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectStatus, updated.Status)
			}

			if !tc.expectUpdate {
				assert.Empty(t, tx.queries)
				return
			}
			require.Len(t, tx.queries, 1)
			assert.Contains(t, tx.queries[0], "UPDATE invoices")
			// status, id, expected status
			assert.Equal(t, []any{"declined", doc.ID, tc.status}, tx.args[0])
		})
	}
}

func TestTransitionToPaidTx(t *testing.T) {
	paidAt := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		status       string
		paymentRef   string
		updateRow    fakeRow
		expectKind   model.ErrorKind
		expectUpdate bool
	}{
		{
			name:         "sent_to_paid_with_reference",
			status:       "sent",
			paymentRef:   "cs_test_123",
			updateRow:    fakeRow{doc: documents.Invoice{Status: "paid"}},
			expectUpdate: true,
		},
		{
			name:         "draft_to_paid_without_reference",
			status:       "draft",
			updateRow:    fakeRow{doc: documents.Invoice{Status: "paid"}},
			expectUpdate: true,
		},
		{
			name:       "already_paid",
			status:     "paid",
			expectKind: model.KindAlreadyFinalized,
		},
		{
			name:         "lost_race",
			status:       "sent",
			updateRow:    fakeRow{err: pgx.ErrNoRows},
			expectKind:   model.KindConflict,
			expectUpdate: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx := &fakeTx{rows: []fakeRow{tc.updateRow}}
			sm := NewDocumentStateMachine(&fakeBeginner{tx: tx}, documents.New(nil))
			doc := testDocument(t, "invoice", tc.status)

			updated, err := sm.TransitionToPaidTx(context.Background(), documents.New(tx), doc, paidAt, tc.paymentRef)

			if tc.expectKind != "" {
				assert.Equal(t, tc.expectKind, model.KindOf(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, "paid", updated.Status)
			}

			if !tc.expectUpdate {
				assert.Empty(t, tx.queries)
				return
			}
			require.Len(t, tx.queries, 1)
			require.Len(t, tx.args[0], 4)
			assert.Equal(t, pgtype.Timestamptz{Time: paidAt, Valid: true}, tx.args[0][0])
			assert.Equal(t, pgtype.Text{String: tc.paymentRef, Valid: tc.paymentRef != ""}, tx.args[0][1])
			assert.Equal(t, doc.ID, tx.args[0][2])
			assert.Equal(t, tc.status, tx.args[0][3])
		})
	}
}
