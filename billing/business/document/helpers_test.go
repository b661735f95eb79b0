package document

import (
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"

	"fieldbill.app/billing/repository"
)

const (
	documentID   = "0b6f4a0e-8c1d-4e7a-9f2b-3c4d5e6f7a80"
	otherDocID   = "5d2e1c3b-7a9f-4b8e-a6d5-c4b3a2918070"
	clientID     = "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d"
	contractorID = "1f2e3d4c-5b6a-4798-8877-665544332211"
)

func mustUUID(t *testing.T, id string) pgtype.UUID {
	t.Helper()
	u, ok := repository.ParseUUID(id)
	require.True(t, ok, "bad fixture id %q", id)
	return u
}

func numeric(t *testing.T, s string) pgtype.Numeric {
	t.Helper()
	var n pgtype.Numeric
	require.NoError(t, n.Scan(s))
	return n
}
