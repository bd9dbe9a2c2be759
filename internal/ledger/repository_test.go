// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/automailer/internal/logger"
	"github.com/MKhiriev/automailer/models"
)

func newTestRepository(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	return NewRepository(db, logger.Nop()), mock
}

// ── IsDispatched ─────────────────────────────────────────────────────────────

func TestIsDispatched(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{"not dispatched", 0, false},
		{"already dispatched", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepository(t)

			mock.ExpectQuery("SELECT count\\(1\\) FROM dispatches WHERE statement_id = \\?").
				WithArgs("42").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			got, err := repo.IsDispatched(context.Background(), "42")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestIsDispatched_QueryError(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT count\\(1\\) FROM dispatches").
		WillReturnError(errors.New("database is locked"))

	_, err := repo.IsDispatched(context.Background(), "42")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLedger)
}

// ── RecordDispatch ───────────────────────────────────────────────────────────

func TestRecordDispatch_Success(t *testing.T) {
	repo, mock := newTestRepository(t)

	entry := models.DispatchEntry{
		StatementID:  "42",
		CreatedAt:    time.Date(2023, 6, 15, 10, 0, 0, 0, time.UTC),
		DispatchedAt: time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
		Channels:     "email,letter,sms",
	}

	mock.ExpectExec("INSERT INTO dispatches \\(statement_id,statement_created_at,dispatched_at,channels\\) VALUES \\(\\?,\\?,\\?,\\?\\)").
		WithArgs(entry.StatementID, entry.CreatedAt, entry.DispatchedAt, entry.Channels).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.RecordDispatch(context.Background(), entry)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordDispatch_DuplicateStatement(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec("INSERT INTO dispatches").
		WillReturnError(errors.New("UNIQUE constraint failed: dispatches.statement_id"))

	err := repo.RecordDispatch(context.Background(), models.DispatchEntry{StatementID: "42"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLedger)
	assert.Contains(t, err.Error(), "statement_id=42")
}
