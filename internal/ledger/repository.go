package ledger

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/automailer/internal/logger"
	"github.com/MKhiriev/automailer/models"
)

const dispatchesTable = "dispatches"

type dispatchRepository struct {
	*DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewRepository returns a [Repository] backed by db.
func NewRepository(db *DB, log *logger.Logger) Repository {
	return &dispatchRepository{
		DB:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  log,
	}
}

func (r *dispatchRepository) IsDispatched(ctx context.Context, statementID string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("count(1)").
		From(dispatchesTable).
		Where(sq.Eq{"statement_id": statementID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: build lookup query: %v", ErrLedger, err)
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "dispatchRepository.IsDispatched").
			Str("statement_id", statementID).
			Msg("failed to query dispatch record")
		return false, fmt.Errorf("%w: query dispatch record (statement_id=%s): %v", ErrLedger, statementID, err)
	}

	return count > 0, nil
}

func (r *dispatchRepository) RecordDispatch(ctx context.Context, entry models.DispatchEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(dispatchesTable).
		Columns("statement_id", "statement_created_at", "dispatched_at", "channels").
		Values(entry.StatementID, entry.CreatedAt, entry.DispatchedAt, entry.Channels).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: build insert query: %v", ErrLedger, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "dispatchRepository.RecordDispatch").
			Str("statement_id", entry.StatementID).
			Msg("failed to insert dispatch record")
		return fmt.Errorf("%w: insert dispatch record (statement_id=%s): %v", ErrLedger, entry.StatementID, err)
	}

	return nil
}
