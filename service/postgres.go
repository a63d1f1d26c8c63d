package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/RobsonJunqueira/contrato-explorer-ui/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrStoreWrite marks an update rejected by the upstream store. The wrapped
// message carries the upstream detail for the UI notice.
var ErrStoreWrite = errors.New("store write rejected")

// StoreWriter is the write half of the record store adapter. Keys are column
// names of the contratos table; the update is atomic per call.
type StoreWriter interface {
	UpdateFields(ctx context.Context, numContrato string, fields map[string]string) error
}

// PGWriter writes field-level partial updates to the contratos table.
type PGWriter struct {
	pool *pgxpool.Pool
}

func NewPGWriter(ctx context.Context, dsn string) (*PGWriter, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	return &PGWriter{pool: pool}, nil
}

func (w *PGWriter) Close() {
	w.pool.Close()
}

// writableColumns is the allow-list of columns accepted by UpdateFields: the
// client-editable reference fields plus the vigency flag.
func writableColumns() []string {
	cols := make([]string, 0, 8)
	for _, f := range model.EditableFields() {
		cols = append(cols, string(f))
	}
	return append(cols, "status_vigencia")
}

// UpdateFields applies a sparse field update to the record keyed by its
// natural contract number. The status field, when present, is translated from
// its display string to the upstream boolean representation.
func (w *PGWriter) UpdateFields(ctx context.Context, numContrato string, fields map[string]string) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: no fields to update", ErrStoreWrite)
	}

	allowed := writableColumns()
	sets := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for _, col := range allowed {
		value, ok := fields[col]
		if !ok {
			continue
		}
		if col == "status_vigencia" {
			args = append(args, model.ActiveFromStatus(value))
		} else {
			args = append(args, value)
		}
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if len(sets) != len(fields) {
		return fmt.Errorf("%w: unknown column in update", ErrStoreWrite)
	}

	args = append(args, numContrato)
	query := fmt.Sprintf(
		"UPDATE contratos SET %s WHERE num_contrato = $%d",
		strings.Join(sets, ", "), len(args),
	)

	tag, err := w.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreWrite, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: no contract with number %s", ErrStoreWrite, numContrato)
	}
	return nil
}
