package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/RobsonJunqueira/contrato-explorer-ui/model"
)

// ErrUnknownContract is returned when no held record matches the given id.
var ErrUnknownContract = errors.New("contract not found")

// Editor reconciles field edits: it writes to the store first and merges the
// same values into the held collection only after the write is confirmed.
// Each call is stateless and idempotent at the data level (absolute values,
// never deltas).
type Editor struct {
	writer     StoreWriter
	collection *Collection
}

func NewEditor(writer StoreWriter, collection *Collection) *Editor {
	return &Editor{writer: writer, collection: collection}
}

// Save writes a sparse set of editable field values for one record and, on
// success, patches the in-memory copy so subsequent renders reflect the edit
// without a refetch. On failure the collection is untouched and the store's
// message is returned.
func (e *Editor) Save(ctx context.Context, id string, fields map[model.EditableField]string) (model.Contract, error) {
	if len(fields) == 0 {
		return model.Contract{}, fmt.Errorf("no fields to save")
	}
	for f := range fields {
		if !f.Valid() {
			return model.Contract{}, fmt.Errorf("field %q is not editable", string(f))
		}
	}

	record, ok := e.collection.Get(id)
	if !ok {
		return model.Contract{}, ErrUnknownContract
	}
	if e.writer == nil {
		return model.Contract{}, fmt.Errorf("%w: no database configured", ErrStoreWrite)
	}

	// The write is keyed by the natural contract number, not the synthetic id.
	columns := make(map[string]string, len(fields))
	for f, v := range fields {
		columns[string(f)] = v
	}
	if err := e.writer.UpdateFields(ctx, record.NumContrato, columns); err != nil {
		return model.Contract{}, err
	}

	updated, ok := e.collection.Patch(id, fields)
	if !ok {
		// The record vanished between write and merge (collection replaced).
		return model.Contract{}, ErrUnknownContract
	}
	return updated, nil
}

// AddOption writes a new value into a single classification field. An
// empty or whitespace-only value is rejected before any store call: not an
// error, a no-op, reported by the first return value. The new value becomes a
// dropdown option in future derivations purely because it now occurs in the
// updated record.
func (e *Editor) AddOption(ctx context.Context, id string, field model.EditableField, value string) (bool, model.Contract, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return false, model.Contract{}, nil
	}
	updated, err := e.Save(ctx, id, map[model.EditableField]string{field: value})
	if err != nil {
		return false, model.Contract{}, err
	}
	return true, updated, nil
}
