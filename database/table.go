package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpupo63/portfolio-site/errs"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// Coercer converts a decoded JSON or form value into what the column stores.
type Coercer func(any) (any, error)

// Descriptor names a table and the rules for reading and writing it.
type Descriptor struct {
	Table     string
	Key       string // primary key column, "id" when empty
	OrderBy   string
	Ascending bool
	// Columns whitelists what Update may touch.
	Columns []string
	Coerce  map[string]Coercer
}

func (d Descriptor) key() string {
	if d.Key == "" {
		return "id"
	}
	return d.Key
}

func (d Descriptor) writable(column string) bool {
	for _, c := range d.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// Order overrides the descriptor's default ordering for one List call.
type Order struct {
	Column    string
	Ascending bool
}

// Table is the typed client for one backend table.
type Table[T any] struct {
	db      *gorm.DB
	desc    Descriptor
	clauses []clause.Expression
}

func NewTable[T any](db *gorm.DB, desc Descriptor) *Table[T] {
	return &Table[T]{db: db, desc: desc}
}

// Elevated returns a copy whose statements all run on the source (service role) connection.
func (t *Table[T]) Elevated() *Table[T] {
	return &Table[T]{db: t.db, desc: t.desc, clauses: []clause.Expression{dbresolver.Write}}
}

func (t *Table[T]) Descriptor() Descriptor {
	return t.desc
}

func (t *Table[T]) query(ctx context.Context) *gorm.DB {
	q := t.db.WithContext(ctx).Table(t.desc.Table)
	if len(t.clauses) > 0 {
		q = q.Clauses(t.clauses...)
	}
	return q
}

// List returns every row, by default in the descriptor's order.
func (t *Table[T]) List(ctx context.Context, orders ...Order) ([]T, error) {
	if len(orders) == 0 && t.desc.OrderBy != "" {
		orders = []Order{{Column: t.desc.OrderBy, Ascending: t.desc.Ascending}}
	}

	q := t.query(ctx)
	for _, o := range orders {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: !o.Ascending})
	}

	rows := []T{}
	if err := q.Find(&rows).Error; err != nil {
		return nil, errs.NewBackendError("list", t.desc.Table, err)
	}
	return rows, nil
}

// GetOne returns the single row matching filter. No match, several matches
// and query failures are all reported as not found with the cause attached.
func (t *Table[T]) GetOne(ctx context.Context, filter map[string]any) (*T, error) {
	var rows []T
	if err := t.query(ctx).Where(filter).Limit(2).Find(&rows).Error; err != nil {
		return nil, errs.NewNotFoundError(t.desc.Table, err)
	}
	if len(rows) != 1 {
		return nil, errs.NewNotFoundError(t.desc.Table, fmt.Errorf("expected one row, got %d", len(rows)))
	}
	return &rows[0], nil
}

// Create inserts row. The backend hook assigns the id; any id on row is replaced.
func (t *Table[T]) Create(ctx context.Context, row *T) (*T, error) {
	if err := t.query(ctx).Create(row).Error; err != nil {
		return nil, errs.NewValidationError(t.desc.Table, "", err)
	}
	return row, nil
}

// Update applies a partial update to the row with id and returns the reloaded row.
func (t *Table[T]) Update(ctx context.Context, id string, values map[string]any) (*T, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errs.NewMissingIDError()
	}

	changes := make(map[string]any, len(values))
	for column, value := range values {
		if !t.desc.writable(column) {
			return nil, errs.NewValidationError(t.desc.Table, column, fmt.Errorf("unknown column %q", column))
		}
		if coerce, ok := t.desc.Coerce[column]; ok {
			v, err := coerce(value)
			if err != nil {
				return nil, errs.NewValidationError(t.desc.Table, column, err)
			}
			value = v
		}
		changes[column] = value
	}

	key := t.desc.key()
	if len(changes) > 0 {
		res := t.query(ctx).Where(clause.Eq{Column: clause.Column{Name: key}, Value: id}).Updates(changes)
		if res.Error != nil {
			return nil, errs.NewBackendError("update", t.desc.Table, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, errs.NewBackendError("update", t.desc.Table, fmt.Errorf("no row with %s %s", key, id))
		}
	}

	row, err := t.GetOne(ctx, map[string]any{key: id})
	if err != nil {
		return nil, errs.NewBackendError("update", t.desc.Table, err)
	}
	return row, nil
}

// Delete removes the row with id. Deletion is permanent.
func (t *Table[T]) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewMissingIDError()
	}

	key := t.desc.key()
	res := t.query(ctx).Where(clause.Eq{Column: clause.Column{Name: key}, Value: id}).Delete(new(T))
	if res.Error != nil {
		return errs.NewBackendError("delete", t.desc.Table, res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NewBackendError("delete", t.desc.Table, fmt.Errorf("no row with %s %s", key, id))
	}
	return nil
}

func (t *Table[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := t.query(ctx).Count(&n).Error; err != nil {
		return 0, errs.NewBackendError("count", t.desc.Table, err)
	}
	return n, nil
}
