package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/edugest/edugest-api/internal/models"
)

// QueryObserver receives timings for executed statements.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// CRUDRepository persists the rows of one resource table described by a schema.
// Every value is passed as a bound parameter; only schema identifiers are
// interpolated into statements.
type CRUDRepository[T any] struct {
	db       *sqlx.DB
	schema   models.Schema
	observer QueryObserver

	selectSQL string
	insertSQL string
	updateSQL string
}

// NewCRUDRepository constructs a repository for the provided schema.
func NewCRUDRepository[T any](db *sqlx.DB, schema models.Schema, observer QueryObserver) *CRUDRepository[T] {
	cols := schema.Columns()
	sets := make([]string, len(cols))
	for i, col := range cols {
		sets[i] = fmt.Sprintf("%s = :%s", col, col)
	}

	return &CRUDRepository[T]{
		db:        db,
		schema:    schema,
		observer:  observer,
		selectSQL: fmt.Sprintf("SELECT %s FROM %s", strings.Join(schema.Headers(), ", "), schema.Table),
		insertSQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (:%s) RETURNING id", schema.Table, strings.Join(cols, ", "), strings.Join(cols, ", :")),
		updateSQL: fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", schema.Table, strings.Join(sets, ", ")),
	}
}

// Schema returns the table description backing the repository.
func (r *CRUDRepository[T]) Schema() models.Schema {
	return r.schema
}

// List returns every row, newest first.
func (r *CRUDRepository[T]) List(ctx context.Context) ([]T, error) {
	defer r.observe("list", time.Now())

	items := make([]T, 0)
	if err := r.db.SelectContext(ctx, &items, r.selectSQL+" ORDER BY id DESC"); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.schema.Table, err)
	}
	return items, nil
}

// FindByID fetches one row. sql.ErrNoRows is returned unwrapped when absent.
func (r *CRUDRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	defer r.observe("find", time.Now())

	var item T
	if err := r.db.GetContext(ctx, &item, r.db.Rebind(r.selectSQL+" WHERE id = ?"), id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find %s: %w", r.schema.Table, err)
	}
	return &item, nil
}

// Count returns the number of rows in the table.
func (r *CRUDRepository[T]) Count(ctx context.Context) (int, error) {
	defer r.observe("count", time.Now())

	var total int
	if err := r.db.GetContext(ctx, &total, fmt.Sprintf("SELECT COUNT(*) FROM %s", r.schema.Table)); err != nil {
		return 0, fmt.Errorf("count %s: %w", r.schema.Table, err)
	}
	return total, nil
}

// Create inserts a row built from the schema columns of item and returns the stored row.
func (r *CRUDRepository[T]) Create(ctx context.Context, item *T) (*T, error) {
	id, err := r.insert(ctx, item)
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *CRUDRepository[T]) insert(ctx context.Context, item *T) (int64, error) {
	defer r.observe("create", time.Now())

	query, args, err := sqlx.Named(r.insertSQL, item)
	if err != nil {
		return 0, fmt.Errorf("bind %s insert: %w", r.schema.Table, err)
	}

	var id int64
	if err := r.db.QueryRowxContext(ctx, r.db.Rebind(query), args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("create %s: %w", r.schema.Table, err)
	}
	return id, nil
}

// Update replaces every schema column of row id. It returns nil, nil when no
// row has that id.
func (r *CRUDRepository[T]) Update(ctx context.Context, id int64, item *T) (*T, error) {
	affected, err := r.update(ctx, id, item)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, nil
	}
	return r.FindByID(ctx, id)
}

func (r *CRUDRepository[T]) update(ctx context.Context, id int64, item *T) (int64, error) {
	defer r.observe("update", time.Now())

	query, args, err := sqlx.Named(r.updateSQL, item)
	if err != nil {
		return 0, fmt.Errorf("bind %s update: %w", r.schema.Table, err)
	}
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", r.schema.Table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", r.schema.Table, err)
	}
	return affected, nil
}

// Delete removes row id. Deleting a missing row is not an error; dependants
// are cascaded or nullified by the database.
func (r *CRUDRepository[T]) Delete(ctx context.Context, id int64) error {
	defer r.observe("delete", time.Now())

	query := r.db.Rebind(fmt.Sprintf("DELETE FROM %s WHERE id = ?", r.schema.Table))
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete %s: %w", r.schema.Table, err)
	}
	return nil
}

func (r *CRUDRepository[T]) observe(op string, start time.Time) {
	if r.observer == nil {
		return
	}
	r.observer.ObserveDBQuery(r.schema.Table+"."+op, time.Since(start))
}
