package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/edugest/edugest-api/internal/models"
)

// ReferenceRepository answers existence lookups for foreign key targets.
type ReferenceRepository struct {
	db       *sqlx.DB
	observer QueryObserver
	tables   map[string]struct{}
}

// NewReferenceRepository constructs a ReferenceRepository limited to the resource tables.
func NewReferenceRepository(db *sqlx.DB, observer QueryObserver) *ReferenceRepository {
	tables := make(map[string]struct{})
	for _, schema := range models.Schemas() {
		tables[schema.Table] = struct{}{}
	}
	return &ReferenceRepository{db: db, observer: observer, tables: tables}
}

// Exists reports whether table holds a row with the given id.
func (r *ReferenceRepository) Exists(ctx context.Context, table string, id int64) (bool, error) {
	if _, ok := r.tables[table]; !ok {
		return false, fmt.Errorf("check %s reference: unknown table", table)
	}
	if r.observer != nil {
		defer func(start time.Time) {
			r.observer.ObserveDBQuery(table+".exists", time.Since(start))
		}(time.Now())
	}

	query := r.db.Rebind(fmt.Sprintf("SELECT 1 FROM %s WHERE id = ? LIMIT 1", table))
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check %s reference: %w", table, err)
	}
	return true, nil
}
