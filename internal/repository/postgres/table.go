package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"soscrise/internal/repository"
)

// scanner is satisfied by both *sql.Rows and *sql.Row.
type scanner interface {
	Scan(dest ...any) error
}

// Table is a read-only reader for one table. It runs a single fixed query and
// projects every row through scan.
type Table[T any] struct {
	db    *sql.DB
	query string
	scan  func(scanner) (T, error)
}

// NewTable builds a reader from a fixed query and its row projection.
func NewTable[T any](db *sql.DB, query string, scan func(scanner) (T, error)) *Table[T] {
	return &Table[T]{db: db, query: query, scan: scan}
}

// List returns every row in the table's fixed order. An empty table yields an empty, non-nil slice.
func (t *Table[T]) List(ctx context.Context) ([]T, error) {
	items := make([]T, 0)
	err := withConn(ctx, t.db, func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, t.query)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			item, err := t.scan(rows)
			if err != nil {
				return err
			}
			items = append(items, item)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// withConn pins one pooled connection for the duration of fn and always returns it to the pool.
func withConn(ctx context.Context, db *sql.DB, fn func(conn *sql.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	return fn(conn)
}

// NewRepositories wires one reader per resource collection onto db.
func NewRepositories(db *sql.DB) repository.Repositories {
	return repository.Repositories{
		Alerts:        NewAlerts(db),
		News:          NewNews(db),
		SupportPoints: NewSupportPoints(db),
		Organizations: NewOrganizations(db),
		SupplyNeeds:   NewSupplyNeeds(db),
		VolunteerJobs: NewVolunteerJobs(db),
		Guides:        NewGuidePostgres(db),
	}
}
