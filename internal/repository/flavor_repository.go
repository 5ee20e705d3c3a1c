// Package repository contains data access logic separated from HTTP handlers.
// This file defines the FlavorRepo, the only component allowed to query the
// ice_cream_flavors table.  Every failure coming back from the driver is
// reported as ErrDataUnavailable so that callers can map it to a fixed
// response without inspecting driver errors.
package repository

import (
	"context"      // context carries request cancellation into DB operations
	"database/sql" // sql provides the pooled connection handle
	"errors"       // errors is used to detect sql.ErrNoRows

	"github.com/iliyamo/ice-cream-parlor/internal/model"
)

const flavorColumns = "id, name, description, created_at"

// FlavorRepo encapsulates all database queries related to flavors.  It
// depends on a sql.DB pool which is opened once at startup and shared by
// every request.
type FlavorRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewFlavorRepo constructs a FlavorRepo with the provided DB handle.
func NewFlavorRepo(db *sql.DB) *FlavorRepo {
	return &FlavorRepo{db: db}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanFlavor(s rowScanner) (*model.Flavor, error) {
	var (
		f    model.Flavor
		desc sql.NullString
	)
	if err := s.Scan(&f.ID, &f.Name, &desc, &f.CreatedAt); err != nil {
		return nil, err
	}
	if desc.Valid {
		d := desc.String
		f.Description = &d
	}
	return &f, nil
}

// List returns every flavor, newest first.  Rows sharing the same
// created_at second fall back to id order so the newest insert still
// comes first.
func (r *FlavorRepo) List(ctx context.Context) ([]*model.Flavor, error) {
	const q = "SELECT " + flavorColumns + " FROM ice_cream_flavors ORDER BY created_at DESC, id DESC"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, unavailable("list flavors", err)
	}
	defer rows.Close()

	out := make([]*model.Flavor, 0)
	for rows.Next() {
		f, err := scanFlavor(rows)
		if err != nil {
			return nil, unavailable("list flavors", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("list flavors", err)
	}
	return out, nil
}

// Create inserts a new flavor and returns the row exactly as the store
// persisted it.  name must already be trimmed and non-empty; a nil
// description is stored as NULL.  The follow-up SELECT uses the id the
// driver reported for this insert, so it reads from the same row even when
// other connections in the pool are inserting concurrently.
func (r *FlavorRepo) Create(ctx context.Context, name string, description *string) (*model.Flavor, error) {
	const qInsert = "INSERT INTO ice_cream_flavors (name, description) VALUES (?, ?)"
	var desc sql.NullString
	if description != nil {
		desc = sql.NullString{String: *description, Valid: true}
	}
	res, err := r.db.ExecContext(ctx, qInsert, name, desc)
	if err != nil {
		return nil, unavailable("insert flavor", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, unavailable("insert flavor", err)
	}

	f, found, err := r.GetByID(ctx, uint64(id))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, unavailable("insert flavor", sql.ErrNoRows)
	}
	return f, nil
}

// GetByID fetches a single flavor.  A missing row is not an error: found
// is false and err is nil.
func (r *FlavorRepo) GetByID(ctx context.Context, id uint64) (f *model.Flavor, found bool, err error) {
	const q = "SELECT " + flavorColumns + " FROM ice_cream_flavors WHERE id = ?"
	f, err = scanFlavor(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, unavailable("get flavor", err)
	}
	return f, true, nil
}

// Ping runs a trivial query to prove the store is answering.
func (r *FlavorRepo) Ping(ctx context.Context) error {
	var one int
	if err := r.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return unavailable("ping", err)
	}
	return nil
}
