package scim

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresScimRepository implements Repository over a pgx connection pool.
//
// Table and column names come exclusively from startup configuration and are
// interpolated as sanitized identifiers; every value that originates from a
// request (ids, pagination offsets) is a bound parameter.
type PostgresScimRepository struct {
	pool    *pgxpool.Pool
	mapping Mapping
}

// NewPostgresScimRepository creates a new PostgreSQL-backed repository.
func NewPostgresScimRepository(pool *pgxpool.Pool, mapping Mapping) *PostgresScimRepository {
	return &PostgresScimRepository{
		pool:    pool,
		mapping: mapping,
	}
}

// ident quotes a configured table or column name as a SQL identifier.
func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

// rowSet drains pgx rows into a RowSet, capturing the result-set column
// names from the field descriptions.
func rowSet(rows pgx.Rows) (RowSet, error) {
	defer rows.Close()

	fds := rows.FieldDescriptions()
	columns := make([]string, len(fds))
	for i, fd := range fds {
		columns[i] = string(fd.Name)
	}

	rs := RowSet{Columns: columns}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return RowSet{}, fmt.Errorf("failed to read row values: %w", err)
		}
		rs.Rows = append(rs.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return RowSet{}, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return rs, nil
}

func (r *PostgresScimRepository) count(ctx context.Context, table string) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", ident(table))

	var total int64
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return int(total), nil
}

func (r *PostgresScimRepository) list(ctx context.Context, table, idColumn string, offset, limit int) (RowSet, error) {
	query := fmt.Sprintf(
		"SELECT * FROM %s ORDER BY %s OFFSET $1 ROWS FETCH NEXT $2 ROWS ONLY",
		ident(table), ident(idColumn),
	)

	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return RowSet{}, fmt.Errorf("failed to list %s: %w", table, err)
	}
	return rowSet(rows)
}

func (r *PostgresScimRepository) getByID(ctx context.Context, table, idColumn, id string) (RowSet, error) {
	// The id column type is whatever the source schema uses; cast to text
	// so the path-supplied id compares against integer keys as well.
	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE %s::text = $1",
		ident(table), ident(idColumn),
	)

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return RowSet{}, fmt.Errorf("failed to get row from %s: %w", table, err)
	}
	return rowSet(rows)
}

// CountUsers returns the unpaginated row count of the user table.
func (r *PostgresScimRepository) CountUsers(ctx context.Context) (int, error) {
	return r.count(ctx, r.mapping.Tables.Users)
}

// ListUsers returns one window of the user table in id order.
func (r *PostgresScimRepository) ListUsers(ctx context.Context, offset, limit int) (RowSet, error) {
	return r.list(ctx, r.mapping.Tables.Users, r.mapping.User.ID, offset, limit)
}

// GetUserByID fetches the user row with the given id, if any.
func (r *PostgresScimRepository) GetUserByID(ctx context.Context, id string) (RowSet, error) {
	return r.getByID(ctx, r.mapping.Tables.Users, r.mapping.User.ID, id)
}

// UserEntitlements joins the entitlement table to the association table for
// one user id. The caller decides how to treat failures; missing join
// tables surface here as a query error.
func (r *PostgresScimRepository) UserEntitlements(ctx context.Context, userID string) (RowSet, error) {
	e := r.mapping.Entitlement
	t := r.mapping.Tables
	query := fmt.Sprintf(
		"SELECT e.%s, e.%s, e.%s, e.%s FROM %s e INNER JOIN %s ue ON e.%s = ue.%s WHERE ue.%s::text = $1",
		ident(e.ID), ident(e.Value), ident(e.Display), ident(e.Type),
		ident(t.Entitlements), ident(t.UserEntitlements),
		ident(e.ID), ident(t.UserEntitlementEntitlementID),
		ident(t.UserEntitlementUserID),
	)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return RowSet{}, fmt.Errorf("failed to query entitlements for user %s: %w", userID, err)
	}
	return rowSet(rows)
}

// CountEntitlements returns the unpaginated row count of the entitlement table.
func (r *PostgresScimRepository) CountEntitlements(ctx context.Context) (int, error) {
	return r.count(ctx, r.mapping.Tables.Entitlements)
}

// ListEntitlements returns one window of the entitlement table in id order.
func (r *PostgresScimRepository) ListEntitlements(ctx context.Context, offset, limit int) (RowSet, error) {
	return r.list(ctx, r.mapping.Tables.Entitlements, r.mapping.Entitlement.ID, offset, limit)
}

// GetEntitlementByID fetches the entitlement row with the given id, if any.
func (r *PostgresScimRepository) GetEntitlementByID(ctx context.Context, id string) (RowSet, error) {
	return r.getByID(ctx, r.mapping.Tables.Entitlements, r.mapping.Entitlement.ID, id)
}

// Ping verifies database connectivity with a trivial query.
func (r *PostgresScimRepository) Ping(ctx context.Context) error {
	var one int
	if err := r.pool.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
