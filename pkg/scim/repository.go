package scim

import "context"

// RowSet is the result of one query: the column names the database actually
// returned, in order, and the rows as ordered value tuples. The list
// queries use SELECT *, so Columns is the source of truth for which mapped
// attributes are present — not the static mapping.
type RowSet struct {
	Columns []string
	Rows    [][]any
}

// Repository is the query-executor boundary of the gateway. Implementations
// issue parameterized SQL and return raw rows plus result-set metadata; all
// SCIM shaping happens above this interface, so the core depends only on
// the row/column contract and not on a storage technology.
type Repository interface {
	// CountUsers returns the unpaginated row count of the user table.
	CountUsers(ctx context.Context) (int, error)

	// ListUsers returns one window of the user table ordered by the mapped
	// id column.
	ListUsers(ctx context.Context, offset, limit int) (RowSet, error)

	// GetUserByID fetches the row whose mapped id column equals id.
	// A missing row yields an empty RowSet, not an error.
	GetUserByID(ctx context.Context, id string) (RowSet, error)

	// UserEntitlements returns the entitlement rows joined to the given
	// user through the association table.
	UserEntitlements(ctx context.Context, userID string) (RowSet, error)

	CountEntitlements(ctx context.Context) (int, error)
	ListEntitlements(ctx context.Context, offset, limit int) (RowSet, error)
	GetEntitlementByID(ctx context.Context, id string) (RowSet, error)

	// Ping issues a trivial query to verify connectivity.
	Ping(ctx context.Context) error
}
