package shared

import (
	"context"

	"studio-booking/internal/infra/db"
)

// UnitOfWork runs write-side work. Within wraps fn in one transaction so
// a multi-row submission commits or rolls back as a whole; WithDB runs
// fn against the pool for single-statement operations.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}
