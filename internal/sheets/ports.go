package sheets

import (
	"context"

	"billfold/internal/core"
)

// TransactionAppender mirrors a transaction to an external spreadsheet. The
// mirror is an operational convenience: the in-process store remains the
// source of truth and append failures are retried by the worker, not the
// request path.
type TransactionAppender interface {
	Append(ctx context.Context, tx core.Transaction) (rowRef string, err error)
}
