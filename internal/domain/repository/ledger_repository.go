package repository

import (
	"context"

	"github.com/sangkips/kasirpos/internal/domain/entity"
)

// LedgerRepository defines the interface for the sales ledger: an
// append-only, most-recent-first list of completed transactions held
// for the lifetime of the process. No updates, no deletes.
type LedgerRepository interface {
	// Record prepends the transaction to the ledger.
	Record(ctx context.Context, tx *entity.Transaction) error
	// List returns all transactions, most recent first.
	List(ctx context.Context) ([]entity.Transaction, error)
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
}
