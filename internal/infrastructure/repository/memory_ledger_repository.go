package repository

import (
	"context"
	"sync"

	"github.com/sangkips/kasirpos/internal/domain/entity"
	domainRepo "github.com/sangkips/kasirpos/internal/domain/repository"
)

type memoryLedgerRepository struct {
	mu  sync.RWMutex
	txs []entity.Transaction
}

// NewMemoryLedgerRepository creates the in-memory sales ledger. Entries
// are kept most recent first for the lifetime of the process.
func NewMemoryLedgerRepository() domainRepo.LedgerRepository {
	return &memoryLedgerRepository{txs: []entity.Transaction{}}
}

func (r *memoryLedgerRepository) Record(ctx context.Context, tx *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Prepend: the newest sale is always first.
	r.txs = append([]entity.Transaction{*tx}, r.txs...)
	return nil
}

func (r *memoryLedgerRepository) List(ctx context.Context) ([]entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Transaction, len(r.txs))
	copy(out, r.txs)
	return out, nil
}

func (r *memoryLedgerRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.txs {
		if r.txs[i].ID == id {
			tx := r.txs[i]
			return &tx, nil
		}
	}
	return nil, nil
}
