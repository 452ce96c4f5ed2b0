package memory

import (
	"context"
	"log/slog"
	"sync"

	"doorstep/internal/domain/entity"
	"doorstep/internal/domain/repository"
	"doorstep/internal/domain/wizard"
)

// addressRepository implements repository.AddressRepository with
// copy-on-write records behind a read/write lock.
type addressRepository struct {
	mu      sync.RWMutex
	order   []string
	records map[string]*entity.AddressRecord
	policy  wizard.Policy
	logger  *slog.Logger
}

// NewAddressRepository exposes the store's record collection.
func NewAddressRepository(store *Store) repository.AddressRepository {
	return store.Addresses
}

func newAddressRepository(seed []*entity.AddressRecord, policy wizard.Policy, logger *slog.Logger) *addressRepository {
	repo := &addressRepository{
		order:   make([]string, 0, len(seed)),
		records: make(map[string]*entity.AddressRecord, len(seed)),
		policy:  policy,
		logger:  logger,
	}

	for _, rec := range seed {
		if _, dup := repo.records[rec.ID]; dup {
			continue
		}
		stored := rec.Clone()
		wizard.Stamp(stored, policy)
		repo.order = append(repo.order, stored.ID)
		repo.records[stored.ID] = stored
	}

	return repo
}

// ListAddresses returns copies of all records in seed order.
func (repo *addressRepository) ListAddresses(_ context.Context) ([]*entity.AddressRecord, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.AddressRecord, 0, len(repo.order))
	for _, id := range repo.order {
		out = append(out, repo.records[id].Clone())
	}

	return out, nil
}

// FindAddressByID retrieves a copy of a record by its ID.
func (repo *addressRepository) FindAddressByID(_ context.Context, id string) (*entity.AddressRecord, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	rec, ok := repo.records[id]
	if !ok {
		return nil, repository.ErrAddressNotFound
	}

	return rec.Clone(), nil
}

// UpdateAddress merges the patch and re-derives progress in the same replace.
func (repo *addressRepository) UpdateAddress(_ context.Context, id string, patch *entity.AddressPatch) (*entity.AddressRecord, *entity.AddressRecord, bool) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	current, ok := repo.records[id]
	if !ok {
		repo.logger.Debug("Ignoring update for unknown address record", slog.String("record_id", id))

		return nil, nil, false
	}

	next := patch.Apply(current)
	next.ID = current.ID
	next.GivenAddress = current.GivenAddress
	progress := wizard.Stamp(next, repo.policy)
	repo.records[id] = next

	if progress.Status != current.WizardStatus || progress.StepsCompleted != current.StepsCompleted {
		repo.logger.Debug("Address progress changed",
			slog.String("record_id", id),
			slog.String("status", progress.Status.String()),
			slog.Int("steps_completed", progress.StepsCompleted),
		)
	}

	return current.Clone(), next.Clone(), true
}

func (repo *addressRepository) count() int {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return len(repo.order)
}
