package accounts

import (
	"context"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/appointo/internal/client/models"
)

// MemoryRepository is a mutex-guarded, append-only account list.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts []models.Account
	maxID    int
}

// NewMemoryRepository returns a repository holding a copy of seed.
func NewMemoryRepository(seed []models.Account) *MemoryRepository {
	r := &MemoryRepository{accounts: make([]models.Account, 0, len(seed))}
	for _, a := range seed {
		r.append(a)
	}
	return r
}

// NewSeededRepository returns a repository holding models.SeedAccounts.
func NewSeededRepository() *MemoryRepository {
	return NewMemoryRepository(models.SeedAccounts())
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return models.Account{}, ErrNotFound
}

func (r *MemoryRepository) Create(_ context.Context, name, email string) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a := models.Account{
		ID:    strconv.Itoa(r.maxID + 1),
		Email: email,
		Name:  name,
		Role:  models.RoleStandard,
	}
	r.append(a)
	return a, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Account, len(r.accounts))
	copy(out, r.accounts)
	return out, nil
}

// append must be called with mu held (or before r is shared).
func (r *MemoryRepository) append(a models.Account) {
	r.accounts = append(r.accounts, a)
	if n, err := strconv.Atoi(a.ID); err == nil && n > r.maxID {
		r.maxID = n
	}
}
