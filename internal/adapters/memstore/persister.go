package memstore

import (
	"promptvault/internal/domain"
	"promptvault/internal/ports"
)

// MemoryPersister keeps the snapshot in memory only. It backs ephemeral
// vaults (--data :memory:) and tests.
type MemoryPersister struct {
	data  *domain.VaultData
	saves int
}

var _ ports.Persister = (*MemoryPersister)(nil)

// NewMemoryPersister returns a persister with no prior state; the first
// Load yields the seed dataset.
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

func (p *MemoryPersister) Save(data domain.VaultData) error {
	clone := data.Clone()
	p.data = &clone
	p.saves++
	return nil
}

func (p *MemoryPersister) Load() (domain.VaultData, error) {
	if p.data == nil {
		return domain.SeedData(), nil
	}
	return p.data.Clone(), nil
}

func (p *MemoryPersister) Close() error { return nil }

// Saves reports how many times Save has been called.
func (p *MemoryPersister) Saves() int { return p.saves }
