package memory

import (
	"context"
	"sync"

	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/interfaces"
	"github.com/sheikh-saqib/batch-confirmation-ledger/internal/models"
)

// MemoryRecordStore is an in-memory implementation of interfaces.RecordStore.
// It is the default archive; records live for the process lifetime only.
type MemoryRecordStore struct {
	mu      sync.Mutex
	records []models.Record
}

func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{
		records: make([]models.Record, 0),
	}
}

func (m *MemoryRecordStore) SaveRecord(ctx context.Context, record models.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = append(m.records, record)
	return nil
}

// GetRecords returns a copy so external code can't modify internal state.
func (m *MemoryRecordStore) GetRecords() ([]models.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]models.Record, len(m.records))
	copy(copied, m.records)
	return copied, nil
}

// Compile-time check: ensure MemoryRecordStore implements RecordStore
var _ interfaces.RecordStore = (*MemoryRecordStore)(nil)
