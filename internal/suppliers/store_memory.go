package suppliers

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"uwazi/internal/models"
)

// memStore — in-memory реализация Store (режим без БД и тесты).
type memStore struct {
	mu        sync.RWMutex
	suppliers map[uuid.UUID]*models.Supplier
}

func NewMemoryStore() Store {
	return &memStore{suppliers: make(map[uuid.UUID]*models.Supplier)}
}

func (m *memStore) Create(_ context.Context, s *models.Supplier) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now
	cp := *s
	m.suppliers[s.ID] = &cp
	return nil
}

func (m *memStore) FindByRegistrationNumber(_ context.Context, number string) (*models.Supplier, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.suppliers {
		if s.RegistrationNumber == number {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) List(_ context.Context, f models.SupplierFilter) ([]models.Supplier, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Supplier, 0, len(m.suppliers))
	for _, s := range m.suppliers {
		if !matches(s, f) {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if f.Skip >= len(out) {
		return []models.Supplier{}, nil
	}
	out = out[f.Skip:]
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func matches(s *models.Supplier, f models.SupplierFilter) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(s.Name), q) &&
			!strings.Contains(strings.ToLower(s.RegistrationNumber), q) &&
			!strings.Contains(strings.ToLower(s.TaxPIN), q) {
			return false
		}
	}
	if f.IsVerified != nil && s.IsVerified != *f.IsVerified {
		return false
	}
	if f.IsBlacklisted != nil && s.IsBlacklisted != *f.IsBlacklisted {
		return false
	}
	if f.IsGhostLikely != nil && s.IsGhostLikely != *f.IsGhostLikely {
		return false
	}
	if f.TaxCompliant != nil && s.TaxCompliant != *f.TaxCompliant {
		return false
	}
	if f.RiskLevel != "" && s.RiskLevel != f.RiskLevel {
		return false
	}
	return true
}

func (m *memStore) Get(_ context.Context, id uuid.UUID) (*models.Supplier, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memStore) Update(_ context.Context, s *models.Supplier) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.UpdatedAt = time.Now().UTC()
	cp := *s
	m.suppliers[s.ID] = &cp
	return nil
}

func (m *memStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.suppliers, id)
	return nil
}
