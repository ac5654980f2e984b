package tenders

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
	mu      sync.RWMutex
	tenders map[uuid.UUID]*models.Tender
}

func NewMemoryStore() Store {
	return &memStore{tenders: make(map[uuid.UUID]*models.Tender)}
}

func (m *memStore) Create(_ context.Context, t *models.Tender) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	cp := *t
	m.tenders[t.ID] = &cp
	return nil
}

func (m *memStore) FindByNumber(_ context.Context, number string) (*models.Tender, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.tenders {
		if t.TenderNumber == number {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) List(_ context.Context, f models.TenderFilter) ([]models.Tender, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Tender, 0, len(m.tenders))
	for _, t := range m.tenders {
		if !matches(t, f) {
			continue
		}
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })

	if f.Skip >= len(out) {
		return []models.Tender{}, nil
	}
	out = out[f.Skip:]
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func matches(t *models.Tender, f models.TenderFilter) bool {
	if f.Search != "" {
		s := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.TenderNumber), s) &&
			!strings.Contains(strings.ToLower(t.Title), s) &&
			!strings.Contains(strings.ToLower(t.EntityName), s) {
			return false
		}
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.RiskLevel != "" && t.RiskLevel != f.RiskLevel {
		return false
	}
	if f.County != "" && !strings.Contains(strings.ToLower(t.County), strings.ToLower(f.County)) {
		return false
	}
	if f.Category != "" && !strings.Contains(strings.ToLower(t.Category), strings.ToLower(f.Category)) {
		return false
	}
	if f.IsFlagged != nil && t.IsFlagged != *f.IsFlagged {
		return false
	}
	return true
}

func (m *memStore) Get(_ context.Context, id uuid.UUID) (*models.Tender, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tenders[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (m *memStore) Update(_ context.Context, t *models.Tender) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.UpdatedAt = time.Now().UTC()
	cp := *t
	m.tenders[t.ID] = &cp
	return nil
}

func (m *memStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tenders, id)
	return nil
}
