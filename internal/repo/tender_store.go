package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"uwazi/internal/models"
)

type TenderStore struct{ db *gorm.DB }

func NewTenderStore(db *gorm.DB) *TenderStore { return &TenderStore{db: db} }

func (s *TenderStore) Create(ctx context.Context, t *models.Tender) error {
	return s.db.WithContext(ctx).Create(t).Error
}

func (s *TenderStore) FindByNumber(ctx context.Context, number string) (*models.Tender, error) {
	var t models.Tender
	err := s.db.WithContext(ctx).Where("tender_number = ?", number).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TenderStore) List(ctx context.Context, f models.TenderFilter) ([]models.Tender, error) {
	q := s.db.WithContext(ctx).Model(&models.Tender{})

	// поиск по номеру/названию/организации
	if f.Search != "" {
		term := "%" + f.Search + "%"
		q = q.Where("tender_number ILIKE ? OR title ILIKE ? OR entity_name ILIKE ?", term, term, term)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.RiskLevel != "" {
		q = q.Where("risk_level = ?", f.RiskLevel)
	}
	if f.County != "" {
		q = q.Where("county ILIKE ?", "%"+f.County+"%")
	}
	if f.Category != "" {
		q = q.Where("category ILIKE ?", "%"+f.Category+"%")
	}
	if f.IsFlagged != nil {
		q = q.Where("is_flagged = ?", *f.IsFlagged)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	var out []models.Tender
	err := q.Order("created_at DESC").Offset(f.Skip).Limit(limit).Find(&out).Error
	return out, err
}

func (s *TenderStore) Get(ctx context.Context, id uuid.UUID) (*models.Tender, error) {
	var t models.Tender
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TenderStore) Update(ctx context.Context, t *models.Tender) error {
	return s.db.WithContext(ctx).Save(t).Error
}

func (s *TenderStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.Tender{}, "id = ?", id).Error
}
