package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"uwazi/internal/models"
)

type SupplierStore struct{ db *gorm.DB }

func NewSupplierStore(db *gorm.DB) *SupplierStore { return &SupplierStore{db: db} }

func (s *SupplierStore) Create(ctx context.Context, sup *models.Supplier) error {
	return s.db.WithContext(ctx).Create(sup).Error
}

func (s *SupplierStore) FindByRegistrationNumber(ctx context.Context, number string) (*models.Supplier, error) {
	var sup models.Supplier
	err := s.db.WithContext(ctx).Where("registration_number = ?", number).First(&sup).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sup, nil
}

func (s *SupplierStore) List(ctx context.Context, f models.SupplierFilter) ([]models.Supplier, error) {
	q := s.db.WithContext(ctx).Model(&models.Supplier{})

	if f.Search != "" {
		term := "%" + f.Search + "%"
		q = q.Where("name ILIKE ? OR registration_number ILIKE ? OR tax_pin ILIKE ?", term, term, term)
	}
	if f.IsVerified != nil {
		q = q.Where("is_verified = ?", *f.IsVerified)
	}
	if f.IsBlacklisted != nil {
		q = q.Where("is_blacklisted = ?", *f.IsBlacklisted)
	}
	if f.IsGhostLikely != nil {
		q = q.Where("is_ghost_likely = ?", *f.IsGhostLikely)
	}
	if f.TaxCompliant != nil {
		q = q.Where("tax_compliant = ?", *f.TaxCompliant)
	}
	if f.RiskLevel != "" {
		q = q.Where("risk_level = ?", f.RiskLevel)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	var out []models.Supplier
	err := q.Order("created_at DESC").Offset(f.Skip).Limit(limit).Find(&out).Error
	return out, err
}

func (s *SupplierStore) Get(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	var sup models.Supplier
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&sup).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sup, nil
}

func (s *SupplierStore) Update(ctx context.Context, sup *models.Supplier) error {
	return s.db.WithContext(ctx).Save(sup).Error
}

func (s *SupplierStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Delete(&models.Supplier{}, "id = ?", id).Error
}
