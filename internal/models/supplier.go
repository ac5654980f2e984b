package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Supplier — поставщик (участник закупок).
type Supplier struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Реквизиты компании
	RegistrationNumber string `gorm:"uniqueIndex;size:50;not null" json:"registration_number"`
	Name               string `gorm:"index;size:200;not null" json:"name"`
	BusinessAddress    string `gorm:"type:text" json:"business_address,omitempty"`
	PhysicalAddress    string `gorm:"type:text" json:"physical_address,omitempty"`
	PostalAddress      string `gorm:"size:200" json:"postal_address,omitempty"`

	// Налоги и регистрация
	TaxPIN                string     `gorm:"index;size:50" json:"tax_pin,omitempty"`
	RegistrationDate      *time.Time `json:"registration_date,omitempty"`
	NCARegistrationNumber string     `gorm:"size:100" json:"nca_registration_number,omitempty"`
	NCACategory           string     `gorm:"size:50" json:"nca_category,omitempty"`

	// Контакты
	ContactEmail string `gorm:"size:100" json:"contact_email,omitempty"`
	ContactPhone string `gorm:"size:20" json:"contact_phone,omitempty"`
	Website      string `gorm:"size:200" json:"website,omitempty"`

	// Директора и владельцы
	Directors        datatypes.JSON `json:"directors,omitempty"`
	BeneficialOwners datatypes.JSON `json:"beneficial_owners,omitempty"`

	// Верификация
	IsVerified        bool       `gorm:"default:false" json:"is_verified"`
	VerificationDate  *time.Time `json:"verification_date,omitempty"`
	TaxCompliant      bool       `gorm:"default:false" json:"tax_compliant"`
	TaxComplianceDate *time.Time `json:"tax_compliance_date,omitempty"`

	// Оценка риска
	RiskScore       int       `gorm:"index;default:0" json:"risk_score"`
	RiskLevel       RiskLevel `gorm:"size:16" json:"risk_level,omitempty"`
	IsGhostLikely   bool      `gorm:"index;default:false" json:"is_ghost_likely"`
	IsBlacklisted   bool      `gorm:"index;default:false" json:"is_blacklisted"`
	BlacklistReason string    `gorm:"type:text" json:"blacklist_reason,omitempty"`

	// История исполнения
	TotalContractsWon  int      `gorm:"default:0" json:"total_contracts_won"`
	TotalContractValue float64  `gorm:"type:numeric(15,2);default:0" json:"total_contract_value"`
	PerformanceRating  *float64 `gorm:"type:numeric(3,2)" json:"performance_rating,omitempty"`
}
