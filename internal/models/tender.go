package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Tender — закупочный тендер. Поля повторяют форму NewTenderDialog фронтенда.
type Tender struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Идентификация
	TenderNumber          string `gorm:"uniqueIndex;size:50;not null" json:"tender_number"`
	Title                 string `gorm:"size:500;not null" json:"title"`
	Description           string `gorm:"type:text" json:"description,omitempty"`
	TechnicalRequirements string `gorm:"type:text" json:"technical_requirements,omitempty"`

	// Закупающая организация
	EntityName string `gorm:"index;size:200;not null" json:"entity_name"`
	EntityType string `gorm:"size:100" json:"entity_type,omitempty"`

	// Классификация
	Category          string `gorm:"index;size:100" json:"category,omitempty"`
	ProcurementMethod string `gorm:"size:100" json:"procurement_method,omitempty"`

	// Финансы
	Amount               float64  `gorm:"type:numeric(15,2);not null" json:"amount"`
	Currency             string   `gorm:"size:3;default:KES" json:"currency"`
	SourceOfFunds        string   `gorm:"size:100" json:"source_of_funds,omitempty"`
	TenderSecurityForm   string   `gorm:"size:100" json:"tender_security_form,omitempty"`
	TenderSecurityAmount *float64 `gorm:"type:numeric(15,2)" json:"tender_security_amount,omitempty"`

	// Локация и контакты
	County       string `gorm:"index;size:50" json:"county,omitempty"`
	ContactEmail string `gorm:"size:100" json:"contact_email,omitempty"`

	// Даты
	PublicationDate *time.Time `json:"publication_date,omitempty"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	OpeningDate     *time.Time `json:"opening_date,omitempty"`
	AwardDate       *time.Time `json:"award_date,omitempty"`

	// Присуждение
	AwardedSupplierID *uuid.UUID `gorm:"type:uuid" json:"awarded_supplier_id,omitempty"`

	// Статус и риск
	Status    TenderStatus `gorm:"index;size:32;default:published" json:"status"`
	RiskScore int          `gorm:"index;default:0" json:"risk_score"`
	RiskLevel RiskLevel    `gorm:"size:16" json:"risk_level,omitempty"`
	IsFlagged bool         `gorm:"index;default:false" json:"is_flagged"`

	// Исходный документ (конвейер загрузки)
	SourceDocumentPath string `gorm:"size:500" json:"source_document_path,omitempty"`
	SourceDocumentType string `gorm:"size:20" json:"source_document_type,omitempty"`

	// Извлечённые структурированные данные
	Items          datatypes.JSON `json:"items,omitempty"`
	Specifications datatypes.JSON `json:"specifications,omitempty"`
	Bidders        datatypes.JSON `json:"bidders,omitempty"`

	CreatedBy *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
}
