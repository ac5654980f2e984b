package tenders

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"uwazi/internal/models"
)

type CreateRequest struct {
	TenderNumber          string   `json:"tender_number"`
	Title                 string   `json:"title"`
	Description           string   `json:"description"`
	TechnicalRequirements string   `json:"technical_requirements"`
	EntityName            string   `json:"entity_name"`
	EntityType            string   `json:"entity_type"`
	Category              string   `json:"category"`
	ProcurementMethod     string   `json:"procurement_method"`
	Amount                float64  `json:"amount"`
	Currency              string   `json:"currency"`
	SourceOfFunds         string   `json:"source_of_funds"`
	TenderSecurityForm    string   `json:"tender_security_form"`
	TenderSecurityAmount  *float64 `json:"tender_security_amount"`
	County                string   `json:"county"`
	ContactEmail          string   `json:"contact_email"`

	PublicationDate *time.Time `json:"publication_date"`
	Deadline        *time.Time `json:"deadline"`
	OpeningDate     *time.Time `json:"opening_date"`
	AwardDate       *time.Time `json:"award_date"`

	AwardedSupplierID *uuid.UUID `json:"awarded_supplier_id"`

	Status    models.TenderStatus `json:"status"`
	RiskScore int                 `json:"risk_score"`
	RiskLevel models.RiskLevel    `json:"risk_level"`
	IsFlagged bool                `json:"is_flagged"`

	SourceDocumentPath string `json:"source_document_path"`
	SourceDocumentType string `json:"source_document_type"`

	Items          datatypes.JSON `json:"items"`
	Specifications datatypes.JSON `json:"specifications"`
	Bidders        datatypes.JSON `json:"bidders"`
}

func (r *CreateRequest) Validate() error {
	r.TenderNumber = strings.TrimSpace(r.TenderNumber)
	r.Title = strings.TrimSpace(r.Title)
	r.EntityName = strings.TrimSpace(r.EntityName)

	switch {
	case r.TenderNumber == "":
		return errors.New("tender_number is required")
	case r.Title == "":
		return errors.New("title is required")
	case r.EntityName == "":
		return errors.New("entity_name is required")
	case r.Amount <= 0:
		return errors.New("amount must be positive")
	}
	if r.Status == "" {
		r.Status = models.TenderStatusPublished
	} else if !r.Status.Valid() {
		return errors.New("invalid status")
	}
	if r.RiskLevel != "" && !r.RiskLevel.Valid() {
		return errors.New("invalid risk_level")
	}
	if r.Currency == "" {
		r.Currency = "KES"
	}
	return nil
}

func (r *CreateRequest) toModel(createdBy *uuid.UUID) *models.Tender {
	return &models.Tender{
		ID:                    uuid.New(),
		TenderNumber:          r.TenderNumber,
		Title:                 r.Title,
		Description:           r.Description,
		TechnicalRequirements: r.TechnicalRequirements,
		EntityName:            r.EntityName,
		EntityType:            r.EntityType,
		Category:              r.Category,
		ProcurementMethod:     r.ProcurementMethod,
		Amount:                r.Amount,
		Currency:              r.Currency,
		SourceOfFunds:         r.SourceOfFunds,
		TenderSecurityForm:    r.TenderSecurityForm,
		TenderSecurityAmount:  r.TenderSecurityAmount,
		County:                r.County,
		ContactEmail:          r.ContactEmail,
		PublicationDate:       r.PublicationDate,
		Deadline:              r.Deadline,
		OpeningDate:           r.OpeningDate,
		AwardDate:             r.AwardDate,
		AwardedSupplierID:     r.AwardedSupplierID,
		Status:                r.Status,
		RiskScore:             r.RiskScore,
		RiskLevel:             r.RiskLevel,
		IsFlagged:             r.IsFlagged,
		SourceDocumentPath:    r.SourceDocumentPath,
		SourceDocumentType:    r.SourceDocumentType,
		Items:                 r.Items,
		Specifications:        r.Specifications,
		Bidders:               r.Bidders,
		CreatedBy:             createdBy,
	}
}

// UpdateRequest — частичное обновление: применяются только переданные
// поля (указатели). Явный allow-list вместо динамического копирования.
type UpdateRequest struct {
	Title                 *string  `json:"title"`
	Description           *string  `json:"description"`
	TechnicalRequirements *string  `json:"technical_requirements"`
	EntityName            *string  `json:"entity_name"`
	EntityType            *string  `json:"entity_type"`
	Category              *string  `json:"category"`
	ProcurementMethod     *string  `json:"procurement_method"`
	Amount                *float64 `json:"amount"`
	Currency              *string  `json:"currency"`
	SourceOfFunds         *string  `json:"source_of_funds"`
	TenderSecurityForm    *string  `json:"tender_security_form"`
	TenderSecurityAmount  *float64 `json:"tender_security_amount"`
	County                *string  `json:"county"`
	ContactEmail          *string  `json:"contact_email"`

	PublicationDate *time.Time `json:"publication_date"`
	Deadline        *time.Time `json:"deadline"`
	OpeningDate     *time.Time `json:"opening_date"`
	AwardDate       *time.Time `json:"award_date"`

	AwardedSupplierID *uuid.UUID `json:"awarded_supplier_id"`

	Status    *models.TenderStatus `json:"status"`
	RiskScore *int                 `json:"risk_score"`
	RiskLevel *models.RiskLevel    `json:"risk_level"`
	IsFlagged *bool                `json:"is_flagged"`

	SourceDocumentPath *string `json:"source_document_path"`
	SourceDocumentType *string `json:"source_document_type"`

	Items          datatypes.JSON `json:"items"`
	Specifications datatypes.JSON `json:"specifications"`
	Bidders        datatypes.JSON `json:"bidders"`
}

func (r *UpdateRequest) Validate() error {
	if r.Status != nil && !r.Status.Valid() {
		return errors.New("invalid status")
	}
	if r.RiskLevel != nil && !r.RiskLevel.Valid() {
		return errors.New("invalid risk_level")
	}
	if r.Amount != nil && *r.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	return nil
}

func (r *UpdateRequest) apply(t *models.Tender) {
	if r.Title != nil {
		t.Title = *r.Title
	}
	if r.Description != nil {
		t.Description = *r.Description
	}
	if r.TechnicalRequirements != nil {
		t.TechnicalRequirements = *r.TechnicalRequirements
	}
	if r.EntityName != nil {
		t.EntityName = *r.EntityName
	}
	if r.EntityType != nil {
		t.EntityType = *r.EntityType
	}
	if r.Category != nil {
		t.Category = *r.Category
	}
	if r.ProcurementMethod != nil {
		t.ProcurementMethod = *r.ProcurementMethod
	}
	if r.Amount != nil {
		t.Amount = *r.Amount
	}
	if r.Currency != nil {
		t.Currency = *r.Currency
	}
	if r.SourceOfFunds != nil {
		t.SourceOfFunds = *r.SourceOfFunds
	}
	if r.TenderSecurityForm != nil {
		t.TenderSecurityForm = *r.TenderSecurityForm
	}
	if r.TenderSecurityAmount != nil {
		t.TenderSecurityAmount = r.TenderSecurityAmount
	}
	if r.County != nil {
		t.County = *r.County
	}
	if r.ContactEmail != nil {
		t.ContactEmail = *r.ContactEmail
	}
	if r.PublicationDate != nil {
		t.PublicationDate = r.PublicationDate
	}
	if r.Deadline != nil {
		t.Deadline = r.Deadline
	}
	if r.OpeningDate != nil {
		t.OpeningDate = r.OpeningDate
	}
	if r.AwardDate != nil {
		t.AwardDate = r.AwardDate
	}
	if r.AwardedSupplierID != nil {
		t.AwardedSupplierID = r.AwardedSupplierID
	}
	if r.Status != nil {
		t.Status = *r.Status
	}
	if r.RiskScore != nil {
		t.RiskScore = *r.RiskScore
	}
	if r.RiskLevel != nil {
		t.RiskLevel = *r.RiskLevel
	}
	if r.IsFlagged != nil {
		t.IsFlagged = *r.IsFlagged
	}
	if r.SourceDocumentPath != nil {
		t.SourceDocumentPath = *r.SourceDocumentPath
	}
	if r.SourceDocumentType != nil {
		t.SourceDocumentType = *r.SourceDocumentType
	}
	if r.Items != nil {
		t.Items = r.Items
	}
	if r.Specifications != nil {
		t.Specifications = r.Specifications
	}
	if r.Bidders != nil {
		t.Bidders = r.Bidders
	}
}
