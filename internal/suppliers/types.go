package suppliers

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"uwazi/internal/models"
)

type CreateRequest struct {
	RegistrationNumber string `json:"registration_number"`
	Name               string `json:"name"`
	BusinessAddress    string `json:"business_address"`
	PhysicalAddress    string `json:"physical_address"`
	PostalAddress      string `json:"postal_address"`

	TaxPIN                string     `json:"tax_pin"`
	RegistrationDate      *time.Time `json:"registration_date"`
	NCARegistrationNumber string     `json:"nca_registration_number"`
	NCACategory           string     `json:"nca_category"`

	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Website      string `json:"website"`

	Directors        datatypes.JSON `json:"directors"`
	BeneficialOwners datatypes.JSON `json:"beneficial_owners"`

	IsVerified        bool       `json:"is_verified"`
	VerificationDate  *time.Time `json:"verification_date"`
	TaxCompliant      bool       `json:"tax_compliant"`
	TaxComplianceDate *time.Time `json:"tax_compliance_date"`

	RiskScore       int              `json:"risk_score"`
	RiskLevel       models.RiskLevel `json:"risk_level"`
	IsGhostLikely   bool             `json:"is_ghost_likely"`
	IsBlacklisted   bool             `json:"is_blacklisted"`
	BlacklistReason string           `json:"blacklist_reason"`

	TotalContractsWon  int      `json:"total_contracts_won"`
	TotalContractValue float64  `json:"total_contract_value"`
	PerformanceRating  *float64 `json:"performance_rating"`
}

func (r *CreateRequest) Validate() error {
	r.RegistrationNumber = strings.TrimSpace(r.RegistrationNumber)
	r.Name = strings.TrimSpace(r.Name)

	switch {
	case r.RegistrationNumber == "":
		return errors.New("registration_number is required")
	case r.Name == "":
		return errors.New("name is required")
	}
	if r.RiskLevel != "" && !r.RiskLevel.Valid() {
		return errors.New("invalid risk_level")
	}
	return nil
}

func (r *CreateRequest) toModel() *models.Supplier {
	return &models.Supplier{
		ID:                    uuid.New(),
		RegistrationNumber:    r.RegistrationNumber,
		Name:                  r.Name,
		BusinessAddress:       r.BusinessAddress,
		PhysicalAddress:       r.PhysicalAddress,
		PostalAddress:         r.PostalAddress,
		TaxPIN:                r.TaxPIN,
		RegistrationDate:      r.RegistrationDate,
		NCARegistrationNumber: r.NCARegistrationNumber,
		NCACategory:           r.NCACategory,
		ContactEmail:          r.ContactEmail,
		ContactPhone:          r.ContactPhone,
		Website:               r.Website,
		Directors:             r.Directors,
		BeneficialOwners:      r.BeneficialOwners,
		IsVerified:            r.IsVerified,
		VerificationDate:      r.VerificationDate,
		TaxCompliant:          r.TaxCompliant,
		TaxComplianceDate:     r.TaxComplianceDate,
		RiskScore:             r.RiskScore,
		RiskLevel:             r.RiskLevel,
		IsGhostLikely:         r.IsGhostLikely,
		IsBlacklisted:         r.IsBlacklisted,
		BlacklistReason:       r.BlacklistReason,
		TotalContractsWon:     r.TotalContractsWon,
		TotalContractValue:    r.TotalContractValue,
		PerformanceRating:     r.PerformanceRating,
	}
}

// UpdateRequest — частичное обновление, явный allow-list полей.
type UpdateRequest struct {
	Name            *string `json:"name"`
	BusinessAddress *string `json:"business_address"`
	PhysicalAddress *string `json:"physical_address"`
	PostalAddress   *string `json:"postal_address"`

	TaxPIN                *string    `json:"tax_pin"`
	RegistrationDate      *time.Time `json:"registration_date"`
	NCARegistrationNumber *string    `json:"nca_registration_number"`
	NCACategory           *string    `json:"nca_category"`

	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
	Website      *string `json:"website"`

	Directors        datatypes.JSON `json:"directors"`
	BeneficialOwners datatypes.JSON `json:"beneficial_owners"`

	IsVerified        *bool      `json:"is_verified"`
	VerificationDate  *time.Time `json:"verification_date"`
	TaxCompliant      *bool      `json:"tax_compliant"`
	TaxComplianceDate *time.Time `json:"tax_compliance_date"`

	RiskScore       *int              `json:"risk_score"`
	RiskLevel       *models.RiskLevel `json:"risk_level"`
	IsGhostLikely   *bool             `json:"is_ghost_likely"`
	IsBlacklisted   *bool             `json:"is_blacklisted"`
	BlacklistReason *string           `json:"blacklist_reason"`

	TotalContractsWon  *int     `json:"total_contracts_won"`
	TotalContractValue *float64 `json:"total_contract_value"`
	PerformanceRating  *float64 `json:"performance_rating"`
}

func (r *UpdateRequest) Validate() error {
	if r.RiskLevel != nil && !r.RiskLevel.Valid() {
		return errors.New("invalid risk_level")
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name must not be empty")
	}
	return nil
}

func (r *UpdateRequest) apply(s *models.Supplier) {
	if r.Name != nil {
		s.Name = *r.Name
	}
	if r.BusinessAddress != nil {
		s.BusinessAddress = *r.BusinessAddress
	}
	if r.PhysicalAddress != nil {
		s.PhysicalAddress = *r.PhysicalAddress
	}
	if r.PostalAddress != nil {
		s.PostalAddress = *r.PostalAddress
	}
	if r.TaxPIN != nil {
		s.TaxPIN = *r.TaxPIN
	}
	if r.RegistrationDate != nil {
		s.RegistrationDate = r.RegistrationDate
	}
	if r.NCARegistrationNumber != nil {
		s.NCARegistrationNumber = *r.NCARegistrationNumber
	}
	if r.NCACategory != nil {
		s.NCACategory = *r.NCACategory
	}
	if r.ContactEmail != nil {
		s.ContactEmail = *r.ContactEmail
	}
	if r.ContactPhone != nil {
		s.ContactPhone = *r.ContactPhone
	}
	if r.Website != nil {
		s.Website = *r.Website
	}
	if r.Directors != nil {
		s.Directors = r.Directors
	}
	if r.BeneficialOwners != nil {
		s.BeneficialOwners = r.BeneficialOwners
	}
	if r.IsVerified != nil {
		s.IsVerified = *r.IsVerified
	}
	if r.VerificationDate != nil {
		s.VerificationDate = r.VerificationDate
	}
	if r.TaxCompliant != nil {
		s.TaxCompliant = *r.TaxCompliant
	}
	if r.TaxComplianceDate != nil {
		s.TaxComplianceDate = r.TaxComplianceDate
	}
	if r.RiskScore != nil {
		s.RiskScore = *r.RiskScore
	}
	if r.RiskLevel != nil {
		s.RiskLevel = *r.RiskLevel
	}
	if r.IsGhostLikely != nil {
		s.IsGhostLikely = *r.IsGhostLikely
	}
	if r.IsBlacklisted != nil {
		s.IsBlacklisted = *r.IsBlacklisted
	}
	if r.BlacklistReason != nil {
		s.BlacklistReason = *r.BlacklistReason
	}
	if r.TotalContractsWon != nil {
		s.TotalContractsWon = *r.TotalContractsWon
	}
	if r.TotalContractValue != nil {
		s.TotalContractValue = *r.TotalContractValue
	}
	if r.PerformanceRating != nil {
		s.PerformanceRating = r.PerformanceRating
	}
}
