package models

// Роли пользователей системы.
type UserRole string

const (
	RoleAdmin              UserRole = "admin"
	RoleInvestigator       UserRole = "investigator"
	RoleSupplier           UserRole = "supplier"
	RoleProcurementOfficer UserRole = "procurement_officer"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleInvestigator, RoleSupplier, RoleProcurementOfficer:
		return true
	}
	return false
}

// Статусы тендера.
type TenderStatus string

const (
	TenderStatusPublished TenderStatus = "published"
	TenderStatusEvaluated TenderStatus = "evaluated"
	TenderStatusAwarded   TenderStatus = "awarded"
	TenderStatusCancelled TenderStatus = "cancelled"
)

func (s TenderStatus) Valid() bool {
	switch s {
	case TenderStatusPublished, TenderStatusEvaluated, TenderStatusAwarded, TenderStatusCancelled:
		return true
	}
	return false
}

// Уровни риска (общие для тендеров и поставщиков).
type RiskLevel string

const (
	RiskCritical RiskLevel = "CRITICAL"
	RiskHigh     RiskLevel = "HIGH"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskLow      RiskLevel = "LOW"
)

func (l RiskLevel) Valid() bool {
	switch l {
	case RiskCritical, RiskHigh, RiskMedium, RiskLow:
		return true
	}
	return false
}
