package models

// Параметры списочных запросов. Разделяются хендлерами и стораджами,
// поэтому живут рядом с сущностями.

type TenderFilter struct {
	Search    string // tender_number | title | entity_name, подстрока без регистра
	Status    TenderStatus
	RiskLevel RiskLevel
	County    string
	Category  string
	IsFlagged *bool
	Skip      int
	Limit     int
}

type SupplierFilter struct {
	Search        string // name | registration_number | tax_pin
	IsVerified    *bool
	IsBlacklisted *bool
	IsGhostLikely *bool
	TaxCompliant  *bool
	RiskLevel     RiskLevel
	Skip          int
	Limit         int
}
