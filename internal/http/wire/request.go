package wire

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
)

type CreateContractRequest struct {
	ContractNumber string                  `json:"contract_number"`
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	AgencyName     string                  `json:"agency_name"`
	ContractType   contract.ContractType   `json:"contract_type"`
	Status         contract.ContractStatus `json:"status,omitempty"`
	TotalValue     decimal.Decimal         `json:"total_value"`
	FundedValue    decimal.Decimal         `json:"funded_value"`
	PopStartDate   *time.Time              `json:"pop_start_date,omitempty"`
	PopEndDate     *time.Time              `json:"pop_end_date,omitempty"`
	Contacts       Contacts                `json:"contacts"`
}

func (r CreateContractRequest) Params() contract.CreateContractParams {
	return contract.CreateContractParams{
		ContractNumber: r.ContractNumber,
		Title:          r.Title,
		Description:    r.Description,
		AgencyName:     r.AgencyName,
		ContractType:   r.ContractType,
		Status:         r.Status,
		TotalValue:     r.TotalValue,
		FundedValue:    r.FundedValue,
		PopStartDate:   r.PopStartDate,
		PopEndDate:     r.PopEndDate,
		Contacts:       contract.Contacts(r.Contacts),
	}
}

// UpdateContractRequest is a partial update; absent fields are unchanged.
type UpdateContractRequest struct {
	Title        *string                `json:"title,omitempty"`
	Description  *string                `json:"description,omitempty"`
	AgencyName   *string                `json:"agency_name,omitempty"`
	ContractType *contract.ContractType `json:"contract_type,omitempty"`
	TotalValue   *decimal.Decimal       `json:"total_value,omitempty"`
	FundedValue  *decimal.Decimal       `json:"funded_value,omitempty"`
	PopStartDate *time.Time             `json:"pop_start_date,omitempty"`
	PopEndDate   *time.Time             `json:"pop_end_date,omitempty"`
	Contacts     *Contacts              `json:"contacts,omitempty"`
}

func (r UpdateContractRequest) Params() contract.UpdateContractParams {
	p := contract.UpdateContractParams{
		Title:        r.Title,
		Description:  r.Description,
		AgencyName:   r.AgencyName,
		ContractType: r.ContractType,
		TotalValue:   r.TotalValue,
		FundedValue:  r.FundedValue,
		PopStartDate: r.PopStartDate,
		PopEndDate:   r.PopEndDate,
	}

	if r.Contacts != nil {
		p.Contacts = new(contract.Contacts(*r.Contacts))
	}

	return p
}

// StatusRequest changes the status of a contract, modification or
// deliverable. The value is validated against the target's enum.
type StatusRequest struct {
	Status string `json:"status"`
}

type ClinRequest struct {
	ClinNumber     string               `json:"clin_number"`
	Description    string               `json:"description"`
	ClinType       contract.ClinType    `json:"clin_type"`
	PricingType    contract.PricingType `json:"pricing_type"`
	TotalValue     decimal.NullDecimal  `json:"total_value"`
	FundedAmount   decimal.NullDecimal  `json:"funded_amount"`
	InvoicedAmount decimal.NullDecimal  `json:"invoiced_amount"`
}

func (r ClinRequest) Params() contract.ClinParams {
	return contract.ClinParams{
		ClinNumber:     r.ClinNumber,
		Description:    r.Description,
		ClinType:       r.ClinType,
		PricingType:    r.PricingType,
		TotalValue:     r.TotalValue,
		FundedAmount:   r.FundedAmount,
		InvoicedAmount: r.InvoicedAmount,
	}
}

func ClinRequestFrom(p contract.ClinParams) ClinRequest {
	return ClinRequest{
		ClinNumber:     p.ClinNumber,
		Description:    p.Description,
		ClinType:       p.ClinType,
		PricingType:    p.PricingType,
		TotalValue:     p.TotalValue,
		FundedAmount:   p.FundedAmount,
		InvoicedAmount: p.InvoicedAmount,
	}
}

type ModificationRequest struct {
	ModificationNumber string                    `json:"modification_number"`
	Title              string                    `json:"title"`
	Description        string                    `json:"description"`
	ModificationType   contract.ModificationType `json:"modification_type"`
	ValueChange        decimal.NullDecimal       `json:"value_change"`
	FundingChange      decimal.NullDecimal       `json:"funding_change"`
	PopExtensionDays   *int                      `json:"pop_extension_days,omitempty"`
	NewPopEndDate      *time.Time                `json:"new_pop_end_date,omitempty"`
	EffectiveDate      *time.Time                `json:"effective_date,omitempty"`
}

func (r ModificationRequest) Params() contract.ModificationParams {
	return contract.ModificationParams{
		ModificationNumber: r.ModificationNumber,
		Title:              r.Title,
		Description:        r.Description,
		ModificationType:   r.ModificationType,
		ValueChange:        r.ValueChange,
		FundingChange:      r.FundingChange,
		PopExtensionDays:   r.PopExtensionDays,
		NewPopEndDate:      r.NewPopEndDate,
		EffectiveDate:      r.EffectiveDate,
	}
}

type DeliverableRequest struct {
	CdrlNumber  string                        `json:"cdrl_number"`
	Title       string                        `json:"title"`
	Description string                        `json:"description"`
	Frequency   contract.DeliverableFrequency `json:"frequency,omitempty"`
	DueDate     *time.Time                    `json:"due_date,omitempty"`
	Notes       string                        `json:"notes"`
}

func (r DeliverableRequest) Params() contract.DeliverableParams {
	return contract.DeliverableParams{
		CdrlNumber:  r.CdrlNumber,
		Title:       r.Title,
		Description: r.Description,
		Frequency:   r.Frequency,
		DueDate:     r.DueDate,
		Notes:       r.Notes,
	}
}

// ImportRequest is the JSON form of a CLIN import.
type ImportRequest struct {
	Clins []ClinRequest `json:"clins"`
}
