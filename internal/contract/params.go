package contract

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CreateContractParams struct {
	ContractNumber string
	Title          string
	Description    string
	AgencyName     string
	ContractType   ContractType
	Status         ContractStatus
	TotalValue     decimal.Decimal
	FundedValue    decimal.Decimal
	PopStartDate   *time.Time
	PopEndDate     *time.Time
	Contacts       Contacts
}

func (p *CreateContractParams) Validate() error {
	errs := fieldErrors{}

	if strings.TrimSpace(p.ContractNumber) == "" {
		errs.add("contract_number", "is required")
	}

	if strings.TrimSpace(p.Title) == "" {
		errs.add("title", "is required")
	}

	if !slices.Contains(ContractTypeValues(), p.ContractType) {
		errs.add("contract_type", fmt.Sprintf("unknown value %q", p.ContractType))
	}

	if p.Status != "" && !slices.Contains(ContractStatusValues(), p.Status) {
		errs.add("status", fmt.Sprintf("unknown value %q", p.Status))
	}

	checkNonNegative(errs, "total_value", p.TotalValue)
	checkNonNegative(errs, "funded_value", p.FundedValue)
	checkPeriod(errs, p.PopStartDate, p.PopEndDate)

	return errs.err()
}

// UpdateContractParams carries a partial update; nil fields are left as is.
type UpdateContractParams struct {
	Title        *string
	Description  *string
	AgencyName   *string
	ContractType *ContractType
	TotalValue   *decimal.Decimal
	FundedValue  *decimal.Decimal
	PopStartDate *time.Time
	PopEndDate   *time.Time
	Contacts     *Contacts
}

func (p *UpdateContractParams) Validate() error {
	errs := fieldErrors{}

	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		errs.add("title", "is required")
	}

	if p.ContractType != nil && !slices.Contains(ContractTypeValues(), *p.ContractType) {
		errs.add("contract_type", fmt.Sprintf("unknown value %q", *p.ContractType))
	}

	if p.TotalValue != nil {
		checkNonNegative(errs, "total_value", *p.TotalValue)
	}

	if p.FundedValue != nil {
		checkNonNegative(errs, "funded_value", *p.FundedValue)
	}

	return errs.err()
}

func (p *UpdateContractParams) apply(c *Contract) {
	if p.Title != nil {
		c.Title = *p.Title
	}

	if p.Description != nil {
		c.Description = *p.Description
	}

	if p.AgencyName != nil {
		c.AgencyName = *p.AgencyName
	}

	if p.ContractType != nil {
		c.ContractType = *p.ContractType
	}

	if p.TotalValue != nil {
		c.TotalValue = *p.TotalValue
	}

	if p.FundedValue != nil {
		c.FundedValue = *p.FundedValue
	}

	if p.PopStartDate != nil {
		c.PopStartDate = p.PopStartDate
	}

	if p.PopEndDate != nil {
		c.PopEndDate = p.PopEndDate
	}

	if p.Contacts != nil {
		c.Contacts = *p.Contacts
	}
}

// ClinParams is used both to create a CLIN and to replace its fields.
type ClinParams struct {
	ClinNumber     string
	Description    string
	ClinType       ClinType
	PricingType    PricingType
	TotalValue     decimal.NullDecimal
	FundedAmount   decimal.NullDecimal
	InvoicedAmount decimal.NullDecimal
}

func (p *ClinParams) Validate() error {
	errs := fieldErrors{}
	p.validate(errs, "")

	return errs.err()
}

func (p *ClinParams) validate(errs fieldErrors, prefix string) {
	if strings.TrimSpace(p.ClinNumber) == "" {
		errs.add(prefix+"clin_number", "is required")
	}

	if !slices.Contains(ClinTypeValues(), p.ClinType) {
		errs.add(prefix+"clin_type", fmt.Sprintf("unknown value %q", p.ClinType))
	}

	if !slices.Contains(PricingTypeValues(), p.PricingType) {
		errs.add(prefix+"pricing_type", fmt.Sprintf("unknown value %q", p.PricingType))
	}

	checkNullNonNegative(errs, prefix+"total_value", p.TotalValue)
	checkNullNonNegative(errs, prefix+"funded_amount", p.FundedAmount)
	checkNullNonNegative(errs, prefix+"invoiced_amount", p.InvoicedAmount)
}

func (p *ClinParams) apply(c *Clin) {
	c.ClinNumber = p.ClinNumber
	c.Description = p.Description
	c.ClinType = p.ClinType
	c.PricingType = p.PricingType
	c.TotalValue = p.TotalValue
	c.FundedAmount = p.FundedAmount
	c.InvoicedAmount = p.InvoicedAmount
	c.RemainingFunds = RemainingFunds(p.FundedAmount, p.InvoicedAmount)
}

// ModificationParams is used both to create a modification and to replace
// its fields while it is still pending.
type ModificationParams struct {
	ModificationNumber string
	Title              string
	Description        string
	ModificationType   ModificationType
	ValueChange        decimal.NullDecimal
	FundingChange      decimal.NullDecimal
	PopExtensionDays   *int
	NewPopEndDate      *time.Time
	EffectiveDate      *time.Time
}

func (p *ModificationParams) Validate() error {
	errs := fieldErrors{}

	if strings.TrimSpace(p.ModificationNumber) == "" {
		errs.add("modification_number", "is required")
	}

	if !slices.Contains(ModificationTypeValues(), p.ModificationType) {
		errs.add("modification_type", fmt.Sprintf("unknown value %q", p.ModificationType))
	}

	if p.PopExtensionDays != nil && *p.PopExtensionDays < 0 {
		errs.add("pop_extension_days", "must not be negative")
	}

	return errs.err()
}

func (p *ModificationParams) apply(m *Modification) {
	m.ModificationNumber = p.ModificationNumber
	m.Title = p.Title
	m.Description = p.Description
	m.ModificationType = p.ModificationType
	m.ValueChange = p.ValueChange
	m.FundingChange = p.FundingChange
	m.PopExtensionDays = p.PopExtensionDays
	m.NewPopEndDate = p.NewPopEndDate
	m.EffectiveDate = p.EffectiveDate
}

// DeliverableParams is used both to create a deliverable and to replace its
// descriptive fields. Status changes go through UpdateDeliverableStatus.
type DeliverableParams struct {
	CdrlNumber  string
	Title       string
	Description string
	Frequency   DeliverableFrequency
	DueDate     *time.Time
	Notes       string
}

func (p *DeliverableParams) Validate() error {
	errs := fieldErrors{}

	if strings.TrimSpace(p.Title) == "" {
		errs.add("title", "is required")
	}

	if p.Frequency != "" && !slices.Contains(DeliverableFrequencyValues(), p.Frequency) {
		errs.add("frequency", fmt.Sprintf("unknown value %q", p.Frequency))
	}

	return errs.err()
}

func (p *DeliverableParams) apply(d *Deliverable) {
	d.CdrlNumber = p.CdrlNumber
	d.Title = p.Title
	d.Description = p.Description
	d.Frequency = p.Frequency
	d.DueDate = p.DueDate
	d.Notes = p.Notes

	if d.Frequency == "" {
		d.Frequency = DeliverableFrequencyOneTime
	}
}

func checkNonNegative(errs fieldErrors, field string, v decimal.Decimal) {
	if v.IsNegative() {
		errs.add(field, "must not be negative")
	}
}

func checkNullNonNegative(errs fieldErrors, field string, v decimal.NullDecimal) {
	if v.Valid {
		checkNonNegative(errs, field, v.Decimal)
	}
}

func checkPeriod(errs fieldErrors, start, end *time.Time) {
	if start != nil && end != nil && end.Before(*start) {
		errs.add("pop_end_date", "must not be before the start date")
	}
}
