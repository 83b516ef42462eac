package wire

import (
	"time"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
)

func FromContract(c *contract.Contract) Contract {
	return Contract{
		ID:             c.ID,
		ContractNumber: c.ContractNumber,
		Title:          c.Title,
		Description:    c.Description,
		AgencyName:     c.AgencyName,
		ContractType:   c.ContractType,
		Status:         c.Status,
		TotalValue:     c.TotalValue,
		FundedValue:    c.FundedValue,
		PopStartDate:   c.PopStartDate,
		PopEndDate:     c.PopEndDate,
		Contacts:       Contacts(c.Contacts),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// Domain converts a decoded contract, rejecting enum values this build does
// not know.
func (c Contract) Domain() (*contract.Contract, error) {
	contractType, err := contract.ParseContractType(string(c.ContractType))
	if err != nil {
		return nil, err
	}

	status, err := contract.ParseContractStatus(string(c.Status))
	if err != nil {
		return nil, err
	}

	return &contract.Contract{
		ID:             c.ID,
		ContractNumber: c.ContractNumber,
		Title:          c.Title,
		Description:    c.Description,
		AgencyName:     c.AgencyName,
		ContractType:   contractType,
		Status:         status,
		TotalValue:     c.TotalValue,
		FundedValue:    c.FundedValue,
		PopStartDate:   c.PopStartDate,
		PopEndDate:     c.PopEndDate,
		Contacts:       contract.Contacts(c.Contacts),
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}, nil
}

func FromContracts(cs []*contract.Contract) []Contract {
	out := make([]Contract, len(cs))
	for i, c := range cs {
		out[i] = FromContract(c)
	}

	return out
}

func FromClin(c *contract.Clin) Clin {
	return Clin{
		ID:             c.ID,
		ContractID:     c.ContractID,
		ClinNumber:     c.ClinNumber,
		Description:    c.Description,
		ClinType:       c.ClinType,
		PricingType:    c.PricingType,
		TotalValue:     c.TotalValue,
		FundedAmount:   c.FundedAmount,
		InvoicedAmount: c.InvoicedAmount,
		RemainingFunds: c.RemainingFunds,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (c Clin) Domain() (*contract.Clin, error) {
	clinType, err := contract.ParseClinType(string(c.ClinType))
	if err != nil {
		return nil, err
	}

	pricingType, err := contract.ParsePricingType(string(c.PricingType))
	if err != nil {
		return nil, err
	}

	return &contract.Clin{
		ID:             c.ID,
		ContractID:     c.ContractID,
		ClinNumber:     c.ClinNumber,
		Description:    c.Description,
		ClinType:       clinType,
		PricingType:    pricingType,
		TotalValue:     c.TotalValue,
		FundedAmount:   c.FundedAmount,
		InvoicedAmount: c.InvoicedAmount,
		RemainingFunds: c.RemainingFunds,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}, nil
}

func FromClins(cs []*contract.Clin) []Clin {
	out := make([]Clin, len(cs))
	for i, c := range cs {
		out[i] = FromClin(c)
	}

	return out
}

func FromModification(m *contract.Modification) Modification {
	next := contract.NextStatuses(m.Status)
	if next == nil {
		next = []contract.ModificationStatus{}
	}

	return Modification{
		ID:                 m.ID,
		ContractID:         m.ContractID,
		ModificationNumber: m.ModificationNumber,
		Title:              m.Title,
		Description:        m.Description,
		ModificationType:   m.ModificationType,
		Status:             m.Status,
		ValueChange:        m.ValueChange,
		FundingChange:      m.FundingChange,
		PopExtensionDays:   m.PopExtensionDays,
		NewPopEndDate:      m.NewPopEndDate,
		EffectiveDate:      m.EffectiveDate,
		ExecutedAt:         m.ExecutedAt,
		CanExecute:         contract.CanExecute(m.Status),
		NextStatuses:       next,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func (m Modification) Domain() (*contract.Modification, error) {
	modType, err := contract.ParseModificationType(string(m.ModificationType))
	if err != nil {
		return nil, err
	}

	status, err := contract.ParseModificationStatus(string(m.Status))
	if err != nil {
		return nil, err
	}

	return &contract.Modification{
		ID:                 m.ID,
		ContractID:         m.ContractID,
		ModificationNumber: m.ModificationNumber,
		Title:              m.Title,
		Description:        m.Description,
		ModificationType:   modType,
		Status:             status,
		ValueChange:        m.ValueChange,
		FundingChange:      m.FundingChange,
		PopExtensionDays:   m.PopExtensionDays,
		NewPopEndDate:      m.NewPopEndDate,
		EffectiveDate:      m.EffectiveDate,
		ExecutedAt:         m.ExecutedAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}, nil
}

func FromModifications(ms []*contract.Modification) []Modification {
	out := make([]Modification, len(ms))
	for i, m := range ms {
		out[i] = FromModification(m)
	}

	return out
}

// FromDeliverable renders a deliverable with its overdue and due-soon flags
// evaluated at now.
func FromDeliverable(d *contract.Deliverable, now time.Time, window time.Duration) Deliverable {
	return Deliverable{
		ID:          d.ID,
		ContractID:  d.ContractID,
		CdrlNumber:  d.CdrlNumber,
		Title:       d.Title,
		Description: d.Description,
		Frequency:   d.Frequency,
		Status:      d.Status,
		DueDate:     d.DueDate,
		SubmittedAt: d.SubmittedAt,
		AcceptedAt:  d.AcceptedAt,
		Notes:       d.Notes,
		IsOverdue:   contract.IsOverdue(d, now),
		IsDueSoon:   contract.IsDueSoon(d, now, window),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (d Deliverable) Domain() (*contract.Deliverable, error) {
	frequency, err := contract.ParseDeliverableFrequency(string(d.Frequency))
	if err != nil {
		return nil, err
	}

	status, err := contract.ParseDeliverableStatus(string(d.Status))
	if err != nil {
		return nil, err
	}

	return &contract.Deliverable{
		ID:          d.ID,
		ContractID:  d.ContractID,
		CdrlNumber:  d.CdrlNumber,
		Title:       d.Title,
		Description: d.Description,
		Frequency:   frequency,
		Status:      status,
		DueDate:     d.DueDate,
		SubmittedAt: d.SubmittedAt,
		AcceptedAt:  d.AcceptedAt,
		Notes:       d.Notes,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

func FromDeliverables(ds []*contract.Deliverable, now time.Time, window time.Duration) []Deliverable {
	out := make([]Deliverable, len(ds))
	for i, d := range ds {
		out[i] = FromDeliverable(d, now, window)
	}

	return out
}

func FromSummary(s *contract.Summary) Summary {
	return Summary{
		ContractID:            s.ContractID,
		ContractNumber:        s.ContractNumber,
		Title:                 s.Title,
		Status:                s.Status,
		TotalValue:            s.TotalValue,
		FundedValue:           s.FundedValue,
		FundingPercentage:     s.FundingPercentage,
		ClinCount:             s.ClinCount,
		ClinTotalValue:        s.ClinTotalValue,
		ClinFundedAmount:      s.ClinFundedAmount,
		ClinInvoicedAmount:    s.ClinInvoicedAmount,
		RemainingFunds:        s.RemainingFunds,
		BurnRate:              s.BurnRate,
		ModificationCount:     s.ModificationCount,
		PendingModifications:  s.PendingModifications,
		PendingOptions:        s.PendingOptions,
		ExecutedModifications: s.ExecutedModifications,
		ExecutedValueChange:   s.ExecutedValueChange,
		ExecutedFundingChange: s.ExecutedFundingChange,
		DeliverableCount:      s.DeliverableCount,
		OverdueDeliverables:   s.OverdueDeliverables,
		DueSoonDeliverables:   s.DueSoonDeliverables,
		PopDaysRemaining:      s.PopDaysRemaining,
	}
}

func (s Summary) Domain() (*contract.Summary, error) {
	status, err := contract.ParseContractStatus(string(s.Status))
	if err != nil {
		return nil, err
	}

	return &contract.Summary{
		ContractID:            s.ContractID,
		ContractNumber:        s.ContractNumber,
		Title:                 s.Title,
		Status:                status,
		TotalValue:            s.TotalValue,
		FundedValue:           s.FundedValue,
		FundingPercentage:     s.FundingPercentage,
		ClinCount:             s.ClinCount,
		ClinTotalValue:        s.ClinTotalValue,
		ClinFundedAmount:      s.ClinFundedAmount,
		ClinInvoicedAmount:    s.ClinInvoicedAmount,
		RemainingFunds:        s.RemainingFunds,
		BurnRate:              s.BurnRate,
		ModificationCount:     s.ModificationCount,
		PendingModifications:  s.PendingModifications,
		PendingOptions:        s.PendingOptions,
		ExecutedModifications: s.ExecutedModifications,
		ExecutedValueChange:   s.ExecutedValueChange,
		ExecutedFundingChange: s.ExecutedFundingChange,
		DeliverableCount:      s.DeliverableCount,
		OverdueDeliverables:   s.OverdueDeliverables,
		DueSoonDeliverables:   s.DueSoonDeliverables,
		PopDaysRemaining:      s.PopDaysRemaining,
	}, nil
}
