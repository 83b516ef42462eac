package contract

import (
	"fmt"
	"strings"
)

// Every enum has a Label method built on an exhaustive switch. A value outside
// the closed set panics so label drift is caught in development instead of
// rendering an empty string. Input from clients goes through the Parse
// functions, which reject unknown values with ErrInvalidInput.

func unknownLabel[T ~string](v T) string {
	panic(fmt.Sprintf("contract: no label for %T %q", v, string(v)))
}

func parseEnum[T ~string](field, raw string, values []T) (T, error) {
	v := T(strings.ToUpper(strings.TrimSpace(raw)))
	for _, known := range values {
		if v == known {
			return v, nil
		}
	}

	return "", fmt.Errorf("%w: unknown %s %q", ErrInvalidInput, field, raw)
}

func ContractTypeValues() []ContractType {
	return []ContractType{
		ContractTypeFirmFixedPrice,
		ContractTypeTimeAndMaterials,
		ContractTypeLaborHour,
		ContractTypeCostPlusFixedFee,
		ContractTypeCostPlusAwardFee,
		ContractTypeCostPlusIncentiveFee,
		ContractTypeIDIQ,
		ContractTypeBPA,
		ContractTypeOther,
	}
}

func (t ContractType) Label() string {
	switch t {
	case ContractTypeFirmFixedPrice:
		return "Firm Fixed Price"
	case ContractTypeTimeAndMaterials:
		return "Time & Materials"
	case ContractTypeLaborHour:
		return "Labor Hour"
	case ContractTypeCostPlusFixedFee:
		return "Cost Plus Fixed Fee"
	case ContractTypeCostPlusAwardFee:
		return "Cost Plus Award Fee"
	case ContractTypeCostPlusIncentiveFee:
		return "Cost Plus Incentive Fee"
	case ContractTypeIDIQ:
		return "IDIQ"
	case ContractTypeBPA:
		return "BPA"
	case ContractTypeOther:
		return "Other"
	}

	return unknownLabel(t)
}

func ParseContractType(raw string) (ContractType, error) {
	return parseEnum("contract type", raw, ContractTypeValues())
}

func ContractStatusValues() []ContractStatus {
	return []ContractStatus{
		ContractStatusDraft,
		ContractStatusAwarded,
		ContractStatusActive,
		ContractStatusOnHold,
		ContractStatusCompleted,
		ContractStatusClosed,
		ContractStatusCancelled,
		ContractStatusTerminated,
	}
}

func (s ContractStatus) Label() string {
	switch s {
	case ContractStatusDraft:
		return "Draft"
	case ContractStatusAwarded:
		return "Awarded"
	case ContractStatusActive:
		return "Active"
	case ContractStatusOnHold:
		return "On Hold"
	case ContractStatusCompleted:
		return "Completed"
	case ContractStatusClosed:
		return "Closed"
	case ContractStatusCancelled:
		return "Cancelled"
	case ContractStatusTerminated:
		return "Terminated"
	}

	return unknownLabel(s)
}

func ParseContractStatus(raw string) (ContractStatus, error) {
	return parseEnum("contract status", raw, ContractStatusValues())
}

func ClinTypeValues() []ClinType {
	return []ClinType{
		ClinTypeBase,
		ClinTypeOption,
		ClinTypeData,
		ClinTypeTravel,
		ClinTypeODC,
		ClinTypeFee,
	}
}

func (t ClinType) Label() string {
	switch t {
	case ClinTypeBase:
		return "Base"
	case ClinTypeOption:
		return "Option"
	case ClinTypeData:
		return "Data"
	case ClinTypeTravel:
		return "Travel"
	case ClinTypeODC:
		return "Other Direct Costs"
	case ClinTypeFee:
		return "Fee"
	}

	return unknownLabel(t)
}

func ParseClinType(raw string) (ClinType, error) {
	return parseEnum("CLIN type", raw, ClinTypeValues())
}

func PricingTypeValues() []PricingType {
	return []PricingType{
		PricingTypeFirmFixedPrice,
		PricingTypeTimeAndMaterials,
		PricingTypeLaborHour,
		PricingTypeCostPlusFixedFee,
		PricingTypeCostReimbursable,
		PricingTypeNotSeparatelyPriced,
	}
}

func (t PricingType) Label() string {
	switch t {
	case PricingTypeFirmFixedPrice:
		return "FFP"
	case PricingTypeTimeAndMaterials:
		return "T&M"
	case PricingTypeLaborHour:
		return "Labor Hour"
	case PricingTypeCostPlusFixedFee:
		return "CPFF"
	case PricingTypeCostReimbursable:
		return "Cost Reimbursable"
	case PricingTypeNotSeparatelyPriced:
		return "Not Separately Priced"
	}

	return unknownLabel(t)
}

func ParsePricingType(raw string) (PricingType, error) {
	return parseEnum("pricing type", raw, PricingTypeValues())
}

func ModificationTypeValues() []ModificationType {
	return []ModificationType{
		ModificationTypeAdministrative,
		ModificationTypeBilateral,
		ModificationTypeUnilateral,
		ModificationTypeFunding,
		ModificationTypeScopeChange,
		ModificationTypePeriodOfPerformance,
		ModificationTypeOptionExercise,
		ModificationTypeTermination,
	}
}

func (t ModificationType) Label() string {
	switch t {
	case ModificationTypeAdministrative:
		return "Administrative"
	case ModificationTypeBilateral:
		return "Bilateral"
	case ModificationTypeUnilateral:
		return "Unilateral"
	case ModificationTypeFunding:
		return "Incremental Funding"
	case ModificationTypeScopeChange:
		return "Scope Change"
	case ModificationTypePeriodOfPerformance:
		return "PoP Extension"
	case ModificationTypeOptionExercise:
		return "Option Exercise"
	case ModificationTypeTermination:
		return "Termination"
	}

	return unknownLabel(t)
}

func ParseModificationType(raw string) (ModificationType, error) {
	return parseEnum("modification type", raw, ModificationTypeValues())
}

func ModificationStatusValues() []ModificationStatus {
	return []ModificationStatus{
		ModificationStatusDraft,
		ModificationStatusPending,
		ModificationStatusUnderReview,
		ModificationStatusApproved,
		ModificationStatusExecuted,
		ModificationStatusRejected,
		ModificationStatusCancelled,
	}
}

func (s ModificationStatus) Label() string {
	switch s {
	case ModificationStatusDraft:
		return "Draft"
	case ModificationStatusPending:
		return "Pending"
	case ModificationStatusUnderReview:
		return "Under Review"
	case ModificationStatusApproved:
		return "Approved"
	case ModificationStatusExecuted:
		return "Executed"
	case ModificationStatusRejected:
		return "Rejected"
	case ModificationStatusCancelled:
		return "Cancelled"
	}

	return unknownLabel(s)
}

func ParseModificationStatus(raw string) (ModificationStatus, error) {
	return parseEnum("modification status", raw, ModificationStatusValues())
}

func DeliverableStatusValues() []DeliverableStatus {
	return []DeliverableStatus{
		DeliverableStatusPending,
		DeliverableStatusInProgress,
		DeliverableStatusSubmitted,
		DeliverableStatusUnderReview,
		DeliverableStatusAccepted,
		DeliverableStatusRejected,
		DeliverableStatusRevisionRequired,
		DeliverableStatusWaived,
	}
}

func (s DeliverableStatus) Label() string {
	switch s {
	case DeliverableStatusPending:
		return "Pending"
	case DeliverableStatusInProgress:
		return "In Progress"
	case DeliverableStatusSubmitted:
		return "Submitted"
	case DeliverableStatusUnderReview:
		return "Under Review"
	case DeliverableStatusAccepted:
		return "Accepted"
	case DeliverableStatusRejected:
		return "Rejected"
	case DeliverableStatusRevisionRequired:
		return "Revision Required"
	case DeliverableStatusWaived:
		return "Waived"
	}

	return unknownLabel(s)
}

func ParseDeliverableStatus(raw string) (DeliverableStatus, error) {
	return parseEnum("deliverable status", raw, DeliverableStatusValues())
}

func DeliverableFrequencyValues() []DeliverableFrequency {
	return []DeliverableFrequency{
		DeliverableFrequencyOneTime,
		DeliverableFrequencyWeekly,
		DeliverableFrequencyMonthly,
		DeliverableFrequencyQuarterly,
		DeliverableFrequencySemiAnnually,
		DeliverableFrequencyAnnually,
		DeliverableFrequencyAsRequired,
	}
}

func (f DeliverableFrequency) Label() string {
	switch f {
	case DeliverableFrequencyOneTime:
		return "One Time"
	case DeliverableFrequencyWeekly:
		return "Weekly"
	case DeliverableFrequencyMonthly:
		return "Monthly"
	case DeliverableFrequencyQuarterly:
		return "Quarterly"
	case DeliverableFrequencySemiAnnually:
		return "Semi-Annually"
	case DeliverableFrequencyAnnually:
		return "Annually"
	case DeliverableFrequencyAsRequired:
		return "As Required"
	}

	return unknownLabel(f)
}

func ParseDeliverableFrequency(raw string) (DeliverableFrequency, error) {
	return parseEnum("deliverable frequency", raw, DeliverableFrequencyValues())
}

// LabelTable is a value -> label lookup for one enum.
type LabelTable map[string]string

func labelTable[T interface {
	~string
	Label() string
}](values []T) LabelTable {
	table := make(LabelTable, len(values))
	for _, v := range values {
		table[string(v)] = v.Label()
	}

	return table
}

// Labels returns the label tables of every enum keyed by enum name.
func Labels() map[string]LabelTable {
	return map[string]LabelTable{
		"contract_type":         labelTable(ContractTypeValues()),
		"contract_status":       labelTable(ContractStatusValues()),
		"clin_type":             labelTable(ClinTypeValues()),
		"pricing_type":          labelTable(PricingTypeValues()),
		"modification_type":     labelTable(ModificationTypeValues()),
		"modification_status":   labelTable(ModificationStatusValues()),
		"deliverable_status":    labelTable(DeliverableStatusValues()),
		"deliverable_frequency": labelTable(DeliverableFrequencyValues()),
	}
}
