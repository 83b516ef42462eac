package contract

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContractType is the pricing arrangement of the contract vehicle.
type ContractType string

const (
	ContractTypeFirmFixedPrice       ContractType = "FIRM_FIXED_PRICE"
	ContractTypeTimeAndMaterials     ContractType = "TIME_AND_MATERIALS"
	ContractTypeLaborHour            ContractType = "LABOR_HOUR"
	ContractTypeCostPlusFixedFee     ContractType = "COST_PLUS_FIXED_FEE"
	ContractTypeCostPlusAwardFee     ContractType = "COST_PLUS_AWARD_FEE"
	ContractTypeCostPlusIncentiveFee ContractType = "COST_PLUS_INCENTIVE_FEE"
	ContractTypeIDIQ                 ContractType = "IDIQ"
	ContractTypeBPA                  ContractType = "BPA"
	ContractTypeOther                ContractType = "OTHER"
)

// ContractStatus is the lifecycle state of a contract. Contracts are never
// deleted; they end in CLOSED, CANCELLED or TERMINATED.
type ContractStatus string

const (
	ContractStatusDraft      ContractStatus = "DRAFT"
	ContractStatusAwarded    ContractStatus = "AWARDED"
	ContractStatusActive     ContractStatus = "ACTIVE"
	ContractStatusOnHold     ContractStatus = "ON_HOLD"
	ContractStatusCompleted  ContractStatus = "COMPLETED"
	ContractStatusClosed     ContractStatus = "CLOSED"
	ContractStatusCancelled  ContractStatus = "CANCELLED"
	ContractStatusTerminated ContractStatus = "TERMINATED"
)

// ClinType classifies a contract line item.
type ClinType string

const (
	ClinTypeBase   ClinType = "BASE"
	ClinTypeOption ClinType = "OPTION"
	ClinTypeData   ClinType = "DATA"
	ClinTypeTravel ClinType = "TRAVEL"
	ClinTypeODC    ClinType = "ODC"
	ClinTypeFee    ClinType = "FEE"
)

// PricingType is the pricing arrangement of a single CLIN.
type PricingType string

const (
	PricingTypeFirmFixedPrice      PricingType = "FIRM_FIXED_PRICE"
	PricingTypeTimeAndMaterials    PricingType = "TIME_AND_MATERIALS"
	PricingTypeLaborHour           PricingType = "LABOR_HOUR"
	PricingTypeCostPlusFixedFee    PricingType = "COST_PLUS_FIXED_FEE"
	PricingTypeCostReimbursable    PricingType = "COST_REIMBURSABLE"
	PricingTypeNotSeparatelyPriced PricingType = "NOT_SEPARATELY_PRICED"
)

// ModificationType classifies a change order.
type ModificationType string

const (
	ModificationTypeAdministrative      ModificationType = "ADMINISTRATIVE"
	ModificationTypeBilateral           ModificationType = "BILATERAL"
	ModificationTypeUnilateral          ModificationType = "UNILATERAL"
	ModificationTypeFunding             ModificationType = "FUNDING"
	ModificationTypeScopeChange         ModificationType = "SCOPE_CHANGE"
	ModificationTypePeriodOfPerformance ModificationType = "PERIOD_OF_PERFORMANCE"
	ModificationTypeOptionExercise      ModificationType = "OPTION_EXERCISE"
	ModificationTypeTermination         ModificationType = "TERMINATION"
)

// ModificationStatus is the approval state of a modification.
type ModificationStatus string

const (
	ModificationStatusDraft       ModificationStatus = "DRAFT"
	ModificationStatusPending     ModificationStatus = "PENDING"
	ModificationStatusUnderReview ModificationStatus = "UNDER_REVIEW"
	ModificationStatusApproved    ModificationStatus = "APPROVED"
	ModificationStatusExecuted    ModificationStatus = "EXECUTED"
	ModificationStatusRejected    ModificationStatus = "REJECTED"
	ModificationStatusCancelled   ModificationStatus = "CANCELLED"
)

// DeliverableStatus is the review state of a deliverable.
type DeliverableStatus string

const (
	DeliverableStatusPending          DeliverableStatus = "PENDING"
	DeliverableStatusInProgress       DeliverableStatus = "IN_PROGRESS"
	DeliverableStatusSubmitted        DeliverableStatus = "SUBMITTED"
	DeliverableStatusUnderReview      DeliverableStatus = "UNDER_REVIEW"
	DeliverableStatusAccepted         DeliverableStatus = "ACCEPTED"
	DeliverableStatusRejected         DeliverableStatus = "REJECTED"
	DeliverableStatusRevisionRequired DeliverableStatus = "REVISION_REQUIRED"
	DeliverableStatusWaived           DeliverableStatus = "WAIVED"
)

// DeliverableFrequency is how often a deliverable recurs.
type DeliverableFrequency string

const (
	DeliverableFrequencyOneTime      DeliverableFrequency = "ONE_TIME"
	DeliverableFrequencyWeekly       DeliverableFrequency = "WEEKLY"
	DeliverableFrequencyMonthly      DeliverableFrequency = "MONTHLY"
	DeliverableFrequencyQuarterly    DeliverableFrequency = "QUARTERLY"
	DeliverableFrequencySemiAnnually DeliverableFrequency = "SEMI_ANNUALLY"
	DeliverableFrequencyAnnually     DeliverableFrequency = "ANNUALLY"
	DeliverableFrequencyAsRequired   DeliverableFrequency = "AS_REQUIRED"
)

// Contacts holds the government and company points of contact for a contract.
type Contacts struct {
	ContractingOfficerName  string
	ContractingOfficerEmail string
	CORName                 string
	COREmail                string
	ProgramManagerName      string
	ContractManagerName     string
}

// Contract is an awarded government contract.
type Contract struct {
	ID             uuid.UUID
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
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Clin is a contract line item. Numeric fields are nullable; aggregation
// treats null as zero.
type Clin struct {
	ID             uuid.UUID
	ContractID     uuid.UUID
	ClinNumber     string
	Description    string
	ClinType       ClinType
	PricingType    PricingType
	TotalValue     decimal.NullDecimal
	FundedAmount   decimal.NullDecimal
	InvoicedAmount decimal.NullDecimal
	RemainingFunds decimal.NullDecimal
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// Modification is a formal change order against a contract.
type Modification struct {
	ID                 uuid.UUID
	ContractID         uuid.UUID
	ModificationNumber string
	Title              string
	Description        string
	ModificationType   ModificationType
	Status             ModificationStatus
	ValueChange        decimal.NullDecimal
	FundingChange      decimal.NullDecimal
	PopExtensionDays   *int
	NewPopEndDate      *time.Time
	EffectiveDate      *time.Time
	ExecutedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// Deliverable is a contract data item (usually a CDRL) owed to the customer.
type Deliverable struct {
	ID          uuid.UUID
	ContractID  uuid.UUID
	CdrlNumber  string
	Title       string
	Description string
	Frequency   DeliverableFrequency
	Status      DeliverableStatus
	DueDate     *time.Time
	SubmittedAt *time.Time
	AcceptedAt  *time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Terminal reports whether the contract has reached an end state.
func (s ContractStatus) Terminal() bool {
	switch s {
	case ContractStatusClosed, ContractStatusCancelled, ContractStatusTerminated:
		return true
	}

	return false
}
