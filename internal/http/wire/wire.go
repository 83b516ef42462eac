// Package wire holds the JSON shapes of the /api/v1 surface. The server
// renders them and the client decodes them. Nullable numbers and dates are
// always present and encode as null.
package wire

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
)

type Contacts struct {
	ContractingOfficerName  string `json:"contracting_officer_name"`
	ContractingOfficerEmail string `json:"contracting_officer_email"`
	CORName                 string `json:"cor_name"`
	COREmail                string `json:"cor_email"`
	ProgramManagerName      string `json:"program_manager_name"`
	ContractManagerName     string `json:"contract_manager_name"`
}

type Contract struct {
	ID             uuid.UUID               `json:"id"`
	ContractNumber string                  `json:"contract_number"`
	Title          string                  `json:"title"`
	Description    string                  `json:"description"`
	AgencyName     string                  `json:"agency_name"`
	ContractType   contract.ContractType   `json:"contract_type"`
	Status         contract.ContractStatus `json:"status"`
	TotalValue     decimal.Decimal         `json:"total_value"`
	FundedValue    decimal.Decimal         `json:"funded_value"`
	PopStartDate   *time.Time              `json:"pop_start_date"`
	PopEndDate     *time.Time              `json:"pop_end_date"`
	Contacts       Contacts                `json:"contacts"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      *time.Time              `json:"updated_at"`
}

type Clin struct {
	ID             uuid.UUID            `json:"id"`
	ContractID     uuid.UUID            `json:"contract_id"`
	ClinNumber     string               `json:"clin_number"`
	Description    string               `json:"description"`
	ClinType       contract.ClinType    `json:"clin_type"`
	PricingType    contract.PricingType `json:"pricing_type"`
	TotalValue     decimal.NullDecimal  `json:"total_value"`
	FundedAmount   decimal.NullDecimal  `json:"funded_amount"`
	InvoicedAmount decimal.NullDecimal  `json:"invoiced_amount"`
	RemainingFunds decimal.NullDecimal  `json:"remaining_funds"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      *time.Time           `json:"updated_at"`
}

type Modification struct {
	ID                 uuid.UUID                     `json:"id"`
	ContractID         uuid.UUID                     `json:"contract_id"`
	ModificationNumber string                        `json:"modification_number"`
	Title              string                        `json:"title"`
	Description        string                        `json:"description"`
	ModificationType   contract.ModificationType     `json:"modification_type"`
	Status             contract.ModificationStatus   `json:"status"`
	ValueChange        decimal.NullDecimal           `json:"value_change"`
	FundingChange      decimal.NullDecimal           `json:"funding_change"`
	PopExtensionDays   *int                          `json:"pop_extension_days"`
	NewPopEndDate      *time.Time                    `json:"new_pop_end_date"`
	EffectiveDate      *time.Time                    `json:"effective_date"`
	ExecutedAt         *time.Time                    `json:"executed_at"`
	CanExecute         bool                          `json:"can_execute"`
	NextStatuses       []contract.ModificationStatus `json:"next_statuses"`
	CreatedAt          time.Time                     `json:"created_at"`
	UpdatedAt          *time.Time                    `json:"updated_at"`
}

type Deliverable struct {
	ID          uuid.UUID                     `json:"id"`
	ContractID  uuid.UUID                     `json:"contract_id"`
	CdrlNumber  string                        `json:"cdrl_number"`
	Title       string                        `json:"title"`
	Description string                        `json:"description"`
	Frequency   contract.DeliverableFrequency `json:"frequency"`
	Status      contract.DeliverableStatus    `json:"status"`
	DueDate     *time.Time                    `json:"due_date"`
	SubmittedAt *time.Time                    `json:"submitted_at"`
	AcceptedAt  *time.Time                    `json:"accepted_at"`
	Notes       string                        `json:"notes"`
	IsOverdue   bool                          `json:"is_overdue"`
	IsDueSoon   bool                          `json:"is_due_soon"`
	CreatedAt   time.Time                     `json:"created_at"`
	UpdatedAt   *time.Time                    `json:"updated_at"`
}

type Summary struct {
	ContractID        uuid.UUID               `json:"contract_id"`
	ContractNumber    string                  `json:"contract_number"`
	Title             string                  `json:"title"`
	Status            contract.ContractStatus `json:"status"`
	TotalValue        decimal.Decimal         `json:"total_value"`
	FundedValue       decimal.Decimal         `json:"funded_value"`
	FundingPercentage float64                 `json:"funding_percentage"`

	ClinCount          int             `json:"clin_count"`
	ClinTotalValue     decimal.Decimal `json:"clin_total_value"`
	ClinFundedAmount   decimal.Decimal `json:"clin_funded_amount"`
	ClinInvoicedAmount decimal.Decimal `json:"clin_invoiced_amount"`
	RemainingFunds     decimal.Decimal `json:"remaining_funds"`
	BurnRate           float64         `json:"burn_rate"`

	ModificationCount     int             `json:"modification_count"`
	PendingModifications  int             `json:"pending_modifications"`
	PendingOptions        int             `json:"pending_options"`
	ExecutedModifications int             `json:"executed_modifications"`
	ExecutedValueChange   decimal.Decimal `json:"executed_value_change"`
	ExecutedFundingChange decimal.Decimal `json:"executed_funding_change"`

	DeliverableCount    int `json:"deliverable_count"`
	OverdueDeliverables int `json:"overdue_deliverables"`
	DueSoonDeliverables int `json:"due_soon_deliverables"`

	PopDaysRemaining *int `json:"pop_days_remaining"`
}

// ExecuteResult is returned when a modification is executed.
type ExecuteResult struct {
	Modification Modification `json:"modification"`
	Contract     Contract     `json:"contract"`
}

type ImportResult struct {
	Imported int    `json:"imported"`
	Clins    []Clin `json:"clins"`
}

// Error is the body of every non-2xx response. Fields is set for
// validation failures and maps a field name to its message.
type Error struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
