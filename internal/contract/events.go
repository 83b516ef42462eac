package contract

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TopicContractCreated       = "contracts.contract.created"
	TopicContractUpdated       = "contracts.contract.updated"
	TopicContractStatusChanged = "contracts.contract.status_changed"

	TopicClinCreated  = "contracts.clin.created"
	TopicClinUpdated  = "contracts.clin.updated"
	TopicClinImported = "contracts.clin.imported"

	TopicModificationCreated       = "contracts.modification.created"
	TopicModificationUpdated       = "contracts.modification.updated"
	TopicModificationStatusChanged = "contracts.modification.status_changed"
	TopicModificationExecuted      = "contracts.modification.executed"

	TopicDeliverableCreated       = "contracts.deliverable.created"
	TopicDeliverableUpdated       = "contracts.deliverable.updated"
	TopicDeliverableStatusChanged = "contracts.deliverable.status_changed"
)

// EntityChanged is the payload of every create and update event.
type EntityChanged struct {
	ContractID uuid.UUID `json:"contract_id"`
	EntityID   uuid.UUID `json:"entity_id"`
	Number     string    `json:"number,omitempty"`
}

type StatusChanged struct {
	ContractID uuid.UUID `json:"contract_id"`
	EntityID   uuid.UUID `json:"entity_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
}

type ClinsImported struct {
	ContractID uuid.UUID `json:"contract_id"`
	Count      int       `json:"count"`
}

type ModificationExecuted struct {
	ContractID         uuid.UUID           `json:"contract_id"`
	ModificationID     uuid.UUID           `json:"modification_id"`
	ModificationNumber string              `json:"modification_number"`
	ValueChange        decimal.NullDecimal `json:"value_change"`
	FundingChange      decimal.NullDecimal `json:"funding_change"`
	TotalValue         decimal.Decimal     `json:"total_value"`
	FundedValue        decimal.Decimal     `json:"funded_value"`
	PopEndDate         *time.Time          `json:"pop_end_date"`
	ExecutedAt         time.Time           `json:"executed_at"`
}
