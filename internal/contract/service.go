package contract

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=contract
type Repository interface {
	CreateContract(ctx context.Context, c *Contract) error
	GetContract(ctx context.Context, id uuid.UUID) (*Contract, error)
	ListContracts(ctx context.Context, filter ListFilter) ([]*Contract, error)
	UpdateContract(ctx context.Context, c *Contract) error
	UpdateContractStatus(ctx context.Context, id uuid.UUID, status ContractStatus) error

	CreateClin(ctx context.Context, c *Clin) error
	CreateClins(ctx context.Context, clins []*Clin) error
	GetClin(ctx context.Context, id uuid.UUID) (*Clin, error)
	UpdateClin(ctx context.Context, c *Clin) error
	ListClins(ctx context.Context, contractID uuid.UUID) ([]*Clin, error)

	CreateModification(ctx context.Context, mod *Modification) error
	GetModification(ctx context.Context, id uuid.UUID) (*Modification, error)
	UpdateModification(ctx context.Context, mod *Modification) error
	ListModifications(ctx context.Context, contractID uuid.UUID) ([]*Modification, error)

	// UpdateModificationStatus moves the modification from one status to
	// another and fails with ErrInvalidTransition when it is no longer in from.
	UpdateModificationStatus(ctx context.Context, id uuid.UUID, from, to ModificationStatus) error

	// ExecuteModification marks an APPROVED modification EXECUTED and applies
	// its deltas to the parent contract in one transaction.
	ExecuteModification(ctx context.Context, id uuid.UUID, executedAt time.Time) (*Modification, *Contract, error)

	CreateDeliverable(ctx context.Context, d *Deliverable) error
	GetDeliverable(ctx context.Context, id uuid.UUID) (*Deliverable, error)
	UpdateDeliverable(ctx context.Context, d *Deliverable) error
	ListDeliverables(ctx context.Context, contractID uuid.UUID) ([]*Deliverable, error)
}

// Publisher emits domain events. Delivery is best effort.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
}

type ListFilter struct {
	Status *ContractStatus
	Agency string
	Search string
}

type Service struct {
	repo          Repository
	pub           Publisher
	now           func() time.Time
	dueSoonWindow time.Duration
}

type Option func(*Service)

func WithPublisher(pub Publisher) Option {
	return func(s *Service) { s.pub = pub }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithDueSoonWindow(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.dueSoonWindow = d
		}
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:          repo,
		now:           time.Now,
		dueSoonWindow: DefaultDueSoonWindow,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) DueSoonWindow() time.Duration {
	return s.dueSoonWindow
}

// Now is the service clock, used to evaluate deadlines.
func (s *Service) Now() time.Time {
	return s.now()
}

func (s *Service) publish(ctx context.Context, topic string, event any) {
	if s.pub == nil {
		return
	}

	if err := s.pub.Publish(ctx, topic, event); err != nil {
		slog.Warn("failed to publish event", "topic", topic, "error", err)
	}
}

func (s *Service) CreateContract(ctx context.Context, params CreateContractParams) (*Contract, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	c := &Contract{
		ContractNumber: params.ContractNumber,
		Title:          params.Title,
		Description:    params.Description,
		AgencyName:     params.AgencyName,
		ContractType:   params.ContractType,
		Status:         params.Status,
		TotalValue:     params.TotalValue,
		FundedValue:    params.FundedValue,
		PopStartDate:   params.PopStartDate,
		PopEndDate:     params.PopEndDate,
		Contacts:       params.Contacts,
	}
	if c.Status == "" {
		c.Status = ContractStatusDraft
	}

	if err := s.repo.CreateContract(ctx, c); err != nil {
		return nil, err
	}

	s.publish(ctx, TopicContractCreated, EntityChanged{ContractID: c.ID, EntityID: c.ID, Number: c.ContractNumber})

	return c, nil
}

func (s *Service) GetContract(ctx context.Context, id uuid.UUID) (*Contract, error) {
	return s.repo.GetContract(ctx, id)
}

func (s *Service) ListContracts(ctx context.Context, filter ListFilter) ([]*Contract, error) {
	return s.repo.ListContracts(ctx, filter)
}

func (s *Service) UpdateContract(ctx context.Context, id uuid.UUID, params UpdateContractParams) (*Contract, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}

	params.apply(c)

	errs := fieldErrors{}
	checkPeriod(errs, c.PopStartDate, c.PopEndDate)

	if err := errs.err(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateContract(ctx, c); err != nil {
		return nil, err
	}

	s.publish(ctx, TopicContractUpdated, EntityChanged{ContractID: c.ID, EntityID: c.ID, Number: c.ContractNumber})

	return c, nil
}

// UpdateContractStatus changes the lifecycle status. A contract in an end
// state keeps it.
func (s *Service) UpdateContractStatus(ctx context.Context, id uuid.UUID, status ContractStatus) (*Contract, error) {
	if !slices.Contains(ContractStatusValues(), status) {
		return nil, invalidStatus(status)
	}

	c, err := s.repo.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.Status == status {
		return c, nil
	}

	if c.Status.Terminal() {
		return nil, fmt.Errorf("%w: contract is %s", ErrInvalidTransition, c.Status.Label())
	}

	if err := s.repo.UpdateContractStatus(ctx, id, status); err != nil {
		return nil, err
	}

	from := c.Status
	c.Status = status

	s.publish(ctx, TopicContractStatusChanged, StatusChanged{
		ContractID: c.ID,
		EntityID:   c.ID,
		From:       string(from),
		To:         string(status),
	})

	return c, nil
}

// Summary loads a contract with its children and computes the rollup.
func (s *Service) Summary(ctx context.Context, id uuid.UUID) (*Summary, error) {
	c, err := s.repo.GetContract(ctx, id)
	if err != nil {
		return nil, err
	}

	clins, err := s.repo.ListClins(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list clins: %w", err)
	}

	mods, err := s.repo.ListModifications(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list modifications: %w", err)
	}

	deliverables, err := s.repo.ListDeliverables(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list deliverables: %w", err)
	}

	summary := Summarize(c, clins, mods, deliverables, s.now(), s.dueSoonWindow)

	return &summary, nil
}

func (s *Service) CreateClin(ctx context.Context, contractID uuid.UUID, params ClinParams) (*Clin, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetContract(ctx, contractID); err != nil {
		return nil, err
	}

	c := &Clin{ContractID: contractID}
	params.apply(c)

	if err := s.repo.CreateClin(ctx, c); err != nil {
		return nil, err
	}

	s.publish(ctx, TopicClinCreated, EntityChanged{ContractID: contractID, EntityID: c.ID, Number: c.ClinNumber})

	return c, nil
}

func (s *Service) UpdateClin(ctx context.Context, id uuid.UUID, params ClinParams) (*Clin, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.GetClin(ctx, id)
	if err != nil {
		return nil, err
	}

	params.apply(c)

	if err := s.repo.UpdateClin(ctx, c); err != nil {
		return nil, err
	}

	s.publish(ctx, TopicClinUpdated, EntityChanged{ContractID: c.ContractID, EntityID: c.ID, Number: c.ClinNumber})

	return c, nil
}

func (s *Service) GetClin(ctx context.Context, id uuid.UUID) (*Clin, error) {
	return s.repo.GetClin(ctx, id)
}

func (s *Service) ListClins(ctx context.Context, contractID uuid.UUID) ([]*Clin, error) {
	return s.repo.ListClins(ctx, contractID)
}

// ImportClins validates every row before writing any. Field errors are keyed
// by row number, e.g. "row 3: clin_number".
func (s *Service) ImportClins(ctx context.Context, contractID uuid.UUID, params []ClinParams) ([]*Clin, error) {
	errs := fieldErrors{}
	for i := range params {
		params[i].validate(errs, fmt.Sprintf("row %d: ", i+1))
	}

	if err := errs.err(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetContract(ctx, contractID); err != nil {
		return nil, err
	}

	if len(params) == 0 {
		return []*Clin{}, nil
	}

	clins := make([]*Clin, len(params))
	for i := range params {
		clins[i] = &Clin{ContractID: contractID}
		params[i].apply(clins[i])
	}

	if err := s.repo.CreateClins(ctx, clins); err != nil {
		return nil, fmt.Errorf("create clins: %w", err)
	}

	s.publish(ctx, TopicClinImported, ClinsImported{ContractID: contractID, Count: len(clins)})

	return clins, nil
}

func (s *Service) CreateModification(ctx context.Context, contractID uuid.UUID, params ModificationParams) (*Modification, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetContract(ctx, contractID); err != nil {
		return nil, err
	}

	m := &Modification{ContractID: contractID, Status: ModificationStatusDraft}
	params.apply(m)

	if err := s.repo.CreateModification(ctx, m); err != nil {
		return nil, err
	}

	s.publish(ctx, TopicModificationCreated, EntityChanged{ContractID: contractID, EntityID: m.ID, Number: m.ModificationNumber})

	return m, nil
}

// UpdateModification replaces the fields of a modification that has not yet
// reached an end state.
func (s *Service) UpdateModification(ctx context.Context, id uuid.UUID, params ModificationParams) (*Modification, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	m, err := s.repo.GetModification(ctx, id)
	if err != nil {
		return nil, err
	}

	if m.Status.Terminal() {
		return nil, fmt.Errorf("%w: modification is %s", ErrInvalidTransition, m.Status.Label())
	}

	params.apply(m)

	if err := s.repo.UpdateModification(ctx, m); err != nil {
		return nil, err
	}

	s.publish(ctx, TopicModificationUpdated, EntityChanged{ContractID: m.ContractID, EntityID: m.ID, Number: m.ModificationNumber})

	return m, nil
}

func (s *Service) GetModification(ctx context.Context, id uuid.UUID) (*Modification, error) {
	return s.repo.GetModification(ctx, id)
}

func (s *Service) ListModifications(ctx context.Context, contractID uuid.UUID) ([]*Modification, error) {
	return s.repo.ListModifications(ctx, contractID)
}

// TransitionModification moves a modification one step through its
// lifecycle. Moving to EXECUTED goes through ExecuteModification.
func (s *Service) TransitionModification(ctx context.Context, id uuid.UUID, to ModificationStatus) (*Modification, error) {
	if !slices.Contains(ModificationStatusValues(), to) {
		return nil, invalidStatus(to)
	}

	if to == ModificationStatusExecuted {
		m, _, err := s.ExecuteModification(ctx, id)
		return m, err
	}

	m, err := s.repo.GetModification(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(m.Status, to) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, m.Status.Label(), to.Label())
	}

	if err := s.repo.UpdateModificationStatus(ctx, id, m.Status, to); err != nil {
		return nil, err
	}

	from := m.Status
	m.Status = to

	s.publish(ctx, TopicModificationStatusChanged, StatusChanged{
		ContractID: m.ContractID,
		EntityID:   m.ID,
		From:       string(from),
		To:         string(to),
	})

	return m, nil
}

// ExecuteModification executes an APPROVED modification and returns it with
// the updated parent contract.
func (s *Service) ExecuteModification(ctx context.Context, id uuid.UUID) (*Modification, *Contract, error) {
	m, err := s.repo.GetModification(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if !CanExecute(m.Status) {
		return nil, nil, fmt.Errorf("%w: cannot execute a modification that is %s", ErrInvalidTransition, m.Status.Label())
	}

	executed, c, err := s.repo.ExecuteModification(ctx, id, s.now())
	if err != nil {
		return nil, nil, err
	}

	event := ModificationExecuted{
		ContractID:         c.ID,
		ModificationID:     executed.ID,
		ModificationNumber: executed.ModificationNumber,
		ValueChange:        executed.ValueChange,
		FundingChange:      executed.FundingChange,
		TotalValue:         c.TotalValue,
		FundedValue:        c.FundedValue,
		PopEndDate:         c.PopEndDate,
	}
	if executed.ExecutedAt != nil {
		event.ExecutedAt = *executed.ExecutedAt
	}

	s.publish(ctx, TopicModificationExecuted, event)

	return executed, c, nil
}

func (s *Service) CreateDeliverable(ctx context.Context, contractID uuid.UUID, params DeliverableParams) (*Deliverable, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetContract(ctx, contractID); err != nil {
		return nil, err
	}

	d := &Deliverable{ContractID: contractID, Status: DeliverableStatusPending}
	params.apply(d)

	if err := s.repo.CreateDeliverable(ctx, d); err != nil {
		return nil, err
	}

	s.publish(ctx, TopicDeliverableCreated, EntityChanged{ContractID: contractID, EntityID: d.ID, Number: d.CdrlNumber})

	return d, nil
}

func (s *Service) UpdateDeliverable(ctx context.Context, id uuid.UUID, params DeliverableParams) (*Deliverable, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	d, err := s.repo.GetDeliverable(ctx, id)
	if err != nil {
		return nil, err
	}

	params.apply(d)

	if err := s.repo.UpdateDeliverable(ctx, d); err != nil {
		return nil, err
	}

	s.publish(ctx, TopicDeliverableUpdated, EntityChanged{ContractID: d.ContractID, EntityID: d.ID, Number: d.CdrlNumber})

	return d, nil
}

func (s *Service) GetDeliverable(ctx context.Context, id uuid.UUID) (*Deliverable, error) {
	return s.repo.GetDeliverable(ctx, id)
}

func (s *Service) ListDeliverables(ctx context.Context, contractID uuid.UUID) ([]*Deliverable, error) {
	return s.repo.ListDeliverables(ctx, contractID)
}

// UpdateDeliverableStatus records a review step. The first submission and
// the acceptance are timestamped; accepted and waived deliverables are final.
func (s *Service) UpdateDeliverableStatus(ctx context.Context, id uuid.UUID, status DeliverableStatus) (*Deliverable, error) {
	if !slices.Contains(DeliverableStatusValues(), status) {
		return nil, invalidStatus(status)
	}

	d, err := s.repo.GetDeliverable(ctx, id)
	if err != nil {
		return nil, err
	}

	if d.Status == status {
		return d, nil
	}

	if d.Status.Closed() {
		return nil, fmt.Errorf("%w: deliverable is %s", ErrInvalidTransition, d.Status.Label())
	}

	from := d.Status
	d.Status = status
	now := s.now()

	switch status {
	case DeliverableStatusSubmitted:
		if d.SubmittedAt == nil {
			d.SubmittedAt = new(now)
		}
	case DeliverableStatusAccepted:
		d.AcceptedAt = new(now)
	}

	if err := s.repo.UpdateDeliverable(ctx, d); err != nil {
		return nil, err
	}

	s.publish(ctx, TopicDeliverableStatusChanged, StatusChanged{
		ContractID: d.ContractID,
		EntityID:   d.ID,
		From:       string(from),
		To:         string(status),
	})

	return d, nil
}

func invalidStatus[T ~string](status T) error {
	return &ValidationError{Fields: map[string]string{"status": fmt.Sprintf("unknown value %q", status)}}
}
