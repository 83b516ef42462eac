package view

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/joshuamatosdev/insight-sub001/internal/client"
	"github.com/joshuamatosdev/insight-sub001/internal/contract"
	"github.com/joshuamatosdev/insight-sub001/internal/dashboard"
)

type tab int

const (
	tabOverview tab = iota
	tabClins
	tabModifications
	tabDeliverables
)

var tabNames = []string{"Overview", "CLINs", "Modifications", "Deliverables"}

// deliverableGroup is one section of the deliverables tab.
type deliverableGroup struct {
	name  string
	items []*contract.Deliverable
}

type ContractModel struct {
	CommonModel
	client Client
	id     uuid.UUID
	window time.Duration
	now    func() time.Time

	tab     tab
	page    *dashboard.ContractPage
	spinner spinner.Model

	clinTable table.Model
	modTable  table.Model
	delTable  table.Model

	// deliverables lists the deliverables in table order.
	deliverables []*contract.Deliverable

	form  *huh.Form
	draft *deliverableDraft

	loading bool
	err     error
	status  string
}

func NewContractModel(c Client, id uuid.UUID, window time.Duration) ContractModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ContractModel{
		client:  c,
		id:      id,
		window:  window,
		now:     time.Now,
		spinner: s,
		loading: true,
		clinTable: newTable([]table.Column{
			{Title: "CLIN", Width: 8},
			{Title: "Description", Width: 30},
			{Title: "Type", Width: 10},
			{Title: "Pricing", Width: 12},
			{Title: "Value", Width: 14},
			{Title: "Funded", Width: 14},
			{Title: "Invoiced", Width: 14},
			{Title: "Remaining", Width: 14},
		}, 12),
		modTable: newTable([]table.Column{
			{Title: "Mod", Width: 8},
			{Title: "Title", Width: 28},
			{Title: "Type", Width: 20},
			{Title: "Status", Width: 13},
			{Title: "Value Δ", Width: 13},
			{Title: "Funding Δ", Width: 13},
			{Title: "Effective", Width: 13},
		}, 12),
		delTable: newTable([]table.Column{
			{Title: "Group", Width: 12},
			{Title: "CDRL", Width: 8},
			{Title: "Title", Width: 30},
			{Title: "Status", Width: 17},
			{Title: "Due", Width: 13},
			{Title: "Frequency", Width: 14},
		}, 12),
	}
}

func (m ContractModel) Title() string { return "Contract" }

func (m ContractModel) ShortHelp() string {
	if m.form != nil {
		return "Navigate form | Esc: cancel"
	}

	help := "Tab: next tab | r: refresh | i: import CLINs | e: export | Esc: back"

	switch m.tab {
	case tabModifications:
		if m.canExecuteSelected() {
			help = "x: execute | " + help
		}
	case tabDeliverables:
		help = "a: add deliverable | " + help
	}

	return help
}

func (m ContractModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m ContractModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case contractLoadedMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.setPage(msg.page)
		}

		return m, nil

	case executedMsg:
		if msg.err != nil {
			m.status = dangerStyle.Render(fmt.Sprintf("Execute failed: %v", msg.err))
			return m, nil
		}

		m.status = okStyle.Render(fmt.Sprintf("Executed %s", msg.mod.ModificationNumber))

		return m.reload()

	case deliverableCreatedMsg:
		if msg.err != nil {
			m.status = dangerStyle.Render(fmt.Sprintf("Could not add deliverable: %s", describe(msg.err)))
			return m, nil
		}

		m.status = okStyle.Render(fmt.Sprintf("Added %s", msg.deliverable.Title))

		return m.reload()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		h := max(msg.Height-14, 5)
		m.clinTable.SetHeight(h)
		m.modTable.SetHeight(h)
		m.delTable.SetHeight(h)

		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "r":
		m.status = ""
		return m.reload()
	case "tab", "right":
		m.tab = (m.tab + 1) % tab(len(tabNames))
		return m, nil
	case "shift+tab", "left":
		m.tab = (m.tab + tab(len(tabNames)) - 1) % tab(len(tabNames))
		return m, nil
	case "1", "2", "3", "4":
		m.tab = tab(keyMsg.String()[0] - '1')
		return m, nil
	case "i":
		return m, func() tea.Msg { return OpenImportMsg{ContractID: m.id} }
	case "e":
		if m.page == nil {
			return m, nil
		}

		number := m.page.Contract.ContractNumber

		return m, func() tea.Msg { return OpenExportMsg{ContractID: m.id, ContractNumber: number} }
	case "x":
		if m.tab == tabModifications {
			return m.execute()
		}
	case "a":
		if m.tab == tabDeliverables && m.page != nil {
			return m.openForm()
		}
	}

	var cmd tea.Cmd

	switch m.tab {
	case tabClins:
		m.clinTable, cmd = m.clinTable.Update(msg)
	case tabModifications:
		m.modTable, cmd = m.modTable.Update(msg)
	case tabDeliverables:
		m.delTable, cmd = m.delTable.Update(msg)
	}

	return m, cmd
}

func (m ContractModel) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m *ContractModel) setPage(page *dashboard.ContractPage) {
	m.page = page
	m.clinTable.SetRows(clinRows(page.Clins))
	m.modTable.SetRows(modificationRows(page.Modifications))

	groups := deliverableGroups(page.Board)
	m.deliverables = m.deliverables[:0]

	for _, g := range groups {
		m.deliverables = append(m.deliverables, g.items...)
	}

	m.delTable.SetRows(deliverableRows(groups))
}

func (m ContractModel) selectedModification() (*contract.Modification, bool) {
	if m.page == nil {
		return nil, false
	}

	idx := m.modTable.Cursor()
	if idx < 0 || idx >= len(m.page.Modifications) {
		return nil, false
	}

	return m.page.Modifications[idx], true
}

// canExecuteSelected gates the execute action on the selected modification
// being APPROVED.
func (m ContractModel) canExecuteSelected() bool {
	mod, ok := m.selectedModification()
	return ok && contract.CanExecute(mod.Status)
}

func (m ContractModel) execute() (tea.Model, tea.Cmd) {
	mod, ok := m.selectedModification()
	if !ok {
		return m, nil
	}

	if !contract.CanExecute(mod.Status) {
		m.status = warnStyle.Render(fmt.Sprintf("%s is %s; only approved modifications can be executed", mod.ModificationNumber, mod.Status.Label()))
		return m, nil
	}

	m.status = fmt.Sprintf("Executing %s...", mod.ModificationNumber)

	return m, m.executeCmd(mod.ID)
}

func (m ContractModel) openForm() (tea.Model, tea.Cmd) {
	m.draft = &deliverableDraft{frequency: contract.DeliverableFrequencyOneTime}
	m.form = newDeliverableForm(m.draft)
	m.delTable.Blur()

	return m, m.form.Init()
}

func (m ContractModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.form = nil
		m.draft = nil
		m.delTable.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		draft := m.draft
		m.form = nil
		m.draft = nil
		m.delTable.Focus()

		return m, m.createDeliverableCmd(draft)
	case huh.StateAborted:
		m.form = nil
		m.draft = nil
		m.delTable.Focus()

		return m, nil
	}

	return m, cmd
}

func (m ContractModel) View() string {
	if m.loading && m.page == nil {
		return lipgloss.NewStyle().Padding(1).Render(m.spinner.View() + " Loading contract...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			dangerStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" + faintStyle.Render("r: retry | Esc: back"),
		)
	}

	c := m.page.Contract
	parts := []string{
		titleStyle.Render(c.ContractNumber) + "  " + c.Title + "  " + faintStyle.Render(c.Status.Label()),
		m.tabBar(),
	}

	if m.page.Partial() {
		parts = append(parts, warnStyle.Render(failureLine(m.page.Failures)))
	}

	if m.status != "" {
		parts = append(parts, m.status)
	}

	parts = append(parts, "")

	switch m.tab {
	case tabOverview:
		parts = append(parts, overview(m.page))
	case tabClins:
		parts = append(parts, boxStyle.Render(m.clinTable.View()), clinTotals(m.page.Summary))
	case tabModifications:
		parts = append(parts, boxStyle.Render(m.modTable.View()))
	case tabDeliverables:
		content := boxStyle.Render(m.delTable.View())

		if m.form != nil {
			panel := lipgloss.NewStyle().
				Padding(1, 2).
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).
				Width(52).
				Render("Add Deliverable\n\n" + m.form.View())

			content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
		}

		parts = append(parts, content)
	}

	if m.loading {
		parts = append(parts, m.spinner.View()+" Refreshing...")
	}

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m ContractModel) tabBar() string {
	names := make([]string, len(tabNames))

	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if tab(i) == m.tab {
			names[i] = activeStyle("[" + label + "]")
		} else {
			names[i] = faintStyle.Render(" " + label + " ")
		}
	}

	return strings.Join(names, " ")
}

func overview(p *dashboard.ContractPage) string {
	c := p.Contract
	s := p.Summary

	pop := "N/A"
	if s.PopDaysRemaining != nil {
		pop = strconv.Itoa(*s.PopDaysRemaining) + " days"
	}

	lines := [][2]string{
		{"Agency", orNA(c.AgencyName)},
		{"Type", c.ContractType.Label()},
		{"Total value", money(c.TotalValue)},
		{"Funded value", money(c.FundedValue) + " (" + contract.FormatPercent(s.FundingPercentage) + ")"},
		{"CLIN funded", money(s.ClinFundedAmount)},
		{"CLIN invoiced", money(s.ClinInvoicedAmount) + " (burn " + contract.FormatPercent(s.BurnRate) + ")"},
		{"Remaining funds", remaining(s.RemainingFunds)},
		{"Period of performance", contract.FormatDate(c.PopStartDate) + " to " + contract.FormatDate(c.PopEndDate)},
		{"PoP remaining", pop},
		{"Pending modifications", fmt.Sprintf("%d (%d options)", s.PendingModifications, s.PendingOptions)},
		{"Executed changes", fmt.Sprintf("%s value, %s funding", money(s.ExecutedValueChange), money(s.ExecutedFundingChange))},
		{"Overdue deliverables", count(s.OverdueDeliverables, dangerStyle)},
		{"Due soon", count(s.DueSoonDeliverables, warnStyle)},
		{"Contracting officer", contact(c.Contacts.ContractingOfficerName, c.Contacts.ContractingOfficerEmail)},
		{"COR", contact(c.Contacts.CORName, c.Contacts.COREmail)},
		{"Program manager", orNA(c.Contacts.ProgramManagerName)},
	}

	label := lipgloss.NewStyle().Width(24).Foreground(lipgloss.Color("245"))

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(label.Render(l[0]) + l[1] + "\n")
	}

	return b.String()
}

func clinTotals(s contract.Summary) string {
	return fmt.Sprintf("%d CLINs | Value %s | Funded %s | Invoiced %s | Remaining %s",
		s.ClinCount,
		money(s.ClinTotalValue),
		money(s.ClinFundedAmount),
		money(s.ClinInvoicedAmount),
		remaining(s.RemainingFunds),
	)
}

func clinRows(clins []*contract.Clin) []table.Row {
	rows := make([]table.Row, 0, len(clins))
	for _, c := range clins {
		rows = append(rows, table.Row{
			c.ClinNumber,
			c.Description,
			c.ClinType.Label(),
			c.PricingType.Label(),
			contract.FormatNullCurrency(c.TotalValue),
			contract.FormatNullCurrency(c.FundedAmount),
			contract.FormatNullCurrency(c.InvoicedAmount),
			contract.FormatNullCurrency(c.RemainingFunds),
		})
	}

	return rows
}

func modificationRows(mods []*contract.Modification) []table.Row {
	rows := make([]table.Row, 0, len(mods))
	for _, mod := range mods {
		rows = append(rows, table.Row{
			mod.ModificationNumber,
			mod.Title,
			mod.ModificationType.Label(),
			mod.Status.Label(),
			contract.FormatNullCurrency(mod.ValueChange),
			contract.FormatNullCurrency(mod.FundingChange),
			contract.FormatDate(mod.EffectiveDate),
		})
	}

	return rows
}

func deliverableGroups(b contract.Board) []deliverableGroup {
	return []deliverableGroup{
		{name: "Overdue", items: b.Overdue},
		{name: "Due soon", items: b.DueSoon},
		{name: "In progress", items: b.InProgress},
		{name: "Submitted", items: b.Submitted},
		{name: "Upcoming", items: b.Upcoming},
		{name: "Accepted", items: b.Accepted},
	}
}

func deliverableRows(groups []deliverableGroup) []table.Row {
	var rows []table.Row

	for _, g := range groups {
		for _, d := range g.items {
			rows = append(rows, table.Row{
				g.name,
				d.CdrlNumber,
				d.Title,
				d.Status.Label(),
				contract.FormatDate(d.DueDate),
				d.Frequency.Label(),
			})
		}
	}

	return rows
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}

	return s
}

func contact(name, email string) string {
	if email == "" {
		return orNA(name)
	}

	return orNA(name) + " <" + email + ">"
}

// Messages

type contractLoadedMsg struct {
	page *dashboard.ContractPage
	err  error
}

func (m ContractModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		page, err := dashboard.LoadContract(ctx, m.client, m.id, m.now(), m.window)

		return contractLoadedMsg{page: page, err: err}
	}
}

type executedMsg struct {
	mod *contract.Modification
	err error
}

func (m ContractModel) executeCmd(modID uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		mod, _, err := m.client.ExecuteModification(ctx, m.id, modID)

		return executedMsg{mod: mod, err: err}
	}
}

type deliverableCreatedMsg struct {
	deliverable *contract.Deliverable
	err         error
}

func (m ContractModel) createDeliverableCmd(draft *deliverableDraft) tea.Cmd {
	return func() tea.Msg {
		req, err := draft.request()
		if err != nil {
			return deliverableCreatedMsg{err: err}
		}

		ctx, cancel := APICtx()
		defer cancel()

		d, err := m.client.CreateDeliverable(ctx, m.id, req)

		return deliverableCreatedMsg{deliverable: d, err: err}
	}
}

// describe renders an error with any per-field messages the API returned.
func describe(err error) string {
	var fields map[string]string

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		fields = apiErr.Fields
	}

	var valErr *contract.ValidationError
	if errors.As(err, &valErr) {
		fields = valErr.Fields
	}

	if len(fields) == 0 {
		return err.Error()
	}

	msgs := make([]string, 0, len(fields))
	for field, msg := range fields {
		msgs = append(msgs, field+": "+msg)
	}

	slices.Sort(msgs)

	return strings.Join(msgs, "; ")
}
