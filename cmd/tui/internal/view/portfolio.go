package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
	"github.com/joshuamatosdev/insight-sub001/internal/dashboard"
)

type PortfolioModel struct {
	CommonModel
	client Client

	table     table.Model
	spinner   spinner.Model
	portfolio *dashboard.Portfolio

	// statusIdx 0 means all statuses, otherwise ContractStatusValues()[statusIdx-1].
	statusIdx int

	loading bool
	err     error
}

func NewPortfolioModel(c Client) PortfolioModel {
	columns := []table.Column{
		{Title: "Contract", Width: 20},
		{Title: "Title", Width: 30},
		{Title: "Status", Width: 11},
		{Title: "Value", Width: 14},
		{Title: "Funded", Width: 7},
		{Title: "Burn", Width: 7},
		{Title: "Remaining", Width: 14},
		{Title: "Overdue", Width: 7},
		{Title: "Mods", Width: 5},
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return PortfolioModel{
		client:  c,
		table:   newTable(columns, 15),
		spinner: s,
		loading: true,
	}
}

func (m PortfolioModel) Title() string { return "Portfolio" }

func (m PortfolioModel) ShortHelp() string {
	return "Enter: open | s: status filter | r: refresh | q: quit"
}

func (m PortfolioModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m PortfolioModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case portfolioLoadedMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.portfolio = msg.portfolio
			m.table.SetRows(portfolioRows(msg.portfolio))
		}

		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.table.SetHeight(max(msg.Height-12, 5))

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m.reload()
		case "s":
			m.statusIdx = (m.statusIdx + 1) % (len(contract.ContractStatusValues()) + 1)
			return m.reload()
		case "enter":
			if row, ok := m.selected(); ok {
				return m, func() tea.Msg { return OpenContractMsg{ID: row.Contract.ID} }
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m PortfolioModel) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m PortfolioModel) selected() (dashboard.Row, bool) {
	if m.portfolio == nil {
		return dashboard.Row{}, false
	}

	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.portfolio.Rows) {
		return dashboard.Row{}, false
	}

	return m.portfolio.Rows[idx], true
}

func (m PortfolioModel) filter() contract.ListFilter {
	if m.statusIdx == 0 {
		return contract.ListFilter{}
	}

	return contract.ListFilter{Status: new(contract.ContractStatusValues()[m.statusIdx-1])}
}

func (m PortfolioModel) statusLabel() string {
	if m.statusIdx == 0 {
		return "All"
	}

	return contract.ContractStatusValues()[m.statusIdx-1].Label()
}

func (m PortfolioModel) View() string {
	header := titleStyle.Render("Contract Portfolio") + "  " +
		fmt.Sprintf("[s] Status: %s", activeStyle(m.statusLabel()))

	if m.loading {
		return lipgloss.NewStyle().Padding(1).Render(
			header + "\n\n" + m.spinner.View() + " Loading contracts...",
		)
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(1).Render(
			header + "\n\n" + dangerStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" + faintStyle.Render("r: retry"),
		)
	}

	parts := []string{header, ""}

	if m.portfolio.Partial() {
		parts = append(parts, warnStyle.Render(failureLine(m.portfolio.Failures)), "")
	}

	parts = append(parts, boxStyle.Render(m.table.View()), totalsLine(m.portfolio.Totals))

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func portfolioRows(p *dashboard.Portfolio) []table.Row {
	rows := make([]table.Row, 0, len(p.Rows))

	for _, r := range p.Rows {
		c := r.Contract
		row := table.Row{
			c.ContractNumber,
			c.Title,
			c.Status.Label(),
			money(c.TotalValue),
			contract.FormatPercent(contract.FundingPercentage(c.FundedValue, c.TotalValue)),
			"N/A",
			"N/A",
			"N/A",
			"N/A",
		}

		if s := r.Summary; s != nil {
			row[5] = contract.FormatPercent(s.BurnRate)
			row[6] = money(s.RemainingFunds)
			row[7] = strconv.Itoa(s.OverdueDeliverables)
			row[8] = strconv.Itoa(s.PendingModifications)
		}

		rows = append(rows, row)
	}

	return rows
}

func totalsLine(t dashboard.Totals) string {
	return fmt.Sprintf(
		"%d contracts | Value %s | Funded %s (%s) | Burn %s | Remaining %s | Overdue %s | Pending mods %d",
		t.Contracts,
		money(t.TotalValue),
		money(t.FundedValue),
		contract.FormatPercent(t.FundingPercentage()),
		contract.FormatPercent(t.BurnRate()),
		remaining(t.RemainingFunds),
		count(t.OverdueDeliverables, dangerStyle),
		t.PendingModifications,
	)
}

// failureLine is the partial-data warning shown above a degraded page.
func failureLine(failures []dashboard.Failure) string {
	names := make([]string, len(failures))
	for i, f := range failures {
		names[i] = f.Source
	}

	return "Partial data, could not load: " + strings.Join(names, ", ") + " (r to retry)"
}

type portfolioLoadedMsg struct {
	portfolio *dashboard.Portfolio
	err       error
}

func (m PortfolioModel) loadCmd() tea.Cmd {
	filter := m.filter()

	return func() tea.Msg {
		ctx, cancel := APICtx()
		defer cancel()

		p, err := dashboard.LoadPortfolio(ctx, m.client, filter)

		return portfolioLoadedMsg{portfolio: p, err: err}
	}
}
