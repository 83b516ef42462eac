package main

import (
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/joshuamatosdev/insight-sub001/cmd/tui/internal/view"
	"github.com/joshuamatosdev/insight-sub001/internal/client"
	"github.com/joshuamatosdev/insight-sub001/internal/config"
)

type screen int

const (
	screenPortfolio screen = iota
	screenContract
	screenImport
	screenExport
)

type model struct {
	client view.Client
	window time.Duration
	size   tea.WindowSizeMsg

	current screen

	portfolioView view.PortfolioModel
	contractView  view.ContractModel
	importView    view.ImportModel
	exportView    view.ExportModel
}

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	c := client.NewHTTPClient(cfg.Client.BaseURL, cfg.Client.Token, cfg.Client.Timeout)

	return model{
		client:        c,
		window:        cfg.Deliverables.DueSoonWindow,
		current:       screenPortfolio,
		portfolioView: view.NewPortfolioModel(c),
	}
}

func (m model) Init() tea.Cmd {
	return m.portfolioView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (msg.String() == "q" && m.current == screenPortfolio) {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.size = msg

	case view.OpenContractMsg:
		m.contractView = view.NewContractModel(m.client, msg.ID, m.window)
		m.current = screenContract

		return m, tea.Batch(m.contractView.Init(), m.resize())

	case view.OpenImportMsg:
		m.importView = view.NewImportModel(m.client, msg.ContractID)
		m.current = screenImport

		return m, tea.Batch(m.importView.Init(), m.resize())

	case view.OpenExportMsg:
		m.exportView = view.NewExportModel(m.client, msg.ContractID, msg.ContractNumber)
		m.current = screenExport

		return m, tea.Batch(m.exportView.Init(), m.resize())

	case view.BackMsg:
		switch m.current {
		case screenImport, screenExport:
			m.current = screenContract
			return m, m.contractView.Init()
		default:
			m.current = screenPortfolio
			return m, m.portfolioView.Init()
		}
	}

	var (
		next tea.Model
		cmd  tea.Cmd
	)

	switch m.current {
	case screenPortfolio:
		next, cmd = m.portfolioView.Update(msg)
		m.portfolioView = next.(view.PortfolioModel)
	case screenContract:
		next, cmd = m.contractView.Update(msg)
		m.contractView = next.(view.ContractModel)
	case screenImport:
		next, cmd = m.importView.Update(msg)
		m.importView = next.(view.ImportModel)
	case screenExport:
		next, cmd = m.exportView.Update(msg)
		m.exportView = next.(view.ExportModel)
	}

	return m, cmd
}

// resize replays the last window size to a freshly opened screen.
func (m model) resize() tea.Cmd {
	if m.size.Width == 0 {
		return nil
	}

	size := m.size

	return func() tea.Msg { return size }
}

func (m model) active() view.View {
	switch m.current {
	case screenContract:
		return m.contractView
	case screenImport:
		return m.importView
	case screenExport:
		return m.exportView
	}

	return m.portfolioView
}

func (m model) View() string {
	v := m.active()

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Render("Insight") +
		lipgloss.NewStyle().Faint(true).Render(" / "+v.Title())
	footer := lipgloss.NewStyle().Faint(true).Render(v.ShortHelp())

	return lipgloss.JoinVertical(lipgloss.Left, header, v.View(), footer)
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
