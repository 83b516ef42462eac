package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/joshuamatosdev/insight-sub001/internal/client"
)

const exportTimeout = 2 * time.Minute

type exportState int

const (
	exportStateForm exportState = iota
	exportStateExporting
	exportStateResult
)

type exportChoice struct {
	doc client.Document
	dir string
}

// ExportModel downloads a contract report to a local directory.
type ExportModel struct {
	CommonModel
	client         Client
	contractID     uuid.UUID
	contractNumber string

	state   exportState
	choice  *exportChoice
	form    *huh.Form
	spinner spinner.Model

	path string
	err  error
}

func NewExportModel(c Client, contractID uuid.UUID, contractNumber string) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	choice := &exportChoice{doc: client.DocumentWorkbook, dir: "./reports"}

	return ExportModel{
		client:         c,
		contractID:     contractID,
		contractNumber: contractNumber,
		choice:         choice,
		form:           newExportForm(choice),
		spinner:        s,
	}
}

func newExportForm(c *exportChoice) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[client.Document]().
				Title("Format").
				Options(
					huh.NewOption("Excel workbook", client.DocumentWorkbook),
					huh.NewOption("PDF brief", client.DocumentBrief),
				).
				Value(&c.doc),
			huh.NewInput().
				Title("Output directory").
				Description("Created if it doesn't exist").
				Placeholder("./reports").
				Validate(required("directory")).
				Value(&c.dir),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) Title() string { return "Export Report" }

func (m ExportModel) ShortHelp() string {
	switch m.state {
	case exportStateResult:
		return "Esc: back"
	case exportStateExporting:
		return "Downloading..."
	}

	return "Esc: back | Enter: confirm"
}

func (m ExportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc && m.state != exportStateExporting {
		return m, Back
	}

	switch m.state {
	case exportStateForm:
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State != huh.StateCompleted {
			return m, cmd
		}

		m.state = exportStateExporting
		m.err = nil

		return m, tea.Batch(m.spinner.Tick, m.downloadCmd(*m.choice))

	case exportStateExporting:
		if result, ok := msg.(exportResultMsg); ok {
			m.state = exportStateResult
			m.path = result.path
			m.err = result.err

			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m ExportModel) View() string {
	switch m.state {
	case exportStateForm:
		return lipgloss.NewStyle().Padding(1).Render(
			titleStyle.Render("Report for "+m.contractNumber) + "\n\n" + m.form.View(),
		)
	case exportStateExporting:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("%s Rendering %s...", m.spinner.View(), m.contractNumber),
		)
	case exportStateResult:
		if m.err != nil {
			return lipgloss.NewStyle().Padding(1).Render(dangerStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		}

		return lipgloss.NewStyle().Padding(1).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				okStyle.Bold(true).Render("Export Complete!"),
				"",
				"Saved to "+m.path,
			),
		)
	}

	return ""
}

type exportResultMsg struct {
	path string
	err  error
}

func (m ExportModel) downloadCmd(choice exportChoice) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		body, name, err := m.client.Download(ctx, m.contractID, choice.doc)
		if err != nil {
			return exportResultMsg{err: err}
		}

		if err := os.MkdirAll(choice.dir, 0o755); err != nil {
			return exportResultMsg{err: fmt.Errorf("create output directory: %w", err)}
		}

		path := filepath.Join(choice.dir, filepath.Base(name))
		if err := os.WriteFile(path, body, 0o644); err != nil {
			return exportResultMsg{err: fmt.Errorf("write report: %w", err)}
		}

		return exportResultMsg{path: path}
	}
}
