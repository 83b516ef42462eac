package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFilePick importState = iota
	importStateImporting
	importStateResult
)

// ImportModel uploads a CLIN schedule (CSV or XLSX) into a contract.
type ImportModel struct {
	CommonModel
	client     Client
	contractID uuid.UUID

	state      importState
	filePicker filepicker.Model

	status string
	err    error
}

func NewImportModel(c Client, contractID uuid.UUID) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".xlsx"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		client:     c,
		contractID: contractID,
		filePicker: fp,
	}
}

func (m ImportModel) Title() string { return "Import CLINs" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStateResult {
		return "Esc: back | Enter: import another"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.filePicker.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.state == importStateResult && msg.Type == tea.KeyEnter {
			m.state = importStateFilePick
			m.err = nil
			m.status = ""

			return m, m.filePicker.Init()
		}

	case importResultMsg:
		m.state = importStateResult
		m.err = msg.err

		if msg.err != nil {
			m.status = fmt.Sprintf("Import failed: %s", describe(msg.err))
			return m, nil
		}

		m.status = fmt.Sprintf("Imported %d CLINs from %s.", msg.count, msg.name)

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing from %s...", path)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			"Select a CLIN schedule (.csv or .xlsx):\n\n" + m.filePicker.View(),
		)
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewResult() string {
	style := dangerStyle
	if m.err == nil {
		style = okStyle
	}

	return lipgloss.NewStyle().Padding(2).Render(
		style.Render(m.status) + "\n\n" + faintStyle.Render("(Esc to go back)"),
	)
}

type importResultMsg struct {
	name  string
	count int
	err   error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		name := filepath.Base(path)

		clins, err := m.client.ImportClins(ctx, m.contractID, name, f)
		if err != nil {
			return importResultMsg{err: err}
		}

		return importResultMsg{name: name, count: len(clins)}
	}
}
