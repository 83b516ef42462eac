package view

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/joshuamatosdev/insight-sub001/internal/client"
	"github.com/joshuamatosdev/insight-sub001/internal/contract"
	"github.com/joshuamatosdev/insight-sub001/internal/dashboard"
	"github.com/joshuamatosdev/insight-sub001/internal/http/wire"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// Client is the part of the API the screens use. *client.HTTPClient
// satisfies it.
type Client interface {
	dashboard.Source
	ExecuteModification(ctx context.Context, contractID, modID uuid.UUID) (*contract.Modification, *contract.Contract, error)
	CreateDeliverable(ctx context.Context, contractID uuid.UUID, req wire.DeliverableRequest) (*contract.Deliverable, error)
	ImportClins(ctx context.Context, contractID uuid.UUID, filename string, file io.Reader) ([]*contract.Clin, error)
	Download(ctx context.Context, contractID uuid.UUID, doc client.Document) ([]byte, string, error)
}

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// OpenContractMsg asks the root model to show a contract.
type OpenContractMsg struct {
	ID uuid.UUID
}

// OpenImportMsg asks the root model to show the CLIN import for a contract.
type OpenImportMsg struct {
	ContractID uuid.UUID
}

// OpenExportMsg asks the root model to show the report download for a
// contract.
type OpenExportMsg struct {
	ContractID     uuid.UUID
	ContractNumber string
}
