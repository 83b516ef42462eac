package importer

import (
	"io"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
)

// Format identifies the file layout of a CLIN schedule.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

type Importer interface {
	Parse(r io.Reader) ([]contract.ClinParams, error)
}
