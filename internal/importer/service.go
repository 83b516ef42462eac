package importer

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
	"github.com/joshuamatosdev/insight-sub001/internal/importer/schedule"
)

type Service struct {
	csvImporter  Importer
	xlsxImporter Importer
}

func NewService() *Service {
	return &Service{
		csvImporter:  schedule.NewParser(),
		xlsxImporter: schedule.NewWorkbookParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]contract.ClinParams, error) {
	var importer Importer

	switch format {
	case FormatCSV:
		importer = s.csvImporter
	case FormatXLSX:
		importer = s.xlsxImporter
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	return importer.Parse(r)
}

// FormatFromFilename picks the format from the file extension. Anything that
// is not a workbook is read as CSV.
func FormatFromFilename(name string) Format {
	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		return FormatXLSX
	}

	return FormatCSV
}
