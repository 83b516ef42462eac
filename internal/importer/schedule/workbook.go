package schedule

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
)

// WorkbookParser reads a CLIN schedule from the first sheet of an XLSX
// workbook. Header detection is the same as for CSV.
type WorkbookParser struct{}

func NewWorkbookParser() *WorkbookParser {
	return &WorkbookParser{}
}

func (p *WorkbookParser) Parse(r io.Reader) ([]contract.ClinParams, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoHeader
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}

	cols, headerIdx, ok := detectHeader(rows)
	if !ok {
		return nil, ErrNoHeader
	}

	return parseRows(cols, rows[headerIdx+1:])
}
