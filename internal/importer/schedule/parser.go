package schedule

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
	enc "github.com/joshuamatosdev/insight-sub001/internal/encoding"
)

var ErrNoHeader = errors.New("no CLIN header found: expected a CLIN number column and at least one of description, type, pricing, value, funded or invoiced")

// delimiters are tried in order; the first one that yields a header wins.
var delimiters = []rune{';', ','}

// Parser reads CLIN schedules exported as CSV. The delimiter, the header row
// and the text encoding are detected.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]contract.ClinParams, error) {
	utf8r, charset, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	slog.Debug("reading CLIN schedule", "charset", charset)

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	for _, comma := range delimiters {
		rows, err := readCSV(data, comma)
		if err != nil {
			continue
		}

		cols, headerIdx, ok := detectHeader(rows)
		if !ok {
			continue
		}

		return parseRows(cols, rows[headerIdx+1:])
	}

	return nil, ErrNoHeader
}

func readCSV(data []byte, comma rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	return rows, nil
}
