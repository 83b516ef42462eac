package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
)

const (
	SheetSummary       = "Summary"
	SheetClins         = "CLINs"
	SheetModifications = "Modifications"
	SheetDeliverables  = "Deliverables"
)

const (
	moneyFormat   = `"$"#,##0.00;[Red]-"$"#,##0.00`
	percentFormat = `0.0"%"`
	dateFormat    = "mmm d, yyyy"
)

type styles struct {
	header  int
	money   int
	percent int
	date    int
	danger  int
}

func newStyles(f *excelize.File) (styles, error) {
	var (
		s   styles
		err error
	)

	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.header, &excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DCE6F1"}},
		}},
		{&s.money, &excelize.Style{CustomNumFmt: new(moneyFormat)}},
		{&s.percent, &excelize.Style{CustomNumFmt: new(percentFormat)}},
		{&s.date, &excelize.Style{CustomNumFmt: new(dateFormat)}},
		{&s.danger, &excelize.Style{Font: &excelize.Font{Bold: true, Color: "C00000"}}},
	}

	for _, d := range defs {
		if *d.dst, err = f.NewStyle(d.style); err != nil {
			return s, fmt.Errorf("create style: %w", err)
		}
	}

	return s, nil
}

// XLSX renders the workbook: a Summary sheet followed by one sheet per
// collection. Money is written as numbers so the sheet can be re-totalled.
func XLSX(d Data) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for _, name := range []string{SheetClins, SheetModifications, SheetDeliverables} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	writers := []func(*excelize.File, styles, Data) error{
		writeSummary,
		writeClins,
		writeModifications,
		writeDeliverables,
	}

	for _, write := range writers {
		if err := write(f, st, d); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

// sheetWriter collects the first error so rows can be written without
// checking each call.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) row(n int, values ...any) {
	if w.err != nil {
		return
	}

	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		w.err = err
		return
	}

	w.err = w.f.SetSheetRow(w.sheet, cell, &values)
}

func (w *sheetWriter) style(col, row int, style int) {
	w.styleRange(col, row, col, row, style)
}

func (w *sheetWriter) styleRange(fromCol, fromRow, toCol, toRow int, style int) {
	if w.err != nil {
		return
	}

	from, err := excelize.CoordinatesToCellName(fromCol, fromRow)
	if err != nil {
		w.err = err
		return
	}

	to, err := excelize.CoordinatesToCellName(toCol, toRow)
	if err != nil {
		w.err = err
		return
	}

	w.err = w.f.SetCellStyle(w.sheet, from, to, style)
}

func (w *sheetWriter) widths(widths ...float64) {
	for i, width := range widths {
		if w.err != nil {
			return
		}

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			w.err = err
			return
		}

		w.err = w.f.SetColWidth(w.sheet, col, col, width)
	}
}

func (w *sheetWriter) done() error {
	if w.err != nil {
		return fmt.Errorf("write sheet %s: %w", w.sheet, w.err)
	}

	return nil
}

func writeSummary(f *excelize.File, st styles, d Data) error {
	c, s := d.Contract, d.Summary
	w := &sheetWriter{f: f, sheet: SheetSummary}

	rows := []struct {
		label string
		value any
		style int
	}{
		{"Contract Number", c.ContractNumber, 0},
		{"Title", c.Title, 0},
		{"Agency", c.AgencyName, 0},
		{"Contract Type", c.ContractType.Label(), 0},
		{"Status", c.Status.Label(), 0},
		{"PoP Start", cellDate(c.PopStartDate), st.date},
		{"PoP End", cellDate(c.PopEndDate), st.date},
		{"PoP Days Remaining", cellInt(s.PopDaysRemaining), 0},
		{"Total Value", money(s.TotalValue), st.money},
		{"Funded Value", money(s.FundedValue), st.money},
		{"Funding", s.FundingPercentage, st.percent},
		{"CLINs", s.ClinCount, 0},
		{"CLIN Total Value", money(s.ClinTotalValue), st.money},
		{"CLIN Funded", money(s.ClinFundedAmount), st.money},
		{"CLIN Invoiced", money(s.ClinInvoicedAmount), st.money},
		{"Remaining Funds", money(s.RemainingFunds), st.money},
		{"Burn Rate", s.BurnRate, st.percent},
		{"Modifications", s.ModificationCount, 0},
		{"Pending Modifications", s.PendingModifications, 0},
		{"Pending Options", s.PendingOptions, 0},
		{"Executed Modifications", s.ExecutedModifications, 0},
		{"Executed Value Change", money(s.ExecutedValueChange), st.money},
		{"Executed Funding Change", money(s.ExecutedFundingChange), st.money},
		{"Deliverables", s.DeliverableCount, 0},
		{"Overdue Deliverables", s.OverdueDeliverables, 0},
		{"Due Soon Deliverables", s.DueSoonDeliverables, 0},
		{"Generated", d.GeneratedAt.Format("Jan 2, 2006 15:04 MST"), 0},
	}

	for i, r := range rows {
		w.row(i+1, r.label, r.value)
		w.style(1, i+1, st.header)

		if r.style != 0 {
			w.style(2, i+1, r.style)
		}
	}

	w.widths(28, 48)

	return w.done()
}

func writeClins(f *excelize.File, st styles, d Data) error {
	w := &sheetWriter{f: f, sheet: SheetClins}

	w.row(1, "CLIN", "Description", "Type", "Pricing", "Total Value", "Funded", "Invoiced", "Remaining")
	w.styleRange(1, 1, 8, 1, st.header)

	for i, c := range d.Clins {
		w.row(i+2,
			c.ClinNumber,
			c.Description,
			c.ClinType.Label(),
			c.PricingType.Label(),
			nullMoney(c.TotalValue),
			nullMoney(c.FundedAmount),
			nullMoney(c.InvoicedAmount),
			nullMoney(c.RemainingFunds),
		)
	}

	if n := len(d.Clins); n > 0 {
		totals := contract.SumClins(d.Clins)
		w.row(n+2, "Total", "", "", "",
			money(totals.TotalValue),
			money(totals.FundedAmount),
			money(totals.InvoicedAmount),
			money(totals.RemainingFunds),
		)
		w.style(1, n+2, st.header)
		w.styleRange(5, 2, 8, n+2, st.money)
	}

	w.widths(10, 40, 20, 22, 16, 16, 16, 16)

	return w.done()
}

func writeModifications(f *excelize.File, st styles, d Data) error {
	w := &sheetWriter{f: f, sheet: SheetModifications}

	w.row(1, "Number", "Title", "Type", "Status", "Value Change", "Funding Change", "PoP Extension (days)", "Effective", "Executed")
	w.styleRange(1, 1, 9, 1, st.header)

	for i, m := range d.Modifications {
		w.row(i+2,
			m.ModificationNumber,
			m.Title,
			m.ModificationType.Label(),
			m.Status.Label(),
			nullMoney(m.ValueChange),
			nullMoney(m.FundingChange),
			cellInt(m.PopExtensionDays),
			cellDate(m.EffectiveDate),
			cellDate(m.ExecutedAt),
		)
	}

	if n := len(d.Modifications); n > 0 {
		w.styleRange(5, 2, 6, n+1, st.money)
		w.styleRange(8, 2, 9, n+1, st.date)
	}

	w.widths(12, 40, 22, 14, 16, 16, 20, 14, 14)

	return w.done()
}

func writeDeliverables(f *excelize.File, st styles, d Data) error {
	w := &sheetWriter{f: f, sheet: SheetDeliverables}

	w.row(1, "CDRL", "Title", "Frequency", "Status", "Due", "Submitted", "Accepted", "Flag")
	w.styleRange(1, 1, 8, 1, st.header)

	sorted := contract.SortUpcoming(d.Deliverables)

	for i, del := range sorted {
		row := i + 2
		w.row(row,
			del.CdrlNumber,
			del.Title,
			del.Frequency.Label(),
			del.Status.Label(),
			cellDate(del.DueDate),
			cellDate(del.SubmittedAt),
			cellDate(del.AcceptedAt),
			deliverableFlag(del, d),
		)

		if contract.IsOverdue(del, d.GeneratedAt) {
			w.style(8, row, st.danger)
		}
	}

	if n := len(sorted); n > 0 {
		w.styleRange(5, 2, 7, n+1, st.date)
	}

	w.widths(10, 40, 16, 18, 14, 14, 14, 12)

	return w.done()
}

func deliverableFlag(del *contract.Deliverable, d Data) string {
	switch {
	case contract.IsOverdue(del, d.GeneratedAt):
		return "Overdue"
	case contract.IsDueSoon(del, d.GeneratedAt, d.DueSoonWindow):
		return "Due soon"
	}

	return ""
}

func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// nullMoney leaves the cell empty for null amounts.
func nullMoney(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}

	return d.Decimal.InexactFloat64()
}
