package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
)

const (
	fontFamily   = "Helvetica"
	maxBriefRows = 8
)

// brief wraps gofpdf with the core-font translator so UTF-8 text renders
// in the cp1252 core fonts.
type brief struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// PDF renders a one-page portrait brief: header, financial position,
// modifications and the next deliverables.
func PDF(d Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(false, 15)
	pdf.AddPage()

	b := &brief{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	c, s := d.Contract, d.Summary

	b.text("B", 16, c.ContractNumber)
	b.text("", 12, c.Title)
	b.text("", 9, fmt.Sprintf("%s | %s | %s", orNA(c.AgencyName), c.ContractType.Label(), c.Status.Label()))
	b.text("", 9, fmt.Sprintf("Period of performance: %s to %s (%s)",
		contract.FormatDate(c.PopStartDate), contract.FormatDate(c.PopEndDate), popRemaining(s.PopDaysRemaining)))
	pdf.Ln(4)

	b.section("Financial Position")
	b.table([]float64{60, 45}, [][]string{
		{"Total value", contract.FormatCurrency(&s.TotalValue)},
		{"Funded value", contract.FormatCurrency(&s.FundedValue)},
		{"Funding", contract.FormatPercent(s.FundingPercentage)},
		{"CLIN invoiced", contract.FormatCurrency(&s.ClinInvoicedAmount)},
		{"Burn rate", contract.FormatPercent(s.BurnRate)},
	}, false)
	b.remaining(s)
	pdf.Ln(4)

	b.section("Modifications")
	b.text("", 10, fmt.Sprintf("%d total, %d pending (%d option exercises), %d executed",
		s.ModificationCount, s.PendingModifications, s.PendingOptions, s.ExecutedModifications))
	b.text("", 10, fmt.Sprintf("Executed changes: value %s, funding %s",
		contract.FormatCurrency(&s.ExecutedValueChange), contract.FormatCurrency(&s.ExecutedFundingChange)))
	pdf.Ln(4)

	b.section("Deliverables")
	b.text("", 10, fmt.Sprintf("%d total, %d overdue, %d due soon",
		s.DeliverableCount, s.OverdueDeliverables, s.DueSoonDeliverables))
	b.deliverables(d)
	pdf.Ln(4)

	b.section("Points of Contact")
	b.contacts(c.Contacts)

	pdf.SetY(-20)
	b.text("I", 8, "Generated "+d.GeneratedAt.Format("Jan 2, 2006 15:04 MST"))

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func (b *brief) text(style string, size float64, s string) {
	b.pdf.SetFont(fontFamily, style, size)
	b.pdf.CellFormat(0, size*0.5, b.tr(s), "", 1, "L", false, 0, "")
}

func (b *brief) section(title string) {
	b.pdf.SetFont(fontFamily, "B", 12)
	b.pdf.CellFormat(0, 7, b.tr(title), "B", 1, "L", false, 0, "")
	b.pdf.Ln(1)
}

func (b *brief) table(widths []float64, rows [][]string, header bool) {
	for i, row := range rows {
		style := ""
		if header && i == 0 {
			style = "B"
		}

		b.pdf.SetFont(fontFamily, style, 9)

		for col, cell := range row {
			align := "L"
			if col > 0 && !header {
				align = "R"
			}

			b.pdf.CellFormat(widths[col], 6, b.tr(cell), "1", 0, align, false, 0, "")
		}

		b.pdf.Ln(-1)
	}
}

// remaining draws the remaining-funds row, in red when CLIN invoicing has
// overrun funding.
func (b *brief) remaining(s contract.Summary) {
	b.pdf.SetFont(fontFamily, "B", 9)
	b.pdf.CellFormat(60, 6, "Remaining funds", "1", 0, "L", false, 0, "")

	if s.RemainingFunds.IsNegative() {
		b.pdf.SetTextColor(192, 0, 0)
	}

	b.pdf.CellFormat(45, 6, contract.FormatCurrency(&s.RemainingFunds), "1", 1, "R", false, 0, "")
	b.pdf.SetTextColor(0, 0, 0)
}

func (b *brief) deliverables(d Data) {
	var rows [][]string

	for _, del := range contract.SortUpcoming(d.Deliverables) {
		if del.Status.Closed() {
			continue
		}

		if len(rows) == maxBriefRows {
			break
		}

		rows = append(rows, []string{
			orNA(del.CdrlNumber),
			truncate(del.Title, 48),
			del.Status.Label(),
			contract.FormatDate(del.DueDate),
			deliverableFlag(del, d),
		})
	}

	if len(rows) == 0 {
		b.text("I", 9, "No open deliverables.")
		return
	}

	header := []string{"CDRL", "Title", "Status", "Due", ""}
	b.table([]float64{20, 85, 30, 25, 20}, append([][]string{header}, rows...), true)
}

func (b *brief) contacts(c contract.Contacts) {
	lines := []struct{ role, name, email string }{
		{"Contracting Officer", c.ContractingOfficerName, c.ContractingOfficerEmail},
		{"COR", c.CORName, c.COREmail},
		{"Program Manager", c.ProgramManagerName, ""},
		{"Contract Manager", c.ContractManagerName, ""},
	}

	for _, l := range lines {
		value := orNA(l.name)
		if l.email != "" {
			value += " <" + l.email + ">"
		}

		b.text("", 9, l.role+": "+value)
	}
}

func popRemaining(days *int) string {
	if days == nil {
		return "no end date"
	}

	return fmt.Sprintf("%d days remaining", *days)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}

	return s
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n-1]) + "…"
}
