package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
)

// Row is one contract of the portfolio. Summary is nil when it failed to
// load.
type Row struct {
	Contract *contract.Contract
	Summary  *contract.Summary
}

// Totals aggregates the portfolio. Contract values come from every row;
// CLIN, modification and deliverable figures only from loaded summaries.
type Totals struct {
	Contracts            int
	TotalValue           decimal.Decimal
	FundedValue          decimal.Decimal
	ClinFundedAmount     decimal.Decimal
	ClinInvoicedAmount   decimal.Decimal
	RemainingFunds       decimal.Decimal
	PendingModifications int
	OverdueDeliverables  int
	DueSoonDeliverables  int
}

func (t Totals) FundingPercentage() float64 {
	return contract.FundingPercentage(t.FundedValue, t.TotalValue)
}

func (t Totals) BurnRate() float64 {
	return contract.BurnRate(t.ClinInvoicedAmount, t.ClinFundedAmount)
}

type Portfolio struct {
	Rows     []Row
	Totals   Totals
	Failures []Failure
}

func (p *Portfolio) Partial() bool {
	return len(p.Failures) > 0
}

// LoadPortfolio lists the contracts matching filter and loads their
// summaries with bounded parallelism. A failed listing fails the load; a
// failed summary is recorded and the row kept.
func LoadPortfolio(ctx context.Context, src Source, filter contract.ListFilter) (*Portfolio, error) {
	cs, err := src.ListContracts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}

	rows := make([]Row, len(cs))
	errs := make([]error, len(cs))

	var g errgroup.Group
	g.SetLimit(maxParallelSummaries)

	for i, c := range cs {
		rows[i].Contract = c

		g.Go(func() error {
			rows[i].Summary, errs[i] = src.Summary(ctx, c.ID)
			return nil
		})
	}

	g.Wait()

	p := &Portfolio{Rows: rows}

	for i, row := range rows {
		if errs[i] != nil {
			source := "summary " + row.Contract.ContractNumber
			slog.Warn("partial dashboard data", "source", source, "contract_id", row.Contract.ID, "error", errs[i])
			p.Failures = append(p.Failures, Failure{Source: source, Err: errs[i]})
			rows[i].Summary = nil
		}

		p.Totals.add(rows[i])
	}

	return p, nil
}

func (t *Totals) add(row Row) {
	t.Contracts++
	t.TotalValue = t.TotalValue.Add(row.Contract.TotalValue)
	t.FundedValue = t.FundedValue.Add(row.Contract.FundedValue)

	s := row.Summary
	if s == nil {
		return
	}

	t.ClinFundedAmount = t.ClinFundedAmount.Add(s.ClinFundedAmount)
	t.ClinInvoicedAmount = t.ClinInvoicedAmount.Add(s.ClinInvoicedAmount)
	t.RemainingFunds = t.RemainingFunds.Add(s.RemainingFunds)
	t.PendingModifications += s.PendingModifications
	t.OverdueDeliverables += s.OverdueDeliverables
	t.DueSoonDeliverables += s.DueSoonDeliverables
}
