// Package report renders a contract with its CLINs, modifications and
// deliverables as an XLSX workbook or a one-page PDF brief.
package report

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// Data is everything a report shows. Summary is computed from the other
// fields at GeneratedAt.
type Data struct {
	Contract      *contract.Contract
	Clins         []*contract.Clin
	Modifications []*contract.Modification
	Deliverables  []*contract.Deliverable
	Summary       contract.Summary
	GeneratedAt   time.Time
	DueSoonWindow time.Duration
}

func NewData(
	c *contract.Contract,
	clins []*contract.Clin,
	mods []*contract.Modification,
	deliverables []*contract.Deliverable,
	now time.Time,
	window time.Duration,
) Data {
	return Data{
		Contract:      c,
		Clins:         clins,
		Modifications: mods,
		Deliverables:  deliverables,
		Summary:       contract.Summarize(c, clins, mods, deliverables, now, window),
		GeneratedAt:   now,
		DueSoonWindow: window,
	}
}

// Source loads the records a report is built from. *contract.Service
// satisfies it.
type Source interface {
	GetContract(ctx context.Context, id uuid.UUID) (*contract.Contract, error)
	ListClins(ctx context.Context, contractID uuid.UUID) ([]*contract.Clin, error)
	ListModifications(ctx context.Context, contractID uuid.UUID) ([]*contract.Modification, error)
	ListDeliverables(ctx context.Context, contractID uuid.UUID) ([]*contract.Deliverable, error)
}

// Load fetches a contract and its children concurrently. A report is all or
// nothing, so any failure fails the load.
func Load(ctx context.Context, src Source, id uuid.UUID, now time.Time, window time.Duration) (Data, error) {
	var (
		c            *contract.Contract
		clins        []*contract.Clin
		mods         []*contract.Modification
		deliverables []*contract.Deliverable
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		c, err = src.GetContract(ctx, id)
		return err
	})
	g.Go(func() (err error) {
		clins, err = src.ListClins(ctx, id)
		if err != nil {
			return fmt.Errorf("list clins: %w", err)
		}

		return nil
	})
	g.Go(func() (err error) {
		mods, err = src.ListModifications(ctx, id)
		if err != nil {
			return fmt.Errorf("list modifications: %w", err)
		}

		return nil
	})
	g.Go(func() (err error) {
		deliverables, err = src.ListDeliverables(ctx, id)
		if err != nil {
			return fmt.Errorf("list deliverables: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return Data{}, err
	}

	return NewData(c, clins, mods, deliverables, now, window), nil
}

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Filename names a report file after the contract number and the
// generation date, e.g. "W91QV1-25-C-0012-2025-10-16.xlsx".
func Filename(d Data, ext string) string {
	number := unsafeFilename.ReplaceAllString(d.Contract.ContractNumber, "_")
	if number == "" {
		number = d.Contract.ID.String()
	}

	return fmt.Sprintf("%s-%s.%s", number, d.GeneratedAt.Format(time.DateOnly), ext)
}
