// Package dashboard assembles the pages the TUI renders. Collections are
// fetched in parallel; a failed collection degrades the page instead of
// failing it.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
)

// Sources named in Failure.
const (
	SourceClins         = "clins"
	SourceModifications = "modifications"
	SourceDeliverables  = "deliverables"
)

// maxParallelSummaries bounds the summary requests of a portfolio load.
const maxParallelSummaries = 4

// Source is where pages are loaded from. Both *contract.Service and
// *client.HTTPClient satisfy it.
type Source interface {
	ListContracts(ctx context.Context, filter contract.ListFilter) ([]*contract.Contract, error)
	GetContract(ctx context.Context, id uuid.UUID) (*contract.Contract, error)
	Summary(ctx context.Context, id uuid.UUID) (*contract.Summary, error)
	ListClins(ctx context.Context, contractID uuid.UUID) ([]*contract.Clin, error)
	ListModifications(ctx context.Context, contractID uuid.UUID) ([]*contract.Modification, error)
	ListDeliverables(ctx context.Context, contractID uuid.UUID) ([]*contract.Deliverable, error)
}

// Failure records a source that could not be loaded.
type Failure struct {
	Source string
	Err    error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Source, f.Err)
}

// ContractPage is the contract detail view. Summary and Board are computed
// from whatever loaded.
type ContractPage struct {
	Contract      *contract.Contract
	Clins         []*contract.Clin
	Modifications []*contract.Modification
	Deliverables  []*contract.Deliverable
	Summary       contract.Summary
	Board         contract.Board
	Failures      []Failure
	LoadedAt      time.Time
}

// Partial reports whether some collection failed to load.
func (p *ContractPage) Partial() bool {
	return len(p.Failures) > 0
}

// LoadContract fetches a contract and its three collections concurrently and
// waits for all of them. Only a failed contract fetch is returned as an
// error; it cancels the collection fetches still in flight. There is no
// retry; callers reload on demand.
func LoadContract(ctx context.Context, src Source, id uuid.UUID, now time.Time, window time.Duration) (*ContractPage, error) {
	page := &ContractPage{LoadedAt: now}

	var failures [3]*Failure

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c, err := src.GetContract(gctx, id)
		if err != nil {
			return fmt.Errorf("load contract: %w", err)
		}

		page.Contract = c

		return nil
	})
	g.Go(func() error {
		page.Clins, failures[0] = collect(gctx, SourceClins, id, src.ListClins)
		return nil
	})
	g.Go(func() error {
		page.Modifications, failures[1] = collect(gctx, SourceModifications, id, src.ListModifications)
		return nil
	})
	g.Go(func() error {
		page.Deliverables, failures[2] = collect(gctx, SourceDeliverables, id, src.ListDeliverables)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, f := range failures {
		if f != nil {
			page.Failures = append(page.Failures, *f)
		}
	}

	page.Summary = contract.Summarize(page.Contract, page.Clins, page.Modifications, page.Deliverables, now, window)
	page.Board = contract.Classify(page.Deliverables, now, window)

	return page, nil
}

func collect[T any](
	ctx context.Context,
	source string,
	id uuid.UUID,
	fetch func(context.Context, uuid.UUID) ([]T, error),
) ([]T, *Failure) {
	items, err := fetch(ctx, id)
	if err != nil {
		slog.Warn("partial dashboard data", "source", source, "contract_id", id, "error", err)
		return []T{}, &Failure{Source: source, Err: err}
	}

	if items == nil {
		items = []T{}
	}

	return items, nil
}
