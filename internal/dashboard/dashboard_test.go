package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
	"github.com/joshuamatosdev/insight-sub001/internal/dashboard"
)

var (
	fixedNow = time.Date(2025, 10, 16, 9, 0, 0, 0, time.UTC)
	errDown  = errors.New("connection refused")
)

func newSource(t *testing.T) (*contract.Service, *contract.MockRepository) {
	t.Helper()

	repo := contract.NewMockRepository(gomock.NewController(t))

	return contract.NewService(repo, contract.WithClock(func() time.Time { return fixedNow })), repo
}

func money(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

func newContract(number string, total, funded int64) *contract.Contract {
	return &contract.Contract{
		ID:             uuid.New(),
		ContractNumber: number,
		Title:          "Contract " + number,
		ContractType:   contract.ContractTypeFirmFixedPrice,
		Status:         contract.ContractStatusActive,
		TotalValue:     decimal.NewFromInt(total),
		FundedValue:    decimal.NewFromInt(funded),
	}
}

func TestLoadContract(t *testing.T) {
	c := newContract("W91QV1-25-C-0012", 1000, 500)

	clins := []*contract.Clin{
		{ClinNumber: "0001", FundedAmount: money(500), InvoicedAmount: money(200)},
		{ClinNumber: "0002", FundedAmount: money(100)},
	}
	mods := []*contract.Modification{
		{ModificationNumber: "P00001", Status: contract.ModificationStatusApproved},
		{ModificationNumber: "P00002", Status: contract.ModificationStatusExecuted, ValueChange: money(50)},
	}
	deliverables := []*contract.Deliverable{
		{Title: "Late", Status: contract.DeliverableStatusInProgress, DueDate: new(fixedNow.AddDate(0, 0, -2))},
		{Title: "Soon", Status: contract.DeliverableStatusPending, DueDate: new(fixedNow.AddDate(0, 0, 3))},
		{Title: "Done", Status: contract.DeliverableStatusAccepted, DueDate: new(fixedNow.AddDate(0, 0, -30))},
	}

	type testCase struct {
		name      string
		setupMock func(repo *contract.MockRepository)
		wantErr   bool
		verify    func(t *testing.T, page *dashboard.ContractPage)
	}

	tests := []testCase{
		{
			name: "AllSourcesLoad",
			setupMock: func(repo *contract.MockRepository) {
				repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)
				repo.EXPECT().ListClins(gomock.Any(), c.ID).Return(clins, nil)
				repo.EXPECT().ListModifications(gomock.Any(), c.ID).Return(mods, nil)
				repo.EXPECT().ListDeliverables(gomock.Any(), c.ID).Return(deliverables, nil)
			},
			verify: func(t *testing.T, page *dashboard.ContractPage) {
				assert.False(t, page.Partial())
				assert.Len(t, page.Clins, 2)
				assert.Equal(t, 1, page.Summary.PendingModifications)
				assert.True(t, page.Summary.RemainingFunds.Equal(decimal.NewFromInt(400)))
				assert.InDelta(t, 50.0, page.Summary.FundingPercentage, 0.001)
				assert.Equal(t, 1, page.Summary.OverdueDeliverables)
				assert.Equal(t, 1, page.Summary.DueSoonDeliverables)

				require.Len(t, page.Board.Overdue, 1)
				assert.Equal(t, "Late", page.Board.Overdue[0].Title)
				require.Len(t, page.Board.DueSoon, 1)
				require.Len(t, page.Board.Accepted, 1)
			},
		},
		{
			name: "FailedCollectionIsPartial",
			setupMock: func(repo *contract.MockRepository) {
				repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)
				repo.EXPECT().ListClins(gomock.Any(), c.ID).Return(nil, errDown)
				repo.EXPECT().ListModifications(gomock.Any(), c.ID).Return(mods, nil)
				repo.EXPECT().ListDeliverables(gomock.Any(), c.ID).Return(nil, errDown)
			},
			verify: func(t *testing.T, page *dashboard.ContractPage) {
				require.True(t, page.Partial())
				require.Len(t, page.Failures, 2)
				assert.Equal(t, dashboard.SourceClins, page.Failures[0].Source)
				assert.Equal(t, dashboard.SourceDeliverables, page.Failures[1].Source)
				assert.ErrorIs(t, page.Failures[0].Err, errDown)

				assert.NotNil(t, page.Clins)
				assert.Empty(t, page.Clins)
				assert.Equal(t, 0, page.Summary.ClinCount)
				assert.True(t, page.Summary.ClinFundedAmount.IsZero())
				assert.Equal(t, 0.0, page.Summary.BurnRate)
				assert.Equal(t, 2, page.Summary.ModificationCount)
			},
		},
		{
			name: "NilCollectionsBecomeEmpty",
			setupMock: func(repo *contract.MockRepository) {
				repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)
				repo.EXPECT().ListClins(gomock.Any(), c.ID).Return(nil, nil)
				repo.EXPECT().ListModifications(gomock.Any(), c.ID).Return(nil, nil)
				repo.EXPECT().ListDeliverables(gomock.Any(), c.ID).Return(nil, nil)
			},
			verify: func(t *testing.T, page *dashboard.ContractPage) {
				assert.False(t, page.Partial())
				assert.NotNil(t, page.Modifications)
				assert.NotNil(t, page.Deliverables)
			},
		},
		{
			name: "ContractFailureFailsThePage",
			setupMock: func(repo *contract.MockRepository) {
				repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(nil, contract.ErrNotFound)
				repo.EXPECT().ListClins(gomock.Any(), c.ID).Return(clins, nil)
				repo.EXPECT().ListModifications(gomock.Any(), c.ID).Return(mods, nil)
				repo.EXPECT().ListDeliverables(gomock.Any(), c.ID).Return(deliverables, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, repo := newSource(t)
			tt.setupMock(repo)

			page, err := dashboard.LoadContract(context.Background(), src, c.ID, fixedNow, contract.DefaultDueSoonWindow)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, contract.ErrNotFound)
				assert.Nil(t, page)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, c, page.Contract)
			assert.Equal(t, fixedNow, page.LoadedAt)

			tt.verify(t, page)
		})
	}
}

func TestLoadContract_ContractFailureCancelsCollections(t *testing.T) {
	src, repo := newSource(t)
	id := uuid.New()

	waitForCancel := func(ctx context.Context, _ uuid.UUID) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
			return errors.New("collection fetch was not cancelled")
		}
	}

	repo.EXPECT().GetContract(gomock.Any(), id).Return(nil, contract.ErrNotFound)
	repo.EXPECT().
		ListClins(gomock.Any(), id).
		DoAndReturn(func(ctx context.Context, id uuid.UUID) ([]*contract.Clin, error) {
			return nil, waitForCancel(ctx, id)
		})
	repo.EXPECT().
		ListModifications(gomock.Any(), id).
		DoAndReturn(func(ctx context.Context, id uuid.UUID) ([]*contract.Modification, error) {
			return nil, waitForCancel(ctx, id)
		})
	repo.EXPECT().
		ListDeliverables(gomock.Any(), id).
		DoAndReturn(func(ctx context.Context, id uuid.UUID) ([]*contract.Deliverable, error) {
			return nil, waitForCancel(ctx, id)
		})

	start := time.Now()
	page, err := dashboard.LoadContract(context.Background(), src, id, fixedNow, contract.DefaultDueSoonWindow)
	require.ErrorIs(t, err, contract.ErrNotFound)
	assert.Nil(t, page)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestLoadPortfolio(t *testing.T) {
	t.Run("aggregates loaded summaries", func(t *testing.T) {
		src, repo := newSource(t)

		a := newContract("A-1", 1000, 400)
		b := newContract("B-2", 3000, 600)

		repo.EXPECT().ListContracts(gomock.Any(), contract.ListFilter{}).Return([]*contract.Contract{a, b}, nil)

		for _, c := range []*contract.Contract{a, b} {
			repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)
			repo.EXPECT().ListClins(gomock.Any(), c.ID).Return([]*contract.Clin{
				{FundedAmount: decimal.NewNullDecimal(c.FundedValue), InvoicedAmount: money(100)},
			}, nil)
			repo.EXPECT().ListModifications(gomock.Any(), c.ID).Return([]*contract.Modification{
				{Status: contract.ModificationStatusPending},
			}, nil)
			repo.EXPECT().ListDeliverables(gomock.Any(), c.ID).Return(nil, nil)
		}

		p, err := dashboard.LoadPortfolio(context.Background(), src, contract.ListFilter{})
		require.NoError(t, err)

		assert.False(t, p.Partial())
		require.Len(t, p.Rows, 2)
		assert.Equal(t, a, p.Rows[0].Contract)
		assert.Equal(t, b, p.Rows[1].Contract)
		require.NotNil(t, p.Rows[1].Summary)
		assert.Equal(t, "B-2", p.Rows[1].Summary.ContractNumber)

		assert.Equal(t, 2, p.Totals.Contracts)
		assert.True(t, p.Totals.TotalValue.Equal(decimal.NewFromInt(4000)))
		assert.True(t, p.Totals.FundedValue.Equal(decimal.NewFromInt(1000)))
		assert.True(t, p.Totals.RemainingFunds.Equal(decimal.NewFromInt(800)))
		assert.Equal(t, 2, p.Totals.PendingModifications)
		assert.InDelta(t, 25.0, p.Totals.FundingPercentage(), 0.001)
		assert.InDelta(t, 20.0, p.Totals.BurnRate(), 0.001)
	})

	t.Run("failed summary keeps the row", func(t *testing.T) {
		src, repo := newSource(t)

		a := newContract("A-1", 1000, 400)
		b := newContract("B-2", 3000, 600)

		repo.EXPECT().ListContracts(gomock.Any(), gomock.Any()).Return([]*contract.Contract{a, b}, nil)

		repo.EXPECT().GetContract(gomock.Any(), a.ID).Return(a, nil)
		repo.EXPECT().ListClins(gomock.Any(), a.ID).Return(nil, nil)
		repo.EXPECT().ListModifications(gomock.Any(), a.ID).Return(nil, nil)
		repo.EXPECT().ListDeliverables(gomock.Any(), a.ID).Return(nil, nil)

		repo.EXPECT().GetContract(gomock.Any(), b.ID).Return(nil, errDown)

		p, err := dashboard.LoadPortfolio(context.Background(), src, contract.ListFilter{})
		require.NoError(t, err)

		require.True(t, p.Partial())
		require.Len(t, p.Failures, 1)
		assert.Equal(t, "summary B-2", p.Failures[0].Source)
		assert.ErrorIs(t, p.Failures[0].Err, errDown)

		require.Len(t, p.Rows, 2)
		assert.NotNil(t, p.Rows[0].Summary)
		assert.Nil(t, p.Rows[1].Summary)
		assert.True(t, p.Totals.TotalValue.Equal(decimal.NewFromInt(4000)))
	})

	t.Run("failed listing fails the load", func(t *testing.T) {
		src, repo := newSource(t)
		repo.EXPECT().ListContracts(gomock.Any(), gomock.Any()).Return(nil, errDown)

		_, err := dashboard.LoadPortfolio(context.Background(), src, contract.ListFilter{})
		require.ErrorIs(t, err, errDown)
	})
}
