package report_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/joshuamatosdev/insight-sub001/internal/contract"
	reporthttp "github.com/joshuamatosdev/insight-sub001/internal/http/report"
	"github.com/joshuamatosdev/insight-sub001/internal/report"
)

var fixedNow = time.Date(2025, 10, 16, 9, 0, 0, 0, time.UTC)

type fakeArchiver struct {
	err      error
	calls    int
	filename string
}

func (f *fakeArchiver) Archive(_ context.Context, _ report.Data, filename, _ string, _ []byte) (string, error) {
	f.calls++
	f.filename = filename

	if f.err != nil {
		return "", f.err
	}

	return "reports/" + filename, nil
}

func setup(t *testing.T, archiver reporthttp.Archiver) (http.Handler, *contract.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := contract.NewMockRepository(ctrl)
	svc := contract.NewService(repo, contract.WithClock(func() time.Time { return fixedNow }))

	r := chi.NewRouter()
	r.Route("/contracts", reporthttp.NewHandler(svc, archiver).Routes)

	return r, repo
}

func expectContract(repo *contract.MockRepository) *contract.Contract {
	c := &contract.Contract{
		ID:             uuid.New(),
		ContractNumber: "W91QV1-25-C-0012",
		Title:          "Logistics Support",
		ContractType:   contract.ContractTypeFirmFixedPrice,
		Status:         contract.ContractStatusActive,
		TotalValue:     decimal.NewFromInt(500000),
		FundedValue:    decimal.NewFromInt(200000),
	}

	repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)
	repo.EXPECT().ListClins(gomock.Any(), c.ID).Return([]*contract.Clin{{
		ContractID:   c.ID,
		ClinNumber:   "0001",
		ClinType:     contract.ClinTypeBase,
		PricingType:  contract.PricingTypeFirmFixedPrice,
		FundedAmount: decimal.NewNullDecimal(decimal.NewFromInt(200000)),
	}}, nil)
	repo.EXPECT().ListModifications(gomock.Any(), c.ID).Return(nil, nil)
	repo.EXPECT().ListDeliverables(gomock.Any(), c.ID).Return(nil, nil)

	return c
}

func TestHandler_Render(t *testing.T) {
	type testCase struct {
		name        string
		path        string
		contentType string
		magic       []byte
		filename    string
	}

	tests := []testCase{
		{
			name:        "Workbook",
			path:        "/report.xlsx",
			contentType: report.ContentTypeXLSX,
			magic:       []byte("PK"),
			filename:    "W91QV1-25-C-0012-2025-10-16.xlsx",
		},
		{
			name:        "Brief",
			path:        "/brief.pdf",
			contentType: report.ContentTypePDF,
			magic:       []byte("%PDF-"),
			filename:    "W91QV1-25-C-0012-2025-10-16.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := setup(t, nil)
			c := expectContract(repo)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contracts/"+c.ID.String()+tt.path, nil))

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			assert.Equal(t, `attachment; filename="`+tt.filename+`"`, rec.Header().Get("Content-Disposition"))
			assert.Equal(t, fixedNow.Format(http.TimeFormat), rec.Header().Get("Last-Modified"))
			assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), tt.magic))
			assert.Empty(t, rec.Header().Get("X-Report-Archive-Key"))
		})
	}
}

func TestHandler_Render_Errors(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		router, _ := setup(t, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contracts/abc/report.xlsx", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown contract", func(t *testing.T) {
		router, repo := setup(t, nil)
		id := uuid.New()

		repo.EXPECT().GetContract(gomock.Any(), id).Return(nil, contract.ErrNotFound)
		repo.EXPECT().ListClins(gomock.Any(), id).Return(nil, nil).AnyTimes()
		repo.EXPECT().ListModifications(gomock.Any(), id).Return(nil, nil).AnyTimes()
		repo.EXPECT().ListDeliverables(gomock.Any(), id).Return(nil, nil).AnyTimes()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contracts/"+id.String()+"/brief.pdf", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_Archive(t *testing.T) {
	t.Run("sets the object key", func(t *testing.T) {
		archiver := &fakeArchiver{}
		router, repo := setup(t, archiver)
		c := expectContract(repo)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contracts/"+c.ID.String()+"/report.xlsx", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, archiver.calls)
		assert.Equal(t, "reports/W91QV1-25-C-0012-2025-10-16.xlsx", rec.Header().Get("X-Report-Archive-Key"))
	})

	t.Run("failure does not fail the download", func(t *testing.T) {
		archiver := &fakeArchiver{err: errors.New("bucket unreachable")}
		router, repo := setup(t, archiver)
		c := expectContract(repo)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contracts/"+c.ID.String()+"/brief.pdf", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, archiver.calls)
		assert.Empty(t, rec.Header().Get("X-Report-Archive-Key"))
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
	})
}
