package contract_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
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
	contracthttp "github.com/joshuamatosdev/insight-sub001/internal/http/contract"
	"github.com/joshuamatosdev/insight-sub001/internal/http/wire"
	"github.com/joshuamatosdev/insight-sub001/internal/importer"
)

var fixedNow = time.Date(2025, 10, 16, 9, 0, 0, 0, time.UTC)

func newRouter(t *testing.T) (http.Handler, *contract.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := contract.NewMockRepository(ctrl)
	svc := contract.NewService(repo, contract.WithClock(func() time.Time { return fixedNow }))
	h := contracthttp.NewHandler(svc, importer.NewService())

	r := chi.NewRouter()
	r.Get("/labels", h.Labels)
	r.Route("/contracts", h.Routes)

	return r, repo
}

func do(t *testing.T, h http.Handler, method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	if body == nil {
		return do(t, h, method, path, "", nil)
	}

	data, err := json.Marshal(body)
	require.NoError(t, err)

	return do(t, h, method, path, "application/json", bytes.NewReader(data))
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

func activeContract() *contract.Contract {
	return &contract.Contract{
		ID:             uuid.New(),
		ContractNumber: "FA8730-25-C-0042",
		Title:          "Mission Planning Sustainment",
		ContractType:   contract.ContractTypeCostPlusFixedFee,
		Status:         contract.ContractStatusActive,
		TotalValue:     decimal.NewFromInt(1000000),
		FundedValue:    decimal.NewFromInt(400000),
		PopEndDate:     new(time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)),
		CreatedAt:      fixedNow.AddDate(0, -6, 0),
	}
}

func TestHandler_CreateContract(t *testing.T) {
	type testCase struct {
		name       string
		body       any
		setupMock  func(repo *contract.MockRepository)
		wantStatus int
		verify     func(t *testing.T, rec *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name: "Created",
			body: wire.CreateContractRequest{
				ContractNumber: "FA8730-25-C-0042",
				Title:          "Mission Planning Sustainment",
				ContractType:   contract.ContractTypeCostPlusFixedFee,
				TotalValue:     decimal.NewFromInt(1000000),
				FundedValue:    decimal.NewFromInt(400000),
			},
			setupMock: func(repo *contract.MockRepository) {
				repo.EXPECT().
					CreateContract(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *contract.Contract) error {
						c.ID = uuid.New()
						c.CreatedAt = fixedNow
						return nil
					})
			},
			wantStatus: http.StatusCreated,
			verify: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decode[wire.Contract](t, rec)
				assert.Equal(t, "FA8730-25-C-0042", got.ContractNumber)
				assert.Equal(t, contract.ContractStatusDraft, got.Status)
				assert.True(t, got.TotalValue.Equal(decimal.NewFromInt(1000000)))
				assert.NotEqual(t, uuid.Nil, got.ID)
			},
		},
		{
			name:       "ValidationError",
			body:       wire.CreateContractRequest{ContractType: "BARTER", TotalValue: decimal.NewFromInt(-1)},
			wantStatus: http.StatusBadRequest,
			verify: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decode[wire.Error](t, rec)
				assert.Contains(t, got.Fields, "contract_number")
				assert.Contains(t, got.Fields, "title")
				assert.Contains(t, got.Fields, "contract_type")
				assert.Equal(t, "must not be negative", got.Fields["total_value"])
			},
		},
		{
			name:       "MalformedBody",
			body:       "not an object",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newRouter(t)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			rec := doJSON(t, router, http.MethodPost, "/contracts", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.verify != nil {
				tt.verify(t, rec)
			}
		})
	}
}

func TestHandler_RejectsNonJSONBody(t *testing.T) {
	router, _ := newRouter(t)

	rec := do(t, router, http.MethodPost, "/contracts", "text/plain", bytes.NewBufferString("hello"))
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestHandler_ListContracts(t *testing.T) {
	t.Run("passes filters", func(t *testing.T) {
		router, repo := newRouter(t)
		c := activeContract()

		repo.EXPECT().
			ListContracts(gomock.Any(), contract.ListFilter{
				Status: new(contract.ContractStatusActive),
				Agency: "Air Force",
				Search: "mission",
			}).
			Return([]*contract.Contract{c}, nil)

		rec := doJSON(t, router, http.MethodGet, "/contracts?status=active&agency=Air+Force&search=mission", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		got := decode[[]wire.Contract](t, rec)
		require.Len(t, got, 1)
		assert.Equal(t, c.ID, got[0].ID)
	})

	t.Run("empty list encodes as array", func(t *testing.T) {
		router, repo := newRouter(t)
		repo.EXPECT().ListContracts(gomock.Any(), contract.ListFilter{}).Return([]*contract.Contract{}, nil)

		rec := doJSON(t, router, http.MethodGet, "/contracts", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("unknown status", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := doJSON(t, router, http.MethodGet, "/contracts?status=SIGNED", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_GetContract(t *testing.T) {
	type testCase struct {
		name       string
		path       func(id uuid.UUID) string
		setupMock  func(repo *contract.MockRepository, c *contract.Contract)
		wantStatus int
	}

	tests := []testCase{
		{
			name: "Found",
			path: func(id uuid.UUID) string { return "/contracts/" + id.String() },
			setupMock: func(repo *contract.MockRepository, c *contract.Contract) {
				repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "NotFound",
			path: func(id uuid.UUID) string { return "/contracts/" + id.String() },
			setupMock: func(repo *contract.MockRepository, c *contract.Contract) {
				repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(nil, contract.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "InvalidID",
			path:       func(uuid.UUID) string { return "/contracts/not-a-uuid" },
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newRouter(t)
			c := activeContract()

			if tt.setupMock != nil {
				tt.setupMock(repo, c)
			}

			rec := doJSON(t, router, http.MethodGet, tt.path(c.ID), nil)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_UpdateContractStatus(t *testing.T) {
	t.Run("terminal contract is a conflict", func(t *testing.T) {
		router, repo := newRouter(t)
		c := activeContract()
		c.Status = contract.ContractStatusClosed

		repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)

		rec := doJSON(t, router, http.MethodPatch, "/contracts/"+c.ID.String()+"/status", wire.StatusRequest{Status: "ACTIVE"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown status is a validation error", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := doJSON(t, router, http.MethodPatch, "/contracts/"+uuid.NewString()+"/status", wire.StatusRequest{Status: "SIGNED"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[wire.Error](t, rec).Fields, "status")
	})

	t.Run("updated", func(t *testing.T) {
		router, repo := newRouter(t)
		c := activeContract()

		repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)
		repo.EXPECT().UpdateContractStatus(gomock.Any(), c.ID, contract.ContractStatusOnHold).Return(nil)

		rec := doJSON(t, router, http.MethodPatch, "/contracts/"+c.ID.String()+"/status", wire.StatusRequest{Status: "ON_HOLD"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, contract.ContractStatusOnHold, decode[wire.Contract](t, rec).Status)
	})
}

func TestHandler_Summary(t *testing.T) {
	router, repo := newRouter(t)
	c := activeContract()

	clins := []*contract.Clin{{
		ContractID:     c.ID,
		ClinNumber:     "0001",
		FundedAmount:   decimal.NewNullDecimal(decimal.NewFromInt(400000)),
		InvoicedAmount: decimal.NewNullDecimal(decimal.NewFromInt(100000)),
	}}

	repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)
	repo.EXPECT().ListClins(gomock.Any(), c.ID).Return(clins, nil)
	repo.EXPECT().ListModifications(gomock.Any(), c.ID).Return(nil, nil)
	repo.EXPECT().ListDeliverables(gomock.Any(), c.ID).Return(nil, nil)

	rec := doJSON(t, router, http.MethodGet, "/contracts/"+c.ID.String()+"/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[wire.Summary](t, rec)
	assert.InDelta(t, 40.0, got.FundingPercentage, 0.001)
	assert.InDelta(t, 25.0, got.BurnRate, 0.001)
	assert.True(t, got.RemainingFunds.Equal(decimal.NewFromInt(300000)))
	require.NotNil(t, got.PopDaysRemaining)
	assert.Equal(t, 349, *got.PopDaysRemaining)
}

func TestHandler_ExecuteModification(t *testing.T) {
	type testCase struct {
		name       string
		status     contract.ModificationStatus
		wantStatus int
	}

	tests := []testCase{
		{name: "Approved", status: contract.ModificationStatusApproved, wantStatus: http.StatusOK},
		{name: "Pending", status: contract.ModificationStatusPending, wantStatus: http.StatusConflict},
		{name: "Draft", status: contract.ModificationStatusDraft, wantStatus: http.StatusConflict},
		{name: "AlreadyExecuted", status: contract.ModificationStatusExecuted, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newRouter(t)
			c := activeContract()
			mod := &contract.Modification{
				ID:                 uuid.New(),
				ContractID:         c.ID,
				ModificationNumber: "P00003",
				ModificationType:   contract.ModificationTypeFunding,
				Status:             tt.status,
				FundingChange:      decimal.NewNullDecimal(decimal.NewFromInt(250000)),
			}

			repo.EXPECT().GetModification(gomock.Any(), mod.ID).Return(mod, nil).Times(2)

			if tt.wantStatus == http.StatusOK {
				repo.EXPECT().
					ExecuteModification(gomock.Any(), mod.ID, fixedNow).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, at time.Time) (*contract.Modification, *contract.Contract, error) {
						executed := *mod
						executed.Status = contract.ModificationStatusExecuted
						executed.ExecutedAt = new(at)

						updated := *c
						contract.ApplyExecution(&updated, &executed)

						return &executed, &updated, nil
					})
			}

			rec := doJSON(t, router, http.MethodPost, "/contracts/"+c.ID.String()+"/modifications/"+mod.ID.String()+"/execute", nil)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantStatus != http.StatusOK {
				return
			}

			got := decode[wire.ExecuteResult](t, rec)
			assert.Equal(t, contract.ModificationStatusExecuted, got.Modification.Status)
			assert.False(t, got.Modification.CanExecute)
			assert.Empty(t, got.Modification.NextStatuses)
			assert.True(t, got.Contract.FundedValue.Equal(decimal.NewFromInt(650000)))
		})
	}
}

func TestHandler_ModificationUnderOtherContract(t *testing.T) {
	router, repo := newRouter(t)
	mod := &contract.Modification{ID: uuid.New(), ContractID: uuid.New(), Status: contract.ModificationStatusApproved}

	repo.EXPECT().GetModification(gomock.Any(), mod.ID).Return(mod, nil)

	rec := doJSON(t, router, http.MethodPost, "/contracts/"+uuid.NewString()+"/modifications/"+mod.ID.String()+"/execute", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_TransitionModification(t *testing.T) {
	router, repo := newRouter(t)
	contractID := uuid.New()
	mod := &contract.Modification{ID: uuid.New(), ContractID: contractID, Status: contract.ModificationStatusUnderReview}

	repo.EXPECT().GetModification(gomock.Any(), mod.ID).Return(mod, nil).Times(2)
	repo.EXPECT().
		UpdateModificationStatus(gomock.Any(), mod.ID, contract.ModificationStatusUnderReview, contract.ModificationStatusApproved).
		Return(nil)

	rec := doJSON(t, router, http.MethodPatch,
		"/contracts/"+contractID.String()+"/modifications/"+mod.ID.String()+"/status",
		wire.StatusRequest{Status: "APPROVED"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[wire.Modification](t, rec)
	assert.Equal(t, contract.ModificationStatusApproved, got.Status)
	assert.True(t, got.CanExecute)
	assert.Equal(t, []contract.ModificationStatus{contract.ModificationStatusExecuted}, got.NextStatuses)
}

func TestHandler_ListDeliverables(t *testing.T) {
	router, repo := newRouter(t)
	contractID := uuid.New()

	deliverables := []*contract.Deliverable{
		{ID: uuid.New(), ContractID: contractID, Title: "Status report", Status: contract.DeliverableStatusInProgress, DueDate: new(fixedNow.AddDate(0, 0, -1))},
		{ID: uuid.New(), ContractID: contractID, Title: "Test plan", Status: contract.DeliverableStatusPending, DueDate: new(fixedNow.AddDate(0, 0, 5))},
		{ID: uuid.New(), ContractID: contractID, Title: "Final report", Status: contract.DeliverableStatusAccepted, DueDate: new(fixedNow.AddDate(0, 0, -10))},
	}

	repo.EXPECT().ListDeliverables(gomock.Any(), contractID).Return(deliverables, nil)

	rec := doJSON(t, router, http.MethodGet, "/contracts/"+contractID.String()+"/deliverables", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[[]wire.Deliverable](t, rec)
	require.Len(t, got, 3)

	assert.True(t, got[0].IsOverdue)
	assert.False(t, got[0].IsDueSoon)
	assert.False(t, got[1].IsOverdue)
	assert.True(t, got[1].IsDueSoon)
	assert.False(t, got[2].IsOverdue)
}

func TestHandler_UpdateDeliverableStatus(t *testing.T) {
	router, repo := newRouter(t)
	contractID := uuid.New()
	d := &contract.Deliverable{ID: uuid.New(), ContractID: contractID, Title: "Status report", Status: contract.DeliverableStatusInProgress}

	repo.EXPECT().GetDeliverable(gomock.Any(), d.ID).Return(d, nil).Times(2)
	repo.EXPECT().UpdateDeliverable(gomock.Any(), gomock.Any()).Return(nil)

	rec := doJSON(t, router, http.MethodPatch,
		"/contracts/"+contractID.String()+"/deliverables/"+d.ID.String()+"/status",
		wire.StatusRequest{Status: "SUBMITTED"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[wire.Deliverable](t, rec)
	assert.Equal(t, contract.DeliverableStatusSubmitted, got.Status)
	require.NotNil(t, got.SubmittedAt)
	assert.True(t, got.SubmittedAt.Equal(fixedNow))
}

func TestHandler_UpdateClin(t *testing.T) {
	router, repo := newRouter(t)
	contractID := uuid.New()
	clin := &contract.Clin{ID: uuid.New(), ContractID: contractID, ClinNumber: "0001", ClinType: contract.ClinTypeBase, PricingType: contract.PricingTypeFirmFixedPrice}

	repo.EXPECT().GetClin(gomock.Any(), clin.ID).Return(clin, nil).Times(2)
	repo.EXPECT().UpdateClin(gomock.Any(), gomock.Any()).Return(nil)

	rec := doJSON(t, router, http.MethodPatch, "/contracts/"+contractID.String()+"/clins/"+clin.ID.String(), wire.ClinRequest{
		ClinNumber:     "0001",
		ClinType:       contract.ClinTypeBase,
		PricingType:    contract.PricingTypeFirmFixedPrice,
		FundedAmount:   decimal.NewNullDecimal(decimal.NewFromInt(100)),
		InvoicedAmount: decimal.NewNullDecimal(decimal.NewFromInt(150)),
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[wire.Clin](t, rec)
	require.True(t, got.RemainingFunds.Valid)
	assert.True(t, got.RemainingFunds.Decimal.Equal(decimal.NewFromInt(-50)))
}

const scheduleCSV = `CLIN,Description,Type,Pricing,Total Value,Funded,Invoiced
0001,Base year,Base,FFP,"$1,000,000.00","$400,000.00","$100,000.00"
0002,Travel,Travel,Cost Reimbursable,"$25,000.00",,
`

func TestHandler_ImportClins(t *testing.T) {
	multipartBody := func(t *testing.T) (string, io.Reader) {
		t.Helper()

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)

		part, err := mw.CreateFormFile("file", "schedule.csv")
		require.NoError(t, err)

		_, err = part.Write([]byte(scheduleCSV))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		return mw.FormDataContentType(), &buf
	}

	type testCase struct {
		name       string
		body       func(t *testing.T) (string, io.Reader)
		wantImport bool
		wantStatus int
	}

	tests := []testCase{
		{
			name:       "CSVBody",
			body:       func(*testing.T) (string, io.Reader) { return "text/csv", bytes.NewBufferString(scheduleCSV) },
			wantImport: true,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "MultipartUpload",
			body:       multipartBody,
			wantImport: true,
			wantStatus: http.StatusCreated,
		},
		{
			name: "JSONBody",
			body: func(t *testing.T) (string, io.Reader) {
				data, err := json.Marshal(wire.ImportRequest{Clins: []wire.ClinRequest{
					{ClinNumber: "0001", ClinType: contract.ClinTypeBase, PricingType: contract.PricingTypeFirmFixedPrice},
					{ClinNumber: "0002", ClinType: contract.ClinTypeTravel, PricingType: contract.PricingTypeCostReimbursable},
				}})
				require.NoError(t, err)

				return "application/json", bytes.NewReader(data)
			},
			wantImport: true,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "NoHeader",
			body:       func(*testing.T) (string, io.Reader) { return "text/csv", bytes.NewBufferString("a,b\n1,2\n") },
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "BadAmount",
			body: func(*testing.T) (string, io.Reader) {
				return "text/csv", bytes.NewBufferString("CLIN;Total Value\n0001;lots\n")
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newRouter(t)
			c := activeContract()

			if tt.wantImport {
				repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)
				repo.EXPECT().
					CreateClins(gomock.Any(), gomock.Len(2)).
					DoAndReturn(func(_ context.Context, clins []*contract.Clin) error {
						for _, clin := range clins {
							clin.ID = uuid.New()
						}

						return nil
					})
			}

			contentType, body := tt.body(t)
			rec := do(t, router, http.MethodPost, "/contracts/"+c.ID.String()+"/clins/import", contentType, body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantImport {
				got := decode[wire.ImportResult](t, rec)
				assert.Equal(t, 2, got.Imported)
				assert.Equal(t, "0002", got.Clins[1].ClinNumber)
			}
		})
	}
}

func TestHandler_ImportClins_EmptySchedule(t *testing.T) {
	type testCase struct {
		name       string
		found      bool
		wantStatus int
	}

	tests := []testCase{
		{name: "UnknownContract", wantStatus: http.StatusNotFound},
		{name: "KnownContract", found: true, wantStatus: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := newRouter(t)
			c := activeContract()

			if tt.found {
				repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(c, nil)
			} else {
				repo.EXPECT().GetContract(gomock.Any(), c.ID).Return(nil, contract.ErrNotFound)
			}

			rec := doJSON(t, router, http.MethodPost, "/contracts/"+c.ID.String()+"/clins/import", wire.ImportRequest{})
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.found {
				assert.JSONEq(t, `{"imported": 0, "clins": []}`, rec.Body.String())
			}
		})
	}
}

func TestHandler_ImportClins_RowErrors(t *testing.T) {
	router, _ := newRouter(t)

	rec := do(t, router, http.MethodPost, "/contracts/"+uuid.NewString()+"/clins/import", "text/csv",
		bytes.NewBufferString("CLIN;Pricing;Funded\n0001;FFP;$1.00\n0002;Barter;$2.00\n"))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	got := decode[wire.Error](t, rec)
	assert.Equal(t, map[string]string{"row 2: pricing_type": `unknown value "Barter"`}, got.Fields)
}

func TestHandler_Labels(t *testing.T) {
	router, _ := newRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/labels", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[map[string]map[string]string](t, rec)
	assert.Equal(t, "Time & Materials", got["contract_type"]["TIME_AND_MATERIALS"])
	assert.Equal(t, "Under Review", got["modification_status"]["UNDER_REVIEW"])
}
