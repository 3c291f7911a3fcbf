package taxslab_test

import (
	"context"
	"testing"

	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/shared/testutil"
	"speed-hrm/internal/taxslab"
	taxslaberrors "speed-hrm/internal/taxslab/errors"
	taxslabMock "speed-hrm/internal/taxslab/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	sqlMock  sqlmock.Sqlmock
	service  taxslab.Service
	repo     *taxslabMock.MockRepository
	recorder *testutil.RecorderSpy
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, _, sqlMock := testutil.NewGormMock(t)
	repo := taxslabMock.NewMockRepository(ctrl)
	recorder := &testutil.RecorderSpy{}

	return &serviceDeps{
		sqlMock:  sqlMock,
		service:  taxslab.NewService(db, repo, recorder),
		repo:     repo,
		recorder: recorder,
	}
}

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func dp(v int64) *decimal.Decimal {
	x := decimal.NewFromInt(v)
	return &x
}

func validRequest() taxslab.CreateTaxSlabRequest {
	return taxslab.CreateTaxSlabRequest{
		Name:        " Band 2 ",
		FiscalYear:  "2024-2025",
		MinIncome:   d(600001),
		MaxIncome:   dp(1200000),
		Rate:        d(5),
		FixedAmount: d(0),
	}
}

func TestTaxSlabService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, slab *taxslab.TaxSlab) error {
				assert.Equal(t, "Band 2", slab.Name)
				assert.Equal(t, "active", slab.Status)
				return nil
			})

		resp, err := deps.service.Create(ctx, validRequest())

		assert.NoError(t, err)
		assert.Equal(t, "2024-2025", resp.FiscalYear)
		assert.Equal(t, activitylog.ActionCreate, deps.recorder.Last().Action)
	})

	t.Run("open top band", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validRequest()
		req.MaxIncome = nil

		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Nil(t, resp.MaxIncome)
	})

	t.Run("duplicate band", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_tax_slabs_year_min"})

		_, err := deps.service.Create(context.Background(), validRequest())

		assert.ErrorIs(t, err, taxslaberrors.ErrTaxSlabExists)
		assert.Equal(t, activitylog.StatusFailure, deps.recorder.Last().Status)
	})
}

func TestTaxSlabService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*taxslab.CreateTaxSlabRequest)
		want   error
	}{
		{"min above max", func(r *taxslab.CreateTaxSlabRequest) { r.MinIncome = d(2000000) }, taxslaberrors.ErrInvalidIncomeRange},
		{"rate above hundred", func(r *taxslab.CreateTaxSlabRequest) { r.Rate = d(101) }, taxslaberrors.ErrInvalidRate},
		{"negative rate", func(r *taxslab.CreateTaxSlabRequest) { r.Rate = d(-1) }, taxslaberrors.ErrInvalidRate},
		{"negative fixed amount", func(r *taxslab.CreateTaxSlabRequest) { r.FixedAmount = d(-10) }, taxslaberrors.ErrNegativeAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupServiceTest(t)
			req := validRequest()
			tt.mutate(&req)

			_, err := deps.service.Create(context.Background(), req)

			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, deps.recorder.Entries())
		})
	}

	t.Run("equal bounds allowed", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validRequest()
		req.MinIncome = d(1200000)

		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := deps.service.Create(context.Background(), req)

		assert.NoError(t, err)
	})
}

func TestTaxSlabService_Update(t *testing.T) {
	existing := func() *taxslab.TaxSlab {
		return &taxslab.TaxSlab{
			ID:         uuid.New(),
			Name:       "Band 2",
			FiscalYear: "2024-2025",
			MinIncome:  d(600001),
			MaxIncome:  dp(1200000),
			Rate:       d(5),
			Status:     "active",
		}
	}

	t.Run("partial update keeps other fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		slab := existing()
		rate := d(7)

		testutil.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), slab.ID.String()).Return(slab, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.Update(context.Background(), slab.ID.String(), taxslab.UpdateTaxSlabRequest{Rate: &rate})

		assert.NoError(t, err)
		assert.Equal(t, "7", resp.Rate.String())
		assert.Equal(t, "Band 2", resp.Name)
		assert.Equal(t, "600001", resp.MinIncome.String())
	})

	t.Run("range checked against stored bound", func(t *testing.T) {
		deps := setupServiceTest(t)
		slab := existing()

		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), slab.ID.String()).Return(slab, nil)

		_, err := deps.service.Update(context.Background(), slab.ID.String(), taxslab.UpdateTaxSlabRequest{MinIncome: dp(5000000)})

		assert.ErrorIs(t, err, taxslaberrors.ErrInvalidIncomeRange)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
