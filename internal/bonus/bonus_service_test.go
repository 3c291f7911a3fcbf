package bonus_test

import (
	"context"
	"testing"

	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/bonus"
	bonuserrors "speed-hrm/internal/bonus/errors"
	bonusMock "speed-hrm/internal/bonus/mock"
	"speed-hrm/internal/shared/adjustment"
	"speed-hrm/internal/shared/apperror"
	"speed-hrm/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var (
	employeeID = uuid.NewString()
	typeID     = uuid.NewString()
)

type serviceDeps struct {
	sqlMock  sqlmock.Sqlmock
	service  bonus.Service
	repo     *bonusMock.MockRepository
	recorder *testutil.RecorderSpy
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, _, sqlMock := testutil.NewGormMock(t)
	repo := bonusMock.NewMockRepository(ctrl)
	recorder := &testutil.RecorderSpy{}

	return &serviceDeps{
		sqlMock:  sqlMock,
		service:  bonus.NewService(db, repo, recorder),
		repo:     repo,
		recorder: recorder,
	}
}

func amountPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func item(amount int64, method adjustment.Method) bonus.BonusItemRequest {
	return bonus.BonusItemRequest{
		EmployeeID:       employeeID,
		BonusTypeID:      typeID,
		Amount:           amountPtr(amount),
		BonusMonthYear:   "2024-03",
		AdjustmentMethod: string(method),
	}
}

// expectStoredPeriod wires the repo to a single in-memory row so consecutive
// Create calls see each other's writes.
func expectStoredPeriod(deps *serviceDeps, stored **bonus.Bonus) {
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).AnyTimes()
	deps.repo.EXPECT().
		FindByPeriod(gomock.Any(), employeeID, typeID, "2024-03").
		DoAndReturn(func(context.Context, string, string, string) (*bonus.Bonus, error) {
			if *stored == nil {
				return nil, gorm.ErrRecordNotFound
			}
			cp := **stored
			return &cp, nil
		}).AnyTimes()
	deps.repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *bonus.Bonus) error {
			cp := *b
			*stored = &cp
			return nil
		}).AnyTimes()
	deps.repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *bonus.Bonus) error {
			cp := *b
			*stored = &cp
			return nil
		}).AnyTimes()
}

func TestBonusService_Create_Reconciliation(t *testing.T) {
	t.Run("distributed remaining months adds to the period", func(t *testing.T) {
		deps := setupServiceTest(t)
		var stored *bonus.Bonus
		expectStoredPeriod(deps, &stored)
		ctx := context.Background()

		testutil.ExpectTx(deps.sqlMock, true)
		first, err := deps.service.Create(ctx, bonus.CreateBonusRequest{
			Items: []bonus.BonusItemRequest{item(1000, adjustment.DistributedRemainingMonths)},
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, first.Created)

		testutil.ExpectTx(deps.sqlMock, true)
		second, err := deps.service.Create(ctx, bonus.CreateBonusRequest{
			Items: []bonus.BonusItemRequest{item(500, adjustment.DistributedRemainingMonths)},
		})
		assert.NoError(t, err)
		assert.Equal(t, 0, second.Created)
		assert.Equal(t, 1, second.Merged)
		assert.Equal(t, "1500", second.Items[0].Amount.String())
		assert.Equal(t, "1500", stored.Amount.String())
		assert.Equal(t, first.Items[0].ID, second.Items[0].ID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("deduct current month never goes below zero", func(t *testing.T) {
		deps := setupServiceTest(t)
		stored := &bonus.Bonus{
			ID:             uuid.New(),
			EmployeeID:     uuid.MustParse(employeeID),
			BonusTypeID:    uuid.MustParse(typeID),
			Amount:         decimal.NewFromInt(1000),
			BonusMonthYear: "2024-03",
			PaymentMethod:  bonus.PaymentWithSalary,
			Status:         "active",
		}
		expectStoredPeriod(deps, &stored)
		ctx := context.Background()

		testutil.ExpectTx(deps.sqlMock, true)
		res, err := deps.service.Create(ctx, bonus.CreateBonusRequest{
			Items: []bonus.BonusItemRequest{item(500, adjustment.DeductCurrentMonth)},
		})
		assert.NoError(t, err)
		assert.Equal(t, "500", res.Items[0].Amount.String())

		testutil.ExpectTx(deps.sqlMock, true)
		res, err = deps.service.Create(ctx, bonus.CreateBonusRequest{
			Items: []bonus.BonusItemRequest{item(700, adjustment.DeductCurrentMonth)},
		})
		assert.NoError(t, err)
		assert.Equal(t, "0", res.Items[0].Amount.String())
		assert.Equal(t, string(adjustment.DeductCurrentMonth), stored.AdjustmentMethod)
	})

	t.Run("percentage uses the salary read in the transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		pct := decimal.RequireFromString("12.5")
		req := bonus.CreateBonusRequest{Items: []bonus.BonusItemRequest{{
			EmployeeID:     employeeID,
			BonusTypeID:    typeID,
			Percentage:     &pct,
			BonusMonthYear: "2024-03",
		}}}

		testutil.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeSalary(gomock.Any(), employeeID).Return(decimal.NewFromInt(80000), nil)
		deps.repo.EXPECT().FindByPeriod(gomock.Any(), employeeID, typeID, "2024-03").Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *bonus.Bonus) error {
				assert.Equal(t, "10000", b.Amount.String())
				assert.Equal(t, bonus.PaymentWithSalary, b.PaymentMethod)
				assert.Equal(t, "active", b.Status)
				return nil
			})

		res, err := deps.service.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Created)
		assert.Equal(t, activitylog.ActionCreate, deps.recorder.Last().Action)
	})

	t.Run("merge replaces the stored percentage", func(t *testing.T) {
		deps := setupServiceTest(t)
		stored := &bonus.Bonus{
			ID:             uuid.New(),
			EmployeeID:     uuid.MustParse(employeeID),
			BonusTypeID:    uuid.MustParse(typeID),
			Amount:         decimal.NewFromInt(8000),
			Percentage:     amountPtr(10),
			BonusMonthYear: "2024-03",
			PaymentMethod:  bonus.PaymentWithSalary,
			Status:         "active",
		}
		expectStoredPeriod(deps, &stored)
		deps.repo.EXPECT().EmployeeSalary(gomock.Any(), employeeID).Return(decimal.NewFromInt(80000), nil)
		ctx := context.Background()

		testutil.ExpectTx(deps.sqlMock, true)
		res, err := deps.service.Create(ctx, bonus.CreateBonusRequest{Items: []bonus.BonusItemRequest{{
			EmployeeID:     employeeID,
			BonusTypeID:    typeID,
			Percentage:     amountPtr(5),
			BonusMonthYear: "2024-03",
		}}})
		assert.NoError(t, err)
		assert.Equal(t, 1, res.Merged)
		if assert.NotNil(t, stored.Percentage) {
			assert.Equal(t, "5", stored.Percentage.String())
		}
		assert.Equal(t, "5", res.Items[0].Percentage.String())

		testutil.ExpectTx(deps.sqlMock, true)
		_, err = deps.service.Create(ctx, bonus.CreateBonusRequest{
			Items: []bonus.BonusItemRequest{item(300, "")},
		})
		assert.NoError(t, err)
		assert.Nil(t, stored.Percentage)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("percentage for unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		pct := decimal.NewFromInt(10)
		req := bonus.CreateBonusRequest{Items: []bonus.BonusItemRequest{{
			EmployeeID:     employeeID,
			BonusTypeID:    typeID,
			Percentage:     &pct,
			BonusMonthYear: "2024-03",
		}}}

		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeSalary(gomock.Any(), employeeID).Return(decimal.Zero, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(context.Background(), req)

		assert.ErrorIs(t, err, bonuserrors.ErrEmployeeNotFound)
	})

	t.Run("one failing item rolls back the batch", func(t *testing.T) {
		deps := setupServiceTest(t)
		second := item(200, "")
		second.BonusTypeID = uuid.NewString()
		req := bonus.CreateBonusRequest{Items: []bonus.BonusItemRequest{item(100, ""), second}}

		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByPeriod(gomock.Any(), gomock.Any(), gomock.Any(), "2024-03").
			Return(nil, gorm.ErrRecordNotFound).Times(2)
		gomock.InOrder(
			deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
			deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
				Return(&pgconn.PgError{Code: "23503", ConstraintName: "fk_bonuses_bonus_type"}),
		)

		_, err := deps.service.Create(context.Background(), req)

		assert.ErrorIs(t, err, bonuserrors.ErrInvalidReference)
		last := deps.recorder.Last()
		assert.Equal(t, activitylog.StatusFailure, last.Status)
		assert.Contains(t, last.ErrorMessage, "23503")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestBonusService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*bonus.BonusItemRequest)
		want   error
	}{
		{"single digit month", func(i *bonus.BonusItemRequest) { i.BonusMonthYear = "2024-3" }, bonuserrors.ErrInvalidPeriod},
		{"no amount or percentage", func(i *bonus.BonusItemRequest) { i.Amount = nil }, bonuserrors.ErrAmountRequired},
		{"negative amount", func(i *bonus.BonusItemRequest) { i.Amount = amountPtr(-5) }, bonuserrors.ErrInvalidAmount},
		{"percentage above hundred", func(i *bonus.BonusItemRequest) {
			i.Amount = nil
			i.Percentage = amountPtr(101)
		}, bonuserrors.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupServiceTest(t)
			it := item(100, "")
			tt.mutate(&it)

			_, err := deps.service.Create(context.Background(), bonus.CreateBonusRequest{Items: []bonus.BonusItemRequest{it}})

			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, deps.recorder.Entries())
		})
	}
}

func TestBonusService_Update(t *testing.T) {
	t.Run("partial update keeps the period", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		existing := &bonus.Bonus{
			ID:             id,
			EmployeeID:     uuid.MustParse(employeeID),
			BonusTypeID:    uuid.MustParse(typeID),
			Amount:         decimal.NewFromInt(1000),
			BonusMonthYear: "2024-03",
			PaymentMethod:  bonus.PaymentWithSalary,
			Status:         "active",
		}
		method := bonus.PaymentSeparate

		testutil.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(existing, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.Update(context.Background(), id.String(), bonus.UpdateBonusRequest{PaymentMethod: &method})

		assert.NoError(t, err)
		assert.Equal(t, bonus.PaymentSeparate, resp.PaymentMethod)
		assert.Equal(t, "1000", resp.Amount.String())
		assert.Equal(t, "2024-03", resp.BonusMonthYear)
		old := deps.recorder.Last().OldValues.(bonus.BonusResponse)
		assert.Equal(t, bonus.PaymentWithSalary, old.PaymentMethod)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()

		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(context.Background(), id, bonus.UpdateBonusRequest{Amount: amountPtr(5)})

		assert.ErrorIs(t, err, bonuserrors.ErrBonusNotFound)
		assert.Equal(t, apperror.CodeNotFound, apperror.ToHTTP(err).Code)
	})
}

func TestBonusService_BulkDelete(t *testing.T) {
	deps := setupServiceTest(t)
	found := uuid.New()
	missing := uuid.NewString()

	testutil.ExpectTx(deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).Return([]bonus.Bonus{{ID: found}}, nil)
	deps.repo.EXPECT().DeleteBulk(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	res, err := deps.service.BulkDelete(context.Background(), []string{found.String(), missing})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), res.Deleted)
	assert.Equal(t, []string{missing}, res.NotFound)
	assert.Equal(t, activitylog.ActionBulkDelete, deps.recorder.Last().Action)
}
