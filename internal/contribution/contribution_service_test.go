package contribution_test

import (
	"context"
	"testing"

	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/contribution"
	contributionerrors "speed-hrm/internal/contribution/errors"
	contributionMock "speed-hrm/internal/contribution/mock"
	"speed-hrm/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock  sqlmock.Sqlmock
	service  contribution.Service
	repo     *contributionMock.MockRepository
	recorder *testutil.RecorderSpy
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, _, sqlMock := testutil.NewGormMock(t)
	repo := contributionMock.NewMockRepository(ctrl)
	recorder := &testutil.RecorderSpy{}

	return &serviceDeps{
		sqlMock:  sqlMock,
		service:  contribution.NewService(db, repo, recorder),
		repo:     repo,
		recorder: recorder,
	}
}

func dec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestContributionService_Create(t *testing.T) {
	employeeID := uuid.NewString()

	t.Run("explicit amounts", func(t *testing.T) {
		deps := setupServiceTest(t)

		testutil.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), contribution.EOBI, gomock.Any()).Return(nil)

		resp, err := deps.service.Create(context.Background(), contribution.EOBI, contribution.CreateContributionRequest{
			EmployeeID:     employeeID,
			MonthYear:      "2024-07",
			EmployeeAmount: dec("370"),
			EmployerAmount: dec("1850"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "2220", resp.Total.String())
		assert.Equal(t, "eobi", resp.Scheme)
		assert.Equal(t, "eobi", deps.recorder.Last().Entity)
	})

	t.Run("percentage fills omitted shares", func(t *testing.T) {
		deps := setupServiceTest(t)

		testutil.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeSalary(gomock.Any(), employeeID).Return(decimal.NewFromInt(150000), nil)
		deps.repo.EXPECT().
			Create(gomock.Any(), contribution.ProvidentFund, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ contribution.Scheme, c *contribution.Contribution) error {
				assert.Equal(t, "12495", c.EmployeeAmount.String())
				assert.Equal(t, "5000", c.EmployerAmount.String())
				return nil
			})

		_, err := deps.service.Create(context.Background(), contribution.ProvidentFund, contribution.CreateContributionRequest{
			EmployeeID:     employeeID,
			MonthYear:      "2024-07",
			EmployerAmount: dec("5000"),
			Percentage:     dec("8.33"),
		})

		assert.NoError(t, err)
	})

	t.Run("duplicate month", func(t *testing.T) {
		deps := setupServiceTest(t)

		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(gomock.Any(), contribution.ProvidentFund, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_provident_funds_employee_period"})

		_, err := deps.service.Create(context.Background(), contribution.ProvidentFund, contribution.CreateContributionRequest{
			EmployeeID:     employeeID,
			MonthYear:      "2024-07",
			EmployeeAmount: dec("100"),
		})

		assert.ErrorIs(t, err, contributionerrors.ErrContributionExists)
		assert.Equal(t, activitylog.StatusFailure, deps.recorder.Last().Status)
	})

	t.Run("invalid month", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(context.Background(), contribution.EOBI, contribution.CreateContributionRequest{
			EmployeeID: employeeID,
			MonthYear:  "07-2024",
		})

		assert.ErrorIs(t, err, contributionerrors.ErrInvalidPeriod)
	})

	t.Run("unknown employee for percentage", func(t *testing.T) {
		deps := setupServiceTest(t)

		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeSalary(gomock.Any(), employeeID).Return(decimal.Zero, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(context.Background(), contribution.EOBI, contribution.CreateContributionRequest{
			EmployeeID: employeeID,
			MonthYear:  "2024-07",
			Percentage: dec("5"),
		})

		assert.ErrorIs(t, err, contributionerrors.ErrUnknownEmployee)
	})
}

func TestContributionService_BulkCreate_SkipsDuplicates(t *testing.T) {
	deps := setupServiceTest(t)
	items := make([]contribution.CreateContributionRequest, 4)
	for i := range items {
		items[i] = contribution.CreateContributionRequest{
			EmployeeID:     uuid.NewString(),
			MonthYear:      "2024-08",
			EmployeeAmount: dec("100"),
		}
	}

	testutil.ExpectTx(deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().CreateBulk(gomock.Any(), contribution.EOBI, gomock.Len(4)).Return(int64(3), nil)

	res, err := deps.service.BulkCreate(context.Background(), contribution.EOBI, contribution.BulkCreateContributionRequest{Items: items})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), res.Created)
	assert.Equal(t, int64(1), res.Skipped)
	assert.Contains(t, deps.recorder.Last().Description, "1 skipped")
}

func TestContributionService_Delete_NotFound(t *testing.T) {
	deps := setupServiceTest(t)
	id := uuid.NewString()

	testutil.ExpectTx(deps.sqlMock, false)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByID(gomock.Any(), contribution.ProvidentFund, id).Return(nil, gorm.ErrRecordNotFound)

	err := deps.service.Delete(context.Background(), contribution.ProvidentFund, id)

	assert.ErrorIs(t, err, contributionerrors.ErrContributionNotFound)
}

func TestSchemes(t *testing.T) {
	assert.Len(t, contribution.Schemes(), 2)
	assert.Equal(t, "uq_eobis_employee_period", contribution.EOBI.PeriodIndex())
	assert.Equal(t, "fk_provident_funds_employee", contribution.ProvidentFund.EmployeeForeignKey())
}
