package chartofaccount_test

import (
	"context"
	"errors"
	"testing"

	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/chartofaccount"
	chartofaccounterrors "speed-hrm/internal/chartofaccount/errors"
	chartofaccountMock "speed-hrm/internal/chartofaccount/mock"
	"speed-hrm/internal/shared/apperror"
	"speed-hrm/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock  sqlmock.Sqlmock
	service  chartofaccount.Service
	repo     *chartofaccountMock.MockRepository
	recorder *testutil.RecorderSpy
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, _, sqlMock := testutil.NewGormMock(t)
	repo := chartofaccountMock.NewMockRepository(ctrl)
	recorder := &testutil.RecorderSpy{}

	return &serviceDeps{
		sqlMock:  sqlMock,
		service:  chartofaccount.NewService(db, repo, recorder),
		repo:     repo,
		recorder: recorder,
	}
}

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }

func assertInvalidState(t *testing.T, err error) {
	t.Helper()
	var appErr *apperror.AppError
	if assert.True(t, errors.As(err, &appErr)) {
		assert.Equal(t, apperror.CodeInvalidState, appErr.Code)
	}
}

func TestChartOfAccountService_Create(t *testing.T) {
	parentID := uuid.New()

	t.Run("under group parent", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), parentID.String()).
			Return(&chartofaccount.Account{ID: parentID, Code: "11", IsGroup: true}, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.Create(context.Background(), chartofaccount.CreateAccountRequest{
			Code:     " 1103 ",
			Name:     "Prepayments",
			Type:     "ASSET",
			ParentID: strPtr(parentID.String()),
		})

		assert.NoError(t, err)
		assert.Equal(t, "1103", resp.Code)
		assert.Equal(t, parentID.String(), resp.ParentID)
		assert.True(t, resp.IsActive)
		assert.Equal(t, activitylog.ActionCreate, deps.recorder.Last().Action)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("parent is not a group", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), parentID.String()).
			Return(&chartofaccount.Account{ID: parentID, Code: "110101"}, nil)

		_, err := deps.service.Create(context.Background(), chartofaccount.CreateAccountRequest{
			Code:     "11010101",
			Name:     "Petty Cash",
			Type:     "ASSET",
			ParentID: strPtr(parentID.String()),
		})

		assert.ErrorIs(t, err, chartofaccounterrors.ErrParentNotGroup)
		assertInvalidState(t, err)
		assert.Equal(t, activitylog.StatusFailure, deps.recorder.Last().Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("parent missing", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), parentID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(context.Background(), chartofaccount.CreateAccountRequest{
			Code:     "9",
			Name:     "Orphan",
			Type:     "ASSET",
			ParentID: strPtr(parentID.String()),
		})

		assert.ErrorIs(t, err, chartofaccounterrors.ErrParentNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestChartOfAccountService_Update(t *testing.T) {
	rootID := uuid.New()
	childID := uuid.New()
	grandchildID := uuid.New()

	root := chartofaccount.Account{ID: rootID, Code: "1", IsGroup: true}
	child := chartofaccount.Account{ID: childID, Code: "11", IsGroup: true, ParentID: &rootID}
	grandchild := chartofaccount.Account{ID: grandchildID, Code: "1101", IsGroup: true, ParentID: &childID}

	t.Run("self parent", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		acc := child
		deps.repo.EXPECT().FindByID(gomock.Any(), childID.String()).Return(&acc, nil)

		_, err := deps.service.Update(context.Background(), childID.String(), chartofaccount.UpdateAccountRequest{
			ParentID: strPtr(childID.String()),
		})

		assert.ErrorIs(t, err, chartofaccounterrors.ErrSelfParent)
		assertInvalidState(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("moving under own descendant", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		acc, gc := root, grandchild
		c := child
		deps.repo.EXPECT().FindByID(gomock.Any(), rootID.String()).Return(&acc, nil)
		deps.repo.EXPECT().FindByID(gomock.Any(), grandchildID.String()).Return(&gc, nil)
		deps.repo.EXPECT().FindByID(gomock.Any(), childID.String()).Return(&c, nil)

		_, err := deps.service.Update(context.Background(), rootID.String(), chartofaccount.UpdateAccountRequest{
			ParentID: strPtr(grandchildID.String()),
		})

		assert.ErrorIs(t, err, chartofaccounterrors.ErrCircularParent)
		assertInvalidState(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("ungrouping with children", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		acc := child
		deps.repo.EXPECT().FindByID(gomock.Any(), childID.String()).Return(&acc, nil)
		deps.repo.EXPECT().CountChildren(gomock.Any(), []string{childID.String()}).Return(int64(1), nil)

		_, err := deps.service.Update(context.Background(), childID.String(), chartofaccount.UpdateAccountRequest{
			IsGroup: boolPtr(false),
		})

		assert.ErrorIs(t, err, chartofaccounterrors.ErrAccountHasChildren)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("rename and move to root", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		acc := grandchild
		deps.repo.EXPECT().FindByID(gomock.Any(), grandchildID.String()).Return(&acc, nil)
		deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.Update(context.Background(), grandchildID.String(), chartofaccount.UpdateAccountRequest{
			Name:        strPtr("Cash"),
			ClearParent: true,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Cash", resp.Name)
		assert.Empty(t, resp.ParentID)
		entry := deps.recorder.Last()
		assert.Equal(t, activitylog.ActionUpdate, entry.Action)
		assert.NotNil(t, entry.OldValues)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestChartOfAccountService_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("has children", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).
			Return(&chartofaccount.Account{ID: id, Code: "11", IsGroup: true}, nil)
		deps.repo.EXPECT().CountChildren(gomock.Any(), []string{id.String()}).Return(int64(2), nil)

		err := deps.service.Delete(context.Background(), id.String())

		assert.ErrorIs(t, err, chartofaccounterrors.ErrAccountHasChildren)
		assertInvalidState(t, err)
		assert.Equal(t, activitylog.StatusFailure, deps.recorder.Last().Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("leaf", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).
			Return(&chartofaccount.Account{ID: id, Code: "110101"}, nil)
		deps.repo.EXPECT().CountChildren(gomock.Any(), []string{id.String()}).Return(int64(0), nil)
		deps.repo.EXPECT().Delete(gomock.Any(), id.String()).Return(nil)

		err := deps.service.Delete(context.Background(), id.String())

		assert.NoError(t, err)
		assert.Equal(t, activitylog.ActionDelete, deps.recorder.Last().Action)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(context.Background(), id.String())

		assert.ErrorIs(t, err, chartofaccounterrors.ErrAccountNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestChartOfAccountService_BulkDelete(t *testing.T) {
	a, b, missing := uuid.New(), uuid.New(), uuid.New()
	ids := []string{a.String(), b.String(), missing.String()}

	deps := setupServiceTest(t)
	testutil.ExpectTx(deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByIDs(gomock.Any(), ids).Return([]chartofaccount.Account{
		{ID: a, Code: "5201"},
		{ID: b, Code: "5202"},
	}, nil)
	deps.repo.EXPECT().CountChildren(gomock.Any(), ids).Return(int64(0), nil)
	deps.repo.EXPECT().DeleteBulk(gomock.Any(), ids).Return(int64(2), nil)

	result, err := deps.service.BulkDelete(context.Background(), ids)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), result.Deleted)
	assert.Equal(t, []string{missing.String()}, result.NotFound)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestChartOfAccountService_BulkDelete_ParentWithChild(t *testing.T) {
	parent, child := uuid.New(), uuid.New()
	ids := []string{parent.String(), child.String()}

	deps := setupServiceTest(t)
	testutil.ExpectTx(deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByIDs(gomock.Any(), ids).Return([]chartofaccount.Account{
		{ID: parent, Code: "5200", IsGroup: true},
		{ID: child, Code: "5201", ParentID: &parent},
	}, nil)
	deps.repo.EXPECT().CountChildren(gomock.Any(), ids).Return(int64(0), nil)
	deps.repo.EXPECT().DeleteBulk(gomock.Any(), ids).Return(int64(2), nil)

	result, err := deps.service.BulkDelete(context.Background(), ids)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), result.Deleted)
	assert.Empty(t, result.NotFound)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestChartOfAccountService_BulkCreate_ParentCode(t *testing.T) {
	t.Run("parent declared later in the batch", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CreateBulk(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, accs []chartofaccount.Account) (int64, error) {
				assert.Len(t, accs, 2)
				assert.Equal(t, "7000", accs[0].Code)
				assert.Equal(t, "7001", accs[1].Code)
				if assert.NotNil(t, accs[1].ParentID) {
					assert.Equal(t, accs[0].ID, *accs[1].ParentID)
				}
				return 2, nil
			})

		result, err := deps.service.BulkCreate(context.Background(), chartofaccount.BulkCreateAccountRequest{
			Items: []chartofaccount.CreateAccountRequest{
				{Code: "7001", Name: "Travel", Type: "EXPENSE", ParentCode: strPtr("7000")},
				{Code: "7000", Name: "Operating", Type: "EXPENSE", IsGroup: true},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(2), result.Created)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("stored parent by code", func(t *testing.T) {
		deps := setupServiceTest(t)
		groupID := uuid.New()
		testutil.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByCode(gomock.Any(), "5").
			Return(&chartofaccount.Account{ID: groupID, Code: "5", IsGroup: true}, nil)
		deps.repo.EXPECT().CreateBulk(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, accs []chartofaccount.Account) (int64, error) {
				assert.Equal(t, groupID, *accs[0].ParentID)
				return 1, nil
			})

		_, err := deps.service.BulkCreate(context.Background(), chartofaccount.BulkCreateAccountRequest{
			Items: []chartofaccount.CreateAccountRequest{
				{Code: "5301", Name: "Fuel", Type: "EXPENSE", ParentCode: strPtr("5")},
			},
		})

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("cycle inside the batch", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		_, err := deps.service.BulkCreate(context.Background(), chartofaccount.BulkCreateAccountRequest{
			Items: []chartofaccount.CreateAccountRequest{
				{Code: "A", Name: "A", Type: "ASSET", IsGroup: true, ParentCode: strPtr("B")},
				{Code: "B", Name: "B", Type: "ASSET", IsGroup: true, ParentCode: strPtr("A")},
			},
		})

		assert.ErrorIs(t, err, chartofaccounterrors.ErrCircularParent)
		assert.Equal(t, activitylog.StatusFailure, deps.recorder.Last().Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown parent code", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByCode(gomock.Any(), "404").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.BulkCreate(context.Background(), chartofaccount.BulkCreateAccountRequest{
			Items: []chartofaccount.CreateAccountRequest{
				{Code: "4041", Name: "Orphan", Type: "ASSET", ParentCode: strPtr("404")},
			},
		})

		assert.ErrorIs(t, err, chartofaccounterrors.ErrParentNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
