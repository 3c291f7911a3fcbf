package masterdata_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/masterdata"
	masterdataerrors "speed-hrm/internal/masterdata/errors"
	masterdataMock "speed-hrm/internal/masterdata/mock"
	"speed-hrm/internal/shared/apperror"
	"speed-hrm/internal/shared/cache"
	"speed-hrm/internal/shared/contextutil"
	"speed-hrm/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	service   masterdata.Service
	repo      *masterdataMock.MockRepository
	redismock redismock.ClientMock
	recorder  *testutil.RecorderSpy
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, _, sqlMock := testutil.NewGormMock(t)
	rdb, redisMock := redismock.NewClientMock()
	repo := masterdataMock.NewMockRepository(ctrl)
	recorder := &testutil.RecorderSpy{}

	svc := masterdata.NewService(db, repo, recorder, cache.NewListCache(rdb, cache.DefaultTTL))

	return &serviceDeps{
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redismock: redisMock,
		recorder:  recorder,
	}
}

func bonusTypes(t *testing.T) masterdata.Kind {
	kind, ok := masterdata.KindBySlug("bonus-types")
	assert.True(t, ok)
	return kind
}

func actorCtx(userID uuid.UUID) context.Context {
	return contextutil.WithActor(context.Background(), contextutil.Actor{UserID: userID.String(), Role: "admin"})
}

func TestMasterDataService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	kind := bonusTypes(t)
	ctx := context.Background()
	cacheKey := "masterdata:bonus_types:all"

	t.Run("cache hit skips repository", func(t *testing.T) {
		cached, _ := json.Marshal([]masterdata.ItemResponse{{ID: "1", Name: "Eid"}})
		deps.redismock.ExpectGet(cacheKey).SetVal(string(cached))

		resp, err := deps.service.GetAll(ctx, kind, masterdata.ListFilter{})

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Eid", resp[0].Name)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		item := masterdata.Item{ID: uuid.New(), Name: "Performance", Status: "active"}
		expected := []masterdata.ItemResponse{{ID: item.ID.String(), Name: "Performance", Status: "active"}}
		payload, _ := json.Marshal(expected)

		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().FindAll(gomock.Any(), kind, masterdata.ListFilter{}).Return([]masterdata.Item{item}, nil)
		deps.redismock.ExpectSet(cacheKey, string(payload), cache.DefaultTTL).SetVal("OK")

		resp, err := deps.service.GetAll(ctx, kind, masterdata.ListFilter{})

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("filtered list bypasses cache", func(t *testing.T) {
		filter := masterdata.ListFilter{Status: "inactive"}
		deps.repo.EXPECT().FindAll(gomock.Any(), kind, filter).Return([]masterdata.Item{}, nil)

		resp, err := deps.service.GetAll(ctx, kind, filter)

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})
}

func TestMasterDataService_Create(t *testing.T) {
	kind := bonusTypes(t)
	userID := uuid.New()

	t.Run("success defaults status and records activity", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := actorCtx(userID)
		req := masterdata.CreateItemRequest{Name: "  Eid Bonus "}

		deps.repo.EXPECT().
			Create(ctx, kind, gomock.Any()).
			DoAndReturn(func(ctx context.Context, k masterdata.Kind, item *masterdata.Item) error {
				assert.Equal(t, "Eid Bonus", item.Name)
				assert.Equal(t, "active", item.Status)
				assert.Equal(t, userID, *item.CreatedByID)
				return nil
			})
		deps.redismock.ExpectDel("masterdata:bonus_types:all").SetVal(1)

		resp, err := deps.service.Create(ctx, kind, req)

		assert.NoError(t, err)
		assert.Equal(t, "Eid Bonus", resp.Name)
		assert.Equal(t, "active", resp.Status)

		entry := deps.recorder.Last()
		assert.Equal(t, activitylog.ActionCreate, entry.Action)
		assert.Equal(t, "bonus_type", entry.Entity)
		assert.Equal(t, resp.ID, entry.EntityID)
		assert.Equal(t, req, entry.NewValues)
		assert.NotEqual(t, activitylog.StatusFailure, entry.Status)
	})

	t.Run("duplicate name is a conflict and logged as failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := actorCtx(userID)
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_bonus_types_name", Message: "duplicate key value violates unique constraint \"uq_bonus_types_name\""}

		deps.repo.EXPECT().Create(ctx, kind, gomock.Any()).Return(pgErr)

		_, err := deps.service.Create(ctx, kind, masterdata.CreateItemRequest{Name: "Eid"})

		assert.ErrorIs(t, err, masterdataerrors.ErrNameAlreadyExists)
		entry := deps.recorder.Last()
		assert.Equal(t, activitylog.StatusFailure, entry.Status)
		assert.Contains(t, entry.ErrorMessage, "uq_bonus_types_name")
	})

	t.Run("unexpected error stays internal", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Create(gomock.Any(), kind, gomock.Any()).Return(errors.New("connection reset"))

		_, err := deps.service.Create(context.Background(), kind, masterdata.CreateItemRequest{Name: "Eid"})

		assert.Error(t, err)
		assert.Equal(t, apperror.CodeInternalError, apperror.ToHTTP(err).Code)
	})
}

func TestMasterDataService_BulkCreate(t *testing.T) {
	deps := setupServiceTest(t)
	kind := bonusTypes(t)
	ctx := context.Background()

	req := masterdata.BulkCreateItemRequest{Items: []masterdata.CreateItemRequest{
		{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "E"},
	}}

	deps.repo.EXPECT().
		CreateBulk(ctx, kind, gomock.Any()).
		DoAndReturn(func(ctx context.Context, k masterdata.Kind, items []masterdata.Item) (int64, error) {
			assert.Len(t, items, 5)
			return 3, nil
		})
	deps.redismock.ExpectDel("masterdata:bonus_types:all").SetVal(1)

	result, err := deps.service.BulkCreate(ctx, kind, req)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), result.Created)
	assert.Equal(t, int64(2), result.Skipped)
	assert.Equal(t, activitylog.ActionBulkCreate, deps.recorder.Last().Action)
}

func TestMasterDataService_Update(t *testing.T) {
	kind := bonusTypes(t)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		id := uuid.New()
		desc := "paid in december"
		existing := &masterdata.Item{ID: id, Name: "Old", Description: &desc, Status: "active"}
		newName := "New"

		testutil.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, kind, id.String()).Return(existing, nil)
		deps.repo.EXPECT().
			Update(ctx, kind, gomock.Any()).
			DoAndReturn(func(ctx context.Context, k masterdata.Kind, item *masterdata.Item) error {
				assert.Equal(t, "New", item.Name)
				assert.Equal(t, "paid in december", *item.Description)
				assert.Equal(t, "active", item.Status)
				return nil
			})
		deps.redismock.ExpectDel("masterdata:bonus_types:all").SetVal(1)

		resp, err := deps.service.Update(ctx, kind, id.String(), masterdata.UpdateItemRequest{Name: &newName})

		assert.NoError(t, err)
		assert.Equal(t, "New", resp.Name)
		assert.Equal(t, "paid in december", resp.Description)

		entry := deps.recorder.Last()
		assert.Equal(t, "Old", entry.OldValues.(masterdata.ItemResponse).Name)
		assert.Equal(t, "New", entry.NewValues.(masterdata.ItemResponse).Name)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		id := uuid.New().String()

		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, kind, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, kind, id, masterdata.UpdateItemRequest{})

		assert.ErrorIs(t, err, masterdataerrors.ErrItemNotFound)
		assert.Equal(t, activitylog.StatusFailure, deps.recorder.Last().Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Update(context.Background(), kind, "abc", masterdata.UpdateItemRequest{})

		assert.ErrorIs(t, err, apperror.ErrInvalidID)
		assert.Empty(t, deps.recorder.Entries())
	})
}

func TestMasterDataService_Delete(t *testing.T) {
	kind := bonusTypes(t)

	t.Run("success snapshots old values", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		id := uuid.New()

		testutil.ExpectTx(deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, kind, id.String()).Return(&masterdata.Item{ID: id, Name: "Eid"}, nil)
		deps.repo.EXPECT().Delete(ctx, kind, id.String()).Return(nil)
		deps.redismock.ExpectDel("masterdata:bonus_types:all").SetVal(1)

		err := deps.service.Delete(ctx, kind, id.String())

		assert.NoError(t, err)
		entry := deps.recorder.Last()
		assert.Equal(t, activitylog.ActionDelete, entry.Action)
		assert.Equal(t, "Eid", entry.OldValues.(masterdata.ItemResponse).Name)
	})

	t.Run("referenced row is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		ctx := context.Background()
		id := uuid.New()

		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, kind, id.String()).Return(&masterdata.Item{ID: id, Name: "Eid"}, nil)
		deps.repo.EXPECT().Delete(ctx, kind, id.String()).Return(&pgconn.PgError{Code: "23503", ConstraintName: "fk_bonuses_bonus_type"})

		err := deps.service.Delete(ctx, kind, id.String())

		assert.ErrorIs(t, err, masterdataerrors.ErrItemInUse)
		assert.Equal(t, apperror.CodeInvalidState, apperror.ToHTTP(err).Code)
	})
}

func TestMasterDataService_BulkDelete(t *testing.T) {
	deps := setupServiceTest(t)
	kind := bonusTypes(t)
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	testutil.ExpectTx(deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByIDs(ctx, kind, []string{a.String(), b.String()}).Return([]masterdata.Item{{ID: a, Name: "A"}}, nil)
	deps.repo.EXPECT().DeleteBulk(ctx, kind, []string{a.String(), b.String()}).Return(int64(1), nil)
	deps.redismock.ExpectDel("masterdata:bonus_types:all").SetVal(1)

	result, err := deps.service.BulkDelete(ctx, kind, []string{a.String(), b.String()})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.Deleted)
	assert.Equal(t, []string{b.String()}, result.NotFound)
	assert.Len(t, deps.recorder.Last().OldValues, 1)
}

func TestKinds(t *testing.T) {
	kinds := masterdata.Kinds()
	assert.Len(t, kinds, 13)

	seen := map[string]bool{}
	for _, k := range kinds {
		assert.False(t, seen[k.Table], "duplicate table %s", k.Table)
		seen[k.Table] = true
		assert.Equal(t, "uq_"+k.Table+"_name", k.NameIndex())
	}

	_, ok := masterdata.KindBySlug("nope")
	assert.False(t, ok)
}
