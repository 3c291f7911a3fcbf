package geography_test

import (
	"context"
	"testing"

	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/geography"
	geographyerrors "speed-hrm/internal/geography/errors"
	geographyMock "speed-hrm/internal/geography/mock"
	"speed-hrm/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock  sqlmock.Sqlmock
	service  geography.Service
	repo     *geographyMock.MockRepository
	recorder *testutil.RecorderSpy
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, _, sqlMock := testutil.NewGormMock(t)
	repo := geographyMock.NewMockRepository(ctrl)
	recorder := &testutil.RecorderSpy{}

	return &serviceDeps{
		sqlMock:  sqlMock,
		service:  geography.NewService(db, repo, recorder),
		repo:     repo,
		recorder: recorder,
	}
}

func TestGeographyService_CreateCountry(t *testing.T) {
	t.Run("normalizes iso code", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().CreateCountry(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.CreateCountry(context.Background(), geography.CreateCountryRequest{
			Name: " Pakistan ",
			ISO2: "pk",
		})

		assert.NoError(t, err)
		assert.Equal(t, "PK", resp.ISO2)
		assert.Equal(t, "Pakistan", resp.Name)
		assert.Equal(t, activitylog.ActionCreate, deps.recorder.Last().Action)
	})

	t.Run("duplicate iso code", func(t *testing.T) {
		deps := setupServiceTest(t)
		pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "uq_countries_iso2"}
		deps.repo.EXPECT().CreateCountry(gomock.Any(), gomock.Any()).Return(pgErr)

		_, err := deps.service.CreateCountry(context.Background(), geography.CreateCountryRequest{Name: "Pakistan", ISO2: "PK"})

		assert.ErrorIs(t, err, geographyerrors.ErrCountryExists)
		assert.Equal(t, activitylog.StatusFailure, deps.recorder.Last().Status)
	})
}

func TestGeographyService_DeleteState(t *testing.T) {
	id := uuid.New()

	t.Run("still has cities", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindStateByID(gomock.Any(), id.String()).Return(&geography.State{ID: id, Name: "Sindh"}, nil)
		deps.repo.EXPECT().DeleteState(gomock.Any(), id.String()).
			Return(&pgconn.PgError{Code: "23503", ConstraintName: "fk_cities_state"})

		err := deps.service.DeleteState(context.Background(), id.String())

		assert.ErrorIs(t, err, geographyerrors.ErrStateInUse)
		assert.Contains(t, deps.recorder.Last().ErrorMessage, "23503")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindStateByID(gomock.Any(), id.String()).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.DeleteState(context.Background(), id.String())

		assert.ErrorIs(t, err, geographyerrors.ErrStateNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestGeographyService_CreateCity(t *testing.T) {
	stateID := uuid.New().String()

	t.Run("unknown state", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().CreateCity(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23503", ConstraintName: "fk_cities_state"})

		_, err := deps.service.CreateCity(context.Background(), geography.CreateCityRequest{StateID: stateID, Name: "Hub"})

		assert.ErrorIs(t, err, geographyerrors.ErrStateReferenceMissing)
	})

	t.Run("status defaults to active", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().CreateCity(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.CreateCity(context.Background(), geography.CreateCityRequest{StateID: stateID, Name: "Hub"})

		assert.NoError(t, err)
		assert.Equal(t, "active", resp.Status)
		assert.Equal(t, stateID, resp.StateID)
	})
}

func TestGeographyService_BulkCreateCities(t *testing.T) {
	deps := setupServiceTest(t)
	stateID := uuid.New().String()
	deps.repo.EXPECT().CreateCities(gomock.Any(), gomock.Len(3)).Return(int64(2), nil)

	result, err := deps.service.BulkCreateCities(context.Background(), geography.BulkCreateCityRequest{
		Items: []geography.CreateCityRequest{
			{StateID: stateID, Name: "Hub"},
			{StateID: stateID, Name: "Sibi"},
			{StateID: stateID, Name: "Zhob"},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), result.Created)
	assert.Equal(t, int64(1), result.Skipped)
	assert.Contains(t, deps.recorder.Last().Description, "1 skipped")
}

func TestGeographyService_UpdateCity(t *testing.T) {
	deps := setupServiceTest(t)
	id := uuid.New()
	lat, lng := 29.0, 66.5
	stored := &geography.City{ID: id, StateID: uuid.New(), Name: "Kalat", Latitude: &lat, Longitude: &lng, Status: "active"}

	testutil.ExpectTx(deps.sqlMock, true)
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindCityByID(gomock.Any(), id.String()).Return(stored, nil)
	deps.repo.EXPECT().UpdateCity(gomock.Any(), gomock.Any()).Return(nil)

	status := "inactive"
	resp, err := deps.service.UpdateCity(context.Background(), id.String(), geography.UpdateCityRequest{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, "inactive", resp.Status)
	assert.Equal(t, "Kalat", resp.Name)
	assert.Equal(t, &lat, resp.Latitude)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
