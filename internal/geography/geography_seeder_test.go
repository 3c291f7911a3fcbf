package geography_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/geography"
	geographyerrors "speed-hrm/internal/geography/errors"
	geographyMock "speed-hrm/internal/geography/mock"
	"speed-hrm/internal/shared/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func writeCityFile(t *testing.T, rows []map[string]any) string {
	t.Helper()
	raw, err := json.Marshal(rows)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "cities.json")
	require.NoError(t, os.WriteFile(path, raw, 0o600))
	return path
}

func TestLoadCityRecords_StringAndNumberCoordinates(t *testing.T) {
	path := writeCityFile(t, []map[string]any{
		{"city": "Karachi", "lat": "24.86", "lng": "67.01", "country": "Pakistan", "iso2": "PK"},
		{"city": "Lahore", "lat": 31.55, "lng": 74.34, "country": "Pakistan", "iso2": "PK"},
		{"city": "Nowhere", "lat": "", "lng": nil, "country": "Pakistan", "iso2": "PK"},
	})

	records, err := geography.LoadCityRecords(path)

	require.NoError(t, err)
	require.Len(t, records, 3)
	require.NotNil(t, records[0].Latitude())
	assert.InDelta(t, 24.86, *records[0].Latitude(), 1e-9)
	assert.InDelta(t, 74.34, *records[1].Longitude(), 1e-9)
	assert.Nil(t, records[2].Latitude())
	assert.Nil(t, records[2].Longitude())
}

func TestSeeder_SeedCities(t *testing.T) {
	ctrl := gomock.NewController(t)
	db, _, sqlMock := testutil.NewGormMock(t)
	repo := geographyMock.NewMockRepository(ctrl)
	recorder := &testutil.RecorderSpy{}
	seeder := geography.NewSeeder(db, repo, recorder, nil)

	path := writeCityFile(t, []map[string]any{
		{"city": "Karachi", "lat": "24.86", "lng": "67.01", "country": "Pakistan", "iso2": "PK"},
		{"city": "Tarlai", "lat": "33.65", "lng": "73.15", "country": "Pakistan", "iso2": "PK"},
		{"city": "Lahore", "lat": "31.55", "lng": "74.34", "country": "Pakistan", "iso2": "PK"},
		{"city": "Dubai", "lat": "25.26", "lng": "55.30", "country": "United Arab Emirates", "iso2": "AE"},
	})

	countryID := uuid.New()
	sindhID := uuid.New()

	testutil.ExpectTx(sqlMock, true)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().FindCountryByISO2(gomock.Any(), "PK").Return(&geography.Country{ID: countryID, ISO2: "PK"}, nil)
	repo.EXPECT().FindStateByName(gomock.Any(), countryID, geography.ProvinceSindh).
		Return(&geography.State{ID: sindhID, CountryID: countryID, Name: geography.ProvinceSindh}, nil)
	repo.EXPECT().FindStateByName(gomock.Any(), countryID, geography.ProvinceFederal).Return(nil, gorm.ErrRecordNotFound)
	repo.EXPECT().FindStateByName(gomock.Any(), countryID, geography.ProvincePunjab).Return(nil, gorm.ErrRecordNotFound)
	repo.EXPECT().CreateState(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	repo.EXPECT().
		CreateCities(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cities []geography.City) (int64, error) {
			require.Len(t, cities, 3)
			for _, c := range cities {
				assert.NotEqual(t, "Dubai", c.Name)
				if c.Name == "Karachi" {
					assert.Equal(t, sindhID, c.StateID)
				}
			}
			return 2, nil
		})

	result, err := seeder.SeedCities(context.Background(), path, "pk")

	require.NoError(t, err)
	assert.Equal(t, "PK", result.Country)
	assert.Equal(t, 2, result.StatesCreated)
	assert.Equal(t, int64(2), result.CitiesCreated)
	assert.Equal(t, int64(1), result.CitiesSkipped)
	assert.Equal(t, activitylog.ActionSeed, recorder.Last().Action)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestSeeder_CreatesMissingCountry(t *testing.T) {
	ctrl := gomock.NewController(t)
	db, _, sqlMock := testutil.NewGormMock(t)
	repo := geographyMock.NewMockRepository(ctrl)
	seeder := geography.NewSeeder(db, repo, nil, nil)

	records := []geography.CityRecord{{City: "Quetta", Country: "Pakistan", ISO2: "PK"}}

	testutil.ExpectTx(sqlMock, true)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().FindCountryByISO2(gomock.Any(), "PK").Return(nil, gorm.ErrRecordNotFound)
	repo.EXPECT().
		CreateCountry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *geography.Country) error {
			assert.Equal(t, "Pakistan", c.Name)
			assert.Equal(t, "PK", c.ISO2)
			return nil
		})
	repo.EXPECT().FindStateByName(gomock.Any(), gomock.Any(), geography.ProvinceBalochistan).Return(nil, gorm.ErrRecordNotFound)
	repo.EXPECT().CreateState(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().CreateCities(gomock.Any(), gomock.Len(1)).Return(int64(1), nil)

	result, err := seeder.Seed(context.Background(), records, "PK")

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.CitiesCreated)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestSeeder_NoMatchingRows(t *testing.T) {
	db, _, _ := testutil.NewGormMock(t)
	seeder := geography.NewSeeder(db, nil, nil, nil)

	_, err := seeder.Seed(context.Background(), []geography.CityRecord{{City: "Dubai", ISO2: "AE"}}, "PK")

	assert.ErrorIs(t, err, geographyerrors.ErrNoCitiesForCountry)
}
