package geography

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"speed-hrm/internal/activitylog"
	geographyerrors "speed-hrm/internal/geography/errors"
	"speed-hrm/internal/shared/dberr"
	"speed-hrm/internal/shared/model"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// coordinate accepts both JSON numbers and numeric strings. Empty values
// decode as missing.
type coordinate struct {
	value *float64
}

func (c *coordinate) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || string(data) == "null" {
		c.value = nil
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("parse coordinate %q: %w", data, err)
	}
	c.value = &v
	return nil
}

// CityRecord is one row of the seed file.
type CityRecord struct {
	City      string     `json:"city"`
	Lat       coordinate `json:"lat"`
	Lng       coordinate `json:"lng"`
	Country   string     `json:"country"`
	ISO2      string     `json:"iso2"`
	AdminName string     `json:"admin_name"`
}

func (r CityRecord) Latitude() *float64  { return r.Lat.value }
func (r CityRecord) Longitude() *float64 { return r.Lng.value }

func LoadCityRecords(path string) ([]CityRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read city file: %w", err)
	}
	var records []CityRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode city file: %w", err)
	}
	return records, nil
}

type Seeder struct {
	db       *gorm.DB
	repo     Repository
	recorder activitylog.Recorder
	logger   *zap.Logger
}

func NewSeeder(db *gorm.DB, repo Repository, recorder activitylog.Recorder, logger *zap.Logger) *Seeder {
	if recorder == nil {
		recorder = activitylog.NopRecorder{}
	}
	if logger == nil {
		logger = zap.L()
	}
	return &Seeder{db: db, repo: repo, recorder: recorder, logger: logger.Named("geography.seeder")}
}

// SeedCities imports the cities of one country from the JSON file at path.
func (s *Seeder) SeedCities(ctx context.Context, path, countryCode string) (SeedCitiesResult, error) {
	records, err := LoadCityRecords(path)
	if err != nil {
		return SeedCitiesResult{}, err
	}
	return s.Seed(ctx, records, countryCode)
}

// Seed upserts the country and one state per resolved province, then inserts
// the cities. Cities already present under their state are skipped.
func (s *Seeder) Seed(ctx context.Context, records []CityRecord, countryCode string) (SeedCitiesResult, error) {
	code := strings.ToUpper(strings.TrimSpace(countryCode))

	var matched []CityRecord
	for _, r := range records {
		if strings.EqualFold(strings.TrimSpace(r.ISO2), code) && strings.TrimSpace(r.City) != "" {
			matched = append(matched, r)
		}
	}
	if len(matched) == 0 {
		return SeedCitiesResult{}, geographyerrors.ErrNoCitiesForCountry
	}

	byProvince := make(map[string][]CityRecord)
	for _, r := range matched {
		province := ResolveProvince(r.City, r.Latitude(), r.Longitude())
		byProvince[province] = append(byProvince[province], r)
	}
	provinces := make([]string, 0, len(byProvince))
	for p := range byProvince {
		provinces = append(provinces, p)
	}
	sort.Strings(provinces)

	entry := activitylog.Entry{
		Action: activitylog.ActionSeed,
		Module: auditModule,
		Entity: "city",
	}

	result := SeedCitiesResult{Country: code}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		country, err := s.ensureCountry(ctx, qtx, code, matched[0].Country)
		if err != nil {
			return err
		}

		var cities []City
		for _, province := range provinces {
			state, created, err := s.ensureState(ctx, qtx, country.ID, province)
			if err != nil {
				return err
			}
			if created {
				result.StatesCreated++
			}
			for _, r := range byProvince[province] {
				city := City{
					ID:        uuid.New(),
					StateID:   state.ID,
					Name:      strings.TrimSpace(r.City),
					Latitude:  r.Latitude(),
					Longitude: r.Longitude(),
					Status:    model.StatusActive,
				}
				city.StampCreate(ctx)
				cities = append(cities, city)
			}
		}

		result.CitiesCreated, err = qtx.CreateCities(ctx, cities)
		if err != nil {
			return err
		}
		result.CitiesSkipped = int64(len(cities)) - result.CitiesCreated
		return nil
	})
	if err != nil {
		s.logger.Error("seed cities failed", zap.String("country", code), zap.Error(err))
		entry.Description = fmt.Sprintf("Failed to seed cities for %s", code)
		s.recorder.Record(ctx, entry.Failed(err))
		return SeedCitiesResult{}, mapCityError(err)
	}

	entry.Description = fmt.Sprintf("Seeded cities for %s (%d created, %d skipped)",
		code, result.CitiesCreated, result.CitiesSkipped)
	entry.NewValues = result
	s.recorder.Record(ctx, entry)
	s.logger.Info("seed cities success",
		zap.String("country", code),
		zap.Int("states_created", result.StatesCreated),
		zap.Int64("cities_created", result.CitiesCreated),
		zap.Int64("cities_skipped", result.CitiesSkipped),
	)
	return result, nil
}

func (s *Seeder) ensureCountry(ctx context.Context, qtx Repository, code, name string) (*Country, error) {
	country, err := qtx.FindCountryByISO2(ctx, code)
	if err == nil {
		return country, nil
	}
	if !dberr.IsNotFound(err) {
		return nil, err
	}

	if strings.TrimSpace(name) == "" {
		name = code
	}
	country = &Country{ID: uuid.New(), Name: strings.TrimSpace(name), ISO2: code}
	country.StampCreate(ctx)
	if err := qtx.CreateCountry(ctx, country); err != nil {
		return nil, err
	}
	return country, nil
}

func (s *Seeder) ensureState(ctx context.Context, qtx Repository, countryID uuid.UUID, name string) (*State, bool, error) {
	state, err := qtx.FindStateByName(ctx, countryID, name)
	if err == nil {
		return state, false, nil
	}
	if !dberr.IsNotFound(err) {
		return nil, false, err
	}

	state = &State{ID: uuid.New(), CountryID: countryID, Name: name}
	state.StampCreate(ctx)
	if err := qtx.CreateState(ctx, state); err != nil {
		return nil, false, err
	}
	return state, true, nil
}
