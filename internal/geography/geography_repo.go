package geography

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const cityBatchSize = 500

//go:generate mockgen -source=geography_repo.go -destination=mock/geography_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	FindCountries(ctx context.Context) ([]Country, error)
	FindCountryByID(ctx context.Context, id string) (*Country, error)
	FindCountryByISO2(ctx context.Context, iso2 string) (*Country, error)
	CreateCountry(ctx context.Context, country *Country) error
	UpdateCountry(ctx context.Context, country *Country) error
	DeleteCountry(ctx context.Context, id string) error

	FindStates(ctx context.Context, filter StateFilter) ([]State, error)
	FindStateByID(ctx context.Context, id string) (*State, error)
	FindStateByName(ctx context.Context, countryID uuid.UUID, name string) (*State, error)
	CreateState(ctx context.Context, state *State) error
	UpdateState(ctx context.Context, state *State) error
	DeleteState(ctx context.Context, id string) error

	FindCities(ctx context.Context, filter CityFilter) ([]City, error)
	FindCityByID(ctx context.Context, id string) (*City, error)
	FindCitiesByIDs(ctx context.Context, ids []string) ([]City, error)
	CreateCity(ctx context.Context, city *City) error
	CreateCities(ctx context.Context, cities []City) (int64, error)
	UpdateCity(ctx context.Context, city *City) error
	DeleteCity(ctx context.Context, id string) error
	DeleteCities(ctx context.Context, ids []string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) FindCountries(ctx context.Context) ([]Country, error) {
	countries := []Country{}
	err := r.db.WithContext(ctx).Order("name ASC").Find(&countries).Error
	return countries, err
}

func (r *repository) FindCountryByID(ctx context.Context, id string) (*Country, error) {
	var country Country
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&country).Error; err != nil {
		return nil, err
	}
	return &country, nil
}

func (r *repository) FindCountryByISO2(ctx context.Context, iso2 string) (*Country, error) {
	var country Country
	if err := r.db.WithContext(ctx).Where("iso2 = ?", strings.ToUpper(iso2)).First(&country).Error; err != nil {
		return nil, err
	}
	return &country, nil
}

func (r *repository) CreateCountry(ctx context.Context, country *Country) error {
	return r.db.WithContext(ctx).Create(country).Error
}

func (r *repository) UpdateCountry(ctx context.Context, country *Country) error {
	return r.db.WithContext(ctx).Save(country).Error
}

func (r *repository) DeleteCountry(ctx context.Context, id string) error {
	return deleteOne(r.db.WithContext(ctx), &Country{}, id)
}

func (r *repository) FindStates(ctx context.Context, filter StateFilter) ([]State, error) {
	q := r.db.WithContext(ctx).Model(&State{})
	if filter.CountryID != "" {
		q = q.Where("country_id = ?", filter.CountryID)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		q = q.Where("name ILIKE ?", "%"+s+"%")
	}

	states := []State{}
	err := q.Order("name ASC").Find(&states).Error
	return states, err
}

func (r *repository) FindStateByID(ctx context.Context, id string) (*State, error) {
	var state State
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&state).Error; err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *repository) FindStateByName(ctx context.Context, countryID uuid.UUID, name string) (*State, error) {
	var state State
	err := r.db.WithContext(ctx).
		Where("country_id = ? AND name = ?", countryID, name).
		First(&state).Error
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *repository) CreateState(ctx context.Context, state *State) error {
	return r.db.WithContext(ctx).Omit("Country").Create(state).Error
}

func (r *repository) UpdateState(ctx context.Context, state *State) error {
	return r.db.WithContext(ctx).Omit("Country").Save(state).Error
}

func (r *repository) DeleteState(ctx context.Context, id string) error {
	return deleteOne(r.db.WithContext(ctx), &State{}, id)
}

func (r *repository) FindCities(ctx context.Context, filter CityFilter) ([]City, error) {
	q := r.db.WithContext(ctx).Model(&City{})
	if filter.StateID != "" {
		q = q.Where("state_id = ?", filter.StateID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		q = q.Where("name ILIKE ?", "%"+s+"%")
	}

	cities := []City{}
	err := q.Order("name ASC").Find(&cities).Error
	return cities, err
}

func (r *repository) FindCityByID(ctx context.Context, id string) (*City, error) {
	var city City
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

func (r *repository) FindCitiesByIDs(ctx context.Context, ids []string) ([]City, error) {
	var cities []City
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&cities).Error
	return cities, err
}

func (r *repository) CreateCity(ctx context.Context, city *City) error {
	return r.db.WithContext(ctx).Omit("State").Create(city).Error
}

// CreateCities skips rows whose (state, name) already exists and reports how
// many were inserted.
func (r *repository) CreateCities(ctx context.Context, cities []City) (int64, error) {
	res := r.db.WithContext(ctx).
		Omit("State").
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&cities, cityBatchSize)
	return res.RowsAffected, res.Error
}

func (r *repository) UpdateCity(ctx context.Context, city *City) error {
	return r.db.WithContext(ctx).Omit("State").Save(city).Error
}

func (r *repository) DeleteCity(ctx context.Context, id string) error {
	return deleteOne(r.db.WithContext(ctx), &City{}, id)
}

func (r *repository) DeleteCities(ctx context.Context, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&City{})
	return res.RowsAffected, res.Error
}

func deleteOne(db *gorm.DB, value any, id string) error {
	res := db.Where("id = ?", id).Delete(value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
