package geography

import (
	"context"
	"fmt"
	"strings"

	"speed-hrm/internal/activitylog"
	"speed-hrm/internal/shared/contextutil"
	"speed-hrm/internal/shared/model"
	"speed-hrm/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const auditModule = "geography"

//go:generate mockgen -source=geography_service.go -destination=mock/geography_service_mock.go -package=mock
type Service interface {
	GetCountries(ctx context.Context) ([]CountryResponse, error)
	GetCountryByID(ctx context.Context, id string) (CountryResponse, error)
	CreateCountry(ctx context.Context, req CreateCountryRequest) (CountryResponse, error)
	UpdateCountry(ctx context.Context, id string, req UpdateCountryRequest) (CountryResponse, error)
	DeleteCountry(ctx context.Context, id string) error

	GetStates(ctx context.Context, filter StateFilter) ([]StateResponse, error)
	GetStateByID(ctx context.Context, id string) (StateResponse, error)
	CreateState(ctx context.Context, req CreateStateRequest) (StateResponse, error)
	UpdateState(ctx context.Context, id string, req UpdateStateRequest) (StateResponse, error)
	DeleteState(ctx context.Context, id string) error

	GetCities(ctx context.Context, filter CityFilter) ([]CityResponse, error)
	GetCityByID(ctx context.Context, id string) (CityResponse, error)
	CreateCity(ctx context.Context, req CreateCityRequest) (CityResponse, error)
	BulkCreateCities(ctx context.Context, req BulkCreateCityRequest) (response.BulkCreateResult, error)
	UpdateCity(ctx context.Context, id string, req UpdateCityRequest) (CityResponse, error)
	DeleteCity(ctx context.Context, id string) error
	BulkDeleteCities(ctx context.Context, ids []string) (response.BulkDeleteResult, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	recorder activitylog.Recorder
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, recorder activitylog.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("geography.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("geography.service")
	}
	if recorder == nil {
		recorder = activitylog.NopRecorder{}
	}
	return &service{db: db, repo: repo, recorder: recorder, logger: l}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

// Countries

func (s *service) GetCountries(ctx context.Context) ([]CountryResponse, error) {
	countries, err := s.repo.FindCountries(ctx)
	if err != nil {
		s.log(ctx).Error("list countries failed", zap.Error(err))
		return nil, mapCountryError(err)
	}
	out := make([]CountryResponse, len(countries))
	for i, c := range countries {
		out[i] = mapCountryResponse(c)
	}
	return out, nil
}

func (s *service) GetCountryByID(ctx context.Context, id string) (CountryResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return CountryResponse{}, err
	}

	country, err := s.repo.FindCountryByID(ctx, id)
	if err != nil {
		return CountryResponse{}, mapCountryError(err)
	}
	return mapCountryResponse(*country), nil
}

func (s *service) CreateCountry(ctx context.Context, req CreateCountryRequest) (CountryResponse, error) {
	country := Country{
		ID:   uuid.New(),
		Name: strings.TrimSpace(req.Name),
		ISO2: strings.ToUpper(req.ISO2),
	}
	country.StampCreate(ctx)

	entry := activitylog.Entry{
		Action:      activitylog.ActionCreate,
		Module:      auditModule,
		Entity:      "country",
		EntityID:    country.ID.String(),
		Description: fmt.Sprintf("Created country %s (%s)", country.Name, country.ISO2),
		NewValues:   req,
	}

	if err := s.repo.CreateCountry(ctx, &country); err != nil {
		s.log(ctx).Error("create country failed", zap.Error(err))
		s.recorder.Record(ctx, entry.Failed(err))
		return CountryResponse{}, mapCountryError(err)
	}

	s.recorder.Record(ctx, entry)
	return mapCountryResponse(country), nil
}

func (s *service) UpdateCountry(ctx context.Context, id string, req UpdateCountryRequest) (CountryResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return CountryResponse{}, err
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionUpdate,
		Module:   auditModule,
		Entity:   "country",
		EntityID: id,
	}

	var before, after Country
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		country, err := qtx.FindCountryByID(ctx, id)
		if err != nil {
			return err
		}
		before = *country

		if req.Name != nil {
			country.Name = strings.TrimSpace(*req.Name)
		}
		if req.ISO2 != nil {
			country.ISO2 = strings.ToUpper(*req.ISO2)
		}
		country.StampUpdate(ctx)

		if err := qtx.UpdateCountry(ctx, country); err != nil {
			return err
		}
		after = *country
		return nil
	})
	if err != nil {
		s.log(ctx).Error("update country failed", zap.String("country_id", id), zap.Error(err))
		entry.Description = "Failed to update country"
		entry.NewValues = req
		s.recorder.Record(ctx, entry.Failed(err))
		return CountryResponse{}, mapCountryError(err)
	}

	entry.Description = fmt.Sprintf("Updated country %s", after.Name)
	entry.OldValues = mapCountryResponse(before)
	entry.NewValues = mapCountryResponse(after)
	s.recorder.Record(ctx, entry)
	return mapCountryResponse(after), nil
}

func (s *service) DeleteCountry(ctx context.Context, id string) error {
	if _, err := model.ParseID(id); err != nil {
		return err
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionDelete,
		Module:   auditModule,
		Entity:   "country",
		EntityID: id,
	}

	var removed Country
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		country, err := qtx.FindCountryByID(ctx, id)
		if err != nil {
			return err
		}
		removed = *country
		return qtx.DeleteCountry(ctx, id)
	})
	if err != nil {
		s.log(ctx).Error("delete country failed", zap.String("country_id", id), zap.Error(err))
		entry.Description = "Failed to delete country"
		s.recorder.Record(ctx, entry.Failed(err))
		return mapCountryError(err)
	}

	entry.Description = fmt.Sprintf("Deleted country %s", removed.Name)
	entry.OldValues = mapCountryResponse(removed)
	s.recorder.Record(ctx, entry)
	return nil
}

// States

func (s *service) GetStates(ctx context.Context, filter StateFilter) ([]StateResponse, error) {
	states, err := s.repo.FindStates(ctx, filter)
	if err != nil {
		s.log(ctx).Error("list states failed", zap.Error(err))
		return nil, mapStateError(err)
	}
	out := make([]StateResponse, len(states))
	for i, st := range states {
		out[i] = mapStateResponse(st)
	}
	return out, nil
}

func (s *service) GetStateByID(ctx context.Context, id string) (StateResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return StateResponse{}, err
	}

	state, err := s.repo.FindStateByID(ctx, id)
	if err != nil {
		return StateResponse{}, mapStateError(err)
	}
	return mapStateResponse(*state), nil
}

func (s *service) CreateState(ctx context.Context, req CreateStateRequest) (StateResponse, error) {
	countryID, err := model.ParseID(req.CountryID)
	if err != nil {
		return StateResponse{}, err
	}

	state := State{
		ID:        uuid.New(),
		CountryID: countryID,
		Name:      strings.TrimSpace(req.Name),
	}
	state.StampCreate(ctx)

	entry := activitylog.Entry{
		Action:      activitylog.ActionCreate,
		Module:      auditModule,
		Entity:      "state",
		EntityID:    state.ID.String(),
		Description: fmt.Sprintf("Created state %s", state.Name),
		NewValues:   req,
	}

	if err := s.repo.CreateState(ctx, &state); err != nil {
		s.log(ctx).Error("create state failed", zap.Error(err))
		s.recorder.Record(ctx, entry.Failed(err))
		return StateResponse{}, mapStateError(err)
	}

	s.recorder.Record(ctx, entry)
	return mapStateResponse(state), nil
}

func (s *service) UpdateState(ctx context.Context, id string, req UpdateStateRequest) (StateResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return StateResponse{}, err
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionUpdate,
		Module:   auditModule,
		Entity:   "state",
		EntityID: id,
	}

	var before, after State
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		state, err := qtx.FindStateByID(ctx, id)
		if err != nil {
			return err
		}
		before = *state

		if req.CountryID != nil {
			countryID, err := model.ParseID(*req.CountryID)
			if err != nil {
				return err
			}
			state.CountryID = countryID
		}
		if req.Name != nil {
			state.Name = strings.TrimSpace(*req.Name)
		}
		state.StampUpdate(ctx)

		if err := qtx.UpdateState(ctx, state); err != nil {
			return err
		}
		after = *state
		return nil
	})
	if err != nil {
		s.log(ctx).Error("update state failed", zap.String("state_id", id), zap.Error(err))
		entry.Description = "Failed to update state"
		entry.NewValues = req
		s.recorder.Record(ctx, entry.Failed(err))
		return StateResponse{}, mapStateError(err)
	}

	entry.Description = fmt.Sprintf("Updated state %s", after.Name)
	entry.OldValues = mapStateResponse(before)
	entry.NewValues = mapStateResponse(after)
	s.recorder.Record(ctx, entry)
	return mapStateResponse(after), nil
}

func (s *service) DeleteState(ctx context.Context, id string) error {
	if _, err := model.ParseID(id); err != nil {
		return err
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionDelete,
		Module:   auditModule,
		Entity:   "state",
		EntityID: id,
	}

	var removed State
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		state, err := qtx.FindStateByID(ctx, id)
		if err != nil {
			return err
		}
		removed = *state
		return qtx.DeleteState(ctx, id)
	})
	if err != nil {
		s.log(ctx).Error("delete state failed", zap.String("state_id", id), zap.Error(err))
		entry.Description = "Failed to delete state"
		s.recorder.Record(ctx, entry.Failed(err))
		return mapStateError(err)
	}

	entry.Description = fmt.Sprintf("Deleted state %s", removed.Name)
	entry.OldValues = mapStateResponse(removed)
	s.recorder.Record(ctx, entry)
	return nil
}

// Cities

func (s *service) GetCities(ctx context.Context, filter CityFilter) ([]CityResponse, error) {
	cities, err := s.repo.FindCities(ctx, filter)
	if err != nil {
		s.log(ctx).Error("list cities failed", zap.Error(err))
		return nil, mapCityError(err)
	}
	return mapCityListResponse(cities), nil
}

func (s *service) GetCityByID(ctx context.Context, id string) (CityResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return CityResponse{}, err
	}

	city, err := s.repo.FindCityByID(ctx, id)
	if err != nil {
		return CityResponse{}, mapCityError(err)
	}
	return mapCityResponse(*city), nil
}

func (s *service) CreateCity(ctx context.Context, req CreateCityRequest) (CityResponse, error) {
	city, err := newCity(ctx, req)
	if err != nil {
		return CityResponse{}, err
	}

	entry := activitylog.Entry{
		Action:      activitylog.ActionCreate,
		Module:      auditModule,
		Entity:      "city",
		EntityID:    city.ID.String(),
		Description: fmt.Sprintf("Created city %s", city.Name),
		NewValues:   req,
	}

	if err := s.repo.CreateCity(ctx, &city); err != nil {
		s.log(ctx).Error("create city failed", zap.Error(err))
		s.recorder.Record(ctx, entry.Failed(err))
		return CityResponse{}, mapCityError(err)
	}

	s.recorder.Record(ctx, entry)
	return mapCityResponse(city), nil
}

func (s *service) BulkCreateCities(ctx context.Context, req BulkCreateCityRequest) (response.BulkCreateResult, error) {
	cities := make([]City, len(req.Items))
	for i, r := range req.Items {
		city, err := newCity(ctx, r)
		if err != nil {
			return response.BulkCreateResult{}, err
		}
		cities[i] = city
	}

	entry := activitylog.Entry{
		Action:      activitylog.ActionBulkCreate,
		Module:      auditModule,
		Entity:      "city",
		Description: fmt.Sprintf("Bulk created %d cities", len(cities)),
		NewValues:   req.Items,
	}

	created, err := s.repo.CreateCities(ctx, cities)
	if err != nil {
		s.log(ctx).Error("bulk create cities failed", zap.Error(err))
		s.recorder.Record(ctx, entry.Failed(err))
		return response.BulkCreateResult{}, mapCityError(err)
	}

	result := response.NewBulkCreateResult(len(cities), created)
	if result.Skipped > 0 {
		entry.Description = fmt.Sprintf("%s, %d skipped as duplicates", entry.Description, result.Skipped)
	}
	s.recorder.Record(ctx, entry)
	return result, nil
}

func (s *service) UpdateCity(ctx context.Context, id string, req UpdateCityRequest) (CityResponse, error) {
	if _, err := model.ParseID(id); err != nil {
		return CityResponse{}, err
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionUpdate,
		Module:   auditModule,
		Entity:   "city",
		EntityID: id,
	}

	var before, after City
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		city, err := qtx.FindCityByID(ctx, id)
		if err != nil {
			return err
		}
		before = *city

		if req.StateID != nil {
			stateID, err := model.ParseID(*req.StateID)
			if err != nil {
				return err
			}
			city.StateID = stateID
		}
		if req.Name != nil {
			city.Name = strings.TrimSpace(*req.Name)
		}
		if req.Latitude != nil {
			city.Latitude = req.Latitude
		}
		if req.Longitude != nil {
			city.Longitude = req.Longitude
		}
		if req.Status != nil {
			city.Status = *req.Status
		}
		city.StampUpdate(ctx)

		if err := qtx.UpdateCity(ctx, city); err != nil {
			return err
		}
		after = *city
		return nil
	})
	if err != nil {
		s.log(ctx).Error("update city failed", zap.String("city_id", id), zap.Error(err))
		entry.Description = "Failed to update city"
		entry.NewValues = req
		s.recorder.Record(ctx, entry.Failed(err))
		return CityResponse{}, mapCityError(err)
	}

	entry.Description = fmt.Sprintf("Updated city %s", after.Name)
	entry.OldValues = mapCityResponse(before)
	entry.NewValues = mapCityResponse(after)
	s.recorder.Record(ctx, entry)
	return mapCityResponse(after), nil
}

func (s *service) DeleteCity(ctx context.Context, id string) error {
	if _, err := model.ParseID(id); err != nil {
		return err
	}

	entry := activitylog.Entry{
		Action:   activitylog.ActionDelete,
		Module:   auditModule,
		Entity:   "city",
		EntityID: id,
	}

	var removed City
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		city, err := qtx.FindCityByID(ctx, id)
		if err != nil {
			return err
		}
		removed = *city
		return qtx.DeleteCity(ctx, id)
	})
	if err != nil {
		s.log(ctx).Error("delete city failed", zap.String("city_id", id), zap.Error(err))
		entry.Description = "Failed to delete city"
		s.recorder.Record(ctx, entry.Failed(err))
		return mapCityError(err)
	}

	entry.Description = fmt.Sprintf("Deleted city %s", removed.Name)
	entry.OldValues = mapCityResponse(removed)
	s.recorder.Record(ctx, entry)
	return nil
}

func (s *service) BulkDeleteCities(ctx context.Context, ids []string) (response.BulkDeleteResult, error) {
	ids, err := model.ParseIDs(ids)
	if err != nil {
		return response.BulkDeleteResult{}, err
	}

	entry := activitylog.Entry{
		Action: activitylog.ActionBulkDelete,
		Module: auditModule,
		Entity: "city",
	}

	var (
		existing []City
		deleted  int64
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		existing, err = qtx.FindCitiesByIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			return nil
		}
		deleted, err = qtx.DeleteCities(ctx, ids)
		return err
	})
	if err != nil {
		s.log(ctx).Error("bulk delete cities failed", zap.Error(err))
		entry.Description = "Failed to bulk delete cities"
		entry.NewValues = ids
		s.recorder.Record(ctx, entry.Failed(err))
		return response.BulkDeleteResult{}, mapCityError(err)
	}

	found := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		found[c.ID.String()] = struct{}{}
	}
	result := response.BulkDeleteResult{Deleted: deleted}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			result.NotFound = append(result.NotFound, id)
		}
	}

	entry.Description = fmt.Sprintf("Bulk deleted %d cities", deleted)
	entry.OldValues = mapCityListResponse(existing)
	s.recorder.Record(ctx, entry)
	return result, nil
}

func newCity(ctx context.Context, req CreateCityRequest) (City, error) {
	stateID, err := model.ParseID(req.StateID)
	if err != nil {
		return City{}, err
	}
	city := City{
		ID:        uuid.New(),
		StateID:   stateID,
		Name:      strings.TrimSpace(req.Name),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Status:    model.StatusOrDefault(req.Status),
	}
	city.StampCreate(ctx)
	return city, nil
}

func mapCountryResponse(c Country) CountryResponse {
	return CountryResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		ISO2:      c.ISO2,
		CreatedAt: model.FormatTime(c.CreatedAt),
		UpdatedAt: model.FormatTime(c.UpdatedAt),
	}
}

func mapStateResponse(s State) StateResponse {
	return StateResponse{
		ID:        s.ID.String(),
		CountryID: s.CountryID.String(),
		Name:      s.Name,
		CreatedAt: model.FormatTime(s.CreatedAt),
		UpdatedAt: model.FormatTime(s.UpdatedAt),
	}
}

func mapCityResponse(c City) CityResponse {
	return CityResponse{
		ID:        c.ID.String(),
		StateID:   c.StateID.String(),
		Name:      c.Name,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Status:    c.Status,
		CreatedAt: model.FormatTime(c.CreatedAt),
		UpdatedAt: model.FormatTime(c.UpdatedAt),
	}
}

func mapCityListResponse(cities []City) []CityResponse {
	out := make([]CityResponse, len(cities))
	for i, c := range cities {
		out[i] = mapCityResponse(c)
	}
	return out
}
