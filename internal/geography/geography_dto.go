package geography

type CreateCountryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
	ISO2 string `json:"iso2" binding:"required,len=2,alpha"`
}

type UpdateCountryRequest struct {
	Name *string `json:"name" binding:"omitempty,min=2,max=100"`
	ISO2 *string `json:"iso2" binding:"omitempty,len=2,alpha"`
}

type CountryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ISO2      string `json:"iso2"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CreateStateRequest struct {
	CountryID string `json:"country_id" binding:"required,uuid"`
	Name      string `json:"name" binding:"required,min=2,max=100"`
}

type UpdateStateRequest struct {
	CountryID *string `json:"country_id" binding:"omitempty,uuid"`
	Name      *string `json:"name" binding:"omitempty,min=2,max=100"`
}

type StateFilter struct {
	CountryID string `form:"country_id" binding:"omitempty,uuid"`
	Search    string `form:"q"`
}

type StateResponse struct {
	ID        string `json:"id"`
	CountryID string `json:"country_id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type CreateCityRequest struct {
	StateID   string   `json:"state_id" binding:"required,uuid"`
	Name      string   `json:"name" binding:"required,min=2,max=120"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" binding:"omitempty,longitude"`
	Status    string   `json:"status" binding:"omitempty,oneof=active inactive"`
}

type BulkCreateCityRequest struct {
	Items []CreateCityRequest `json:"items" binding:"required,min=1,max=1000,dive"`
}

type UpdateCityRequest struct {
	StateID   *string  `json:"state_id" binding:"omitempty,uuid"`
	Name      *string  `json:"name" binding:"omitempty,min=2,max=120"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" binding:"omitempty,longitude"`
	Status    *string  `json:"status" binding:"omitempty,oneof=active inactive"`
}

type CityFilter struct {
	StateID string `form:"state_id" binding:"omitempty,uuid"`
	Status  string `form:"status" binding:"omitempty,oneof=active inactive"`
	Search  string `form:"q"`
}

type CityResponse struct {
	ID        string   `json:"id"`
	StateID   string   `json:"state_id"`
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

type ResolveProvinceQuery struct {
	Name string   `form:"name" binding:"required"`
	Lat  *float64 `form:"lat" binding:"omitempty,latitude"`
	Lng  *float64 `form:"lng" binding:"omitempty,longitude"`
}

type ResolveProvinceResponse struct {
	Name     string `json:"name"`
	Province string `json:"province"`
}

type SeedCitiesResult struct {
	Country       string `json:"country"`
	StatesCreated int    `json:"states_created"`
	CitiesCreated int64  `json:"cities_created"`
	CitiesSkipped int64  `json:"cities_skipped"`
}
