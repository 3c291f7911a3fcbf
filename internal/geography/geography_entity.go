package geography

import (
	"speed-hrm/internal/shared/model"

	"github.com/google/uuid"
)

const (
	countryISO2Index = "uq_countries_iso2"
	stateNameIndex   = "uq_states_country_name"
	cityNameIndex    = "uq_cities_state_name"
	stateCountryFK   = "fk_states_country"
	cityStateFK      = "fk_cities_state"
)

type Country struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"size:100;not null"`
	ISO2 string    `gorm:"column:iso2;size:2;not null;uniqueIndex:uq_countries_iso2"`
	model.Audit
}

func (Country) TableName() string {
	return "countries"
}

type State struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CountryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_states_country_name,priority:1"`
	Country   *Country  `gorm:"foreignKey:CountryID;references:ID;constraint:OnDelete:RESTRICT"`
	Name      string    `gorm:"size:100;not null;uniqueIndex:uq_states_country_name,priority:2"`
	model.Audit
}

func (State) TableName() string {
	return "states"
}

type City struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	StateID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_cities_state_name,priority:1"`
	State     *State    `gorm:"foreignKey:StateID;references:ID;constraint:OnDelete:RESTRICT"`
	Name      string    `gorm:"size:120;not null;uniqueIndex:uq_cities_state_name,priority:2"`
	Latitude  *float64
	Longitude *float64
	Status    string `gorm:"size:20;not null;default:active"`
	model.Audit
}

func (City) TableName() string {
	return "cities"
}
