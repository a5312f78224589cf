package domain

// State - штат/провинция с денормализованными полями страны
type State struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	CountryID   int64  `json:"countryId" db:"country_id"`
	CountryCode string `json:"countryCode" db:"country_code"`
	CountryName string `json:"countryName" db:"country_name"`
	StateCode   string `json:"stateCode" db:"state_code"`
	Type        string `json:"type" db:"type"`
	Latitude    string `json:"latitude" db:"latitude"`
	Longitude   string `json:"longitude" db:"longitude"`
}
