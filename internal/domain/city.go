package domain

// City - город с денормализованными полями штата и страны
type City struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	StateID     int64  `json:"stateId" db:"state_id"`
	StateCode   string `json:"stateCode" db:"state_code"`
	StateName   string `json:"stateName" db:"state_name"`
	CountryID   int64  `json:"countryId" db:"country_id"`
	CountryCode string `json:"countryCode" db:"country_code"`
	CountryName string `json:"countryName" db:"country_name"`
	Latitude    string `json:"latitude" db:"latitude"`
	Longitude   string `json:"longitude" db:"longitude"`
	WikiID      string `json:"wikiId" db:"wiki_id"`
}
