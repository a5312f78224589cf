package dto

const (
	DefaultPage  = 1
	DefaultLimit = 3
)

// PageRequest - параметры пагинации. Верхняя граница page держит (page-1)*limit в пределах int
type PageRequest struct {
	Page  int `json:"page" validate:"min=1,max=1000000"`
	Limit int `json:"limit" validate:"min=1,max=100"`
}

// SearchRequest - поиск по подстроке имени
type SearchRequest struct {
	Query string `json:"q" validate:"required"`
}

// ListStatesByCountryRequest - штаты страны постранично
type ListStatesByCountryRequest struct {
	CountryID int64 `json:"countryId"`
	PageRequest
}

// ListCitiesByStateRequest - города штата постранично
type ListCitiesByStateRequest struct {
	StateID int64 `json:"stateId"`
	PageRequest
}

// CountrySummaryRequest - сводка по стране по точному имени
type CountrySummaryRequest struct {
	Name string `json:"name" validate:"required"`
}
