package dto

import "time"

// CountrySummaryResponse - ответ GET /country
type CountrySummaryResponse struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	TotalStates int64  `json:"totalStates"`
	TotalCities int64  `json:"totalCities"`
}

// HealthResponse - ответ GET /health
type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}
